// Package storage 提供排行榜使用的键值存储后端
//
// 后端：
//   - MemoryStore: 进程内存储（测试、降级模式）
//   - GdataStore: quasilyte/gdata 跨平台存储（默认）
//   - SQLiteStore: gorm + SQLite 单表存储
package storage

import "sync"

// MemoryStore 进程内键值存储，不持久化
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get 读取键值，返回值是内部数据的拷贝
func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set 写入键值
func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}
