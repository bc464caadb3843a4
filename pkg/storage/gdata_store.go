package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GdataStore 基于 gdata 的键值存储
// 每个键对应 gdata 中 object 下的一个 property
type GdataStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	object       string
	fallback     *MemoryStore
}

// 默认 gdata object 名称
const recordsObject = "records"

// NewGdataStore 创建 gdata 键值存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，数据只保存在内存中）
func NewGdataStore(gdataManager *gdata.Manager) *GdataStore {
	if gdataManager == nil {
		log.Printf("[GdataStore] Warning: gdata manager not available, records will not persist")
	}
	return &GdataStore{
		gdataManager: gdataManager,
		object:       recordsObject,
		fallback:     NewMemoryStore(),
	}
}

// OpenGdataStore 按应用名打开 gdata 存储
// 打开失败时返回降级模式的存储和错误，调用方可以继续使用返回的存储
func OpenGdataStore(appName string) (*GdataStore, error) {
	if err := ensureStorageDir(); err != nil {
		log.Printf("[GdataStore] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return NewGdataStore(nil), fmt.Errorf("failed to open gdata for %s: %w", appName, err)
	}
	return NewGdataStore(manager), nil
}

// Persistent 返回数据是否真正持久化
func (s *GdataStore) Persistent() bool {
	return s.gdataManager != nil
}

// Get 实现 KeyValueStore 接口
func (s *GdataStore) Get(key string) ([]byte, bool, error) {
	// 降级模式：使用内存存储
	if s.gdataManager == nil {
		return s.fallback.Get(key)
	}

	if !s.gdataManager.ObjectPropExists(s.object, key) {
		return nil, false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(s.object, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s/%s: %w", s.object, key, err)
	}
	return data, true, nil
}

// Set 实现 KeyValueStore 接口
func (s *GdataStore) Set(key string, value []byte) error {
	if s.gdataManager == nil {
		return s.fallback.Set(key, value)
	}

	if err := s.gdataManager.SaveObjectProp(s.object, key, value); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", s.object, key, err)
	}
	return nil
}
