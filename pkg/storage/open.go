package storage

import (
	"fmt"
	"log"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
)

// Store 键值存储后端
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Open 根据运行时配置打开记录存储后端
//
// gdata 打开失败时降级为内存模式（游戏仍可运行，只是不保存记录）；
// SQLite 打开失败时返回错误。
//
// 返回：
//   - Store: 存储后端
//   - func() error: 关闭函数，调用方负责在退出时调用
//   - error: 无法创建后端时返回错误
func Open(cfg config.AppConfig) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		return NewMemoryStore(), noop, nil

	case config.StoreSQLite:
		s, err := OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case config.StoreGdata, "":
		s, err := OpenGdataStore(cfg.AppName)
		if err != nil {
			log.Printf("[Storage] Warning: %v (records kept in memory only)", err)
		}
		return s, noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}
