package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

// 窗口逻辑尺寸
const (
	GameWindowWidth  = 1024
	GameWindowHeight = 768
)

// 记录存储后端
const (
	StoreGdata  = "gdata"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// DefaultRecordsKey 排行榜在键值存储中的固定键
const DefaultRecordsKey = "weapon_drill_records"

// AppConfig 应用运行时配置（从环境变量读取）
type AppConfig struct {
	AppName      string        `env:"DRILL_APP_NAME"      envDefault:"weapon_drill"`
	Store        string        `env:"DRILL_STORE"         envDefault:"gdata"`
	SQLitePath   string        `env:"DRILL_SQLITE_PATH"   envDefault:"weapon_drill.db"`
	RecordsKey   string        `env:"DRILL_RECORDS_KEY"   envDefault:"weapon_drill_records"`
	TickInterval time.Duration `env:"DRILL_TICK_INTERVAL" envDefault:"1s"`
	WeaponsFile  string        `env:"DRILL_WEAPONS_FILE"` // 为空时使用内嵌的 data/weapons.yaml
	Verbose      bool          `env:"DRILL_VERBOSE"`
}

// DefaultAppConfig 返回默认运行时配置
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName:      "weapon_drill",
		Store:        StoreGdata,
		SQLitePath:   "weapon_drill.db",
		RecordsKey:   DefaultRecordsKey,
		TickInterval: time.Second,
	}
}

// LoadAppConfig 从环境变量加载运行时配置
// 解析失败时记录警告并返回默认配置（配置错误不应阻止游戏启动）
func LoadAppConfig() AppConfig {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		log.Printf("[Config] Warning: failed to parse environment: %v (using defaults)", err)
		return DefaultAppConfig()
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return DefaultAppConfig()
	}
	return cfg
}

// Validate 校验运行时配置
func (c AppConfig) Validate() error {
	switch c.Store {
	case StoreGdata, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store)
	}
	if c.RecordsKey == "" {
		return fmt.Errorf("records key is required")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		return fmt.Errorf("sqlite store requires DRILL_SQLITE_PATH")
	}
	return nil
}
