package storage

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KeyValue 键值表的一行
type KeyValue struct {
	Key       string `gorm:"primaryKey;column:kv_key"`
	Value     []byte `gorm:"column:kv_value"`
	UpdatedAt time.Time
}

// TableName 指定表名
func (KeyValue) TableName() string {
	return "key_values"
}

// SQLiteStore 基于 gorm + SQLite 的键值存储
type SQLiteStore struct {
	DB *gorm.DB
}

// OpenSQLiteStore 打开（必要时创建）SQLite 数据库文件
// path 为空时使用内存数据库
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", dsn, err)
	}

	if path == "" {
		// 内存数据库每个连接各自独立，必须只保留一个连接
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&KeyValue{}); err != nil {
		return nil, fmt.Errorf("failed to migrate key_values: %w", err)
	}

	log.Printf("[SQLiteStore] Using SQLite DB at %s", dsn)
	return &SQLiteStore{DB: db}, nil
}

// Get 实现 KeyValueStore 接口
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var row KeyValue
	err := s.DB.Where("kv_key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return row.Value, true, nil
}

// Set 实现 KeyValueStore 接口（存在则覆盖）
func (s *SQLiteStore) Set(key string, value []byte) error {
	row := KeyValue{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Close 关闭数据库连接
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}
