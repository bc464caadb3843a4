package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// exerciseStore 所有后端共用的读写校验
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want not found", ok, err)
	}

	first := []byte(`[{"weapon":"PM","mode":"Disassembly","time":12,"score":700,"date":"18.10.2026"}]`)
	if err := s.Set("records", first); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, ok, err := s.Get("records")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, first) {
		t.Errorf("Get() = %s, want %s", got, first)
	}

	// 覆盖写入
	second := []byte(`[]`)
	if err := s.Set("records", second); err != nil {
		t.Fatalf("Set() overwrite error: %v", err)
	}
	got, _, _ = s.Get("records")
	if !bytes.Equal(got, second) {
		t.Errorf("after overwrite Get() = %s, want %s", got, second)
	}

	// 键之间互不影响
	if err := s.Set("other", []byte("x")); err != nil {
		t.Fatalf("Set(other) error: %v", err)
	}
	got, _, _ = s.Get("records")
	if !bytes.Equal(got, second) {
		t.Errorf("writing another key changed records: %s", got)
	}
}

// TestMemoryStore 测试内存存储
func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseStore(t, s)

	// 返回值是拷贝
	if err := s.Set("k", []byte("abc")); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	v, _, _ := s.Get("k")
	v[0] = 'z'
	again, _, _ := s.Get("k")
	if string(again) != "abc" {
		t.Errorf("MemoryStore leaked internal buffer: %s", again)
	}
}

// newTestGdataManager 创建用于测试的 gdata Manager（HOME 指向临时目录）
func newTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("weapon_drill_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestGdataStore 测试 gdata 存储
func TestGdataStore(t *testing.T) {
	manager := newTestGdataManager(t)
	s := NewGdataStore(manager)
	if !s.Persistent() {
		t.Fatal("store with manager should be persistent")
	}
	exerciseStore(t, s)

	// 新实例读取同一份数据
	reopened := NewGdataStore(manager)
	got, ok, err := reopened.Get("records")
	if err != nil || !ok || string(got) != "[]" {
		t.Errorf("reopened Get() = %q ok=%v err=%v", got, ok, err)
	}
}

// TestGdataStoreNilManager 测试 gdata 不可用时的降级模式
func TestGdataStoreNilManager(t *testing.T) {
	s := NewGdataStore(nil)
	if s.Persistent() {
		t.Error("nil manager store should not be persistent")
	}
	exerciseStore(t, s)
}

// TestSQLiteStore 测试 SQLite 文件存储
func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error: %v", err)
	}
	exerciseStore(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}

	// 重新打开后数据仍在
	reopened, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("records")
	if err != nil || !ok || string(got) != "[]" {
		t.Errorf("reopened Get() = %q ok=%v err=%v", got, ok, err)
	}
}

// TestSQLiteStoreInMemory 测试 SQLite 内存数据库
func TestSQLiteStoreInMemory(t *testing.T) {
	s, err := OpenSQLiteStore("")
	if err != nil {
		t.Fatalf("OpenSQLiteStore(\"\") error: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

// TestOpen 测试按配置选择后端
func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		cfg := config.DefaultAppConfig()
		cfg.Store = config.StoreMemory
		s, closeFn, err := Open(cfg)
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		defer closeFn()
		if _, ok := s.(*MemoryStore); !ok {
			t.Errorf("Expected *MemoryStore, got %T", s)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.DefaultAppConfig()
		cfg.Store = config.StoreSQLite
		cfg.SQLitePath = filepath.Join(t.TempDir(), "drill.db")
		s, closeFn, err := Open(cfg)
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		defer closeFn()
		if _, ok := s.(*SQLiteStore); !ok {
			t.Errorf("Expected *SQLiteStore, got %T", s)
		}
	})

	t.Run("gdata", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg := config.DefaultAppConfig()
		cfg.AppName = fmt.Sprintf("weapon_drill_open_%d", time.Now().UnixNano())
		s, _, err := Open(cfg)
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		if _, ok := s.(*GdataStore); !ok {
			t.Errorf("Expected *GdataStore, got %T", s)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := config.DefaultAppConfig()
		cfg.Store = "redis"
		if _, _, err := Open(cfg); err == nil {
			t.Error("Expected error for unknown backend")
		}
	})
}
