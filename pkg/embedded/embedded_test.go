package embedded

import (
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	// 重置状态
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/weapons.yaml")
	if err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
	if Exists("data/weapons.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFile 测试路径标准化和读取
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/weapons.yaml": &fstest.MapFile{Data: []byte("weapons: []\n")},
	})
	defer func() { initialized = false }()

	for _, path := range []string{"data/weapons.yaml", "./data/weapons.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q) error: %v", path, err)
		}
		if string(data) != "weapons: []\n" {
			t.Errorf("ReadFile(%q) = %q", path, data)
		}
	}

	if !Exists("data/weapons.yaml") {
		t.Error("Exists() should be true for embedded file")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists() should be false for missing file")
	}

	if _, err := ReadFile("assets/icon.png"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}
