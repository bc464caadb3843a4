package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/embedded"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/game"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

func memoryConfig() config.AppConfig {
	cfg := config.DefaultAppConfig()
	cfg.Store = config.StoreMemory
	return cfg
}

func TestMain(m *testing.M) {
	// 使用仓库中的 data/ 代替 embed.FS
	embedded.Init(os.DirFS("../.."))
	os.Exit(m.Run())
}

func TestLoadCatalogEmbedded(t *testing.T) {
	catalog, err := LoadCatalog(memoryConfig())
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if _, ok := catalog.Get("pm"); !ok {
		t.Error("bundled catalog should contain pm")
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weapons.yaml")
	data := []byte("weapons:\n  - id: solo\n    parts:\n      - { id: only, order: 1 }\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := memoryConfig()
	cfg.WeaponsFile = path
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if got := catalog.IDs(); len(got) != 1 || got[0] != "solo" {
		t.Errorf("IDs() = %v, want [solo]", got)
	}

	cfg.WeaponsFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadCatalog(cfg); err == nil {
		t.Error("missing weapons file should fail")
	}
}

func TestNewAppShowsMenu(t *testing.T) {
	a, err := NewApp(Config{Verbose: true}, memoryConfig())
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	defer a.Close()

	if a.sceneManager.GetCurrentScene() == nil {
		t.Fatal("menu scene should be active")
	}
	if a.Session().State().Phase != types.PhaseIdle {
		t.Error("session should start idle")
	}
	if w, h := a.Layout(0, 0); w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("Layout() = %dx%d", w, h)
	}
}

func TestNewAppDirectDrill(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, Weapon: "ak74", Mode: "assembly"}, memoryConfig())
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	defer a.Close()

	s := a.Session().State()
	if s.Phase != types.PhaseInProgress || s.Mode != types.ModeAssembly || s.Weapon.ID != "ak74" {
		t.Errorf("state = %v %v", s.Phase, s.Mode)
	}
	if got := a.Session().HandlePartClick("no-such-part"); got != game.ClickIgnored {
		t.Errorf("unknown part click = %v", got)
	}
}

func TestNewAppRejectsBadFlags(t *testing.T) {
	if _, err := NewApp(Config{Verbose: true, Weapon: "bazooka", Mode: "disassembly"}, memoryConfig()); err == nil {
		t.Error("unknown weapon should fail")
	}
	if _, err := NewApp(Config{Verbose: true, Weapon: "pm", Mode: "juggling"}, memoryConfig()); err == nil {
		t.Error("unknown mode should fail")
	}
}
