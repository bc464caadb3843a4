package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}

	// 没有 screen 也能转发 Draw（MockScene 不访问 screen）
	sm.Draw(nil)
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene verifies that Update/Draw handle nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
	sm.Draw(nil)     // Should not panic
}

// TestSceneManagerShow 测试通过工厂按名称切换场景
func TestSceneManagerShow(t *testing.T) {
	sm := NewSceneManager()

	// 未设置工厂时不切换
	sm.Show(SceneMenu)
	if sm.GetCurrentScene() != nil {
		t.Error("Show without factory should not switch")
	}

	menu := &MockScene{}
	drill := &MockScene{}
	var requested []string
	sm.SetSceneFactory(func(name string) Scene {
		requested = append(requested, name)
		switch name {
		case SceneMenu:
			return menu
		case SceneDrill:
			return drill
		}
		return nil
	})

	sm.Show(SceneMenu)
	if sm.GetCurrentScene() != menu {
		t.Error("Show(menu) did not switch to menu")
	}

	sm.Show(SceneDrill)
	sm.Update(0.016)
	if !drill.updateCalled || menu.updateCalled {
		t.Error("only the drill scene should be updated")
	}

	// 未知场景：保持当前场景
	sm.Show("credits")
	if sm.GetCurrentScene() != drill {
		t.Error("unknown scene should keep the current scene")
	}

	if len(requested) != 3 {
		t.Errorf("factory called %d times, want 3", len(requested))
	}
}
