// Package app 提供训练应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/embedded"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/game"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/scenes"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/storage"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

// EmbeddedWeaponsFile 内嵌武器目录路径
const EmbeddedWeaponsFile = "data/weapons.yaml"

// Config 定义应用启动配置（命令行参数）
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Weapon 指定武器ID（如 "ak74"），非空时跳过菜单直接开始训练
	Weapon string
	// Mode 与 Weapon 一起使用的训练模式：disassembly / assembly
	Mode string
}

// App 是训练应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	session      *game.GameSession
	closeStore   func() error
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化训练应用
//
// 调用此函数前，若使用内嵌武器目录，必须先调用 embedded.Init()。
//
// 参数：
//   - cfg: 命令行配置
//   - appCfg: 运行时配置（环境变量）
func NewApp(cfg Config, appCfg config.AppConfig) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose && !appCfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalog, err := LoadCatalog(appCfg)
	if err != nil {
		return nil, fmt.Errorf("武器目录加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d weapons", len(catalog.Weapons))

	store, closeStore, err := storage.Open(appCfg)
	if err != nil {
		return nil, fmt.Errorf("记录存储打开失败: %w", err)
	}
	log.Printf("[App] Record store backend: %s", appCfg.Store)

	records := game.NewRecordStore(store, appCfg.RecordsKey)
	session := game.NewGameSession(catalog, records, game.WithTickInterval(appCfg.TickInterval))

	// 创建场景管理器，菜单和训练场景各只有一个实例，切换时保留菜单选择
	sceneManager := game.NewSceneManager()
	menu := scenes.NewMenuScene(session, sceneManager)
	drill := scenes.NewDrillScene(session, sceneManager, menu.Refresh)
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.SceneMenu:
			return menu
		case game.SceneDrill:
			return drill
		}
		return nil
	})

	a := &App{
		sceneManager: sceneManager,
		session:      session,
		closeStore:   closeStore,
		verbose:      cfg.Verbose,
	}

	// 根据配置决定启动场景
	if cfg.Weapon != "" {
		mode, err := types.ParseMode(cfg.Mode)
		if err != nil {
			a.Close()
			return nil, err
		}
		if err := session.StartGame(mode, cfg.Weapon); err != nil {
			a.Close()
			return nil, err
		}
		log.Printf("[App] Starting drill directly: %s (%s)", cfg.Weapon, mode)
		sceneManager.Show(game.SceneDrill)
	} else {
		sceneManager.Show(game.SceneMenu)
	}

	return a, nil
}

// LoadCatalog 加载武器目录
// DRILL_WEAPONS_FILE 非空时从磁盘读取，否则使用内嵌目录
func LoadCatalog(appCfg config.AppConfig) (*config.WeaponCatalog, error) {
	if appCfg.WeaponsFile != "" {
		log.Printf("[App] Loading weapons from %s", appCfg.WeaponsFile)
		return config.LoadWeaponCatalog(appCfg.WeaponsFile)
	}

	data, err := embedded.ReadFile(EmbeddedWeaponsFile)
	if err != nil {
		return nil, err
	}
	return config.ParseWeaponCatalog(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Session 返回训练会话控制器
func (a *App) Session() *game.GameSession {
	return a.session
}

// Close 停止计时器并关闭记录存储
func (a *App) Close() {
	a.session.Close()
	if err := a.closeStore(); err != nil {
		log.Printf("[App] Warning: failed to close record store: %v", err)
	}
}
