package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/game"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/utils"
)

// 菜单颜色
var (
	colorBackground = color.RGBA{R: 0x1a, G: 0x1f, B: 0x2c, A: 0xff}
	colorPanel      = color.RGBA{R: 0x22, G: 0x1f, B: 0x26, A: 0xff}
	colorAccent     = color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff}
	colorHighlight  = color.RGBA{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff}
	colorHint       = color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
)

// MenuScene 武器和模式选择界面，同时显示排行榜
type MenuScene struct {
	session      *game.GameSession
	sceneManager *game.SceneManager

	weaponIDs   []string
	selected    int
	mode        types.Mode
	records     []game.GameRecord
	needRefresh bool
}

// NewMenuScene 创建菜单场景
func NewMenuScene(session *game.GameSession, sceneManager *game.SceneManager) *MenuScene {
	return &MenuScene{
		session:      session,
		sceneManager: sceneManager,
		weaponIDs:    session.Catalog().IDs(),
		mode:         types.ModeDisassembly,
		needRefresh:  true,
	}
}

// Selection 返回当前选择的武器ID和模式
func (m *MenuScene) Selection() (string, types.Mode) {
	if len(m.weaponIDs) == 0 {
		return "", m.mode
	}
	return m.weaponIDs[m.selected], m.mode
}

// MoveSelection 上下移动武器选择（循环）
func (m *MenuScene) MoveSelection(delta int) {
	n := len(m.weaponIDs)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// ToggleMode 切换训练模式
func (m *MenuScene) ToggleMode() {
	m.mode = m.mode.Opposite()
}

// Start 以当前选择开始训练并切换到训练场景
func (m *MenuScene) Start() {
	weaponID, mode := m.Selection()
	if err := m.session.StartGame(mode, weaponID); err != nil {
		log.Printf("[MenuScene] 无法开始训练: %v", err)
		return
	}
	m.needRefresh = true
	m.sceneManager.Show(game.SceneDrill)
}

// Refresh 标记排行榜需要重新读取（返回菜单时调用）
func (m *MenuScene) Refresh() {
	m.needRefresh = true
}

// Update 处理菜单输入
func (m *MenuScene) Update(deltaTime float64) {
	if m.needRefresh {
		m.records = m.session.Records()
		m.needRefresh = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.MoveSelection(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.MoveSelection(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		inpututil.IsKeyJustPressed(ebiten.KeyA), inpututil.IsKeyJustPressed(ebiten.KeyD):
		m.ToggleMode()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.Start()
	}

	if pressed, mx, my := utils.PointerJustPressed(); pressed {
		if idx, ok := m.weaponAt(mx, my); ok {
			if idx == m.selected {
				m.Start()
			} else {
				m.selected = idx
			}
		}
	}
}

// weaponRect 返回第 i 个武器条目的矩形
func weaponRect(i int) Rect {
	return Rect{X: 60, Y: 150 + float64(i)*40, W: 420, H: 32}
}

// weaponAt 返回鼠标位置下的武器索引
func (m *MenuScene) weaponAt(mx, my float64) (int, bool) {
	for i := range m.weaponIDs {
		if weaponRect(i).Contains(mx, my) {
			return i, true
		}
	}
	return 0, false
}

// Draw 绘制菜单
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	ebitenutil.DebugPrintAt(screen, "WEAPON DRILL 3D - field stripping trainer", 60, 40)
	ebitenutil.DebugPrintAt(screen, "Remove or install parts in the correct order as fast as you can.", 60, 60)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Mode: %s   (Left/Right to change)", m.mode.Label()), 60, 110)

	catalog := m.session.Catalog()
	for i, id := range m.weaponIDs {
		r := weaponRect(i)
		fill := colorPanel
		if i == m.selected {
			fill = colorAccent
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)

		weapon, _ := catalog.Get(id)
		label := fmt.Sprintf("%-16s %-7s %d parts", weapon.Name, weapon.Difficulty, weapon.PartCount())
		ebitenutil.DebugPrintAt(screen, label, int(r.X)+10, int(r.Y)+9)
	}

	y := 150 + len(m.weaponIDs)*40 + 20
	ebitenutil.DebugPrintAt(screen, "Up/Down: weapon   Enter: start", 60, y)

	// 排行榜
	lx := config.GameWindowWidth/2 + 60
	ebitenutil.DebugPrintAt(screen, "TOP 10", lx, 110)
	if len(m.records) == 0 {
		ebitenutil.DebugPrintAt(screen, "No records yet", lx, 140)
		return
	}
	for i, r := range m.records {
		line := fmt.Sprintf("%2d. %5d  %-12s %-11s %s  %s",
			i+1, r.Score, r.Weapon, r.Mode, game.FormatTime(r.Time), r.Date)
		ebitenutil.DebugPrintAt(screen, line, lx, 140+i*20)
	}
}
