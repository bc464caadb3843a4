package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/game"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/utils"
)

// 训练面板布局
const (
	boardCenterX = config.GameWindowWidth / 2
	boardCenterY = 240

	progressBarX = 40
	progressBarY = 110
	progressBarW = config.GameWindowWidth - 80
	progressBarH = 10
)

// DrillScene 训练界面：显示零件、计时、分数和进度
type DrillScene struct {
	session      *game.GameSession
	sceneManager *game.SceneManager
	onExit       func()

	view game.View

	// 零件显示位置（动画中间值），按零件ID索引
	sessionID string
	displayed map[string]game.Position
	rotations map[string]float64
}

// NewDrillScene 创建训练场景
// onExit 在返回菜单时调用（可为 nil）
func NewDrillScene(session *game.GameSession, sceneManager *game.SceneManager, onExit func()) *DrillScene {
	return &DrillScene{
		session:      session,
		sceneManager: sceneManager,
		onExit:       onExit,
		displayed:    make(map[string]game.Position),
		rotations:    make(map[string]float64),
	}
}

// Update 处理输入并推进零件动画
func (d *DrillScene) Update(deltaTime float64) {
	d.handleInput()

	d.view = d.session.View()
	d.animate(d.session.State().ID, deltaTime)
}

// handleInput 将输入事件转发给会话
func (d *DrillScene) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		d.session.ResetGame()
		if d.onExit != nil {
			d.onExit()
		}
		d.sceneManager.Show(game.SceneMenu)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		d.session.ToggleHint()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if d.view.WeaponID != "" {
			_ = d.session.StartGame(d.view.Mode, d.view.WeaponID)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		_ = d.session.SwitchMode()
	}

	if pressed, mx, my := utils.PointerJustPressed(); pressed {
		d.Click(mx, my)
	}
}

// Click 将屏幕坐标的点击转发为零件点击
func (d *DrillScene) Click(mx, my float64) game.ClickOutcome {
	view := d.session.View()
	partID, ok := HitTest(view.Parts, d.displayed, view.Mode, mx, my, boardCenterX, boardCenterY)
	if !ok {
		return game.ClickIgnored
	}
	return d.session.HandlePartClick(partID)
}

// animate 让显示位置逼近会话中的目标位置
// 新会话开始时直接跳到初始布局
func (d *DrillScene) animate(sessionID string, deltaTime float64) {
	snap := sessionID != d.sessionID
	d.sessionID = sessionID

	if snap {
		d.displayed = make(map[string]game.Position, len(d.view.Parts))
		d.rotations = make(map[string]float64, len(d.view.Parts))
	}

	for _, p := range d.view.Parts {
		cur, ok := d.displayed[p.ID]
		if snap || !ok {
			d.displayed[p.ID] = p.Position
			d.rotations[p.ID] = p.Rotation
			continue
		}
		d.displayed[p.ID] = approach(cur, p.Position, deltaTime)
		d.rotations[p.ID] = approachAngle(d.rotations[p.ID], p.Rotation, deltaTime)
	}
}

// Draw 绘制训练界面
func (d *DrillScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v := d.view

	// 顶部信息
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  [%s]", v.WeaponName, v.Mode.Label()), 40, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time %s", v.Timer), 40, 50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %d", v.Score), 240, 50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Progress %d/%d", v.CurrentStep, v.TotalSteps), 440, 50)
	ebitenutil.DebugPrintAt(screen, "H: hint  R: restart  M: switch mode  Esc: menu", 40, 80)

	// 进度条
	vector.DrawFilledRect(screen, progressBarX, progressBarY, progressBarW, progressBarH, colorPanel, false)
	vector.DrawFilledRect(screen, progressBarX, progressBarY, float32(float64(progressBarW)*v.Progress), progressBarH, colorAccent, false)

	switch v.Screen {
	case types.PhaseComplete.String():
		verb := "Disassembly"
		if v.Mode == types.ModeAssembly {
			verb = "Assembly"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GREAT JOB! %s finished in %s. Final score: %d", verb, v.Timer, v.Score), 40, 140)
	default:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Next part: %s", v.NextPart), 40, 140)
		if v.HintVisible {
			ebitenutil.DebugPrintAt(screen, v.HintText, 40, 160)
		}
	}

	for _, p := range v.Parts {
		d.drawPart(screen, p)
	}
}

// drawPart 绘制一个零件卡片
func (d *DrillScene) drawPart(screen *ebiten.Image, p game.PartView) {
	pos, ok := d.displayed[p.ID]
	if !ok {
		pos = p.Position
	}
	r := PartRect(pos, boardCenterX, boardCenterY)
	style := config.GetPartStyle(p.Category)

	fill := style.Fill
	if p.Removed {
		// 已拆下/未装上的零件半透明显示
		fill = color.RGBA{R: fill.R * 2 / 5, G: fill.G * 2 / 5, B: fill.B * 2 / 5, A: 0x66}
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, true)

	if p.Next {
		vector.StrokeRect(screen, float32(r.X)-2, float32(r.Y)-2, float32(r.W)+4, float32(r.H)+4, 3, colorHighlight, true)
	}
	if p.Next && d.view.HintVisible {
		vector.StrokeRect(screen, float32(r.X)-6, float32(r.Y)-6, float32(r.W)+12, float32(r.H)+12, 1, colorHint, true)
	}

	// 旋转指针：拆下的零件按飞出角度倾斜
	rad := d.rotations[p.ID] * math.Pi / 180
	nx, ny := r.X+8, r.Y+r.H/2
	vector.StrokeLine(screen, float32(nx), float32(ny),
		float32(nx+6*math.Cos(rad)), float32(ny+6*math.Sin(rad)), 2, color.White, true)

	label := fmt.Sprintf("%s %s #%d", style.Glyph, p.Name, p.Order)
	ebitenutil.DebugPrintAt(screen, label, int(r.X)+18, int(r.Y+r.H/2)-8)
}
