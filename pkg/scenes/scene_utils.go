package scenes

import (
	"math"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/game"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

// 零件卡片布局参数
const (
	// PartCardWidth 零件卡片宽度（Z=0 时）
	PartCardWidth = 200.0
	// PartCardHeight 零件卡片高度（Z=0 时），小于装配堆叠间距，保证卡片互不遮挡
	PartCardHeight = 16.0
	// LayoutScale 布局坐标到屏幕像素的缩放
	LayoutScale = 1.8
	// Perspective 透视距离（布局单位）
	Perspective = 1000.0
	// BoardTop 零件区域上边界，上方为信息栏
	BoardTop = 180.0
	// PartAnimDuration 零件移动动画时长（秒）
	PartAnimDuration = 0.7
)

// Rect 屏幕矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(px, py float64) bool {
	return isPointInRect(px, py, r.X, r.Y, r.W, r.H)
}

// isPointInRect 检查点是否在矩形内
func isPointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// ProjectScale 返回Z偏移对应的透视缩放系数
func ProjectScale(z float64) float64 {
	if z >= Perspective {
		return 1
	}
	return Perspective / (Perspective - z)
}

// Project 将零件的伪3D位置投影到屏幕坐标
//
// 参数：
//   - pos: 零件位置
//   - cx, cy: 模型中心的屏幕坐标
//
// 返回：
//   - float64, float64: 屏幕坐标
//   - float64: 缩放系数
func Project(pos game.Position, cx, cy float64) (float64, float64, float64) {
	scale := ProjectScale(pos.Z)
	return cx + pos.X*LayoutScale*scale, cy + pos.Y*LayoutScale*scale, scale
}

// PartRect 返回零件卡片在屏幕上的外接矩形（以投影点为中心）
// 飞出屏幕的卡片被限制在零件区域内
func PartRect(pos game.Position, cx, cy float64) Rect {
	x, y, scale := Project(pos, cx, cy)
	w := PartCardWidth * scale
	h := PartCardHeight * scale
	return Rect{
		X: clamp(x-w/2, 0, config.GameWindowWidth-w),
		Y: clamp(y-h/2, BoardTop, config.GameWindowHeight-h),
		W: w,
		H: h,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// HitTest 返回鼠标位置下可操作的零件ID
// 后绘制的零件在上层，因此倒序查找；不可操作的零件不接收点击
func HitTest(parts []game.PartView, positions map[string]game.Position, mode types.Mode, mx, my, cx, cy float64) (string, bool) {
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		if !p.Actionable(mode) {
			continue
		}
		pos, ok := positions[p.ID]
		if !ok {
			pos = p.Position
		}
		if PartRect(pos, cx, cy).Contains(mx, my) {
			return p.ID, true
		}
	}
	return "", false
}

// approach 将当前值按指数缓动逼近目标值
// 在 PartAnimDuration 内完成约 95% 的距离
func approach(current, target game.Position, dt float64) game.Position {
	k := 1 - math.Exp(-3*dt/PartAnimDuration)
	next := game.Position{
		X: current.X + (target.X-current.X)*k,
		Y: current.Y + (target.Y-current.Y)*k,
		Z: current.Z + (target.Z-current.Z)*k,
	}
	if math.Abs(next.X-target.X) < 0.01 && math.Abs(next.Y-target.Y) < 0.01 && math.Abs(next.Z-target.Z) < 0.01 {
		return target
	}
	return next
}

// approachAngle 旋转角度缓动
func approachAngle(current, target, dt float64) float64 {
	k := 1 - math.Exp(-3*dt/PartAnimDuration)
	next := current + (target-current)*k
	if math.Abs(next-target) < 0.01 {
		return target
	}
	return next
}
