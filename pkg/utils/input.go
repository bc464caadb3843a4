// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerJustPressed 检查本帧是否刚刚发生点击或触摸
// 同时支持鼠标和触摸输入，优先检测触摸
//
// 返回：
//   - bool: 是否刚刚按下
//   - float64, float64: 按下位置（逻辑屏幕坐标）
func PointerJustPressed() (bool, float64, float64) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, float64(x), float64(y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, float64(x), float64(y)
	}

	return false, 0, 0
}
