package config

import (
	"image/color"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

// PartStyle 零件展示样式
type PartStyle struct {
	Icon  string     // 图标名称，如 "box"
	Glyph string     // 调试字体可绘制的单字符图标
	Fill  color.RGBA // 零件主体颜色
}

// PartStyles 零件样式表（使用 types.PartCategory 作为键）
var PartStyles = map[types.PartCategory]PartStyle{
	types.PartMagazine: {Icon: "box", Glyph: "#", Fill: color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}},
	types.PartSlide:    {Icon: "rectangle-horizontal", Glyph: "=", Fill: color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}},
	types.PartSpring:   {Icon: "circle-dot", Glyph: "@", Fill: color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}},
	types.PartBarrel:   {Icon: "cylinder", Glyph: "|", Fill: color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff}},
	types.PartFrame:    {Icon: "square", Glyph: "[", Fill: color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}},
	types.PartBolt:     {Icon: "cog", Glyph: "*", Fill: color.RGBA{R: 0x6e, G: 0x62, B: 0x55, A: 0xff}},
	types.PartCover:    {Icon: "panel-top", Glyph: "^", Fill: color.RGBA{R: 0x5a, G: 0x64, B: 0x5a, A: 0xff}},
	types.PartStock:    {Icon: "triangle", Glyph: "<", Fill: color.RGBA{R: 0x7a, G: 0x55, B: 0x3a, A: 0xff}},
	types.PartCylinder: {Icon: "disc", Glyph: "O", Fill: color.RGBA{R: 0x70, G: 0x70, B: 0x80, A: 0xff}},
}

// defaultPartStyle 未知类别的样式
var defaultPartStyle = PartStyle{Icon: "square", Glyph: "?", Fill: color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}}

// GetPartStyle 获取零件类别对应的样式，未配置的类别返回默认样式
func GetPartStyle(category types.PartCategory) PartStyle {
	if style, ok := PartStyles[category]; ok {
		return style
	}
	return defaultPartStyle
}
