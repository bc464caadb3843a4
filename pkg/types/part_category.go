package types

import "fmt"

// Difficulty 定义武器的难度等级
type Difficulty int

const (
	// DifficultyEasy 简单
	DifficultyEasy Difficulty = iota
	// DifficultyMedium 中等
	DifficultyMedium
	// DifficultyHard 困难
	DifficultyHard
)

// String 返回难度的字符串表示
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// UnmarshalText 支持在 YAML 配置中直接书写 "easy" / "medium" / "hard"
func (d *Difficulty) UnmarshalText(text []byte) error {
	switch string(text) {
	case "easy", "":
		*d = DifficultyEasy
	case "medium":
		*d = DifficultyMedium
	case "hard":
		*d = DifficultyHard
	default:
		return fmt.Errorf("unknown difficulty %q", string(text))
	}
	return nil
}

// MarshalText 与 UnmarshalText 对称
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// PartCategory 定义零件的类别
// 展示层根据类别选择图标和颜色，不再通过零件ID子串匹配
type PartCategory int

const (
	// PartUnknown 未知类别（使用默认样式）
	PartUnknown PartCategory = iota
	// PartMagazine 弹匣
	PartMagazine
	// PartSlide 套筒
	PartSlide
	// PartSpring 复进簧
	PartSpring
	// PartBarrel 枪管
	PartBarrel
	// PartFrame 套筒座/机匣
	PartFrame
	// PartBolt 枪机
	PartBolt
	// PartCover 机匣盖
	PartCover
	// PartStock 枪托
	PartStock
	// PartCylinder 转轮
	PartCylinder
)

var partCategoryNames = map[PartCategory]string{
	PartUnknown:  "unknown",
	PartMagazine: "magazine",
	PartSlide:    "slide",
	PartSpring:   "spring",
	PartBarrel:   "barrel",
	PartFrame:    "frame",
	PartBolt:     "bolt",
	PartCover:    "cover",
	PartStock:    "stock",
	PartCylinder: "cylinder",
}

// String 返回零件类别的字符串表示
func (c PartCategory) String() string {
	if name, ok := partCategoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParsePartCategory 将字符串解析为 PartCategory
func ParsePartCategory(s string) (PartCategory, error) {
	for category, name := range partCategoryNames {
		if name == s {
			return category, nil
		}
	}
	return PartUnknown, fmt.Errorf("unknown part category %q", s)
}

// UnmarshalText 支持在 YAML 配置中直接书写类别名称
func (c *PartCategory) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = PartUnknown
		return nil
	}
	category, err := ParsePartCategory(string(text))
	if err != nil {
		return err
	}
	*c = category
	return nil
}

// MarshalText 与 UnmarshalText 对称
func (c PartCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
