package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
	"gopkg.in/yaml.v3"
)

// 武器配置校验错误
var (
	// ErrEmptyParts 武器没有任何零件
	ErrEmptyParts = errors.New("weapon has no parts")
	// ErrPartOrder 零件顺序不是 1..N 的连续排列
	ErrPartOrder = errors.New("part orders must be a permutation of 1..N")
)

// PartConfig 零件模板配置
// 模板只描述零件"是什么"，位置/旋转/拆卸状态在每局开始时由会话计算
type PartConfig struct {
	ID       string             `yaml:"id"`       // 零件ID，在武器内唯一，如 "magazine"
	Name     string             `yaml:"name"`     // 显示名称，如 "Magazine"
	Category types.PartCategory `yaml:"category"` // 零件类别，决定展示样式
	Order    int                `yaml:"order"`    // 拆卸顺序（从1开始），组装时同样按此顺序装回
	Hint     string             `yaml:"hint"`     // 提示文本（可选），为空时使用默认提示
}

// WeaponConfig 武器配置数据结构
// Parts 是不可变模板，会话永远不直接修改它
type WeaponConfig struct {
	ID         string           `yaml:"id"`         // 武器ID，如 "pm"
	Name       string           `yaml:"name"`       // 显示名称
	Icon       string           `yaml:"icon"`       // 图标名称（纯装饰）
	Difficulty types.Difficulty `yaml:"difficulty"` // 难度：easy / medium / hard
	Parts      []PartConfig     `yaml:"parts"`      // 零件模板列表
}

// PartCount 返回零件数量 N
func (w *WeaponConfig) PartCount() int {
	return len(w.Parts)
}

// PartByOrder 返回指定顺序的零件模板
func (w *WeaponConfig) PartByOrder(order int) (PartConfig, bool) {
	for _, p := range w.Parts {
		if p.Order == order {
			return p, true
		}
	}
	return PartConfig{}, false
}

// WeaponCatalog 武器目录
type WeaponCatalog struct {
	Weapons []WeaponConfig `yaml:"weapons"`

	byID map[string]*WeaponConfig
}

// Get 按ID查找武器
func (c *WeaponCatalog) Get(id string) (*WeaponConfig, bool) {
	w, ok := c.byID[id]
	return w, ok
}

// IDs 按配置文件中的顺序返回全部武器ID
func (c *WeaponCatalog) IDs() []string {
	ids := make([]string, 0, len(c.Weapons))
	for _, w := range c.Weapons {
		ids = append(ids, w.ID)
	}
	return ids
}

// LoadWeaponCatalog 从YAML文件加载武器目录
// 参数：
//
//	filepath - 武器配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*WeaponCatalog - 解析并校验后的武器目录
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadWeaponCatalog(filepath string) (*WeaponCatalog, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon catalog %s: %w", filepath, err)
	}

	catalog, err := ParseWeaponCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid weapon catalog %s: %w", filepath, err)
	}
	return catalog, nil
}

// ParseWeaponCatalog 从YAML数据解析武器目录
// 任何一件武器配置不合法都会导致整个目录被拒绝（配置缺陷应尽早暴露）
func ParseWeaponCatalog(data []byte) (*WeaponCatalog, error) {
	var catalog WeaponCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse weapon catalog YAML: %w", err)
	}

	if len(catalog.Weapons) == 0 {
		return nil, fmt.Errorf("at least one weapon is required")
	}

	catalog.byID = make(map[string]*WeaponConfig, len(catalog.Weapons))
	for i := range catalog.Weapons {
		w := &catalog.Weapons[i]
		applyWeaponDefaults(w)

		if err := validateWeaponConfig(w); err != nil {
			return nil, fmt.Errorf("weapon %d (%s): %w", i, w.ID, err)
		}
		if _, exists := catalog.byID[w.ID]; exists {
			return nil, fmt.Errorf("duplicate weapon ID %q", w.ID)
		}
		catalog.byID[w.ID] = w
	}

	return &catalog, nil
}

// applyWeaponDefaults 为缺失的可选字段设置默认值，并将零件按顺序排列
func applyWeaponDefaults(w *WeaponConfig) {
	if w.Name == "" {
		w.Name = w.ID
	}
	if w.Icon == "" {
		w.Icon = "crosshair"
	}
	for i := range w.Parts {
		if w.Parts[i].Name == "" {
			w.Parts[i].Name = w.Parts[i].ID
		}
	}

	// 展示层按列表顺序绘制，保持与拆卸顺序一致
	sort.SliceStable(w.Parts, func(i, j int) bool {
		return w.Parts[i].Order < w.Parts[j].Order
	})
}

// validateWeaponConfig 验证武器配置的完整性和合法性
func validateWeaponConfig(w *WeaponConfig) error {
	if w.ID == "" {
		return fmt.Errorf("weapon ID is required")
	}

	return ValidateParts(w.Parts)
}

// ValidateParts 验证零件列表：非空、ID唯一、顺序为 1..N 的排列
func ValidateParts(parts []PartConfig) error {
	n := len(parts)
	if n == 0 {
		return ErrEmptyParts
	}

	seenIDs := make(map[string]bool, n)
	seenOrders := make([]bool, n+1)
	for i, p := range parts {
		if p.ID == "" {
			return fmt.Errorf("part %d: part ID is required", i)
		}
		if seenIDs[p.ID] {
			return fmt.Errorf("part %d: duplicate part ID %q", i, p.ID)
		}
		seenIDs[p.ID] = true

		if p.Order < 1 || p.Order > n {
			return fmt.Errorf("part %q: order %d out of range 1..%d: %w", p.ID, p.Order, n, ErrPartOrder)
		}
		if seenOrders[p.Order] {
			return fmt.Errorf("part %q: duplicate order %d: %w", p.ID, p.Order, ErrPartOrder)
		}
		seenOrders[p.Order] = true
	}

	return nil
}
