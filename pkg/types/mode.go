// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Mode 定义训练模式
type Mode int

const (
	// ModeDisassembly 分解模式：按顺序拆下零件
	ModeDisassembly Mode = iota
	// ModeAssembly 组装模式：按顺序装回零件
	ModeAssembly
)

// String 返回模式的字符串表示（用于配置和日志）
func (m Mode) String() string {
	switch m {
	case ModeDisassembly:
		return "disassembly"
	case ModeAssembly:
		return "assembly"
	default:
		return "unknown"
	}
}

// Label 返回模式的显示名称，写入排行榜记录
func (m Mode) Label() string {
	switch m {
	case ModeDisassembly:
		return "Disassembly"
	case ModeAssembly:
		return "Assembly"
	default:
		return "Unknown"
	}
}

// Opposite 返回相反的模式（分解 <-> 组装）
func (m Mode) Opposite() Mode {
	if m == ModeAssembly {
		return ModeDisassembly
	}
	return ModeAssembly
}

// ParseMode 将字符串解析为 Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "disassembly", "Disassembly":
		return ModeDisassembly, nil
	case "assembly", "Assembly":
		return ModeAssembly, nil
	default:
		return ModeDisassembly, fmt.Errorf("unknown mode %q", s)
	}
}

// Phase 定义会话所处的阶段
type Phase int

const (
	// PhaseIdle 没有进行中的会话（菜单界面）
	PhaseIdle Phase = iota
	// PhaseInProgress 会话进行中（0 <= currentStep < N）
	PhaseInProgress
	// PhaseComplete 会话已完成（currentStep == N），终态
	PhaseComplete
)

// String 返回阶段的字符串表示，同时作为展示层的屏幕标签
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
