package game

import (
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

// 计分规则：每个正确步骤固定 +100，完成时写入记录的分数额外 +200
// 界面显示的分数不包含完成奖励
const (
	StepScore       = 100
	CompletionBonus = 200
)

// Part 会话中的零件工作副本
type Part struct {
	ID       string
	Name     string
	Category types.PartCategory
	Order    int
	Hint     string
	Position Position
	Rotation float64 // 旋转角度（度），纯装饰
	Removed  bool    // 分解模式：已拆下；组装模式：尚未装上
}

// Actionable 判断零件在当前模式下是否可被点击
// 分解模式只能点击未拆下的零件，组装模式只能点击尚未装上的零件
func (p Part) Actionable(mode types.Mode) bool {
	if mode == types.ModeAssembly {
		return p.Removed
	}
	return !p.Removed
}

// ClickOutcome 点击零件的结果
type ClickOutcome int

const (
	// ClickIgnored 点击被忽略（顺序错误、状态不匹配或会话未进行）
	ClickIgnored ClickOutcome = iota
	// ClickAdvanced 正确点击，步骤前进
	ClickAdvanced
	// ClickCompleted 正确点击且完成了最后一步
	ClickCompleted
)

// String 返回点击结果的字符串表示
func (o ClickOutcome) String() string {
	switch o {
	case ClickAdvanced:
		return "advanced"
	case ClickCompleted:
		return "completed"
	default:
		return "ignored"
	}
}

// SessionState 一局训练的不可变快照
//
// 所有状态转换都返回新的快照，原快照不被修改：
//   - NewSessionState: 开局
//   - ClickPart: 点击零件
//   - ToggleHint: 切换提示
//   - Tick: 计时器前进一秒
type SessionState struct {
	ID          string               // 会话ID，用于拒绝过期的计时器回调
	Phase       types.Phase          // 当前阶段
	Mode        types.Mode           // 训练模式
	Weapon      *config.WeaponConfig // 武器模板（只读）
	Parts       []Part               // 零件工作副本
	CurrentStep int                  // 已完成步骤数 [0, N]
	Timer       int                  // 已用时间（秒）
	Score       int                  // 累计分数
	HintVisible bool                 // 是否显示提示
}

// IdleState 返回无会话时的空状态
func IdleState() SessionState {
	return SessionState{Phase: types.PhaseIdle}
}

// NewSessionState 根据武器模板创建一局新的训练
//
// 参数：
//   - id: 会话ID
//   - mode: 训练模式
//   - weapon: 武器模板，零件列表必须已通过校验
//
// 返回：
//   - SessionState: 处于进行中阶段的初始快照
func NewSessionState(id string, mode types.Mode, weapon *config.WeaponConfig) SessionState {
	parts := make([]Part, len(weapon.Parts))
	for i, tmpl := range weapon.Parts {
		p := Part{
			ID:       tmpl.ID,
			Name:     tmpl.Name,
			Category: tmpl.Category,
			Order:    tmpl.Order,
			Hint:     tmpl.Hint,
			Removed:  mode == types.ModeAssembly,
		}
		if mode == types.ModeAssembly {
			p.Position = ScatteredPosition(tmpl.Order)
		} else {
			p.Position = AssembledPosition(tmpl.Order)
		}
		parts[i] = p
	}

	return SessionState{
		ID:     id,
		Phase:  types.PhaseInProgress,
		Mode:   mode,
		Weapon: weapon,
		Parts:  parts,
	}
}

// Clone 返回深拷贝，零件切片独立
func (s SessionState) Clone() SessionState {
	if s.Parts != nil {
		parts := make([]Part, len(s.Parts))
		copy(parts, s.Parts)
		s.Parts = parts
	}
	return s
}

// PartCount 返回零件数量 N
func (s SessionState) PartCount() int {
	return len(s.Parts)
}

// Progress 返回完成进度 currentStep / N
func (s SessionState) Progress() float64 {
	if len(s.Parts) == 0 {
		return 0
	}
	return float64(s.CurrentStep) / float64(len(s.Parts))
}

// NextPart 返回下一个需要操作的零件（order == currentStep+1）
func (s SessionState) NextPart() (Part, bool) {
	if s.Phase != types.PhaseInProgress {
		return Part{}, false
	}
	for _, p := range s.Parts {
		if p.Order == s.CurrentStep+1 {
			return p, true
		}
	}
	return Part{}, false
}

// FindPart 按ID查找零件
func (s SessionState) FindPart(partID string) (Part, int, bool) {
	for i, p := range s.Parts {
		if p.ID == partID {
			return p, i, true
		}
	}
	return Part{}, -1, false
}

// RecordScore 返回写入排行榜的分数（累计分数 + 完成奖励）
func (s SessionState) RecordScore() int {
	return s.Score + CompletionBonus
}

// ClickPart 处理零件点击
//
// 只有同时满足以下条件时步骤才会前进：
//   - 会话处于进行中阶段
//   - 零件的状态与模式匹配（见 Part.Actionable）
//   - part.Order == CurrentStep+1
//
// 其他情况原样返回快照和 ClickIgnored。
//
// 参数：
//   - partID: 被点击的零件ID
//   - rng: 拆卸飞出方向的随机数来源（组装模式不使用）
func (s SessionState) ClickPart(partID string, rng Sampler) (SessionState, ClickOutcome) {
	if s.Phase != types.PhaseInProgress {
		return s, ClickIgnored
	}

	part, idx, ok := s.FindPart(partID)
	if !ok || !part.Actionable(s.Mode) || part.Order != s.CurrentStep+1 {
		return s, ClickIgnored
	}

	next := s.Clone()
	p := &next.Parts[idx]
	if s.Mode == types.ModeDisassembly {
		p.Removed = true
		p.Position, p.Rotation = Departure(part.Position.Y, rng)
	} else {
		p.Removed = false
		p.Position = AssembledPosition(part.Order)
		p.Rotation = 0
	}

	next.CurrentStep++
	next.Score += StepScore
	next.HintVisible = false

	if next.CurrentStep == len(next.Parts) {
		next.Phase = types.PhaseComplete
		return next, ClickCompleted
	}
	return next, ClickAdvanced
}

// ToggleHint 切换提示显示，仅在进行中阶段有效
func (s SessionState) ToggleHint() SessionState {
	if s.Phase != types.PhaseInProgress {
		return s
	}
	s.HintVisible = !s.HintVisible
	return s
}

// Tick 计时器前进一秒，仅在进行中阶段有效
func (s SessionState) Tick() SessionState {
	if s.Phase != types.PhaseInProgress {
		return s
	}
	s.Timer++
	return s
}
