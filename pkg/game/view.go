package game

import (
	"fmt"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

// View 展示层使用的只读视图
type View struct {
	Screen      string  // 屏幕标签：idle / in_progress / complete
	Mode        types.Mode
	WeaponID    string
	WeaponName  string
	Parts       []PartView
	CurrentStep int
	TotalSteps  int
	Timer       string  // M:SS
	Score       int
	Progress    float64 // currentStep / N，范围 [0, 1]
	HintVisible bool
	HintText    string
	NextPart    string // 下一个零件名称，完成后为空
	Records     []GameRecord
}

// PartView 零件的渲染数据
type PartView struct {
	Part
	Next bool // 是否为下一个需要操作的零件（用于高亮）
}

// FormatTime 将秒数格式化为 M:SS
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// HintFor 返回零件的提示文本
func HintFor(p Part, mode types.Mode) string {
	if p.Hint != "" {
		return p.Hint
	}
	if mode == types.ModeAssembly {
		return fmt.Sprintf("Click \"%s\" in the parts pile to install it", p.Name)
	}
	return fmt.Sprintf("Click \"%s\" on the model to remove it", p.Name)
}

// BuildView 根据快照和排行榜构建视图
func BuildView(s SessionState, records []GameRecord) View {
	v := View{
		Screen:      s.Phase.String(),
		Mode:        s.Mode,
		CurrentStep: s.CurrentStep,
		TotalSteps:  s.PartCount(),
		Timer:       FormatTime(s.Timer),
		Score:       s.Score,
		Progress:    s.Progress(),
		HintVisible: s.HintVisible,
		Records:     records,
	}
	if s.Weapon != nil {
		v.WeaponID = s.Weapon.ID
		v.WeaponName = s.Weapon.Name
	}

	next, hasNext := s.NextPart()
	if hasNext {
		v.NextPart = next.Name
		if s.HintVisible {
			v.HintText = HintFor(next, s.Mode)
		}
	}

	v.Parts = make([]PartView, len(s.Parts))
	for i, p := range s.Parts {
		v.Parts[i] = PartView{
			Part: p,
			Next: hasNext && p.ID == next.ID,
		}
	}
	return v
}

// View 返回当前会话的视图
func (gs *GameSession) View() View {
	return BuildView(gs.State(), gs.Records())
}
