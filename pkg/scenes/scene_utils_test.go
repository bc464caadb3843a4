package scenes

import (
	"math"
	"testing"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/game"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

// TestIsPointInRect 测试点是否在矩形内的判断
func TestIsPointInRect(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		x, y     float64
		w, h     float64
		expected bool
	}{
		{"点在矩形中心", 50, 50, 0, 0, 100, 100, true},
		{"点在矩形左上角", 0, 0, 0, 0, 100, 100, true},
		{"点在矩形右下角", 100, 100, 0, 0, 100, 100, true},
		{"点在矩形左侧外", -1, 50, 0, 0, 100, 100, false},
		{"点在矩形下方外", 50, 101, 0, 0, 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPointInRect(tt.px, tt.py, tt.x, tt.y, tt.w, tt.h); got != tt.expected {
				t.Errorf("isPointInRect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestProjectScale(t *testing.T) {
	if got := ProjectScale(0); got != 1 {
		t.Errorf("ProjectScale(0) = %v, want 1", got)
	}
	want := Perspective / (Perspective - game.DetachedZ)
	if got := ProjectScale(game.DetachedZ); math.Abs(got-want) > 1e-9 {
		t.Errorf("ProjectScale(%v) = %v, want %v", game.DetachedZ, got, want)
	}
	if got := ProjectScale(Perspective); got != 1 {
		t.Errorf("ProjectScale(Perspective) = %v, want 1", got)
	}
}

func TestProject(t *testing.T) {
	x, y, scale := Project(game.Position{X: 10, Y: -20}, 500, 300)
	if scale != 1 {
		t.Fatalf("scale = %v, want 1", scale)
	}
	if x != 500+10*LayoutScale || y != 300-20*LayoutScale {
		t.Errorf("Project() = (%v, %v)", x, y)
	}
}

func TestPartRectClamped(t *testing.T) {
	r := PartRect(game.Position{}, 500, 300)
	if r.W != PartCardWidth || r.H != PartCardHeight {
		t.Errorf("card size = %vx%v", r.W, r.H)
	}
	if !r.Contains(500, 300) {
		t.Error("card should be centred on the projected point")
	}

	// 飞出屏幕的零件被限制在零件区域内
	far := PartRect(game.Position{X: 5000, Y: -5000, Z: game.DetachedZ}, 500, 300)
	if far.X+far.W > config.GameWindowWidth || far.Y < BoardTop {
		t.Errorf("card not clamped: %+v", far)
	}
}

// TestAssembledCardsDoNotOverlap 装配堆叠中的卡片可以逐个点击
func TestAssembledCardsDoNotOverlap(t *testing.T) {
	for order := 1; order < 9; order++ {
		a := PartRect(game.AssembledPosition(order), 500, 300)
		b := PartRect(game.AssembledPosition(order+1), 500, 300)
		if a.Y+a.H >= b.Y {
			t.Errorf("order %d and %d overlap: %+v %+v", order, order+1, a, b)
		}
	}
}

func testParts() []game.PartView {
	return []game.PartView{
		{Part: game.Part{ID: "magazine", Order: 1, Position: game.AssembledPosition(1)}},
		{Part: game.Part{ID: "slide", Order: 2, Position: game.AssembledPosition(2)}},
		{Part: game.Part{ID: "spring", Order: 3, Position: game.AssembledPosition(3), Removed: true}},
	}
}

func TestHitTest(t *testing.T) {
	const cx, cy = 500.0, 300.0
	parts := testParts()

	center := func(pos game.Position) (float64, float64) {
		r := PartRect(pos, cx, cy)
		return r.X + r.W/2, r.Y + r.H/2
	}

	mx, my := center(parts[1].Position)
	if id, ok := HitTest(parts, nil, types.ModeDisassembly, mx, my, cx, cy); !ok || id != "slide" {
		t.Errorf("HitTest() = %q, %v, want slide", id, ok)
	}

	// 已拆下的零件在拆卸模式下不可点击
	mx, my = center(parts[2].Position)
	if id, ok := HitTest(parts, nil, types.ModeDisassembly, mx, my, cx, cy); ok {
		t.Errorf("removed part should not be hit in disassembly, got %q", id)
	}
	if id, ok := HitTest(parts, nil, types.ModeAssembly, mx, my, cx, cy); !ok || id != "spring" {
		t.Errorf("HitTest() in assembly = %q, %v, want spring", id, ok)
	}

	// 显示位置优先于目标位置
	moved := map[string]game.Position{"magazine": {X: 200, Y: 100}}
	mx, my = center(moved["magazine"])
	if id, ok := HitTest(parts, moved, types.ModeDisassembly, mx, my, cx, cy); !ok || id != "magazine" {
		t.Errorf("HitTest() with displayed position = %q, %v", id, ok)
	}

	if _, ok := HitTest(parts, nil, types.ModeDisassembly, 0, 0, cx, cy); ok {
		t.Error("empty area should not hit anything")
	}
}

// TestHitTestTopmost 重叠时命中后绘制的零件
func TestHitTestTopmost(t *testing.T) {
	parts := []game.PartView{
		{Part: game.Part{ID: "bottom", Order: 1}},
		{Part: game.Part{ID: "top", Order: 2}},
	}
	if id, ok := HitTest(parts, nil, types.ModeDisassembly, 500, 300, 500, 300); !ok || id != "top" {
		t.Errorf("HitTest() = %q, want top", id)
	}
}

func TestApproach(t *testing.T) {
	target := game.Position{X: 100, Y: -50, Z: game.DetachedZ}
	cur := game.Position{}

	prev := math.Inf(1)
	for i := 0; i < 600; i++ {
		cur = approach(cur, target, 1.0/60.0)
		d := math.Abs(target.X-cur.X) + math.Abs(target.Y-cur.Y) + math.Abs(target.Z-cur.Z)
		if d > prev {
			t.Fatalf("distance increased at frame %d", i)
		}
		prev = d
	}
	if cur != target {
		t.Errorf("approach did not settle: %+v", cur)
	}

	// 动画时长内完成大部分距离
	half := approach(game.Position{}, target, PartAnimDuration)
	if half.X < 90 {
		t.Errorf("after PartAnimDuration X = %v, want >= 90", half.X)
	}

	if got := approachAngle(0, 90, 100); got != 90 {
		t.Errorf("approachAngle() = %v, want 90", got)
	}
}
