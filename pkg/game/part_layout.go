package game

import "math"

// Position 零件的伪3D偏移，仅用于动画摆放
// Z=0 表示装配位置，Z=DetachedZ 表示已拆下的零件堆
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// 布局参数
const (
	// DetachedZ 已拆下零件的Z偏移
	DetachedZ = 50.0

	// 装配位置：纵向堆叠，y = order*StackSpacing + StackOffset
	StackSpacing = 10.0
	StackOffset  = -40.0

	// 组装模式初始散落：以 order*ScatterAngleStep 为角度的环形排布
	ScatterAngleStep = 60.0
	ScatterRadius    = 200.0
	ScatterRowHeight = 30.0

	// 拆卸飞出：角度 [0, 360)，距离 [DepartureMinDistance, DepartureMinDistance+DepartureDistanceSpan)
	DepartureMinDistance  = 150.0
	DepartureDistanceSpan = 100.0
)

// Sampler 均匀分布 [0, 1) 随机数来源
// *rand.Rand（math/rand/v2）满足该接口
type Sampler interface {
	Float64() float64
}

// AssembledPosition 返回零件在装配状态下的位置
func AssembledPosition(order int) Position {
	return Position{
		X: 0,
		Y: float64(order)*StackSpacing + StackOffset,
		Z: 0,
	}
}

// ScatteredPosition 返回组装模式开局时零件在散落堆中的位置
func ScatteredPosition(order int) Position {
	rad := degToRad(float64(order) * ScatterAngleStep)
	return Position{
		X: math.Cos(rad) * ScatterRadius,
		Y: float64(order) * ScatterRowHeight,
		Z: DetachedZ,
	}
}

// Departure 计算零件被拆下后飞出的位置和旋转角度
//
// 参数：
//   - oldY: 拆下前的Y坐标
//   - rng: 随机数来源
//
// 返回：
//   - Position: 飞出后的位置（Z 固定为 DetachedZ）
//   - float64: 旋转角度（度），与飞出角度相同
func Departure(oldY float64, rng Sampler) (Position, float64) {
	angle := rng.Float64() * 360
	distance := DepartureMinDistance + rng.Float64()*DepartureDistanceSpan
	rad := degToRad(angle)

	return Position{
		X: math.Cos(rad) * distance,
		Y: oldY + math.Sin(rad)*distance,
		Z: DetachedZ,
	}, angle
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
