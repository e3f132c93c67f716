package components

import "image/color"

// ConfettiShape 彩纸形状
type ConfettiShape int

const (
	ConfettiSquare ConfettiShape = iota
	ConfettiCircle
)

// ConfettiComponent 单片彩纸的运动状态
//
// 按固定 tick（1/60 秒）推进，而不是按真实时间：
// 速度单位是"像素/tick"，每 tick 乘以 Decay 衰减。
// 位置存放在 PositionComponent 中。
type ConfettiComponent struct {
	Angle    float64 // 运动方向（弧度，屏幕坐标系）
	Velocity float64 // 速度（像素/tick）
	Decay    float64
	Gravity  float64
	Drift    float64
	Scalar   float64

	// 摆动（左右飘动）
	Wobble      float64
	WobbleSpeed float64
	WobbleX     float64
	WobbleY     float64

	// 翻转（决定四边形的形变）
	TiltAngle float64
	TiltSin   float64
	TiltCos   float64
	Random    float64 // 每片彩纸固定的随机系数 [2, 3)

	// NoiseOffset 湍流噪声的采样偏移，使各片彩纸受到不同的扰动
	NoiseOffset float64

	Color color.RGBA
	Shape ConfettiShape

	Tick       int
	TotalTicks int
}
