package systems

import (
	"math"

	"github.com/decker502/wishbloom/pkg/utils"
)

// 花朵局部坐标系：宽 120 个单位，高 baseHeight 个单位，原点在左上角，
// 茎底部在 (60, baseHeight)，花心在 (60, 30)。
// 绘制时 x 方向按 flowerWidth/120 缩放，y 方向不缩放（花朵高度就是 baseHeight 像素）；
// 花瓣、叶片等形状使用 x 方向的缩放系数，保持不变形。
const (
	flowerViewWidth = 120.0
	flowerCenterX   = 60.0
	flowerHeadY     = 30.0
	stemTipY        = 35.0
)

// 分阶段动画时序（秒）
const (
	fadeInDuration  = 0.5
	fadeOutDuration = 0.5

	stemGrowDuration = 1.5

	leftLeafDelay  = 0.5
	rightLeafDelay = 0.7
	leafDuration   = 0.5
	leafBounce     = 0.25

	bloomDelay    = 1.2
	bloomDuration = 0.8
	bloomBounce   = 0.5

	swayPeriod = 6.0

	exitScale   = 0.5
	exitOffsetY = 20.0
)

var (
	swayRotation = []float64{0, 1.5, -1.5, 0} // 度
	swayOffsetX  = []float64{0, 2, -2, 0}     // 像素
)

// PetalRing 一圈花瓣
type PetalRing struct {
	Count      int
	StartAngle float64 // 度
	RX, RY     float64 // 花瓣椭圆半径（局部单位）
	Lighten    float64 // 相对花瓣颜色的提亮比例 [0, 1]
}

// PetalRings 从外到内的三圈花瓣
// 外圈 6 瓣间隔 60°，中圈 6 瓣错开 30°，内圈 5 瓣间隔 72° 且半径更小
var PetalRings = []PetalRing{
	{Count: 6, StartAngle: 0, RX: 12, RY: 18, Lighten: 0},
	{Count: 6, StartAngle: 30, RX: 10, RY: 14, Lighten: 0.12},
	{Count: 5, StartAngle: 0, RX: 7, RY: 10, Lighten: 0.25},
}

// 花心与高光
const (
	centerDiscRadius = 5.0
	highlightRadius  = 1.6
	highlightOffsetX = -1.8
	highlightOffsetY = -1.8
)

// PetalAngles 返回一圈花瓣的旋转角度（度）
func (r PetalRing) PetalAngles() []float64 {
	if r.Count <= 0 {
		return nil
	}
	step := 360.0 / float64(r.Count)
	angles := make([]float64, r.Count)
	for i := range angles {
		angles[i] = r.StartAngle + step*float64(i)
	}
	return angles
}

// FlowerPose 花朵在某一时刻的动画状态
type FlowerPose struct {
	Alpha          float64 // 整体透明度（淡入/淡出）
	StemProgress   float64 // 茎已绘制的比例 [0, 1]
	LeftLeafScale  float64
	RightLeafScale float64
	BloomScale     float64 // 花头缩放（弹簧，可能略大于 1）
	SwayAngle      float64 // 摇摆角度（度）
	SwayOffsetX    float64 // 摇摆平移（像素）
	ExitScale      float64 // 退场缩放（1 → 0.5）
	ExitOffsetY    float64 // 退场下沉（0 → 20 像素）
}

// ComputeFlowerPose 计算花朵在 age 秒时的动画状态
// 动画只是装饰性的时序，与移除计时无关：ttl 只用于安排最后 0.5 秒的淡出
func ComputeFlowerPose(age, swayPhaseOffset, ttl float64) FlowerPose {
	if age < 0 {
		age = 0
	}

	pose := FlowerPose{
		Alpha:          utils.Progress(age, 0, fadeInDuration),
		StemProgress:   utils.EaseOutCubic(utils.Progress(age, 0, stemGrowDuration)),
		LeftLeafScale:  utils.EaseSpring(utils.Progress(age, leftLeafDelay, leafDuration), leafBounce),
		RightLeafScale: utils.EaseSpring(utils.Progress(age, rightLeafDelay, leafDuration), leafBounce),
		BloomScale:     utils.EaseSpring(utils.Progress(age, bloomDelay, bloomDuration), bloomBounce),
		ExitScale:      1,
	}

	// 摇摆在相位偏移之后开始并无限循环
	if age > swayPhaseOffset {
		cycle := math.Mod(age-swayPhaseOffset, swayPeriod) / swayPeriod
		pose.SwayAngle = utils.Keyframes(swayRotation, cycle)
		pose.SwayOffsetX = utils.Keyframes(swayOffsetX, cycle)
	}

	// 最后 0.5 秒退场
	if ttl > 0 {
		exit := utils.Progress(age, ttl-fadeOutDuration, fadeOutDuration)
		if exit > 0 {
			pose.Alpha *= 1 - exit
			pose.ExitScale = utils.Lerp(1, exitScale, exit)
			pose.ExitOffsetY = exitOffsetY * exit
		}
	}
	return pose
}

// StemControlPoints 返回茎的二次贝塞尔控制点（局部坐标）
// 路径：M 60 h  Q 60+curvature h*0.5  60 35
func StemControlPoints(baseHeight, curvature float64) (p0, p1, p2 utils.Point) {
	return utils.Point{X: flowerCenterX, Y: baseHeight},
		utils.Point{X: flowerCenterX + curvature, Y: baseHeight * 0.5},
		utils.Point{X: flowerCenterX, Y: stemTipY}
}

// stemSamples 茎曲线采样段数
const stemSamples = 32

// StemPoints 返回按弧长截取 progress 比例后的茎折线（局部坐标）
func StemPoints(baseHeight, curvature, progress float64) []utils.Point {
	progress = utils.Clamp01(progress)
	if progress == 0 {
		return nil
	}
	p0, p1, p2 := StemControlPoints(baseHeight, curvature)

	full := make([]utils.Point, stemSamples+1)
	lengths := make([]float64, stemSamples+1)
	for i := 0; i <= stemSamples; i++ {
		full[i] = quadBezier(p0, p1, p2, float64(i)/stemSamples)
		if i > 0 {
			lengths[i] = lengths[i-1] + math.Hypot(full[i].X-full[i-1].X, full[i].Y-full[i-1].Y)
		}
	}

	target := lengths[stemSamples] * progress
	out := []utils.Point{full[0]}
	for i := 1; i <= stemSamples; i++ {
		if lengths[i] <= target {
			out = append(out, full[i])
			continue
		}
		// 在最后一段内插值
		segment := lengths[i] - lengths[i-1]
		if segment > 0 {
			t := (target - lengths[i-1]) / segment
			out = append(out, utils.Point{
				X: utils.Lerp(full[i-1].X, full[i].X, t),
				Y: utils.Lerp(full[i-1].Y, full[i].Y, t),
			})
		}
		break
	}
	return out
}

// quadBezier 二次贝塞尔曲线求值
func quadBezier(p0, p1, p2 utils.Point, t float64) utils.Point {
	u := 1 - t
	return utils.Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// LeafSpec 叶片：从茎上的 Base 沿二次曲线伸到 Tip，Tip 处是一片旋转的椭圆
type LeafSpec struct {
	Base, Control, Tip utils.Point
	RX, RY             float64
	Rotation           float64 // 度
}

// Leaves 返回左右两片叶子（局部坐标）
// 左叶在 0.6h 处长出，右叶在 0.45h 处长出
func Leaves(baseHeight float64) (left, right LeafSpec) {
	left = LeafSpec{
		Base:     utils.Point{X: flowerCenterX, Y: baseHeight * 0.6},
		Control:  utils.Point{X: 40, Y: baseHeight * 0.55},
		Tip:      utils.Point{X: 30, Y: baseHeight * 0.5},
		RX:       8,
		RY:       12,
		Rotation: -30,
	}
	right = LeafSpec{
		Base:     utils.Point{X: flowerCenterX, Y: baseHeight * 0.45},
		Control:  utils.Point{X: 80, Y: baseHeight * 0.4},
		Tip:      utils.Point{X: 90, Y: baseHeight * 0.35},
		RX:       8,
		RY:       12,
		Rotation: 30,
	}
	return left, right
}
