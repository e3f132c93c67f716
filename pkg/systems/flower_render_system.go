package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/game"
	"github.com/decker502/wishbloom/pkg/utils"
)

// FlowerSource 花朵快照的来源（GardenManager）
type FlowerSource interface {
	Snapshot() []game.Flower
}

// Clock 场景时钟
type Clock interface {
	Now() float64
}

var (
	stemColor   = color.RGBA{R: 0x2F, G: 0x7C, B: 0x31, A: 0xFF}
	leafColor   = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	shadowColor = color.RGBA{A: 0x40}
)

const (
	stemWidth     = 4.0
	leafStemWidth = 2.0
)

// FlowerRenderSystem 花朵渲染系统
//
// 只读取 GardenManager 的快照，不持有任何花朵引用。
// 每朵花按自身年龄计算动画状态（FlowerPose），依次绘制：
// 茎 → 左叶 → 右叶 → 三圈花瓣 → 花心 → 高光
type FlowerRenderSystem struct {
	source FlowerSource
	clock  Clock

	// 颜色解析缓存（hex -> RGBA）
	colorCache map[string]color.RGBA
}

// NewFlowerRenderSystem 创建花朵渲染系统
func NewFlowerRenderSystem(source FlowerSource, clock Clock) *FlowerRenderSystem {
	return &FlowerRenderSystem{
		source:     source,
		clock:      clock,
		colorCache: make(map[string]color.RGBA),
	}
}

// Draw 绘制所有活动花朵，花朵从视口底部生长
func (s *FlowerRenderSystem) Draw(screen *ebiten.Image, viewportHeight float64) {
	now := s.clock.Now()
	for _, f := range s.source.Snapshot() {
		pose := ComputeFlowerPose(f.Age(now), f.SwayPhaseOffset, f.TTL)
		if pose.Alpha <= 0 {
			continue
		}
		s.drawFlower(screen, f, pose, viewportHeight)
	}
}

// flowerTransform 局部坐标到屏幕坐标的变换
type flowerTransform struct {
	baseHeight float64
	sx         float64 // x 方向缩放（flowerWidth / 120）
	scale      float64 // 退场缩放
	sin, cos   float64 // 摇摆旋转
	originX    float64
	originY    float64
}

func newFlowerTransform(f game.Flower, pose FlowerPose, viewportHeight float64) flowerTransform {
	sin, cos := math.Sincos(pose.SwayAngle * math.Pi / 180)
	return flowerTransform{
		baseHeight: f.BaseHeight,
		sx:         f.Width / flowerViewWidth,
		scale:      pose.ExitScale,
		sin:        sin,
		cos:        cos,
		originX:    f.SpawnX + pose.SwayOffsetX,
		originY:    viewportHeight + pose.ExitOffsetY,
	}
}

// apply 以茎底部为原点：先缩放，再绕底部旋转，最后平移到屏幕
func (t flowerTransform) apply(p utils.Point) utils.Point {
	x := (p.X - flowerCenterX) * t.sx * t.scale
	y := (p.Y - t.baseHeight) * t.scale
	return utils.Point{
		X: t.originX + x*t.cos - y*t.sin,
		Y: t.originY + x*t.sin + y*t.cos,
	}
}

// size 形状尺寸的缩放
func (t flowerTransform) size(v float64) float64 {
	return v * t.sx * t.scale
}

// rotation 叠加摇摆角度后的旋转（弧度）
func (t flowerTransform) rotation(deg float64) float64 {
	return deg*math.Pi/180 + math.Atan2(t.sin, t.cos)
}

func (s *FlowerRenderSystem) drawFlower(screen *ebiten.Image, f game.Flower, pose FlowerPose, viewportHeight float64) {
	tf := newFlowerTransform(f, pose, viewportHeight)
	alpha := pose.Alpha

	// 阴影：在底部画一个扁椭圆代替 drop-shadow
	base := tf.apply(utils.Point{X: flowerCenterX, Y: f.BaseHeight})
	utils.FillEllipse(screen, base.X, base.Y-2, tf.size(26), 5, 0, utils.WithAlpha(shadowColor, alpha))

	// 1. 茎
	s.drawPolyline(screen, tf, StemPoints(f.BaseHeight, f.StemCurvature, pose.StemProgress),
		tf.size(stemWidth), utils.WithAlpha(stemColor, alpha))

	// 2. 叶子
	left, right := Leaves(f.BaseHeight)
	s.drawLeaf(screen, tf, left, pose.LeftLeafScale, alpha)
	s.drawLeaf(screen, tf, right, pose.RightLeafScale, alpha)

	// 3. 花头
	if pose.BloomScale <= 0 {
		return
	}
	petal := s.color(f.PetalColor)
	center := tf.apply(utils.Point{X: flowerCenterX, Y: flowerHeadY})
	bloom := pose.BloomScale

	for _, ring := range PetalRings {
		ringColor := utils.WithAlpha(config.Lighten(petal, ring.Lighten), alpha)
		rx, ry := tf.size(ring.RX)*bloom, tf.size(ring.RY)*bloom
		for _, angle := range ring.PetalAngles() {
			utils.FillEllipse(screen, center.X, center.Y, rx, ry, tf.rotation(angle), ringColor)
		}
	}

	disc := tf.size(centerDiscRadius) * bloom
	utils.FillEllipse(screen, center.X, center.Y, disc, disc, 0, utils.WithAlpha(s.color(f.CenterColor), alpha))

	hl := tf.size(highlightRadius) * bloom
	hx := center.X + tf.size(highlightOffsetX)*bloom
	hy := center.Y + tf.size(highlightOffsetY)*bloom
	utils.FillEllipse(screen, hx, hy, hl, hl, 0, utils.WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 200}, alpha))
}

// drawLeaf 叶子以其在茎上的生长点为中心缩放
func (s *FlowerRenderSystem) drawLeaf(screen *ebiten.Image, tf flowerTransform, leaf LeafSpec, scale, alpha float64) {
	if scale <= 0 {
		return
	}
	grow := func(p utils.Point) utils.Point {
		return utils.Point{
			X: leaf.Base.X + (p.X-leaf.Base.X)*scale,
			Y: leaf.Base.Y + (p.Y-leaf.Base.Y)*scale,
		}
	}
	// 叶子的透明度随缩放一起出现
	a := alpha * utils.Clamp01(scale)

	var vein []utils.Point
	for i := 0; i <= 8; i++ {
		vein = append(vein, grow(quadBezier(leaf.Base, leaf.Control, leaf.Tip, float64(i)/8)))
	}
	s.drawPolyline(screen, tf, vein, tf.size(leafStemWidth)*scale, utils.WithAlpha(stemColor, a))

	tip := tf.apply(grow(leaf.Tip))
	utils.FillEllipse(screen, tip.X, tip.Y, tf.size(leaf.RX)*scale, tf.size(leaf.RY)*scale,
		tf.rotation(leaf.Rotation), utils.WithAlpha(leafColor, a))
}

// drawPolyline 以圆头线段绘制折线
func (s *FlowerRenderSystem) drawPolyline(screen *ebiten.Image, tf flowerTransform, pts []utils.Point, width float64, clr color.RGBA) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	prev := tf.apply(pts[0])
	vector.DrawFilledCircle(screen, float32(prev.X), float32(prev.Y), float32(width/2), clr, true)
	for _, p := range pts[1:] {
		cur := tf.apply(p)
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(cur.X), float32(cur.Y), float32(width), clr, true)
		prev = cur
	}
	vector.DrawFilledCircle(screen, float32(prev.X), float32(prev.Y), float32(width/2), clr, true)
}

// color 解析并缓存颜色
func (s *FlowerRenderSystem) color(hex string) color.RGBA {
	if c, ok := s.colorCache[hex]; ok {
		return c
	}
	c := config.MustHexColor(hex)
	s.colorCache[hex] = c
	return c
}
