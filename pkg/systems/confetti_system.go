package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ojrac/opensimplex-go"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/utils"
)

// confettiTick 彩纸物理以固定步长推进
const confettiTick = 1.0 / 60.0

const (
	// 椭圆彩纸的压扁系数
	confettiOvalScalar = 0.6
	// 湍流噪声的采样频率与强度
	turbulenceFrequency = 0.04
	turbulenceStrength  = 0.6
)

// defaultConfettiColors 主题未提供彩纸颜色时使用
var defaultConfettiColors = []string{"#26ccff", "#a25afd", "#ff5e7e", "#88ff5a", "#fcff42", "#ffa62d", "#ff36ff"}

// ConfettiSystem 彩纸爆发
// 实现 game.Celebration：Fire 一次性生成 ParticleCount 片彩纸，
// 每片彩纸按 tick 推进，TotalTicks 后自行销毁
type ConfettiSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.ConfettiConfig
	rng           *rand.Rand
	noise         opensimplex.Noise

	viewportWidth  float64
	viewportHeight float64

	accumulator float64
}

// NewConfettiSystem 创建彩纸系统
// rng 为 nil 时使用随机种子
func NewConfettiSystem(em *ecs.EntityManager, cfg config.ConfettiConfig, rng *rand.Rand) *ConfettiSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ConfettiSystem{
		entityManager:  em,
		cfg:            cfg,
		rng:            rng,
		noise:          opensimplex.New(rng.Int64()),
		viewportWidth:  config.GameWindowWidth,
		viewportHeight: config.GameWindowHeight,
	}
}

// SetViewport 更新发射原点所依据的视口尺寸
func (s *ConfettiSystem) SetViewport(width, height float64) {
	s.viewportWidth = width
	s.viewportHeight = height
}

// Fire 从视口的 (OriginX, OriginY) 处发射一次彩纸
func (s *ConfettiSystem) Fire(colors []string) {
	palette := parseConfettiColors(colors)

	originX := s.viewportWidth * s.cfg.OriginX
	originY := s.viewportHeight * s.cfg.OriginY

	angle := s.cfg.Angle * math.Pi / 180
	spread := s.cfg.Spread * math.Pi / 180

	for i := 0; i < s.cfg.ParticleCount; i++ {
		shape := components.ConfettiSquare
		if s.rng.IntN(2) == 1 {
			shape = components.ConfettiCircle
		}

		confetti := &components.ConfettiComponent{
			Angle:       -angle + (0.5*spread - s.rng.Float64()*spread),
			Velocity:    s.cfg.StartVelocity*0.5 + s.rng.Float64()*s.cfg.StartVelocity,
			Decay:       s.cfg.Decay,
			Gravity:     s.cfg.Gravity * 3,
			Drift:       s.cfg.Drift,
			Scalar:      s.cfg.Scalar,
			Wobble:      s.rng.Float64() * 10,
			WobbleSpeed: math.Min(0.11, s.rng.Float64()*0.1+0.05),
			TiltAngle:   (s.rng.Float64()*0.5 + 0.25) * math.Pi,
			Random:      s.rng.Float64() + 2,
			NoiseOffset: s.rng.Float64() * 1000,
			Color:       palette[i%len(palette)],
			Shape:       shape,
			TotalTicks:  s.cfg.Ticks,
		}
		confetti.WobbleX, confetti.WobbleY = originX, originY

		id := s.entityManager.CreateEntity()
		s.entityManager.AddComponent(id, &components.PositionComponent{X: originX, Y: originY})
		s.entityManager.AddComponent(id, confetti)
	}

	log.Printf("[ConfettiSystem] Fired %d pieces at (%.0f, %.0f)", s.cfg.ParticleCount, originX, originY)
}

// ActiveCount 返回仍在飞行的彩纸数量
func (s *ConfettiSystem) ActiveCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiComponent](s.entityManager) {
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		if c.Tick < c.TotalTicks {
			count++
		}
	}
	return count
}

// Update 按固定步长推进所有彩纸
func (s *ConfettiSystem) Update(deltaTime float64) {
	s.accumulator += deltaTime
	for s.accumulator >= confettiTick {
		s.accumulator -= confettiTick
		s.step()
	}
}

// step 推进一个 tick
func (s *ConfettiSystem) step() {
	for _, id := range ecs.GetEntitiesWith2[*components.ConfettiComponent, *components.PositionComponent](s.entityManager) {
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if c.Tick >= c.TotalTicks {
			continue
		}

		turbulence := s.noise.Eval2(c.NoiseOffset, float64(c.Tick)*turbulenceFrequency) * turbulenceStrength

		pos.X += math.Cos(c.Angle)*c.Velocity + c.Drift + turbulence
		pos.Y += math.Sin(c.Angle)*c.Velocity + c.Gravity
		c.Velocity *= c.Decay

		c.Wobble += c.WobbleSpeed
		c.WobbleX = pos.X + 10*c.Scalar*math.Cos(c.Wobble)
		c.WobbleY = pos.Y + 10*c.Scalar*math.Sin(c.Wobble)

		c.TiltAngle += 0.1
		c.TiltSin, c.TiltCos = math.Sincos(c.TiltAngle)
		c.Random = s.rng.Float64() + 2

		c.Tick++
		if c.Tick >= c.TotalTicks {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Draw 绘制所有彩纸，透明度随 tick 线性下降
func (s *ConfettiSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ConfettiComponent, *components.PositionComponent](s.entityManager) {
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		alpha := ConfettiAlpha(c)
		if alpha <= 0 {
			continue
		}
		clr := utils.WithAlpha(c.Color, alpha)

		x1 := pos.X + c.Random*c.TiltCos
		y1 := pos.Y + c.Random*c.TiltSin
		x2 := c.WobbleX + c.Random*c.TiltCos
		y2 := c.WobbleY + c.Random*c.TiltSin

		switch c.Shape {
		case components.ConfettiCircle:
			rx := math.Abs(x2-x1) * confettiOvalScalar
			ry := math.Abs(y2-y1) * confettiOvalScalar
			utils.FillEllipse(screen, pos.X, pos.Y, rx, ry, math.Pi/10*c.Wobble, clr)
		default:
			utils.FillConvexPolygon(screen, []utils.Point{
				{X: math.Floor(pos.X), Y: math.Floor(pos.Y)},
				{X: math.Floor(c.WobbleX), Y: math.Floor(y1)},
				{X: math.Floor(x2), Y: math.Floor(y2)},
				{X: math.Floor(x1), Y: math.Floor(c.WobbleY)},
			}, clr)
		}
	}
}

// ConfettiAlpha 1 - tick/totalTicks
func ConfettiAlpha(c *components.ConfettiComponent) float64 {
	if c.TotalTicks <= 0 {
		return 0
	}
	return 1 - float64(c.Tick)/float64(c.TotalTicks)
}

// parseConfettiColors 解析颜色，无效颜色被跳过
func parseConfettiColors(colors []string) []color.RGBA {
	palette := make([]color.RGBA, 0, len(colors))
	for _, hex := range colors {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			log.Printf("[ConfettiSystem] Warning: skip color %q: %v", hex, err)
			continue
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		for _, hex := range defaultConfettiColors {
			palette = append(palette, config.MustHexColor(hex))
		}
	}
	return palette
}
