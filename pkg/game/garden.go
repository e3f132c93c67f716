package game

import (
	"log"
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/utils"
)

// Flower 一朵点击生成的花（短暂存在的装饰实体）
// 只由 GardenManager 持有，渲染层只读取 Snapshot 的副本
type Flower struct {
	ID              string
	SpawnX          float64 // 点击位置 X（花茎底部）
	SpawnY          float64 // 点击位置 Y（仅记录，花朵总是从视口底部生长）
	BaseHeight      float64
	Width           float64
	PetalColor      string
	CenterColor     string
	StemCurvature   float64 // 茎的弯曲量，负值向左
	SwayPhaseOffset float64 // 摇摆动画的相位偏移（秒）
	CreatedAt       float64 // 生成时刻（场景时钟，秒）
	TTL             float64
}

// Age 返回花朵在 now 时刻的存活时长
func (f Flower) Age(now float64) float64 {
	return now - f.CreatedAt
}

// GardenManager 花园管理器
//
// 维护一组以 id 为键的花朵：
//   - 每次合格点击生成一朵，几何参数与颜色随机采样
//   - 每朵花在生成时注册自己的移除任务，到期无条件移除，与其他花朵互不影响
//   - 移除是幂等的
type GardenManager struct {
	cfg       config.GardenConfig
	palette   []config.FlowerColors
	scheduler *Scheduler
	rng       *rand.Rand
	newID     func() string

	flowers       map[string]Flower
	viewportWidth float64
	exclusions    func() []utils.Rect
}

// NewGardenManager 创建花园管理器
//
// 参数：
//   - cfg: 花园参数
//   - palette: 当前主题的花朵调色板（为空时使用默认调色板）
//   - scheduler: 场景调度器（移除任务在其上执行）
//   - rng: 随机源，nil 时使用全局随机源；测试注入固定种子
func NewGardenManager(cfg config.GardenConfig, palette []config.FlowerColors, scheduler *Scheduler, rng *rand.Rand) *GardenManager {
	if len(palette) == 0 {
		palette = config.DefaultFlowerPalette
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &GardenManager{
		cfg:       cfg,
		palette:   palette,
		scheduler: scheduler,
		rng:       rng,
		newID:     newFlowerID,
		flowers:   make(map[string]Flower),
	}
}

// newFlowerID 生成花朵 id（UUIDv7：毫秒时间戳 + 随机部分）
func newFlowerID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SetIDGenerator 替换 id 生成函数（测试用）
func (g *GardenManager) SetIDGenerator(fn func() string) {
	if fn != nil {
		g.newID = fn
	}
}

// SetViewportWidth 更新视口宽度（决定窄屏/宽屏高度区间）
func (g *GardenManager) SetViewportWidth(width float64) {
	g.viewportWidth = width
}

// IsNarrow 当前视口是否为窄屏
func (g *GardenManager) IsNarrow() bool {
	return g.viewportWidth < g.cfg.NarrowBreakpoint
}

// HeightRange 返回当前视口类别的高度区间
func (g *GardenManager) HeightRange() config.Range {
	if g.IsNarrow() {
		return g.cfg.NarrowHeight
	}
	return g.cfg.WideHeight
}

// SetExclusionZones 设置不生成花朵的区域（内容卡片、输入框等）
// 使用函数是因为这些区域随布局变化
func (g *GardenManager) SetExclusionZones(fn func() []utils.Rect) {
	g.exclusions = fn
}

// IsExcluded 判断点是否落在排除区域内
func (g *GardenManager) IsExcluded(x, y float64) bool {
	if g.exclusions == nil {
		return false
	}
	for _, r := range g.exclusions() {
		if !r.Empty() && r.Contains(x, y) {
			return true
		}
	}
	return false
}

// HandleClick 处理一次点击
// 点击落在排除区域内时不生成，返回 false
func (g *GardenManager) HandleClick(x, y float64) (Flower, bool) {
	if g.IsExcluded(x, y) {
		return Flower{}, false
	}
	return g.Spawn(x, y), true
}

// Spawn 在 (x, y) 处生成一朵花并注册到期移除
func (g *GardenManager) Spawn(x, y float64) Flower {
	colors := g.palette[g.rng.IntN(len(g.palette))]

	width := g.cfg.WideFlowerWidth
	if g.IsNarrow() {
		width = g.cfg.NarrowFlowerWidth
	}

	f := Flower{
		ID:              g.uniqueID(),
		SpawnX:          x,
		SpawnY:          y,
		BaseHeight:      g.sample(g.HeightRange()),
		Width:           width,
		PetalColor:      colors.Petal,
		CenterColor:     colors.Center,
		StemCurvature:   g.sample(g.cfg.StemCurvature),
		SwayPhaseOffset: g.sample(g.cfg.SwayOffset),
		CreatedAt:       g.scheduler.Now(),
		TTL:             g.cfg.FlowerTTL,
	}
	g.flowers[f.ID] = f

	// 闭包只捕获本朵花的 id
	id := f.ID
	g.scheduler.After(f.TTL, func() {
		g.Remove(id)
	})

	log.Printf("[Garden] Spawned flower %s at (%.0f, %.0f), height=%.1f, active=%d",
		f.ID, x, y, f.BaseHeight, len(g.flowers))
	return f
}

// uniqueID 生成在当前活动集合中唯一的 id
func (g *GardenManager) uniqueID() string {
	for {
		id := g.newID()
		if _, exists := g.flowers[id]; !exists {
			return id
		}
	}
}

// sample 在区间内均匀采样
func (g *GardenManager) sample(r config.Range) float64 {
	return r.Lerp(g.rng.Float64())
}

// Remove 移除指定 id 的花朵，id 不存在时不做任何事
func (g *GardenManager) Remove(id string) {
	if _, ok := g.flowers[id]; !ok {
		return
	}
	delete(g.flowers, id)
}

// Has 判断花朵是否仍在活动集合中
func (g *GardenManager) Has(id string) bool {
	_, ok := g.flowers[id]
	return ok
}

// Count 返回活动花朵数量
func (g *GardenManager) Count() int {
	return len(g.flowers)
}

// Snapshot 返回活动花朵的副本，按生成时间排序（先生成的先绘制）
func (g *GardenManager) Snapshot() []Flower {
	out := make([]Flower, 0, len(g.flowers))
	for _, f := range g.flowers {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt == out[j].CreatedAt {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}
