package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Range 闭区间 [Min, Max]，用于均匀采样
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains 判断 v 是否落在区间内
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Lerp 在区间内按 t ∈ [0, 1] 取值
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// GardenConfig 花园（点击生成花朵）参数
type GardenConfig struct {
	FlowerTTL         float64 `yaml:"flowerTTL"`         // 花朵存活时间（秒），到期无条件移除
	NarrowBreakpoint  float64 `yaml:"narrowBreakpoint"`  // 视口宽度小于该值视为窄屏
	NarrowHeight      Range   `yaml:"narrowHeight"`      // 窄屏花朵高度
	WideHeight        Range   `yaml:"wideHeight"`        // 宽屏花朵高度
	NarrowFlowerWidth float64 `yaml:"narrowFlowerWidth"` // 窄屏花朵宽度
	WideFlowerWidth   float64 `yaml:"wideFlowerWidth"`   // 宽屏花朵宽度
	StemCurvature     Range   `yaml:"stemCurvature"`     // 茎弯曲程度，关于 0 对称
	SwayOffset        Range   `yaml:"swayOffset"`        // 摇摆相位偏移（秒）
}

// LockConfig 锁屏与揭晓时序
type LockConfig struct {
	PinMaxLength          int     `yaml:"pinMaxLength"`
	UnlockAudioDelay      float64 `yaml:"unlockAudioDelay"`      // 解锁后延迟尝试播放（秒）
	MountCelebrationDelay float64 `yaml:"mountCelebrationDelay"` // 无 PIN 心愿挂载后延迟庆祝（秒）
}

// ConfettiConfig 彩纸爆发参数
type ConfettiConfig struct {
	ParticleCount int     `yaml:"particleCount"`
	Spread        float64 `yaml:"spread"` // 扩散角（度）
	Angle         float64 `yaml:"angle"`  // 发射方向（度，90 为正上方）
	StartVelocity float64 `yaml:"startVelocity"`
	Decay         float64 `yaml:"decay"` // 每 tick 速度衰减系数
	Gravity       float64 `yaml:"gravity"`
	Drift         float64 `yaml:"drift"`
	Scalar        float64 `yaml:"scalar"` // 彩纸尺寸倍数
	Ticks         int     `yaml:"ticks"`  // 彩纸存活帧数
	OriginX       float64 `yaml:"originX"`
	OriginY       float64 `yaml:"originY"`
}

// RevealConfig 揭晓场景全部参数
type RevealConfig struct {
	Garden   GardenConfig   `yaml:"garden"`
	Lock     LockConfig     `yaml:"lock"`
	Confetti ConfettiConfig `yaml:"confetti"`
}

// DefaultRevealConfig 返回内置参数（与 data/reveal.yaml 一致）
func DefaultRevealConfig() RevealConfig {
	return RevealConfig{
		Garden: GardenConfig{
			FlowerTTL:         10.0,
			NarrowBreakpoint:  640,
			NarrowHeight:      Range{Min: 260, Max: 380},
			WideHeight:        Range{Min: 220, Max: 350},
			NarrowFlowerWidth: 70,
			WideFlowerWidth:   100,
			StemCurvature:     Range{Min: -20, Max: 20},
			SwayOffset:        Range{Min: 0, Max: 2},
		},
		Lock: LockConfig{
			PinMaxLength:          4,
			UnlockAudioDelay:      0.1,
			MountCelebrationDelay: 0.3,
		},
		Confetti: ConfettiConfig{
			ParticleCount: 150,
			Spread:        120,
			Angle:         90,
			StartVelocity: 45,
			Decay:         0.9,
			Gravity:       1.0,
			Drift:         0.2,
			Scalar:        1.1,
			Ticks:         200,
			OriginX:       0.5,
			OriginY:       0.6,
		},
	}
}

// LoadRevealConfig 从 YAML 数据加载揭晓参数
// 文件中缺失的字段保留默认值
func LoadRevealConfig(data []byte) (RevealConfig, error) {
	cfg := DefaultRevealConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RevealConfig{}, fmt.Errorf("failed to parse reveal YAML: %w", err)
	}
	if err := validateRevealConfig(&cfg); err != nil {
		return RevealConfig{}, fmt.Errorf("invalid reveal config: %w", err)
	}
	return cfg, nil
}

// validateRevealConfig 验证配置的有效性
func validateRevealConfig(cfg *RevealConfig) error {
	g := cfg.Garden
	if g.FlowerTTL <= 0 {
		return fmt.Errorf("garden.flowerTTL must be > 0, got %v", g.FlowerTTL)
	}
	if g.NarrowBreakpoint <= 0 {
		return fmt.Errorf("garden.narrowBreakpoint must be > 0, got %v", g.NarrowBreakpoint)
	}
	ranges := map[string]Range{
		"garden.narrowHeight":  g.NarrowHeight,
		"garden.wideHeight":    g.WideHeight,
		"garden.stemCurvature": g.StemCurvature,
		"garden.swayOffset":    g.SwayOffset,
	}
	for name, r := range ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%s: min %v > max %v", name, r.Min, r.Max)
		}
	}
	if g.NarrowHeight.Min <= 0 || g.WideHeight.Min <= 0 {
		return fmt.Errorf("flower heights must be positive")
	}
	if g.SwayOffset.Min < 0 {
		return fmt.Errorf("garden.swayOffset must be non-negative")
	}

	if cfg.Lock.PinMaxLength <= 0 {
		return fmt.Errorf("lock.pinMaxLength must be > 0, got %d", cfg.Lock.PinMaxLength)
	}
	if cfg.Lock.UnlockAudioDelay < 0 || cfg.Lock.MountCelebrationDelay < 0 {
		return fmt.Errorf("lock delays must be >= 0")
	}

	c := cfg.Confetti
	if c.ParticleCount <= 0 {
		return fmt.Errorf("confetti.particleCount must be > 0, got %d", c.ParticleCount)
	}
	if c.Ticks <= 0 {
		return fmt.Errorf("confetti.ticks must be > 0, got %d", c.Ticks)
	}
	if c.Decay <= 0 || c.Decay > 1 {
		return fmt.Errorf("confetti.decay must be in (0, 1], got %v", c.Decay)
	}
	return nil
}
