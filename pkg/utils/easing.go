package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
//
// 参考：https://easings.net/

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress 计算阶段进度：从 delay 开始、持续 duration 秒的阶段在 elapsed 时刻的进度
// 未开始返回 0，结束后返回 1
func Progress(elapsed, delay, duration float64) float64 {
	if duration <= 0 {
		if elapsed >= delay {
			return 1
		}
		return 0
	}
	return Clamp01((elapsed - delay) / duration)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于茎的生长）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出
// 特点：两端平缓（用于摇摆关键帧之间的过渡）
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseSpring 弹簧缓动
// 特点：冲过终点后回弹并逐渐稳定，bounce 越大回弹越明显
// t=0 返回 0，t>=1 返回 1
func EaseSpring(t, bounce float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	damping := 6.0 * (1 - bounce*0.6)
	frequency := math.Pi * (1.5 + 3*bounce)
	return 1 - math.Exp(-damping*t)*math.Cos(frequency*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Keyframes 按等间隔关键帧插值，段内使用 EaseInOutSine
// t ∈ [0, 1] 覆盖全部关键帧
func Keyframes(values []float64, t float64) float64 {
	switch len(values) {
	case 0:
		return 0
	case 1:
		return values[0]
	}
	t = Clamp01(t)
	segments := float64(len(values) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(values)-1 {
		return values[len(values)-1]
	}
	return Lerp(values[i], values[i+1], EaseInOutSine(pos-float64(i)))
}
