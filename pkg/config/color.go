package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 将 "#RRGGBB" 解析为 color.RGBA
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHexColor 解析颜色，失败时返回洋红色便于发现配置错误
// 仅用于已经通过校验的配置
func MustHexColor(hex string) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return c
}

// GradientAt 在多段渐变中取 t ∈ [0, 1] 处的颜色
// 相邻色标之间在 Lab 空间插值，避免 RGB 插值中间发灰
func GradientAt(stops []string, t float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{A: 255}
	}
	if len(stops) == 1 || t <= 0 {
		return MustHexColor(stops[0])
	}
	if t >= 1 {
		return MustHexColor(stops[len(stops)-1])
	}

	segments := float64(len(stops) - 1)
	pos := t * segments
	i := int(pos)
	local := pos - float64(i)

	a, errA := colorful.Hex(stops[i])
	b, errB := colorful.Hex(stops[i+1])
	if errA != nil || errB != nil {
		return MustHexColor(stops[i])
	}
	r, g, bl := a.BlendLab(b, local).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// Lighten 在 Lab 空间向白色混合 amount ∈ [0, 1]
func Lighten(c color.RGBA, amount float64) color.RGBA {
	if amount <= 0 {
		return c
	}
	base, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	r, g, b := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
