package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ThemeKey 主题标识
type ThemeKey string

const (
	ThemeBirthday      ThemeKey = "birthday"
	ThemeAnniversary   ThemeKey = "anniversary"
	ThemeCongrats      ThemeKey = "congrats"
	ThemeValentinesDay ThemeKey = "valentinesday"
)

// DefaultThemeKey 无法识别的主题统一回落到生日主题
const DefaultThemeKey = ThemeBirthday

// AllThemeKeys 返回全部主题（固定顺序）
func AllThemeKeys() []ThemeKey {
	return []ThemeKey{ThemeBirthday, ThemeAnniversary, ThemeCongrats, ThemeValentinesDay}
}

// ErrUnknownTheme 主题标识不在枚举中
var ErrUnknownTheme = errors.New("unknown theme")

// ParseThemeKey 解析主题标识，大小写和空白必须完全匹配
func ParseThemeKey(s string) (ThemeKey, error) {
	for _, k := range AllThemeKeys() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// FlowerColors 一朵花的花瓣色与花心色
type FlowerColors struct {
	Petal  string `yaml:"petal"`
	Center string `yaml:"center"`
}

// DefaultFlowerPalette 内置的十色玫瑰配色
// 主题未定义 flowerPalette 时使用
var DefaultFlowerPalette = []FlowerColors{
	{Petal: "#FF1744", Center: "#880E4F"}, // 深红
	{Petal: "#EC407A", Center: "#AD1457"}, // 粉
	{Petal: "#F48FB1", Center: "#C2185B"}, // 浅粉
	{Petal: "#FF6F00", Center: "#E65100"}, // 橙
	{Petal: "#FFD54F", Center: "#F57F17"}, // 黄
	{Petal: "#BA68C8", Center: "#7B1FA2"}, // 紫
	{Petal: "#FF80AB", Center: "#C51162"}, // 亮粉
	{Petal: "#FFAB91", Center: "#D84315"}, // 桃
	{Petal: "#E1BEE7", Center: "#8E24AA"}, // 薰衣草
	{Petal: "#F06292", Center: "#AD1457"}, // 玫瑰粉
}

// ThemeDefinition 主题的视觉与音频参数
// 加载后不再修改
type ThemeDefinition struct {
	Key           ThemeKey       `yaml:"-"`
	Emoji         string         `yaml:"emoji"`
	PrimaryColor  string         `yaml:"primaryColor"` // 标题颜色
	Background    []string       `yaml:"background"`   // 背景渐变色标（左上 → 右下）
	MusicPath     string         `yaml:"music"`        // 背景音乐资源路径
	AccentColors  []string       `yaml:"accentColors"` // 彩纸颜色
	FlowerPalette []FlowerColors `yaml:"flowerPalette"`
}

// Palette 返回花朵配色，未定义时回落到默认十色配色
func (d ThemeDefinition) Palette() []FlowerColors {
	if len(d.FlowerPalette) == 0 {
		return DefaultFlowerPalette
	}
	return d.FlowerPalette
}

// MusicAssetPath 将 "/music/x.mp3" 形式的路径映射为资源路径 "assets/music/x.mp3"
func (d ThemeDefinition) MusicAssetPath() string {
	return "assets/" + strings.TrimPrefix(d.MusicPath, "/")
}

// ThemeRegistry 主题注册表
// 主题标识到主题定义的静态映射，进程生命周期内不可变
type ThemeRegistry struct {
	themes map[ThemeKey]ThemeDefinition
}

type themeFile struct {
	Themes map[string]ThemeDefinition `yaml:"themes"`
}

// LoadThemeRegistry 从 YAML 数据加载主题注册表
func LoadThemeRegistry(data []byte) (*ThemeRegistry, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse themes YAML: %w", err)
	}

	themes := make(map[ThemeKey]ThemeDefinition, len(file.Themes))
	for name, def := range file.Themes {
		key, err := ParseThemeKey(name)
		if err != nil {
			return nil, err
		}
		def.Key = key
		themes[key] = def
	}

	if err := validateThemes(themes); err != nil {
		return nil, fmt.Errorf("invalid themes config: %w", err)
	}
	return &ThemeRegistry{themes: themes}, nil
}

// DefaultThemeRegistry 返回内置主题注册表（与 data/themes.yaml 一致）
func DefaultThemeRegistry() *ThemeRegistry {
	background := []string{"#0F172A", "#581C87", "#0F172A"}
	return &ThemeRegistry{themes: map[ThemeKey]ThemeDefinition{
		ThemeBirthday: {
			Key: ThemeBirthday, Emoji: "🎂", PrimaryColor: "#F472B6", Background: background,
			MusicPath:    "/music/birthday.mp3",
			AccentColors: []string{"#E879F9", "#D946EF", "#C026D3", "#A21CAF"},
		},
		ThemeAnniversary: {
			Key: ThemeAnniversary, Emoji: "💑", PrimaryColor: "#F87171", Background: background,
			MusicPath:    "/music/romantic.mp3",
			AccentColors: []string{"#F87171", "#EF4444", "#DC2626", "#B91C1C"},
		},
		ThemeCongrats: {
			Key: ThemeCongrats, Emoji: "🎉", PrimaryColor: "#2DD4BF", Background: background,
			MusicPath:    "/music/celebration.mp3",
			AccentColors: []string{"#5EEAD4", "#2DD4BF", "#14B8A6", "#0D9488"},
		},
		ThemeValentinesDay: {
			Key: ThemeValentinesDay, Emoji: "🌺", PrimaryColor: "#FB7185", Background: background,
			MusicPath:    "/music/valentine.mp3",
			AccentColors: []string{"#E11D48", "#BE123C", "#FB7185", "#F43F5E"},
			FlowerPalette: []FlowerColors{
				{Petal: "#D50000", Center: "#5D1010"},
				{Petal: "#FF1744", Center: "#880E4F"},
				{Petal: "#F50057", Center: "#880E4F"},
			},
		},
	}}
}

// Resolve 返回主题定义
// 纯函数：任何不在枚举中的值（包括空串）都返回生日主题
func (r *ThemeRegistry) Resolve(key string) ThemeDefinition {
	if k, err := ParseThemeKey(key); err == nil {
		if def, ok := r.themes[k]; ok {
			return def
		}
	}
	return r.themes[DefaultThemeKey]
}

// validateThemes 验证四个主题齐全且颜色可解析
func validateThemes(themes map[ThemeKey]ThemeDefinition) error {
	for _, key := range AllThemeKeys() {
		def, ok := themes[key]
		if !ok {
			return fmt.Errorf("theme %s is missing", key)
		}
		if def.MusicPath == "" {
			return fmt.Errorf("theme %s: music cannot be empty", key)
		}
		if len(def.AccentColors) == 0 {
			return fmt.Errorf("theme %s: accentColors cannot be empty", key)
		}

		colors := append([]string{def.PrimaryColor}, def.Background...)
		colors = append(colors, def.AccentColors...)
		for _, fc := range def.FlowerPalette {
			colors = append(colors, fc.Petal, fc.Center)
		}
		for _, c := range colors {
			if _, err := ParseHexColor(c); err != nil {
				return fmt.Errorf("theme %s: %w", key, err)
			}
		}
	}
	return nil
}
