package components

import "github.com/decker502/wishbloom/pkg/ecs"

// 按键动作
const (
	KeyActionBackspace = "BACKSPACE"
	KeyActionDone      = "DONE"
)

// PinKeypadLayout 屏幕数字键盘布局（移动端没有物理键盘时使用）
var PinKeypadLayout = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{KeyActionBackspace, "0", KeyActionDone},
}

// KeyInfo 按键信息（用于布局计算和点击检测）
type KeyInfo struct {
	Label  string  // 显示的文字
	Action string  // 按键动作（BACKSPACE、DONE 或字符本身）
	X      float64 // 按键左上角 X
	Y      float64 // 按键左上角 Y
	Width  float64
	Height float64
}

// PinKeypadComponent 屏幕数字键盘
type PinKeypadComponent struct {
	IsVisible bool

	// 按下高亮
	PressedKey   string
	PressedTimer float64

	// TargetInputEntity 接收输入的文本框实体
	TargetInputEntity ecs.EntityID

	// 布局（由系统根据视口尺寸计算）
	Keys        []KeyInfo
	PanelX      float64
	PanelY      float64
	PanelWidth  float64
	PanelHeight float64
}

// KeyLabel 获取按键的显示标签
func KeyLabel(action string) string {
	switch action {
	case KeyActionBackspace:
		return "Del"
	case KeyActionDone:
		return "OK"
	default:
		return action
	}
}

// IsSpecialKey 判断是否为特殊按键（非字符输入）
func IsSpecialKey(action string) bool {
	return action == KeyActionBackspace || action == KeyActionDone
}
