package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonIcon 按钮上绘制的矢量图标
type ButtonIcon int

const (
	// IconNone 只显示文字
	IconNone ButtonIcon = iota
	// IconPlay 播放（三角形）
	IconPlay
	// IconPause 暂停（两条竖线）
	IconPause
	// IconLock 锁
	IconLock
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 背景与图标都用矢量绘制，不依赖图片资源
//   - 位置由 PositionComponent 提供（左上角）
type ButtonComponent struct {
	// ===== 按钮文字 =====
	Label     string
	Font      *text.GoTextFace
	TextColor color.RGBA

	// Icon 图标，非 IconNone 时绘制在按钮中心（有文字时绘制在文字左侧）
	Icon ButtonIcon

	// ===== 外观 =====
	Width        float64
	Height       float64
	Fill         color.RGBA
	CornerRadius float64 // 等于 Height/2 时为胶囊/圆形按钮

	// ===== 按钮状态 =====
	State   UIState
	Enabled bool

	// StopPropagation 为 true 时，点击按钮不会再传递给全局手势监听器
	StopPropagation bool

	// OnClick 点击回调函数
	OnClick func()
}
