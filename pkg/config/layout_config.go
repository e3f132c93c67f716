package config

// 布局配置常量
// 本文件定义了揭晓场景的窗口尺寸和 UI 元素位置
// 所有坐标使用屏幕坐标（逻辑尺寸即窗口外部尺寸，不做缩放）

const (
	// GameWindowWidth 桌面端默认窗口宽度
	GameWindowWidth = 960
	// GameWindowHeight 桌面端默认窗口高度
	GameWindowHeight = 720
)

// 卡片布局
const (
	// CardMaxWidthNarrow 窄屏卡片最大宽度占视口比例
	CardMaxWidthNarrow = 0.95
	// CardMaxWidthWide 宽屏卡片最大宽度（像素）
	CardMaxWidthWide = 576.0
	// LockCardMaxWidth 锁屏卡片最大宽度（像素）
	LockCardMaxWidth = 384.0
	// CardPadding 卡片内边距（像素）
	CardPadding = 32.0
	// CardCornerRadius 卡片圆角（像素）
	CardCornerRadius = 24.0
	// CardTopNarrow 窄屏卡片顶部对齐，为底部的花朵留出空间
	CardTopNarrow = 72.0
)

// 顶部按钮
const (
	// ToggleButtonSize 音乐开关按钮直径
	ToggleButtonSize = 44.0
	// ToggleButtonMarginNarrow 窄屏按钮距右上角边距
	ToggleButtonMarginNarrow = 16.0
	// ToggleButtonMarginWide 宽屏按钮距右上角边距
	ToggleButtonMarginWide = 32.0
)

// 字号
const (
	TitleFontSizeNarrow   = 28.0
	TitleFontSizeWide     = 44.0
	MessageFontSizeNarrow = 18.0
	MessageFontSizeWide   = 24.0
	HintFontSize          = 12.0
	LockTitleFontSize     = 22.0
	PinFontSize           = 28.0
	ButtonFontSize        = 14.0
	ToastFontSize         = 16.0
)

// ToastDuration 提示消息显示时长（秒）
const ToastDuration = 2.5
