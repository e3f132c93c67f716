package components

// TextInputComponent 文本输入框组件
// 用于锁屏界面输入 PIN
type TextInputComponent struct {
	Text           string // 当前输入的文本
	CursorPosition int    // 光标位置（字符索引）

	Width  float64
	Height float64

	// 光标状态
	CursorVisible    bool
	CursorBlinkTimer float64

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 输入框为空时显示

	// Masked 为 true 时以圆点显示每个字符
	Masked bool

	// IsFocused 是否获得焦点（接收键盘输入）
	IsFocused bool

	// OnSubmit 按下 Enter 时调用，参数为当前文本（原样，不做修剪）
	OnSubmit func(text string)
}
