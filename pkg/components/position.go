package components

// PositionComponent 实体在屏幕坐标系中的位置（像素）
// 对按钮、输入框等控件表示左上角，对彩纸表示中心点
type PositionComponent struct {
	X float64
	Y float64
}
