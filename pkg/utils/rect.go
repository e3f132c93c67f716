package utils

// Rect 屏幕坐标系中的轴对齐矩形
type Rect struct {
	X, Y          float64 // 左上角
	Width, Height float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X &&
		x <= r.X+r.Width &&
		y >= r.Y &&
		y <= r.Y+r.Height
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty 宽或高为 0 的矩形不参与命中测试
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
