//go:build mobile

package utils

// IsMobile 移动端构建恒为 true：PIN 输入使用屏幕数字键盘
func IsMobile() bool {
	return true
}
