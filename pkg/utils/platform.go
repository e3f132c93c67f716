//go:build !mobile

package utils

import "os"

// mobileEmulateEnv 桌面端设置为 1 时按移动端处理（本地调试屏幕数字键盘）
const mobileEmulateEnv = "WISHBLOOM_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
func IsMobile() bool {
	return os.Getenv(mobileEmulateEnv) == "1"
}
