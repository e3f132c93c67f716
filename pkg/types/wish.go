// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "time"

// Wish 一条心愿（由存储层持有，揭晓场景只读）
type Wish struct {
	ID        string
	Name      string
	Message   string
	Theme     string  // 主题标识，无法识别时由主题注册表回落到 birthday
	Pin       *string // nil 表示未加锁
	Views     int
	CreatedAt time.Time
}

// IsProtected 心愿是否受 PIN 保护
func (w Wish) IsProtected() bool {
	return w.Pin != nil
}

// PinPtr 将非空字符串转换为 PIN 指针，空串视为未加锁
func PinPtr(pin string) *string {
	if pin == "" {
		return nil
	}
	return &pin
}
