package components

// ToastComponent 屏幕底部的短暂提示
// 显示时长由同一实体上的 LifetimeComponent 控制
type ToastComponent struct {
	Message string
	// Slot 堆叠顺序，0 为最底部（最新）
	Slot int
}
