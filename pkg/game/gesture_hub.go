package game

// GestureSource 全局输入观察能力
// 用于"下一次用户手势发生后再做某事"的场景（如浏览器自动播放限制解除）
type GestureSource interface {
	// OnNextGesture 注册一次性监听器，下一次指针交互时调用 fn 并自动注销
	// 返回的 cancel 可提前注销，重复调用 cancel 是安全的
	OnNextGesture(fn func()) (cancel func())
}

// GestureHub 场景级的一次性手势监听器集合
// 相当于在 document 上注册 click 监听：场景内任何未被控件阻止传播的点击都会触发
type GestureHub struct {
	nextID    uint64
	listeners map[uint64]func()
	order     []uint64
}

// NewGestureHub 创建空的手势监听器集合
func NewGestureHub() *GestureHub {
	return &GestureHub{
		nextID:    1,
		listeners: make(map[uint64]func()),
	}
}

// OnNextGesture 实现 GestureSource
func (h *GestureHub) OnNextGesture(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.order = append(h.order, id)

	return func() {
		delete(h.listeners, id)
	}
}

// Dispatch 派发一次指针交互
// 先注销本次要触发的全部监听器，再依次调用，回调中新注册的监听器等待下一次交互
func (h *GestureHub) Dispatch() {
	if len(h.listeners) == 0 {
		h.order = h.order[:0]
		return
	}

	pending := make([]func(), 0, len(h.listeners))
	for _, id := range h.order {
		if fn, ok := h.listeners[id]; ok {
			pending = append(pending, fn)
			delete(h.listeners, id)
		}
	}
	h.order = h.order[:0]

	for _, fn := range pending {
		fn()
	}
}

// ListenerCount 返回当前注册的监听器数量
func (h *GestureHub) ListenerCount() int {
	return len(h.listeners)
}

// Clear 注销全部监听器（场景销毁时调用）
func (h *GestureHub) Clear() {
	h.listeners = make(map[uint64]func())
	h.order = h.order[:0]
}
