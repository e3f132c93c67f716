package game

import "testing"

func TestGestureHubFiresOnce(t *testing.T) {
	hub := NewGestureHub()
	calls := 0
	hub.OnNextGesture(func() { calls++ })

	hub.Dispatch()
	hub.Dispatch()

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
	if hub.ListenerCount() != 0 {
		t.Errorf("listener not deregistered, count=%d", hub.ListenerCount())
	}
}

func TestGestureHubCancel(t *testing.T) {
	hub := NewGestureHub()
	called := false
	cancel := hub.OnNextGesture(func() { called = true })

	cancel()
	cancel() // 重复取消是安全的
	hub.Dispatch()

	if called {
		t.Error("canceled listener was called")
	}
}

// TestGestureHubReRegisterDuringDispatch 回调中注册的监听器等待下一次交互
func TestGestureHubReRegisterDuringDispatch(t *testing.T) {
	hub := NewGestureHub()
	calls := 0
	var listen func()
	listen = func() {
		calls++
		hub.OnNextGesture(listen)
	}
	hub.OnNextGesture(listen)

	hub.Dispatch()
	if calls != 1 {
		t.Fatalf("after first dispatch calls=%d, want 1", calls)
	}
	if hub.ListenerCount() != 1 {
		t.Fatalf("expected re-registered listener, count=%d", hub.ListenerCount())
	}

	hub.Dispatch()
	if calls != 2 {
		t.Errorf("after second dispatch calls=%d, want 2", calls)
	}
}

func TestGestureHubOrderAndClear(t *testing.T) {
	hub := NewGestureHub()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		hub.OnNextGesture(func() { order = append(order, i) })
	}
	hub.Dispatch()

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}

	hub.OnNextGesture(func() { t.Error("cleared listener called") })
	hub.Clear()
	hub.Dispatch()
}
