package game

import (
	"reflect"
	"testing"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(1.0, func() { fired++ })

	s.Update(0.5)
	if fired != 0 {
		t.Fatal("task fired before its delay elapsed")
	}

	s.Update(0.5)
	if fired != 1 {
		t.Fatalf("expected task to fire once at t=1.0, fired=%d", fired)
	}

	s.Update(5)
	if fired != 1 {
		t.Errorf("task fired again, fired=%d", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(0.3, func() { order = append(order, "c") })
	s.After(0.1, func() { order = append(order, "a") })
	s.After(0.1, func() { order = append(order, "b") })

	s.Update(1)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(0.1, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel() should succeed for a pending task")
	}
	if s.Cancel(id) {
		t.Error("second Cancel() should report false")
	}

	s.Update(1)
	if fired {
		t.Error("canceled task fired")
	}
}

// TestSchedulerNestedZeroDelay 回调中注册的零延迟任务在下一帧执行
func TestSchedulerNestedZeroDelay(t *testing.T) {
	s := NewScheduler()
	count := 0
	var reschedule func()
	reschedule = func() {
		count++
		s.After(0, reschedule)
	}
	s.After(0, reschedule)

	s.Update(1.0 / 60)
	if count != 1 {
		t.Fatalf("expected exactly one execution per frame, got %d", count)
	}

	s.Update(1.0 / 60)
	if count != 2 {
		t.Errorf("expected second execution on next frame, got %d", count)
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	fired := 0
	for i := 0; i < 5; i++ {
		s.After(float64(i), func() { fired++ })
	}

	s.CancelAll()
	s.Update(10)

	if fired != 0 || s.Pending() != 0 {
		t.Errorf("CancelAll left fired=%d pending=%d", fired, s.Pending())
	}
}
