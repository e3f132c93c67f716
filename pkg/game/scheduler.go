package game

import "container/heap"

// TimerID 定时任务标识
type TimerID uint64

// scheduledTask 一个待执行的定时任务
type scheduledTask struct {
	id       TimerID
	due      float64 // 到期时刻（秒，基于 Scheduler 时钟）
	fn       func()
	index    int // 在堆中的位置
	canceled bool
}

// taskQueue 按 (due, id) 排序的小顶堆
type taskQueue []*scheduledTask

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].id < q[j].id
	}
	return q[i].due < q[j].due
}
func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *taskQueue) Push(x any) {
	task := x.(*scheduledTask)
	task.index = len(*q)
	*q = append(*q, task)
}
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	task := old[n-1]
	old[n-1] = nil
	task.index = -1
	*q = old[:n-1]
	return task
}

// Scheduler 场景级定时任务队列
//
// 职责：
//   - 维护场景时钟（由 Update 推进，单位秒）
//   - 在任务到期后于主循环上执行回调（与 setTimeout 语义一致：至少延迟 delay 秒）
//
// 所有回调都在调用 Update 的 goroutine 上执行，不需要加锁。
// 回调中新注册的任务最早在下一次 Update 执行，避免零延迟任务在同一帧内无限循环。
type Scheduler struct {
	now    float64
	nextID TimerID
	queue  taskQueue
	tasks  map[TimerID]*scheduledTask
}

// NewScheduler 创建新的任务队列，时钟从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID: 1,
		tasks:  make(map[TimerID]*scheduledTask),
	}
}

// Now 返回当前场景时钟（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// After 注册一个在 delay 秒后执行的任务
// delay 小于 0 视为 0
func (s *Scheduler) After(delay float64, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	task := &scheduledTask{
		id:  s.nextID,
		due: s.now + delay,
		fn:  fn,
	}
	s.nextID++
	heap.Push(&s.queue, task)
	s.tasks[task.id] = task
	return task.id
}

// Cancel 取消尚未执行的任务
// 返回 false 表示任务不存在或已执行
func (s *Scheduler) Cancel(id TimerID) bool {
	task, ok := s.tasks[id]
	if !ok {
		return false
	}
	task.canceled = true
	delete(s.tasks, id)
	if task.index >= 0 {
		heap.Remove(&s.queue, task.index)
	}
	return true
}

// CancelAll 取消全部待执行任务（场景销毁时调用）
func (s *Scheduler) CancelAll() {
	s.queue = s.queue[:0]
	s.tasks = make(map[TimerID]*scheduledTask)
}

// Pending 返回待执行任务数量
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Update 推进时钟并执行所有到期任务
// 同一帧内多个到期任务按 (到期时刻, 注册顺序) 执行
func (s *Scheduler) Update(deltaTime float64) {
	if deltaTime > 0 {
		s.now += deltaTime
	}

	// 本帧开始前注册的任务才有资格在本帧执行
	limit := s.nextID

	for s.queue.Len() > 0 {
		top := s.queue[0]
		if top.due > s.now || top.id >= limit {
			break
		}
		heap.Pop(&s.queue)
		delete(s.tasks, top.id)
		if !top.canceled && top.fn != nil {
			top.fn()
		}
	}
}
