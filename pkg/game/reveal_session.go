package game

import (
	"log"

	"github.com/decker502/wishbloom/pkg/config"
)

// Celebration 一次性彩纸爆发
// Fire 立即返回，爆发动画的生命周期与调用者无关
type Celebration interface {
	Fire(colors []string)
}

// MessageIncorrectPin 输入错误 PIN 时的提示
const MessageIncorrectPin = "Incorrect PIN"

// RevealSession 一次揭晓会话（一次挂载）
//
// 负责把锁状态机、音频控制器与庆祝效果串起来：
//   - 无 PIN：Mount 时立即尝试播放，并在短暂延迟后庆祝一次
//   - 有 PIN：解锁成功时庆祝一次，并延迟尝试播放（让解锁动画先开始）
//
// 所有延迟都通过场景调度器执行，Unmount 会取消尚未触发的任务。
type RevealSession struct {
	gate        *LockGate
	audio       *AudioController
	celebration Celebration
	scheduler   *Scheduler
	notifier    Notifier
	colors      []string
	lockCfg     config.LockConfig

	mounted     bool
	unmounted   bool
	celebrated  bool
	pendingJobs []TimerID
}

// NewRevealSession 创建揭晓会话
//
// 参数：
//   - gate: PIN 锁状态机
//   - audio: 当前场景的音频控制器
//   - celebration: 彩纸爆发实现
//   - scheduler: 场景调度器
//   - notifier: 用户提示
//   - colors: 主题强调色（彩纸颜色）
//   - lockCfg: 解锁/挂载时序
func NewRevealSession(
	gate *LockGate,
	audio *AudioController,
	celebration Celebration,
	scheduler *Scheduler,
	notifier Notifier,
	colors []string,
	lockCfg config.LockConfig,
) *RevealSession {
	return &RevealSession{
		gate:        gate,
		audio:       audio,
		celebration: celebration,
		scheduler:   scheduler,
		notifier:    notifier,
		colors:      colors,
		lockCfg:     lockCfg,
	}
}

// Gate 返回锁状态机（只读使用）
func (s *RevealSession) Gate() *LockGate {
	return s.gate
}

// IsLocked 是否仍处于锁定状态
func (s *RevealSession) IsLocked() bool {
	return s.gate.IsLocked()
}

// HasCelebrated 本次会话是否已经庆祝过
func (s *RevealSession) HasCelebrated() bool {
	return s.celebrated
}

// Mount 场景就绪时调用，多次调用只生效一次
func (s *RevealSession) Mount() {
	if s.mounted || s.unmounted {
		return
	}
	s.mounted = true

	if s.gate.IsLocked() {
		log.Printf("[RevealSession] Mounted locked, waiting for PIN")
		return
	}

	log.Printf("[RevealSession] Mounted unlocked, starting reveal")
	s.audio.AttemptPlay()
	s.schedule(s.lockCfg.MountCelebrationDelay, s.celebrate)
}

// SubmitPin 提交 PIN
// 返回是否解锁成功；失败时显示提示，状态保持 Locked
func (s *RevealSession) SubmitPin(code string) bool {
	if s.unmounted || !s.gate.IsLocked() {
		return false
	}

	if !s.gate.Submit(code) {
		if s.notifier != nil {
			s.notifier.Notify(MessageIncorrectPin)
		}
		return false
	}

	s.celebrate()
	s.schedule(s.lockCfg.UnlockAudioDelay, s.audio.AttemptPlay)
	return true
}

// celebrate 每次会话最多触发一次
func (s *RevealSession) celebrate() {
	if s.celebrated || s.unmounted {
		return
	}
	s.celebrated = true
	if s.celebration != nil {
		s.celebration.Fire(s.colors)
	}
}

// schedule 通过调度器延迟执行，并记录任务以便 Unmount 时取消
func (s *RevealSession) schedule(delay float64, fn func()) {
	id := s.scheduler.After(delay, fn)
	s.pendingJobs = append(s.pendingJobs, id)
}

// Unmount 场景销毁时调用：取消未触发的延迟任务并关闭音频
func (s *RevealSession) Unmount() {
	if s.unmounted {
		return
	}
	s.unmounted = true
	for _, id := range s.pendingJobs {
		s.scheduler.Cancel(id)
	}
	s.pendingJobs = nil
	s.audio.Close()
}
