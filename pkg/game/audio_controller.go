package game

import (
	"errors"
	"log"
)

var (
	// ErrAutoplayBlocked 平台的自动播放策略拒绝了播放请求（需要一次用户手势）
	ErrAutoplayBlocked = errors.New("autoplay blocked until user gesture")
	// ErrTrackUnavailable 音乐资源缺失或无法解码
	ErrTrackUnavailable = errors.New("music track unavailable")
)

// Track 一个可播放的音乐资源（平台音频子系统的抽象）
type Track interface {
	// Play 请求开始播放
	// 结果通过 done 异步送达（在主循环上），可能在任意之后的帧才到达
	Play(done func(err error))
	// Pause 立即暂停
	Pause()
}

// Notifier 向用户显示非致命提示
type Notifier interface {
	Notify(message string)
}

// MessageMusicUnavailable 音乐不可用时的提示文字
const MessageMusicUnavailable = "Music unavailable"

// AudioController 音频控制器
// 职责：
//   - 独占当前场景唯一的音乐资源，只通过 AttemptPlay / Toggle 暴露
//   - 配合平台自动播放限制：被拒绝时静默保持暂停，并在下一次用户手势时重试一次
//   - 维护 isPlaying 状态（驱动播放/暂停图标）
//
// 设计原则：
//   - isPlaying 只在播放请求自身的成功回调中置为 true，绝不乐观设置
//   - 场景关闭后到达的回调不会修改状态
//   - 任意时刻最多只有一个待触发的手势重试监听器
type AudioController struct {
	track    Track
	gestures GestureSource
	notifier Notifier

	isPlaying   bool
	pending     bool   // 是否有未完成的播放请求
	requestSeq  uint64 // 当前有效请求编号，Pause 会使旧请求失效
	cancelRetry func() // 已注册的手势重试监听器
	closed      bool

	unavailableNotified bool
}

// NewAudioController 创建音频控制器
//
// 参数：
//   - track: 当前主题的音乐资源
//   - gestures: 全局手势观察能力（用于自动播放被拒后的重试）
//   - notifier: 非致命提示（可为 nil）
func NewAudioController(track Track, gestures GestureSource, notifier Notifier) *AudioController {
	return &AudioController{
		track:    track,
		gestures: gestures,
		notifier: notifier,
	}
}

// IsPlaying 返回当前是否正在播放
func (ac *AudioController) IsPlaying() bool {
	return ac.isPlaying
}

// IsPending 返回是否有未完成的播放请求
func (ac *AudioController) IsPending() bool {
	return ac.pending
}

// HasGestureRetry 返回是否注册了手势重试监听器
func (ac *AudioController) HasGestureRetry() bool {
	return ac.cancelRetry != nil
}

// AttemptPlay 尝试播放
// 已在播放或已有未完成请求时不做任何事
func (ac *AudioController) AttemptPlay() {
	if ac.closed || ac.isPlaying || ac.pending || ac.track == nil {
		return
	}

	ac.pending = true
	ac.requestSeq++
	seq := ac.requestSeq

	ac.track.Play(func(err error) {
		ac.settle(seq, err)
	})
}

// settle 处理播放请求的结果
func (ac *AudioController) settle(seq uint64, err error) {
	stale := ac.closed || seq != ac.requestSeq
	if stale {
		// 请求已被 Pause 或 Close 取代；平台若已开始播放则立即停下
		if err == nil && ac.track != nil && !ac.isPlaying {
			ac.track.Pause()
		}
		return
	}

	ac.pending = false

	switch {
	case err == nil:
		ac.isPlaying = true
		ac.disarmRetry()
		log.Printf("[AudioController] Playback started")

	case errors.Is(err, ErrAutoplayBlocked):
		log.Printf("[AudioController] Autoplay waiting for interaction")
		ac.armRetry()

	default:
		log.Printf("[AudioController] Warning: playback failed: %v", err)
		if !ac.unavailableNotified && ac.notifier != nil {
			ac.notifier.Notify(MessageMusicUnavailable)
		}
		ac.unavailableNotified = true
	}
}

// armRetry 注册一次性手势重试，已注册时不重复注册
func (ac *AudioController) armRetry() {
	if ac.cancelRetry != nil || ac.gestures == nil {
		return
	}
	ac.cancelRetry = ac.gestures.OnNextGesture(func() {
		ac.cancelRetry = nil
		ac.AttemptPlay()
	})
}

// disarmRetry 注销手势重试监听器
func (ac *AudioController) disarmRetry() {
	if ac.cancelRetry != nil {
		ac.cancelRetry()
		ac.cancelRetry = nil
	}
}

// Toggle 切换播放/暂停
// 正在播放时暂停；暂停时尝试恢复（状态在请求成功后才更新）
func (ac *AudioController) Toggle() {
	if ac.closed {
		return
	}
	if ac.isPlaying {
		ac.Pause()
		return
	}
	ac.AttemptPlay()
}

// Pause 暂停播放，并使未完成的播放请求失效
func (ac *AudioController) Pause() {
	if ac.closed {
		return
	}
	ac.requestSeq++
	ac.pending = false
	ac.isPlaying = false
	if ac.track != nil {
		ac.track.Pause()
	}
}

// Close 场景销毁时调用：停止播放、注销手势监听器
// 之后到达的播放回调全部忽略
func (ac *AudioController) Close() {
	if ac.closed {
		return
	}
	ac.Pause()
	ac.disarmRetry()
	ac.closed = true
}
