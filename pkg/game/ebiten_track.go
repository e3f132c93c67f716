package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// autoplayGracePeriod 音频上下文未就绪时等待多久判定为"被自动播放策略拒绝"（秒）
const autoplayGracePeriod = 1.0

// playerHandle EbitenTrack 需要的播放器能力
type playerHandle interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

// readiness 音频上下文就绪状态（浏览器中需要一次用户手势才会就绪）
type readiness interface {
	IsReady() bool
}

// playRequest 一个尚未结算的播放请求
type playRequest struct {
	done    func(error)
	waiting float64
}

// EbitenTrack 基于 Ebitengine audio.Player 的 Track 实现
//
// Play 请求不会立即结算，而是在下一次 Update 中根据音频上下文状态结算：
//   - 播放器缺失：ErrTrackUnavailable
//   - 上下文就绪：开始播放并成功
//   - 上下文在宽限期内仍未就绪：ErrAutoplayBlocked
type EbitenTrack struct {
	player  playerHandle
	context readiness
	loadErr error
	pending []*playRequest
}

// NewEbitenTrack 加载主题音乐并创建 Track
// 加载失败不会返回错误：Track 仍然可用，所有播放请求都以 ErrTrackUnavailable 结算
func NewEbitenTrack(rm *ResourceManager, musicPath string, volume float64) *EbitenTrack {
	t := &EbitenTrack{}
	player, err := rm.LoadMusic(musicPath)
	if err != nil {
		log.Printf("[EbitenTrack] Warning: music unavailable: %v", err)
		t.loadErr = err
		return t
	}
	player.SetVolume(volume)
	t.player = player
	t.context = rm.AudioContext()
	return t
}

// newTrackWithPlayer 使用任意播放器创建 Track（测试用）
func newTrackWithPlayer(player playerHandle, ctx readiness) *EbitenTrack {
	return &EbitenTrack{player: player, context: ctx}
}

// Play 实现 Track
func (t *EbitenTrack) Play(done func(error)) {
	t.pending = append(t.pending, &playRequest{done: done})
}

// Pause 实现 Track
func (t *EbitenTrack) Pause() {
	if t.player != nil && t.player.IsPlaying() {
		t.player.Pause()
	}
}

// SetVolume 设置音量
func (t *EbitenTrack) SetVolume(volume float64) {
	if t.player != nil {
		t.player.SetVolume(volume)
	}
}

// Update 结算待处理的播放请求（每帧调用）
func (t *EbitenTrack) Update(deltaTime float64) {
	if len(t.pending) == 0 {
		return
	}

	requests := t.pending
	t.pending = nil

	var still []*playRequest
	for _, req := range requests {
		switch {
		case t.player == nil:
			err := t.loadErr
			if err == nil {
				err = ErrTrackUnavailable
			}
			req.done(err)

		case t.context == nil || t.context.IsReady():
			t.player.Play()
			req.done(nil)

		default:
			req.waiting += deltaTime
			if req.waiting >= autoplayGracePeriod {
				req.done(ErrAutoplayBlocked)
			} else {
				still = append(still, req)
			}
		}
	}
	// 回调中新发起的请求排在仍在等待的请求之后
	t.pending = append(still, t.pending...)
}

// Close 停止播放并丢弃未结算的请求
func (t *EbitenTrack) Close() {
	t.Pause()
	t.pending = nil
}

var _ Track = (*EbitenTrack)(nil)
var _ readiness = (*audio.Context)(nil)
