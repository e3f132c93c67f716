package game

import (
	"errors"
	"testing"
)

type fakePlayer struct {
	playing bool
	volume  float64
}

func (p *fakePlayer) Play()                    { p.playing = true }
func (p *fakePlayer) Pause()                   { p.playing = false }
func (p *fakePlayer) IsPlaying() bool          { return p.playing }
func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }

type fakeReadiness struct{ ready bool }

func (r *fakeReadiness) IsReady() bool { return r.ready }

const frame = 1.0 / 60

func TestEbitenTrackReadyContext(t *testing.T) {
	player := &fakePlayer{}
	track := newTrackWithPlayer(player, &fakeReadiness{ready: true})

	var result error = errors.New("unsettled")
	track.Play(func(err error) { result = err })
	if player.playing {
		t.Fatal("Play must settle asynchronously on the next Update")
	}

	track.Update(frame)
	if result != nil {
		t.Errorf("expected success, got %v", result)
	}
	if !player.playing {
		t.Error("player should be playing")
	}

	track.Pause()
	if player.playing {
		t.Error("Pause should stop the player")
	}
}

func TestEbitenTrackBlockedUntilGracePeriod(t *testing.T) {
	player := &fakePlayer{}
	ctx := &fakeReadiness{}
	track := newTrackWithPlayer(player, ctx)

	var result error
	settled := false
	track.Play(func(err error) { result, settled = err, true })

	for i := 0; i < 30; i++ {
		track.Update(frame)
	}
	if settled {
		t.Fatal("request settled before the grace period")
	}

	for i := 0; i < 40; i++ {
		track.Update(frame)
	}
	if !settled || !errors.Is(result, ErrAutoplayBlocked) {
		t.Errorf("expected ErrAutoplayBlocked, settled=%v err=%v", settled, result)
	}
	if player.playing {
		t.Error("blocked request must not start playback")
	}
}

func TestEbitenTrackMissingPlayer(t *testing.T) {
	track := &EbitenTrack{}

	var result error
	track.Play(func(err error) { result = err })
	track.Update(frame)

	if !errors.Is(result, ErrTrackUnavailable) {
		t.Errorf("expected ErrTrackUnavailable, got %v", result)
	}
}

// TestEbitenTrackWithController 上下文在手势后就绪，控制器的重试随之成功
func TestEbitenTrackWithController(t *testing.T) {
	player := &fakePlayer{}
	ctx := &fakeReadiness{}
	track := newTrackWithPlayer(player, ctx)
	hub := NewGestureHub()
	ac := NewAudioController(track, hub, nil)

	ac.AttemptPlay()
	for i := 0; i < 90; i++ {
		track.Update(frame)
	}
	if ac.IsPlaying() || !ac.HasGestureRetry() {
		t.Fatalf("expected paused controller waiting for a gesture, playing=%v retry=%v",
			ac.IsPlaying(), ac.HasGestureRetry())
	}

	ctx.ready = true
	hub.Dispatch()
	track.Update(frame)

	if !ac.IsPlaying() || !player.playing {
		t.Errorf("expected playback after gesture, controller=%v player=%v", ac.IsPlaying(), player.playing)
	}
}

func TestEbitenTrackClose(t *testing.T) {
	player := &fakePlayer{playing: true}
	track := newTrackWithPlayer(player, &fakeReadiness{ready: true})

	called := false
	track.Play(func(error) { called = true })
	track.Close()
	track.Update(frame)

	if called {
		t.Error("Close should drop pending requests")
	}
	if player.playing {
		t.Error("Close should pause the player")
	}
}
