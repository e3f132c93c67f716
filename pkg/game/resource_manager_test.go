package game

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/decker502/wishbloom/pkg/embedded"
)

func TestLoadMusicUnavailable(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"music/broken.mp3": {Data: []byte("not an mp3")},
		"music/song.wav":   {Data: []byte("RIFF")},
	}, fstest.MapFS{})
	t.Cleanup(embedded.Reset)

	rm := NewResourceManager(nil)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "assets/music/missing.mp3"},
		{"undecodable", "assets/music/broken.mp3"},
		{"unsupported format", "assets/music/song.wav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rm.LoadMusic(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrTrackUnavailable) {
				t.Errorf("error %v should wrap ErrTrackUnavailable", err)
			}
		})
	}
}

func TestLoadMusicWithoutAssets(t *testing.T) {
	embedded.Init(nil, fstest.MapFS{})
	t.Cleanup(embedded.Reset)

	_, err := NewResourceManager(nil).LoadMusic("assets/music/birthday.mp3")
	if !errors.Is(err, ErrTrackUnavailable) {
		t.Errorf("expected ErrTrackUnavailable, got %v", err)
	}
}

func TestLoadFontCaching(t *testing.T) {
	rm := NewResourceManager(nil)

	a, err := rm.LoadFont(FontRegular, 24)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	b := rm.MustFont(FontRegular, 24)
	if a != b {
		t.Error("same weight and size should return the cached face")
	}

	bold := rm.MustFont(FontBold, 24)
	if bold == a || bold.Source == a.Source {
		t.Error("bold face should use its own source")
	}

	larger := rm.MustFont(FontRegular, 32)
	if larger.Source != a.Source {
		t.Error("faces of the same weight should share one source")
	}
}
