package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时目录中创建 gdata 存储
func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	m, err := gdata.Open(gdata.Config{AppName: "wishbloom_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.MusicVolume != 0.7 {
		t.Errorf("MusicVolume: got %v, want 0.7", settings.MusicVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsNilGdata 降级模式：只在内存中保存设置
func TestSettingsNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetMusicVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Errorf("Load() without storage should reset to defaults, got %v", sm.GetSettings().MusicVolume)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	storage := openTestStorage(t)

	sm := NewSettingsManager(storage)
	sm.SetMusicVolume(0.25)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded := NewSettingsManager(storage)
	got := reloaded.GetSettings()
	if got.MusicVolume != 0.25 {
		t.Errorf("MusicVolume: got %v, want 0.25", got.MusicVolume)
	}
	if !got.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

func TestSettingsCorruptDataFallsBack(t *testing.T) {
	storage := openTestStorage(t)
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [not a number")); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}

	sm := NewSettingsManager(storage)
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupt data")
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Errorf("corrupt data should fall back to defaults, got %v", sm.GetSettings().MusicVolume)
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	sm := NewSettingsManager(nil)
	sm.SetMusicVolume(3)
	if sm.GetSettings().MusicVolume != 1 {
		t.Errorf("SetMusicVolume should clamp, got %v", sm.GetSettings().MusicVolume)
	}
}
