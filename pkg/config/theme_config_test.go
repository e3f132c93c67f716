package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveKnownThemes(t *testing.T) {
	registry := DefaultThemeRegistry()

	tests := []struct {
		key   string
		music string
	}{
		{"birthday", "/music/birthday.mp3"},
		{"anniversary", "/music/romantic.mp3"},
		{"congrats", "/music/celebration.mp3"},
		{"valentinesday", "/music/valentine.mp3"},
	}

	for _, tt := range tests {
		def := registry.Resolve(tt.key)
		if string(def.Key) != tt.key {
			t.Errorf("Resolve(%q).Key = %q", tt.key, def.Key)
		}
		if def.MusicPath != tt.music {
			t.Errorf("Resolve(%q).MusicPath = %q, want %q", tt.key, def.MusicPath, tt.music)
		}
	}
}

func TestResolveFallsBackToBirthday(t *testing.T) {
	registry := DefaultThemeRegistry()

	for _, key := range []string{"", "wedding", "Birthday", " birthday", "birthday ", "VALENTINESDAY"} {
		def := registry.Resolve(key)
		if def.Key != ThemeBirthday {
			t.Errorf("Resolve(%q).Key = %q, want birthday", key, def.Key)
		}
	}
}

func TestPaletteFallback(t *testing.T) {
	registry := DefaultThemeRegistry()

	if got := len(registry.Resolve("birthday").Palette()); got != 10 {
		t.Errorf("birthday palette length = %d, want default 10", got)
	}
	if got := len(registry.Resolve("valentinesday").Palette()); got != 3 {
		t.Errorf("valentinesday palette length = %d, want 3", got)
	}
}

func TestMusicAssetPath(t *testing.T) {
	def := DefaultThemeRegistry().Resolve("congrats")
	if got := def.MusicAssetPath(); got != "assets/music/celebration.mp3" {
		t.Errorf("MusicAssetPath() = %q", got)
	}
}

func TestParseThemeKey(t *testing.T) {
	if _, err := ParseThemeKey("congrats"); err != nil {
		t.Errorf("ParseThemeKey(congrats) error: %v", err)
	}
	if _, err := ParseThemeKey("halloween"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("ParseThemeKey(halloween) error = %v, want ErrUnknownTheme", err)
	}
}

// TestLoadThemesFile 确保仓库中的 data/themes.yaml 有效且与内置表一致
func TestLoadThemesFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "themes.yaml"))
	if err != nil {
		t.Fatalf("read themes.yaml: %v", err)
	}

	registry, err := LoadThemeRegistry(data)
	if err != nil {
		t.Fatalf("LoadThemeRegistry() error: %v", err)
	}

	builtin := DefaultThemeRegistry()
	for _, key := range AllThemeKeys() {
		got := registry.Resolve(string(key))
		want := builtin.Resolve(string(key))
		if got.MusicPath != want.MusicPath || got.PrimaryColor != want.PrimaryColor || got.Emoji != want.Emoji {
			t.Errorf("theme %s differs from builtin: %+v vs %+v", key, got, want)
		}
		if len(got.Palette()) != len(want.Palette()) {
			t.Errorf("theme %s palette length %d, builtin %d", key, len(got.Palette()), len(want.Palette()))
		}
	}
}

func TestLoadThemeRegistryErrors(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{
			name:        "unknown theme key",
			yamlContent: "themes:\n  halloween:\n    music: /music/x.mp3\n",
			errContains: "unknown theme",
		},
		{
			name:        "missing themes",
			yamlContent: "themes:\n  birthday:\n    music: /music/x.mp3\n    primaryColor: '#FFFFFF'\n    accentColors: ['#FFFFFF']\n",
			errContains: "is missing",
		},
		{
			name:        "malformed yaml",
			yamlContent: "themes: [",
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadThemeRegistry([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestGradientAt(t *testing.T) {
	stops := []string{"#000000", "#FFFFFF"}

	start := GradientAt(stops, 0)
	if start.R != 0 || start.G != 0 || start.B != 0 {
		t.Errorf("GradientAt(0) = %v, want black", start)
	}
	end := GradientAt(stops, 1)
	if end.R != 255 || end.G != 255 || end.B != 255 {
		t.Errorf("GradientAt(1) = %v, want white", end)
	}
	mid := GradientAt(stops, 0.5)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("GradientAt(0.5) = %v, want an intermediate gray", mid)
	}
}

func TestLighten(t *testing.T) {
	base := MustHexColor("#FF1744")

	if got := Lighten(base, 0); got != base {
		t.Errorf("Lighten(0) = %v, want unchanged %v", got, base)
	}
	white := Lighten(base, 1)
	if white.R != 255 || white.G != 255 || white.B != 255 {
		t.Errorf("Lighten(1) = %v, want white", white)
	}
	mid := Lighten(base, 0.3)
	if int(mid.G)+int(mid.B) <= int(base.G)+int(base.B) {
		t.Errorf("Lighten(0.3) = %v should be lighter than %v", mid, base)
	}
}
