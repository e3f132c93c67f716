package app

import (
	"testing"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/types"
)

func TestWindowTitle(t *testing.T) {
	registry := config.DefaultThemeRegistry()

	tests := []struct {
		name  string
		theme string
		wish  string
		want  string
	}{
		{"birthday", "birthday", "Mia", "🎂 A wish for Mia"},
		{"anniversary", "anniversary", "Sam", "💑 A wish for Sam"},
		{"unknown theme falls back", "halloween", "Mia", "🎂 A wish for Mia"},
		{"no name", "congrats", "", "🎉 Wishbloom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := registry.Resolve(tt.theme)
			got := WindowTitle(theme, types.Wish{Name: tt.wish, Theme: tt.theme})
			if got != tt.want {
				t.Errorf("WindowTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewAppRequiresEmbedded(t *testing.T) {
	if _, err := NewApp(Config{Verbose: true}); err == nil {
		t.Error("NewApp should fail before embedded.Init")
	}
}
