package systems

import (
	"testing"

	"github.com/decker502/wishbloom/pkg/components"
)

func TestDisplayTextMasked(t *testing.T) {
	tests := []struct {
		name   string
		input  components.TextInputComponent
		expect string
	}{
		{"plain", components.TextInputComponent{Text: "4821"}, "4821"},
		{"masked digits", components.TextInputComponent{Text: "4821", Masked: true}, "●●●●"},
		{"masked multibyte", components.TextInputComponent{Text: "心愿", Masked: true}, "●●"},
		{"masked empty", components.TextInputComponent{Masked: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayText(&tt.input); got != tt.expect {
				t.Errorf("DisplayText() = %q, want %q", got, tt.expect)
			}
		})
	}
}
