package entities

import (
	"testing"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

func TestNewIconButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false

	id := NewIconButton(em, IconButtonSpec{
		X: 10, Y: 20, Size: 44,
		Icon:    components.IconPlay,
		OnClick: func() { clicked = true },
	})

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 10 || pos.Y != 20 {
		t.Fatalf("position = %+v, %v", pos, ok)
	}
	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if button.Width != 44 || button.Height != 44 || button.CornerRadius != 22 {
		t.Errorf("icon button should be a 44px circle, got %+v", button)
	}
	if !button.Enabled || !button.StopPropagation {
		t.Error("icon button should be enabled and stop propagation")
	}

	button.OnClick()
	if !clicked {
		t.Error("OnClick should be wired")
	}
}

func TestNewTextButtonIsPill(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewTextButton(em, TextButtonSpec{Width: 200, Height: 48, Label: "Unlock"})

	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	if button.Label != "Unlock" || button.CornerRadius != 24 {
		t.Errorf("text button = %+v", button)
	}
}

func TestNewPinInput(t *testing.T) {
	em := ecs.NewEntityManager()
	var got string

	id := NewPinInput(em, 0, 0, 240, 56, 4, "PIN", func(s string) { got = s })

	input, ok := ecs.GetComponent[*components.TextInputComponent](em, id)
	if !ok {
		t.Fatal("text input component missing")
	}
	if !input.Masked || input.MaxLength != 4 || input.Placeholder != "PIN" {
		t.Errorf("pin input = %+v", input)
	}
	input.OnSubmit("4821")
	if got != "4821" {
		t.Errorf("OnSubmit forwarded %q", got)
	}
}

func TestNewPinKeypadEntityStartsHidden(t *testing.T) {
	em := ecs.NewEntityManager()
	target := NewPinInput(em, 0, 0, 240, 56, 4, "", nil)

	id := NewPinKeypadEntity(em, target)
	kp, ok := ecs.GetComponent[*components.PinKeypadComponent](em, id)
	if !ok || kp.IsVisible || kp.TargetInputEntity != target {
		t.Errorf("keypad = %+v, %v", kp, ok)
	}
}
