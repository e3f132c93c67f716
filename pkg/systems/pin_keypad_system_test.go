package systems

import (
	"testing"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

func newKeypadFixture(t *testing.T) (*ecs.EntityManager, *PinKeypadSystem, *components.TextInputComponent, *[]string) {
	t.Helper()
	em := ecs.NewEntityManager()
	system := NewPinKeypadSystem(em)

	var submitted []string
	input := &components.TextInputComponent{
		MaxLength: 4,
		OnSubmit:  func(text string) { submitted = append(submitted, text) },
	}
	inputID := em.CreateEntity()
	em.AddComponent(inputID, input)

	em.AddComponent(em.CreateEntity(), &components.PinKeypadComponent{})
	system.Layout(400, 800)
	system.Show(inputID)
	return em, system, input, &submitted
}

func pressKey(t *testing.T, em *ecs.EntityManager, system *PinKeypadSystem, action string) {
	t.Helper()
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](em) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](em, id)
		for _, key := range kp.Keys {
			if key.Action == action {
				if !system.HandlePress(key.X+key.Width/2, key.Y+key.Height/2) {
					t.Fatalf("press on %q was not consumed", action)
				}
				return
			}
		}
	}
	t.Fatalf("key %q not found", action)
}

func TestKeypadLayout(t *testing.T) {
	em, _, _, _ := newKeypadFixture(t)

	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](em) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](em, id)
		if len(kp.Keys) != 12 {
			t.Fatalf("expected 12 keys, got %d", len(kp.Keys))
		}
		if kp.PanelY+kp.PanelHeight != 800 {
			t.Errorf("keypad should sit at the bottom, panel ends at %v", kp.PanelY+kp.PanelHeight)
		}
		if kp.PanelX < 0 || kp.PanelX+kp.PanelWidth > 400 {
			t.Errorf("keypad should fit the viewport, x=%v w=%v", kp.PanelX, kp.PanelWidth)
		}
	}
}

func TestKeypadTypesAndSubmits(t *testing.T) {
	em, system, input, submitted := newKeypadFixture(t)

	for _, k := range []string{"4", "8", "2", "2", components.KeyActionBackspace, "1"} {
		pressKey(t, em, system, k)
	}
	if input.Text != "4821" {
		t.Fatalf("input = %q, want 4821", input.Text)
	}

	pressKey(t, em, system, components.KeyActionDone)
	if len(*submitted) != 1 || (*submitted)[0] != "4821" {
		t.Errorf("submitted = %v", *submitted)
	}
}

func TestKeypadPressOutsideCloses(t *testing.T) {
	_, system, _, _ := newKeypadFixture(t)

	if system.HandlePress(200, 10) {
		t.Error("press outside the keypad should pass through")
	}
	if system.IsVisible() {
		t.Error("keypad should close after a press outside")
	}
	if system.HandlePress(200, 790) {
		t.Error("hidden keypad should not consume presses")
	}
}

func TestKeypadHighlightExpires(t *testing.T) {
	em, system, _, _ := newKeypadFixture(t)
	pressKey(t, em, system, "5")

	system.Update(keyPressHighlightDuration / 2)
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](em) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](em, id)
		if kp.PressedKey != "5" {
			t.Errorf("pressed key = %q, want 5", kp.PressedKey)
		}
	}

	system.Update(keyPressHighlightDuration)
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](em) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](em, id)
		if kp.PressedKey != "" {
			t.Errorf("highlight should clear, got %q", kp.PressedKey)
		}
	}
}
