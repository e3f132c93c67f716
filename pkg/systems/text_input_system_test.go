package systems

import (
	"testing"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

func TestInsertTextAtCursor(t *testing.T) {
	input := &components.TextInputComponent{Text: "4821", CursorPosition: 2}

	InsertText(input, "xy")

	if input.Text != "48xy21" || input.CursorPosition != 4 {
		t.Errorf("got %q cursor=%d, want \"48xy21\" cursor=4", input.Text, input.CursorPosition)
	}
	if !input.CursorVisible {
		t.Error("cursor should be visible after typing")
	}
}

func TestInsertTextKeepsAnyCharacter(t *testing.T) {
	input := &components.TextInputComponent{}

	InsertText(input, " Ab-1 ")

	if input.Text != " Ab-1 " {
		t.Errorf("input should keep whitespace and symbols, got %q", input.Text)
	}
}

func TestInsertTextMaxLength(t *testing.T) {
	input := &components.TextInputComponent{MaxLength: 4, Text: "12", CursorPosition: 2}

	InsertText(input, "3456")
	if input.Text != "1234" {
		t.Errorf("input should be truncated to max length, got %q", input.Text)
	}

	InsertText(input, "9")
	if input.Text != "1234" {
		t.Errorf("full input should ignore new characters, got %q", input.Text)
	}
}

func TestDeleteAndMove(t *testing.T) {
	input := &components.TextInputComponent{Text: "密码12", CursorPosition: 2}

	DeleteCharBefore(input)
	if input.Text != "密12" || input.CursorPosition != 1 {
		t.Errorf("backspace: got %q cursor=%d", input.Text, input.CursorPosition)
	}

	DeleteCharAfter(input)
	if input.Text != "密2" || input.CursorPosition != 1 {
		t.Errorf("delete: got %q cursor=%d", input.Text, input.CursorPosition)
	}

	MoveCursor(input, -10)
	DeleteCharBefore(input)
	if input.Text != "密2" || input.CursorPosition != 0 {
		t.Errorf("backspace at start should be a no-op, got %q cursor=%d", input.Text, input.CursorPosition)
	}

	MoveCursor(input, 10)
	DeleteCharAfter(input)
	if input.CursorPosition != 2 || input.Text != "密2" {
		t.Errorf("delete at end should be a no-op, got %q cursor=%d", input.Text, input.CursorPosition)
	}
}

func TestSubmitInputPassesRawText(t *testing.T) {
	var submitted []string
	input := &components.TextInputComponent{
		Text:     " 4821 ",
		OnSubmit: func(text string) { submitted = append(submitted, text) },
	}

	SubmitInput(input)
	SubmitInput(&components.TextInputComponent{Text: "ignored"})

	if len(submitted) != 1 || submitted[0] != " 4821 " {
		t.Errorf("submitted = %q, want one raw value", submitted)
	}
}

func TestFocusIsExclusive(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewTextInputSystem(em)

	first := em.CreateEntity()
	em.AddComponent(first, &components.TextInputComponent{IsFocused: true})
	second := em.CreateEntity()
	em.AddComponent(second, &components.TextInputComponent{})

	system.Focus(second)

	a, _ := ecs.GetComponent[*components.TextInputComponent](em, first)
	b, _ := ecs.GetComponent[*components.TextInputComponent](em, second)
	if a.IsFocused || !b.IsFocused {
		t.Errorf("focus should move to the second input: first=%v second=%v", a.IsFocused, b.IsFocused)
	}
	if focused, ok := system.FocusedInput(); !ok || focused != b {
		t.Error("FocusedInput should return the second input")
	}
}

func TestCursorBlink(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewTextInputSystem(em)

	id := em.CreateEntity()
	input := &components.TextInputComponent{CursorVisible: true}
	em.AddComponent(id, input)

	system.updateCursorBlink(input, cursorBlinkInterval)
	if input.CursorVisible {
		t.Error("cursor should toggle after the blink interval")
	}
	system.updateCursorBlink(input, cursorBlinkInterval/2)
	if input.CursorVisible {
		t.Error("cursor should not toggle before the interval")
	}
}
