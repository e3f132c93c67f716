package systems

import (
	"testing"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

func addTestButton(em *ecs.EntityManager, x, y float64, onClick func()) (ecs.EntityID, *components.ButtonComponent) {
	id := em.CreateEntity()
	button := &components.ButtonComponent{
		Width:           50,
		Height:          50,
		Enabled:         true,
		StopPropagation: true,
		OnClick:         onClick,
	}
	em.AddComponent(id, button)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return id, button
}

func TestButtonHandlePress(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonSystem(em)

	clicks := 0
	id, _ := addTestButton(em, 10, 10, func() { clicks++ })

	hit, ok := system.HandlePress(30, 30)
	if !ok || hit.Entity != id || !hit.StopPropagation {
		t.Fatalf("press inside button: hit=%+v ok=%v", hit, ok)
	}
	if clicks != 1 {
		t.Errorf("OnClick called %d times, want 1", clicks)
	}

	if _, ok := system.HandlePress(200, 200); ok {
		t.Error("press outside should not hit")
	}
	if clicks != 1 {
		t.Error("press outside should not trigger OnClick")
	}
}

func TestButtonDisabledIgnoresPress(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonSystem(em)

	clicked := false
	_, button := addTestButton(em, 0, 0, func() { clicked = true })
	button.Enabled = false

	if _, ok := system.HandlePress(10, 10); ok || clicked {
		t.Error("disabled button should ignore presses")
	}

	system.UpdateHover(10, 10, false)
	if button.State != components.UIDisabled {
		t.Errorf("state = %v, want Disabled", button.State)
	}
}

func TestButtonTopmostWins(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonSystem(em)

	var order []string
	addTestButton(em, 0, 0, func() { order = append(order, "bottom") })
	top, _ := addTestButton(em, 20, 20, func() { order = append(order, "top") })

	hit, ok := system.HandlePress(30, 30)
	if !ok || hit.Entity != top {
		t.Fatalf("overlap should hit the topmost button, got %+v", hit)
	}
	if len(order) != 1 || order[0] != "top" {
		t.Errorf("clicked %v, want only top", order)
	}
}

func TestButtonHoverStates(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewButtonSystem(em)
	_, button := addTestButton(em, 0, 0, nil)

	system.UpdateHover(10, 10, false)
	if button.State != components.UIHovered {
		t.Errorf("state = %v, want Hovered", button.State)
	}
	system.UpdateHover(10, 10, true)
	if button.State != components.UIClicked {
		t.Errorf("state = %v, want Clicked", button.State)
	}
	system.UpdateHover(100, 100, false)
	if button.State != components.UINormal {
		t.Errorf("state = %v, want Normal", button.State)
	}
}
