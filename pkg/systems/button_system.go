package systems

import (
	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责按钮的悬停状态和点击命中
//
// 职责：
//   - 根据指针位置更新按钮状态（UIHovered / UIClicked / UINormal）
//   - 按下时触发 OnClick，并告诉调用者是否需要阻止事件继续传递
//   - 根据 Enabled 状态决定是否响应交互
//
// 指针事件的分发顺序由场景统一管理，本系统不直接读取输入
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// ButtonHit 一次按下的命中结果
type ButtonHit struct {
	Entity          ecs.EntityID
	StopPropagation bool
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// UpdateHover 根据指针位置更新按钮状态
func (s *ButtonSystem) UpdateHover(x, y float64, pressed bool) {
	for _, entityID := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		switch {
		case !buttonRect(button, pos).Contains(x, y):
			button.State = components.UINormal
		case pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}
}

// HandlePress 处理一次按下
// 命中多个按钮时只触发最上层（ID 最大，即最后创建）的按钮
func (s *ButtonSystem) HandlePress(x, y float64) (ButtonHit, bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for i := len(entities) - 1; i >= 0; i-- {
		entityID := entities[i]
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Enabled || !buttonRect(button, pos).Contains(x, y) {
			continue
		}

		button.State = components.UIClicked
		if button.OnClick != nil {
			button.OnClick()
		}
		return ButtonHit{Entity: entityID, StopPropagation: button.StopPropagation}, true
	}
	return ButtonHit{}, false
}

// ButtonRect 返回按钮的点击区域
func (s *ButtonSystem) ButtonRect(entityID ecs.EntityID) (utils.Rect, bool) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return utils.Rect{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return utils.Rect{}, false
	}
	return buttonRect(button, pos), true
}

func buttonRect(button *components.ButtonComponent, pos *components.PositionComponent) utils.Rect {
	return utils.Rect{X: pos.X, Y: pos.Y, Width: button.Width, Height: button.Height}
}
