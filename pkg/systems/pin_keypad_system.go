package systems

import (
	"log"
	"math"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

// 键盘布局参数
const (
	keyPressHighlightDuration = 0.1 // 按键高亮持续时间（秒）
	keypadMaxWidth            = 360.0
	keypadKeyHeight           = 52.0
	keypadKeySpacing          = 8.0
	keypadPadding             = 12.0
)

// PinKeypadSystem 屏幕数字键盘系统
// 移动端输入框获得焦点时显示，按键直接编辑目标输入框
//
// 指针事件由场景在按钮之后、手势分发之前交给 HandlePress，
// 键盘消费的事件不再传递给花园
type PinKeypadSystem struct {
	entityManager *ecs.EntityManager
}

// NewPinKeypadSystem 创建数字键盘系统
func NewPinKeypadSystem(em *ecs.EntityManager) *PinKeypadSystem {
	return &PinKeypadSystem{
		entityManager: em,
	}
}

// Update 更新按键高亮计时
func (s *PinKeypadSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](s.entityManager) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](s.entityManager, id)
		if kp.PressedKey == "" {
			continue
		}
		kp.PressedTimer -= deltaTime
		if kp.PressedTimer <= 0 {
			kp.PressedKey = ""
			kp.PressedTimer = 0
		}
	}
}

// Layout 按视口尺寸计算键盘位置（贴底、水平居中）
func (s *PinKeypadSystem) Layout(viewportWidth, viewportHeight float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](s.entityManager) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](s.entityManager, id)
		layoutKeypad(kp, viewportWidth, viewportHeight)
	}
}

func layoutKeypad(kp *components.PinKeypadComponent, viewportWidth, viewportHeight float64) {
	rows := len(components.PinKeypadLayout)
	cols := len(components.PinKeypadLayout[0])

	kp.PanelWidth = math.Min(viewportWidth, keypadMaxWidth)
	kp.PanelHeight = float64(rows)*(keypadKeyHeight+keypadKeySpacing) - keypadKeySpacing + keypadPadding*2
	kp.PanelX = (viewportWidth - kp.PanelWidth) / 2
	kp.PanelY = viewportHeight - kp.PanelHeight

	keyWidth := (kp.PanelWidth - keypadPadding*2 - float64(cols-1)*keypadKeySpacing) / float64(cols)

	kp.Keys = kp.Keys[:0]
	for r, row := range components.PinKeypadLayout {
		for c, action := range row {
			kp.Keys = append(kp.Keys, components.KeyInfo{
				Label:  components.KeyLabel(action),
				Action: action,
				X:      kp.PanelX + keypadPadding + float64(c)*(keyWidth+keypadKeySpacing),
				Y:      kp.PanelY + keypadPadding + float64(r)*(keypadKeyHeight+keypadKeySpacing),
				Width:  keyWidth,
				Height: keypadKeyHeight,
			})
		}
	}
}

// Show 显示键盘并绑定目标输入框
func (s *PinKeypadSystem) Show(target ecs.EntityID) {
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](s.entityManager) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](s.entityManager, id)
		kp.TargetInputEntity = target
		kp.IsVisible = true
	}
}

// Hide 隐藏所有键盘
func (s *PinKeypadSystem) Hide() {
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](s.entityManager) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](s.entityManager, id)
		kp.IsVisible = false
	}
}

// IsVisible 是否有键盘正在显示
func (s *PinKeypadSystem) IsVisible() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](s.entityManager) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](s.entityManager, id)
		if kp.IsVisible {
			return true
		}
	}
	return false
}

// HandlePress 处理一次按下，返回事件是否被键盘消费
// 按在键盘面板外时关闭键盘，事件继续传递
func (s *PinKeypadSystem) HandlePress(x, y float64) bool {
	consumed := false
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](s.entityManager) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](s.entityManager, id)
		if !kp.IsVisible {
			continue
		}

		if !inPanel(kp, x, y) {
			log.Printf("[PinKeypadSystem] Press outside keypad, closing")
			kp.IsVisible = false
			continue
		}

		consumed = true
		if key := hitTestKey(kp, x, y); key != nil {
			kp.PressedKey = key.Action
			kp.PressedTimer = keyPressHighlightDuration
			s.handleKeyPress(kp, key.Action)
		}
	}
	return consumed
}

func inPanel(kp *components.PinKeypadComponent, x, y float64) bool {
	return x >= kp.PanelX && x <= kp.PanelX+kp.PanelWidth &&
		y >= kp.PanelY && y <= kp.PanelY+kp.PanelHeight
}

func hitTestKey(kp *components.PinKeypadComponent, x, y float64) *components.KeyInfo {
	for i := range kp.Keys {
		key := &kp.Keys[i]
		if x >= key.X && x <= key.X+key.Width &&
			y >= key.Y && y <= key.Y+key.Height {
			return key
		}
	}
	return nil
}

// handleKeyPress 把按键动作作用到目标输入框
func (s *PinKeypadSystem) handleKeyPress(kp *components.PinKeypadComponent, action string) {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, kp.TargetInputEntity)
	if !ok {
		log.Printf("[PinKeypadSystem] Target entity %d has no TextInputComponent", kp.TargetInputEntity)
		return
	}

	switch action {
	case components.KeyActionBackspace:
		DeleteCharBefore(input)
	case components.KeyActionDone:
		SubmitInput(input)
	default:
		InsertText(input, action)
	}
}
