package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/utils"
)

// 数字键盘视觉常量
var (
	// 键盘背景颜色（半透明深色）
	keypadBackgroundColor = color.RGBA{R: 30, G: 30, B: 40, A: 230}

	keyNormalColor  = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	keyPressedColor = color.RGBA{R: 40, G: 40, B: 50, A: 255}
	keySpecialColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	keyDoneColor    = color.RGBA{R: 60, G: 100, B: 60, A: 255}
	keyTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const keyBorderRadius = 6.0

// PinKeypadRenderSystem 数字键盘渲染系统
type PinKeypadRenderSystem struct {
	entityManager *ecs.EntityManager
	keyFont       *text.GoTextFace
}

// NewPinKeypadRenderSystem 创建数字键盘渲染系统
func NewPinKeypadRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *PinKeypadRenderSystem {
	return &PinKeypadRenderSystem{
		entityManager: em,
		keyFont:       font,
	}
}

// Draw 绘制可见的键盘
func (s *PinKeypadRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.PinKeypadComponent](s.entityManager) {
		kp, _ := ecs.GetComponent[*components.PinKeypadComponent](s.entityManager, id)
		if !kp.IsVisible {
			continue
		}

		utils.FillRoundedRect(screen, kp.PanelX, kp.PanelY, kp.PanelWidth, kp.PanelHeight+keyBorderRadius*2,
			keyBorderRadius*2, keypadBackgroundColor)

		for _, key := range kp.Keys {
			s.drawKey(screen, kp, key)
		}
	}
}

// drawKey 绘制单个按键
func (s *PinKeypadRenderSystem) drawKey(screen *ebiten.Image, kp *components.PinKeypadComponent, key components.KeyInfo) {
	fill := keyNormalColor
	switch {
	case kp.PressedKey == key.Action:
		fill = keyPressedColor
	case key.Action == components.KeyActionDone:
		fill = keyDoneColor
	case components.IsSpecialKey(key.Action):
		fill = keySpecialColor
	}
	utils.FillRoundedRect(screen, key.X, key.Y, key.Width, key.Height, keyBorderRadius, fill)

	if s.keyFont == nil || key.Label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(key.X+key.Width/2, key.Y+key.Height/2)
	op.ColorScale.ScaleWithColor(keyTextColor)
	text.Draw(screen, key.Label, s.keyFont, op)
}
