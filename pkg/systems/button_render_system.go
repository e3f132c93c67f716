package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/utils"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体
//
// 职责：
//   - 渲染圆角背景（悬停时提亮，按下时变暗）
//   - 渲染矢量图标（播放、暂停、锁）
//   - 渲染按钮文字（自动居中，带阴影）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, entityID := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	s.drawButtonBackground(screen, button, pos.X, pos.Y)

	labelX := pos.X + button.Width/2
	if button.Icon != components.IconNone {
		iconSize := button.Height * 0.4
		iconX := labelX
		if button.Label != "" && button.Font != nil {
			w, _ := utils.MeasureText(button.Label, button.Font)
			gap := iconSize * 0.5
			iconX = labelX - (iconSize+gap+w)/2 + iconSize/2
			labelX = iconX + iconSize/2 + gap + w/2
		}
		DrawIcon(screen, button.Icon, iconX, pos.Y+button.Height/2, iconSize, button.TextColor)
	}

	s.drawButtonText(screen, button, labelX, pos.Y+button.Height/2)
}

// drawButtonBackground 根据状态选择背景颜色
func (s *ButtonRenderSystem) drawButtonBackground(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	fill := button.Fill
	switch button.State {
	case components.UIHovered:
		fill = config.Lighten(fill, 0.15)
	case components.UIClicked:
		fill = darken(fill, 0.15)
	case components.UIDisabled:
		fill = utils.WithAlpha(fill, 0.5)
	}
	utils.FillRoundedRect(screen, x, y, button.Width, button.Height, button.CornerRadius, fill)
}

// drawButtonText 渲染按钮文字（居中，带阴影）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, centerX, centerY float64) {
	if button.Label == "" || button.Font == nil {
		return
	}

	const shadowOffset = 1.5

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffset, centerY+shadowOffset)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 90})
	text.Draw(screen, button.Label, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Label, button.Font, op)
}

// DrawIcon 以 (cx, cy) 为中心绘制边长约为 size 的图标
func DrawIcon(screen *ebiten.Image, icon components.ButtonIcon, cx, cy, size float64, clr color.RGBA) {
	half := size / 2
	switch icon {
	case components.IconPlay:
		// 三角形视觉重心略偏左，向右挪一点
		ox := size * 0.08
		utils.FillConvexPolygon(screen, []utils.Point{
			{X: cx - half*0.8 + ox, Y: cy - half},
			{X: cx + half + ox, Y: cy},
			{X: cx - half*0.8 + ox, Y: cy + half},
		}, clr)
	case components.IconPause:
		bar := size * 0.3
		gap := size * 0.2
		utils.FillRoundedRect(screen, cx-gap/2-bar, cy-half, bar, size, bar/3, clr)
		utils.FillRoundedRect(screen, cx+gap/2, cy-half, bar, size, bar/3, clr)
	case components.IconLock:
		bodyH := size * 0.6
		bodyY := cy - half + size*0.4
		utils.FillRoundedRect(screen, cx-half, bodyY, size, bodyH, size*0.1, clr)
		// 锁梁：半圆弧
		vector.StrokeCircle(screen, float32(cx), float32(bodyY), float32(size*0.3), float32(size*0.12), clr, true)
	}
}

// darken 按比例调暗颜色
func darken(c color.RGBA, amount float64) color.RGBA {
	k := 1 - utils.Clamp01(amount)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
