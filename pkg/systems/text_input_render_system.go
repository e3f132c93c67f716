package systems

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/utils"
)

// maskRune 遮罩模式下代替每个字符显示的符号
const maskRune = "●"

// TextInputStyle 输入框外观
type TextInputStyle struct {
	Fill        color.RGBA
	Border      color.RGBA
	FocusBorder color.RGBA
	Text        color.RGBA
	Placeholder color.RGBA
	Padding     float64
}

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框背景、边框、文本（或遮罩圆点）和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
	style         TextInputStyle
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, font *text.GoTextFace, style TextInputStyle) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		font:          font,
		style:         style,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	for _, entityID := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		s.DrawInputBox(screen, input, pos)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	radius := input.Height / 4
	border := s.style.Border
	if input.IsFocused {
		border = s.style.FocusBorder
	}

	// 1. 边框 + 背景（两层圆角矩形）
	utils.FillRoundedRect(screen, pos.X, pos.Y, input.Width, input.Height, radius, border)
	utils.FillRoundedRect(screen, pos.X+2, pos.Y+2, input.Width-4, input.Height-4, radius-2, s.style.Fill)

	// 2. 文本或占位符
	textX := pos.X + s.style.Padding
	textY := pos.Y + input.Height/2

	if input.Text == "" {
		if input.Placeholder != "" && !input.IsFocused {
			s.drawText(screen, input.Placeholder, textX, textY, s.style.Placeholder)
		}
	} else {
		s.drawText(screen, DisplayText(input), textX, textY, s.style.Text)
	}

	// 3. 光标（闪烁的竖线）
	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, textX, textY)
	}
}

// DisplayText 返回输入框实际显示的内容，遮罩模式下每个字符显示为一个圆点
func DisplayText(input *components.TextInputComponent) string {
	if !input.Masked {
		return input.Text
	}
	return strings.Repeat(maskRune, len([]rune(input.Text)))
}

// drawText 绘制垂直居中的文本
func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, txt string, x, y float64, clr color.Color) {
	if s.font == nil || txt == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter

	text.Draw(screen, txt, s.font, op)
}

// drawCursor 光标在第 CursorPosition 个字符之后
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, textX, textY float64) {
	if s.font == nil {
		return
	}

	display := []rune(DisplayText(input))
	pos := clampCursor(input.CursorPosition, len(display))

	var before float64
	if pos > 0 {
		before, _ = text.Measure(string(display[:pos]), s.font, 0)
	}

	x := float32(textX + before + 1)
	top := float32(textY - input.Height/4)
	bottom := float32(textY + input.Height/4)
	vector.StrokeLine(screen, x, top, x, bottom, 2, s.style.Text, false)
}
