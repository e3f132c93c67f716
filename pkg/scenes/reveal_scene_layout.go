package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/game"
	"github.com/decker502/wishbloom/pkg/utils"
)

// 锁屏卡片内部尺寸（像素）
const (
	lockBadgeSize    = 64.0
	lockInputHeight  = 56.0
	lockButtonHeight = 48.0
	lockGap          = 16.0
)

// 揭晓卡片内部间距
const (
	cardSectionGap = 20.0
	cardLineSpread = 1.35 // 行高 = 字号 * cardLineSpread
	cardSideMargin = 24.0 // 宽屏卡片距视口边缘的最小距离
)

// revealLayout 一次视口尺寸下的布局结果
type revealLayout struct {
	narrow bool

	card      utils.Rect // 揭晓卡片
	lockCard  utils.Rect // 锁屏卡片
	badge     utils.Rect
	input     utils.Rect
	button    utils.Rect
	toggle    utils.Rect
	titleY    float64
	subtitleY float64

	titleFont   *text.GoTextFace
	messageFont *text.GoTextFace
	hintFont    *text.GoTextFace

	titleLines   []string
	messageLines []string
	titleTop     float64
	messageTop   float64
	hintTop      float64
	footerTop    float64
}

// lineHeight 按字号计算行高
func lineHeight(font *text.GoTextFace) float64 {
	return font.Size * cardLineSpread
}

// OnViewportResize 视口尺寸变化时重新布局
func (s *RevealScene) OnViewportResize(width, height int) {
	s.viewport.width = float64(width)
	s.viewport.height = float64(height)

	s.garden.SetViewportWidth(s.viewport.width)
	s.confettiSystem.SetViewport(s.viewport.width, s.viewport.height)
	s.keypadSystem.Layout(s.viewport.width, s.viewport.height)

	s.relayout()
}

// relayout 根据当前视口计算所有控件位置
func (s *RevealScene) relayout() {
	vw, vh := s.viewport.width, s.viewport.height
	l := revealLayout{narrow: s.garden.IsNarrow()}

	titleSize, messageSize := config.TitleFontSizeWide, config.MessageFontSizeWide
	margin := config.ToggleButtonMarginWide
	if l.narrow {
		titleSize, messageSize = config.TitleFontSizeNarrow, config.MessageFontSizeNarrow
		margin = config.ToggleButtonMarginNarrow
	}
	l.titleFont = s.rm.MustFont(game.FontBold, titleSize)
	l.messageFont = s.rm.MustFont(game.FontRegular, messageSize)
	l.hintFont = s.rm.MustFont(game.FontRegular, config.HintFontSize)

	// 音乐开关：右上角
	l.toggle = utils.Rect{
		X:      vw - margin - config.ToggleButtonSize,
		Y:      margin,
		Width:  config.ToggleButtonSize,
		Height: config.ToggleButtonSize,
	}

	s.layoutRevealCard(&l, vw, vh)
	s.layoutLockCard(&l, vw, vh)

	s.layout = l
	s.applyLayout()
}

// layoutRevealCard 揭晓卡片：标题、消息、提示、页脚自上而下排列
// 窄屏顶部对齐，宽屏垂直居中
func (s *RevealScene) layoutRevealCard(l *revealLayout, vw, vh float64) {
	width := math.Min(config.CardMaxWidthWide, vw-2*cardSideMargin)
	if l.narrow {
		width = vw * config.CardMaxWidthNarrow
	}
	inner := math.Max(width-2*config.CardPadding, 1)

	l.titleLines = utils.WrapText(revealTitle(s.wish.Name), l.titleFont, inner)
	l.messageLines = utils.WrapText(quoteMessage(s.wish.Message), l.messageFont, inner)

	titleH := float64(len(l.titleLines)) * lineHeight(l.titleFont)
	messageH := float64(len(l.messageLines)) * lineHeight(l.messageFont)
	hintH := lineHeight(l.hintFont)

	height := 2*config.CardPadding + titleH + cardSectionGap + messageH + cardSectionGap + hintH + cardSectionGap + hintH

	top := config.CardTopNarrow
	if !l.narrow {
		top = math.Max((vh-height)/2, cardSideMargin)
	}
	l.card = utils.Rect{X: (vw - width) / 2, Y: top, Width: width, Height: height}

	l.titleTop = l.card.Y + config.CardPadding
	l.messageTop = l.titleTop + titleH + cardSectionGap
	l.hintTop = l.messageTop + messageH + cardSectionGap
	l.footerTop = l.hintTop + hintH + cardSectionGap
}

// layoutLockCard 锁屏卡片：徽章、标题、副标题、输入框、按钮，整体居中
func (s *RevealScene) layoutLockCard(l *revealLayout, vw, vh float64) {
	width := math.Min(config.LockCardMaxWidth, vw*config.CardMaxWidthNarrow)
	inner := width - 2*config.CardPadding

	lockTitleH := config.LockTitleFontSize * cardLineSpread
	subtitleH := config.HintFontSize * cardLineSpread * 1.2
	height := 2*config.CardPadding + lockBadgeSize + lockGap + lockTitleH + subtitleH + lockGap +
		lockInputHeight + lockGap + lockButtonHeight

	l.lockCard = utils.Rect{X: (vw - width) / 2, Y: (vh - height) / 2, Width: width, Height: height}

	y := l.lockCard.Y + config.CardPadding
	l.badge = utils.Rect{X: vw/2 - lockBadgeSize/2, Y: y, Width: lockBadgeSize, Height: lockBadgeSize}
	y += lockBadgeSize + lockGap
	l.titleY = y
	y += lockTitleH
	l.subtitleY = y
	y += subtitleH + lockGap
	l.input = utils.Rect{X: l.lockCard.X + config.CardPadding, Y: y, Width: inner, Height: lockInputHeight}
	y += lockInputHeight + lockGap
	l.button = utils.Rect{X: l.lockCard.X + config.CardPadding, Y: y, Width: inner, Height: lockButtonHeight}
}

// applyLayout 把布局结果写回控件实体
func (s *RevealScene) applyLayout() {
	l := s.layout
	em := s.entityManager

	place := func(id ecs.EntityID, r utils.Rect) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			pos.X, pos.Y = r.X, r.Y
		}
	}

	if button, ok := ecs.GetComponent[*components.ButtonComponent](em, s.toggleButton); ok {
		place(s.toggleButton, l.toggle)
		button.Width, button.Height = l.toggle.Width, l.toggle.Height
		button.CornerRadius = l.toggle.Width / 2
	}
	if input, ok := ecs.GetComponent[*components.TextInputComponent](em, s.pinInput); ok {
		place(s.pinInput, l.input)
		input.Width, input.Height = l.input.Width, l.input.Height
	}
	if button, ok := ecs.GetComponent[*components.ButtonComponent](em, s.unlockButton); ok {
		place(s.unlockButton, l.button)
		button.Width, button.Height = l.button.Width, l.button.Height
		button.CornerRadius = l.button.Height / 2
	}
}

// exclusionZones 点击这些区域不会生成花朵
func (s *RevealScene) exclusionZones() []utils.Rect {
	if s.session != nil && s.session.IsLocked() {
		return []utils.Rect{s.layout.lockCard}
	}
	zones := []utils.Rect{s.layout.card}
	if s.toggleButton != 0 {
		zones = append(zones, s.layout.toggle)
	}
	return zones
}
