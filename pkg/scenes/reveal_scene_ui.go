package scenes

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/game"
	"github.com/decker502/wishbloom/pkg/systems"
	"github.com/decker502/wishbloom/pkg/utils"
)

var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGlass     = color.RGBA{R: 255, G: 255, B: 255, A: 64}
	colorCard      = color.RGBA{R: 255, G: 255, B: 255, A: 224}
	colorCardShade = color.RGBA{A: 36}
	colorBody      = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 255}
	colorMuted     = color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 255}
)

var pinInputStyle = systems.TextInputStyle{
	Fill:        color.RGBA{R: 0xF9, G: 0xFA, B: 0xFB, A: 255},
	Border:      color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 255},
	FocusBorder: color.RGBA{R: 0xF4, G: 0x72, B: 0xB6, A: 255},
	Text:        colorBody,
	Placeholder: color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 255},
	Padding:     14,
}

// 动画参数（秒）
const (
	cardDropDuration = 0.8
	cardDropDistance = 48.0
	cardDropBounce   = 0.3
	badgePulsePeriod = 2.0
	badgePulseAmount = 0.06
)

// revealTitle 卡片标题
func revealTitle(name string) string {
	return "For " + name
}

// quoteMessage 消息正文加引号
func quoteMessage(message string) string {
	return "“" + message + "”"
}

// footerText 页脚：浏览次数与创建时间
func footerText(views int, createdAt time.Time) string {
	viewWord := "views"
	if views == 1 {
		viewWord = "view"
	}
	footer := fmt.Sprintf("%s %s", humanize.Comma(int64(views)), viewWord)
	if !createdAt.IsZero() {
		footer += " · created " + humanize.Time(createdAt)
	}
	return footer
}

// cardDrop 揭晓卡片入场动画：返回 y 偏移与透明度
func cardDrop(elapsed float64) (offsetY, alpha float64) {
	p := utils.Progress(elapsed, 0, cardDropDuration)
	offsetY = -cardDropDistance * (1 - utils.EaseSpring(p, cardDropBounce))
	alpha = utils.EaseOutCubic(p)
	return offsetY, alpha
}

// badgePulse 锁屏徽章的呼吸缩放
func badgePulse(now float64) float64 {
	return 1 + badgePulseAmount*math.Sin(2*math.Pi*now/badgePulsePeriod)
}

// drawCentered 以 (cx, top) 为顶部中心绘制一行文字
func drawCentered(screen *ebiten.Image, str string, font *text.GoTextFace, cx, top float64, clr color.RGBA, alpha float64) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, top)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, font, op)
}

// drawPanel 绘制带阴影的圆角卡片
func drawPanel(screen *ebiten.Image, r utils.Rect, alpha float64) {
	utils.FillRoundedRect(screen, r.X, r.Y+6, r.Width, r.Height, config.CardCornerRadius, utils.WithAlpha(colorCardShade, alpha))
	utils.FillRoundedRect(screen, r.X, r.Y, r.Width, r.Height, config.CardCornerRadius, utils.WithAlpha(colorCard, alpha))
}

// drawLockCard 锁屏卡片（输入框和按钮由各自的渲染系统绘制）
func (s *RevealScene) drawLockCard(screen *ebiten.Image) {
	l := s.layout
	drawPanel(screen, l.lockCard, 1)

	primary := config.MustHexColor(s.theme.PrimaryColor)
	cx, cy := l.badge.Center()
	radius := l.badge.Width / 2 * badgePulse(s.scheduler.Now())
	utils.FillEllipse(screen, cx, cy, radius, radius, 0, utils.WithAlpha(primary, 0.18))
	utils.FillEllipse(screen, cx, cy, radius*0.72, radius*0.72, 0, primary)
	systems.DrawIcon(screen, components.IconLock, cx, cy, l.badge.Width*0.32, colorWhite)

	titleFont := s.rm.MustFont(game.FontBold, config.LockTitleFontSize)
	drawCentered(screen, textLockTitle, titleFont, cx, l.titleY, colorBody, 1)
	drawCentered(screen, textLockSubtitle, l.hintFont, cx, l.subtitleY, colorMuted, 1)
}

// drawRevealCard 揭晓卡片：标题、引号包裹的消息、提示、页脚
func (s *RevealScene) drawRevealCard(screen *ebiten.Image) {
	l := s.layout
	offsetY, alpha := cardDrop(s.scheduler.Now() - s.revealStartedAt)
	if alpha <= 0 {
		return
	}

	card := l.card
	card.Y += offsetY
	drawPanel(screen, card, alpha)

	cx := card.X + card.Width/2
	primary := config.MustHexColor(s.theme.PrimaryColor)

	y := l.titleTop + offsetY
	for _, line := range l.titleLines {
		drawCentered(screen, line, l.titleFont, cx, y, primary, alpha)
		y += lineHeight(l.titleFont)
	}

	y = l.messageTop + offsetY
	for _, line := range l.messageLines {
		drawCentered(screen, line, l.messageFont, cx, y, colorBody, alpha)
		y += lineHeight(l.messageFont)
	}

	drawCentered(screen, textBloomHint, l.hintFont, cx, l.hintTop+offsetY, colorMuted, alpha)
	drawCentered(screen, footerText(s.wish.Views, s.wish.CreatedAt), l.hintFont, cx, l.footerTop+offsetY, colorMuted, alpha)
}
