package systems

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/utils"
)

// 提示条外观
const (
	maxVisibleToasts = 3
	toastPaddingX    = 20.0
	toastPaddingY    = 10.0
	toastSpacing     = 8.0
	toastMarginBot   = 32.0
	toastFadeIn      = 0.2
	toastFadeOut     = 0.4
)

var (
	toastFill = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xE6}
	toastText = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// ToastSystem 屏幕底部的短暂提示
// 实现 game.Notifier：Notify 创建一个带 LifetimeComponent 的提示实体，
// 到期后由 LifetimeSystem 销毁
type ToastSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
	duration      float64
}

// NewToastSystem 创建提示系统
func NewToastSystem(em *ecs.EntityManager, font *text.GoTextFace, duration float64) *ToastSystem {
	return &ToastSystem{
		entityManager: em,
		font:          font,
		duration:      duration,
	}
}

// Notify 显示一条提示
func (s *ToastSystem) Notify(message string) {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ToastComponent{Message: message})
	s.entityManager.AddComponent(id, &components.LifetimeComponent{MaxLifetime: s.duration})
	log.Printf("[ToastSystem] %s", message)

	s.restack()
}

// Update 重新计算堆叠顺序
func (s *ToastSystem) Update(deltaTime float64) {
	s.restack()
}

// restack 最新的提示在最底部；超过上限的旧提示立即过期
func (s *ToastSystem) restack() {
	entities := s.activeToasts()
	for i := len(entities) - 1; i >= 0; i-- {
		slot := len(entities) - 1 - i
		toast, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, entities[i])
		toast.Slot = slot

		if slot >= maxVisibleToasts {
			lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, entities[i])
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(entities[i])
		}
	}
}

// activeToasts 返回未过期的提示（按创建顺序）
func (s *ToastSystem) activeToasts() []ecs.EntityID {
	var active []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.ToastComponent, *components.LifetimeComponent](s.entityManager) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !lifetime.IsExpired {
			active = append(active, id)
		}
	}
	return active
}

// Messages 返回当前显示的提示（从底部到顶部）
func (s *ToastSystem) Messages() []string {
	entities := s.activeToasts()
	messages := make([]string, 0, len(entities))
	for i := len(entities) - 1; i >= 0; i-- {
		toast, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, entities[i])
		messages = append(messages, toast.Message)
	}
	return messages
}

// Draw 在视口底部居中绘制提示
func (s *ToastSystem) Draw(screen *ebiten.Image, viewportWidth, viewportHeight float64) {
	if s.font == nil {
		return
	}
	_, lineHeight := utils.MeasureText("Ag", s.font)
	boxHeight := lineHeight + toastPaddingY*2

	for _, id := range s.activeToasts() {
		toast, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		alpha := toastAlpha(lifetime)
		if alpha <= 0 {
			continue
		}

		w, _ := utils.MeasureText(toast.Message, s.font)
		boxWidth := w + toastPaddingX*2
		x := (viewportWidth - boxWidth) / 2
		y := viewportHeight - toastMarginBot - boxHeight - float64(toast.Slot)*(boxHeight+toastSpacing)

		utils.FillRoundedRect(screen, x, y, boxWidth, boxHeight, boxHeight/2, utils.WithAlpha(toastFill, alpha))

		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(viewportWidth/2, y+boxHeight/2)
		op.ColorScale.ScaleWithColor(toastText)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, toast.Message, s.font, op)
	}
}

// toastAlpha 淡入淡出
func toastAlpha(l *components.LifetimeComponent) float64 {
	in := utils.Progress(l.CurrentLifetime, 0, toastFadeIn)
	out := 1 - utils.Progress(l.CurrentLifetime, l.MaxLifetime-toastFadeOut, toastFadeOut)
	return in * out
}
