package scenes

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/ecs"
	"github.com/decker502/wishbloom/pkg/entities"
	"github.com/decker502/wishbloom/pkg/game"
	"github.com/decker502/wishbloom/pkg/systems"
	"github.com/decker502/wishbloom/pkg/types"
	"github.com/decker502/wishbloom/pkg/utils"
)

// 界面文案
const (
	textLockTitle    = "Protected Wish"
	textLockSubtitle = "Enter the PIN to open this wish"
	textUnlock       = "Unlock Wish"
	textPinHint      = "PIN"
	textBloomHint    = "Tap below to bloom roses"
)

// RevealOptions 揭晓场景的输入
type RevealOptions struct {
	Wish      types.Wish
	Theme     config.ThemeDefinition
	Config    config.RevealConfig
	Resources *game.ResourceManager

	// Volume 背景音乐音量 [0, 1]
	Volume float64

	// Track 为 nil 时加载主题音乐（EbitenTrack）；测试注入假实现
	Track game.Track

	// Rand 为 nil 时使用随机种子
	Rand *rand.Rand

	// Mobile 为 true 时 PIN 输入使用屏幕数字键盘
	Mobile bool
}

// trackUpdater 需要每帧推进的 Track（EbitenTrack）
type trackUpdater interface {
	Update(deltaTime float64)
}

// trackCloser 场景销毁时需要释放的 Track
type trackCloser interface {
	Close()
}

// RevealScene 心愿揭晓场景
//
// 一个场景对应一次挂载：
//   - 有 PIN：先显示锁屏，输入正确后切换到揭晓卡片
//   - 无 PIN：直接显示揭晓卡片，第一帧挂载时播放音乐并庆祝
//
// 指针事件分发顺序（见 HandlePointer）：
// 数字键盘 → 按钮 → 全局手势 → 输入框 → 花园
type RevealScene struct {
	wish  types.Wish
	theme config.ThemeDefinition
	cfg   config.RevealConfig
	rm    *game.ResourceManager

	// 场景内核
	scheduler *game.Scheduler
	gestures  *game.GestureHub
	track     game.Track
	audio     *game.AudioController
	session   *game.RevealSession
	garden    *game.GardenManager

	// ECS
	entityManager         *ecs.EntityManager
	lifetimeSystem        *systems.LifetimeSystem
	toastSystem           *systems.ToastSystem
	confettiSystem        *systems.ConfettiSystem
	buttonSystem          *systems.ButtonSystem
	buttonRenderSystem    *systems.ButtonRenderSystem
	textInputSystem       *systems.TextInputSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	keypadSystem          *systems.PinKeypadSystem
	keypadRenderSystem    *systems.PinKeypadRenderSystem
	flowerRenderSystem    *systems.FlowerRenderSystem
	backgroundSystem      *systems.BackgroundRenderSystem

	// UI 实体（0 表示不存在）
	toggleButton ecs.EntityID
	pinInput     ecs.EntityID
	unlockButton ecs.EntityID
	keypad       ecs.EntityID

	layout   revealLayout
	viewport struct{ width, height float64 }

	mobile          bool
	mounted         bool
	closed          bool
	revealStartedAt float64
}

// NewRevealScene 创建揭晓场景
func NewRevealScene(opts RevealOptions) *RevealScene {
	s := &RevealScene{
		wish:      opts.Wish,
		theme:     opts.Theme,
		cfg:       opts.Config,
		rm:        opts.Resources,
		scheduler: game.NewScheduler(),
		gestures:  game.NewGestureHub(),
		mobile:    opts.Mobile,
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s.track = opts.Track
	if s.track == nil {
		s.track = game.NewEbitenTrack(s.rm, s.theme.MusicAssetPath(), opts.Volume)
	}

	s.initSystems(rng)

	s.audio = game.NewAudioController(s.track, s.gestures, s.toastSystem)
	s.garden = game.NewGardenManager(s.cfg.Garden, s.theme.Palette(), s.scheduler, rng)
	s.garden.SetExclusionZones(s.exclusionZones)
	s.flowerRenderSystem = systems.NewFlowerRenderSystem(s.garden, s.scheduler)
	s.session = game.NewRevealSession(
		game.NewLockGate(s.wish.Pin),
		s.audio,
		s.confettiSystem,
		s.scheduler,
		s.toastSystem,
		s.theme.AccentColors,
		s.cfg.Lock,
	)

	if s.session.IsLocked() {
		s.createLockUI()
	} else {
		s.createRevealUI()
	}

	s.OnViewportResize(config.GameWindowWidth, config.GameWindowHeight)

	log.Printf("[RevealScene] Created (theme=%s, locked=%v)", s.theme.Key, s.session.IsLocked())
	return s
}

// initSystems 创建 ECS 系统
func (s *RevealScene) initSystems(rng *rand.Rand) {
	em := ecs.NewEntityManager()
	s.entityManager = em

	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.toastSystem = systems.NewToastSystem(em, s.rm.MustFont(game.FontRegular, config.ToastFontSize), config.ToastDuration)
	s.confettiSystem = systems.NewConfettiSystem(em, s.cfg.Confetti, rng)
	s.buttonSystem = systems.NewButtonSystem(em)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(em)
	s.textInputSystem = systems.NewTextInputSystem(em)
	s.textInputRenderSystem = systems.NewTextInputRenderSystem(em, s.rm.MustFont(game.FontBold, config.PinFontSize), pinInputStyle)
	s.keypadSystem = systems.NewPinKeypadSystem(em)
	s.keypadRenderSystem = systems.NewPinKeypadRenderSystem(em, s.rm.MustFont(game.FontBold, config.PinFontSize))
	s.backgroundSystem = systems.NewBackgroundRenderSystem(s.theme.Background)
}

// createLockUI 创建锁屏控件：PIN 输入框、解锁按钮，移动端附带数字键盘
func (s *RevealScene) createLockUI() {
	s.pinInput = entities.NewPinInput(s.entityManager, 0, 0, 0, 0,
		s.cfg.Lock.PinMaxLength, textPinHint, s.submitPin)

	s.unlockButton = entities.NewTextButton(s.entityManager, entities.TextButtonSpec{
		Label:     textUnlock,
		Font:      s.rm.MustFont(game.FontBold, config.ButtonFontSize),
		Icon:      components.IconLock,
		Fill:      config.MustHexColor(s.theme.PrimaryColor),
		TextColor: colorWhite,
		OnClick:   s.submitCurrentPin,
	})

	if s.mobile {
		s.keypad = entities.NewPinKeypadEntity(s.entityManager, s.pinInput)
	}
}

// createRevealUI 创建揭晓后的控件（音乐开关）
func (s *RevealScene) createRevealUI() {
	s.toggleButton = entities.NewIconButton(s.entityManager, entities.IconButtonSpec{
		Icon:      components.IconPlay,
		Fill:      colorGlass,
		IconColor: colorWhite,
		OnClick:   s.audio.Toggle,
	})
	s.revealStartedAt = s.scheduler.Now()
}

// destroyLockUI 解锁后移除锁屏控件
func (s *RevealScene) destroyLockUI() {
	for _, id := range []ecs.EntityID{s.pinInput, s.unlockButton, s.keypad} {
		if id != 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
	s.pinInput, s.unlockButton, s.keypad = 0, 0, 0
}

// submitCurrentPin 解锁按钮：提交输入框当前内容
func (s *RevealScene) submitCurrentPin() {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.pinInput)
	if !ok {
		return
	}
	systems.SubmitInput(input)
}

// submitPin 输入框提交回调
func (s *RevealScene) submitPin(code string) {
	if !s.session.SubmitPin(code) {
		if input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.pinInput); ok {
			systems.ClearInput(input)
		}
		return
	}

	log.Printf("[RevealScene] Unlocked")
	s.destroyLockUI()
	s.createRevealUI()
	s.relayout()
}

// Update 读取输入并推进场景
func (s *RevealScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	if pressed, x, y := utils.IsPointerJustPressed(); pressed {
		s.HandlePointer(float64(x), float64(y))
	}
	px, py := utils.GetPointerPosition()
	s.buttonSystem.UpdateHover(float64(px), float64(py), utils.IsPointerPressed())

	s.step(deltaTime)
}

// step 推进时钟、系统与实体清理（不读取输入）
func (s *RevealScene) step(deltaTime float64) {
	// 第一帧视为视图就绪
	if !s.mounted {
		s.mounted = true
		s.session.Mount()
	}

	s.scheduler.Update(deltaTime)
	if u, ok := s.track.(trackUpdater); ok {
		u.Update(deltaTime)
	}

	s.textInputSystem.Update(deltaTime)
	s.keypadSystem.Update(deltaTime)
	s.toastSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.confettiSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
	s.syncToggleIcon()
}

// syncToggleIcon 音乐开关图标跟随 isPlaying
func (s *RevealScene) syncToggleIcon() {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.toggleButton)
	if !ok {
		return
	}
	if s.audio.IsPlaying() {
		button.Icon = components.IconPause
	} else {
		button.Icon = components.IconPlay
	}
}

// HandlePointer 处理一次指针按下
func (s *RevealScene) HandlePointer(x, y float64) {
	if s.closed {
		return
	}

	// 1. 屏幕键盘（移动端）
	if s.keypadSystem.HandlePress(x, y) {
		s.gestures.Dispatch()
		return
	}

	// 2. 按钮；阻止传播的按钮（音乐开关、解锁）不触发全局手势
	hit, hitButton := s.buttonSystem.HandlePress(x, y)
	if hitButton && hit.StopPropagation {
		return
	}

	// 3. 全局"下一次用户手势"监听（音频重试）
	s.gestures.Dispatch()
	if hitButton {
		return
	}

	// 4. 输入框获得焦点
	if s.pinInput != 0 && s.layout.input.Contains(x, y) {
		s.textInputSystem.Focus(s.pinInput)
		if s.mobile {
			s.keypadSystem.Show(s.pinInput)
		}
		return
	}

	// 5. 锁定时不生成花朵
	if s.session.IsLocked() {
		return
	}

	// 6. 花园（内容卡片等排除区域内不生成）
	s.garden.HandleClick(x, y)
}

// IsLocked 是否仍在锁屏
func (s *RevealScene) IsLocked() bool {
	return s.session.IsLocked()
}

// Audio 返回音频控制器
func (s *RevealScene) Audio() *game.AudioController {
	return s.audio
}

// Garden 返回花园管理器
func (s *RevealScene) Garden() *game.GardenManager {
	return s.garden
}

// Draw 绘制场景
func (s *RevealScene) Draw(screen *ebiten.Image) {
	s.backgroundSystem.Draw(screen)
	s.flowerRenderSystem.Draw(screen, s.viewport.height)

	if s.session.IsLocked() {
		s.drawLockCard(screen)
		s.textInputRenderSystem.Draw(screen)
	} else {
		s.drawRevealCard(screen)
	}

	s.buttonRenderSystem.Draw(screen)
	s.confettiSystem.Draw(screen)
	s.keypadRenderSystem.Draw(screen)
	s.toastSystem.Draw(screen, s.viewport.width, s.viewport.height)
}

// Close 场景销毁：取消延迟任务与手势监听，释放音频
func (s *RevealScene) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.session.Unmount()
	s.gestures.Clear()
	s.scheduler.CancelAll()
	if c, ok := s.track.(trackCloser); ok {
		c.Close()
	}
	log.Printf("[RevealScene] Closed")
}

var (
	_ game.Scene         = (*RevealScene)(nil)
	_ game.ViewportAware = (*RevealScene)(nil)
	_ game.Closable      = (*RevealScene)(nil)
)
