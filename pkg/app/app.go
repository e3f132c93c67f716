// Package app 提供揭晓应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/embedded"
	"github.com/decker502/wishbloom/pkg/game"
	"github.com/decker502/wishbloom/pkg/scenes"
	"github.com/decker502/wishbloom/pkg/types"
	"github.com/decker502/wishbloom/pkg/utils"
)

// 配置文件路径（embedded data/）
const (
	themesConfigPath = "data/themes.yaml"
	revealConfigPath = "data/reveal.yaml"
)

// sampleRate 音频上下文采样率
const sampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Wish 要揭晓的心愿
	Wish types.Wish
}

// App 是揭晓应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	theme           config.ThemeDefinition
	wish            types.Wish
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化揭晓应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置文件缺失或无效时使用内置默认值，不会返回错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("embedded resources: %w", embedded.ErrNotInitialized)
	}

	registry := loadThemeRegistry()
	revealCfg := loadRevealConfig()
	theme := registry.Resolve(cfg.Wish.Theme)
	log.Printf("[App] Wish %q resolved to theme %s", cfg.Wish.ID, theme.Key)

	// 本地偏好（音量、全屏）
	settingsManager := game.NewSettingsManager(game.OpenSettingsStorage(game.SettingsAppName))
	settings := settingsManager.GetSettings()
	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	resourceManager := game.NewResourceManager(audio.NewContext(sampleRate))

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewRevealScene(scenes.RevealOptions{
		Wish:      cfg.Wish,
		Theme:     theme,
		Config:    revealCfg,
		Resources: resourceManager,
		Volume:    settings.MusicVolume,
		Mobile:    utils.IsMobile(),
	}))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		theme:           theme,
		wish:            cfg.Wish,
		verbose:         cfg.Verbose,
	}, nil
}

// loadThemeRegistry 加载主题配置，失败时回落到内置表
func loadThemeRegistry() *config.ThemeRegistry {
	data, err := embedded.ReadFile(themesConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in themes)", err)
		return config.DefaultThemeRegistry()
	}
	registry, err := config.LoadThemeRegistry(data)
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in themes)", err)
		return config.DefaultThemeRegistry()
	}
	log.Printf("[Config] Loaded %s", themesConfigPath)
	return registry
}

// loadRevealConfig 加载揭晓参数，失败时使用默认值
func loadRevealConfig() config.RevealConfig {
	data, err := embedded.ReadFile(revealConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return config.DefaultRevealConfig()
	}
	cfg, err := config.LoadRevealConfig(data)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return config.DefaultRevealConfig()
	}
	log.Printf("[Config] Loaded %s", revealConfigPath)
	return cfg
}

// WindowTitle 窗口标题：主题 emoji 加收件人
func (a *App) WindowTitle() string {
	return WindowTitle(a.theme, a.wish)
}

// WindowTitle 根据主题和心愿生成窗口标题
func WindowTitle(theme config.ThemeDefinition, wish types.Wish) string {
	if wish.Name == "" {
		return theme.Emoji + " Wishbloom"
	}
	return fmt.Sprintf("%s A wish for %s", theme.Emoji, wish.Name)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏，选择会被保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并持久化
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸等于窗口外部尺寸
// 揭晓场景按视口宽度在窄屏/宽屏布局之间切换，因此不做固定分辨率缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 关闭当前场景（取消延迟任务、释放音频）并保存设置
func (a *App) Close() {
	a.sceneManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
