package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动场景
// 同一时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager 创建没有活动场景的管理器，使用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
// 旧场景实现 Closable 时先关闭；新场景实现 ViewportAware 时立即收到当前视口尺寸
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		if c, ok := sm.currentScene.(Closable); ok {
			c.Close()
		}
	}
	sm.currentScene = scene
	if scene == nil {
		return
	}
	if v, ok := scene.(ViewportAware); ok && sm.width > 0 && sm.height > 0 {
		v.OnViewportResize(sm.width, sm.height)
	}
	log.Printf("[SceneManager] Switched to %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录视口尺寸，尺寸变化时通知当前场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if v, ok := sm.currentScene.(ViewportAware); ok {
		v.OnViewportResize(width, height)
	}
}

// Size 返回最近一次记录的视口尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// Update 更新当前场景，没有活动场景时不做任何事
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close 关闭当前场景（程序退出时调用）
func (sm *SceneManager) Close() {
	if c, ok := sm.currentScene.(Closable); ok {
		c.Close()
	}
	sm.currentScene = nil
}
