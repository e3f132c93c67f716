package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可独立更新和绘制的场景（例如锁屏/揭晓场景）
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// ViewportAware 是一个可选接口，场景实现它以响应窗口尺寸变化
//
// 揭晓场景按视口宽度区分窄屏/宽屏布局，
// 因此逻辑尺寸跟随窗口，而不是固定分辨率。
type ViewportAware interface {
	// OnViewportResize 在逻辑尺寸变化时调用
	OnViewportResize(width, height int)
}

// Closable 是一个可选接口，场景被替换或程序退出时调用 Close()
//
// 实现此接口的场景应在 Close 中：
//   - 注销全局手势监听器
//   - 取消尚未触发的定时任务
//   - 停止音乐播放
type Closable interface {
	Close()
}
