package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/utils"
)

// backgroundCells 渐变网格密度，Lab 插值需要足够的顶点才平滑
const backgroundCells = 16

// BackgroundRenderSystem 主题背景渐变
// 渐变只在视口尺寸变化时重新绘制到离屏图像
type BackgroundRenderSystem struct {
	stops []string
	cache *ebiten.Image
}

// NewBackgroundRenderSystem 创建背景渲染系统
func NewBackgroundRenderSystem(stops []string) *BackgroundRenderSystem {
	return &BackgroundRenderSystem{stops: stops}
}

// ColorAt 渐变在 t 处的颜色
func (s *BackgroundRenderSystem) ColorAt(t float64) color.RGBA {
	return config.GradientAt(s.stops, t)
}

// Draw 绘制铺满屏幕的渐变
func (s *BackgroundRenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	if s.cache == nil || s.cache.Bounds().Dx() != w || s.cache.Bounds().Dy() != h {
		if s.cache != nil {
			s.cache.Deallocate()
		}
		s.cache = ebiten.NewImage(w, h)
		utils.FillDiagonalGradient(s.cache, utils.Rect{Width: float64(w), Height: float64(h)}, backgroundCells, s.ColorAt)
	}

	screen.DrawImage(s.cache, nil)
}
