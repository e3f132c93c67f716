package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Point 二维点
type Point struct {
	X, Y float64
}

// 所有填充都使用同一张白色像素图作为纹理源，颜色由顶点指定
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// ellipseSegments 椭圆近似使用的顶点数
const ellipseSegments = 28

// EllipsePoints 返回旋转椭圆的多边形近似
// rotation 为弧度，顺时针（屏幕坐标系 y 向下）
func EllipsePoints(cx, cy, rx, ry, rotation float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	sinR, cosR := math.Sincos(rotation)
	pts := make([]Point, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x := rx * math.Cos(a)
		y := ry * math.Sin(a)
		pts[i] = Point{
			X: cx + x*cosR - y*sinR,
			Y: cy + x*sinR + y*cosR,
		}
	}
	return pts
}

// RoundedRectPoints 返回圆角矩形轮廓（凸多边形）
func RoundedRectPoints(x, y, w, h, r float64) []Point {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	const cornerSteps = 6
	corners := []struct{ cx, cy, start float64 }{
		{x + w - r, y + r, -math.Pi / 2}, // 右上
		{x + w - r, y + h - r, 0},        // 右下
		{x + r, y + h - r, math.Pi / 2},  // 左下
		{x + r, y + r, math.Pi},          // 左上
	}
	pts := make([]Point, 0, 4*(cornerSteps+1))
	for _, c := range corners {
		for i := 0; i <= cornerSteps; i++ {
			a := c.start + (math.Pi/2)*float64(i)/cornerSteps
			pts = append(pts, Point{c.cx + r*math.Cos(a), c.cy + r*math.Sin(a)})
		}
	}
	return pts
}

// FillConvexPolygon 以扇形三角剖分填充凸多边形
func FillConvexPolygon(dst *ebiten.Image, pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := colorToFloats(clr)
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vertices, indices, whiteSubImage, op)
}

// FillEllipse 填充旋转椭圆
func FillEllipse(dst *ebiten.Image, cx, cy, rx, ry, rotation float64, clr color.Color) {
	FillConvexPolygon(dst, EllipsePoints(cx, cy, rx, ry, rotation, ellipseSegments), clr)
}

// FillRoundedRect 填充圆角矩形
func FillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	FillConvexPolygon(dst, RoundedRectPoints(x, y, w, h, r), clr)
}

// FillVerticalGradient 以多段竖直渐变填充矩形
// colorAt 接收 t ∈ [0, 1]（0 为顶部）
func FillVerticalGradient(dst *ebiten.Image, rect Rect, bands int, colorAt func(t float64) color.RGBA) {
	if bands < 1 {
		bands = 1
	}
	vertices := make([]ebiten.Vertex, 0, (bands+1)*2)
	for i := 0; i <= bands; i++ {
		t := float64(i) / float64(bands)
		y := float32(rect.Y + rect.Height*t)
		r, g, b, a := colorToFloats(colorAt(t))
		for _, x := range []float32{float32(rect.X), float32(rect.X + rect.Width)} {
			vertices = append(vertices, ebiten.Vertex{
				DstX: x, DstY: y, SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
	}
	indices := make([]uint16, 0, bands*6)
	for i := 0; i < bands; i++ {
		tl := uint16(i * 2)
		indices = append(indices, tl, tl+1, tl+2, tl+1, tl+3, tl+2)
	}
	dst.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// FillDiagonalGradient 以网格顶点颜色填充从左上角到右下角的渐变
// colorAt 接收 t ∈ [0, 1]（0 为左上角，1 为右下角）
func FillDiagonalGradient(dst *ebiten.Image, rect Rect, cells int, colorAt func(t float64) color.RGBA) {
	if cells < 1 {
		cells = 1
	}
	stride := cells + 1
	vertices := make([]ebiten.Vertex, 0, stride*stride)
	for row := 0; row <= cells; row++ {
		v := float64(row) / float64(cells)
		for col := 0; col <= cells; col++ {
			u := float64(col) / float64(cells)
			r, g, b, a := colorToFloats(colorAt((u + v) / 2))
			vertices = append(vertices, ebiten.Vertex{
				DstX: float32(rect.X + rect.Width*u), DstY: float32(rect.Y + rect.Height*v),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
	}
	indices := make([]uint16, 0, cells*cells*6)
	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			tl := uint16(row*stride + col)
			bl := tl + uint16(stride)
			indices = append(indices, tl, tl+1, bl, tl+1, bl+1, bl)
		}
	}
	dst.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// colorToFloats 转为预乘 alpha 的顶点颜色
func colorToFloats(clr color.Color) (float32, float32, float32, float32) {
	r, g, b, a := clr.RGBA()
	return float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff
}

// WithAlpha 按比例调整颜色透明度（color.RGBA 为预乘 alpha）
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
