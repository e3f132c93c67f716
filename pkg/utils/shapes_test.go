package utils

import (
	"image/color"
	"math"
	"testing"
)

func TestEllipsePointsAxisAligned(t *testing.T) {
	pts := EllipsePoints(10, 20, 4, 8, 0, 4)
	want := []Point{{14, 20}, {10, 28}, {6, 20}, {10, 12}}

	for i, p := range pts {
		if !almostEqual(p.X, want[i].X) || !almostEqual(p.Y, want[i].Y) {
			t.Errorf("point %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestEllipsePointsRotated(t *testing.T) {
	// 旋转 90° 后长轴从 y 方向转到 x 方向
	pts := EllipsePoints(0, 0, 2, 5, math.Pi/2, 4)
	if !almostEqual(math.Abs(pts[1].X), 5) || !almostEqual(pts[1].Y, 0) {
		t.Errorf("rotated major axis point = %+v, want (±5, 0)", pts[1])
	}
}

func TestRoundedRectPointsBounds(t *testing.T) {
	pts := RoundedRectPoints(10, 10, 100, 40, 50)
	for _, p := range pts {
		if p.X < 10-epsilon || p.X > 110+epsilon || p.Y < 10-epsilon || p.Y > 50+epsilon {
			t.Fatalf("point %+v outside rect", p)
		}
	}

	square := RoundedRectPoints(0, 0, 5, 5, 0)
	if len(square) != 4 {
		t.Errorf("zero radius should produce a plain rectangle, got %d points", len(square))
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := WithAlpha(c, 1); got != c {
		t.Errorf("WithAlpha(1) = %v, want %v", got, c)
	}
	if got := WithAlpha(c, 0); got != (color.RGBA{}) {
		t.Errorf("WithAlpha(0) = %v, want transparent", got)
	}
	half := WithAlpha(c, 0.5)
	if half.A != 127 || half.R != 100 {
		t.Errorf("WithAlpha(0.5) = %v", half)
	}
}
