package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEaseEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic":  EaseOutCubic,
		"EaseInOutSine": EaseInOutSine,
		"Spring(0.5)":   func(t float64) float64 { return EaseSpring(t, 0.5) },
		"Spring(0)":     func(t float64) float64 { return EaseSpring(t, 0) },
	}

	for name, fn := range funcs {
		if got := fn(0); !almostEqual(got, 0) {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); !almostEqual(got, 1) {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEaseSpringOvershoots(t *testing.T) {
	overshoot := false
	for i := 1; i < 100; i++ {
		if EaseSpring(float64(i)/100, 0.5) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("EaseSpring with bounce 0.5 should overshoot 1 before settling")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		elapsed, delay, duration, want float64
	}{
		{0, 0.5, 0.5, 0},
		{0.5, 0.5, 0.5, 0},
		{0.75, 0.5, 0.5, 0.5},
		{2, 0.5, 0.5, 1},
		{1, 1, 0, 1},
		{0.9, 1, 0, 0},
	}

	for _, tt := range tests {
		if got := Progress(tt.elapsed, tt.delay, tt.duration); !almostEqual(got, tt.want) {
			t.Errorf("Progress(%v, %v, %v) = %v, want %v", tt.elapsed, tt.delay, tt.duration, got, tt.want)
		}
	}
}

func TestKeyframes(t *testing.T) {
	values := []float64{0, 1.5, -1.5, 0}

	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{1.0 / 3, 1.5},
		{2.0 / 3, -1.5},
		{1, 0},
		{-1, 0},
		{2, 0},
	}

	for _, tt := range tests {
		if got := Keyframes(values, tt.t); !almostEqual(got, tt.want) {
			t.Errorf("Keyframes(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}

	// 段中点位于两关键帧之间
	mid := Keyframes(values, 0.5)
	if mid >= 1.5 || mid <= -1.5 {
		t.Errorf("Keyframes(0.5) = %v, want value within (-1.5, 1.5)", mid)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); !almostEqual(got, 12.5) {
		t.Errorf("Lerp(10, 20, 0.25) = %v, want 12.5", got)
	}
}
