package utils

import (
	"math"
	"testing"
)

// TestEasingBoundaries 测试所有缓动函数的边界值 f(0)=0, f(1)=1
func TestEasingBoundaries(t *testing.T) {
	easings := map[string]func(float64) float64{
		"EaseLinear":     EaseLinear,
		"EaseInQuad":     EaseInQuad,
		"EaseOutQuad":    EaseOutQuad,
		"EaseInOutQuad":  EaseInOutQuad,
		"EaseInCubic":    EaseInCubic,
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
		"SmoothBezier":   SmoothBezier,
	}

	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 0.001 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 0.001 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		})
	}
}

// TestEaseOutCubicMidpoint 测试三次缓出的中点值
func TestEaseOutCubicMidpoint(t *testing.T) {
	// 1 - (1-0.5)³ = 0.875
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 0.001 {
		t.Errorf("EaseOutCubic(0.5) = %v, 期望 0.875", got)
	}
}

// TestSmoothBezierMonotonic 测试固定贝塞尔曲线单调不减
func TestSmoothBezierMonotonic(t *testing.T) {
	previous := 0.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		current := SmoothBezier(p)
		if current < previous-0.001 {
			t.Fatalf("SmoothBezier 在 %v 处不单调: %v < %v", p, current, previous)
		}
		previous = current
	}
}

// TestSmoothBezierAccelerateDecelerate 测试加速-减速形态
func TestSmoothBezierAccelerateDecelerate(t *testing.T) {
	// CSS "ease" 曲线中段位置领先线性（前段加速后整体领先）
	if mid := SmoothBezier(0.5); mid <= 0.5 {
		t.Errorf("SmoothBezier(0.5) = %v, 期望大于 0.5", mid)
	}
	// 起步慢于 EaseOutQuad 这类纯缓出
	if start := SmoothBezier(0.1); start >= EaseOutQuad(0.1) {
		t.Errorf("SmoothBezier(0.1) = %v, 期望小于 EaseOutQuad(0.1) = %v", start, EaseOutQuad(0.1))
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 10, 20, 0, 10},
		{"终点", 10, 20, 1, 20},
		{"中点", 10, 20, 0.5, 15},
		{"负方向", 20, 10, 0.5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}

// TestClamp01 测试范围钳制
func TestClamp01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-1, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{2.5, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}
