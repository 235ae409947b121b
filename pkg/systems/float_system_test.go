package systems

import (
	"math"
	"testing"

	"github.com/decker502/handmotion/pkg/components"
)

// TestEvaluateFloat 测试悬浮效果的正弦偏移与伴随缩放
func TestEvaluateFloat(t *testing.T) {
	cfg := components.DefaultPhysicsConfig()

	t.Run("t=0 为中性相位", func(t *testing.T) {
		state := EvaluateFloat(0, cfg)
		if state.OffsetY != 0 {
			t.Errorf("OffsetY: got %v, want 0", state.OffsetY)
		}
		if state.ScaleFactor != 1 {
			t.Errorf("ScaleFactor: got %v, want 1", state.ScaleFactor)
		}
	})

	t.Run("峰值相位", func(t *testing.T) {
		// sin(t * FloatSpeed) = 1 时
		peakTime := (math.Pi / 2) / cfg.FloatSpeed
		state := EvaluateFloat(peakTime, cfg)
		if math.Abs(state.OffsetY-cfg.FloatAmplitude) > 0.001 {
			t.Errorf("OffsetY: got %v, want %v", state.OffsetY, cfg.FloatAmplitude)
		}
		if math.Abs(state.ScaleFactor-1.1) > 0.001 {
			t.Errorf("ScaleFactor: got %v, want 1.1", state.ScaleFactor)
		}
	})

	t.Run("振幅为零时偏移恒为零", func(t *testing.T) {
		cfg := cfg
		cfg.FloatAmplitude = 0
		for _, queryTime := range []float64{0, 13, 777} {
			if state := EvaluateFloat(queryTime, cfg); state.OffsetY != 0 {
				t.Errorf("t=%v OffsetY: got %v, want 0", queryTime, state.OffsetY)
			}
		}
	})
}
