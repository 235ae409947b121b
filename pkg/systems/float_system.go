package systems

import (
	"math"

	"github.com/decker502/handmotion/pkg/components"
)

// FloatState 悬浮效果在某一时刻的求值结果
//
// OffsetY 叠加到运动引擎输出的 Y 上；ScaleFactor 乘到投影等
// 视觉元素的缩放上。
type FloatState struct {
	OffsetY     float64
	ScaleFactor float64
}

// EvaluateFloat 求空闲"悬浮"效果
//
// 纯时间与配置的函数。关闭效果的方式是把 FloatAmplitude 置 0，
// 而不是分支跳过，保证函数对所有输入都是全函数。
func EvaluateFloat(queryTime float64, cfg components.PhysicsConfig) FloatState {
	phase := math.Sin(queryTime * cfg.FloatSpeed)
	return FloatState{
		OffsetY:     phase * cfg.FloatAmplitude,
		ScaleFactor: 1 + phase*0.1,
	}
}
