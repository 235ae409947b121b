// Package systems 提供无状态的运动求值器
//
// 该包的函数都是 (时间, 数据, 配置) 的纯函数：每帧可以被渲染线程
// 内联调用任意多次，不产生漂移，不持有任何全局状态。
package systems

import (
	"math"

	"github.com/decker502/handmotion/pkg/components"
	"github.com/decker502/handmotion/pkg/utils"
)

// DefaultTravelDuration 相邻路径点之间的默认行程时长（帧）
// 仅当下一个点未显式指定时间时使用
const DefaultTravelDuration = 100.0

// 引擎内部的几个手感常数。它们来自视觉调参，修改会破坏既有
// 动画的观感，相关测试按这些值锁定行为。
const (
	// gestureSwitchPoint 手势在段内切换的进度位置
	gestureSwitchPoint = 0.3

	// rotationSettleStart 旋转开始向中立位收敛的进度位置
	rotationSettleStart = 0.8

	// movingLow, movingHigh 段内视为"运动中"的进度窗口
	movingLow  = 0.05
	movingHigh = 0.95

	// scalePushStart, scalePushEnd 缩放推挤效果的进度窗口
	scalePushStart = 0.2
	scalePushEnd   = 0.8

	// scalePushMagnitude 缩放推挤幅度（相对于基础缩放）
	scalePushMagnitude = 0.02
)

// TimelineEntry 时间轴条目：一个路径点及其到达/离开时刻
//
// Arrive 是指针到达该点的时刻；Depart = Arrive + HoldDuration，
// 是向下一个点出发的时刻。停留期间指针保持该点的静态状态。
type TimelineEntry struct {
	Waypoint components.Waypoint
	Arrive   float64
	Depart   float64
}

// BuildTimeline 把稀疏路径点展开为完整时间轴
//
// 规则：
//  1. 显式 Time 使运行时钟跳转到该值；否则沿用上一点累加的时钟
//  2. 放置一个点之后，HoldDuration 使时钟前进相应帧数
//  3. 向下一点的行程时长为 DefaultTravelDuration，但若下一点
//     显式指定了时间，则显式值优先，不再叠加默认行程
func BuildTimeline(waypoints []components.Waypoint) []TimelineEntry {
	entries := make([]TimelineEntry, len(waypoints))
	clock := 0.0
	for i, wp := range waypoints {
		if wp.Time != nil {
			clock = float64(*wp.Time)
		}
		arrive := clock
		depart := arrive + float64(wp.HoldDuration)
		entries[i] = TimelineEntry{Waypoint: wp, Arrive: arrive, Depart: depart}

		clock = depart
		if i < len(waypoints)-1 && waypoints[i+1].Time == nil {
			clock += DefaultTravelDuration
		}
	}
	return entries
}

// EvaluateMotion 在任意时间坐标上求指针的运动状态
//
// 这是引擎的唯一入口：给定查询时间、路径点数组、路径起始时间和
// 物理配置，返回该时刻的 MotionState。函数是纯的、无副作用的，
// 输入的路径点数组绝不被修改，且除返回值外不产生堆分配——渲染
// 线程每帧采样它，时间轴条目在遍历中按需推算而不整表展开
// （整表展开见 BuildTimeline，供离线工具使用）。
//
// 边界策略：
//   - 空路径返回中性默认状态
//   - 单点路径对所有查询时间返回该点的静态状态
//   - 相对时间早于时间轴首条目时钳制到首条目，晚于末条目时钳制到末条目
func EvaluateMotion(
	queryTime float64,
	waypoints []components.Waypoint,
	originTime float64,
	cfg components.PhysicsConfig,
) components.MotionState {
	if len(waypoints) == 0 {
		return components.NeutralMotionState()
	}
	if len(waypoints) == 1 {
		return staticState(waypoints[0])
	}

	relativeTime := queryTime - originTime

	// 沿路径推进时钟（规则与 BuildTimeline 一致），找到包围查询
	// 时间的相邻条目对即停
	clock := 0.0
	var from TimelineEntry
	for i, wp := range waypoints {
		if wp.Time != nil {
			clock = float64(*wp.Time)
		}
		entry := TimelineEntry{Waypoint: wp, Arrive: clock, Depart: clock + float64(wp.HoldDuration)}
		clock = entry.Depart
		if i < len(waypoints)-1 && waypoints[i+1].Time == nil {
			clock += DefaultTravelDuration
		}

		if i == 0 {
			if relativeTime < entry.Arrive {
				return staticState(wp)
			}
			from = entry
			continue
		}
		if relativeTime < entry.Arrive {
			return evaluateSegment(relativeTime, from, entry, cfg)
		}
		from = entry
	}
	// 晚于末条目到达时刻，钳制到末点
	return staticState(from.Waypoint)
}

// evaluateSegment 求单个段内的运动状态
// from.Depart <= relativeTime < to.Arrive 之外的停留阶段也在这里处理
func evaluateSegment(relativeTime float64, from, to TimelineEntry, cfg components.PhysicsConfig) components.MotionState {
	// 停留阶段：尚未出发，保持起点的静态状态
	if relativeTime < from.Depart {
		return staticState(from.Waypoint)
	}

	segmentDuration := to.Arrive - from.Depart
	progress := 1.0
	if segmentDuration > 0 {
		progress = utils.Clamp01((relativeTime - from.Depart) / segmentDuration)
	}
	eased := utils.SmoothBezier(progress)

	deltaX := to.Waypoint.X - from.Waypoint.X
	deltaY := to.Waypoint.Y - from.Waypoint.Y

	state := components.MotionState{
		X:     utils.Lerp(from.Waypoint.X, to.Waypoint.X, eased),
		Y:     utils.Lerp(from.Waypoint.Y, to.Waypoint.Y, eased),
		Scale: segmentScale(from.Waypoint, to.Waypoint, eased, progress),
	}

	// 速度在段中点达到峰值，两端趋近于零，产生进入停留点前的自然减速
	if segmentDuration > 0 {
		velocityBoost := 1 + math.Sin(progress*math.Pi)
		state.VelocityX = deltaX / segmentDuration * velocityBoost
		state.VelocityY = deltaY / segmentDuration * velocityBoost
	}

	state.Rotation = segmentRotation(from.Waypoint, to.Waypoint, progress, state.VelocityX, state.VelocityY, cfg)

	if progress < gestureSwitchPoint {
		state.Gesture = from.Waypoint.Gesture.Normalize()
	} else {
		state.Gesture = to.Waypoint.Gesture.Normalize()
	}

	state.IsMoving = progress > movingLow && progress < movingHigh
	return state
}

// staticState 返回单个路径点的静态状态（速度为零，不处于运动中）
func staticState(wp components.Waypoint) components.MotionState {
	rotation := 0.0
	if wp.Rotation != nil {
		rotation = *wp.Rotation
	}
	return components.MotionState{
		X:        wp.X,
		Y:        wp.Y,
		Rotation: rotation,
		Scale:    wp.EffectiveScale(),
		Gesture:  wp.Gesture.Normalize(),
		IsMoving: false,
	}
}

// segmentScale 段内缩放：基础缩放按贝塞尔插值，
// 行程中段叠加正弦"推挤"微凸起，暗示移动发力
func segmentScale(from, to components.Waypoint, eased, progress float64) float64 {
	base := utils.Lerp(from.EffectiveScale(), to.EffectiveScale(), eased)
	if progress > scalePushStart && progress < scalePushEnd {
		push := math.Sin((progress-scalePushStart)/(scalePushEnd-scalePushStart)*math.Pi) * scalePushMagnitude
		return base * (1 + push)
	}
	return base
}

// segmentRotation 段内旋转
//
// 起点显式指定了旋转时，在两点的显式旋转之间按三次缓出插值
// （与位置使用的贝塞尔曲线无关）。否则由速度推导：水平和垂直
// 速度按配置权重合成，经 tanh 对 MaxRotation 软钳制；进入段尾
// 20% 后向零收敛，使指针在到达前"摆正"。
func segmentRotation(from, to components.Waypoint, progress, velocityX, velocityY float64, cfg components.PhysicsConfig) float64 {
	if from.Rotation != nil {
		startRotation := *from.Rotation
		endRotation := startRotation
		if to.Rotation != nil {
			endRotation = *to.Rotation
		}
		return utils.Lerp(startRotation, endRotation, utils.EaseOutCubic(progress))
	}

	raw := velocityX*cfg.RotationFactorX + velocityY*cfg.RotationFactorY
	rotation := raw
	if cfg.MaxRotation > 0 {
		rotation = cfg.MaxRotation * math.Tanh(raw/cfg.MaxRotation)
	}

	if progress > rotationSettleStart {
		settle := (progress - rotationSettleStart) / (1 - rotationSettleStart)
		rotation = utils.Lerp(rotation, 0, utils.EaseOutQuad(settle))
	}
	return rotation
}
