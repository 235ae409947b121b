package systems

import (
	"sort"

	"github.com/decker502/handmotion/pkg/components"
	"github.com/decker502/handmotion/pkg/utils"
)

// CollectZoomKeyframes 汇集多个可见镜头图层的关键帧并按时间排序
//
// 使用稳定排序，同时间的关键帧保持原始顺序。非镜头图层、
// 不可见图层被跳过。返回的是新数组，输入图层不被修改。
func CollectZoomKeyframes(layers []components.Layer) []components.ZoomKeyframe {
	var pooled []components.ZoomKeyframe
	for _, layer := range layers {
		if layer.Type != components.LayerZoom || !layer.Visible || layer.Zoom == nil {
			continue
		}
		pooled = append(pooled, layer.Zoom.Keyframes...)
	}
	sort.SliceStable(pooled, func(i, j int) bool {
		return pooled[i].Time < pooled[j].Time
	})
	return pooled
}

// EvaluateZoom 在任意时间坐标上求当前镜头变换
//
// 关键帧集合为空时返回 nil，调用方应视为"无镜头变换"而非错误。
// 首帧之前、末帧之后分别保持首/末帧的值（不外推）。两帧之间：
// t = (query - a.Time) / (b.Time - a.Time)（时间相等时取 0），
// 对 t 应用第二帧选择的缓动，再分别对 zoom/focusX/focusY 线性插值。
//
// 同一时间值上有多个关键帧时取最后一个（后写胜出）。
func EvaluateZoom(queryTime float64, keyframes []components.ZoomKeyframe) *components.ZoomResult {
	if len(keyframes) == 0 {
		return nil
	}

	first := keyframes[0]
	if queryTime <= first.Time {
		// 首帧时间上的重复关键帧同样按后写胜出解析
		i := 0
		for i+1 < len(keyframes) && keyframes[i+1].Time == first.Time {
			i++
		}
		kf := keyframes[i]
		return &components.ZoomResult{Zoom: kf.ZoomLevel, FocusX: kf.FocusX, FocusY: kf.FocusY}
	}
	last := keyframes[len(keyframes)-1]
	if queryTime >= last.Time {
		return &components.ZoomResult{Zoom: last.ZoomLevel, FocusX: last.FocusX, FocusY: last.FocusY}
	}

	// 取满足 Time <= queryTime 的最后一个关键帧作为区间起点，
	// 使同一时间上的重复关键帧按"后写胜出"解析
	bracket := 0
	for i := range keyframes {
		if keyframes[i].Time <= queryTime {
			bracket = i
		} else {
			break
		}
	}
	from := keyframes[bracket]
	to := keyframes[bracket+1]

	t := 0.0
	if span := to.Time - from.Time; span > 0 {
		t = utils.Clamp01((queryTime - from.Time) / span)
	}
	t = applyZoomEasing(to.Easing, t)

	return &components.ZoomResult{
		Zoom:   utils.Lerp(from.ZoomLevel, to.ZoomLevel, t),
		FocusX: utils.Lerp(from.FocusX, to.FocusX, t),
		FocusY: utils.Lerp(from.FocusY, to.FocusY, t),
	}
}

// applyZoomEasing 应用关键帧选择的缓动（标准二次公式）
// 未知或空的缓动值按线性处理
func applyZoomEasing(easing components.ZoomEasing, t float64) float64 {
	switch easing {
	case components.ZoomEasingIn:
		return utils.EaseInQuad(t)
	case components.ZoomEasingOut:
		return utils.EaseOutQuad(t)
	case components.ZoomEasingInOut:
		return utils.EaseInOutQuad(t)
	default:
		return utils.EaseLinear(t)
	}
}
