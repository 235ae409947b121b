package components

// ZoomEasing 镜头关键帧的缓动类型
type ZoomEasing string

const (
	// ZoomEasingLinear 线性（匀速）
	ZoomEasingLinear ZoomEasing = "linear"

	// ZoomEasingIn 二次缓入（先慢后快）
	ZoomEasingIn ZoomEasing = "easeIn"

	// ZoomEasingOut 二次缓出（先快后慢）
	ZoomEasingOut ZoomEasing = "easeOut"

	// ZoomEasingInOut 二次缓入缓出
	ZoomEasingInOut ZoomEasing = "easeInOut"
)

// ZoomKeyframe 镜头缩放关键帧
//
// FocusX/FocusY 是归一化焦点坐标（0 ~ 1），ZoomLevel 通常 >= 1。
// 两个相邻关键帧之间的插值使用第二个关键帧选择的缓动。
type ZoomKeyframe struct {
	// Time 时间索引（帧）
	Time float64 `yaml:"time"`

	// ZoomLevel 缩放级别（1.0 = 无缩放）
	ZoomLevel float64 `yaml:"zoomLevel"`

	// FocusX, FocusY 归一化焦点位置（0 ~ 1）
	FocusX float64 `yaml:"focusX"`
	FocusY float64 `yaml:"focusY"`

	// Easing 到达该关键帧所使用的缓动，空值按线性处理
	Easing ZoomEasing `yaml:"easing,omitempty"`
}

// ZoomResult 镜头求值结果
type ZoomResult struct {
	Zoom   float64
	FocusX float64
	FocusY float64
}

// CloneZoomKeyframes 深拷贝关键帧数组
func CloneZoomKeyframes(keyframes []ZoomKeyframe) []ZoomKeyframe {
	if keyframes == nil {
		return nil
	}
	cloned := make([]ZoomKeyframe, len(keyframes))
	copy(cloned, keyframes)
	return cloned
}
