package components

// Gesture 手势姿态标签
//
// 每个路径点可以携带一个手势标签，渲染层根据它选择对应的手型素材。
// 空值等价于 GesturePointer（UI 中显示为"指针"）。
type Gesture string

const (
	// GesturePointer 默认指针姿态（空闲）
	GesturePointer Gesture = "pointer"

	// GesturePressed 按下姿态（点击中）
	GesturePressed Gesture = "pressed"

	// GestureDragging 拖拽姿态
	GestureDragging Gesture = "dragging"

	// GestureScrolling 滚动姿态
	GestureScrolling Gesture = "scrolling"

	// GestureOpen 张开手掌姿态
	GestureOpen Gesture = "open"
)

// Normalize 返回规范化后的手势值，空手势归一为 GesturePointer
func (g Gesture) Normalize() Gesture {
	if g == "" {
		return GesturePointer
	}
	return g
}

// Waypoint 运动路径上的一个控制点（纯数据，不可变值记录）
//
// 可选字段使用指针类型表示"未指定"：
//   - Time 为 nil 时，该点的时间由上一个点累加默认行程时长得到
//   - Rotation 为 nil 时，该点的旋转由运动物理推导，而非显式插值
//
// 引擎只读取路径点数组，绝不修改它。
type Waypoint struct {
	// X, Y 场景本地坐标（单位：输出画布像素）
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Time 绝对时间索引（帧）。nil 表示未显式指定
	Time *int `yaml:"time,omitempty"`

	// Gesture 手势标签，空值默认为 GesturePointer
	Gesture Gesture `yaml:"gesture,omitempty"`

	// Scale 缩放倍率，0 表示未指定（按 1.0 处理）
	Scale float64 `yaml:"scale,omitempty"`

	// Rotation 显式旋转角度（度）。nil 表示由速度推导
	Rotation *float64 `yaml:"rotation,omitempty"`

	// HoldDuration 到达该点后停留的帧数，之后才开始向下一点移动
	HoldDuration int `yaml:"holdDuration,omitempty"`
}

// EffectiveScale 返回该点的有效缩放倍率（未指定时为 1.0）
func (w Waypoint) EffectiveScale() float64 {
	if w.Scale == 0 {
		return 1.0
	}
	return w.Scale
}

// CloneWaypoints 深拷贝路径点数组
// 路径点本身是值记录，拷贝切片即可获得独立副本
func CloneWaypoints(waypoints []Waypoint) []Waypoint {
	if waypoints == nil {
		return nil
	}
	cloned := make([]Waypoint, len(waypoints))
	copy(cloned, waypoints)
	return cloned
}

// WaypointsEqual 判断两条路径是否逐点相等
// 用于主图层同步不变量的校验
func WaypointsEqual(a, b []Waypoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !waypointEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func waypointEqual(a, b Waypoint) bool {
	if a.X != b.X || a.Y != b.Y || a.Gesture != b.Gesture ||
		a.Scale != b.Scale || a.HoldDuration != b.HoldDuration {
		return false
	}
	if (a.Time == nil) != (b.Time == nil) {
		return false
	}
	if a.Time != nil && *a.Time != *b.Time {
		return false
	}
	if (a.Rotation == nil) != (b.Rotation == nil) {
		return false
	}
	if a.Rotation != nil && *a.Rotation != *b.Rotation {
		return false
	}
	return true
}
