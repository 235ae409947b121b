package components

import (
	"testing"
)

// TestGestureNormalize 测试空手势归一
func TestGestureNormalize(t *testing.T) {
	if got := Gesture("").Normalize(); got != GesturePointer {
		t.Errorf("空手势: got %s, want pointer", got)
	}
	if got := GestureDragging.Normalize(); got != GestureDragging {
		t.Errorf("非空手势不应被改写: got %s", got)
	}
}

// TestEffectiveScale 测试缩放的未指定语义
func TestEffectiveScale(t *testing.T) {
	if got := (Waypoint{}).EffectiveScale(); got != 1.0 {
		t.Errorf("未指定缩放: got %v, want 1.0", got)
	}
	if got := (Waypoint{Scale: 1.5}).EffectiveScale(); got != 1.5 {
		t.Errorf("显式缩放: got %v, want 1.5", got)
	}
}

// TestWaypointsEqual 测试路径逐点比较
func TestWaypointsEqual(t *testing.T) {
	t100 := 100
	t200 := 200
	r15 := 15.0

	base := []Waypoint{
		{X: 1, Y: 2, Time: &t100, Gesture: GesturePressed, Rotation: &r15},
	}

	tests := []struct {
		name string
		b    []Waypoint
		want bool
	}{
		{"相同内容", []Waypoint{{X: 1, Y: 2, Time: &t100, Gesture: GesturePressed, Rotation: &r15}}, true},
		{"长度不同", nil, false},
		{"坐标不同", []Waypoint{{X: 9, Y: 2, Time: &t100, Gesture: GesturePressed, Rotation: &r15}}, false},
		{"时间值不同", []Waypoint{{X: 1, Y: 2, Time: &t200, Gesture: GesturePressed, Rotation: &r15}}, false},
		{"时间缺失", []Waypoint{{X: 1, Y: 2, Gesture: GesturePressed, Rotation: &r15}}, false},
		{"旋转缺失", []Waypoint{{X: 1, Y: 2, Time: &t100, Gesture: GesturePressed}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WaypointsEqual(base, tt.b); got != tt.want {
				t.Errorf("WaypointsEqual() = %v, want %v", got, tt.want)
			}
		})
	}

	// 指针指向不同地址但值相等时仍相等
	t100b := 100
	other := []Waypoint{{X: 1, Y: 2, Time: &t100b, Gesture: GesturePressed, Rotation: &r15}}
	if !WaypointsEqual(base, other) {
		t.Error("按值比较的指针字段应相等")
	}
}

// TestCloneWaypointsIndependence 测试拷贝独立性
func TestCloneWaypointsIndependence(t *testing.T) {
	original := []Waypoint{{X: 1, Y: 1}, {X: 2, Y: 2}}
	cloned := CloneWaypoints(original)
	cloned[0].X = 99

	if original[0].X != 1 {
		t.Error("修改拷贝影响了原数组")
	}
	if CloneWaypoints(nil) != nil {
		t.Error("nil 输入应返回 nil")
	}
}

// TestLayerClone 测试图层深拷贝
func TestLayerClone(t *testing.T) {
	layer := NewHandLayer("h-1", "intro", "主路径", 0, HandLayerData{
		Waypoints: []Waypoint{{X: 1, Y: 1}},
		Gesture:   GestureDragging,
	})

	cloned := layer.Clone()
	cloned.Hand.Waypoints[0].X = 99
	cloned.Hand.Gesture = GestureOpen

	if layer.Hand.Waypoints[0].X != 1 {
		t.Error("拷贝的路径点与原图层共享底层数组")
	}
	if layer.Hand.Gesture != GestureDragging {
		t.Error("拷贝的数据结构与原图层共享指针")
	}
}

// TestWithHandWaypoints 测试路径替换不触碰原图层
func TestWithHandWaypoints(t *testing.T) {
	layer := NewHandLayer("h-1", "intro", "主路径", 0, HandLayerData{
		Waypoints: []Waypoint{{X: 1, Y: 1}},
	})

	replaced := layer.WithHandWaypoints([]Waypoint{{X: 5, Y: 5}, {X: 6, Y: 6}})
	if len(layer.Hand.Waypoints) != 1 {
		t.Error("原图层被修改")
	}
	if len(replaced.Hand.Waypoints) != 2 {
		t.Errorf("替换后路径点: got %d, want 2", len(replaced.Hand.Waypoints))
	}

	zoom := NewZoomLayer("z-1", "intro", "镜头", 1, ZoomLayerData{})
	if got := zoom.WithHandWaypoints([]Waypoint{{X: 1}}); got.Zoom == nil || got.Hand != nil {
		t.Error("非手势图层应原样返回")
	}
}

// TestPatchFields 测试公共字段补丁
func TestPatchFields(t *testing.T) {
	layer := NewAudioLayer("a-1", "intro", "旁白", 3, AudioLayerData{File: "v.mp3"})
	name := "解说"
	locked := true

	patched := layer.PatchFields(LayerPatch{Name: &name, Locked: &locked})
	if patched.Name != "解说" || !patched.Locked {
		t.Errorf("补丁未生效: name=%q locked=%v", patched.Name, patched.Locked)
	}
	if patched.Order != 3 || !patched.Visible {
		t.Error("未补丁的字段被改动")
	}
	if layer.Name != "旁白" || layer.Locked {
		t.Error("原图层被修改")
	}
}

// TestMergePhysicsConfig 测试物理配置的部分覆盖合并
func TestMergePhysicsConfig(t *testing.T) {
	t.Run("nil 覆盖返回默认值", func(t *testing.T) {
		cfg := MergePhysicsConfig(nil)
		want := DefaultPhysicsConfig()
		if cfg != want {
			t.Errorf("got %+v, want %+v", cfg, want)
		}
	})

	t.Run("部分覆盖只改指定字段", func(t *testing.T) {
		maxRot := 30.0
		shadow := false
		cfg := MergePhysicsConfig(&PhysicsOverrides{
			MaxRotation:   &maxRot,
			ShadowEnabled: &shadow,
		})
		if cfg.MaxRotation != 30.0 {
			t.Errorf("MaxRotation: got %v, want 30", cfg.MaxRotation)
		}
		if cfg.ShadowEnabled {
			t.Error("ShadowEnabled 应被覆盖为 false")
		}
		if cfg.Smoothing != 0.15 || cfg.RotationFactorX != 2.0 {
			t.Error("未覆盖的字段应保持默认值")
		}
	})

	t.Run("零值覆盖有效", func(t *testing.T) {
		amp := 0.0
		cfg := MergePhysicsConfig(&PhysicsOverrides{FloatAmplitude: &amp})
		if cfg.FloatAmplitude != 0 {
			t.Errorf("FloatAmplitude: got %v, want 0（关闭悬浮）", cfg.FloatAmplitude)
		}
	})
}

// TestDefaultPhysicsConfig 测试默认物理参数
func TestDefaultPhysicsConfig(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	if cfg.Smoothing != 0.15 {
		t.Errorf("Smoothing: got %v, want 0.15", cfg.Smoothing)
	}
	if cfg.MaxRotation != 15.0 {
		t.Errorf("MaxRotation: got %v, want 15", cfg.MaxRotation)
	}
	if !cfg.ShadowEnabled {
		t.Error("ShadowEnabled: got false, want true")
	}
	if cfg.FloatSpeed != 0.05 {
		t.Errorf("FloatSpeed: got %v, want 0.05", cfg.FloatSpeed)
	}
}
