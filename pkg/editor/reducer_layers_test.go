package editor

import (
	"testing"

	"github.com/decker502/handmotion/pkg/components"
)

// layeredState 构造带三个图层（手势/缩放/音频）的测试状态
func layeredState(t *testing.T) *State {
	t.Helper()
	s := newTestState("intro")
	s = Reduce(s, Action{Kind: ActionAddLayer, Layer: newLayerPtr(components.NewHandLayer(
		"hand-1", "intro", "主路径", 0,
		components.HandLayerData{Waypoints: []components.Waypoint{{X: 1, Y: 1}}},
	))})
	s = Reduce(s, Action{Kind: ActionAddLayer, Layer: newLayerPtr(components.NewZoomLayer(
		"zoom-1", "intro", "缩放", 1,
		components.ZoomLayerData{Keyframes: []components.ZoomKeyframe{{Time: 0, ZoomLevel: 1}}},
	))})
	s = Reduce(s, Action{Kind: ActionAddLayer, Layer: newLayerPtr(components.NewAudioLayer(
		"audio-1", "intro", "旁白", 2,
		components.AudioLayerData{File: "voice.mp3", Duration: 120, Volume: 0.8},
	))})
	if len(s.SceneLayers["intro"]) != 3 {
		t.Fatalf("准备状态失败: %d 个图层", len(s.SceneLayers["intro"]))
	}
	return s
}

func newLayerPtr(l components.Layer) *components.Layer { return &l }

// TestAddLayer 测试图层追加与 ID 分配
func TestAddLayer(t *testing.T) {
	s := newTestState("intro")

	t.Run("缺失载荷为 no-op", func(t *testing.T) {
		if next := Reduce(s, Action{Kind: ActionAddLayer}); next != s {
			t.Error("缺失载荷应为 no-op")
		}
	})

	t.Run("空 ID 由生成器分配", func(t *testing.T) {
		layer := components.NewZoomLayer("", "intro", "缩放", 0, components.ZoomLayerData{})
		next := Reduce(s, Action{Kind: ActionAddLayer, Layer: &layer})
		got := next.SceneLayers["intro"][0]
		if got.ID == "" {
			t.Error("应分配非空 ID")
		}
		if next.IDGen.Counter == s.IDGen.Counter {
			t.Error("ID 生成器应前进")
		}
	})

	t.Run("Scene 与 Order 被强制改写", func(t *testing.T) {
		layer := components.NewAudioLayer("a-1", "别的场景", "音频", 99, components.AudioLayerData{File: "x.mp3"})
		next := Reduce(s, Action{Kind: ActionAddLayer, Layer: &layer})
		got := next.SceneLayers["intro"][0]
		if got.Scene != "intro" || got.Order != 0 {
			t.Errorf("scene=%s order=%d, want intro/0", got.Scene, got.Order)
		}
	})
}

// TestRemoveLayer 测试图层移除及其副作用
func TestRemoveLayer(t *testing.T) {
	t.Run("移除主手势图层清空扁平路径", func(t *testing.T) {
		s := newTestState("intro")
		s = Reduce(s, Action{Kind: ActionAddWaypoint, Waypoint: wp(3, 4)})
		idx := s.PrimaryHandLayerIndex("intro")
		id := s.SceneLayers["intro"][idx].ID

		next := Reduce(s, Action{Kind: ActionRemoveLayer, LayerID: id})
		if len(next.SceneWaypoints["intro"]) != 0 {
			t.Error("扁平主路径应随主图层一起清空")
		}
	})

	t.Run("移除最后一个图层置位已清空标志", func(t *testing.T) {
		s := layeredState(t)
		for _, id := range []string{"hand-1", "zoom-1", "audio-1"} {
			s = Reduce(s, Action{Kind: ActionRemoveLayer, LayerID: id})
		}
		if !s.ClearedScenes["intro"] {
			t.Error("场景清空后 ClearedScenes 应置位")
		}
	})

	t.Run("移除主手势图层后次级图层晋升并镜像", func(t *testing.T) {
		s := newTestState("intro")
		s = Reduce(s, Action{Kind: ActionAddWaypoint, Waypoint: wp(1, 1)})
		s = Reduce(s, Action{
			Kind: ActionCreateGesturePath,
			Waypoints: []components.Waypoint{
				{X: 100, Y: 100}, {X: 110, Y: 110}, {X: 120, Y: 120},
			},
			Gesture: components.GestureScrolling,
		})
		primaryID := s.SceneLayers["intro"][s.PrimaryHandLayerIndex("intro")].ID
		secondaryID := s.SelectedLayerID

		s = Reduce(s, Action{Kind: ActionRemoveLayer, LayerID: primaryID})

		// 原次级图层成为新的主图层，扁平路径采纳它的独立路径
		idx := s.PrimaryHandLayerIndex("intro")
		if idx < 0 || s.SceneLayers["intro"][idx].ID != secondaryID {
			t.Fatal("剩余的手势图层应晋升为主图层")
		}
		if !components.WaypointsEqual(s.SceneWaypoints["intro"], s.SceneLayers["intro"][idx].Hand.Waypoints) {
			t.Fatalf("晋升后镜像不变量被破坏: flat=%d 点, 图层=%d 点",
				len(s.SceneWaypoints["intro"]), len(s.SceneLayers["intro"][idx].Hand.Waypoints))
		}
		if s.SceneGestures["intro"] != components.GestureScrolling {
			t.Errorf("场景手势应采纳晋升图层的手势: got %s", s.SceneGestures["intro"])
		}

		// 继续编辑扁平路径只是追加，不吞掉晋升图层原有的点
		s = Reduce(s, Action{Kind: ActionAddWaypoint, Waypoint: wp(130, 130)})
		idx = s.PrimaryHandLayerIndex("intro")
		if got := len(s.SceneLayers["intro"][idx].Hand.Waypoints); got != 4 {
			t.Errorf("晋升图层的路径: got %d 点, want 4", got)
		}
	})

	t.Run("移除选中图层清除选中状态", func(t *testing.T) {
		s := layeredState(t)
		s = Reduce(s, Action{Kind: ActionSelectLayer, LayerID: "zoom-1"})
		s = Reduce(s, Action{Kind: ActionRemoveLayer, LayerID: "zoom-1"})
		if s.SelectedLayerID != "" {
			t.Errorf("选中状态: got %q, want 空", s.SelectedLayerID)
		}
	})

	t.Run("不存在的 ID 为 no-op", func(t *testing.T) {
		s := layeredState(t)
		if next := Reduce(s, Action{Kind: ActionRemoveLayer, LayerID: "missing"}); next != s {
			t.Error("不存在的图层 ID 应为 no-op")
		}
	})
}

// TestUpdateLayerFields 测试公共字段补丁
func TestUpdateLayerFields(t *testing.T) {
	s := layeredState(t)
	name := "改名后"
	visible := false
	next := Reduce(s, Action{
		Kind:       ActionUpdateLayerFields,
		LayerID:    "audio-1",
		LayerPatch: &components.LayerPatch{Name: &name, Visible: &visible},
	})

	idx := next.FindLayer("intro", "audio-1")
	got := next.SceneLayers["intro"][idx]
	if got.Name != "改名后" || got.Visible {
		t.Errorf("补丁未生效: name=%q visible=%v", got.Name, got.Visible)
	}
	// 未提及的字段保持原值
	if got.Locked {
		t.Error("未补丁的字段被改动")
	}
}

// TestUpdateLayerData 测试类型专属数据的整体替换
func TestUpdateLayerData(t *testing.T) {
	t.Run("替换主手势图层数据镜像进扁平路径", func(t *testing.T) {
		s := layeredState(t)
		next := Reduce(s, Action{
			Kind:    ActionUpdateLayerData,
			LayerID: "hand-1",
			HandData: &components.HandLayerData{
				Waypoints: []components.Waypoint{{X: 50, Y: 60}, {X: 70, Y: 80}},
				Gesture:   components.GesturePressed,
			},
		})
		if len(next.SceneWaypoints["intro"]) != 2 {
			t.Errorf("扁平路径: got %d 点, want 2", len(next.SceneWaypoints["intro"]))
		}
	})

	t.Run("载荷类型不匹配为 no-op", func(t *testing.T) {
		s := layeredState(t)
		next := Reduce(s, Action{
			Kind:     ActionUpdateLayerData,
			LayerID:  "zoom-1",
			HandData: &components.HandLayerData{},
		})
		if next != s {
			t.Error("手势载荷写缩放图层应为 no-op")
		}
	})

	t.Run("锁定图层拒绝替换", func(t *testing.T) {
		s := layeredState(t)
		s = Reduce(s, Action{Kind: ActionToggleLayerLock, LayerID: "zoom-1"})
		next := Reduce(s, Action{
			Kind:     ActionUpdateLayerData,
			LayerID:  "zoom-1",
			ZoomData: &components.ZoomLayerData{},
		})
		if next != s {
			t.Error("锁定图层应拒绝数据替换")
		}
	})
}

// TestReorderLayers 测试显式顺序重建
func TestReorderLayers(t *testing.T) {
	t.Run("按列表顺序重排并重赋 Order", func(t *testing.T) {
		s := layeredState(t)
		next := Reduce(s, Action{
			Kind:       ActionReorderLayers,
			LayerOrder: []string{"audio-1", "hand-1", "zoom-1"},
		})
		layers := next.SceneLayers["intro"]
		wantIDs := []string{"audio-1", "hand-1", "zoom-1"}
		for i, want := range wantIDs {
			if layers[i].ID != want {
				t.Errorf("位置 %d: got %s, want %s", i, layers[i].ID, want)
			}
			if layers[i].Order != i {
				t.Errorf("位置 %d 的 Order: got %d, want %d", i, layers[i].Order, i)
			}
		}
	})

	t.Run("未提及的图层被丢弃且失效选中被清除", func(t *testing.T) {
		s := layeredState(t)
		s = Reduce(s, Action{Kind: ActionSelectLayer, LayerID: "zoom-1"})
		next := Reduce(s, Action{
			Kind:       ActionReorderLayers,
			LayerOrder: []string{"audio-1", "hand-1"},
		})
		if len(next.SceneLayers["intro"]) != 2 {
			t.Errorf("图层数量: got %d, want 2", len(next.SceneLayers["intro"]))
		}
		if next.SelectedLayerID != "" {
			t.Error("被丢弃图层的选中状态应清除")
		}
	})

	t.Run("不存在的 ID 被忽略", func(t *testing.T) {
		s := layeredState(t)
		next := Reduce(s, Action{
			Kind:       ActionReorderLayers,
			LayerOrder: []string{"ghost", "hand-1", "zoom-1", "audio-1"},
		})
		if len(next.SceneLayers["intro"]) != 3 {
			t.Errorf("图层数量: got %d, want 3", len(next.SceneLayers["intro"]))
		}
	})
}

// TestToggleLayerFlags 测试可见性与锁定翻转
func TestToggleLayerFlags(t *testing.T) {
	s := layeredState(t)

	next := Reduce(s, Action{Kind: ActionToggleLayerVisible, LayerID: "zoom-1"})
	idx := next.FindLayer("intro", "zoom-1")
	if next.SceneLayers["intro"][idx].Visible {
		t.Error("可见性应被翻转为 false")
	}

	next = Reduce(next, Action{Kind: ActionToggleLayerLock, LayerID: "zoom-1"})
	idx = next.FindLayer("intro", "zoom-1")
	if !next.SceneLayers["intro"][idx].Locked {
		t.Error("锁定应被翻转为 true")
	}
	// 翻转不影响输入状态
	if s.SceneLayers["intro"][s.FindLayer("intro", "zoom-1")].Locked {
		t.Error("输入状态被修改")
	}
}
