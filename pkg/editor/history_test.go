package editor

import (
	"testing"

	"github.com/decker502/handmotion/pkg/components"
)

// TestUndoRedoRoundTrip 测试基本的撤销/重做循环
func TestUndoRedoRoundTrip(t *testing.T) {
	h := NewHistory(newTestState("intro"))
	h.Dispatch(Action{Kind: ActionAddWaypoint, Waypoint: wp(1, 1)})
	h.Dispatch(Action{Kind: ActionAddWaypoint, Waypoint: wp(2, 2)})

	if got := len(h.Present.SceneWaypoints["intro"]); got != 2 {
		t.Fatalf("路径点: got %d, want 2", got)
	}

	h.Dispatch(Action{Kind: ActionUndo})
	if got := len(h.Present.SceneWaypoints["intro"]); got != 1 {
		t.Errorf("撤销后: got %d 点, want 1", got)
	}

	h.Dispatch(Action{Kind: ActionRedo})
	if got := len(h.Present.SceneWaypoints["intro"]); got != 2 {
		t.Errorf("重做后: got %d 点, want 2", got)
	}
}

// TestUndoRedoBoundary 测试空栈边界为 no-op
func TestUndoRedoBoundary(t *testing.T) {
	s := newTestState("intro")
	h := NewHistory(s)

	h.Dispatch(Action{Kind: ActionUndo})
	if h.Present != s {
		t.Error("空撤销栈上的 UNDO 应为 no-op")
	}
	h.Dispatch(Action{Kind: ActionRedo})
	if h.Present != s {
		t.Error("空重做栈上的 REDO 应为 no-op")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("空历史不应报告可撤销/可重做")
	}
}

// TestDragCoalescing 测试拖拽手势合并为单个撤销步
//
// 一次完整拖拽（开始 + 十次移动 + 结束）在撤销栈上只产生
// 一个条目，一次撤销回到拖拽前的位置。
func TestDragCoalescing(t *testing.T) {
	h := NewHistory(newTestState("intro"))
	h.Dispatch(Action{Kind: ActionAddWaypoint, Waypoint: wp(10, 10)})
	depthBefore := len(h.Past)

	h.Dispatch(Action{Kind: ActionStartDrag, Index: 0})
	for i := 1; i <= 10; i++ {
		h.Dispatch(Action{Kind: ActionUpdateWaypoint, Index: 0, Waypoint: wp(10+float64(i), 10)})
	}
	h.Dispatch(Action{Kind: ActionEndDrag})

	if got := len(h.Past); got != depthBefore+1 {
		t.Fatalf("撤销栈深度: got %d, want %d（整个拖拽一个条目）", got, depthBefore+1)
	}
	if got := h.Present.SceneWaypoints["intro"][0].X; got != 20 {
		t.Errorf("拖拽终点: got %v, want 20", got)
	}

	h.Dispatch(Action{Kind: ActionUndo})
	if got := h.Present.SceneWaypoints["intro"][0].X; got != 10 {
		t.Errorf("一次撤销应回到拖拽前: got %v, want 10", got)
	}
}

// TestNavigationDoesNotClearFuture 测试导航动作不使重做失效
func TestNavigationDoesNotClearFuture(t *testing.T) {
	h := NewHistory(newTestState("intro"))
	h.Dispatch(Action{Kind: ActionAddWaypoint, Waypoint: wp(1, 1)})
	h.Dispatch(Action{Kind: ActionUndo})

	if !h.CanRedo() {
		t.Fatal("撤销后应可重做")
	}

	h.Dispatch(Action{Kind: ActionSelectTool, Tool: ToolAddWaypoint})
	h.Dispatch(Action{Kind: ActionTogglePreview})
	if !h.CanRedo() {
		t.Error("导航/开关动作不应清空重做栈")
	}

	h.Dispatch(Action{Kind: ActionRedo})
	if got := len(h.Present.SceneWaypoints["intro"]); got != 1 {
		t.Errorf("重做后: got %d 点, want 1", got)
	}
}

// TestNewEditClearsFuture 测试新编辑使重做失效
func TestNewEditClearsFuture(t *testing.T) {
	h := NewHistory(newTestState("intro"))
	h.Dispatch(Action{Kind: ActionAddWaypoint, Waypoint: wp(1, 1)})
	h.Dispatch(Action{Kind: ActionUndo})
	if !h.CanRedo() {
		t.Fatal("前置条件失败：撤销后应可重做")
	}

	h.Dispatch(Action{Kind: ActionAddWaypoint, Waypoint: wp(5, 5)})
	if h.CanRedo() {
		t.Error("新编辑后重做栈应清空")
	}
}

// TestNoopDoesNotPushHistory 测试 no-op 动作不产生历史条目
func TestNoopDoesNotPushHistory(t *testing.T) {
	h := NewHistory(newTestState("intro"))
	h.Dispatch(Action{Kind: ActionDeleteWaypoint, Index: 5})
	h.Dispatch(Action{Kind: ActionUpdateWaypoint, Index: 0, Waypoint: wp(1, 1)})

	if h.CanUndo() {
		t.Error("no-op 编辑不应压入撤销栈")
	}
}

// TestHistoryDepthLimit 测试撤销栈限深
func TestHistoryDepthLimit(t *testing.T) {
	h := NewHistory(newTestState("intro"))
	for i := 0; i < MaxHistoryDepth+20; i++ {
		h.Dispatch(Action{Kind: ActionAddWaypoint, Waypoint: wp(float64(i), 0)})
	}
	if got := len(h.Past); got != MaxHistoryDepth {
		t.Errorf("撤销栈深度: got %d, want %d", got, MaxHistoryDepth)
	}
	// 全部撤销后停在最旧可达状态，继续撤销为 no-op
	for i := 0; i < MaxHistoryDepth+5; i++ {
		h.Dispatch(Action{Kind: ActionUndo})
	}
	if got := len(h.Present.SceneWaypoints["intro"]); got != 20 {
		t.Errorf("最旧可达状态: got %d 点, want 20", got)
	}
}

// TestUndoRestoresLayerState 测试撤销覆盖图层变更
func TestUndoRestoresLayerState(t *testing.T) {
	h := NewHistory(newTestState("intro"))
	layer := components.NewZoomLayer("zoom-1", "intro", "缩放", 0, components.ZoomLayerData{
		Keyframes: []components.ZoomKeyframe{{Time: 0, ZoomLevel: 1}},
	})
	h.Dispatch(Action{Kind: ActionAddLayer, Layer: &layer})
	h.Dispatch(Action{Kind: ActionRemoveLayer, LayerID: "zoom-1"})

	if len(h.Present.SceneLayers["intro"]) != 0 {
		t.Fatal("前置条件失败：图层应已移除")
	}
	h.Dispatch(Action{Kind: ActionUndo})
	if len(h.Present.SceneLayers["intro"]) != 1 {
		t.Error("撤销应恢复被移除的图层")
	}
}
