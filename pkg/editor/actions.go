package editor

import (
	"time"

	"github.com/decker502/handmotion/pkg/components"
	"github.com/decker502/handmotion/pkg/config"
)

// ActionKind 动作类型
type ActionKind string

// 路径点动作
const (
	ActionSetWaypoints   ActionKind = "SET_WAYPOINTS"
	ActionAddWaypoint    ActionKind = "ADD_WAYPOINT"
	ActionUpdateWaypoint ActionKind = "UPDATE_WAYPOINT"
	ActionDeleteWaypoint ActionKind = "DELETE_WAYPOINT"
	ActionSelectWaypoint ActionKind = "SELECT_WAYPOINT"
	ActionStartDrag      ActionKind = "START_DRAG"
	ActionEndDrag        ActionKind = "END_DRAG"
)

// 手势与场景外观动作
const (
	ActionCreateGesturePath   ActionKind = "CREATE_GESTURE_PATH"
	ActionSetSceneGesture     ActionKind = "SET_SCENE_GESTURE"
	ActionSetAnimationVariant ActionKind = "SET_ANIMATION_VARIANT"
	ActionSetDarkVariant      ActionKind = "SET_DARK_VARIANT"
)

// 图层动作
const (
	ActionAddLayer           ActionKind = "ADD_LAYER"
	ActionRemoveLayer        ActionKind = "REMOVE_LAYER"
	ActionUpdateLayerFields  ActionKind = "UPDATE_LAYER_FIELDS"
	ActionUpdateLayerData    ActionKind = "UPDATE_LAYER_DATA"
	ActionReorderLayers      ActionKind = "REORDER_LAYERS"
	ActionToggleLayerVisible ActionKind = "TOGGLE_LAYER_VISIBLE"
	ActionToggleLayerLock    ActionKind = "TOGGLE_LAYER_LOCK"
	ActionSelectLayer        ActionKind = "SELECT_LAYER"
)

// 场景与版本管理动作
const (
	ActionSelectScene       ActionKind = "SELECT_SCENE"
	ActionSelectTool        ActionKind = "SELECT_TOOL"
	ActionSetComposition    ActionKind = "SET_COMPOSITION"
	ActionMarkSaved         ActionKind = "MARK_SAVED"
	ActionRevertToSaved     ActionKind = "REVERT_TO_SAVED"
	ActionRestoreVersion    ActionKind = "RESTORE_VERSION"
	ActionRestoreLogEntry   ActionKind = "RESTORE_LOG_ENTRY"
	ActionEnsureSceneLayers ActionKind = "ENSURE_SCENE_LAYERS"
	ActionToggleTrail       ActionKind = "TOGGLE_TRAIL"
	ActionTogglePreview     ActionKind = "TOGGLE_PREVIEW"
	ActionToggleExportPanel ActionKind = "TOGGLE_EXPORT_PANEL"
	ActionImportSession     ActionKind = "IMPORT_SESSION"
)

// 撤销/重做（由 History 包装层处理，不进入 Reduce）
const (
	ActionUndo ActionKind = "UNDO"
	ActionRedo ActionKind = "REDO"
)

// Action 一次状态变更请求（纯数据）
//
// 单一结构体承载所有动作类型的载荷，Kind 决定哪些字段有效，
// 未使用的字段保持零值。Scene 省略时作用于当前选中场景。
type Action struct {
	// Kind 动作类型
	Kind ActionKind

	// Time 动作发生时间，由派发方填写（reducer 自身不取当前时间，
	// 保证对相同输入产生相同输出）
	Time time.Time

	// Scene 目标场景名，空串表示当前选中场景
	Scene string

	// Index 路径点索引（更新/删除/选择/拖拽）
	Index int

	// Waypoint 单个路径点载荷（添加/更新）
	Waypoint *components.Waypoint

	// Waypoints 整表路径点载荷（整表替换 / 手势路径创建）
	Waypoints []components.Waypoint

	// Gesture 手势标签载荷
	Gesture components.Gesture

	// Variant 动画变体载荷
	Variant string

	// Dark 暗色变体载荷
	Dark bool

	// Layer 整个图层载荷（添加图层）
	Layer *components.Layer

	// LayerID 目标图层 ID
	LayerID string

	// LayerOrder 重排序的图层 ID 列表（按目标顺序）
	LayerOrder []string

	// LayerPatch 图层公共字段补丁
	LayerPatch *components.LayerPatch

	// HandData / ZoomData / AudioData 图层类型专属数据整体替换载荷
	HandData  *components.HandLayerData
	ZoomData  *components.ZoomLayerData
	AudioData *components.AudioLayerData

	// Tool 工具选择载荷
	Tool Tool

	// CompositionID 合成 ID 载荷
	CompositionID string

	// VersionNumber 要恢复的版本号
	VersionNumber int

	// LogEntryID 要恢复的日志条目 ID
	LogEntryID int

	// Defaults 场景内置默认内容（EnsureSceneLayers / TOGGLE_TRAIL 采用）
	Defaults *config.SceneDefault

	// Core 会话核心载荷（导入会话）
	Core *StateCore
}

// targetScene 解析动作的目标场景
func (a Action) targetScene(s *State) string {
	if a.Scene != "" {
		return a.Scene
	}
	return s.SelectedScene
}
