package editor

import (
	"github.com/decker502/handmotion/pkg/components"
)

// Reduce 状态机入口：对一个动作求新状态
//
// 纯函数：输入状态绝不被修改，未触及的子树与旧状态共享引用。
// 非法索引、不存在的图层 ID、未知动作类型一律原样返回当前
// 状态（no-op），reducer 永不 panic。
func Reduce(s *State, action Action) *State {
	var next *State

	switch action.Kind {
	case ActionSetWaypoints, ActionAddWaypoint, ActionUpdateWaypoint, ActionDeleteWaypoint:
		next = reduceWaypointEdit(s, action)
	case ActionSelectWaypoint:
		next = reduceSelectWaypoint(s, action)
	case ActionStartDrag:
		next = reduceStartDrag(s, action)
	case ActionEndDrag:
		next = reduceEndDrag(s)
	case ActionCreateGesturePath:
		next = reduceCreateGesturePath(s, action)
	case ActionSetSceneGesture:
		next = reduceSetSceneGesture(s, action)
	case ActionSetAnimationVariant:
		next = reduceSetAnimationVariant(s, action)
	case ActionSetDarkVariant:
		next = reduceSetDarkVariant(s, action)

	case ActionAddLayer, ActionRemoveLayer, ActionUpdateLayerFields, ActionUpdateLayerData,
		ActionReorderLayers, ActionToggleLayerVisible, ActionToggleLayerLock, ActionSelectLayer:
		next = reduceLayerAction(s, action)

	case ActionSelectScene:
		next = reduceSelectScene(s, action)
	case ActionSelectTool:
		next = reduceSelectTool(s, action)
	case ActionSetComposition:
		next = reduceSetComposition(s, action)
	case ActionMarkSaved:
		next = reduceMarkSaved(s, action)
	case ActionRevertToSaved:
		next = reduceRevertToSaved(s, action)
	case ActionRestoreVersion:
		next = reduceRestoreVersion(s, action)
	case ActionRestoreLogEntry:
		next = reduceRestoreLogEntry(s, action)
	case ActionEnsureSceneLayers:
		next = reduceEnsureSceneLayers(s, action)
	case ActionToggleTrail:
		next = reduceToggleTrail(s, action)
	case ActionTogglePreview:
		next = s.clone()
		next.PreviewMode = !s.PreviewMode
	case ActionToggleExportPanel:
		next = s.clone()
		next.ExportPanelOpen = !s.ExportPanelOpen
	case ActionImportSession:
		next = reduceImportSession(s, action)

	default:
		return s
	}

	if next == nil {
		return s
	}
	if shouldLog(s, action) {
		next = appendLog(next, action)
	}
	return next
}

// ============================================================================
// 路径点动作
// ============================================================================

// reduceWaypointEdit 路径点增删改的统一入口
//
// 派发解析：若当前选中的图层是手势图层且不是场景的主手势图层，
// 编辑路由到该图层自己的独立路径；否则作用于场景的扁平主路径，
// 并在变更后执行主图层同步。
func reduceWaypointEdit(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" {
		return nil
	}

	if idx, ok := selectedSecondaryHandLayer(s, scene); ok {
		return reduceSecondaryWaypointEdit(s, action, scene, idx)
	}
	return reducePrimaryWaypointEdit(s, action, scene)
}

// reducePrimaryWaypointEdit 编辑场景扁平主路径
// 主手势图层处于锁定状态时拒绝编辑（同步会改写它的数据）
func reducePrimaryWaypointEdit(s *State, action Action, scene string) *State {
	if idx := s.PrimaryHandLayerIndex(scene); idx >= 0 && s.SceneLayers[scene][idx].Locked {
		return nil
	}
	current := s.SceneWaypoints[scene]
	edited, ok := applyWaypointEdit(current, action)
	if !ok {
		return nil
	}

	next := s.clone()
	next.SceneWaypoints[scene] = edited
	if action.Kind == ActionDeleteWaypoint && next.SelectedWaypoint == action.Index {
		next.SelectedWaypoint = -1
	}
	syncPrimaryHandLayer(next, scene)
	return next
}

// reduceSecondaryWaypointEdit 编辑次级手势图层的独立路径
//
// 删除次级图层的最后一个路径点时整个图层被移除：
// 没有路径点的手势图层没有存在的意义。锁定的图层拒绝编辑。
func reduceSecondaryWaypointEdit(s *State, action Action, scene string, layerIdx int) *State {
	layers := s.SceneLayers[scene]
	layer := layers[layerIdx]
	if layer.Locked {
		return nil
	}

	edited, ok := applyWaypointEdit(layer.Hand.Waypoints, action)
	if !ok {
		return nil
	}

	next := s.clone()
	nextLayers := components.CloneLayers(layers)
	if len(edited) == 0 {
		nextLayers = append(nextLayers[:layerIdx], nextLayers[layerIdx+1:]...)
		next.SelectedLayerID = ""
	} else {
		nextLayers[layerIdx] = nextLayers[layerIdx].WithHandWaypoints(edited)
	}
	next.SceneLayers[scene] = nextLayers
	if action.Kind == ActionDeleteWaypoint && next.SelectedWaypoint == action.Index {
		next.SelectedWaypoint = -1
	}
	return next
}

// applyWaypointEdit 对一条路径应用增删改，返回新数组
// 越界索引或缺失载荷返回 ok=false（上层转为 no-op）
func applyWaypointEdit(current []components.Waypoint, action Action) ([]components.Waypoint, bool) {
	switch action.Kind {
	case ActionSetWaypoints:
		return components.CloneWaypoints(action.Waypoints), true

	case ActionAddWaypoint:
		if action.Waypoint == nil {
			return nil, false
		}
		edited := make([]components.Waypoint, len(current), len(current)+1)
		copy(edited, current)
		return append(edited, *action.Waypoint), true

	case ActionUpdateWaypoint:
		if action.Waypoint == nil || action.Index < 0 || action.Index >= len(current) {
			return nil, false
		}
		edited := components.CloneWaypoints(current)
		edited[action.Index] = *action.Waypoint
		return edited, true

	case ActionDeleteWaypoint:
		if action.Index < 0 || action.Index >= len(current) {
			return nil, false
		}
		edited := make([]components.Waypoint, 0, len(current)-1)
		edited = append(edited, current[:action.Index]...)
		edited = append(edited, current[action.Index+1:]...)
		return edited, true
	}
	return nil, false
}

// selectedSecondaryHandLayer 判断当前选中图层是否为次级手势图层
// 返回其索引。主手势图层（场景中第一个手势图层）不算次级。
func selectedSecondaryHandLayer(s *State, scene string) (int, bool) {
	if s.SelectedLayerID == "" {
		return 0, false
	}
	idx := s.FindLayer(scene, s.SelectedLayerID)
	if idx < 0 {
		return 0, false
	}
	layer := s.SceneLayers[scene][idx]
	if layer.Type != components.LayerHand || layer.Hand == nil {
		return 0, false
	}
	if idx == s.PrimaryHandLayerIndex(scene) {
		return 0, false
	}
	return idx, true
}

// syncPrimaryHandLayer 主图层同步步骤
//
// 不变量：场景的扁平路径表与其第一个手势图层的 data.Waypoints
// 始终互为镜像。每次主路径变更后调用；没有主手势图层且路径
// 非空时就地创建一个。next 必须是已克隆的可写状态。
func syncPrimaryHandLayer(next *State, scene string) {
	flat := next.SceneWaypoints[scene]
	primaryIdx := next.PrimaryHandLayerIndex(scene)

	if primaryIdx < 0 {
		if len(flat) == 0 {
			return
		}
		id, gen := next.IDGen.Next()
		next.IDGen = gen
		layer := components.NewHandLayer(id, scene, "主路径", len(next.SceneLayers[scene]), components.HandLayerData{
			Waypoints:        components.CloneWaypoints(flat),
			Gesture:          next.SceneGestures[scene].Normalize(),
			AnimationVariant: next.SceneAnimations[scene],
			DarkVariant:      next.SceneDark[scene],
		})
		layers := append(components.CloneLayers(next.SceneLayers[scene]), layer)
		next.SceneLayers[scene] = layers
		return
	}

	layers := components.CloneLayers(next.SceneLayers[scene])
	layers[primaryIdx] = layers[primaryIdx].WithHandWaypoints(components.CloneWaypoints(flat))
	if layers[primaryIdx].Hand != nil {
		layers[primaryIdx].Hand.Gesture = next.SceneGestures[scene].Normalize()
	}
	next.SceneLayers[scene] = layers
}

// reduceSelectWaypoint 选择路径点（-1 取消选择）
func reduceSelectWaypoint(s *State, action Action) *State {
	next := s.clone()
	next.SelectedWaypoint = action.Index
	return next
}

// reduceStartDrag 开始拖拽某个路径点
// 越界索引为 no-op
func reduceStartDrag(s *State, action Action) *State {
	scene := action.targetScene(s)
	waypoints := s.SceneWaypoints[scene]
	if idx, ok := selectedSecondaryHandLayer(s, scene); ok {
		waypoints = s.SceneLayers[scene][idx].Hand.Waypoints
	}
	if action.Index < 0 || action.Index >= len(waypoints) {
		return nil
	}
	next := s.clone()
	next.DragIndex = action.Index
	next.SelectedWaypoint = action.Index
	return next
}

// reduceEndDrag 结束拖拽
func reduceEndDrag(s *State) *State {
	if s.DragIndex < 0 {
		return nil
	}
	next := s.clone()
	next.DragIndex = -1
	return next
}

// reduceCreateGesturePath 创建一条全新的独立手势路径图层
//
// 操作者绘制一个额外手势（而不是编辑既有路径）时使用：
// 新图层携带初始点列表和手势标签，创建后被选中。
// 不触碰扁平主路径，也不参与主图层同步。
func reduceCreateGesturePath(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" || len(action.Waypoints) == 0 {
		return nil
	}

	next := s.clone()
	id, gen := next.IDGen.Next()
	next.IDGen = gen
	layer := components.NewHandLayer(id, scene, "手势路径", len(next.SceneLayers[scene]), components.HandLayerData{
		Waypoints: components.CloneWaypoints(action.Waypoints),
		Gesture:   action.Gesture.Normalize(),
	})
	next.SceneLayers[scene] = append(components.CloneLayers(next.SceneLayers[scene]), layer)
	next.SelectedLayerID = id
	return next
}

// reduceSetSceneGesture 设置场景手势选择
func reduceSetSceneGesture(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" {
		return nil
	}
	next := s.clone()
	next.SceneGestures[scene] = action.Gesture.Normalize()
	syncPrimaryHandLayer(next, scene)
	return next
}

// reduceSetAnimationVariant 设置场景动画变体
func reduceSetAnimationVariant(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" {
		return nil
	}
	next := s.clone()
	next.SceneAnimations[scene] = action.Variant
	return next
}

// reduceSetDarkVariant 设置场景暗色变体
func reduceSetDarkVariant(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" {
		return nil
	}
	next := s.clone()
	next.SceneDark[scene] = action.Dark
	return next
}
