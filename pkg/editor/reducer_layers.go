package editor

import (
	"github.com/decker502/handmotion/pkg/components"
)

// reduceLayerAction 图层动作族的统一入口
func reduceLayerAction(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" {
		return nil
	}

	switch action.Kind {
	case ActionAddLayer:
		return reduceAddLayer(s, action, scene)
	case ActionRemoveLayer:
		return reduceRemoveLayer(s, action, scene)
	case ActionUpdateLayerFields:
		return reduceUpdateLayerFields(s, action, scene)
	case ActionUpdateLayerData:
		return reduceUpdateLayerData(s, action, scene)
	case ActionReorderLayers:
		return reduceReorderLayers(s, action, scene)
	case ActionToggleLayerVisible:
		return reduceToggleLayerFlag(s, action, scene, true)
	case ActionToggleLayerLock:
		return reduceToggleLayerFlag(s, action, scene, false)
	case ActionSelectLayer:
		next := s.clone()
		next.SelectedLayerID = action.LayerID
		return next
	}
	return nil
}

// reduceAddLayer 向场景追加一个图层
//
// 载荷图层若未携带 ID，由会话的生成器分配。Scene 字段强制
// 改写为目标场景：图层归其所属场景的列表独占持有。
func reduceAddLayer(s *State, action Action, scene string) *State {
	if action.Layer == nil {
		return nil
	}

	next := s.clone()
	layer := action.Layer.Clone()
	if layer.ID == "" {
		id, gen := next.IDGen.Next()
		next.IDGen = gen
		layer.ID = id
	}
	layer.Scene = scene
	layer.Order = len(next.SceneLayers[scene])
	next.SceneLayers[scene] = append(components.CloneLayers(next.SceneLayers[scene]), layer)
	return next
}

// reduceRemoveLayer 移除图层
//
// 移除场景最后一个图层时置位"已清空"标志，阻止之后的
// EnsureSceneLayers 复活被用户有意删除的内置默认内容。
// 被移除的是主手势图层时，下一个手势图层晋升为主图层：
// 它的独立路径和手势被采纳为扁平主路径，维持镜像不变量；
// 没有剩余手势图层时扁平主路径清空。
func reduceRemoveLayer(s *State, action Action, scene string) *State {
	idx := s.FindLayer(scene, action.LayerID)
	if idx < 0 {
		return nil
	}

	next := s.clone()
	removed := s.SceneLayers[scene][idx]
	layers := components.CloneLayers(s.SceneLayers[scene])
	layers = append(layers[:idx], layers[idx+1:]...)
	next.SceneLayers[scene] = layers

	if removed.Type == components.LayerHand && idx == s.PrimaryHandLayerIndex(scene) {
		next.SceneWaypoints[scene] = nil
		if promoted := next.PrimaryHandLayerIndex(scene); promoted >= 0 {
			if hand := layers[promoted].Hand; hand != nil {
				next.SceneWaypoints[scene] = components.CloneWaypoints(hand.Waypoints)
				next.SceneGestures[scene] = hand.Gesture.Normalize()
			}
		}
	}
	if len(layers) == 0 {
		next.ClearedScenes[scene] = true
	}
	if next.SelectedLayerID == action.LayerID {
		next.SelectedLayerID = ""
	}
	return next
}

// reduceUpdateLayerFields 更新图层公共字段（整层替换式不可变更新）
func reduceUpdateLayerFields(s *State, action Action, scene string) *State {
	idx := s.FindLayer(scene, action.LayerID)
	if idx < 0 || action.LayerPatch == nil {
		return nil
	}

	next := s.clone()
	layers := components.CloneLayers(s.SceneLayers[scene])
	layers[idx] = layers[idx].PatchFields(*action.LayerPatch)
	next.SceneLayers[scene] = layers
	return next
}

// reduceUpdateLayerData 整体替换图层的类型专属数据
//
// 载荷必须与图层类型匹配，不匹配为 no-op。替换主手势图层的
// 数据时，扁平主路径同步镜像新数据。
func reduceUpdateLayerData(s *State, action Action, scene string) *State {
	idx := s.FindLayer(scene, action.LayerID)
	if idx < 0 {
		return nil
	}
	layer := s.SceneLayers[scene][idx]
	if layer.Locked {
		return nil
	}

	next := s.clone()
	layers := components.CloneLayers(s.SceneLayers[scene])

	switch layer.Type {
	case components.LayerHand:
		if action.HandData == nil {
			return nil
		}
		data := *action.HandData
		data.Waypoints = components.CloneWaypoints(action.HandData.Waypoints)
		layers[idx].Hand = &data
		if idx == s.PrimaryHandLayerIndex(scene) {
			next.SceneWaypoints[scene] = components.CloneWaypoints(data.Waypoints)
		}
	case components.LayerZoom:
		if action.ZoomData == nil {
			return nil
		}
		data := *action.ZoomData
		data.Keyframes = components.CloneZoomKeyframes(action.ZoomData.Keyframes)
		layers[idx].Zoom = &data
	case components.LayerAudio:
		if action.AudioData == nil {
			return nil
		}
		data := *action.AudioData
		layers[idx].Audio = &data
	default:
		return nil
	}

	next.SceneLayers[scene] = layers
	return next
}

// reduceReorderLayers 按显式 ID 列表重建图层顺序
//
// 列表中不存在的 ID 被忽略；场景中存在但列表未提及的图层
// 被丢弃（列表即目标全集）。Order 字段按新位置重新赋值。
func reduceReorderLayers(s *State, action Action, scene string) *State {
	if len(action.LayerOrder) == 0 {
		return nil
	}

	current := s.SceneLayers[scene]
	reordered := make([]components.Layer, 0, len(current))
	for _, id := range action.LayerOrder {
		for _, layer := range current {
			if layer.ID == id {
				cloned := layer.Clone()
				cloned.Order = len(reordered)
				reordered = append(reordered, cloned)
				break
			}
		}
	}

	next := s.clone()
	next.SceneLayers[scene] = reordered
	if next.SelectedLayerID != "" && next.FindLayer(scene, next.SelectedLayerID) < 0 {
		next.SelectedLayerID = ""
	}
	return next
}

// reduceToggleLayerFlag 翻转图层可见性或锁定标志
func reduceToggleLayerFlag(s *State, action Action, scene string, visibility bool) *State {
	idx := s.FindLayer(scene, action.LayerID)
	if idx < 0 {
		return nil
	}

	next := s.clone()
	layers := components.CloneLayers(s.SceneLayers[scene])
	if visibility {
		layers[idx].Visible = !layers[idx].Visible
	} else {
		layers[idx].Locked = !layers[idx].Locked
	}
	next.SceneLayers[scene] = layers
	return next
}
