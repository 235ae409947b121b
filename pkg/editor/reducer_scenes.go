package editor

import (
	"log"

	"github.com/decker502/handmotion/pkg/components"
)

// reduceSelectScene 切换选中场景，重置对象级选择游标
func reduceSelectScene(s *State, action Action) *State {
	if action.Scene == "" || action.Scene == s.SelectedScene {
		return nil
	}
	next := s.clone()
	next.SelectedScene = action.Scene
	next.SelectedWaypoint = -1
	next.SelectedLayerID = ""
	next.DragIndex = -1
	return next
}

// reduceSelectTool 切换激活工具
func reduceSelectTool(s *State, action Action) *State {
	if action.Tool == "" || action.Tool == s.ActiveTool {
		return nil
	}
	next := s.clone()
	next.ActiveTool = action.Tool
	return next
}

// reduceSetComposition 切换当前合成
func reduceSetComposition(s *State, action Action) *State {
	if action.CompositionID == "" {
		return nil
	}
	next := s.clone()
	next.CompositionID = action.CompositionID
	return next
}

// reduceMarkSaved 标记场景已保存
//
// 同时写入两个目标：
//  1. SceneSaved 保存快照——Revert 的基线
//  2. SceneVersions 追加一条自增版本，带动作时间戳
func reduceMarkSaved(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" {
		return nil
	}

	next := s.clone()
	snapshot := s.sceneSnapshot(scene)
	next.SceneSaved[scene] = snapshot

	versions := s.SceneVersions[scene]
	nextVersions := make([]SceneVersion, len(versions), len(versions)+1)
	copy(nextVersions, versions)
	nextVersions = append(nextVersions, SceneVersion{
		Number:    len(versions) + 1,
		Timestamp: action.Time,
		Snapshot:  snapshot.clone(),
	})
	next.SceneVersions[scene] = nextVersions
	return next
}

// reduceRevertToSaved 把场景回退到保存快照
// 没有保存快照时为 no-op
func reduceRevertToSaved(s *State, action Action) *State {
	scene := action.targetScene(s)
	snapshot, ok := s.SceneSaved[scene]
	if !ok {
		return nil
	}
	return restoreSceneSnapshot(s, scene, snapshot)
}

// reduceRestoreVersion 恢复场景的指定历史版本
// 版本号不存在时为 no-op
func reduceRestoreVersion(s *State, action Action) *State {
	scene := action.targetScene(s)
	for _, version := range s.SceneVersions[scene] {
		if version.Number == action.VersionNumber {
			return restoreSceneSnapshot(s, scene, version.Snapshot)
		}
	}
	return nil
}

// restoreSceneSnapshot 把快照内容写回场景并同步主图层
func restoreSceneSnapshot(s *State, scene string, snapshot SceneSnapshot) *State {
	next := s.clone()
	next.SceneWaypoints[scene] = components.CloneWaypoints(snapshot.Waypoints)
	next.SceneGestures[scene] = snapshot.Gesture.Normalize()
	next.SceneAnimations[scene] = snapshot.AnimationVariant
	next.SceneDark[scene] = snapshot.DarkVariant
	next.SelectedWaypoint = -1
	next.DragIndex = -1
	syncPrimaryHandLayer(next, scene)
	return next
}

// reduceRestoreLogEntry 从活动日志条目恢复整个会话
//
// 与版本恢复不同，日志恢复作用于全部会话核心（所有场景的
// 路径、图层、选择等），而不只是单个场景。条目不存在为 no-op。
func reduceRestoreLogEntry(s *State, action Action) *State {
	for _, entry := range s.ActivityLog {
		if entry.ID == action.LogEntryID {
			return s.applyCore(entry.Snapshot)
		}
	}
	return nil
}

// reduceEnsureSceneLayers 场景图层的惰性引导（幂等）
//
// 场景首次被访问时，把内置默认路径和外部音频提示物化为
// 可编辑图层。规则：
//   - 操作者显式清空过该场景的图层时完全跳过（信息性提示，非错误）
//   - 已存在手势图层则不再创建主图层；已存在音频图层则不再创建音频图层
//   - 首次访问时播种场景的初始保存快照，让 Revert 有基线
func reduceEnsureSceneLayers(s *State, action Action) *State {
	scene := action.targetScene(s)
	if scene == "" {
		return nil
	}

	if s.ClearedScenes[scene] {
		log.Printf("[Editor] 场景 %s 的图层已被显式清空，跳过默认内容采用", scene)
		return nil
	}

	def := action.Defaults
	next := s.clone()
	changed := false

	if s.PrimaryHandLayerIndex(scene) < 0 && def.HasPath() && len(s.SceneWaypoints[scene]) == 0 {
		next.SceneWaypoints[scene] = components.CloneWaypoints(def.Waypoints)
		next.SceneGestures[scene] = def.Gesture.Normalize()
		syncPrimaryHandLayer(next, scene)
		changed = true
	}

	if def != nil && len(def.AudioCues) > 0 && !sceneHasAudioLayer(s, scene) {
		layers := components.CloneLayers(next.SceneLayers[scene])
		for _, cue := range def.AudioCues {
			id, gen := next.IDGen.Next()
			next.IDGen = gen
			layers = append(layers, components.NewAudioLayer(id, scene, cue.File, len(layers), components.AudioLayerData{
				File:      cue.File,
				StartTime: cue.StartTime,
				Duration:  cue.Duration,
				Volume:    cue.Volume,
			}))
		}
		next.SceneLayers[scene] = layers
		changed = true
	}

	if _, ok := s.SceneSaved[scene]; !ok {
		next.SceneSaved[scene] = next.sceneSnapshot(scene)
		changed = true
	}

	if !changed {
		return nil
	}
	return next
}

// sceneHasAudioLayer 场景是否已有音频图层
func sceneHasAudioLayer(s *State, scene string) bool {
	for _, layer := range s.SceneLayers[scene] {
		if layer.Type == components.LayerAudio {
			return true
		}
	}
	return false
}

// reduceToggleTrail 切换轨迹叠加显示
//
// 开启轨迹时的内置默认采用：场景没有手工路径点但携带内置
// 默认路径时，把默认路径拷贝进手工路径表（并记录其手势），
// 使其变为可编辑内容。
func reduceToggleTrail(s *State, action Action) *State {
	next := s.clone()
	next.ShowTrail = !s.ShowTrail

	scene := action.targetScene(s)
	if next.ShowTrail && scene != "" && len(s.SceneWaypoints[scene]) == 0 && action.Defaults.HasPath() {
		next.SceneWaypoints[scene] = components.CloneWaypoints(action.Defaults.Waypoints)
		next.SceneGestures[scene] = action.Defaults.Gesture.Normalize()
		syncPrimaryHandLayer(next, scene)
	}
	return next
}

// reduceImportSession 导入会话核心（覆盖当前会话）
func reduceImportSession(s *State, action Action) *State {
	if action.Core == nil {
		return nil
	}
	return s.applyCore(*action.Core)
}

// ============================================================================
// 活动日志
// ============================================================================

// loggedKinds 会写入活动日志的动作类型
//
// 高频动作被排除以免刷爆日志：拖拽过程中的连续
// UPDATE_WAYPOINT 不记录，只记录拖拽的起止边界。
var loggedKinds = map[ActionKind]bool{
	ActionSetWaypoints:       true,
	ActionAddWaypoint:        true,
	ActionUpdateWaypoint:     true,
	ActionDeleteWaypoint:     true,
	ActionStartDrag:          true,
	ActionEndDrag:            true,
	ActionCreateGesturePath:  true,
	ActionAddLayer:           true,
	ActionRemoveLayer:        true,
	ActionUpdateLayerFields:  true,
	ActionUpdateLayerData:    true,
	ActionReorderLayers:      true,
	ActionToggleLayerVisible: true,
	ActionToggleLayerLock:    true,
	ActionMarkSaved:          true,
	ActionRevertToSaved:      true,
	ActionRestoreVersion:     true,
	ActionRestoreLogEntry:    true,
	ActionImportSession:      true,
}

// actionLabels 日志条目的显示文案
var actionLabels = map[ActionKind]string{
	ActionSetWaypoints:       "替换路径",
	ActionAddWaypoint:        "添加路径点",
	ActionUpdateWaypoint:     "修改路径点",
	ActionDeleteWaypoint:     "删除路径点",
	ActionStartDrag:          "开始拖拽",
	ActionEndDrag:            "结束拖拽",
	ActionCreateGesturePath:  "创建手势路径",
	ActionAddLayer:           "添加图层",
	ActionRemoveLayer:        "删除图层",
	ActionUpdateLayerFields:  "修改图层属性",
	ActionUpdateLayerData:    "修改图层内容",
	ActionReorderLayers:      "调整图层顺序",
	ActionToggleLayerVisible: "切换图层可见性",
	ActionToggleLayerLock:    "切换图层锁定",
	ActionMarkSaved:          "保存场景",
	ActionRevertToSaved:      "回退到保存点",
	ActionRestoreVersion:     "恢复历史版本",
	ActionRestoreLogEntry:    "从日志恢复",
	ActionImportSession:      "导入会话",
}

// shouldLog 判断动作是否写入活动日志
// 拖拽进行中的 UPDATE_WAYPOINT 被排除（prev 的拖拽索引非负）
func shouldLog(prev *State, action Action) bool {
	if !loggedKinds[action.Kind] {
		return false
	}
	if action.Kind == ActionUpdateWaypoint && prev.DragIndex >= 0 {
		return false
	}
	return true
}

// appendLog 向状态追加一条日志（限长，丢弃最旧）
// 快照记录动作执行后的会话核心
func appendLog(next *State, action Action) *State {
	entry := ActivityEntry{
		ID:       next.NextLogID,
		Time:     action.Time,
		Kind:     action.Kind,
		Label:    actionLabels[action.Kind],
		Snapshot: next.Core(),
	}

	logLen := len(next.ActivityLog)
	start := 0
	if logLen+1 > MaxActivityLog {
		start = logLen + 1 - MaxActivityLog
	}
	entries := make([]ActivityEntry, 0, logLen-start+1)
	entries = append(entries, next.ActivityLog[start:]...)
	entries = append(entries, entry)

	next.ActivityLog = entries
	next.NextLogID++
	return next
}
