// Package session 负责编辑会话的持久化
//
// 会话核心被序列化为带版本号的快照结构，通过 gdata 跨平台
// 存储落盘（YAML 载荷）。加载时逐字段合并到默认值之上，
// 而不是盲目整体覆盖——格式演进时旧快照缺失的字段取默认值，
// 多余的陌生字段被忽略。
package session

import (
	"github.com/decker502/handmotion/pkg/components"
	"github.com/decker502/handmotion/pkg/editor"
)

// SnapshotVersion 当前快照格式版本号
const SnapshotVersion = 1

// LayerRecord 图层的持久化形态
//
// 三类数据指针通过 omitempty 只序列化实际存在的一支。
type LayerRecord struct {
	ID      string               `yaml:"id"`
	Type    components.LayerType `yaml:"type"`
	Scene   string               `yaml:"scene"`
	Name    string               `yaml:"name"`
	Visible bool                 `yaml:"visible"`
	Locked  bool                 `yaml:"locked"`
	Order   int                  `yaml:"order"`

	Hand  *HandDataRecord  `yaml:"hand,omitempty"`
	Zoom  *ZoomDataRecord  `yaml:"zoom,omitempty"`
	Audio *AudioDataRecord `yaml:"audio,omitempty"`
}

// HandDataRecord 手势图层数据的持久化形态
type HandDataRecord struct {
	Waypoints        []components.Waypoint `yaml:"waypoints"`
	Gesture          components.Gesture    `yaml:"gesture"`
	AnimationVariant string                `yaml:"animationVariant,omitempty"`
	DarkVariant      bool                  `yaml:"darkVariant,omitempty"`
}

// ZoomDataRecord 镜头图层数据的持久化形态
type ZoomDataRecord struct {
	Keyframes []components.ZoomKeyframe `yaml:"keyframes"`
}

// AudioDataRecord 音频图层数据的持久化形态
type AudioDataRecord struct {
	File      string  `yaml:"file"`
	StartTime float64 `yaml:"startTime"`
	Duration  float64 `yaml:"duration"`
	Volume    float64 `yaml:"volume"`
}

// Snapshot 会话的持久化快照（带版本号）
//
// 只持久化会话核心的编辑内容子集：合成 ID、选择、各场景的
// 手势/动画/暗色选择、图层和路径点。活动日志、撤销历史和
// UI 开关不落盘。
type Snapshot struct {
	Version         int                                `yaml:"version"`
	CompositionID   string                             `yaml:"compositionId,omitempty"`
	SelectedScene   string                             `yaml:"selectedScene,omitempty"`
	SceneGestures   map[string]components.Gesture      `yaml:"sceneGestures,omitempty"`
	SceneAnimations map[string]string                  `yaml:"sceneAnimations,omitempty"`
	SceneDark       map[string]bool                    `yaml:"sceneDark,omitempty"`
	SceneWaypoints  map[string][]components.Waypoint   `yaml:"sceneWaypoints,omitempty"`
	SceneLayers     map[string][]LayerRecord           `yaml:"sceneLayers,omitempty"`
	ClearedScenes   map[string]bool                    `yaml:"clearedScenes,omitempty"`
}

// FromState 从会话状态提取持久化快照
func FromState(s *editor.State) *Snapshot {
	core := s.Core()
	snapshot := &Snapshot{
		Version:         SnapshotVersion,
		CompositionID:   core.CompositionID,
		SelectedScene:   core.SelectedScene,
		SceneGestures:   core.SceneGestures,
		SceneAnimations: core.SceneAnimations,
		SceneDark:       core.SceneDark,
		SceneWaypoints:  core.SceneWaypoints,
		ClearedScenes:   core.ClearedScenes,
		SceneLayers:     map[string][]LayerRecord{},
	}
	for scene, layers := range core.SceneLayers {
		records := make([]LayerRecord, len(layers))
		for i, layer := range layers {
			records[i] = layerToRecord(layer)
		}
		snapshot.SceneLayers[scene] = records
	}
	return snapshot
}

// ToCore 把快照展开为可导入的会话核心
//
// 逐字段合并：nil 的 map 字段替换为空 map，保证导入后的状态
// 不携带 nil 容器。
func (snap *Snapshot) ToCore() editor.StateCore {
	core := editor.StateCore{
		CompositionID:   snap.CompositionID,
		SelectedScene:   snap.SelectedScene,
		SceneGestures:   map[string]components.Gesture{},
		SceneAnimations: map[string]string{},
		SceneDark:       map[string]bool{},
		SceneWaypoints:  map[string][]components.Waypoint{},
		SceneLayers:     map[string][]components.Layer{},
		ClearedScenes:   map[string]bool{},
	}
	for k, v := range snap.SceneGestures {
		core.SceneGestures[k] = v
	}
	for k, v := range snap.SceneAnimations {
		core.SceneAnimations[k] = v
	}
	for k, v := range snap.SceneDark {
		core.SceneDark[k] = v
	}
	for k, v := range snap.SceneWaypoints {
		core.SceneWaypoints[k] = components.CloneWaypoints(v)
	}
	for k, records := range snap.SceneLayers {
		layers := make([]components.Layer, 0, len(records))
		for _, record := range records {
			if layer, ok := recordToLayer(record); ok {
				layers = append(layers, layer)
			}
		}
		core.SceneLayers[k] = layers
	}
	for k, v := range snap.ClearedScenes {
		core.ClearedScenes[k] = v
	}
	return core
}

// layerToRecord 图层 -> 持久化记录
func layerToRecord(layer components.Layer) LayerRecord {
	record := LayerRecord{
		ID:      layer.ID,
		Type:    layer.Type,
		Scene:   layer.Scene,
		Name:    layer.Name,
		Visible: layer.Visible,
		Locked:  layer.Locked,
		Order:   layer.Order,
	}
	switch layer.Type {
	case components.LayerHand:
		if layer.Hand != nil {
			record.Hand = &HandDataRecord{
				Waypoints:        components.CloneWaypoints(layer.Hand.Waypoints),
				Gesture:          layer.Hand.Gesture,
				AnimationVariant: layer.Hand.AnimationVariant,
				DarkVariant:      layer.Hand.DarkVariant,
			}
		}
	case components.LayerZoom:
		if layer.Zoom != nil {
			record.Zoom = &ZoomDataRecord{
				Keyframes: components.CloneZoomKeyframes(layer.Zoom.Keyframes),
			}
		}
	case components.LayerAudio:
		if layer.Audio != nil {
			record.Audio = &AudioDataRecord{
				File:      layer.Audio.File,
				StartTime: layer.Audio.StartTime,
				Duration:  layer.Audio.Duration,
				Volume:    layer.Audio.Volume,
			}
		}
	}
	return record
}

// recordToLayer 持久化记录 -> 图层
// 类型与数据不匹配的陈旧记录被丢弃（ok=false）
func recordToLayer(record LayerRecord) (components.Layer, bool) {
	layer := components.Layer{
		ID:      record.ID,
		Type:    record.Type,
		Scene:   record.Scene,
		Name:    record.Name,
		Visible: record.Visible,
		Locked:  record.Locked,
		Order:   record.Order,
	}
	switch record.Type {
	case components.LayerHand:
		if record.Hand == nil {
			return components.Layer{}, false
		}
		layer.Hand = &components.HandLayerData{
			Waypoints:        components.CloneWaypoints(record.Hand.Waypoints),
			Gesture:          record.Hand.Gesture,
			AnimationVariant: record.Hand.AnimationVariant,
			DarkVariant:      record.Hand.DarkVariant,
		}
	case components.LayerZoom:
		if record.Zoom == nil {
			return components.Layer{}, false
		}
		layer.Zoom = &components.ZoomLayerData{
			Keyframes: components.CloneZoomKeyframes(record.Zoom.Keyframes),
		}
	case components.LayerAudio:
		if record.Audio == nil {
			return components.Layer{}, false
		}
		layer.Audio = &components.AudioLayerData{
			File:      record.Audio.File,
			StartTime: record.Audio.StartTime,
			Duration:  record.Audio.Duration,
			Volume:    record.Audio.Volume,
		}
	default:
		return components.Layer{}, false
	}
	return layer, true
}
