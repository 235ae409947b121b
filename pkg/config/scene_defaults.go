// Package config 提供合成的内置默认内容（coded defaults）
//
// 嵌入应用为每个场景预置一条默认手势路径和一组默认音频提示，
// 编辑器在场景首次访问时把它们物化为可编辑图层，
// 或在开启轨迹显示时把默认路径采纳进手工路径表。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/handmotion/pkg/components"
)

// AudioCue 单条默认音频提示
type AudioCue struct {
	File      string  `yaml:"file"`      // 音频文件名，如 "click.ogg"
	StartTime float64 `yaml:"startTime"` // 起始偏移（帧）
	Duration  float64 `yaml:"duration"`  // 时长（帧）
	Volume    float64 `yaml:"volume"`    // 音量 0.0 ~ 1.0
}

// SceneDefault 单个场景的内置默认内容
type SceneDefault struct {
	// Gesture 默认手势标签，空值按 pointer 处理
	Gesture components.Gesture `yaml:"gesture,omitempty"`

	// Waypoints 默认手势路径，空表示该场景没有内置路径
	Waypoints []components.Waypoint `yaml:"waypoints,omitempty"`

	// AudioCues 默认音频提示列表
	AudioCues []AudioCue `yaml:"audioCues,omitempty"`
}

// HasPath 该场景是否携带内置默认路径
func (d *SceneDefault) HasPath() bool {
	return d != nil && len(d.Waypoints) > 0
}

// SceneDefaults 一个合成的全部场景默认内容
type SceneDefaults struct {
	// CompositionID 所属合成 ID
	CompositionID string `yaml:"compositionId"`

	// Scenes 场景名 -> 默认内容
	Scenes map[string]SceneDefault `yaml:"scenes"`
}

// Lookup 查找指定场景的默认内容，不存在返回 nil
func (d *SceneDefaults) Lookup(scene string) *SceneDefault {
	if d == nil {
		return nil
	}
	def, ok := d.Scenes[scene]
	if !ok {
		return nil
	}
	return &def
}

// LoadSceneDefaults 从 YAML 文件加载场景默认内容
//
// 参数：
//
//	path - 默认内容配置文件路径
//
// 返回：
//
//	*SceneDefaults - 解析后的默认内容
//	error - 文件读取或解析失败时返回错误
func LoadSceneDefaults(path string) (*SceneDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene defaults file %s: %w", path, err)
	}

	var defaults SceneDefaults
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse scene defaults YAML from %s: %w", path, err)
	}

	if err := ValidateSceneDefaults(&defaults); err != nil {
		return nil, fmt.Errorf("invalid scene defaults in %s: %w", path, err)
	}
	return &defaults, nil
}

// ValidateSceneDefaults 校验默认内容的字段取值
//
// 校验规则：
//   - 音频提示的音量必须在 0 ~ 1 之间
//   - 音频提示的时长必须为正
//   - 路径点的显式时间不允许为负
func ValidateSceneDefaults(defaults *SceneDefaults) error {
	if defaults == nil {
		return fmt.Errorf("defaults is nil")
	}
	for scene, def := range defaults.Scenes {
		for i, cue := range def.AudioCues {
			if cue.Volume < 0 || cue.Volume > 1 {
				return fmt.Errorf("scene %s audio cue %d: volume %v out of range [0,1]", scene, i, cue.Volume)
			}
			if cue.Duration <= 0 {
				return fmt.Errorf("scene %s audio cue %d: duration %v must be positive", scene, i, cue.Duration)
			}
			if cue.File == "" {
				return fmt.Errorf("scene %s audio cue %d: file is empty", scene, i)
			}
		}
		for i, wp := range def.Waypoints {
			if wp.Time != nil && *wp.Time < 0 {
				return fmt.Errorf("scene %s waypoint %d: negative time %d", scene, i, *wp.Time)
			}
		}
	}
	return nil
}
