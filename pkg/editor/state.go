// Package editor 实现场景编辑会话的状态机
//
// 核心是一个纯 reducer：Reduce(state, action) 返回新状态，
// 绝不修改输入。未被动作触及的子树在新旧状态间共享引用，
// 撤销系统依赖这一点做廉价的变更检测。
//
// reducer 对非法输入（越界索引、不存在的图层 ID）一律静默
// 忽略而不是抛出异常：交互会话中丢弃一次编辑好过崩溃。
package editor

import (
	"time"

	"github.com/decker502/handmotion/pkg/components"
)

// MaxActivityLog 活动日志的最大长度，超出后丢弃最旧条目
const MaxActivityLog = 50

// Tool 当前激活的编辑工具
type Tool string

const (
	// ToolSelect 选择/移动工具
	ToolSelect Tool = "select"

	// ToolAddWaypoint 添加路径点工具
	ToolAddWaypoint Tool = "addWaypoint"

	// ToolZoom 镜头关键帧工具
	ToolZoom Tool = "zoom"
)

// SceneSnapshot 单个场景的保存快照
// 由"标记已保存"写入，供 Revert 和版本恢复使用
type SceneSnapshot struct {
	Waypoints        []components.Waypoint `yaml:"waypoints"`
	Gesture          components.Gesture    `yaml:"gesture"`
	AnimationVariant string                `yaml:"animationVariant"`
	DarkVariant      bool                  `yaml:"darkVariant"`
}

// clone 深拷贝场景快照
func (s SceneSnapshot) clone() SceneSnapshot {
	cloned := s
	cloned.Waypoints = components.CloneWaypoints(s.Waypoints)
	return cloned
}

// SceneVersion 场景版本历史中的一条记录
type SceneVersion struct {
	// Number 版本号，从 1 开始自增
	Number int

	// Timestamp 版本创建时间
	Timestamp time.Time

	// Snapshot 该版本的场景内容
	Snapshot SceneSnapshot
}

// ActivityEntry 活动日志条目
//
// Snapshot 保存动作执行后的完整会话核心，"从日志恢复"
// 会把整个会话（而不只是单个场景）回到该时刻。
type ActivityEntry struct {
	ID       int
	Time     time.Time
	Kind     ActionKind
	Label    string
	Snapshot StateCore
}

// StateCore 会话状态中可快照/可导入的核心部分
//
// 活动日志恢复和会话导入都以它为载体。字段均为深拷贝，
// 与活动状态不共享可变数据。
type StateCore struct {
	CompositionID   string
	SelectedScene   string
	SceneGestures   map[string]components.Gesture
	SceneAnimations map[string]string
	SceneDark       map[string]bool
	SceneWaypoints  map[string][]components.Waypoint
	SceneLayers     map[string][]components.Layer
	ClearedScenes   map[string]bool
}

// State 编辑会话的唯一事实来源
//
// 会话启动时创建（可从持久化快照再水化），只通过 reducer 变更，
// 会话结束时随垃圾回收销毁，无显式析构。
type State struct {
	// CompositionID 当前合成（作品）ID
	CompositionID string

	// SelectedScene 当前选中的场景名
	SelectedScene string

	// ActiveTool 当前激活的编辑工具
	ActiveTool Tool

	// SceneGestures 各场景的手势选择
	SceneGestures map[string]components.Gesture

	// SceneAnimations 各场景的动画变体选择
	SceneAnimations map[string]string

	// SceneDark 各场景的暗色变体开关
	SceneDark map[string]bool

	// SceneWaypoints 各场景的主路径（扁平路径点表）
	// 不变量：始终与该场景第一个手势图层的 data.Waypoints 互为镜像
	SceneWaypoints map[string][]components.Waypoint

	// SceneLayers 各场景的有序图层列表（独占持有全部图层记录）
	SceneLayers map[string][]components.Layer

	// SelectedWaypoint 选中的路径点索引，-1 表示无选中
	SelectedWaypoint int

	// SelectedLayerID 选中的图层 ID，空串表示无选中
	SelectedLayerID string

	// DragIndex 拖拽中的路径点索引，-1 表示当前没有拖拽
	DragIndex int

	// ClearedScenes 用户显式清空过图层的场景集合
	// 置位后 EnsureSceneLayers 不再采用内置默认内容
	ClearedScenes map[string]bool

	// ActivityLog 追加式活动日志（限长）
	ActivityLog []ActivityEntry

	// NextLogID 下一条日志条目 ID
	NextLogID int

	// SceneSaved 各场景的保存快照（Revert 的基线）
	SceneSaved map[string]SceneSnapshot

	// SceneVersions 各场景的版本历史
	SceneVersions map[string][]SceneVersion

	// PreviewMode 预览播放模式开关
	PreviewMode bool

	// ShowTrail 轨迹叠加显示开关
	ShowTrail bool

	// ExportPanelOpen 导出/导入面板开关
	ExportPanelOpen bool

	// IDGen 图层 ID 生成器（会话持有，保证可复现）
	IDGen IDGenerator
}

// NewState 创建新的编辑会话状态
//
// 参数：
//   - compositionID: 合成 ID
//   - idSeed: ID 生成器种子（通常为会话启动时间戳毫秒值）
func NewState(compositionID string, idSeed int64) *State {
	return &State{
		CompositionID:    compositionID,
		ActiveTool:       ToolSelect,
		SceneGestures:    map[string]components.Gesture{},
		SceneAnimations:  map[string]string{},
		SceneDark:        map[string]bool{},
		SceneWaypoints:   map[string][]components.Waypoint{},
		SceneLayers:      map[string][]components.Layer{},
		SelectedWaypoint: -1,
		DragIndex:        -1,
		ClearedScenes:    map[string]bool{},
		SceneSaved:       map[string]SceneSnapshot{},
		SceneVersions:    map[string][]SceneVersion{},
		NextLogID:        1,
		IDGen:            NewIDGenerator(idSeed),
	}
}

// clone 返回状态的浅层写时复制副本
//
// 结构体按值复制，所有 map 复制头（键值引用原数据）。
// 修改某个场景的数据前，调用方写入新的切片/值即可，
// 其余场景的子树仍与旧状态共享引用。
func (s *State) clone() *State {
	next := *s

	next.SceneGestures = make(map[string]components.Gesture, len(s.SceneGestures))
	for k, v := range s.SceneGestures {
		next.SceneGestures[k] = v
	}
	next.SceneAnimations = make(map[string]string, len(s.SceneAnimations))
	for k, v := range s.SceneAnimations {
		next.SceneAnimations[k] = v
	}
	next.SceneDark = make(map[string]bool, len(s.SceneDark))
	for k, v := range s.SceneDark {
		next.SceneDark[k] = v
	}
	next.SceneWaypoints = make(map[string][]components.Waypoint, len(s.SceneWaypoints))
	for k, v := range s.SceneWaypoints {
		next.SceneWaypoints[k] = v
	}
	next.SceneLayers = make(map[string][]components.Layer, len(s.SceneLayers))
	for k, v := range s.SceneLayers {
		next.SceneLayers[k] = v
	}
	next.ClearedScenes = make(map[string]bool, len(s.ClearedScenes))
	for k, v := range s.ClearedScenes {
		next.ClearedScenes[k] = v
	}
	next.SceneSaved = make(map[string]SceneSnapshot, len(s.SceneSaved))
	for k, v := range s.SceneSaved {
		next.SceneSaved[k] = v
	}
	next.SceneVersions = make(map[string][]SceneVersion, len(s.SceneVersions))
	for k, v := range s.SceneVersions {
		next.SceneVersions[k] = v
	}
	return &next
}

// Core 提取会话核心的深拷贝（用于日志快照和导出）
func (s *State) Core() StateCore {
	core := StateCore{
		CompositionID:   s.CompositionID,
		SelectedScene:   s.SelectedScene,
		SceneGestures:   map[string]components.Gesture{},
		SceneAnimations: map[string]string{},
		SceneDark:       map[string]bool{},
		SceneWaypoints:  map[string][]components.Waypoint{},
		SceneLayers:     map[string][]components.Layer{},
		ClearedScenes:   map[string]bool{},
	}
	for k, v := range s.SceneGestures {
		core.SceneGestures[k] = v
	}
	for k, v := range s.SceneAnimations {
		core.SceneAnimations[k] = v
	}
	for k, v := range s.SceneDark {
		core.SceneDark[k] = v
	}
	for k, v := range s.SceneWaypoints {
		core.SceneWaypoints[k] = components.CloneWaypoints(v)
	}
	for k, v := range s.SceneLayers {
		core.SceneLayers[k] = components.CloneLayers(v)
	}
	for k, v := range s.ClearedScenes {
		core.ClearedScenes[k] = v
	}
	return core
}

// applyCore 返回应用了会话核心的新状态
// 活动日志、版本历史和 ID 生成器保持当前值
func (s *State) applyCore(core StateCore) *State {
	next := s.clone()
	next.CompositionID = core.CompositionID
	next.SelectedScene = core.SelectedScene

	next.SceneGestures = map[string]components.Gesture{}
	for k, v := range core.SceneGestures {
		next.SceneGestures[k] = v
	}
	next.SceneAnimations = map[string]string{}
	for k, v := range core.SceneAnimations {
		next.SceneAnimations[k] = v
	}
	next.SceneDark = map[string]bool{}
	for k, v := range core.SceneDark {
		next.SceneDark[k] = v
	}
	next.SceneWaypoints = map[string][]components.Waypoint{}
	for k, v := range core.SceneWaypoints {
		next.SceneWaypoints[k] = components.CloneWaypoints(v)
	}
	next.SceneLayers = map[string][]components.Layer{}
	for k, v := range core.SceneLayers {
		next.SceneLayers[k] = components.CloneLayers(v)
	}
	next.ClearedScenes = map[string]bool{}
	for k, v := range core.ClearedScenes {
		next.ClearedScenes[k] = v
	}

	// 恢复后选择游标可能指向已不存在的对象，一律重置
	next.SelectedWaypoint = -1
	next.SelectedLayerID = ""
	next.DragIndex = -1
	return next
}

// FindLayer 按 ID 查找场景中的图层，返回索引；未找到返回 -1
func (s *State) FindLayer(scene, layerID string) int {
	for i, layer := range s.SceneLayers[scene] {
		if layer.ID == layerID {
			return i
		}
	}
	return -1
}

// PrimaryHandLayerIndex 返回场景中第一个手势图层的索引；没有返回 -1
// 该图层是场景扁平路径表的镜像（"主路径"图层）
func (s *State) PrimaryHandLayerIndex(scene string) int {
	for i, layer := range s.SceneLayers[scene] {
		if layer.Type == components.LayerHand {
			return i
		}
	}
	return -1
}

// sceneSnapshot 提取某场景当前内容的快照
func (s *State) sceneSnapshot(scene string) SceneSnapshot {
	return SceneSnapshot{
		Waypoints:        components.CloneWaypoints(s.SceneWaypoints[scene]),
		Gesture:          s.SceneGestures[scene].Normalize(),
		AnimationVariant: s.SceneAnimations[scene],
		DarkVariant:      s.SceneDark[scene],
	}
}
