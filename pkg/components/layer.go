package components

// LayerType 图层类型判别标签
type LayerType string

const (
	// LayerHand 手势路径图层
	LayerHand LayerType = "hand"

	// LayerZoom 镜头缩放图层
	LayerZoom LayerType = "zoom"

	// LayerAudio 音频提示图层
	LayerAudio LayerType = "audio"
)

// Layer 场景中一个有序的可编辑内容单元（标签联合）
//
// Type 决定 Hand/Zoom/Audio 三个数据指针中哪一个有效，消费方必须
// 对 Type 做穷举分支。图层由所属场景的图层列表独占持有，
// 不跨场景共享。所有修改都通过整体替换完成（不可变更新），
// 以便撤销系统用引用相等做廉价的变更检测。
type Layer struct {
	// ID 稳定唯一标识（会话级单调计数 + 创建时间戳）
	ID string

	// Type 判别标签：hand / zoom / audio
	Type LayerType

	// Scene 所属场景名
	Scene string

	// Name 显示名称
	Name string

	// Visible 是否可见
	Visible bool

	// Locked 是否锁定（锁定图层不接受编辑）
	Locked bool

	// Order 排序序号（越小越靠前）
	Order int

	// Hand 手势路径数据，仅 Type == LayerHand 时非 nil
	Hand *HandLayerData

	// Zoom 镜头数据，仅 Type == LayerZoom 时非 nil
	Zoom *ZoomLayerData

	// Audio 音频提示数据，仅 Type == LayerAudio 时非 nil
	Audio *AudioLayerData
}

// HandLayerData 手势路径图层的类型专属数据
type HandLayerData struct {
	Waypoints        []Waypoint
	Gesture          Gesture
	AnimationVariant string
	DarkVariant      bool
}

// ZoomLayerData 镜头图层的类型专属数据
type ZoomLayerData struct {
	Keyframes []ZoomKeyframe
}

// AudioLayerData 音频提示图层的类型专属数据
type AudioLayerData struct {
	File      string
	StartTime float64
	Duration  float64
	Volume    float64
}

// NewHandLayer 创建手势路径图层
//
// 参数：
//   - id: 由会话的 ID 生成器分配的唯一标识
//   - scene: 所属场景名
//   - name: 显示名称
//   - order: 排序序号
//   - data: 图层数据（路径点归调用方所有权转移）
func NewHandLayer(id, scene, name string, order int, data HandLayerData) Layer {
	return Layer{
		ID:      id,
		Type:    LayerHand,
		Scene:   scene,
		Name:    name,
		Visible: true,
		Locked:  false,
		Order:   order,
		Hand:    &data,
	}
}

// NewZoomLayer 创建镜头缩放图层
func NewZoomLayer(id, scene, name string, order int, data ZoomLayerData) Layer {
	return Layer{
		ID:      id,
		Type:    LayerZoom,
		Scene:   scene,
		Name:    name,
		Visible: true,
		Locked:  false,
		Order:   order,
		Zoom:    &data,
	}
}

// NewAudioLayer 创建音频提示图层
func NewAudioLayer(id, scene, name string, order int, data AudioLayerData) Layer {
	return Layer{
		ID:      id,
		Type:    LayerAudio,
		Scene:   scene,
		Name:    name,
		Visible: true,
		Locked:  false,
		Order:   order,
		Audio:   &data,
	}
}

// Clone 返回图层的深拷贝（含类型专属数据）
func (l Layer) Clone() Layer {
	cloned := l
	switch l.Type {
	case LayerHand:
		if l.Hand != nil {
			data := *l.Hand
			data.Waypoints = CloneWaypoints(l.Hand.Waypoints)
			cloned.Hand = &data
		}
	case LayerZoom:
		if l.Zoom != nil {
			data := *l.Zoom
			data.Keyframes = CloneZoomKeyframes(l.Zoom.Keyframes)
			cloned.Zoom = &data
		}
	case LayerAudio:
		if l.Audio != nil {
			data := *l.Audio
			cloned.Audio = &data
		}
	}
	return cloned
}

// WithHandWaypoints 返回替换了路径点数组的新手势图层
// 非手势图层原样返回
func (l Layer) WithHandWaypoints(waypoints []Waypoint) Layer {
	if l.Type != LayerHand || l.Hand == nil {
		return l
	}
	data := *l.Hand
	data.Waypoints = waypoints
	cloned := l
	cloned.Hand = &data
	return cloned
}

// LayerPatch 图层公共字段的部分更新
// nil 字段表示保持原值
type LayerPatch struct {
	Name    *string
	Visible *bool
	Locked  *bool
	Order   *int
}

// PatchFields 返回应用了公共字段补丁的新图层
func (l Layer) PatchFields(patch LayerPatch) Layer {
	cloned := l
	if patch.Name != nil {
		cloned.Name = *patch.Name
	}
	if patch.Visible != nil {
		cloned.Visible = *patch.Visible
	}
	if patch.Locked != nil {
		cloned.Locked = *patch.Locked
	}
	if patch.Order != nil {
		cloned.Order = *patch.Order
	}
	return cloned
}

// CloneLayers 深拷贝图层数组
func CloneLayers(layers []Layer) []Layer {
	if layers == nil {
		return nil
	}
	cloned := make([]Layer, len(layers))
	for i, l := range layers {
		cloned[i] = l.Clone()
	}
	return cloned
}
