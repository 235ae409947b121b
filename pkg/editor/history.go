package editor

// MaxHistoryDepth 撤销栈的最大深度，超出后丢弃最旧条目
const MaxHistoryDepth = 50

// undoableKinds 进入撤销历史的动作类型白名单
//
// 白名单之外的动作（工具/场景选择、预览与轨迹开关等纯导航）
// 只更新 present，既不压栈也不清空重做栈——只有真正的新编辑
// 才使重做失效。
var undoableKinds = map[ActionKind]bool{
	ActionSetWaypoints:       true,
	ActionAddWaypoint:        true,
	ActionUpdateWaypoint:     true,
	ActionDeleteWaypoint:     true,
	ActionStartDrag:          true,
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

// History 撤销/重做包装层
//
// 以 past/present/future 三段包装裸 reducer。一次拖拽手势的
// 大量中间更新合并为单个撤销步：进入撤销历史的条目在拖拽
// 开始（START_DRAG）时压入，拖拽中的 UPDATE_WAYPOINT 只更新
// present。
type History struct {
	// Past 撤销栈（最旧在前）
	Past []*State

	// Present 当前状态
	Present *State

	// Future 重做栈（最近撤销的在末尾）
	Future []*State

	// Limit 撤销栈深度上限
	Limit int
}

// NewHistory 创建撤销包装层
func NewHistory(initial *State) *History {
	return &History{
		Present: initial,
		Limit:   MaxHistoryDepth,
	}
}

// Dispatch 派发一个动作
//
// UNDO/REDO 在栈边界上是 no-op 而非错误。其余动作交给
// Reduce，按类型决定是否推进撤销历史。
func (h *History) Dispatch(action Action) {
	switch action.Kind {
	case ActionUndo:
		h.undo()
	case ActionRedo:
		h.redo()
	default:
		h.apply(action)
	}
}

// apply 执行一个普通动作
func (h *History) apply(action Action) {
	next := Reduce(h.Present, action)
	if next == h.Present {
		// no-op 编辑不产生历史条目
		return
	}

	if h.isUndoableNow(action) {
		h.Past = append(h.Past, h.Present)
		if len(h.Past) > h.Limit {
			h.Past = h.Past[len(h.Past)-h.Limit:]
		}
		h.Future = nil
	}
	h.Present = next
}

// isUndoableNow 判断动作此刻是否推进撤销历史
//
// 拖拽进行中的 UPDATE_WAYPOINT 被合并：历史条目已在
// START_DRAG 时压入，这里只更新 present。
func (h *History) isUndoableNow(action Action) bool {
	if !undoableKinds[action.Kind] {
		return false
	}
	if action.Kind == ActionUpdateWaypoint && h.Present.DragIndex >= 0 {
		return false
	}
	return true
}

// undo 撤销一步（空栈 no-op）
func (h *History) undo() {
	if len(h.Past) == 0 {
		return
	}
	previous := h.Past[len(h.Past)-1]
	h.Past = h.Past[:len(h.Past)-1]
	h.Future = append(h.Future, h.Present)
	h.Present = previous
}

// redo 重做一步（空栈 no-op）
func (h *History) redo() {
	if len(h.Future) == 0 {
		return
	}
	next := h.Future[len(h.Future)-1]
	h.Future = h.Future[:len(h.Future)-1]
	h.Past = append(h.Past, h.Present)
	h.Present = next
}

// CanUndo 撤销栈是否非空
func (h *History) CanUndo() bool {
	return len(h.Past) > 0
}

// CanRedo 重做栈是否非空
func (h *History) CanRedo() bool {
	return len(h.Future) > 0
}
