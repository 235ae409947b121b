package session

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/handmotion/pkg/editor"
)

// 存储路径常量
const (
	sessionObject   = "session"
	sessionProperty = "current"
)

// SessionManager 会话持久化管理器
//
// 负责把编辑会话的核心内容保存到 gdata 跨平台存储并在下次
// 启动时再水化。由宿主（应用层）调用，核心状态机不感知它。
type SessionManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
}

// NewSessionManager 创建会话持久化管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，nil 表示降级模式（不持久化，
//     保存静默成功、加载返回"不存在"）
func NewSessionManager(gdataManager *gdata.Manager) *SessionManager {
	return &SessionManager{gdataManager: gdataManager}
}

// Exists 是否存在已保存的会话快照
func (sm *SessionManager) Exists() bool {
	if sm.gdataManager == nil {
		return false
	}
	return sm.gdataManager.ObjectPropExists(sessionObject, sessionProperty)
}

// Save 把会话状态的核心内容保存到存储
//
// 降级模式下返回 nil（不报错）。
//
// 参数：
//   - state: 当前会话状态
//
// 返回：
//   - error: 序列化或写入失败时返回错误
func (sm *SessionManager) Save(state *editor.State) error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(FromState(state))
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}

	log.Printf("[SessionManager] 会话快照已保存")
	return nil
}

// Load 从存储加载会话快照
//
// 返回：
//   - *Snapshot: 快照，不存在时为 nil
//   - error: 读取或反序列化失败时返回错误
func (sm *SessionManager) Load() (*Snapshot, error) {
	if sm.gdataManager == nil || !sm.Exists() {
		return nil, nil
	}

	data, err := sm.gdataManager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session snapshot: %w", err)
	}

	if snapshot.Version > SnapshotVersion {
		return nil, fmt.Errorf("session snapshot version %d is newer than supported %d", snapshot.Version, SnapshotVersion)
	}

	log.Printf("[SessionManager] 会话快照已加载 (version=%d)", snapshot.Version)
	return &snapshot, nil
}

// Restore 把已保存的快照再水化为会话状态
//
// 不存在快照时返回全新状态。加载失败不是致命错误：
// 记录日志并回退到全新状态。
//
// 参数：
//   - compositionID: 快照缺失/无效时使用的合成 ID
//   - idSeed: 新状态的 ID 生成器种子
func (sm *SessionManager) Restore(compositionID string, idSeed int64) *editor.State {
	snapshot, err := sm.Load()
	if err != nil {
		log.Printf("[SessionManager] Warning: failed to restore session: %v (starting fresh)", err)
		return editor.NewState(compositionID, idSeed)
	}
	if snapshot == nil {
		return editor.NewState(compositionID, idSeed)
	}

	core := snapshot.ToCore()
	if core.CompositionID == "" {
		// 旧快照可能缺失合成 ID，逐字段合并时回落到调用方提供的默认值
		core.CompositionID = compositionID
	}

	state := editor.NewState(compositionID, idSeed)
	return editor.Reduce(state, editor.Action{
		Kind: editor.ActionImportSession,
		Core: &core,
	})
}
