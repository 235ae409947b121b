package editor

import "fmt"

// IDGenerator 图层 ID 生成器（纯值类型）
//
// ID 由会话启动时的种子时间戳和单调递增计数器拼接而成：
// 计数器保证会话内唯一，时间戳保证跨会话重放 reducer 时
// 不与历史 ID 冲突。生成器由会话状态显式持有而非模块级
// 全局变量，使 ID 序列在测试中可复现。
type IDGenerator struct {
	// Seed 会话启动时间戳（毫秒）
	Seed int64

	// Counter 已分配数量
	Counter int
}

// NewIDGenerator 创建 ID 生成器
//
// 参数：
//   - seed: 种子时间戳（毫秒），测试中可传固定值
func NewIDGenerator(seed int64) IDGenerator {
	return IDGenerator{Seed: seed}
}

// Next 分配下一个 ID，返回 ID 和推进后的生成器
// 生成器是值类型，调用方必须保存返回的新生成器
func (g IDGenerator) Next() (string, IDGenerator) {
	g.Counter++
	return fmt.Sprintf("layer-%d-%d", g.Seed, g.Counter), g
}
