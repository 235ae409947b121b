package components

// MotionState 运动引擎在某一时刻的求值结果（瞬态数据）
//
// 每次查询重新计算，绝不持久化。渲染层根据它绘制指针。
type MotionState struct {
	// X, Y 当前位置（画布像素）
	X float64
	Y float64

	// Rotation 当前旋转角度（度）
	Rotation float64

	// Scale 当前缩放倍率
	Scale float64

	// Gesture 当前手势标签
	Gesture Gesture

	// VelocityX, VelocityY 当前速度（像素/帧）
	VelocityX float64
	VelocityY float64

	// IsMoving 是否处于运动中（用于渲染层决定是否显示运动模糊式投影）
	IsMoving bool
}

// NeutralMotionState 返回空路径对应的中性默认状态
func NeutralMotionState() MotionState {
	return MotionState{
		X:        0,
		Y:        0,
		Rotation: 0,
		Scale:    1.0,
		Gesture:  GesturePointer,
		IsMoving: false,
	}
}
