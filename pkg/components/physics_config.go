package components

// PhysicsConfig 运动物理配置
//
// 控制指针运动曲线的手感参数。所有字段都有完整默认值，
// 调用方通过 PhysicsOverrides 提供部分覆盖，合并到默认值之上。
// 纯配置数据，无生命周期。
type PhysicsConfig struct {
	// Smoothing 运动平滑强度（0 ~ 1）
	Smoothing float64 `yaml:"smoothing"`

	// RotationFactorX 水平速度对旋转的贡献权重
	RotationFactorX float64 `yaml:"rotationFactorX"`

	// RotationFactorY 垂直速度对旋转的贡献权重
	RotationFactorY float64 `yaml:"rotationFactorY"`

	// MaxRotation 旋转角度软上限（度），速度推导的旋转经 tanh 软钳制
	MaxRotation float64 `yaml:"maxRotation"`

	// FloatAmplitude 悬浮效果振幅（像素），0 表示关闭悬浮效果
	FloatAmplitude float64 `yaml:"floatAmplitude"`

	// FloatSpeed 悬浮效果角速度（弧度/帧）
	FloatSpeed float64 `yaml:"floatSpeed"`

	// ShadowEnabled 是否渲染投影
	ShadowEnabled bool `yaml:"shadowEnabled"`

	// ShadowOffsetX, ShadowOffsetY 投影偏移（像素）
	ShadowOffsetX float64 `yaml:"shadowOffsetX"`
	ShadowOffsetY float64 `yaml:"shadowOffsetY"`
}

// PhysicsOverrides 物理配置的部分覆盖
// nil 字段表示沿用默认值
type PhysicsOverrides struct {
	Smoothing       *float64 `yaml:"smoothing,omitempty"`
	RotationFactorX *float64 `yaml:"rotationFactorX,omitempty"`
	RotationFactorY *float64 `yaml:"rotationFactorY,omitempty"`
	MaxRotation     *float64 `yaml:"maxRotation,omitempty"`
	FloatAmplitude  *float64 `yaml:"floatAmplitude,omitempty"`
	FloatSpeed      *float64 `yaml:"floatSpeed,omitempty"`
	ShadowEnabled   *bool    `yaml:"shadowEnabled,omitempty"`
	ShadowOffsetX   *float64 `yaml:"shadowOffsetX,omitempty"`
	ShadowOffsetY   *float64 `yaml:"shadowOffsetY,omitempty"`
}

// DefaultPhysicsConfig 返回默认物理配置
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Smoothing:       0.15,
		RotationFactorX: 2.0,
		RotationFactorY: 1.0,
		MaxRotation:     15.0,
		FloatAmplitude:  3.0,
		FloatSpeed:      0.05,
		ShadowEnabled:   true,
		ShadowOffsetX:   4.0,
		ShadowOffsetY:   6.0,
	}
}

// MergePhysicsConfig 将部分覆盖合并到默认配置之上
//
// 参数：
//   - overrides: 部分覆盖，nil 表示完全使用默认值
//
// 返回：
//   - PhysicsConfig: 合并后的完整配置
func MergePhysicsConfig(overrides *PhysicsOverrides) PhysicsConfig {
	cfg := DefaultPhysicsConfig()
	if overrides == nil {
		return cfg
	}
	if overrides.Smoothing != nil {
		cfg.Smoothing = *overrides.Smoothing
	}
	if overrides.RotationFactorX != nil {
		cfg.RotationFactorX = *overrides.RotationFactorX
	}
	if overrides.RotationFactorY != nil {
		cfg.RotationFactorY = *overrides.RotationFactorY
	}
	if overrides.MaxRotation != nil {
		cfg.MaxRotation = *overrides.MaxRotation
	}
	if overrides.FloatAmplitude != nil {
		cfg.FloatAmplitude = *overrides.FloatAmplitude
	}
	if overrides.FloatSpeed != nil {
		cfg.FloatSpeed = *overrides.FloatSpeed
	}
	if overrides.ShadowEnabled != nil {
		cfg.ShadowEnabled = *overrides.ShadowEnabled
	}
	if overrides.ShadowOffsetX != nil {
		cfg.ShadowOffsetX = *overrides.ShadowOffsetX
	}
	if overrides.ShadowOffsetY != nil {
		cfg.ShadowOffsetY = *overrides.ShadowOffsetY
	}
	return cfg
}
