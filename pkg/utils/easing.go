package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad 二次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 2t²
//	t >= 0.5: f(t) = 1 - (-2t + 2)² / 2
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于旋转收敛等"落向目标"的插值）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// SmoothBezier 固定三次贝塞尔缓动
//
// 控制点 (0.25, 0.1) 和 (0.25, 1.0)，即 CSS "ease" 曲线，
// 提供"加速-减速"的自然手感。位置插值统一使用该曲线。
//
// 实现：贝塞尔曲线以参数形式给出 (x(u), y(u))，需要先由 t 解出
// 参数 u 使 x(u) = t（牛顿迭代，必要时回退二分），再求 y(u)。
func SmoothBezier(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := solveBezierX(t, 0.25, 0.25)
	return cubicBezier(u, 0.1, 1.0)
}

// cubicBezier 求一维三次贝塞尔分量值（端点固定为 0 和 1）
func cubicBezier(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

// cubicBezierDeriv 一维三次贝塞尔分量的导数
func cubicBezierDeriv(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

// solveBezierX 解出满足 x(u) = x 的参数 u
// 先做 8 轮牛顿迭代；导数过小时回退到二分查找
func solveBezierX(x, x1, x2 float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		dx := cubicBezier(u, x1, x2) - x
		if math.Abs(dx) < 1e-7 {
			return u
		}
		d := cubicBezierDeriv(u, x1, x2)
		if math.Abs(d) < 1e-7 {
			break
		}
		u -= dx / d
	}

	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 32; i++ {
		cx := cubicBezier(u, x1, x2)
		if math.Abs(cx-x) < 1e-7 {
			break
		}
		if cx < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
