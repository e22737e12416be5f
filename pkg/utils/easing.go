package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// CubicBezier 返回由控制点 (x1, y1)、(x2, y2) 定义的三次贝塞尔缓动曲线
// 首尾控制点固定为 (0, 0) 与 (1, 1)，与 CSS cubic-bezier() 相同
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	// 多项式系数：B(t) = ((a*t + b)*t + c)*t
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	sampleDX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	// solveT 求满足 x(t) = x 的参数 t：先牛顿迭代，不收敛时二分
	solveT := func(x float64) float64 {
		const epsilon = 1e-7

		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < epsilon {
				return t
			}
			d := sampleDX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 64 && lo < hi; i++ {
			xt := sampleX(t)
			if math.Abs(xt-x) < epsilon {
				return t
			}
			if x > xt {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solveT(t))
	}
}

// EaseStandard 标准 "ease" 曲线 cubic-bezier(0.42, 0, 1, 1)
// 特点：开始慢，结束快
var EaseStandard = CubicBezier(0.42, 0, 1, 1)

// EaseOut 把缓入曲线翻转为缓出曲线：f(t) = 1 - ease(1 - t)
func EaseOut(ease EasingFunc) EasingFunc {
	return func(t float64) float64 {
		return 1 - ease(1-t)
	}
}

// EaseOutStandard 涟漪使用的缓出曲线（开始快，结束慢）
var EaseOutStandard = EaseOut(EaseStandard)

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
