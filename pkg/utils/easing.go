package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Easing Functions (缓动函数)
//
// CSS 动画的 timing function 在这里以可求值的形式实现，
// 预览工具用它们把线性进度 t ∈ [0, 1] 映射为缓动后的进度。
//
// 参考：https://www.w3.org/TR/css-easing-1/

// TimingFunction maps linear progress t ∈ [0, 1] to eased progress and
// formats itself as a CSS animation-timing-function value.
type TimingFunction interface {
	Ease(t float64) float64
	String() string
}

// Linear 线性缓动（无缓动）
type Linear struct{}

// Ease 返回值 = 输入值（匀速运动）
func (Linear) Ease(t float64) float64 { return clampUnit(t) }

func (Linear) String() string { return "linear" }

// CubicBezier 三次贝塞尔缓动
// P0 = (0,0)，P3 = (1,1)，P1/P2 为控制点
// Y1/Y2 可以超出 [0,1]，形成回弹效果
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Ease 对给定的 x 进度求 y
// 先用牛顿迭代求参数 s 使 x(s) = t，失败时退化为二分法
func (c CubicBezier) Ease(t float64) float64 {
	t = clampUnit(t)
	if t == 0 || t == 1 {
		return t
	}

	s := t
	for i := 0; i < 8; i++ {
		x := bezierAxis(s, c.X1, c.X2) - t
		if math.Abs(x) < 1e-7 {
			return bezierAxis(s, c.Y1, c.Y2)
		}
		d := bezierAxisDerivative(s, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
		if s < 0 || s > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	s = t
	for i := 0; i < 50; i++ {
		x := bezierAxis(s, c.X1, c.X2)
		if math.Abs(x-t) < 1e-7 {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezierAxis(s, c.Y1, c.Y2)
}

// String 格式化为 CSS：cubic-bezier(0.55, 0.5, 0.45, 0.5)
func (c CubicBezier) String() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		formatCoord(c.X1), formatCoord(c.Y1), formatCoord(c.X2), formatCoord(c.Y2))
}

// ParseTimingFunction 解析 CSS timing function 字符串
// 支持 "linear"、"ease"、"ease-in"、"ease-out"、"ease-in-out" 与 "cubic-bezier(a, b, c, d)"
func ParseTimingFunction(s string) (TimingFunction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "linear":
		return Linear{}, nil
	case "ease":
		return CubicBezier{0.25, 0.1, 0.25, 1}, nil
	case "ease-in":
		return CubicBezier{0.42, 0, 1, 1}, nil
	case "ease-out":
		return CubicBezier{0, 0, 0.58, 1}, nil
	case "ease-in-out":
		return CubicBezier{0.42, 0, 0.58, 1}, nil
	}

	if !strings.HasPrefix(s, "cubic-bezier(") || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("unsupported timing function %q", s)
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(s, "cubic-bezier("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("cubic-bezier needs 4 values, got %d", len(parts))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("cubic-bezier value %q: %w", p, err)
		}
		v[i] = f
	}
	if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
		return nil, fmt.Errorf("cubic-bezier x values must lie within [0,1]: %q", s)
	}
	return CubicBezier{v[0], v[1], v[2], v[3]}, nil
}

// bezierAxis evaluates one axis of the curve with endpoints fixed at 0 and 1.
func bezierAxis(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierAxisDerivative(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

func clampUnit(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
