package generator

import (
	"github.com/decker502/wavebanner/pkg/config"
	"github.com/decker502/wavebanner/pkg/utils"
)

// timingFunctions 动画风格 → 缓动曲线
var timingFunctions = map[config.AnimationStyle]utils.TimingFunction{
	config.StyleSmooth:    utils.CubicBezier{X1: 0.55, Y1: 0.5, X2: 0.45, Y2: 0.5},
	config.StyleLinear:    utils.Linear{},
	config.StyleEaseInOut: utils.CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1},
	config.StyleBouncy:    utils.CubicBezier{X1: 0.68, Y1: -0.55, X2: 0.265, Y2: 1.55},
	config.StyleGentle:    utils.CubicBezier{X1: 0.25, Y1: 0.46, X2: 0.45, Y2: 0.94},
}

// TimingFor returns the timing curve for style; unknown styles get smooth's curve.
func TimingFor(style config.AnimationStyle) utils.TimingFunction {
	if fn, ok := timingFunctions[style]; ok {
		return fn
	}
	return timingFunctions[config.StyleSmooth]
}

// Easing returns the CSS animation-timing-function value for style.
func Easing(style config.AnimationStyle) string {
	return TimingFor(style).String()
}
