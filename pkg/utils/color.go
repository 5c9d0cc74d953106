package utils

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors 常用 CSS 颜色关键字
var namedColors = map[string]color.RGBA{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"navy":        {0, 0, 128, 255},
	"teal":        {0, 128, 128, 255},
	"aqua":        {0, 255, 255, 255},
	"cyan":        {0, 255, 255, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"silver":      {192, 192, 192, 255},
	"purple":      {128, 0, 128, 255},
	"orange":      {255, 165, 0, 255},
	"yellow":      {255, 255, 0, 255},
	"pink":        {255, 192, 203, 255},
}

// ParseCSSColor converts a CSS color string to RGBA.
//
// Supported forms: "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)" and a small set of keywords. ok is false for anything
// else (gradients, hsl(), var(...)); callers pass such values through to CSS
// unchanged and pick their own fallback for raster previews.
func ParseCSSColor(s string) (c color.RGBA, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if named, found := namedColors[s]; found {
		return named, true
	}

	if strings.HasPrefix(s, "#") {
		alpha := uint8(255)
		if len(s) == 9 {
			a, err := strconv.ParseUint(s[7:], 16, 8)
			if err != nil {
				return color.RGBA{}, false
			}
			alpha = uint8(a)
			s = s[:7]
		}
		hex, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := hex.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: alpha}, true
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		open := strings.Index(s, "(")
		if !strings.HasSuffix(s, ")") {
			return color.RGBA{}, false
		}
		parts := strings.Split(s[open+1:len(s)-1], ",")
		if len(parts) != 3 && len(parts) != 4 {
			return color.RGBA{}, false
		}
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil || v < 0 || v > 255 {
				return color.RGBA{}, false
			}
			ch[i] = uint8(math.Round(v))
		}
		alpha := uint8(255)
		if len(parts) == 4 {
			a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
			if err != nil || a < 0 || a > 1 {
				return color.RGBA{}, false
			}
			alpha = uint8(math.Round(a * 255))
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
	}

	return color.RGBA{}, false
}

// WithOpacity returns c with its alpha multiplied by opacity ∈ [0,1] and the
// color channels premultiplied, as ebiten and image/draw expect.
func WithOpacity(c color.RGBA, opacity float64) color.RGBA {
	opacity = clampUnit(opacity)
	a := float64(c.A) / 255 * opacity
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: uint8(math.Round(a * 255)),
	}
}

// HexColor formats c as "#rrggbb", ignoring alpha.
func HexColor(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// Blend composites fg at the given opacity over an opaque bg and returns an
// opaque color. fg's own alpha is multiplied in.
func Blend(bg, fg color.RGBA, opacity float64) color.RGBA {
	t := clampUnit(opacity) * float64(fg.A) / 255
	base := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	top := colorful.Color{R: float64(fg.R) / 255, G: float64(fg.G) / 255, B: float64(fg.B) / 255}
	r, g, b := base.BlendRgb(top, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
