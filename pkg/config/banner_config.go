package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/decker502/wavebanner/internal/wave"
)

// Attribute names recognized by the banner.
const (
	AttrWaveColor              = "wave-color"
	AttrBackgroundColor        = "background-color"
	AttrHeight                 = "height"
	AttrSpeed                  = "speed"
	AttrOpacityRange           = "opacity-range"
	AttrWaveCount              = "wave-count"
	AttrAnimationStyle         = "animation-style"
	AttrPosition               = "position"
	AttrWaveHeight             = "wave-height"
	AttrContentPadding         = "content-padding"
	AttrContentBackgroundColor = "content-background-color"
	AttrResponsive             = "responsive"
)

var observedAttributes = []string{
	AttrWaveColor,
	AttrBackgroundColor,
	AttrHeight,
	AttrSpeed,
	AttrOpacityRange,
	AttrWaveCount,
	AttrAnimationStyle,
	AttrPosition,
	AttrWaveHeight,
	AttrContentPadding,
	AttrContentBackgroundColor,
	AttrResponsive,
}

// ObservedAttributes returns the attribute names whose changes trigger a re-render.
func ObservedAttributes() []string {
	out := make([]string, len(observedAttributes))
	copy(out, observedAttributes)
	return out
}

// IsObservedAttribute reports whether name is one of ObservedAttributes.
func IsObservedAttribute(name string) bool {
	for _, a := range observedAttributes {
		if a == name {
			return true
		}
	}
	return false
}

// AnimationStyle selects the timing function of every wave.
type AnimationStyle string

const (
	StyleSmooth    AnimationStyle = "smooth"
	StyleLinear    AnimationStyle = "linear"
	StyleEaseInOut AnimationStyle = "ease-in-out"
	StyleBouncy    AnimationStyle = "bouncy"
	StyleGentle    AnimationStyle = "gentle"
)

// AnimationStyles lists every supported style.
var AnimationStyles = []AnimationStyle{StyleSmooth, StyleLinear, StyleEaseInOut, StyleBouncy, StyleGentle}

// ParseAnimationStyle maps a raw attribute to a style; unknown values fall
// back to StyleSmooth.
func ParseAnimationStyle(s string) AnimationStyle {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, style := range AnimationStyles {
		if string(style) == s {
			return style
		}
	}
	return StyleSmooth
}

// Position selects which wave sections are rendered.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionBoth   Position = "both"
)

// ParsePosition maps a raw attribute to a position; unknown values fall back
// to PositionTop.
func ParsePosition(s string) Position {
	switch Position(strings.ToLower(strings.TrimSpace(s))) {
	case PositionBottom:
		return PositionBottom
	case PositionBoth:
		return PositionBoth
	default:
		return PositionTop
	}
}

// Defaults
const (
	DefaultWaveColor       = "#1A237E"
	DefaultBackgroundColor = "transparent"
	DefaultSpeed           = 1.0
	DefaultOpacityMin      = 0.3
	DefaultOpacityMax      = 0.9
	DefaultWaveCount       = 4
	DefaultWaveHeight      = "100px"
	DefaultContentPadding  = "20px"
)

// Upper bounds for numeric attributes
const (
	// MaxSpeed keeps the shortest duration (10/speed) at or above 0.01s
	MaxSpeed = 1000.0
	// MaxWaveHeightPx bounds wave-height; units without a fixed pixel size
	// are compared by their raw value
	MaxWaveHeightPx = 10000.0
)

// BannerConfig is the typed, defaulted snapshot of a banner's attributes.
//
// A BannerConfig is never mutated after ParseAttributes returns it; every
// render reads a fresh one.
type BannerConfig struct {
	WaveColor              string
	BackgroundColor        string
	Height                 string // CSS length, empty means "let the wave height decide"
	Speed                  float64
	OpacityMin             float64
	OpacityMax             float64
	WaveCount              int
	AnimationStyle         AnimationStyle
	Position               Position
	WaveHeight             wave.Length
	ContentPadding         wave.Length
	ContentBackgroundColor string
	Responsive             bool
}

// DefaultBannerConfig returns the configuration used for an element without attributes.
func DefaultBannerConfig() *BannerConfig {
	return &BannerConfig{
		WaveColor:              DefaultWaveColor,
		BackgroundColor:        DefaultBackgroundColor,
		Height:                 "",
		Speed:                  DefaultSpeed,
		OpacityMin:             DefaultOpacityMin,
		OpacityMax:             DefaultOpacityMax,
		WaveCount:              DefaultWaveCount,
		AnimationStyle:         StyleSmooth,
		Position:               PositionTop,
		WaveHeight:             wave.Length{Value: 100, Unit: "px"},
		ContentPadding:         wave.Length{Value: 20, Unit: "px"},
		ContentBackgroundColor: DefaultWaveColor,
		Responsive:             true,
	}
}

// AttributeError reports one attribute whose raw value could not be used.
// The attribute's default was substituted.
type AttributeError struct {
	Attribute string
	Value     string
	Reason    string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %s=%q: %s (using default)", e.Attribute, e.Value, e.Reason)
}

// ParseAttributes resolves a raw attribute snapshot into a BannerConfig.
//
// A missing key and an empty value both select the default. Numeric values
// that cannot be used are replaced by their defaults and reported as
// *AttributeError values joined into the returned error; the returned config
// is always complete and safe to render. Unrecognized enum values fall back
// silently.
//
// Parameters:
//   - attrs: attribute name → raw string, may be nil
//
// Returns:
//   - *BannerConfig: never nil
//   - error: joined *AttributeError values, or nil
func ParseAttributes(attrs map[string]string) (*BannerConfig, error) {
	cfg := DefaultBannerConfig()
	var errs []error

	get := func(name string) (string, bool) {
		v, ok := attrs[name]
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}
	reject := func(name, value, reason string) {
		errs = append(errs, &AttributeError{Attribute: name, Value: value, Reason: reason})
	}

	if v, ok := get(AttrWaveColor); ok {
		cfg.WaveColor = v
	}
	if v, ok := get(AttrBackgroundColor); ok {
		cfg.BackgroundColor = v
	}
	if v, ok := get(AttrHeight); ok {
		cfg.Height = v
	}

	if v, ok := get(AttrSpeed); ok {
		speed, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			reject(AttrSpeed, v, "not a number")
		case math.IsNaN(speed) || math.IsInf(speed, 0):
			reject(AttrSpeed, v, "not finite")
		case speed <= 0:
			reject(AttrSpeed, v, "must be greater than 0")
		case speed > MaxSpeed:
			reject(AttrSpeed, v, fmt.Sprintf("must not exceed %g", MaxSpeed))
		default:
			cfg.Speed = speed
		}
	}

	if v, ok := get(AttrOpacityRange); ok {
		min, max, err := wave.ParseRange(v)
		switch {
		case err != nil:
			reject(AttrOpacityRange, v, err.Error())
		case min < 0 || max > 1:
			reject(AttrOpacityRange, v, "bounds must lie within [0,1]")
		case min > max:
			reject(AttrOpacityRange, v, "min is greater than max")
		default:
			cfg.OpacityMin, cfg.OpacityMax = min, max
		}
	}

	if v, ok := get(AttrWaveCount); ok {
		count, err := strconv.Atoi(v)
		switch {
		case err != nil:
			reject(AttrWaveCount, v, "not an integer")
		case count < 1:
			reject(AttrWaveCount, v, "must be at least 1")
		default:
			cfg.WaveCount = count
		}
	}

	if v, ok := get(AttrAnimationStyle); ok {
		cfg.AnimationStyle = ParseAnimationStyle(v)
	}
	if v, ok := get(AttrPosition); ok {
		cfg.Position = ParsePosition(v)
	}

	if v, ok := get(AttrWaveHeight); ok {
		l, err := wave.ParseLength(v)
		switch {
		case err != nil:
			reject(AttrWaveHeight, v, err.Error())
		case l.Value <= 0:
			reject(AttrWaveHeight, v, "must be greater than 0")
		case WaveHeightPixels(l) > MaxWaveHeightPx:
			reject(AttrWaveHeight, v, fmt.Sprintf("must not exceed %gpx", MaxWaveHeightPx))
		default:
			cfg.WaveHeight = l
		}
	}

	if v, ok := get(AttrContentPadding); ok {
		l, err := wave.ParseLength(v)
		switch {
		case err != nil:
			reject(AttrContentPadding, v, err.Error())
		case l.Value < 0:
			reject(AttrContentPadding, v, "must not be negative")
		default:
			cfg.ContentPadding = l
		}
	}

	// content-background-color 默认跟随已解析的 wave-color
	cfg.ContentBackgroundColor = cfg.WaveColor
	if v, ok := get(AttrContentBackgroundColor); ok {
		cfg.ContentBackgroundColor = v
	}

	if v, ok := attrs[AttrResponsive]; ok {
		cfg.Responsive = strings.TrimSpace(v) != "false"
	}

	return cfg, errors.Join(errs...)
}

// WaveHeightPixels returns the wave height in pixels, or the raw value for
// viewport and percentage units.
func WaveHeightPixels(l wave.Length) float64 {
	if px, ok := l.Pixels(); ok {
		return px
	}
	return l.Value
}

// MergeAttributes layers overrides on top of base and returns a new map.
// Neither input is modified.
func MergeAttributes(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
