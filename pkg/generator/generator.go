// Package generator derives per-wave animation parameters from a banner
// configuration.
//
// Every randomized value is drawn from an injected Source, so a fixed source
// makes the whole output reproducible. Nothing is cached: each call draws
// fresh values, which is what makes the waves reshuffle on every re-render.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/decker502/wavebanner/internal/wave"
	"github.com/decker502/wavebanner/pkg/config"
)

// Duration and delay tuning (seconds)
const (
	BaseDuration     = 15.0
	DurationStep     = 8.0
	DurationJitter   = 5.0
	MinDuration      = 10.0
	MaxNegativeDelay = 30.0

	// OffsetJitterX is the horizontal jitter applied around the shape anchor
	OffsetJitterX = 10.0
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Generator produces wave parameters from a random Source.
// A Generator is not safe for concurrent use when its Source is not.
type Generator struct {
	src Source
}

// New creates a generator drawing from src. A nil src selects a time-seeded
// math/rand source.
func New(src Source) *Generator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{src: src}
}

// NewSeeded creates a generator with a deterministic math/rand source.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// uniform returns a value in [min, max).
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.src.Float64()*(max-min)
}

// WaveDescriptor is the generated parameter set of one wave reference.
type WaveDescriptor struct {
	Index          int
	Duration       float64 // seconds, > 0
	Delay          float64 // seconds, <= 0
	Opacity        float64
	AnimationClass string
	X              int
	Y              int
}

// Durations returns one animation duration per wave.
//
// Wave i starts from 15 + 8·i seconds, receives uniform jitter in [-5, +5],
// is divided by speed and is clamped to at least 10/speed. A speed that is
// not strictly positive is treated as 1.
func (g *Generator) Durations(count int, speed float64) []float64 {
	if count <= 0 {
		return []float64{}
	}
	if !(speed > 0) || math.IsInf(speed, 0) {
		speed = config.DefaultSpeed
	}

	floor := MinDuration / speed
	out := make([]float64, count)
	for i := range out {
		base := BaseDuration + DurationStep*float64(i)
		d := (base + g.uniform(-DurationJitter, DurationJitter)) / speed
		out[i] = math.Max(d, floor)
	}
	return out
}

// Delays returns one negative start delay per wave, uniform in [-30, 0).
// A negative delay makes the animation appear already in progress at mount.
func (g *Generator) Delays(count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = g.uniform(-MaxNegativeDelay, 0)
	}
	return out
}

// Opacities interpolates linearly from min (first wave) to max (last wave).
//
// A single wave gets max, the most visible end of the range, so count == 1
// never divides by zero.
func Opacities(count int, min, max float64) []float64 {
	if count <= 0 {
		return []float64{}
	}
	if count == 1 {
		return []float64{max}
	}

	step := (max - min) / float64(count-1)
	out := make([]float64, count)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	// 避免浮点误差导致最后一个值偏离 max
	out[count-1] = max
	return out
}

// Descriptors builds the full descriptor list for cfg.
// Random draws happen in a fixed order: durations, delays, then offsets.
func (g *Generator) Descriptors(cfg *config.BannerConfig) []WaveDescriptor {
	count := cfg.WaveCount
	if count < 1 {
		count = 1
	}

	durations := g.Durations(count, cfg.Speed)
	delays := g.Delays(count)
	opacities := Opacities(count, cfg.OpacityMin, cfg.OpacityMax)
	geometry := g.Geometry(count, cfg.WaveHeight)

	out := make([]WaveDescriptor, count)
	for i := range out {
		out[i] = WaveDescriptor{
			Index:          i,
			Duration:       durations[i],
			Delay:          delays[i],
			Opacity:        opacities[i],
			AnimationClass: wave.MotionFor(i).Name,
			X:              geometry.Offsets[i].X,
			Y:              geometry.Offsets[i].Y,
		}
	}
	return out
}

// Parameters bundles everything the markup composer needs for one render.
type Parameters struct {
	Waves   []WaveDescriptor
	Easing  string
	ViewBox ViewBox
	Heights ResponsiveHeightSet
	Padding ResponsivePaddingSet
}

// Generate produces a fresh parameter set for cfg.
func (g *Generator) Generate(cfg *config.BannerConfig) *Parameters {
	waves := g.Descriptors(cfg)
	return &Parameters{
		Waves:   waves,
		Easing:  Easing(cfg.AnimationStyle),
		ViewBox: ViewBoxFor(cfg.WaveHeight),
		Heights: ResponsiveHeights(cfg.WaveHeight),
		Padding: ResponsivePadding(cfg.ContentPadding),
	}
}
