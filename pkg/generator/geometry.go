package generator

import (
	"fmt"
	"math"

	"github.com/decker502/wavebanner/internal/wave"
	"github.com/decker502/wavebanner/pkg/config"
)

// Responsive scale factors and floors (px)
const (
	TabletScale      = 0.8
	MobileScale      = 0.6
	SmallMobileScale = 0.5

	TabletMinHeight      = 60.0
	MobileMinHeight      = 40.0
	SmallMobileMinHeight = 40.0

	TabletMinPadding      = 10.0
	MobileMinPadding      = 8.0
	SmallMobileMinPadding = 8.0

	// referenceHeight is the wave height (px) at which the view box has its
	// minimum height
	referenceHeight = 100.0
)

// ViewBox is the SVG coordinate system of one wave section.
type ViewBox struct {
	MinX, MinY, Width, Height int
}

func (v ViewBox) String() string {
	return fmt.Sprintf("%d %d %d %d", v.MinX, v.MinY, v.Width, v.Height)
}

// Offset positions one reference to the template wave.
type Offset struct {
	X, Y int
}

// Geometry is the view box plus one offset per wave.
type Geometry struct {
	ViewBox ViewBox
	Offsets []Offset
}

// ViewBoxFor sizes the view box proportionally to the wave height.
//
// The width is fixed by the template shape; the height grows with the wave
// height between the shape's minimum and the size at config.MaxWaveHeightPx.
func ViewBoxFor(waveHeight wave.Length) ViewBox {
	shape := wave.DefaultShape

	px := math.Min(config.WaveHeightPixels(waveHeight), config.MaxWaveHeightPx)
	h := math.Round(shape.MinViewHeight * px / referenceHeight)
	if h < shape.MinViewHeight || math.IsNaN(h) {
		h = shape.MinViewHeight
	}

	return ViewBox{
		MinX:   0,
		MinY:   int(shape.BaselineY),
		Width:  int(shape.ViewWidth),
		Height: int(h),
	}
}

// Geometry returns the view box for waveHeight and count randomized offsets.
//
// X jitters ±10 units around the shape anchor; Y drops each wave a random
// whole number of units, bounded so the crest stays inside the view box.
func (g *Generator) Geometry(count int, waveHeight wave.Length) Geometry {
	vb := ViewBoxFor(waveHeight)
	if count <= 0 {
		return Geometry{ViewBox: vb, Offsets: []Offset{}}
	}

	maxY := 7 + (vb.Height-int(wave.DefaultShape.MinViewHeight))/4
	anchor := wave.DefaultShape.AnchorX

	offsets := make([]Offset, count)
	for i := range offsets {
		x := math.Round(anchor + g.uniform(-OffsetJitterX, OffsetJitterX))
		y := math.Floor(g.uniform(0, float64(maxY+1)))
		if y > float64(maxY) {
			y = float64(maxY)
		}
		offsets[i] = Offset{X: int(x), Y: int(y)}
	}
	return Geometry{ViewBox: vb, Offsets: offsets}
}

// ResponsiveHeightSet holds the wave section height per breakpoint.
type ResponsiveHeightSet struct {
	Base        wave.Length
	Desktop     wave.Length // > 1024px
	Tablet      wave.Length // 769px – 1024px
	Mobile      wave.Length // <= 768px
	SmallMobile wave.Length // <= 480px
}

// ResponsivePaddingSet holds the content padding per breakpoint.
type ResponsivePaddingSet struct {
	Base        wave.Length
	Tablet      wave.Length
	Mobile      wave.Length
	SmallMobile wave.Length
}

// ResponsiveHeights derives breakpoint heights from the base wave height.
//
// Lengths convertible to pixels are scaled in px with floors of 60px
// (tablet) and 40px (mobile, small mobile). Viewport and percentage lengths
// are scaled in their own unit without floors.
func ResponsiveHeights(base wave.Length) ResponsiveHeightSet {
	return ResponsiveHeightSet{
		Base:        base,
		Desktop:     base,
		Tablet:      scaleWithFloor(base, TabletScale, TabletMinHeight),
		Mobile:      scaleWithFloor(base, MobileScale, MobileMinHeight),
		SmallMobile: scaleWithFloor(base, SmallMobileScale, SmallMobileMinHeight),
	}
}

// ResponsivePadding derives breakpoint content padding, floored at 10px
// (tablet) and 8px (mobile, small mobile).
func ResponsivePadding(base wave.Length) ResponsivePaddingSet {
	return ResponsivePaddingSet{
		Base:        base,
		Tablet:      scaleWithFloor(base, TabletScale, TabletMinPadding),
		Mobile:      scaleWithFloor(base, MobileScale, MobileMinPadding),
		SmallMobile: scaleWithFloor(base, SmallMobileScale, SmallMobileMinPadding),
	}
}

func scaleWithFloor(l wave.Length, factor, floorPx float64) wave.Length {
	px, ok := l.Pixels()
	if !ok {
		return l.Scale(factor)
	}
	return wave.Length{Value: px, Unit: "px"}.Scale(factor).AtLeast(floorPx)
}
