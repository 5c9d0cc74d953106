package wave

// Shape describes the single template wave that every section repeats.
//
// The path spans 352 view units horizontally starting at X=-160 so that a
// reference translated anywhere within the keyframe travel still covers the
// 150-unit wide view box.
type Shape struct {
	// ID is the fragment identifier referenced by <use> elements
	ID string

	// PathData is the SVG path "d" attribute
	PathData string

	// AnchorX is the X offset every reference starts from before jitter
	AnchorX float64

	// BaselineY is the top of the view box the path is drawn against
	BaselineY float64

	// ViewWidth is the fixed view box width
	ViewWidth float64

	// MinViewHeight is the smallest view box height the shape still reads well at
	MinViewHeight float64
}

// DefaultShape is the gentle sine-like wave used by every banner.
var DefaultShape = Shape{
	ID:            "gentle-wave",
	PathData:      "M-160 44c30 0 58-18 88-18s 58 18 88 18 58-18 88-18 58 18 88 18 v44h-352z",
	AnchorX:       48,
	BaselineY:     24,
	ViewWidth:     150,
	MinViewHeight: 28,
}

// Keyframe is one stop of a horizontal drift animation.
type Keyframe struct {
	Percent    float64 // 0-100
	TranslateX float64 // view units
}

// Motion is a named keyframe animation a wave reference can be bound to.
type Motion struct {
	Name      string
	Keyframes []Keyframe
}

// Motions are the four canned drift animations; wave i uses Motions[i%4].
var Motions = []Motion{
	{Name: "wave-move-1", Keyframes: []Keyframe{{0, -90}, {100, 85}}},
	{Name: "wave-move-2", Keyframes: []Keyframe{{0, 85}, {100, -90}}},
	{Name: "wave-move-3", Keyframes: []Keyframe{{0, -90}, {50, 0}, {100, 85}}},
	{Name: "wave-move-4", Keyframes: []Keyframe{{0, 85}, {50, -20}, {100, -90}}},
}

// MotionFor returns the animation bound to wave index i.
func MotionFor(i int) Motion {
	if i < 0 {
		i = -i
	}
	return Motions[i%len(Motions)]
}

// TranslateAt evaluates the motion's horizontal offset at progress t ∈ [0,1]
// with linear interpolation between keyframes.
func (m Motion) TranslateAt(t float64) float64 {
	return m.TranslateAtEased(t, nil)
}

// TranslateAtEased is TranslateAt with ease applied to the progress inside
// each keyframe segment, the way a CSS timing function restarts at every
// keyframe. A nil ease is linear.
func (m Motion) TranslateAtEased(t float64, ease func(float64) float64) float64 {
	if len(m.Keyframes) == 0 {
		return 0
	}
	pct := t * 100
	if pct <= m.Keyframes[0].Percent {
		return m.Keyframes[0].TranslateX
	}
	for i := 0; i < len(m.Keyframes)-1; i++ {
		k0, k1 := m.Keyframes[i], m.Keyframes[i+1]
		if pct >= k0.Percent && pct <= k1.Percent {
			span := k1.Percent - k0.Percent
			if span <= 0 {
				return k0.TranslateX
			}
			ratio := (pct - k0.Percent) / span
			if ease != nil {
				ratio = ease(ratio)
			}
			return k0.TranslateX + ratio*(k1.TranslateX-k0.TranslateX)
		}
	}
	return m.Keyframes[len(m.Keyframes)-1].TranslateX
}
