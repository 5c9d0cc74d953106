// Package wave provides value parsing helpers and the shared wave shape used
// by the banner generator and composer.
package wave

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultUnit is applied to bare numbers such as "100".
const DefaultUnit = "px"

// knownUnits lists the CSS length units accepted by ParseLength.
var knownUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "%": true,
	"vh": true, "vw": true, "vmin": true, "vmax": true,
	"pt": true, "pc": true, "cm": true, "mm": true, "in": true,
	"ch": true, "ex": true,
}

// Length is a parsed CSS length such as "100px" or "2.5rem".
type Length struct {
	Value float64
	Unit  string
}

// ParseLength parses a CSS length string.
// Supported formats:
//   - With unit: "100px" → {100, "px"}
//   - Bare number: "80" → {80, "px"}
//   - Percent: "50%" → {50, "%"}
//   - Exponent: "1e2px" → {100, "px"}
//
// Returns an error for empty input, a missing numeric part, an unknown unit or
// a non-finite value.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("empty length")
	}

	// 数字部分与单位部分的分界
	split := len(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			continue
		}
		// "1e2px" 中的 e 属于指数，"1em" 中的 e 属于单位
		if (c == 'e' || c == 'E') && i > 0 && startsExponent(s[i+1:]) {
			continue
		}
		split = i
		break
	}

	numStr := s[:split]
	unit := strings.ToLower(strings.TrimSpace(s[split:]))
	if numStr == "" {
		return Length{}, fmt.Errorf("length %q has no numeric part", s)
	}

	value, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return Length{}, fmt.Errorf("length %q: %w", s, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Length{}, fmt.Errorf("length %q is not finite", s)
	}

	if unit == "" {
		unit = DefaultUnit
	}
	if !knownUnits[unit] {
		return Length{}, fmt.Errorf("length %q has unknown unit %q", s, unit)
	}

	return Length{Value: value, Unit: unit}, nil
}

// String formats the length back to CSS using FormatNumber.
func (l Length) String() string {
	return FormatNumber(l.Value) + l.Unit
}

// Scale multiplies the value, keeping the unit.
func (l Length) Scale(factor float64) Length {
	return Length{Value: l.Value * factor, Unit: l.Unit}
}

// AtLeast returns the length raised to floor when it is smaller.
// The floor is expressed in the length's own unit.
func (l Length) AtLeast(floor float64) Length {
	if l.Value < floor {
		return Length{Value: floor, Unit: l.Unit}
	}
	return l
}

// Pixels converts absolute and font-relative lengths to CSS pixels, assuming
// the 16px browser default font size. ok is false for viewport and percentage
// units, which have no fixed pixel size.
func (l Length) Pixels() (px float64, ok bool) {
	switch l.Unit {
	case "px":
		return l.Value, true
	case "em", "rem":
		return l.Value * 16, true
	case "pt":
		return l.Value * 96 / 72, true
	case "pc":
		return l.Value * 16, true
	case "in":
		return l.Value * 96, true
	case "cm":
		return l.Value * 96 / 2.54, true
	case "mm":
		return l.Value * 96 / 25.4, true
	}
	return 0, false
}

// ParseRange parses a "min,max" pair such as "0.3,0.9".
// Whitespace around either number is ignored.
func ParseRange(s string) (min, max float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("range %q must have exactly two comma-separated values", s)
	}

	min, err = parseFinite(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("range %q min: %w", s, err)
	}
	max, err = parseFinite(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("range %q max: %w", s, err)
	}
	return min, max, nil
}

// FormatNumber renders a float with at most two decimals and no trailing
// zeros: 12.5 → "12.5", 80 → "80", 1.0/3 → "0.33". Non-zero values that
// would round to 0 keep three significant digits instead: 0.0032 → "0.0032".
// Magnitudes below 1e-6 are treated as float noise and print as "0".
func FormatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 && math.Abs(v) >= 1e-6 {
		p := math.Pow(10, 2-math.Floor(math.Log10(math.Abs(v))))
		rounded = math.Round(v*p) / p
	}
	if rounded == 0 {
		// avoid "-0"
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// startsExponent reports whether s begins with an optionally signed digit.
func startsExponent(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q is not finite", s)
	}
	return v, nil
}
