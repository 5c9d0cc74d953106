package wave

import (
	"math"
	"testing"
)

// TestParseLength_Valid tests parsing of well-formed CSS lengths
func TestParseLength_Valid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantUnit  string
	}{
		{"Pixels", "100px", 100, "px"},
		{"Bare number", "80", 80, "px"},
		{"Float rem", "2.5rem", 2.5, "rem"},
		{"Percent", "50%", 50, "%"},
		{"Upper case unit", "12PX", 12, "px"},
		{"Surrounding spaces", "  60px ", 60, "px"},
		{"Viewport height", "30vh", 30, "vh"},
		{"Exponent", "1e2px", 100, "px"},
		{"Signed exponent", "2.5e-1rem", 0.25, "rem"},
		{"Exponent bare", "1E2", 100, "px"},
		{"Em is a unit", "3em", 3, "em"},
		{"Ex is a unit", "3ex", 3, "ex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength(tt.input)
			if err != nil {
				t.Fatalf("ParseLength(%q) unexpected error: %v", tt.input, err)
			}
			if got.Value != tt.wantValue {
				t.Errorf("ParseLength(%q).Value = %v, want %v", tt.input, got.Value, tt.wantValue)
			}
			if got.Unit != tt.wantUnit {
				t.Errorf("ParseLength(%q).Unit = %q, want %q", tt.input, got.Unit, tt.wantUnit)
			}
		})
	}
}

// TestParseLength_Invalid tests that malformed lengths are rejected
func TestParseLength_Invalid(t *testing.T) {
	inputs := []string{"", "   ", "px", "abc", "10furlongs", "1.2.3px", "--5px", "1e", "1e2e3px"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseLength(input); err == nil {
				t.Errorf("ParseLength(%q) expected error, got nil", input)
			}
		})
	}
}

func TestLength_String(t *testing.T) {
	tests := []struct {
		in   Length
		want string
	}{
		{Length{100, "px"}, "100px"},
		{Length{12.5, "rem"}, "12.5rem"},
		{Length{1.0 / 3, "em"}, "0.33em"},
		{Length{0.001, "px"}, "0.001px"},
		{Length{-0.001, "px"}, "-0.001px"},
		{Length{1e-9, "px"}, "0px"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLength_ScaleAndFloor(t *testing.T) {
	base := Length{Value: 100, Unit: "px"}

	scaled := base.Scale(0.6)
	if math.Abs(scaled.Value-60) > 1e-9 || scaled.Unit != "px" {
		t.Errorf("Scale(0.6) = %v, want 60px", scaled)
	}

	small := Length{Value: 30, Unit: "px"}
	if got := small.AtLeast(40); got.Value != 40 {
		t.Errorf("AtLeast(40) = %v, want 40", got.Value)
	}
	if got := base.AtLeast(40); got.Value != 100 {
		t.Errorf("AtLeast(40) on 100 = %v, want 100", got.Value)
	}
}

// TestFormatNumber tests that small non-zero values keep significant digits
func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"整数", 80, "80"},
		{"两位小数", 1.0 / 3, "0.33"},
		{"零", 0, "0"},
		{"负零", math.Copysign(0, -1), "0"},
		{"小于 0.005 的时长", 0.0032, "0.0032"},
		{"三位有效数字", 0.00123456, "0.00123"},
		{"负的小值", -0.004, "-0.004"},
		{"浮点误差", 1e-15, "0"},
		{"最小正数", math.SmallestNonzeroFloat64, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, 期望 %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestParseRange tests "min,max" pair parsing
func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
		wantErr bool
	}{
		{"Default range", "0.3,0.9", 0.3, 0.9, false},
		{"Spaces", " 0.1 , 1 ", 0.1, 1, false},
		{"Reversed is still parsed", "0.9,0.3", 0.9, 0.3, false},
		{"Single value", "0.5", 0, 0, true},
		{"Three values", "0.1,0.2,0.3", 0, 0, true},
		{"Non numeric", "low,high", 0, 0, true},
		{"NaN", "NaN,0.5", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, err := ParseRange(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("ParseRange(%q) = (%v, %v), want (%v, %v)", tt.input, min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestMotionFor_Cycles(t *testing.T) {
	for i := 0; i < 12; i++ {
		if got, want := MotionFor(i).Name, Motions[i%4].Name; got != want {
			t.Errorf("MotionFor(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestMotion_TranslateAt(t *testing.T) {
	m := Motions[0]

	if got := m.TranslateAt(0); got != -90 {
		t.Errorf("TranslateAt(0) = %v, want -90", got)
	}
	if got := m.TranslateAt(1); got != 85 {
		t.Errorf("TranslateAt(1) = %v, want 85", got)
	}
	if got := m.TranslateAt(0.5); math.Abs(got-(-2.5)) > 1e-9 {
		t.Errorf("TranslateAt(0.5) = %v, want -2.5", got)
	}

	// 三段关键帧的中点
	if got := Motions[2].TranslateAt(0.5); got != 0 {
		t.Errorf("wave-move-3 TranslateAt(0.5) = %v, want 0", got)
	}
}

func TestMotion_TranslateAtEased(t *testing.T) {
	square := func(r float64) float64 { return r * r }
	m := Motions[2]

	tests := []struct {
		t    float64
		want float64
	}{
		{0, -90},
		{0.25, -67.5}, // 第一段中点，0.5² = 0.25
		{0.5, 0},
		{0.75, 21.25}, // 缓动在每段重新开始
		{1, 85},
	}

	for _, tt := range tests {
		if got := m.TranslateAtEased(tt.t, square); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TranslateAtEased(%v) = %v, 期望 %v", tt.t, got, tt.want)
		}
	}
}

func TestLength_Pixels(t *testing.T) {
	tests := []struct {
		in     Length
		want   float64
		wantOK bool
	}{
		{Length{100, "px"}, 100, true},
		{Length{2, "rem"}, 32, true},
		{Length{1, "in"}, 96, true},
		{Length{12, "pt"}, 16, true},
		{Length{50, "%"}, 0, false},
		{Length{10, "vh"}, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.in.Pixels()
		if ok != tt.wantOK || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v.Pixels() = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
