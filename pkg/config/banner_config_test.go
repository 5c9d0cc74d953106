package config

import (
	"errors"
	"math"
	"testing"
)

func TestParseAttributes_Defaults(t *testing.T) {
	cfg, err := ParseAttributes(nil)
	if err != nil {
		t.Fatalf("ParseAttributes(nil) unexpected error: %v", err)
	}

	want := DefaultBannerConfig()
	if *cfg != *want {
		t.Errorf("ParseAttributes(nil) = %+v, want %+v", *cfg, *want)
	}
	if cfg.WaveHeight.String() != DefaultWaveHeight {
		t.Errorf("WaveHeight = %q, want %q", cfg.WaveHeight.String(), DefaultWaveHeight)
	}
	if cfg.ContentPadding.String() != DefaultContentPadding {
		t.Errorf("ContentPadding = %q, want %q", cfg.ContentPadding.String(), DefaultContentPadding)
	}
}

func TestParseAttributes_ValidValues(t *testing.T) {
	cfg, err := ParseAttributes(map[string]string{
		AttrWaveColor:       "#0ff",
		AttrBackgroundColor: "#000",
		AttrHeight:          "300px",
		AttrSpeed:           "2.5",
		AttrOpacityRange:    "0.1, 0.7",
		AttrWaveCount:       "6",
		AttrAnimationStyle:  "Bouncy",
		AttrPosition:        "both",
		AttrWaveHeight:      "8rem",
		AttrContentPadding:  "32px",
		AttrResponsive:      "false",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WaveColor != "#0ff" || cfg.BackgroundColor != "#000" || cfg.Height != "300px" {
		t.Errorf("colors/height not copied: %+v", cfg)
	}
	if cfg.Speed != 2.5 {
		t.Errorf("Speed = %v, want 2.5", cfg.Speed)
	}
	if cfg.OpacityMin != 0.1 || cfg.OpacityMax != 0.7 {
		t.Errorf("opacity range = (%v, %v), want (0.1, 0.7)", cfg.OpacityMin, cfg.OpacityMax)
	}
	if cfg.WaveCount != 6 {
		t.Errorf("WaveCount = %d, want 6", cfg.WaveCount)
	}
	if cfg.AnimationStyle != StyleBouncy {
		t.Errorf("AnimationStyle = %q, want %q", cfg.AnimationStyle, StyleBouncy)
	}
	if cfg.Position != PositionBoth {
		t.Errorf("Position = %q, want %q", cfg.Position, PositionBoth)
	}
	if cfg.WaveHeight.String() != "8rem" {
		t.Errorf("WaveHeight = %q, want 8rem", cfg.WaveHeight.String())
	}
	if cfg.ContentPadding.String() != "32px" {
		t.Errorf("ContentPadding = %q, want 32px", cfg.ContentPadding.String())
	}
	if cfg.Responsive {
		t.Error("Responsive = true, want false")
	}
	// 未设置时跟随 wave-color
	if cfg.ContentBackgroundColor != "#0ff" {
		t.Errorf("ContentBackgroundColor = %q, want wave color #0ff", cfg.ContentBackgroundColor)
	}
}

func TestParseAttributes_ContentBackgroundOverride(t *testing.T) {
	cfg, _ := ParseAttributes(map[string]string{
		AttrWaveColor:              "red",
		AttrContentBackgroundColor: "white",
	})
	if cfg.ContentBackgroundColor != "white" {
		t.Errorf("ContentBackgroundColor = %q, want white", cfg.ContentBackgroundColor)
	}
}

func TestParseAttributes_Responsive(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"false", false},
		{"true", true},
		{"", true},
		{"0", true},
		{"no", true},
		{"FALSE", true},
	}

	for _, tt := range tests {
		t.Run("responsive_"+tt.raw, func(t *testing.T) {
			cfg, _ := ParseAttributes(map[string]string{AttrResponsive: tt.raw})
			if cfg.Responsive != tt.want {
				t.Errorf("responsive=%q → %v, want %v", tt.raw, cfg.Responsive, tt.want)
			}
		})
	}
}

// TestParseAttributes_InvalidNumerics verifies invalid numbers never leak into
// the config and are reported
func TestParseAttributes_InvalidNumerics(t *testing.T) {
	tests := []struct {
		name  string
		attr  string
		value string
	}{
		{"speed not a number", AttrSpeed, "fast"},
		{"speed NaN", AttrSpeed, "NaN"},
		{"speed zero", AttrSpeed, "0"},
		{"speed negative", AttrSpeed, "-1"},
		{"speed infinite", AttrSpeed, "Inf"},
		{"speed too fast", AttrSpeed, "5000"},
		{"wave-count not a number", AttrWaveCount, "many"},
		{"wave-count zero", AttrWaveCount, "0"},
		{"wave-count negative", AttrWaveCount, "-3"},
		{"wave-count float", AttrWaveCount, "2.5"},
		{"opacity single", AttrOpacityRange, "0.5"},
		{"opacity words", AttrOpacityRange, "a,b"},
		{"opacity reversed", AttrOpacityRange, "0.9,0.1"},
		{"opacity out of bounds", AttrOpacityRange, "0.2,1.5"},
		{"wave-height garbage", AttrWaveHeight, "tall"},
		{"wave-height zero", AttrWaveHeight, "0px"},
		{"wave-height overflow", AttrWaveHeight, "100000000000000000000px"},
		{"wave-height too tall", AttrWaveHeight, "10001px"},
		{"wave-height too tall rem", AttrWaveHeight, "700rem"},
		{"wave-height too tall vh", AttrWaveHeight, "20000vh"},
		{"content-padding negative", AttrContentPadding, "-4px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseAttributes(map[string]string{tt.attr: tt.value})
			if err == nil {
				t.Fatalf("%s=%q: expected error, got nil", tt.attr, tt.value)
			}

			var attrErr *AttributeError
			if !errors.As(err, &attrErr) {
				t.Fatalf("error %v is not an *AttributeError", err)
			}
			if attrErr.Attribute != tt.attr {
				t.Errorf("AttributeError.Attribute = %q, want %q", attrErr.Attribute, tt.attr)
			}

			def := DefaultBannerConfig()
			if cfg.Speed != def.Speed || cfg.WaveCount != def.WaveCount ||
				cfg.OpacityMin != def.OpacityMin || cfg.OpacityMax != def.OpacityMax ||
				cfg.WaveHeight != def.WaveHeight || cfg.ContentPadding != def.ContentPadding {
				t.Errorf("invalid %s leaked into config: %+v", tt.attr, cfg)
			}
			if math.IsNaN(cfg.Speed) {
				t.Error("Speed is NaN")
			}
		})
	}
}

// TestParseAttributes_UpperBounds tests that the maximum values are accepted
func TestParseAttributes_UpperBounds(t *testing.T) {
	cfg, err := ParseAttributes(map[string]string{
		AttrSpeed:      "1000",
		AttrWaveHeight: "625rem",
	})
	if err != nil {
		t.Fatalf("ParseAttributes() error: %v", err)
	}
	if cfg.Speed != MaxSpeed {
		t.Errorf("Speed = %v, 期望 %v", cfg.Speed, MaxSpeed)
	}
	if got := WaveHeightPixels(cfg.WaveHeight); got != MaxWaveHeightPx {
		t.Errorf("WaveHeightPixels() = %v, 期望 %v", got, MaxWaveHeightPx)
	}
}

func TestParseAttributes_MultipleErrorsJoined(t *testing.T) {
	_, err := ParseAttributes(map[string]string{
		AttrSpeed:     "x",
		AttrWaveCount: "y",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("error %T does not wrap multiple errors", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("got %d wrapped errors, want 2", n)
	}
}

func TestParseAnimationStyle(t *testing.T) {
	for _, style := range AnimationStyles {
		if got := ParseAnimationStyle(string(style)); got != style {
			t.Errorf("ParseAnimationStyle(%q) = %q", style, got)
		}
	}
	for _, raw := range []string{"nonexistent", "", "springy"} {
		if got := ParseAnimationStyle(raw); got != StyleSmooth {
			t.Errorf("ParseAnimationStyle(%q) = %q, want smooth", raw, got)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := map[string]Position{
		"top":    PositionTop,
		"bottom": PositionBottom,
		"both":   PositionBoth,
		"BOTH":   PositionBoth,
		"left":   PositionTop,
		"":       PositionTop,
	}
	for raw, want := range tests {
		if got := ParsePosition(raw); got != want {
			t.Errorf("ParsePosition(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestObservedAttributes(t *testing.T) {
	names := ObservedAttributes()
	if len(names) != 12 {
		t.Fatalf("ObservedAttributes() has %d names, want 12", len(names))
	}

	// 返回副本，修改不影响内部列表
	names[0] = "mutated"
	if !IsObservedAttribute(AttrWaveColor) {
		t.Error("mutating the returned slice changed the observed set")
	}
	if IsObservedAttribute("data-foo") {
		t.Error("data-foo should not be observed")
	}
}

func TestMergeAttributes(t *testing.T) {
	base := map[string]string{AttrSpeed: "1", AttrWaveColor: "red"}
	over := map[string]string{AttrSpeed: "2"}

	merged := MergeAttributes(base, over)
	if merged[AttrSpeed] != "2" || merged[AttrWaveColor] != "red" {
		t.Errorf("MergeAttributes = %v", merged)
	}
	if base[AttrSpeed] != "1" {
		t.Error("MergeAttributes modified base")
	}
}
