// Package markup composes the banner's markup and style rules.
//
// Composition is split in two steps: Compose builds a typed Document from a
// configuration and generated parameters, and Render serializes it. Tests and
// tools can inspect the Document without matching serialized strings.
package markup

import (
	"github.com/decker502/wavebanner/internal/wave"
	"github.com/decker502/wavebanner/pkg/generator"
)

// SectionKind identifies a section of the banner.
type SectionKind string

const (
	SectionTop     SectionKind = "top"
	SectionBottom  SectionKind = "bottom"
	SectionContent SectionKind = "content"
)

// Variant selects between the plain banner and the responsive (index) banner.
type Variant int

const (
	// VariantIndex supports breakpoint overrides
	VariantIndex Variant = iota
	// VariantBasic never emits breakpoint overrides
	VariantBasic
)

func (v Variant) String() string {
	if v == VariantBasic {
		return "basic"
	}
	return "index"
}

// ParseVariant maps "index"/"basic" to a Variant; anything else is VariantIndex.
func ParseVariant(s string) Variant {
	if s == "basic" {
		return VariantBasic
	}
	return VariantIndex
}

// Use is one positioned reference to the section's template wave.
type Use struct {
	X, Y int
}

// Section is one rendered block of the banner.
// Content sections carry no geometry; they only host the passthrough slot.
type Section struct {
	Kind    SectionKind
	Flipped bool // rotated 180° (bottom sections)
	ViewBox generator.ViewBox
	Shape   wave.Shape
	Uses    []Use
}

// IsWave reports whether the section draws waves.
func (s Section) IsWave() bool {
	return s.Kind == SectionTop || s.Kind == SectionBottom
}

// Container describes the outer element.
type Container struct {
	Classes []string
	Flex    bool // column flex layout with auto height
}

// Decl is one CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule is a selector with its declarations.
type Rule struct {
	Selector string
	Decls    []Decl
}

// KeyframeStop is one percentage stop of a keyframe animation.
type KeyframeStop struct {
	Percent float64
	Decls   []Decl
}

// KeyframeBlock is a named @keyframes animation.
type KeyframeBlock struct {
	Name  string
	Stops []KeyframeStop
}

// MediaBlock is a breakpoint-scoped group of rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// Stylesheet is the structured style output.
type Stylesheet struct {
	Rules     []Rule
	Keyframes []KeyframeBlock
	Media     []MediaBlock
}

// Document is the full structured render of one banner.
type Document struct {
	Container Container
	Sections  []Section
	Styles    Stylesheet
}

// SectionsOf returns the sections of the given kind in document order.
func (d *Document) SectionsOf(kind SectionKind) []Section {
	var out []Section
	for _, s := range d.Sections {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// RuleFor returns the top-level rule with the given selector.
func (d *Document) RuleFor(selector string) (Rule, bool) {
	for _, r := range d.Styles.Rules {
		if r.Selector == selector {
			return r, true
		}
	}
	return Rule{}, false
}

// Value returns the value of property in r, or "" when absent.
func (r Rule) Value(property string) string {
	for _, d := range r.Decls {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}
