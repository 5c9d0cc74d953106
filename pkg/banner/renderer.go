// Package banner drives the render pipeline of a wave banner instance.
//
// A Renderer is a two-state machine (unmounted, mounted). Mounting and every
// reconfiguration run the full pipeline: parse attributes, generate
// parameters, compose, serialize, and commit the result to the Surface in
// one call. There is no diffing; the committed output always reflects the
// latest attributes.
package banner

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/wavebanner/pkg/config"
	"github.com/decker502/wavebanner/pkg/generator"
	"github.com/decker502/wavebanner/pkg/markup"
)

// State is the lifecycle state of a Renderer.
type State int

const (
	Unmounted State = iota
	Mounted
)

func (s State) String() string {
	if s == Mounted {
		return "mounted"
	}
	return "unmounted"
}

var (
	// ErrAlreadyMounted is returned by Mount on a mounted renderer
	ErrAlreadyMounted = errors.New("banner already mounted")
	// ErrNotMounted is returned by Reconfigure and SetAttribute before Mount
	ErrNotMounted = errors.New("banner not mounted")
)

// Output is one committed render.
type Output struct {
	Markup string
	Style  string
}

// Surface receives committed renders. Commit replaces whatever the surface
// showed before.
type Surface interface {
	Commit(out Output)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(out Output)

func (f SurfaceFunc) Commit(out Output) { f(out) }

// Option configures a Renderer.
type Option func(*Renderer)

// WithSource injects the random source used for jitter.
func WithSource(src generator.Source) Option {
	return func(r *Renderer) { r.gen = generator.New(src) }
}

// WithVariant selects the banner variant (default markup.VariantIndex).
func WithVariant(v markup.Variant) Option {
	return func(r *Renderer) { r.variant = v }
}

// WithSurface sets where renders are committed.
func WithSurface(s Surface) Option {
	return func(r *Renderer) { r.surface = s }
}

// Renderer owns one banner instance: its last attribute snapshot and its last
// committed output. It is not safe for concurrent use.
type Renderer struct {
	gen     *generator.Generator
	variant markup.Variant
	surface Surface

	state  State
	attrs  map[string]string
	output Output
	doc    *markup.Document
	cfg    *config.BannerConfig
	params *generator.Parameters
}

// NewRenderer creates an unmounted renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{variant: markup.VariantIndex}
	for _, opt := range opts {
		opt(r)
	}
	if r.gen == nil {
		r.gen = generator.New(nil)
	}
	return r
}

// State returns the current lifecycle state.
func (r *Renderer) State() State { return r.state }

// Output returns the last committed render.
func (r *Renderer) Output() Output { return r.output }

// Document returns the structured form of the last render, nil before Mount.
func (r *Renderer) Document() *markup.Document { return r.doc }

// Config returns the resolved configuration of the last render, nil before
// Mount.
func (r *Renderer) Config() *config.BannerConfig { return r.cfg }

// Parameters returns the generated parameters of the last render, nil before
// Mount.
func (r *Renderer) Parameters() *generator.Parameters { return r.params }

// Attributes returns a copy of the attribute snapshot of the last render.
func (r *Renderer) Attributes() map[string]string {
	return config.MergeAttributes(r.attrs, nil)
}

// Mount performs the first render.
//
// Attribute problems do not stop the render: the defaulted configuration is
// rendered and committed, and the problems are returned wrapped so the caller
// can decide whether to surface them.
func (r *Renderer) Mount(attrs map[string]string) error {
	if r.state == Mounted {
		return ErrAlreadyMounted
	}
	r.state = Mounted
	return r.render(attrs)
}

// Reconfigure re-runs the whole pipeline with a new attribute snapshot and
// replaces the committed output.
func (r *Renderer) Reconfigure(attrs map[string]string) error {
	if r.state != Mounted {
		return ErrNotMounted
	}
	return r.render(attrs)
}

// SetAttribute is the host notification adapter: it applies one attribute
// change and reconfigures. Unrecognized names and unchanged values are
// ignored.
func (r *Renderer) SetAttribute(name, value string) error {
	if r.state != Mounted {
		return ErrNotMounted
	}
	if !config.IsObservedAttribute(name) {
		return nil
	}
	if old, ok := r.attrs[name]; ok && old == value {
		return nil
	}
	return r.Reconfigure(config.MergeAttributes(r.attrs, map[string]string{name: value}))
}

// RemoveAttribute drops one attribute so its default applies again.
func (r *Renderer) RemoveAttribute(name string) error {
	if r.state != Mounted {
		return ErrNotMounted
	}
	if _, ok := r.attrs[name]; !ok || !config.IsObservedAttribute(name) {
		return nil
	}
	next := config.MergeAttributes(r.attrs, nil)
	delete(next, name)
	return r.Reconfigure(next)
}

func (r *Renderer) render(attrs map[string]string) error {
	snapshot := config.MergeAttributes(attrs, nil)

	cfg, cfgErr := config.ParseAttributes(snapshot)
	if cfgErr != nil {
		log.Printf("[Renderer] Warning: invalid attributes, defaults substituted: %v", cfgErr)
	}

	params := r.gen.Generate(cfg)
	doc := markup.Compose(cfg, params, r.variant)
	markupStr, style := markup.Render(doc)

	r.attrs = snapshot
	r.cfg = cfg
	r.params = params
	r.doc = doc
	r.output = Output{Markup: markupStr, Style: style}
	if r.surface != nil {
		r.surface.Commit(r.output)
	}

	if cfgErr != nil {
		return fmt.Errorf("render with defaults: %w", cfgErr)
	}
	return nil
}
