package markup

import (
	"fmt"
	"strings"

	"github.com/decker502/wavebanner/internal/wave"
	"github.com/decker502/wavebanner/pkg/config"
	"github.com/decker502/wavebanner/pkg/generator"
)

// Selectors shared by composition and serialization
const (
	ContainerClass = "wave-container"
	SectionClass   = "wave-section"
	ContentClass   = "content-section"
	WavesClass     = "waves"
	ParallaxClass  = "parallax"
)

// Breakpoint media queries, in cascade order
const (
	MobileQuery      = "(max-width: 768px)"
	TabletQuery      = "(min-width: 769px) and (max-width: 1024px)"
	SmallMobileQuery = "(max-width: 480px)"
)

// Compose builds the structured document for one render.
//
// Parameters:
//   - cfg: resolved configuration
//   - params: freshly generated wave parameters for cfg
//   - variant: VariantIndex enables breakpoint overrides when cfg.Responsive
//
// Compose is pure: the same inputs always yield an equal document.
func Compose(cfg *config.BannerConfig, params *generator.Parameters, variant Variant) *Document {
	doc := &Document{
		Container: Container{Classes: []string{ContainerClass, "position-" + string(cfg.Position)}},
	}

	uses := make([]Use, len(params.Waves))
	for i, w := range params.Waves {
		uses[i] = Use{X: w.X, Y: w.Y}
	}
	waveSection := func(kind SectionKind) Section {
		return Section{
			Kind:    kind,
			Flipped: kind == SectionBottom,
			ViewBox: params.ViewBox,
			Shape:   wave.DefaultShape,
			Uses:    uses,
		}
	}

	switch cfg.Position {
	case config.PositionBoth:
		doc.Container.Flex = true
		doc.Sections = []Section{
			waveSection(SectionTop),
			{Kind: SectionContent},
			waveSection(SectionBottom),
		}
	case config.PositionBottom:
		doc.Sections = []Section{waveSection(SectionBottom)}
	default:
		doc.Sections = []Section{waveSection(SectionTop)}
	}

	doc.Styles = composeStyles(cfg, params, doc.Container.Flex)
	if variant == VariantIndex && cfg.Responsive {
		doc.Styles.Media = composeBreakpoints(cfg, params)
	}
	return doc
}

func composeStyles(cfg *config.BannerConfig, params *generator.Parameters, flex bool) Stylesheet {
	var ss Stylesheet

	ss.Rules = append(ss.Rules, Rule{
		Selector: ":host",
		Decls:    []Decl{{"display", "block"}},
	})

	container := Rule{
		Selector: "." + ContainerClass,
		Decls: []Decl{
			{"position", "relative"},
			{"width", "100%"},
			{"overflow", "hidden"},
			{"background", cssValue(cfg.BackgroundColor)},
		},
	}
	switch {
	case flex:
		// both 模式忽略 height 属性
		container.Decls = append(container.Decls,
			Decl{"height", "auto"},
			Decl{"display", "flex"},
			Decl{"flex-direction", "column"},
		)
	case cfg.Height != "":
		container.Decls = append(container.Decls, Decl{"height", cssValue(cfg.Height)})
	default:
		container.Decls = append(container.Decls, Decl{"height", cfg.WaveHeight.String()})
	}
	ss.Rules = append(ss.Rules, container)

	ss.Rules = append(ss.Rules,
		Rule{
			Selector: "." + SectionClass,
			Decls: []Decl{
				{"position", "relative"},
				{"width", "100%"},
				{"height", cfg.WaveHeight.String()},
				{"line-height", "0"},
				{"flex-shrink", "0"},
			},
		},
		Rule{
			Selector: "." + SectionClass + " ." + WavesClass,
			Decls: []Decl{
				{"display", "block"},
				{"width", "100%"},
				{"height", "100%"},
			},
		},
		Rule{
			Selector: "." + SectionClass + ".flipped",
			Decls:    []Decl{{"transform", "rotate(180deg)"}},
		},
	)

	if flex {
		ss.Rules = append(ss.Rules, Rule{
			Selector: "." + ContentClass,
			Decls: []Decl{
				{"flex", "1 1 auto"},
				{"padding", cfg.ContentPadding.String()},
				{"background", cssValue(cfg.ContentBackgroundColor)},
			},
		})
	}

	for i, w := range params.Waves {
		ss.Rules = append(ss.Rules, Rule{
			Selector: fmt.Sprintf(".%s > use:nth-child(%d)", ParallaxClass, i+1),
			Decls: []Decl{
				{"fill", cssValue(cfg.WaveColor)},
				{"opacity", wave.FormatNumber(w.Opacity)},
				{"animation-name", w.AnimationClass},
				{"animation-duration", seconds(w.Duration)},
				{"animation-timing-function", params.Easing},
				{"animation-iteration-count", "infinite"},
				{"animation-delay", seconds(w.Delay)},
			},
		})
	}

	for _, m := range wave.Motions {
		block := KeyframeBlock{Name: m.Name}
		for _, k := range m.Keyframes {
			block.Stops = append(block.Stops, KeyframeStop{
				Percent: k.Percent,
				Decls: []Decl{{
					"transform",
					fmt.Sprintf("translate3d(%spx, 0, 0)", wave.FormatNumber(k.TranslateX)),
				}},
			})
		}
		ss.Keyframes = append(ss.Keyframes, block)
	}

	return ss
}

// composeBreakpoints emits the mobile, tablet and small-mobile overrides.
// The small-mobile block comes last so it wins over the mobile block.
func composeBreakpoints(cfg *config.BannerConfig, params *generator.Parameters) []MediaBlock {
	block := func(query, height, padding string) MediaBlock {
		mb := MediaBlock{
			Query: query,
			Rules: []Rule{{
				Selector: "." + SectionClass,
				Decls:    []Decl{{"height", height}},
			}},
		}
		if cfg.Position == config.PositionBoth {
			mb.Rules = append(mb.Rules, Rule{
				Selector: "." + ContentClass,
				Decls:    []Decl{{"padding", padding}},
			})
		}
		return mb
	}

	return []MediaBlock{
		block(MobileQuery, params.Heights.Mobile.String(), params.Padding.Mobile.String()),
		block(TabletQuery, params.Heights.Tablet.String(), params.Padding.Tablet.String()),
		block(SmallMobileQuery, params.Heights.SmallMobile.String(), params.Padding.SmallMobile.String()),
	}
}

func seconds(v float64) string {
	return wave.FormatNumber(v) + "s"
}

// cssValue strips characters that would let an attribute value escape its
// declaration or the surrounding <style> element.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\n', '\r':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
