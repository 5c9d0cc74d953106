package markup

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/decker502/wavebanner/internal/wave"
)

// Render serializes a document into its markup and style fragments.
// The output is byte-stable for equal documents.
func Render(doc *Document) (markup, style string) {
	return RenderMarkup(doc), RenderStyle(&doc.Styles)
}

// RenderMarkup serializes the container and its sections.
func RenderMarkup(doc *Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<div class=\"%s\">\n", strings.Join(doc.Container.Classes, " "))
	for _, s := range doc.Sections {
		if !s.IsWave() {
			fmt.Fprintf(&b, "<div class=\"%s\"><slot></slot></div>\n", ContentClass)
			continue
		}

		classes := SectionClass + " wave-" + string(s.Kind)
		if s.Flipped {
			classes += " flipped"
		}
		fmt.Fprintf(&b, "<div class=\"%s\">\n", classes)
		b.WriteString(renderSVG(s))
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

// renderSVG draws one wave section: a single template path in <defs> and one
// <use> per wave inside the parallax group.
func renderSVG(s Section) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	canvas.Startraw(
		fmt.Sprintf(`class="%s"`, WavesClass),
		fmt.Sprintf(`viewBox="%s"`, s.ViewBox.String()),
		`preserveAspectRatio="none"`,
		`shape-rendering="auto"`,
	)
	canvas.Def()
	canvas.Path(s.Shape.PathData, fmt.Sprintf(`id="%s"`, s.Shape.ID))
	canvas.DefEnd()
	canvas.Group(fmt.Sprintf(`class="%s"`, ParallaxClass))
	for _, u := range s.Uses {
		canvas.Use(u.X, u.Y, "#"+s.Shape.ID)
	}
	canvas.Gend()
	canvas.End()

	// svgo 总是输出 XML 声明，内联 SVG 不需要
	out := buf.String()
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return out
}

// RenderStyle serializes a stylesheet: rules, then keyframes, then media blocks.
func RenderStyle(ss *Stylesheet) string {
	var b strings.Builder

	for _, r := range ss.Rules {
		writeRule(&b, r, "")
	}
	for _, k := range ss.Keyframes {
		fmt.Fprintf(&b, "@keyframes %s {\n", k.Name)
		for _, stop := range k.Stops {
			writeRule(&b, Rule{Selector: wave.FormatNumber(stop.Percent) + "%", Decls: stop.Decls}, "  ")
		}
		b.WriteString("}\n")
	}
	for _, m := range ss.Media {
		fmt.Fprintf(&b, "@media %s {\n", m.Query)
		for _, r := range m.Rules {
			writeRule(&b, r, "  ")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeRule(b *strings.Builder, r Rule, indent string) {
	fmt.Fprintf(b, "%s%s {\n", indent, r.Selector)
	for _, d := range r.Decls {
		fmt.Fprintf(b, "%s  %s: %s;\n", indent, d.Property, d.Value)
	}
	fmt.Fprintf(b, "%s}\n", indent)
}
