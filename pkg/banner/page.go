package banner

import (
	"bytes"
	"fmt"
	"html/template"
)

// pageTemplate hosts the render in a declarative shadow root so the style
// fragment stays scoped exactly as it would be inside the widget.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<wave-banner>
<template shadowrootmode="open">
<style>
{{.Style}}</style>
{{.Markup}}</template>
{{if .Content}}<p>{{.Content}}</p>
{{end}}</wave-banner>
</body>
</html>
`))

// PageOptions controls standalone page export.
type PageOptions struct {
	Title string
	// Content is placed in the banner's slot (only visible with position=both)
	Content string
}

// Page wraps the output in a standalone HTML document.
func (o Output) Page(opts PageOptions) ([]byte, error) {
	if opts.Title == "" {
		opts.Title = "wave banner"
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Title   string
		Content string
		Style   template.CSS
		Markup  template.HTML
	}{
		Title:   opts.Title,
		Content: opts.Content,
		Style:   template.CSS(o.Style),
		Markup:  template.HTML(o.Markup),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}
