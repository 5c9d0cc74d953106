package banner

import (
	"strings"
	"testing"
)

func TestOutput_Page(t *testing.T) {
	out := Output{
		Markup: `<div class="wave-container position-both"><div class="content-section"><slot></slot></div></div>`,
		Style:  ".wave-container {\n  height: auto;\n}\n",
	}

	page, err := out.Page(PageOptions{Title: "Ocean <demo>", Content: "Hello & welcome"})
	if err != nil {
		t.Fatalf("Page() error: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<template shadowrootmode="open">`,
		".wave-container {\n  height: auto;\n}",
		`<slot></slot>`,
		"<title>Ocean &lt;demo&gt;</title>",
		"<p>Hello &amp; welcome</p>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestOutput_PageDefaults(t *testing.T) {
	page, err := Output{}.Page(PageOptions{})
	if err != nil {
		t.Fatalf("Page() error: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "<title>wave banner</title>") {
		t.Errorf("default title missing:\n%s", html)
	}
	if strings.Contains(html, "<p>") {
		t.Error("empty content should not produce a paragraph")
	}
}
