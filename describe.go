package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/wavebanner/internal/wave"
	"github.com/decker502/wavebanner/pkg/config"
	"github.com/decker502/wavebanner/pkg/generator"
	"github.com/decker502/wavebanner/pkg/utils"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// describeColumns 表格列名与宽度
var describeColumns = []struct {
	title string
	width int
}{
	{"#", 3},
	{"animation", 12},
	{"duration", 10},
	{"delay", 10},
	{"opacity", 9},
	{"x", 5},
	{"y", 5},
	{"color", 9},
}

// pageBackground 背景色无法解析或透明时假定的页面底色
var pageBackground = color.RGBA{255, 255, 255, 255}

// describe 渲染配置摘要与逐波参数表
func describe(cfg *config.BannerConfig, params *generator.Parameters) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wave banner") + "\n")
	summary := [][2]string{
		{"position", string(cfg.Position)},
		{"style", string(cfg.AnimationStyle)},
		{"easing", params.Easing},
		{"wave-height", cfg.WaveHeight.String()},
		{"viewBox", params.ViewBox.String()},
	}
	if cfg.Responsive {
		summary = append(summary,
			[2]string{"tablet", params.Heights.Tablet.String()},
			[2]string{"mobile", params.Heights.Mobile.String()},
			[2]string{"small", params.Heights.SmallMobile.String()},
		)
	}
	for _, kv := range summary {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", kv[0])) + kv[1] + "\n")
	}
	b.WriteString("\n")

	header := make([]string, len(describeColumns))
	for i, col := range describeColumns {
		header[i] = headerStyle.Width(col.width).Render(col.title)
	}
	b.WriteString(strings.Join(header, " ") + "\n")

	fg, fgOK := utils.ParseCSSColor(cfg.WaveColor)
	bg, bgOK := utils.ParseCSSColor(cfg.BackgroundColor)
	if !bgOK || bg.A < 255 {
		bg = pageBackground
	}

	for _, w := range params.Waves {
		cells := []string{
			fmt.Sprint(w.Index + 1),
			w.AnimationClass,
			wave.FormatNumber(w.Duration) + "s",
			wave.FormatNumber(w.Delay) + "s",
			wave.FormatNumber(w.Opacity),
			fmt.Sprint(w.X),
			fmt.Sprint(w.Y),
			"?",
		}
		swatch := lipgloss.NewStyle()
		if fgOK {
			blended := utils.Blend(bg, fg, w.Opacity)
			cells[7] = utils.HexColor(blended)
			swatch = swatch.Background(lipgloss.Color(cells[7]))
		}

		row := make([]string, len(cells))
		for i, cell := range cells {
			style := lipgloss.NewStyle()
			if i == len(cells)-1 {
				style = swatch
			}
			row[i] = style.Width(describeColumns[i].width).Render(cell)
		}
		b.WriteString(strings.Join(row, " ") + "\n")
	}
	return b.String()
}
