// Package main provides the wavebanner command line tool: it renders a banner
// configuration once and exports it as a standalone HTML page.
//
// Usage:
//
//	wavebanner [flags]
//
// Flags:
//
//	-preset <name>        Built-in preset (see -list-presets), default "default"
//	-preset-file <path>   YAML preset file, overrides -preset
//	-attr name=value      Attribute override, repeatable
//	-variant index|basic  Banner variant (basic has no breakpoint overrides)
//	-seed <n>             Random seed, 0 means time-based
//	-out <path>           Write the page to a file instead of stdout
//	-title <text>         Page title
//	-content <text>       Slot content (visible with position=both)
//	-describe             Print the per-wave parameter table
//	-snapshot <name>      Store the rendered output under name
//	-list-presets         List built-in presets and exit
//	-verbose              Enable logging
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/wavebanner/pkg/banner"
	"github.com/decker502/wavebanner/pkg/config"
	"github.com/decker502/wavebanner/pkg/embedded"
	"github.com/decker502/wavebanner/pkg/generator"
	"github.com/decker502/wavebanner/pkg/markup"
	"github.com/decker502/wavebanner/pkg/snapshot"
	"github.com/quasilyte/gdata/v2"
)

// appName gdata 存储目录名
const appName = "wavebanner"

// options 命令行参数
type options struct {
	preset      string
	presetFile  string
	attrs       config.AttrFlags
	variant     string
	seed        int64
	out         string
	title       string
	content     string
	describe    bool
	snapshot    string
	listPresets bool
	verbose     bool
}

// parseOptions 解析命令行参数
func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{attrs: config.AttrFlags{}}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.preset, "preset", "default", "Built-in preset name")
	fs.StringVar(&opts.presetFile, "preset-file", "", "YAML preset file (overrides -preset)")
	fs.Var(opts.attrs, "attr", "Attribute override name=value (repeatable)")
	fs.StringVar(&opts.variant, "variant", markup.VariantIndex.String(), "Banner variant: index or basic")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 = time-based)")
	fs.StringVar(&opts.out, "out", "", "Output file (default stdout)")
	fs.StringVar(&opts.title, "title", "", "Page title")
	fs.StringVar(&opts.content, "content", "", "Slot content")
	fs.BoolVar(&opts.describe, "describe", false, "Print the per-wave parameter table")
	fs.StringVar(&opts.snapshot, "snapshot", "", "Store the rendered output under this name")
	fs.BoolVar(&opts.listPresets, "list-presets", false, "List built-in presets and exit")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.variant != markup.VariantIndex.String() && opts.variant != markup.VariantBasic.String() {
		return nil, fmt.Errorf("unknown variant %q (want index or basic)", opts.variant)
	}
	if opts.snapshot != "" {
		if err := snapshot.ValidateName(opts.snapshot); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// loadPreset 加载预设：-preset-file 优先，否则使用内置预设
func loadPreset(opts *options) (*config.PresetConfig, error) {
	if opts.presetFile != "" {
		return config.LoadPresetConfig(opts.presetFile)
	}
	return embedded.LoadPreset(opts.preset)
}

// newSource 返回 -seed 对应的随机源，nil 表示按时间播种
func newSource(seed int64) generator.Source {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

// run 执行一次渲染导出
func run(opts *options, stdout io.Writer) error {
	if opts.listPresets {
		return printPresets(stdout)
	}

	preset, err := loadPreset(opts)
	if err != nil {
		return err
	}
	attrs := config.MergeAttributes(preset.Attributes, opts.attrs)
	log.Printf("[CLI] Rendering preset %s with %d attribute(s)", preset.Name, len(attrs))

	renderer := banner.NewRenderer(
		banner.WithSource(newSource(opts.seed)),
		banner.WithVariant(markup.ParseVariant(opts.variant)),
	)
	if err := renderer.Mount(attrs); err != nil {
		var attrErr *config.AttributeError
		if !errors.As(err, &attrErr) {
			return err
		}
		// 属性错误不中断导出，渲染已使用默认值
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if opts.describe {
		fmt.Fprint(stdout, describe(renderer.Config(), renderer.Parameters()))
	}

	// -describe 且未指定 -out 时只输出表格
	if opts.out != "" || !opts.describe {
		if err := writePage(renderer.Output(), opts, stdout); err != nil {
			return err
		}
	}

	if opts.snapshot != "" {
		if err := saveSnapshot(opts, renderer); err != nil {
			return err
		}
	}
	return nil
}

func printPresets(w io.Writer) error {
	names, err := embedded.ListPresets()
	if err != nil {
		return err
	}
	for _, name := range names {
		preset, err := embedded.LoadPreset(name)
		if err != nil {
			log.Printf("[CLI] Warning: skipping preset %s: %v", name, err)
			continue
		}
		fmt.Fprintf(w, "%-10s %s\n", preset.Name, preset.Description)
	}
	return nil
}

func writePage(out banner.Output, opts *options, stdout io.Writer) error {
	page, err := out.Page(banner.PageOptions{Title: opts.title, Content: opts.content})
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = stdout.Write(page)
		return err
	}
	if err := os.WriteFile(opts.out, page, 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	log.Printf("[CLI] Page written to %s", opts.out)
	return nil
}

func saveSnapshot(opts *options, renderer *banner.Renderer) error {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}

	store, err := snapshot.NewSnapshotManager(manager)
	if err != nil {
		// 索引损坏时仍可写入新快照
		log.Printf("[CLI] Warning: %v", err)
	}

	out := renderer.Output()
	return store.Save(opts.snapshot, snapshot.Snapshot{
		Markup: out.Markup,
		Style:  out.Style,
		Seed:   opts.seed,
		Attrs:  renderer.Attributes(),
	})
}

func main() {
	embedded.Init(dataFS)

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// 默认静音运行；如需调试日志，传入 -verbose
	if !opts.verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
