// Package main provides an interactive preview window for wave banners.
//
// It renders the configuration through the same pipeline as the CLI and
// plays the generated wave descriptors with ebiten, so durations, delays,
// opacities and easing can be checked without a browser.
//
// Usage:
//
//	go run ./cmd/wavepreview [flags]
//
// Flags:
//
//	-preset-file <path>   YAML preset file
//	-attr name=value      Attribute override, repeatable
//	-seed <n>             Random seed, 0 means time-based
//	-verbose              Enable logging
//
// Controls:
//
//	R          - Reshuffle (re-render with the same attributes)
//	Up/Down    - Speed +/- 0.25
//	P          - Cycle position (top, bottom, both)
//	Space      - Pause the preview clock
//	S          - Save a snapshot of the current render
//	Q/Escape   - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/decker502/wavebanner/internal/wave"
	"github.com/decker502/wavebanner/pkg/banner"
	"github.com/decker502/wavebanner/pkg/config"
	"github.com/decker502/wavebanner/pkg/generator"
	"github.com/decker502/wavebanner/pkg/snapshot"
	"github.com/decker502/wavebanner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"
)

const (
	screenWidth  = 960
	screenHeight = 540
	tps          = 60

	bannerTop     = 120.0
	contentHeight = 120.0
	columnWidth   = 2

	speedStep = 0.25
	minSpeed  = 0.25
)

var errQuit = errors.New("quit requested")

var (
	presetFileFlag = flag.String("preset-file", "", "YAML preset file")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	attrFlags      = config.AttrFlags{}
)

func init() {
	flag.Var(attrFlags, "attr", "Attribute override name=value (repeatable)")
}

var (
	fallbackWave       = color.RGBA{0x1a, 0x23, 0x7e, 255}
	fallbackBackground = color.RGBA{0xf5, 0xf5, 0xf5, 255}
	screenBackground   = color.RGBA{0x20, 0x20, 0x24, 255}
)

// PreviewGame implements ebiten.Game for the banner preview
type PreviewGame struct {
	renderer  *banner.Renderer
	snapshots *snapshot.SnapshotManager
	seed      int64

	// 预览时钟（秒），暂停时不前进
	clock  float64
	paused bool

	// 速度平滑：弹簧把播放速率从当前值拉向目标值，稳定后才提交 speed 属性
	spring         harmonica.Spring
	speed          float64
	speedVelocity  float64
	targetSpeed    float64
	committedSpeed float64

	renders       int
	statusMessage string
}

// NewPreviewGame creates the preview and performs the first render
func NewPreviewGame(attrs map[string]string, seed int64, snapshots *snapshot.SnapshotManager) (*PreviewGame, error) {
	g := &PreviewGame{
		snapshots: snapshots,
		seed:      seed,
		spring:    harmonica.NewSpring(harmonica.FPS(tps), 6.0, 1.0),
	}

	var src generator.Source
	if seed != 0 {
		src = rand.New(rand.NewSource(seed))
	}
	g.renderer = banner.NewRenderer(
		banner.WithSource(src),
		banner.WithSurface(banner.SurfaceFunc(func(out banner.Output) {
			g.renders++
			log.Printf("[Preview] Render #%d committed (%d bytes markup, %d bytes style)", g.renders, len(out.Markup), len(out.Style))
		})),
	)

	if err := g.renderer.Mount(attrs); err != nil {
		var attrErr *config.AttributeError
		if !errors.As(err, &attrErr) {
			return nil, err
		}
		g.statusMessage = "Invalid attributes, defaults used"
	}

	g.speed = g.renderer.Config().Speed
	g.targetSpeed = g.speed
	g.committedSpeed = g.speed
	return g, nil
}

// Update advances the preview clock and handles input
func (g *PreviewGame) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reconfigure(g.renderer.Attributes(), "Reshuffled")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.targetSpeed += speedStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.targetSpeed = math.Max(minSpeed, g.targetSpeed-speedStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		next := nextPosition(g.renderer.Config().Position)
		if err := g.renderer.SetAttribute(config.AttrPosition, string(next)); err != nil {
			log.Printf("[Preview] Warning: %v", err)
		}
		g.statusMessage = "Position: " + string(next)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveSnapshot()
	}

	g.updateSpeed()

	if !g.paused {
		// 弹簧过渡期间按比例调整播放速率
		g.clock += dt * g.speed / g.committedSpeed
	}
	return nil
}

// updateSpeed 推进速度弹簧，稳定后把目标速度提交为 speed 属性
func (g *PreviewGame) updateSpeed() {
	g.speed, g.speedVelocity = g.spring.Update(g.speed, g.speedVelocity, g.targetSpeed)
	if g.targetSpeed == g.committedSpeed {
		return
	}
	if math.Abs(g.speed-g.targetSpeed) > 0.005 || math.Abs(g.speedVelocity) > 0.01 {
		return
	}

	g.speed = g.targetSpeed
	g.speedVelocity = 0
	value := wave.FormatNumber(g.targetSpeed)
	if err := g.renderer.SetAttribute(config.AttrSpeed, value); err != nil {
		log.Printf("[Preview] Warning: %v", err)
	}
	g.committedSpeed = g.targetSpeed
	g.statusMessage = "Speed: " + value
}

func (g *PreviewGame) reconfigure(attrs map[string]string, message string) {
	if err := g.renderer.Reconfigure(attrs); err != nil {
		log.Printf("[Preview] Warning: %v", err)
	}
	g.statusMessage = message
}

func (g *PreviewGame) saveSnapshot() {
	name := fmt.Sprintf("preview_%d", time.Now().Unix())
	out := g.renderer.Output()
	err := g.snapshots.Save(name, snapshot.Snapshot{
		Markup: out.Markup,
		Style:  out.Style,
		Seed:   g.seed,
		Attrs:  g.renderer.Attributes(),
	})
	if err != nil {
		log.Printf("[Preview] Warning: Failed to save snapshot: %v", err)
		g.statusMessage = "Snapshot failed"
		return
	}
	if g.snapshots.IsPersistent() {
		g.statusMessage = "Saved snapshot " + name
	} else {
		g.statusMessage = "Saved snapshot " + name + " (memory only)"
	}
}

// Draw renders the banner and the status overlay
func (g *PreviewGame) Draw(screen *ebiten.Image) {
	screen.Fill(screenBackground)

	cfg := g.renderer.Config()
	params := g.renderer.Parameters()

	waveColor, ok := utils.ParseCSSColor(cfg.WaveColor)
	if !ok {
		waveColor = fallbackWave
	}
	background, ok := utils.ParseCSSColor(cfg.BackgroundColor)
	if !ok || background.A == 0 {
		background = fallbackBackground
	}
	contentColor, ok := utils.ParseCSSColor(cfg.ContentBackgroundColor)
	if !ok {
		contentColor = waveColor
	}

	layout := layoutScene(cfg.Position, bannerTop, bandHeightPx(cfg.WaveHeight), contentHeight)
	// 按输出的 CSS 值求缓动，预览与样式表保持一致
	timing, err := utils.ParseTimingFunction(params.Easing)
	if err != nil {
		timing = utils.Linear{}
	}
	ease := timing.Ease

	for _, b := range layout.Waves {
		vector.DrawFilledRect(screen, 0, float32(b.Top), screenWidth, float32(b.Height), background, false)
		g.drawBand(screen, b, params, waveColor, ease)
	}
	if layout.HasContent {
		c := layout.Content
		vector.DrawFilledRect(screen, 0, float32(c.Top), screenWidth, float32(c.Height), contentColor, false)
		ebitenutil.DebugPrintAt(screen, "<slot> content", 20, int(c.Top+c.Height/2)-8)
	}

	g.drawUI(screen, cfg, params)
}

// drawBand 以竖条近似绘制一个波浪区域内的所有波
func (g *PreviewGame) drawBand(screen *ebiten.Image, b band, params *generator.Parameters, waveColor color.RGBA, ease func(float64) float64) {
	vb := params.ViewBox
	sx := screenWidth / float64(vb.Width)
	sy := b.Height / float64(vb.Height)

	for _, w := range params.Waves {
		motion := wave.MotionFor(w.Index)
		shift := motion.TranslateAtEased(progress(g.clock, w.Duration, w.Delay), ease)
		clr := utils.WithOpacity(waveColor, w.Opacity)

		for px := 0; px < screenWidth; px += columnWidth {
			vx := float64(px) / sx
			if b.Flipped {
				vx = float64(vb.Width) - vx
			}
			y, ok := surfaceY(vx - float64(w.X) - shift)
			if !ok {
				continue
			}
			// 视图坐标 → 屏幕坐标，超出 viewBox 的部分被裁剪
			top := math.Max(0, (y+float64(w.Y)-float64(vb.MinY))*sy)
			if top >= b.Height {
				continue
			}
			height := b.Height - top
			y0 := b.Top + top
			if b.Flipped {
				y0 = b.Top
			}
			vector.DrawFilledRect(screen, float32(px), float32(y0), columnWidth, float32(height), clr, false)
		}
	}
}

func (g *PreviewGame) drawUI(screen *ebiten.Image, cfg *config.BannerConfig, params *generator.Parameters) {
	ebitenutil.DebugPrintAt(screen, "Wave Banner Preview", 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Position: %s  Style: %s  Waves: %d  Speed: %.2f (target %.2f)",
		cfg.Position, cfg.AnimationStyle, len(params.Waves), g.speed, g.targetSpeed), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Easing: %s  ViewBox: %s  Renders: %d", params.Easing, params.ViewBox, g.renders), 10, 50)
	if g.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, g.statusMessage, 10, 70)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", screenWidth-70, 10)
	}
	ebitenutil.DebugPrintAt(screen, "R reshuffle  Up/Down speed  P position  Space pause  S snapshot  Q quit", 10, screenHeight-20)
}

// Layout returns the fixed logical screen size
func (g *PreviewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// openSnapshots 打开快照存储，失败时降级为仅内存
func openSnapshots() *snapshot.SnapshotManager {
	manager, err := gdata.Open(gdata.Config{AppName: "wavebanner"})
	if err != nil {
		log.Printf("[Preview] Warning: Failed to open snapshot store: %v (memory only)", err)
		manager = nil
	}
	store, err := snapshot.NewSnapshotManager(manager)
	if err != nil {
		log.Printf("[Preview] Warning: %v", err)
	}
	return store
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	attrs := map[string]string{}
	if *presetFileFlag != "" {
		preset, err := config.LoadPresetConfig(*presetFileFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		attrs = preset.Attributes
	}
	attrs = config.MergeAttributes(attrs, attrFlags)

	game, err := NewPreviewGame(attrs, *seedFlag, openSnapshots())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Wave Banner Preview")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
	os.Exit(0)
}
