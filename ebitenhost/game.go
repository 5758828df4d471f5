// Package ebitenhost runs a panzoom.Viewer inside an Ebitengine window.
//
// The host polls mouse and keyboard state once per Update, turns it into
// viewer events, advances the viewer with a monotonic clock and draws the
// bitmap with the matrix the viewer hands off each frame. It can also be
// driven by queued synthetic input or a JSON script, and can write PNG
// screenshots of the rendered frame.
package ebitenhost

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panzoom"
	"github.com/phanxgames/panzoom/internal/loader"
)

// DefaultTarget is the target ID the host stamps on every event.
const DefaultTarget = "canvas"

// Options configures a Game.
type Options struct {
	// Target is the target ID for events. Empty means DefaultTarget.
	Target string
	// Width and Height are the initial surface size before the first Layout.
	Width, Height int
	// HUD shows the FPS, scale and cursor overlay. Toggle with H.
	HUD bool
	// ScreenshotDir is where screenshots are written. Empty means "screenshots".
	ScreenshotDir string
	// Reloads delivers replacement images, typically from loader.Watch.
	Reloads <-chan loader.Result
	// ExitOnScriptEnd ends the game once an attached script has finished.
	ExitOnScriptEnd bool
}

// hostSurface is the viewer's Surface. Layout keeps its size current.
type hostSurface struct {
	w, h int
}

func (s *hostSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.w, s.h)
}

// Game implements ebiten.Game around one Viewer.
type Game struct {
	viewer  *panzoom.Viewer
	target  string
	source  image.Image
	img     *ebiten.Image
	surface *hostSurface
	geo     ebiten.GeoM

	start time.Time
	now   func() time.Duration
	poll  func() inputState
	prev  inputState

	hud    bool
	hudImg *ebiten.Image

	reloads         <-chan loader.Result
	exitOnScriptEnd bool

	injectQueue     []syntheticInput
	runner          *ScriptRunner
	screenshotQueue []string

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string
}

// NewGame creates a game showing src with the given viewer configuration.
func NewGame(src image.Image, cfg panzoom.Config, opts Options) (*Game, error) {
	target := opts.Target
	if target == "" {
		target = DefaultTarget
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}

	g := &Game{
		target:          target,
		surface:         &hostSurface{w: opts.Width, h: opts.Height},
		start:           time.Now(),
		poll:            pollInput,
		hud:             opts.HUD,
		reloads:         opts.Reloads,
		exitOnScriptEnd: opts.ExitOnScriptEnd,
		ScreenshotDir:   dir,
	}
	g.now = func() time.Duration { return time.Since(g.start) }

	if err := g.setImage(src, cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// setImage builds a fresh viewer for src. The current viewer is kept if
// construction fails.
func (g *Game) setImage(src image.Image, cfg panzoom.Config) error {
	if src == nil {
		return panzoom.ErrNoImage
	}
	v, err := panzoom.NewViewer(g.surface, g.target, src, cfg)
	if err != nil {
		return fmt.Errorf("creating viewer: %w", err)
	}
	if g.viewer != nil {
		v.SetDebugMode(g.viewer.DebugMode())
	}
	v.SetRenderer(panzoom.RendererFunc(g.render))

	if g.img != nil {
		g.img.Deallocate()
		g.img = nil
	}
	g.viewer = v
	g.source = src
	return nil
}

// ReplaceImage swaps in a new bitmap. The view restarts at the fit scale of
// the new image with the current configuration.
func (g *Game) ReplaceImage(src image.Image) error {
	return g.setImage(src, g.viewer.Config())
}

// Viewer returns the viewer driven by this game.
func (g *Game) Viewer() *panzoom.Viewer {
	return g.viewer
}

// HUD reports whether the overlay is shown.
func (g *Game) HUD() bool {
	return g.hud
}

// render receives the frame's transform from the viewer.
func (g *Game) render(m panzoom.Matrix) {
	g.geo = geoM(m)
}

// geoM converts a viewer matrix to an ebiten.GeoM.
func geoM(m panzoom.Matrix) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.SetElement(0, 0, m[0])
	geo.SetElement(0, 1, m[2])
	geo.SetElement(0, 2, m[4])
	geo.SetElement(1, 0, m[1])
	geo.SetElement(1, 1, m[3])
	geo.SetElement(1, 2, m[5])
	return geo
}

// receiveReload applies a pending image from the reload channel, if any.
func (g *Game) receiveReload() {
	if g.reloads == nil {
		return
	}
	select {
	case res, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			return
		}
		if res.Err != nil {
			log.Printf("reload %s: %v", res.Path, res.Err)
			return
		}
		if err := g.ReplaceImage(res.Image); err != nil {
			log.Printf("reload %s: %v", res.Path, err)
		}
	default:
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.receiveReload()

	if g.runner != nil {
		if g.runner.Done() {
			if g.exitOnScriptEnd && len(g.screenshotQueue) == 0 {
				return ebiten.Termination
			}
		} else {
			g.runner.step(g)
		}
	}

	var in inputState
	if evt, ok := g.popInjected(); ok {
		in = evt.frame(g.prev)
	} else {
		in = g.poll()
	}

	if in.quit {
		return ebiten.Termination
	}
	if in.reset {
		g.viewer.Reset()
	}
	if in.toggleHUD {
		g.hud = !g.hud
	}
	if in.toggleDebug {
		g.viewer.SetDebugMode(!g.viewer.DebugMode())
	}

	for _, e := range translateInput(g.target, g.prev, in) {
		g.viewer.HandleEvent(e)
	}
	g.prev = in

	g.viewer.Tick(g.now())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.source)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = g.geo
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.img, op)

	if g.hud {
		g.drawHUD(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The surface follows the window size; the
// viewer picks up the change on its next Tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.w, g.surface.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
