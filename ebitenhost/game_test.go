package ebitenhost

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panzoom"
	"github.com/phanxgames/panzoom/internal/loader"
)

// newTestGame returns a game whose clock and input are driven by the test.
// Polled input holds the previous frame steady.
func newTestGame(t *testing.T, w, h, iw, ih int) (*Game, *time.Duration) {
	t.Helper()
	g, err := NewGame(image.NewRGBA(image.Rect(0, 0, iw, ih)), panzoom.DefaultConfig(), Options{Width: w, Height: h})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	clock := new(time.Duration)
	g.now = func() time.Duration { return *clock }
	g.poll = func() inputState {
		return inputState{mouseX: g.prev.mouseX, mouseY: g.prev.mouseY, left: g.prev.left}
	}
	return g, clock
}

// frame advances the clock one 60 Hz frame and runs Update.
func frame(t *testing.T, g *Game, clock *time.Duration) {
	t.Helper()
	*clock += 16 * time.Millisecond
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g, _ := newTestGame(t, 800, 600, 1600, 1200)
	if g.target != DefaultTarget {
		t.Errorf("target = %q, want %q", g.target, DefaultTarget)
	}
	if g.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", g.ScreenshotDir)
	}
	if s := g.Viewer().Scale(); s != 0.5 {
		t.Errorf("scale = %v, want fit 0.5", s)
	}
	if g.HUD() {
		t.Error("HUD on by default")
	}
}

func TestNewGameErrors(t *testing.T) {
	if _, err := NewGame(nil, panzoom.DefaultConfig(), Options{Width: 10, Height: 10}); !errors.Is(err, panzoom.ErrNoImage) {
		t.Errorf("nil image: err = %v", err)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := NewGame(empty, panzoom.DefaultConfig(), Options{Width: 10, Height: 10}); !errors.Is(err, panzoom.ErrEmptyImage) {
		t.Errorf("empty image: err = %v", err)
	}
}

func TestGeoMMatchesViewerMatrix(t *testing.T) {
	m := panzoom.Matrix{2, 0.5, -0.25, 3, 10, 20}
	geo := geoM(m)
	x, y := geo.Apply(4, 5)
	if x != 16.75 || y != 37 {
		t.Errorf("Apply(4,5) = (%v,%v), want (16.75,37)", x, y)
	}
}

func TestRenderStoresGeoM(t *testing.T) {
	g, clock := newTestGame(t, 800, 600, 1600, 1200)
	frame(t, g, clock)
	x, y := g.geo.Apply(1600, 1200)
	if x != 800 || y != 600 {
		t.Errorf("image corner drawn at (%v,%v), want (800,600)", x, y)
	}
}

func TestLayoutResizesSurface(t *testing.T) {
	g, clock := newTestGame(t, 800, 600, 1600, 1200)
	w, h := g.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	frame(t, g, clock)
	vw, vh := g.Viewer().Viewport()
	if vw != 1024 || vh != 768 {
		t.Errorf("viewport = %vx%v, want 1024x768", vw, vh)
	}
	if g.Viewer().OutOfBounds() {
		t.Error("out of bounds after resize")
	}
}

func TestInjectDragPansViewer(t *testing.T) {
	g, clock := newTestGame(t, 800, 600, 1600, 1200)
	v := g.Viewer()
	v.ZoomAt(panzoom.Vec2{X: 400, Y: 300}, 2)
	start := v.Transform().Translation()

	g.InjectDrag(400, 300, 380, 300, 3)
	for i := 0; i < 3; i++ {
		frame(t, g, clock)
	}

	p := v.Transform().Translation()
	if p.X > start.X-20 {
		t.Errorf("x = %v, want at most %v after dragging 20px left", p.X, start.X-20)
	}
	if p.Y != start.Y {
		t.Errorf("y = %v, want unchanged %v", p.Y, start.Y)
	}
	if pt := v.Pointer(); pt.Dragging {
		t.Error("still dragging after release")
	}
}

func TestInjectWheelZooms(t *testing.T) {
	g, clock := newTestGame(t, 800, 600, 1600, 1200)
	before := g.Viewer().Scale()
	g.InjectWheel(400, 300, 1)
	frame(t, g, clock)
	if after := g.Viewer().Scale(); after <= before {
		t.Errorf("scale %v -> %v, want zoom in", before, after)
	}
}

func TestKeyToggles(t *testing.T) {
	g, clock := newTestGame(t, 800, 600, 1600, 1200)
	v := g.Viewer()
	v.ZoomAt(panzoom.Vec2{X: 100, Y: 100}, 3)

	keys := inputState{toggleHUD: true, toggleDebug: true, reset: true}
	g.poll = func() inputState { return keys }
	frame(t, g, clock)

	if !g.HUD() {
		t.Error("H did not show the HUD")
	}
	if !v.DebugMode() {
		t.Error("D did not enable debug mode")
	}
	if v.Scale() != v.MinScale() {
		t.Errorf("scale after reset = %v, want %v", v.Scale(), v.MinScale())
	}

	g.poll = func() inputState { return inputState{quit: true} }
	*clock += 16 * time.Millisecond
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit: err = %v, want ebiten.Termination", err)
	}
}

func TestReplaceImage(t *testing.T) {
	g, _ := newTestGame(t, 800, 600, 1600, 1200)
	g.Viewer().SetDebugMode(true)
	g.Viewer().SetLogOutput(&strings.Builder{})

	if err := g.ReplaceImage(image.NewRGBA(image.Rect(0, 0, 400, 300))); err != nil {
		t.Fatalf("ReplaceImage: %v", err)
	}
	v := g.Viewer()
	if b := v.Bounds(); b.Width() != 400 || b.Height() != 300 {
		t.Errorf("bounds = %+v, want 400x300", b)
	}
	if v.Scale() != 2 {
		t.Errorf("scale = %v, want fit 2", v.Scale())
	}
	if !v.DebugMode() {
		t.Error("debug mode not carried over")
	}

	err := g.ReplaceImage(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	if !errors.Is(err, panzoom.ErrEmptyImage) {
		t.Errorf("err = %v, want ErrEmptyImage", err)
	}
	if g.Viewer() != v {
		t.Error("failed replacement swapped the viewer")
	}
}

func TestReloadChannel(t *testing.T) {
	g, clock := newTestGame(t, 800, 600, 1600, 1200)
	ch := make(chan loader.Result, 1)
	g.reloads = ch

	old := g.Viewer()
	ch <- loader.Result{Path: "bad.png", Err: errors.New("boom")}
	frame(t, g, clock)
	if g.Viewer() != old {
		t.Error("failed reload replaced the viewer")
	}

	ch <- loader.Result{Path: "new.png", Image: image.NewRGBA(image.Rect(0, 0, 800, 600))}
	frame(t, g, clock)
	if g.Viewer() == old {
		t.Fatal("reload did not replace the viewer")
	}
	if s := g.Viewer().Scale(); s != 1 {
		t.Errorf("scale = %v, want 1", s)
	}

	close(ch)
	frame(t, g, clock)
	if g.reloads != nil {
		t.Error("closed reload channel still polled")
	}
}

func TestFormatHUD(t *testing.T) {
	g, _ := newTestGame(t, 800, 600, 1600, 1200)
	text := formatHUD(60, 60, g.Viewer(), panzoom.Vec2{X: 100, Y: 50})
	for _, want := range []string{"FPS: 60.0", "scale: 0.500", "cursor: 100,50", "image: 200.0,100.0"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD %q missing %q", text, want)
		}
	}
}
