package panzoom

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// Channel identifies one of the viewer's independent animation slots.
// Each channel holds at most one live Tween.
type Channel uint8

const (
	ChannelBounds Channel = iota // ease back into bounds
	ChannelPan                   // inertial glide after a drag
	ChannelScroll                // wheel momentum settling to rest
	numChannels
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelBounds:
		return "bounds"
	case ChannelPan:
		return "pan"
	case ChannelScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Viewer pans and zooms one bitmap inside a surface. All state belongs to
// the instance; several viewers can run side by side.
//
// A Viewer is not safe for concurrent use. The host calls HandleEvent
// between frames and Tick once per frame, from the same goroutine.
type Viewer struct {
	cfg      Config
	targetID string
	surface  Surface
	image    ImageSource
	renderer Renderer

	transform *Transform
	bounds    Rect
	viewW     float64
	viewH     float64

	scale    float64
	minScale float64
	maxScale float64

	pointer   PointerState
	panVector Vec2
	momentum  float64
	tweens    [numChannels]*Tween

	now      time.Duration
	laidOut  bool
	wheelHit bool

	debug  bool
	logOut io.Writer
}

// NewViewer creates a viewer for src drawn onto surface. targetID is matched
// against Event.Target to decide which events this viewer owns. The first
// layout runs immediately: bounds cover the image and scale is the fit scale.
func NewViewer(surface Surface, targetID string, src ImageSource, cfg Config) (*Viewer, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if src == nil {
		return nil, ErrNoImage
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := sizeOf(src)
	bounds := Rect{Left: 0, Right: w, Top: 0, Bottom: h}
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %vx%v", ErrEmptyImage, w, h)
	}

	v := &Viewer{
		cfg:       cfg,
		targetID:  targetID,
		surface:   surface,
		image:     src,
		transform: NewTransform(),
		bounds:    bounds,
		scale:     1,
		minScale:  1,
		maxScale:  cfg.MaxScale,
		momentum:  1,
		debug:     cfg.Debug,
		logOut:    os.Stderr,
	}
	v.layout()
	return v, nil
}

// layout reads the surface size and re-clamps the scale. The first call
// fixes minScale to the fit scale.
func (v *Viewer) layout() {
	w, h := sizeOf(v.surface)
	if v.laidOut && w == v.viewW && h == v.viewH {
		return
	}
	v.viewW, v.viewH = w, h
	if w <= 0 || h <= 0 {
		return
	}
	if !v.laidOut {
		v.laidOut = true
		v.scale = v.FitScale()
		if v.scale > v.maxScale {
			v.scale = v.maxScale
		}
		v.minScale = v.scale
		v.transform.SetScale(v.scale, v.scale)
		v.transform.UpdateInverse()
		v.logf("layout %vx%v: fit scale %.4f", w, h, v.scale)
		return
	}
	v.zoomBy(v.pointer.Pos, 1)
	v.logf("resize %vx%v: scale %.4f", w, h, v.scale)
}

// Tick runs one frame at host timestamp now. Steps run in a fixed order:
// momentum zoom, scale write, bounds correction, inverse recompute,
// renderer handoff, then tween advancement.
func (v *Viewer) Tick(now time.Duration) {
	v.now = now
	v.layout()
	if !v.laidOut {
		return
	}

	if v.momentum != 1 {
		v.zoomBy(v.pointer.Pos, v.momentum)
	}

	v.transform.SetScale(v.scale, v.scale)

	if v.tweens[ChannelPan] != nil || v.tweens[ChannelScroll] != nil {
		v.HardBound()
	} else if v.cfg.UseConstraint && !v.pointer.Dragging && v.OutOfBounds() {
		if v.cfg.EaseOutOfBounds {
			v.Constrain()
		} else {
			v.HardBound()
		}
	}

	v.transform.UpdateInverse()

	if v.renderer != nil {
		v.renderer.Render(v.transform.Matrix())
	}

	for ch := Channel(0); ch < numChannels; ch++ {
		tw := v.tweens[ch]
		if tw == nil {
			continue
		}
		curr, done := tw.Update(now)
		if curr != nil {
			v.applyTween(ch, curr)
		}
		if done {
			v.finishTween(ch, tw)
		}
	}

	if !v.wheelHit {
		v.pointer.wheel = WheelNone
	}
	v.wheelHit = false
}

// applyTween writes a tween's current values to the fields its channel drives.
func (v *Viewer) applyTween(ch Channel, curr Fields) {
	switch ch {
	case ChannelBounds:
		v.transform.SetTranslation(curr["x"], curr["y"])
	case ChannelPan:
		v.transform.Move(curr["x"], curr["y"])
	case ChannelScroll:
		v.momentum = curr["scale"]
	}
}

// finishTween clears a channel once its tween has ended. A tween replaced
// during its own update is left alone.
func (v *Viewer) finishTween(ch Channel, tw *Tween) {
	if v.tweens[ch] != tw {
		return
	}
	v.tweens[ch] = nil
	if ch == ChannelScroll {
		v.momentum = 1
	}
	v.logf("%s tween finished", ch)
}

// startTween installs tw on ch, replacing any live tween, and starts it at
// the current frame time.
func (v *Viewer) startTween(ch Channel, tw *Tween) {
	v.tweens[ch] = tw
	tw.Start(v.now)
	v.logf("%s tween started (%v)", ch, tw.Duration())
}

// cancelTween drops the tween on ch without finishing it.
func (v *Viewer) cancelTween(ch Channel) {
	if v.tweens[ch] != nil {
		v.tweens[ch] = nil
		v.logf("%s tween cancelled", ch)
	}
}

// Reset returns to the fit scale with the image centred and all animation
// stopped.
func (v *Viewer) Reset() {
	for ch := Channel(0); ch < numChannels; ch++ {
		v.tweens[ch] = nil
	}
	v.momentum = 1
	v.panVector = Vec2{}
	v.scale = math.Min(v.FitScale(), v.maxScale)
	v.transform.SetScale(v.scale, v.scale)
	v.transform.SetTranslation(
		v.viewW/2-(v.bounds.Left+v.bounds.Width()/2)*v.scale,
		v.viewH/2-(v.bounds.Top+v.bounds.Height()/2)*v.scale,
	)
	v.transform.UpdateInverse()
	v.logf("reset: scale %.4f", v.scale)
}

// SetRenderer sets the receiver of the per-frame transform handoff.
func (v *Viewer) SetRenderer(r Renderer) {
	v.renderer = r
}

// SetDebugMode enables or disables [panzoom] log lines.
func (v *Viewer) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// DebugMode reports whether debug logging is on.
func (v *Viewer) DebugMode() bool { return v.debug }

// SetLogOutput redirects debug output. Nil restores stderr.
func (v *Viewer) SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	v.logOut = w
}

// logf writes one debug line when debug mode is on.
func (v *Viewer) logf(format string, args ...any) {
	if !v.debug {
		return
	}
	_, _ = fmt.Fprintf(v.logOut, "[panzoom] "+format+"\n", args...)
}

// --- Accessors ---

// Scale returns the current zoom scale.
func (v *Viewer) Scale() float64 { return v.scale }

// MinScale returns the fit scale fixed at first layout.
func (v *Viewer) MinScale() float64 { return v.minScale }

// MaxScale returns the configured upper zoom limit.
func (v *Viewer) MaxScale() float64 { return v.maxScale }

// Config returns the viewer's configuration.
func (v *Viewer) Config() Config { return v.cfg }

// TargetID returns the identifier matched against Event.Target.
func (v *Viewer) TargetID() string { return v.targetID }

// Image returns the image source the viewer was created with.
func (v *Viewer) Image() ImageSource { return v.image }

// Transform returns the live view transform.
func (v *Viewer) Transform() *Transform { return v.transform }

// Matrix returns the forward matrix.
func (v *Viewer) Matrix() Matrix { return v.transform.Matrix() }

// Viewport returns the surface size used by the last layout.
func (v *Viewer) Viewport() (w, h float64) { return v.viewW, v.viewH }

// ToWorld converts a screen point to world coordinates.
func (v *Viewer) ToWorld(p Vec2) Vec2 { return v.transform.ToWorld(p) }

// ToScreen converts a world point to screen coordinates.
func (v *Viewer) ToScreen(p Vec2) Vec2 { return v.transform.ToScreen(p) }

// Momentum returns the active wheel momentum multiplier (1 at rest).
func (v *Viewer) Momentum() float64 { return v.momentum }

// PanVector returns the candidate release velocity recorded while dragging.
func (v *Viewer) PanVector() Vec2 { return v.panVector }

// TweenActive reports whether ch currently holds a live tween.
func (v *Viewer) TweenActive(ch Channel) bool {
	return ch < numChannels && v.tweens[ch] != nil
}

// Pointer returns a copy of the pointer state.
func (v *Viewer) Pointer() PointerState { return v.pointer }

// Now returns the timestamp of the last Tick.
func (v *Viewer) Now() time.Duration { return v.now }
