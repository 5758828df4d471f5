package panzoom

import (
	"fmt"
	"math"
)

// boundsEpsilon is the largest margin, in screen pixels, treated as no
// margin. It absorbs rounding in the corner projection at the fit scale.
const boundsEpsilon = 1e-6

// SetBounds reconfigures the world-space rectangle the view is kept within.
// Once laid out, the scale is re-clamped against the new fit scale around
// the pointer and a live bounds tween, aimed at the old rectangle, is
// dropped. Tick then corrects any remaining translation error.
func (v *Viewer) SetBounds(top, left, right, bottom float64) error {
	r := Rect{Left: left, Right: right, Top: top, Bottom: bottom}
	if r.Empty() {
		return fmt.Errorf("%w: %+v", ErrEmptyBounds, r)
	}
	v.bounds = r
	v.cancelTween(ChannelBounds)
	if v.laidOut {
		v.zoomBy(v.pointer.Pos, 1)
		v.transform.SetScale(v.scale, v.scale)
		v.transform.UpdateInverse()
	}
	v.logf("bounds set to %+v: scale %.4f", v.bounds, v.scale)
	return nil
}

// Bounds returns the current constraint rectangle.
func (v *Viewer) Bounds() Rect {
	return v.bounds
}

// FitScale returns the smallest scale at which the bounds cover the
// viewport on both axes.
func (v *Viewer) FitScale() float64 {
	return math.Max(v.viewW/v.bounds.Width(), v.viewH/v.bounds.Height())
}

// ScreenTopLeft projects the bounds' top-left corner to screen space.
func (v *Viewer) ScreenTopLeft() Vec2 {
	return v.transform.ToScreen(Vec2{X: v.bounds.Left, Y: v.bounds.Top})
}

// ScreenBotRight projects the bounds' bottom-right corner to screen space.
func (v *Viewer) ScreenBotRight() Vec2 {
	return v.transform.ToScreen(Vec2{X: v.bounds.Right, Y: v.bounds.Bottom})
}

// correction returns the screen-space shift that removes every blank margin
// between the projected bounds and the viewport edges.
func (v *Viewer) correction() Vec2 {
	var d Vec2
	tl := v.ScreenTopLeft()
	if tl.X > boundsEpsilon {
		d.X -= tl.X
	}
	if tl.Y > boundsEpsilon {
		d.Y -= tl.Y
	}
	br := v.ScreenBotRight()
	if br.X < v.viewW-boundsEpsilon {
		d.X -= br.X - v.viewW
	}
	if br.Y < v.viewH-boundsEpsilon {
		d.Y -= br.Y - v.viewH
	}
	return d
}

// OutOfBounds reports whether any viewport edge shows blank space outside
// the projected bounds.
func (v *Viewer) OutOfBounds() bool {
	tl := v.ScreenTopLeft()
	if tl.X > boundsEpsilon || tl.Y > boundsEpsilon {
		return true
	}
	br := v.ScreenBotRight()
	return br.X < v.viewW-boundsEpsilon || br.Y < v.viewH-boundsEpsilon
}

// Dest returns the translation that would bring the view back in bounds.
func (v *Viewer) Dest() Vec2 {
	p := v.transform.Translation()
	d := v.correction()
	return Vec2{X: p.X + d.X, Y: p.Y + d.Y}
}

// HardBound applies the Dest correction immediately.
func (v *Viewer) HardBound() {
	d := v.correction()
	if d.IsZero() {
		return
	}
	v.transform.Move(d.X, d.Y)
}

// Constrain eases the view back into bounds. It does nothing while a bounds
// tween is already running or the pointer is dragging.
func (v *Viewer) Constrain() {
	if v.tweens[ChannelBounds] != nil || v.pointer.Dragging {
		return
	}
	from := v.transform.Translation()
	to := v.Dest()
	v.startTween(ChannelBounds, NewTween(
		Fields{"x": from.X, "y": from.Y},
		Fields{"x": to.X, "y": to.Y},
		v.cfg.BoundsDuration, nil, nil, EaseOutQuad,
	))
}
