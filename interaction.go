package panzoom

import "math"

// PointerState is the viewer's view of the pointer.
type PointerState struct {
	// Pos and PosLast are the current and previous screen positions.
	Pos, PosLast Vec2
	// WorldPos is Pos converted to world coordinates.
	WorldPos Vec2
	// Button is true while the primary button is held.
	Button bool
	// Dragging is true from press to release on the managed surface.
	Dragging bool

	wheel WheelEncoding
}

// WheelChannel returns the wheel encoding currently locked, or WheelNone.
func (p PointerState) WheelChannel() WheelEncoding {
	return p.wheel
}

// HandleEvent feeds one input event through the interaction state machine.
// It reports whether the event was consumed; a consumed wheel event should
// not be given its native scroll behaviour by the host.
//
// Events for other targets are ignored unless a drag is in progress, so a
// drag that leaves the surface keeps tracking until release.
func (v *Viewer) HandleEvent(e Event) bool {
	if !v.laidOut {
		return false
	}
	if e.Target != v.targetID && !v.pointer.Dragging {
		return false
	}

	p := &v.pointer
	p.PosLast = p.Pos
	p.Pos = Vec2{X: e.X, Y: e.Y}
	p.WorldPos = v.transform.ToWorld(p.Pos)

	switch e.Kind {
	case EventPointerMove:
		if p.Button {
			delta := p.Pos.Sub(p.PosLast)
			v.transform.Move(delta.X, delta.Y)
			if v.tweens[ChannelPan] == nil {
				v.panVector = delta
			}
		}
		return p.Button

	case EventPointerDown:
		v.cancelTween(ChannelPan)
		v.cancelTween(ChannelBounds)
		p.Button = true
		p.Dragging = true
		return true

	case EventPointerUp:
		p.Button = false
		p.Dragging = false
		v.startPanTween()
		return true

	case EventWheel:
		return v.handleWheel(e)

	default:
		return false
	}
}

// handleWheel locks the wheel channel on first use and turns a nonzero
// delta into scroll momentum.
func (v *Viewer) handleWheel(e Event) bool {
	p := &v.pointer
	if p.Dragging || e.Wheel == WheelNone {
		return false
	}
	if p.wheel != WheelNone && p.wheel != e.Wheel {
		return false
	}
	p.wheel = e.Wheel
	v.wheelHit = true

	delta := e.Wheel.normalize(e.Delta)
	if delta == 0 {
		return false
	}
	v.startScrollTween(delta)
	return true
}

// startPanTween throws the view with the last drag delta, unless a glide is
// already running or the view is out of bounds.
func (v *Viewer) startPanTween() {
	if v.tweens[ChannelPan] != nil || v.OutOfBounds() {
		return
	}
	vec := v.panVector
	v.panVector = Vec2{}
	v.startTween(ChannelPan, NewTween(
		Fields{"x": vec.X, "y": vec.Y},
		Fields{"x": 0, "y": 0},
		v.cfg.PanDuration, nil, nil, EaseOutQuad,
	))
}

// startScrollTween sets the momentum multiplier from the wheel direction and
// eases it back to 1.
func (v *Viewer) startScrollTween(delta float64) {
	power := v.cfg.MomentumPower
	if delta < 0 {
		v.momentum = 1 - power
	} else {
		v.momentum = 1 + power
	}
	v.startTween(ChannelScroll, NewTween(
		Fields{"scale": v.momentum},
		Fields{"scale": 1},
		v.cfg.ScrollDuration, nil, nil, EaseOutQuad,
	))
}

// zoomTolerance is how close a clamped zoom step must be to 1 before it is
// treated as no step at all.
const zoomTolerance = 0.01

// zoomBy multiplies the scale by amount, clamped to [FitScale, MaxScale],
// keeping the world point under screen point anchor fixed.
func (v *Viewer) zoomBy(anchor Vec2, amount float64) {
	fit := v.FitScale()
	old := v.scale
	v.scale *= amount

	if v.scale < fit {
		amount = fit / old
		v.scale = fit
		if math.Abs(1-amount) < zoomTolerance {
			amount = 1
		}
	}
	if v.scale > v.maxScale {
		amount = v.maxScale / old
		v.scale = v.maxScale
	}

	t := v.transform.Translation()
	v.transform.SetTranslation(
		anchor.X-(anchor.X-t.X)*amount,
		anchor.Y-(anchor.Y-t.Y)*amount,
	)
}

// ZoomAt zooms by amount around screen point p. The pointer position is
// left alone so a drag in progress keeps tracking 1:1.
func (v *Viewer) ZoomAt(p Vec2, amount float64) {
	if !v.laidOut || !(amount > 0) {
		return
	}
	v.zoomBy(p, amount)
	v.transform.SetScale(v.scale, v.scale)
	v.transform.UpdateInverse()
	v.pointer.WorldPos = v.transform.ToWorld(v.pointer.Pos)
}
