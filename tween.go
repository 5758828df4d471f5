package panzoom

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Fields is a named set of numeric values animated by a Tween.
type Fields map[string]float64

// clone returns a copy of f.
func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// EaseOutQuad is quadratic ease-out: -c*(t/d)*(t/d-2) + b. It is monotonic
// and reaches b+c exactly at t == d.
var EaseOutQuad ease.TweenFunc = ease.OutQuad

// Tween interpolates a set of fields from one value to another over a fixed
// duration measured against host timestamps.
//
// A Tween does nothing until Start is called. Each Update recomputes the
// values for the elapsed time, calls onUpdate, and on the update where the
// elapsed time reaches the duration it snaps to the target values, marks
// itself ended and calls onFinish exactly once. An ended Tween cannot be
// restarted; create a new one instead.
//
// The easing function only supplies progress in [0, 1], computed in
// float32 as gween's ease functions are. Field values are interpolated in
// float64 from that progress, so large translations keep full precision.
type Tween struct {
	from     Fields
	to       Fields
	curr     Fields
	change   Fields
	keys     []string
	duration time.Duration
	elapsed  time.Duration
	start    time.Duration
	started  bool
	ended    bool

	onUpdate func(Fields)
	onFinish func()
	easing   ease.TweenFunc
}

// NewTween builds a tween over the fields present in both from and to.
// Fields that appear in only one of them are ignored. A nil easing uses
// EaseOutQuad; nil callbacks are allowed.
func NewTween(from, to Fields, duration time.Duration, onUpdate func(Fields), onFinish func(), easing ease.TweenFunc) *Tween {
	if easing == nil {
		easing = EaseOutQuad
	}
	if duration < 0 {
		duration = 0
	}
	tw := &Tween{
		from:     make(Fields, len(from)),
		to:       make(Fields, len(to)),
		curr:     make(Fields, len(from)),
		change:   make(Fields, len(from)),
		duration: duration,
		onUpdate: onUpdate,
		onFinish: onFinish,
		easing:   easing,
	}
	for k, target := range to {
		begin, ok := from[k]
		if !ok {
			continue
		}
		tw.keys = append(tw.keys, k)
		tw.from[k] = begin
		tw.to[k] = target
		tw.curr[k] = begin
		tw.change[k] = target - begin
	}
	return tw
}

// Start records t0 as the baseline time. Starting an ended tween is a no-op.
func (tw *Tween) Start(t0 time.Duration) {
	if tw.ended {
		return
	}
	tw.started = true
	tw.start = t0
}

// Update advances the tween to now and returns the current values and
// whether this call finished the tween. Before Start and after the tween
// has ended it returns (nil, false) without side effects.
func (tw *Tween) Update(now time.Duration) (Fields, bool) {
	if !tw.started || tw.ended {
		return nil, false
	}

	elapsed := now - tw.start
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > tw.duration {
		elapsed = tw.duration
	}
	tw.elapsed = elapsed
	done := elapsed == tw.duration

	progress := 0.0
	if elapsed > 0 && !done {
		progress = float64(tw.easing(float32(elapsed.Seconds()), 0, 1, float32(tw.duration.Seconds())))
	}
	for _, k := range tw.keys {
		if done {
			tw.curr[k] = tw.to[k]
			continue
		}
		tw.curr[k] = tw.from[k] + tw.change[k]*progress
	}

	if tw.onUpdate != nil {
		tw.onUpdate(tw.curr)
	}
	if done {
		tw.ended = true
		if tw.onFinish != nil {
			tw.onFinish()
		}
	}
	return tw.curr, done
}

// Started reports whether Start has been called.
func (tw *Tween) Started() bool { return tw.started }

// Ended reports whether the tween has reached its duration.
func (tw *Tween) Ended() bool { return tw.ended }

// Elapsed returns the clamped elapsed time as of the last Update.
func (tw *Tween) Elapsed() time.Duration { return tw.elapsed }

// Duration returns the total tween duration.
func (tw *Tween) Duration() time.Duration { return tw.duration }

// Current returns a copy of the most recently computed values.
func (tw *Tween) Current() Fields { return tw.curr.clone() }

// Keys returns the animated field names.
func (tw *Tween) Keys() []string {
	return append([]string(nil), tw.keys...)
}
