// Package panzoom is the interaction engine for panning and zooming one large
// bitmap inside a fixed-size viewport.
//
// The engine owns the view [Transform] (a 2x3 affine matrix and its inverse),
// the [Tween] primitive used to smooth every state change, the bounds
// constraint that keeps the image covering the viewport, and the pointer and
// wheel state machine. Image decoding, windows and drawing are left to a host;
// the ebitenhost package provides one for [Ebitengine].
//
// # Quick start
//
//	v, err := panzoom.NewViewer(surface, "canvas", img, panzoom.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	v.SetRenderer(panzoom.RendererFunc(func(m panzoom.Matrix) {
//		// draw img with m
//	}))
//
//	// between frames
//	v.HandleEvent(panzoom.PointerDown("canvas", 10, 20))
//
//	// once per display refresh
//	v.Tick(now)
//
// # Frame order
//
// [Viewer.Tick] applies wheel momentum to the scale, writes the scale into the
// matrix, hard-clamps to bounds while a pan or scroll tween is running (or
// starts an eased bounds correction otherwise), recomputes the inverse, hands
// the matrix to the [Renderer], and finally advances the live tweens.
//
// # Animation channels
//
// Three independent channels each hold at most one tween: bounds correction,
// inertial pan and scroll momentum. Pressing the pointer discards the pan and
// bounds tweens. Tweens are built on [gween] with quadratic ease-out.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package panzoom
