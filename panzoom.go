package panzoom

import (
	"errors"
	"image"
)

// Vec2 is a 2D point or vector used for screen positions, world positions
// and pan velocities.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is a world-space rectangle given by its four edges. The coordinate
// system has its origin at the top-left with Y increasing downward.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool {
	return !(r.Width() > 0) || !(r.Height() > 0)
}

// Sized is anything with pixel bounds. image.Image and *ebiten.Image both
// satisfy it.
type Sized interface {
	Bounds() image.Rectangle
}

// Surface is the drawing target the viewer is laid out against. Its bounds
// are read every frame so a resized surface is picked up on the next tick.
type Surface = Sized

// ImageSource is the decoded bitmap being viewed. Only its dimensions are
// used by the core.
type ImageSource = Sized

// Renderer receives the forward transform once per frame, after all
// mutations for that frame have been applied.
type Renderer interface {
	Render(m Matrix)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(m Matrix)

// Render calls f(m).
func (f RendererFunc) Render(m Matrix) { f(m) }

var (
	// ErrNoImage is returned when a viewer is constructed without an image.
	ErrNoImage = errors.New("panzoom: no image source")
	// ErrEmptyImage is returned when the image has zero width or height.
	ErrEmptyImage = errors.New("panzoom: image has no pixels")
	// ErrEmptyBounds is returned by SetBounds for a rectangle with no area.
	ErrEmptyBounds = errors.New("panzoom: bounds have no area")
	// ErrNoSurface is returned when a viewer is constructed without a surface.
	ErrNoSurface = errors.New("panzoom: no surface")
	// ErrInvalidConfig wraps Config validation failures.
	ErrInvalidConfig = errors.New("panzoom: invalid config")
)

// sizeOf returns the width and height of s as floats.
func sizeOf(s Sized) (w, h float64) {
	b := s.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
