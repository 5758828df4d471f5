package panzoom

import "math"

// Matrix is a 2D affine matrix stored as [a, b, c, d, e, f]:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// A point (x, y) maps to (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// IdentityMatrix is the identity affine matrix.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// invertAffine computes the inverse of a 2D affine matrix. A singular matrix
// (det == 0) produces NaN/Inf entries; check Singular first.
func invertAffine(m Matrix) Matrix {
	det := m[0]*m[3] - m[1]*m[2]
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Singular reports whether m has no usable inverse.
func (m Matrix) Singular() bool {
	det := m.Det()
	return det == 0 || math.IsNaN(det) || math.IsInf(det, 0)
}

// Transform is the world-to-screen view transform together with its inverse.
//
// The forward matrix is mutated through the slot setters below. The inverse
// is not kept in sync automatically: UpdateInverse must run after the last
// mutation of a frame and before ToWorld is relied on. Viewer.Tick does this
// every frame.
type Transform struct {
	m  Matrix
	im Matrix
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{m: IdentityMatrix, im: IdentityMatrix}
}

// Matrix returns the forward (world to screen) matrix.
func (t *Transform) Matrix() Matrix {
	return t.m
}

// Inverse returns the inverse matrix as of the last UpdateInverse call.
func (t *Transform) Inverse() Matrix {
	return t.im
}

// SetScale writes the diagonal scale slots (a, d).
func (t *Transform) SetScale(sx, sy float64) {
	t.m[0] = sx
	t.m[3] = sy
}

// SetSkew writes the off-diagonal slots (b, c).
func (t *Transform) SetSkew(kx, ky float64) {
	t.m[1] = kx
	t.m[2] = ky
}

// SetTranslation writes the translation slots (e, f).
func (t *Transform) SetTranslation(x, y float64) {
	t.m[4] = x
	t.m[5] = y
}

// Move shifts the translation by (dx, dy) screen pixels.
func (t *Transform) Move(dx, dy float64) {
	t.m[4] += dx
	t.m[5] += dy
}

// Translation returns the translation slots as a point.
func (t *Transform) Translation() Vec2 {
	return Vec2{X: t.m[4], Y: t.m[5]}
}

// Scale returns the x and y scale slots.
func (t *Transform) Scale() (sx, sy float64) {
	return t.m[0], t.m[3]
}

// UpdateInverse recomputes the inverse from the current forward matrix. A
// singular forward matrix keeps the previous inverse so ToWorld stays finite.
func (t *Transform) UpdateInverse() {
	if t.m.Singular() {
		return
	}
	t.im = invertAffine(t.m)
}

// ToWorld converts a screen point to world coordinates using the inverse.
func (t *Transform) ToWorld(p Vec2) Vec2 {
	x, y := transformPoint(t.im, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// ToScreen converts a world point to screen coordinates using the forward matrix.
func (t *Transform) ToScreen(p Vec2) Vec2 {
	x, y := transformPoint(t.m, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

