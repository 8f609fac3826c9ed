// Package core provides fundamental types and utilities shared by the game and the
// platform layer. It has no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or direction in world space (pixels).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Angle returns the direction of v in degrees, measured clockwise from +X
// (screen Y grows downwards).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// RectF is an axis-aligned bounding box in world space used for collisions.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF builds a box from a top-left position and a size.
func NewRectF(pos, size Vec2) RectF {
	return RectF{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Pos returns the top-left corner.
func (r RectF) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the width and height as a vector.
func (r RectF) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Overlap returns the extent of the intersection on each axis.
// Values are <= 0 when the boxes are apart on that axis.
func (r RectF) Overlap(other RectF) (x, y float64) {
	x = math.Min(r.Right(), other.Right()) - math.Max(r.X, other.X)
	y = math.Min(r.Bottom(), other.Bottom()) - math.Max(r.Y, other.Y)
	return x, y
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
