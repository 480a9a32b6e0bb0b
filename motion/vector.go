package motion

import "math"

// Vector is a point or displacement in continuous maze units.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Size is the extent of an axis-aligned box.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Square returns a Size with equal sides.
func Square(side float64) Size {
	return Size{W: side, H: side}
}

func (s Size) clamped() Size {
	return Size{W: math.Max(s.W, 0), H: math.Max(s.H, 0)}
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Bounds returns the box of the given size whose top-left corner is at pos.
func Bounds(pos Vector, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// Center returns the midpoint of r.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
