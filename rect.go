package shapes

import (
	"fmt"
	"math"
)

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// InvalidRect is the sentinel for bounds that cannot be computed, such as the
// bounds of an empty point set or of a zero-sized shape. It has negative width
// and height.
var InvalidRect = Rect{X0: 0, Y0: 0, X1: -1, Y1: -1}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns a rectangle of the given width and height,
// centered around the center point.
func NewRectFromCenter(center Point, width, height float64) Rect {
	return Rect{
		X0: center.X - width/2,
		Y0: center.Y - height/2,
		X1: center.X + width/2,
		Y1: center.Y + height/2,
	}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	if !r.IsValid() {
		return "Rect(invalid)"
	}
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X0, r.Y0, r.X1, r.Y1)
}

// IsValid reports whether r has non-negative width and height and no NaN
// coordinates.
func (r Rect) IsValid() bool {
	return !r.IsNaN() && r.Width() >= 0 && r.Height() >= 0
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// ContainsInclusive is like Contains but also accepts points on the right and
// bottom edges.
func (r Rect) ContainsInclusive(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the intersection of two rectangles.
//
// The result is zero-area if either input has negative width or
// height. The result always has non-negative width and height.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X0, o.X0)
	y0 := max(r.Y0, o.Y0)
	x1 := min(r.X1, o.X1)
	y1 := min(r.Y1, o.Y1)
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Expand returns a new rectangle, with each coordinate value rounded away from
// the center of the rectangle to the nearest integer, unless they are already
// an integer. That is to say this function will return the smallest possible
// rectangle with integer coordinates that is a superset of the input
// rectangle.
func (r Rect) Expand() Rect {
	var x0, y0, x1, y1 float64
	if r.X0 < r.X1 {
		x0 = math.Floor(r.X0)
		x1 = math.Ceil(r.X1)
	} else {
		x0 = math.Ceil(r.X0)
		x1 = math.Floor(r.X1)
	}
	if r.Y0 < r.Y1 {
		y0 = math.Floor(r.Y0)
		y1 = math.Ceil(r.Y1)
	} else {
		y0 = math.Ceil(r.Y0)
		y1 = math.Floor(r.Y1)
	}
	return Rect{
		X0: x0,
		Y0: y0,
		X1: x1,
		Y1: y1,
	}
}

// Snap rounds every coordinate that lies within eps of an integer to that
// integer. It removes the noise that rotations by multiples of 90° leave
// behind, which Expand would otherwise round outwards.
func (r Rect) Snap(eps float64) Rect {
	snap := func(v float64) float64 {
		if rv := math.Round(v); math.Abs(v-rv) <= eps {
			return rv
		}
		return v
	}
	return Rect{snap(r.X0), snap(r.Y0), snap(r.X1), snap(r.Y1)}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// Corners returns the four corners of r, clockwise in y-down space starting
// at (X0, Y0).
func (r Rect) Corners() []Point {
	return []Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}
