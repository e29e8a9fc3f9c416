package shapes

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a drawable shape path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is the renderable outline of a shape: a sequence of straight line
// subpaths, each optionally closed.
type Path []PathElement

// PolygonPath returns the closed path through pts. It returns nil for an empty
// slice.
func PolygonPath(pts []Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts)+1)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
	return p
}

// PolylinePath returns the open path through pts.
func PolylinePath(pts []Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts))
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p
}

func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

func (p *Path) ClosePath() { p.Push(ClosePath()) }

func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Points returns the vertices of the path in order, skipping ClosePath
// elements.
func (p Path) Points() []Point {
	pts := make([]Point, 0, len(p))
	for _, el := range p {
		if el.Kind != ClosePathKind {
			pts = append(pts, el.P0)
		}
	}
	return pts
}

// Closed reports whether every subpath of p ends in ClosePath.
func (p Path) Closed() bool {
	if len(p) == 0 {
		return false
	}
	for i, el := range p {
		if el.Kind == MoveToKind && i > 0 && p[i-1].Kind != ClosePathKind {
			return false
		}
	}
	return p[len(p)-1].Kind == ClosePathKind
}

// BoundingBox returns the bounds of all vertices, or InvalidRect for an empty
// path.
func (p Path) BoundingBox() Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	n := 0
	for _, el := range p {
		if el.Kind == ClosePathKind {
			continue
		}
		r = r.UnionPoint(el.P0)
		n++
	}
	if n == 0 {
		return InvalidRect
	}
	return r
}
