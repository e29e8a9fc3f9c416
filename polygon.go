package shapes

import (
	"iter"
	"math"
)

// PolygonContainsPoint reports whether (x, y) lies inside the closed polygon
// through points, using the even-odd rule. The points must already be in the
// same space as (x, y).
func PolygonContainsPoint(points []Point, x, y float64) bool {
	if len(points) < 3 {
		return false
	}
	inside := false
	j := len(points) - 1
	for i, pi := range points {
		pj := points[j]
		if (pi.Y > y) != (pj.Y > y) {
			xCross := pi.X + (y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if x < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// CalcBoundingRectangle returns the axis-aligned bounds of points after
// rotating them by angleDeg degrees about (originX, originY). It returns
// InvalidRect for an empty point set or when the result is degenerate.
func CalcBoundingRectangle(points []Point, originX, originY float64, angleDeg float64) Rect {
	if len(points) == 0 {
		return InvalidRect
	}
	aff := RotateAbout(angleDeg*math.Pi/180, Pt(originX, originY))
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, pt := range points {
		r = r.UnionPoint(pt.Transform(aff))
	}
	if !r.IsValid() || r.IsInf() {
		return InvalidRect
	}
	return r
}

// IntersectPolygonLine yields the intersections of the line from (x1, y1) to
// (x2, y2) with the edges of the closed polygon through points. If
// extendToInfinite is true, the line is not limited by its end points.
func IntersectPolygonLine(points []Point, x1, y1, x2, y2 float64, extendToInfinite bool) iter.Seq[Point] {
	probe := Line{Pt(x1, y1), Pt(x2, y2)}
	return func(yield func(Point) bool) {
		if len(points) < 2 || probe.P0 == probe.P1 {
			return
		}
		j := len(points) - 1
		for i := range points {
			edge := Line{points[j], points[i]}
			j = i
			x, ok := edge.IntersectLine(probe, extendToInfinite)
			if !ok {
				continue
			}
			if !yield(edge.Eval(x.SegmentT)) {
				return
			}
		}
	}
}

// NearestPoint returns the candidate closest to ref, or InvalidPoint if there
// are no candidates.
func NearestPoint(ref Point, candidates iter.Seq[Point]) Point {
	best := InvalidPoint
	bestDist := math.Inf(1)
	for pt := range candidates {
		if d := ref.DistanceSquared(pt); d < bestDist {
			best, bestDist = pt, d
		}
	}
	return best
}

// NearestPointOnPolyline returns the point of the open polyline through
// points that is closest to ref, or InvalidPoint for an empty polyline.
func NearestPointOnPolyline(points []Point, ref Point) Point {
	switch len(points) {
	case 0:
		return InvalidPoint
	case 1:
		return points[0]
	}
	best := InvalidPoint
	bestDist := math.Inf(1)
	for i := 1; i < len(points); i++ {
		seg := Line{points[i-1], points[i]}
		if d, t := seg.Nearest(ref); d < bestDist {
			best, bestDist = seg.Eval(t), d
		}
	}
	return best
}

// DistanceToPolyline returns the distance from ref to the open polyline
// through points, or +Inf for an empty polyline.
func DistanceToPolyline(points []Point, ref Point) float64 {
	pt := NearestPointOnPolyline(points, ref)
	if !pt.IsValid() {
		return math.Inf(1)
	}
	return ref.Distance(pt)
}
