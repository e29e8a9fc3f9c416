package shapes

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var square = []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}

func TestPolygonContainsPoint(t *testing.T) {
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0.5, 9.5), true},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
		{Pt(15, 5), false},
	}
	for _, tt := range tests {
		if got := PolygonContainsPoint(square, tt.pt.X, tt.pt.Y); got != tt.want {
			t.Errorf("PolygonContainsPoint(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}
	if PolygonContainsPoint(square[:2], 5, 0) {
		t.Error("degenerate polygon contains a point")
	}

	// Concave: a U shape whose notch is outside.
	u := []Point{Pt(0, 0), Pt(3, 0), Pt(3, 2), Pt(2, 2), Pt(2, 1), Pt(1, 1), Pt(1, 2), Pt(0, 2)}
	if PolygonContainsPoint(u, 1.5, 1.5) {
		t.Error("notch of U reported inside")
	}
	if !PolygonContainsPoint(u, 0.5, 1.5) {
		t.Error("leg of U reported outside")
	}
}

func TestCalcBoundingRectangle(t *testing.T) {
	diff(t, CalcBoundingRectangle(square, 0, 0, 0), Rect{0, 0, 10, 10})
	got := CalcBoundingRectangle(square, 5, 5, 45)
	h := 5 * math.Sqrt2
	diff(t, got, Rect{5 - h, 5 - h, 5 + h, 5 + h}, cmpopts.EquateApprox(0, 1e-9))
	if CalcBoundingRectangle(nil, 0, 0, 0).IsValid() {
		t.Error("bounds of no points are valid")
	}
	if CalcBoundingRectangle([]Point{Pt(math.Inf(1), 0)}, 0, 0, 0).IsValid() {
		t.Error("infinite bounds are valid")
	}
}

func TestIntersectPolygonLine(t *testing.T) {
	got := slices.Collect(IntersectPolygonLine(square, 5, 5, 20, 5, false))
	diff(t, got, []Point{Pt(10, 5)}, cmpopts.EquateApprox(0, 1e-9))

	got = slices.Collect(IntersectPolygonLine(square, 5, 5, 7, 5, true))
	slices.SortFunc(got, func(a, b Point) int { return int(a.X - b.X) })
	diff(t, got, []Point{Pt(0, 5), Pt(10, 5)}, cmpopts.EquateApprox(0, 1e-9))

	if got := slices.Collect(IntersectPolygonLine(square, 5, 5, 5, 5, true)); len(got) != 0 {
		t.Errorf("degenerate probe intersected at %v", got)
	}
}

func TestNearestPoint(t *testing.T) {
	pts := slices.Values([]Point{Pt(0, 0), Pt(10, 0), Pt(3, 4)})
	diff(t, NearestPoint(Pt(4, 4), pts), Pt(3, 4))
	if NearestPoint(Pt(0, 0), slices.Values([]Point(nil))).IsValid() {
		t.Error("nearest of nothing is valid")
	}
}

func TestNearestPointOnPolyline(t *testing.T) {
	line := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	diff(t, NearestPointOnPolyline(line, Pt(5, 3)), Pt(5, 0))
	diff(t, NearestPointOnPolyline(line, Pt(14, 6)), Pt(10, 6))
	diff(t, NearestPointOnPolyline(line, Pt(-3, -4)), Pt(0, 0))
	if got := DistanceToPolyline(line, Pt(-3, -4)); got != 5 {
		t.Errorf("got distance %v, want 5", got)
	}
	if !math.IsInf(DistanceToPolyline(nil, Pt(0, 0)), 1) {
		t.Error("distance to empty polyline is finite")
	}
}
