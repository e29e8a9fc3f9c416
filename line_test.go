package shapes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	x, ok := hLine.IntersectLine(vLine, false)
	if !ok {
		t.Fatal("expected an intersection")
	}
	diff(t, x, LineIntersection{0.5, 0.1}, cmpopts.EquateApprox(0, 1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if x, ok := hLine.IntersectLine(vLine, false); ok {
		t.Errorf("expected no intersections, got %v", x)
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if x, ok := hLine.IntersectLine(vLine, false); ok {
		t.Errorf("expected no intersections, got %v", x)
	}
	x, ok = hLine.IntersectLine(vLine, true)
	if !ok {
		t.Fatal("expected an intersection with the extended probe")
	}
	diff(t, x, LineIntersection{-1, 0.1}, cmpopts.EquateApprox(0, 1e-7))
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	d, tt := l.Nearest(Pt(5, 3))
	diff(t, []float64{d, tt}, []float64{9, 0.5}, cmpopts.EquateApprox(0, 1e-9))
	d, tt = l.Nearest(Pt(-4, 3))
	diff(t, []float64{d, tt}, []float64{25, 0}, cmpopts.EquateApprox(0, 1e-9))
}
