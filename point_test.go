package shapes

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, IPt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointValidity(t *testing.T) {
	if InvalidPoint.IsValid() {
		t.Error("InvalidPoint reports valid")
	}
	if !Pt(0, 0).IsValid() {
		t.Error("origin reports invalid")
	}
	if got := InvalidPoint.String(); got != "(invalid)" {
		t.Errorf("got %q", got)
	}
	if x, y := Pt(1.5, -2.5).Ints(); x != 2 || y != -3 {
		t.Errorf("got (%d, %d), want (2, -3)", x, y)
	}
}
