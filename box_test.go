package shapes

import (
	"errors"
	"testing"
)

func TestBoxControlPoints(t *testing.T) {
	b := NewBox(nil)
	want := []Point{
		Pt(-50, -30), Pt(0, -30), Pt(50, -30),
		Pt(-50, 0), Pt(50, 0),
		Pt(-50, 30), Pt(0, 30), Pt(50, 30),
		Pt(0, 0),
	}
	for i, id := range b.ControlPointIDs() {
		got, err := b.ControlPointPosition(id)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want[i], got)
	}
	diff(t, []Point{Pt(-50, -30), Pt(50, -30), Pt(50, 30), Pt(-50, 30)}, b.Path().Points())
}

func TestBoxMoveControlPoint(t *testing.T) {
	tests := []struct {
		name   string
		id     ControlPointID
		dx, dy int
		mods   ResizeModifiers
		ok     bool
		frame  Frame
	}{
		{"right", MiddleRight, 20, 0, 0, true, Frame{X: 10, Width: 120, Height: 60}},
		{"bottom", BottomCenter, 7, 10, 0, true, Frame{Y: 5, Width: 100, Height: 70}},
		{"top left", TopLeft, -10, -10, 0, true, Frame{X: -5, Y: -5, Width: 110, Height: 70}},
		{"top left aspect", TopLeft, -10, -10, MaintainAspect, true, Frame{X: -9, Y: -5, Width: 117, Height: 70}},
		{"bottom right mirrored", BottomRight, 10, 10, MirroredResize, true, Frame{Width: 120, Height: 80}},
		{"left past right", MiddleLeft, 150, 0, 0, false, Frame{X: 50, Width: 0, Height: 60}},
		{"center", MiddleCenter, 10, 10, 0, false, Frame{Width: 100, Height: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBox(nil)
			ok, err := b.MoveControlPoint(tt.id, tt.dx, tt.dy, tt.mods)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.ok {
				t.Errorf("got ok = %t, want %t", ok, tt.ok)
			}
			diff(t, tt.frame, b.Frame())
		})
	}

	b := NewBox(nil)
	if _, err := b.MoveControlPoint(ArrowCenter+10, 0, 0, 0); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("got %v, want invalid identifier", err)
	}
}

func TestBoxRotatedResize(t *testing.T) {
	b := NewBox(nil)
	b.SetAngle(900)
	// The local right edge points down in diagram space.
	ok, err := b.MoveControlPoint(MiddleRight, 0, 20, 0)
	if err != nil || !ok {
		t.Fatalf("got %t, %v", ok, err)
	}
	diff(t, Frame{Y: 10, Angle: 900, Width: 120, Height: 60}, b.Frame())
	diff(t, Rect{-31, -51, 31, 71}, b.BoundingRectangle(true))
}

func TestBoxGeometry(t *testing.T) {
	b := NewBox(nil)
	if !b.Fit(10, 20, 40, 30) {
		t.Error("fit failed")
	}
	diff(t, Frame{X: 30, Y: 35, Width: 40, Height: 30}, b.Frame())

	b = NewBox(nil)
	if !b.ContainsPoint(49, 0) || b.ContainsPoint(51, 0) {
		t.Error("containment does not follow the outline")
	}
	assertNear(t, b.ConnectionFoot(200, 0), Pt(50, 0), 1e-9)
	assertNear(t, b.ConnectionFoot(0, -90), Pt(0, -30), 1e-9)

	if b.Fit(0, 0, -5, 10) {
		t.Error("negative fit accepted")
	}
	diff(t, 0, b.Width())
	if b.BoundingRectangle(false).IsValid() {
		t.Error("empty box has valid bounds")
	}
}

func TestBoxCopyFromArrow(t *testing.T) {
	a := NewThickArrow(nil)
	a.SetPosition(7, 8)
	a.SetCaption(0, "from arrow")
	a.SetConnectionPointEnabled(ArrowTop, false)

	b := NewBox(nil)
	if err := b.CopyFrom(a); err != nil {
		t.Fatal(err)
	}
	diff(t, a.Frame(), b.Frame())
	if c, _ := b.Caption(0); c != "from arrow" {
		t.Errorf("got caption %q", c)
	}
	// Control point ids are per kind; the arrow's disabled head corner
	// shares its id with the box's top edge.
	if !b.HasControlPointCapability(TopCenter, CapConnect) {
		t.Error("copied connection mask across kinds")
	}
}
