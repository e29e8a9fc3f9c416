package shapes

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLibrary(t *testing.T) {
	lib := NewLibrary()
	var names []string
	for typ := range lib.Types() {
		names = append(names, typ.FullName())
	}
	diff(t, []string{"Core.Box", "Core.Polyline", "Core.ThickArrow"}, names)

	typ, ok := lib.Lookup("Core.ThickArrow")
	if !ok || typ != ThickArrowType {
		t.Fatal("ThickArrow not registered")
	}
	if err := lib.Register(ThickArrowType); !errors.Is(err, ErrDuplicateType) {
		t.Errorf("got %v, want duplicate type", err)
	}
	if err := lib.Register(nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("got %v, want nil argument", err)
	}
	if _, ok := lib.Lookup("ThickArrow"); ok {
		t.Error("lookup by short name succeeded")
	}
}

func TestShapeTypeControlPoints(t *testing.T) {
	i, err := ThickArrowType.ControlPointIndex(BodyEnd)
	if err != nil || i != 5 {
		t.Errorf("got %d, %v", i, err)
	}
	if _, err := ThickArrowType.ControlPointIndex(MiddleCenter); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("got %v, want invalid identifier", err)
	}
	defs := ThickArrowType.ControlPoints()
	defs[0].Caps = 0
	if ThickArrowType.ControlPoints()[0].Caps == 0 {
		t.Error("ControlPoints exposes the type's table")
	}
	if len(PolylineType.ControlPoints()) != 0 {
		t.Error("polyline type has fixed control points")
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate control point id did not panic")
		}
	}()
	newControlPointTable(ControlPointDef{ID: 1}, ControlPointDef{ID: 1})
}

func TestShapeTypeProperties(t *testing.T) {
	p, ok := ThickArrowType.Property("HeadWidth")
	if !ok || p.ID != PropertyHeadWidth {
		t.Errorf("got %v, %t", p, ok)
	}
	if _, ok := BoxType.Property("HeadWidth"); ok {
		t.Error("box has a head width")
	}
	var ids []PropertyID
	for def := range BoxType.PropertyDefs() {
		ids = append(ids, def.ID)
	}
	diff(t, []PropertyID{PropertyX, PropertyY, PropertyAngle, PropertyWidth, PropertyHeight, PropertyCaption}, ids)
}

func TestCreateInstance(t *testing.T) {
	styles := NewStyleSet()
	bold := styles.AddLineStyle(&LineStyle{Name: "Bold", Width: 3})
	styles.DefaultLine = bold
	s := ThickArrowType.CreateInstance(styles)
	if s.Type() != ThickArrowType || s.Template() != nil {
		t.Error("wrong type or template")
	}
	if ls, err := s.LineStyle(); err != nil || ls != bold {
		t.Errorf("got %v, %v", ls, err)
	}
	if _, err := BoxType.CreateInstance(nil).LineStyle(); err != nil {
		t.Errorf("default styles missing: %v", err)
	}
}

func TestCapabilitiesString(t *testing.T) {
	diff(t, "None", Capabilities(0).String())
	diff(t, "Resize|Connect", (CapResize | CapConnect).String())
}

func TestFault(t *testing.T) {
	err := fault(IndexOutOfRange, "Box.Caption", "caption %d", 2)
	diff(t, "Box.Caption: index out of range: caption 2", err.Error())
	if !errors.Is(err, ErrIndexOutOfRange) || errors.Is(err, ErrNilArgument) {
		t.Error("errors.Is does not match on kind")
	}
	var f *Fault
	if !errors.As(error(err), &f) || f.Op != "Box.Caption" {
		t.Error("errors.As failed")
	}
	diff(t, "FaultKind(42)", FaultKind(42).String())
}

func TestStyles(t *testing.T) {
	diff(t, 0, (*LineStyle)(nil).Inflation())
	diff(t, 2, (&LineStyle{Width: 3}).Inflation())
	diff(t, 0, (&CapStyle{Shape: CapNone, Size: 10}).Inflation())
	diff(t, 5, (&CapStyle{Shape: CapCircle, Size: 10}).Inflation())

	s := NewStyleSet()
	s.AddLineStyle(&LineStyle{Name: "A"})
	var names []string
	for n := range s.LineStyleNames() {
		names = append(names, n)
	}
	diff(t, []string{"A", "Normal"}, names)
	if _, ok := s.FillStyle("Missing"); ok {
		t.Error("found a missing style")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	a := NewThickArrow(nil)
	a.SetHeadWidth(1000)
	if !strings.Contains(buf.String(), "head width clamped") {
		t.Errorf("clamp not logged: %q", buf.String())
	}

	buf.Reset()
	if n := StringValue("wide").Integer(); n != 0 {
		t.Errorf("got %d for an unparsable value", n)
	}
	if !strings.Contains(buf.String(), "not an integer") || !strings.Contains(buf.String(), "value=wide") {
		t.Errorf("parse failure not logged: %q", buf.String())
	}
	diff(t, 42, StringValue("42").Integer())

	SetLogger(nil)
	buf.Reset()
	a.SetHeadWidth(1000)
	if buf.Len() != 0 {
		t.Error("logged after resetting the logger")
	}
}
