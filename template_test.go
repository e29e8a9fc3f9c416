package shapes

import (
	"errors"
	"testing"
)

func newTestTemplate(t *testing.T) (*Template, *StyleSet) {
	t.Helper()
	styles := NewStyleSet()
	proto := NewThickArrow(styles)
	proto.SetHeadWidth(50)
	tmpl, err := NewTemplate("Arrow", proto)
	if err != nil {
		t.Fatal(err)
	}
	return tmpl, styles
}

func TestOverride(t *testing.T) {
	if v, ok := Explicit(3).Get(); !ok || v != 3 {
		t.Errorf("got %v, %t", v, ok)
	}
	if _, ok := Inherited[int]().Get(); ok {
		t.Error("inherited override has a value")
	}
	if Inherited[string]().IsExplicit() {
		t.Error("inherited override is explicit")
	}
}

func TestNewTemplate(t *testing.T) {
	if _, err := NewTemplate("x", nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("got %v, want nil argument", err)
	}
	tmpl, _ := newTestTemplate(t)
	s, err := tmpl.CreateShape()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTemplate("nested", s); !errors.Is(err, ErrNestedTemplate) {
		t.Errorf("got %v, want nested template", err)
	}
	if _, err := (&Template{Name: "empty"}).CreateShape(); !errors.Is(err, ErrNilArgument) {
		t.Errorf("got %v, want nil argument", err)
	}
	if _, err := BoxType.CreateFromTemplate(nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("got %v, want nil argument", err)
	}
}

func TestTemplateInheritance(t *testing.T) {
	tmpl, styles := newTestTemplate(t)
	proto := tmpl.Shape.(*ThickArrow)
	s, err := tmpl.CreateShape()
	if err != nil {
		t.Fatal(err)
	}
	a := s.(*ThickArrow)
	if a.Template() != tmpl {
		t.Error("shape is not bound to its template")
	}
	diff(t, proto.Path(), a.Path())
	diff(t, 50, a.HeadWidth())

	ls, err := a.LineStyle()
	if err != nil || ls != styles.DefaultLine {
		t.Fatalf("got %v, %v", ls, err)
	}

	// Template changes propagate to unset properties, including cached
	// bounds.
	before := a.BoundingRectangle(true)
	wide := styles.AddLineStyle(&LineStyle{Name: "Wide", Width: 9})
	proto.SetLineStyle(wide)
	if ls, _ := a.LineStyle(); ls != wide {
		t.Error("template change did not propagate")
	}
	if a.BoundingRectangle(true) == before {
		t.Error("bounds not recomputed after template change")
	}

	// Own values win over the template.
	thin := styles.AddLineStyle(&LineStyle{Name: "Thin", Width: 0})
	a.SetLineStyle(thin)
	proto.SetLineStyle(styles.DefaultLine)
	if ls, _ := a.LineStyle(); ls != thin {
		t.Error("template overrode an explicit value")
	}

	// Setting the template's current value makes the property inherited
	// again.
	a.SetLineStyle(styles.DefaultLine)
	proto.SetLineStyle(wide)
	if ls, _ := a.LineStyle(); ls != wide {
		t.Error("setting the template value did not revert to inheritance")
	}

	red := styles.AddFillStyle(&FillStyle{Name: "Red"})
	proto.SetFillStyle(red)
	if fs, _ := a.FillStyle(); fs != red {
		t.Error("fill not inherited")
	}
}

func TestTemplateCapInheritance(t *testing.T) {
	styles := NewStyleSet()
	arrow, _ := styles.CapStyle("Arrow")
	none, _ := styles.CapStyle("None")
	proto, err := NewPolyline(styles, Pt(0, 0), Pt(100, 0), Pt(100, 50))
	if err != nil {
		t.Fatal(err)
	}
	proto.SetStartCapStyle(arrow)
	tmpl, err := NewTemplate("Connector", proto)
	if err != nil {
		t.Fatal(err)
	}
	s, err := tmpl.CreateShape()
	if err != nil {
		t.Fatal(err)
	}
	p := s.(*Polyline)

	if cs, err := p.StartCapStyle(); err != nil || cs != arrow {
		t.Fatalf("got %v, %v, want the template's arrow", cs, err)
	}
	if cs, err := p.EndCapStyle(); err != nil || cs != none {
		t.Fatalf("got %v, %v, want the template's end cap", cs, err)
	}
	if p.startCap.IsExplicit() {
		t.Error("start cap of a new instance is explicit")
	}

	// Setting the template's value keeps the cap inherited.
	p.SetStartCapStyle(arrow)
	if p.startCap.IsExplicit() {
		t.Error("setting the template's cap made it explicit")
	}

	withArrow := p.BoundingRectangle(false)
	proto.SetStartCapStyle(none)
	if cs, _ := p.StartCapStyle(); cs != none {
		t.Errorf("got %v, want the template's new cap", cs)
	}
	if p.BoundingRectangle(false) == withArrow {
		t.Error("loose bounds not recomputed after the template's cap changed")
	}

	// An own value survives template changes.
	p.SetEndCapStyle(arrow)
	if !p.endCap.IsExplicit() {
		t.Error("end cap differing from the template is not explicit")
	}
	proto.SetEndCapStyle(arrow)
	proto.SetEndCapStyle(none)
	if cs, _ := p.EndCapStyle(); cs != arrow {
		t.Errorf("got %v, want the instance's own arrow", cs)
	}
}

func TestTemplateAcrossKinds(t *testing.T) {
	tmpl, styles := newTestTemplate(t)

	b, err := BoxType.CreateFromTemplate(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, tmpl.Shape.(*ThickArrow).Frame(), b.(*Box).Frame())
	if fs, err := b.(*Box).FillStyle(); err != nil || fs != styles.DefaultFill {
		t.Errorf("got %v, %v", fs, err)
	}

	// Arrows have no caps, so a polyline from an arrow template cannot
	// resolve them.
	p, err := PolylineType.CreateFromTemplate(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.(*Polyline).EndCapStyle(); !errors.Is(err, ErrPropertyNotSet) {
		t.Errorf("got %v, want property not set", err)
	}
	if ls, err := p.LineStyle(); err != nil || ls != styles.DefaultLine {
		t.Errorf("got %v, %v", ls, err)
	}
}

func TestTemplateModel(t *testing.T) {
	tmpl, _ := newTestTemplate(t)
	tmpl.Mappings = []ModelMapping{
		{Property: PropertyCaption, ModelProperty: "name"},
		{Property: PropertyWidth, ModelProperty: "size"},
	}
	if m, ok := tmpl.Mapping(PropertyWidth); !ok || m != "size" {
		t.Errorf("got %q, %t", m, ok)
	}
	if _, ok := tmpl.Mapping(PropertyAngle); ok {
		t.Error("unmapped property has a mapping")
	}
	s, _ := tmpl.CreateShape()
	err := tmpl.ApplyModel(s, map[string]MappedValue{
		"name": StringValue("Order"),
		"size": IntValue(300),
	})
	if err != nil {
		t.Fatal(err)
	}
	a := s.(*ThickArrow)
	diff(t, 300, a.Width())
	if c, _ := a.Caption(0); c != "Order" {
		t.Errorf("got caption %q", c)
	}
}

func TestTemplateStore(t *testing.T) {
	ts := NewTemplateStore()
	if err := ts.Insert(nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("got %v, want nil argument", err)
	}
	b1, _ := NewTemplate("b", NewBox(nil))
	a, _ := NewTemplate("a", NewBox(nil))
	b2, _ := NewTemplate("b", NewBox(nil))
	for _, tmpl := range []*Template{b1, a, b2} {
		if err := ts.Insert(tmpl); err != nil {
			t.Fatal(err)
		}
	}
	diff(t, 2, ts.Len())
	if got, _ := ts.Get("b"); got != b2 {
		t.Error("insert did not replace")
	}
	var names []string
	for tmpl := range ts.All() {
		names = append(names, tmpl.Name)
	}
	diff(t, []string{"a", "b"}, names)
	if !ts.Remove("a") || ts.Remove("a") {
		t.Error("remove reported wrongly")
	}
	if _, ok := ts.Get("a"); ok {
		t.Error("removed template still present")
	}
}
