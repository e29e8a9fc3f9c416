package shapes

import (
	"slices"
)

// Control points of a [Box], named after their position in the unrotated
// frame.
const (
	TopLeft ControlPointID = iota + 1
	TopCenter
	TopRight
	MiddleLeft
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
	MiddleCenter
)

var BoxType = &ShapeType{
	Name:      "Box",
	Namespace: "Core",
	Category:  "Basic",
	controlPoints: newControlPointTable(
		ControlPointDef{TopLeft, "TopLeft", CapResize},
		ControlPointDef{TopCenter, "TopCenter", CapResize | CapConnect},
		ControlPointDef{TopRight, "TopRight", CapResize},
		ControlPointDef{MiddleLeft, "MiddleLeft", CapResize | CapConnect},
		ControlPointDef{MiddleRight, "MiddleRight", CapResize | CapConnect},
		ControlPointDef{BottomLeft, "BottomLeft", CapResize},
		ControlPointDef{BottomCenter, "BottomCenter", CapResize | CapConnect},
		ControlPointDef{BottomRight, "BottomRight", CapResize},
		ControlPointDef{MiddleCenter, "MiddleCenter", CapReference | CapRotate | CapConnect},
	),
	properties: slices.Clone(rectangularProperties),
	newShape:   func(t *ShapeType) Shape { return newBox(t) },
}

// Box is a plain rectangle.
type Box struct {
	rectangular
}

var _ Shape = (*Box)(nil)
var _ Filled = (*Box)(nil)

func newBox(t *ShapeType) *Box {
	b := &Box{}
	b.typ = t
	b.frame = Frame{Width: 100, Height: 60}
	b.kind = rectBehavior{
		outline:       b.buildOutline,
		controlPoints: b.buildControlPoints,
		setWidth:      b.SetWidth,
		setHeight:     b.SetHeight,
	}
	return b
}

// NewBox returns a box with the default styles of styles.
func NewBox(styles *StyleSet) *Box {
	return BoxType.CreateInstance(styles).(*Box)
}

func (b *Box) SetWidth(w int) bool  { return b.setFrameWidth(w) }
func (b *Box) SetHeight(h int) bool { return b.setFrameHeight(h) }

func (b *Box) Fit(x, y, width, height int) bool {
	return b.fitFrame(x, y, width, height)
}

func (b *Box) frameRect() Rect {
	left, top := -halfRound(b.frame.Width), -halfRound(b.frame.Height)
	return Rect{
		X0: float64(left),
		Y0: float64(top),
		X1: float64(left + b.frame.Width),
		Y1: float64(top + b.frame.Height),
	}
}

func (b *Box) buildOutline() []Point {
	return b.frameRect().Corners()
}

func (b *Box) buildControlPoints() []Point {
	r := b.frameRect()
	c := Pt(0, 0)
	return []Point{
		{r.X0, r.Y0}, {c.X, r.Y0}, {r.X1, r.Y0},
		{r.X0, c.Y}, {r.X1, c.Y},
		{r.X0, r.Y1}, {c.X, r.Y1}, {r.X1, r.Y1},
		c,
	}
}

func (b *Box) MoveControlPoint(id ControlPointID, dx, dy int, mods ResizeModifiers) (bool, error) {
	if _, err := b.typ.controlPoints.lookup(b.op("MoveControlPoint"), id); err != nil {
		return false, err
	}
	if id == MiddleCenter {
		return false, nil
	}
	tdx, tdy, cos, sin := b.localDelta(dx, dy)
	w, h := b.frame.Width, b.frame.Height
	ok := true
	vertical := true
	switch id {
	case TopLeft, TopCenter, TopRight:
		ok = b.applyRectMove(MoveRectangleTop(w, h, tdx, tdy, cos, sin, mods))
	case BottomLeft, BottomCenter, BottomRight:
		ok = b.applyRectMove(MoveRectangleBottom(w, h, tdx, tdy, cos, sin, mods))
	default:
		vertical = false
	}

	hsign := 0.0
	switch id {
	case TopLeft, MiddleLeft, BottomLeft:
		hsign = -1
	case TopRight, MiddleRight, BottomRight:
		hsign = 1
	}
	switch {
	case hsign == 0:
	case vertical && mods&MaintainAspect != 0:
		// The width already followed the height; shift so that the
		// opposite corner stays put.
		if mods&MirroredResize == 0 {
			shift := Vec(hsign*float64(b.frame.Width-w)/2, 0).Rotate(sin, cos)
			ddx, ddy := Point(shift).Ints()
			b.frame.X += ddx
			b.frame.Y += ddy
			b.invalidate()
		}
	case hsign < 0:
		ok = b.applyRectMove(MoveRectangleLeft(b.frame.Width, b.frame.Height, tdx, tdy, cos, sin, mods)) && ok
	default:
		ok = b.applyRectMove(MoveRectangleRight(b.frame.Width, b.frame.Height, tdx, tdy, cos, sin, mods)) && ok
	}
	if !ok {
		Logger().Debug("control point move clamped", "shape", b.typ.Name, "point", id, "dx", dx, "dy", dy)
	}
	return ok, nil
}

func (b *Box) Clone() Shape {
	c := newBox(b.typ)
	if err := c.CopyFrom(b); err != nil {
		panic(err)
	}
	return c
}

func (b *Box) CopyFrom(src Shape) error {
	if src == nil {
		return fault(NilArgument, b.op("CopyFrom"), "source shape")
	}
	if r, ok := rectangularOf(src); ok {
		b.copyRect(r)
	} else if c := coreOf(src); c != nil {
		b.copyStyles(c)
	}
	return nil
}

func (b *Box) SaveFields(w Writer, version int) error {
	if err := checkVersion(b.op("SaveFields"), version); err != nil {
		return err
	}
	fw := &fieldWriter{w: w, op: b.op("SaveFields")}
	b.saveRect(fw)
	return fw.err
}

func (b *Box) LoadFields(r Reader, styles StyleResolver, version int) error {
	if err := checkVersion(b.op("LoadFields"), version); err != nil {
		return err
	}
	f, err := b.readRect(&fieldReader{r: r}, styles)
	if err != nil {
		return err
	}
	b.commitRect(f)
	return nil
}

func (b *Box) ApplyModelProperty(id PropertyID, v MappedValue) error {
	if v == nil {
		return fault(NilArgument, b.op("ApplyModelProperty"), "value")
	}
	return b.applyRectProperty(id, v)
}
