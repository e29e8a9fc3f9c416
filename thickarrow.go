package shapes

import (
	"math"
	"slices"
)

// Control points of a [ThickArrow]. The arrow points towards local −x: the
// tip is on the left edge, the body ends on the right edge.
const (
	ArrowTip ControlPointID = iota + 1
	ArrowTop
	ArrowBottom
	BodyTop
	BodyBottom
	BodyEnd
	ArrowCenter
)

var ThickArrowType = &ShapeType{
	Name:      "ThickArrow",
	Namespace: "Core",
	Category:  "Arrows",
	controlPoints: newControlPointTable(
		ControlPointDef{ArrowTip, "ArrowTip", CapResize | CapConnect},
		ControlPointDef{ArrowTop, "ArrowTop", CapResize | CapConnect},
		ControlPointDef{ArrowBottom, "ArrowBottom", CapResize | CapConnect},
		ControlPointDef{BodyTop, "BodyTop", CapResize | CapConnect},
		ControlPointDef{BodyBottom, "BodyBottom", CapResize | CapConnect},
		ControlPointDef{BodyEnd, "BodyEnd", CapResize | CapConnect},
		ControlPointDef{ArrowCenter, "ArrowCenter", CapReference | CapRotate | CapConnect},
	),
	properties: append(slices.Clone(rectangularProperties),
		PropertyDef{PropertyHeadWidth, "HeadWidth", "Length of the arrow head along the shaft."},
		PropertyDef{PropertyBodyHeight, "BodyHeight", "Thickness of the arrow body."},
	),
	newShape: func(t *ShapeType) Shape { return newThickArrow(t) },
}

// ArrowParams are the arrow specific parameters of a [ThickArrow].
type ArrowParams struct {
	HeadWidth       int
	BodyHeightRatio float64
}

// ThickArrow is a block arrow: a triangular head of HeadWidth followed by a
// rectangular body whose height is a fixed fraction of the arrow's height.
//
// 0 ≤ HeadWidth ≤ Width and 0 ≤ BodyHeight ≤ Height hold after every
// operation.
type ThickArrow struct {
	rectangular
	params ArrowParams
}

var _ Shape = (*ThickArrow)(nil)
var _ Filled = (*ThickArrow)(nil)

func newThickArrow(t *ShapeType) *ThickArrow {
	a := &ThickArrow{
		params: ArrowParams{HeadWidth: 40, BodyHeightRatio: 1.0 / 3},
	}
	a.typ = t
	a.frame = Frame{Width: 120, Height: 80}
	a.kind = rectBehavior{
		outline:       a.buildOutline,
		controlPoints: a.buildControlPoints,
		setWidth:      a.SetWidth,
		setHeight:     a.SetHeight,
	}
	return a
}

// NewThickArrow returns a thick arrow with the default styles of styles.
func NewThickArrow(styles *StyleSet) *ThickArrow {
	return ThickArrowType.CreateInstance(styles).(*ThickArrow)
}

func (a *ThickArrow) HeadWidth() int           { return a.params.HeadWidth }
func (a *ThickArrow) BodyHeightRatio() float64 { return a.params.BodyHeightRatio }

func (a *ThickArrow) BodyHeight() int {
	return int(math.Round(a.params.BodyHeightRatio * float64(a.frame.Height)))
}

// SetWidth sets the shaft length. Negative widths clamp to 0 and report
// false. The head shrinks with the shaft if it no longer fits.
func (a *ThickArrow) SetWidth(w int) bool {
	ok := a.setFrameWidth(w)
	if a.params.HeadWidth > a.frame.Width {
		a.params.HeadWidth = a.frame.Width
	}
	return ok
}

// SetHeight sets the arrow height. The body keeps its height ratio.
func (a *ThickArrow) SetHeight(h int) bool {
	return a.setFrameHeight(h)
}

// SetHeadWidth sets the head length, clamped to [0, Width].
func (a *ThickArrow) SetHeadWidth(v int) bool {
	c := clampInt(v, 0, a.frame.Width)
	a.params.HeadWidth = c
	a.invalidate()
	if c != v {
		Logger().Debug("head width clamped", "requested", v, "applied", c, "width", a.frame.Width)
		return false
	}
	return true
}

// SetBodyHeight sets the body height, clamped to [0, Height]. With a zero
// height the ratio collapses to 0.
func (a *ThickArrow) SetBodyHeight(v int) bool {
	c := clampInt(v, 0, a.frame.Height)
	if a.frame.Height == 0 {
		a.params.BodyHeightRatio = 0
	} else {
		a.params.BodyHeightRatio = float64(c) / float64(a.frame.Height)
	}
	a.invalidate()
	if c != v {
		Logger().Debug("body height clamped", "requested", v, "applied", c, "height", a.frame.Height)
		return false
	}
	return true
}

// Fit places the arrow into the rectangle, scaling the head with the width.
func (a *ThickArrow) Fit(x, y, width, height int) bool {
	ratio := 0.0
	if a.frame.Width > 0 {
		ratio = float64(a.params.HeadWidth) / float64(a.frame.Width)
	}
	ok := a.fitFrame(x, y, width, height)
	return a.SetHeadWidth(int(math.Round(ratio*float64(a.frame.Width)))) && ok
}

type arrowLayout struct {
	left, right, top, bottom, neck, bodyTop, bodyBottom int
}

func (a *ThickArrow) layout() arrowLayout {
	var l arrowLayout
	l.left = -halfRound(a.frame.Width)
	l.right = l.left + a.frame.Width
	l.top = -halfRound(a.frame.Height)
	l.bottom = l.top + a.frame.Height
	l.neck = l.left + a.params.HeadWidth
	l.bodyTop = -halfRound(a.BodyHeight())
	l.bodyBottom = l.bodyTop + a.BodyHeight()
	return l
}

func (a *ThickArrow) buildOutline() []Point {
	l := a.layout()
	return []Point{
		IPt(l.left, 0),
		IPt(l.neck, l.top),
		IPt(l.neck, l.bodyTop),
		IPt(l.right, l.bodyTop),
		IPt(l.right, l.bodyBottom),
		IPt(l.neck, l.bodyBottom),
		IPt(l.neck, l.bottom),
	}
}

func (a *ThickArrow) buildControlPoints() []Point {
	l := a.layout()
	return []Point{
		IPt(l.left, 0),
		IPt(l.neck, l.top),
		IPt(l.neck, l.bottom),
		IPt(l.neck, l.bodyTop),
		IPt(l.neck, l.bodyBottom),
		IPt(l.right, 0),
		IPt(0, 0),
	}
}

func (a *ThickArrow) MoveControlPoint(id ControlPointID, dx, dy int, mods ResizeModifiers) (bool, error) {
	if _, err := a.typ.controlPoints.lookup(a.op("MoveControlPoint"), id); err != nil {
		return false, err
	}
	var ok bool
	switch id {
	case ArrowTip, BodyEnd:
		ok = a.moveArrowEnd(id, dx, dy, mods)
	case ArrowTop, ArrowBottom:
		ok = a.moveArrowCorner(id, dx, dy, mods)
	case BodyTop, BodyBottom:
		ok = a.moveBodyEdge(id, dx, dy)
	case ArrowCenter:
		ok = false
	}
	if !ok {
		Logger().Debug("control point move clamped", "shape", a.typ.Name, "point", id, "dx", dx, "dy", dy)
	}
	return ok, nil
}

// moveArrowEnd drags the tip or the end of the body, which changes the
// shaft length and rotates the arrow about the opposite end.
func (a *ThickArrow) moveArrowEnd(id ControlPointID, dx, dy int, mods ResizeModifiers) bool {
	l := a.layout()
	place := a.placement()
	tip := IPt(l.left, 0).Transform(place)
	end := IPt(l.right, 0).Transform(place)

	moving, fixed := tip, end
	pivot := 0.5
	if a.frame.Width > 0 {
		pivot = float64(l.right) / float64(a.frame.Width)
	}
	if id == BodyEnd {
		moving, fixed = end, tip
		if a.frame.Width > 0 {
			pivot = float64(-l.left) / float64(a.frame.Width)
		}
	}

	m := MoveArrowPoint(a.center(), moving, fixed, a.frame.Angle, a.params.HeadWidth, pivot, float64(dx), float64(dy), mods)
	if m.Width == a.frame.Width && m.DX == 0 && m.DY == 0 && m.Angle == a.frame.Angle {
		return m.OK
	}
	// Rotation is about the unchanged center, so it is applied before the
	// translation and the resize.
	a.frame.Angle = m.Angle
	a.frame.X += m.DX
	a.frame.Y += m.DY
	a.SetWidth(m.Width)
	return m.OK
}

// moveArrowCorner drags a corner of the head: the vertical part resizes the
// arrow's height, the horizontal part the head width.
func (a *ThickArrow) moveArrowCorner(id ControlPointID, dx, dy int, mods ResizeModifiers) bool {
	tdx, tdy, cos, sin := a.localDelta(dx, dy)
	var m RectMove
	if id == ArrowTop {
		m = MoveRectangleTop(a.frame.Width, a.frame.Height, tdx, tdy, cos, sin, mods)
	} else {
		m = MoveRectangleBottom(a.frame.Width, a.frame.Height, tdx, tdy, cos, sin, mods)
	}
	ok := a.applyRectMove(m)
	okHead := a.SetHeadWidth(a.params.HeadWidth + int(math.Round(tdx)))
	return ok && okHead
}

// moveBodyEdge drags the top or bottom edge of the body. These points only
// move vertically; a horizontal component fails the move but the vertical
// part is still applied.
func (a *ThickArrow) moveBodyEdge(id ControlPointID, dx, dy int) bool {
	tdx, tdy, _, _ := a.localDelta(dx, dy)
	ok := int(math.Round(tdx)) == 0
	grow := 2 * int(math.Round(tdy))
	if id == BodyTop {
		grow = -grow
	}
	if grow == 0 {
		return ok
	}
	return a.SetBodyHeight(a.BodyHeight()+grow) && ok
}

func (a *ThickArrow) Clone() Shape {
	c := newThickArrow(a.typ)
	if err := c.CopyFrom(a); err != nil {
		panic(err)
	}
	return c
}

func (a *ThickArrow) CopyFrom(src Shape) error {
	if src == nil {
		return fault(NilArgument, a.op("CopyFrom"), "source shape")
	}
	if r, ok := rectangularOf(src); ok {
		a.copyRect(r)
	} else if c := coreOf(src); c != nil {
		a.copyStyles(c)
	}
	if sa, ok := src.(*ThickArrow); ok {
		a.params = sa.params
	}
	a.SetHeadWidth(a.params.HeadWidth)
	return nil
}

func (a *ThickArrow) SaveFields(w Writer, version int) error {
	if err := checkVersion(a.op("SaveFields"), version); err != nil {
		return err
	}
	fw := &fieldWriter{w: w, op: a.op("SaveFields")}
	a.saveRect(fw)
	fw.int(a.params.HeadWidth)
	fw.int(a.BodyHeight())
	return fw.err
}

// LoadFields reads the fields written by SaveFields. The frame, and with it
// the width, is loaded first; head width and body height are then clamped
// against it.
func (a *ThickArrow) LoadFields(r Reader, styles StyleResolver, version int) error {
	if err := checkVersion(a.op("LoadFields"), version); err != nil {
		return err
	}
	fr := &fieldReader{r: r}
	f, err := a.readRect(fr, styles)
	if err != nil {
		return err
	}
	headWidth := fr.int()
	bodyHeight := fr.int()
	if fr.err != nil {
		return fr.err
	}
	a.commitRect(f)
	a.SetHeadWidth(headWidth)
	a.SetBodyHeight(bodyHeight)
	return nil
}

// ApplyModelProperty routes head width and body height to their setters and
// everything else to the rectangular properties.
func (a *ThickArrow) ApplyModelProperty(id PropertyID, v MappedValue) error {
	if v == nil {
		return fault(NilArgument, a.op("ApplyModelProperty"), "value")
	}
	switch id {
	case PropertyBodyHeight:
		a.SetBodyHeight(v.Integer())
	case PropertyHeadWidth:
		a.SetHeadWidth(v.Integer())
	default:
		return a.applyRectProperty(id, v)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func halfRound(v int) int {
	return int(math.Round(float64(v) / 2))
}
