package shapes

import "math"

// Frame is the placement and size of a rectangular shape: the center, the
// rotation in tenths of a degree and the unrotated extent.
type Frame struct {
	X, Y   int
	Angle  Angle
	Width  int
	Height int
}

// rectBehavior is the per-kind function table of a rectangular shape, bound
// to the instance when it is created.
type rectBehavior struct {
	// outline returns the closed outline in local coordinates, centered on
	// the origin.
	outline func() []Point
	// controlPoints returns the control points in local coordinates, in
	// control point index order.
	controlPoints func() []Point
	setWidth      func(int) bool
	setHeight     func(int) bool
}

// rectangular implements the parts of Shape shared by kinds that live in a
// rotated width×height frame.
type rectangular struct {
	core
	frame     Frame
	fillStyle Override[*FillStyle]
	caption   string
	kind      rectBehavior

	localOutline cached[[]Point]
	localCPs     cached[[]Point]
	path         cached[Path]
	tight        cached[Rect]
	loose        cached[Rect]
}

func (r *rectangular) X() int       { return r.frame.X }
func (r *rectangular) Y() int       { return r.frame.Y }
func (r *rectangular) Angle() Angle { return r.frame.Angle }
func (r *rectangular) Width() int   { return r.frame.Width }
func (r *rectangular) Height() int  { return r.frame.Height }
func (r *rectangular) Frame() Frame { return r.frame }

func (r *rectangular) center() Point { return IPt(r.frame.X, r.frame.Y) }

func (r *rectangular) placement() Affine {
	return Placement(r.center(), r.frame.Angle)
}

func (r *rectangular) applyDefaults(styles *StyleSet) {
	r.lineStyle = Explicit(styles.DefaultLine)
	r.fillStyle = Explicit(styles.DefaultFill)
	r.invalidate()
}

func (r *rectangular) bindTemplate(tmpl *Template) {
	r.core.bindTemplate(tmpl)
	r.fillStyle = Inherited[*FillStyle]()
}

func (r *rectangular) FillStyle() (*FillStyle, error) {
	return resolve(r.op("FillStyle"), "fill style", r.fillStyle, r.tmpl, fillStyleOf)
}

func (r *rectangular) SetFillStyle(fs *FillStyle) {
	r.fillStyle = overrideFor(fs, r.tmpl, fillStyleOf)
	r.invalidate()
}

// Caption returns the text of caption i. Rectangular shapes have a single
// caption.
func (r *rectangular) Caption(i int) (string, error) {
	if i != 0 {
		return "", fault(IndexOutOfRange, r.op("Caption"), "caption %d", i)
	}
	return r.caption, nil
}

func (r *rectangular) SetCaption(i int, text string) error {
	if i != 0 {
		return fault(IndexOutOfRange, r.op("SetCaption"), "caption %d", i)
	}
	r.caption = text
	return nil
}

// setFrameWidth and setFrameHeight are the plain size setters used by kinds
// without further size invariants.
func (r *rectangular) setFrameWidth(w int) bool {
	ok := w >= 0
	r.frame.Width = max(w, 0)
	r.invalidate()
	return ok
}

func (r *rectangular) setFrameHeight(h int) bool {
	ok := h >= 0
	r.frame.Height = max(h, 0)
	r.invalidate()
	return ok
}

func (r *rectangular) SetPosition(x, y int) {
	r.frame.X, r.frame.Y = x, y
	r.invalidate()
}

func (r *rectangular) SetAngle(a int) {
	r.frame.Angle = NormalizeAngle(a)
	r.invalidate()
}

func (r *rectangular) MoveBy(dx, dy int) bool {
	r.frame.X += dx
	r.frame.Y += dy
	r.invalidate()
	return true
}

func (r *rectangular) Rotate(delta int, pivotX, pivotY int) bool {
	th := NormalizeAngle(delta).Radians()
	c := r.center().Transform(RotateAbout(th, IPt(pivotX, pivotY)))
	r.frame.X, r.frame.Y = c.Ints()
	r.frame.Angle = r.frame.Angle.Add(delta)
	r.invalidate()
	return true
}

// fitFrame centers the frame in the rectangle and resizes it through the
// kind's setters.
func (r *rectangular) fitFrame(x, y, width, height int) bool {
	r.frame.X = int(math.Round(float64(x) + float64(width)/2))
	r.frame.Y = int(math.Round(float64(y) + float64(height)/2))
	okW := r.kind.setWidth(width)
	okH := r.kind.setHeight(height)
	r.invalidate()
	return okW && okH
}

// localDelta rotates a diagram space drag into the frame's local coordinates
// and returns the frame's cosine and sine alongside.
func (r *rectangular) localDelta(dx, dy int) (tdx, tdy, cos, sin float64) {
	sin, cos = math.Sincos(r.frame.Angle.Radians())
	fdx, fdy := float64(dx), float64(dy)
	return fdx*cos + fdy*sin, -fdx*sin + fdy*cos, cos, sin
}

// applyRectMove applies a kernel resize result: translation first, then the
// new size through the kind's setters.
func (r *rectangular) applyRectMove(m RectMove) bool {
	r.frame.X += m.DX
	r.frame.Y += m.DY
	okW := r.kind.setWidth(m.Width)
	okH := r.kind.setHeight(m.Height)
	r.invalidate()
	return m.OK && okW && okH
}

func (r *rectangular) outline() []Point {
	return r.localOutline.get(r.cacheKey(), r.kind.outline)
}

// calcControlPoints returns the control points in local coordinates,
// recomputing them if the parameters changed.
func (r *rectangular) calcControlPoints() []Point {
	return r.localCPs.get(r.cacheKey(), r.kind.controlPoints)
}

func (r *rectangular) ControlPointIDs() []ControlPointID {
	return r.typ.controlPoints.ids()
}

func (r *rectangular) ControlPointPosition(id ControlPointID) (Point, error) {
	i, err := r.typ.controlPoints.lookup(r.op("ControlPointPosition"), id)
	if err != nil {
		return InvalidPoint, err
	}
	return r.calcControlPoints()[i].Transform(r.placement()), nil
}

func (r *rectangular) HasControlPointCapability(id ControlPointID, caps Capabilities) bool {
	return r.hasCapability(id, caps)
}

// worldPath returns the cached outline path in diagram space. Callers must not
// modify it.
func (r *rectangular) worldPath() Path {
	return r.path.get(r.cacheKey(), func() Path {
		return PolygonPath(TransformPoints(r.outline(), r.placement()))
	})
}

func (r *rectangular) Path() Path {
	return append(Path(nil), r.worldPath()...)
}

func (r *rectangular) BoundingRectangle(tight bool) Rect {
	if tight {
		return r.tight.get(r.cacheKey(), func() Rect { return r.calcBounds(r.outline()) })
	}
	return r.loose.get(r.cacheKey(), func() Rect {
		frame := NewRectFromCenter(Point{}, float64(r.frame.Width), float64(r.frame.Height))
		return r.calcBounds(frame.Corners())
	})
}

const snapEpsilon = 1e-6

func (r *rectangular) calcBounds(local []Point) Rect {
	if r.frame.Width <= 0 || r.frame.Height <= 0 {
		return InvalidRect
	}
	b := CalcBoundingRectangle(local, 0, 0, r.frame.Angle.Degrees())
	if !b.IsValid() {
		return InvalidRect
	}
	infl := float64(r.lineInflation())
	return b.Translate(Vec2(r.center())).Snap(snapEpsilon).Inflate(infl, infl).Expand()
}

func (r *rectangular) ContainsPoint(x, y int) bool {
	pt := IPt(x, y)
	if b := r.BoundingRectangle(true); !b.IsValid() || !b.ContainsInclusive(pt) {
		return false
	}
	return PolygonContainsPoint(r.worldPath().Points(), pt.X, pt.Y)
}

func (r *rectangular) ConnectionFoot(fromX, fromY int) Point {
	c := r.center()
	if r.frame.Width <= 0 || r.frame.Height <= 0 {
		return c
	}
	from := IPt(fromX, fromY)
	world := r.worldPath().Points()
	foot := NearestPoint(from, IntersectPolygonLine(world, c.X, c.Y, from.X, from.Y, true))
	if !foot.IsValid() {
		return c
	}
	return foot
}

// copyRect copies the frame, caption and style overrides of src.
func (r *rectangular) copyRect(src *rectangular) {
	r.frame = src.frame
	if r.typ == src.typ {
		r.copyCore(&src.core)
	} else {
		r.copyStyles(&src.core)
	}
	r.fillStyle = src.fillStyle
	r.caption = src.caption
}

// rectangularOf returns the rectangular part of shapes that have one.
func rectangularOf(s Shape) (*rectangular, bool) {
	switch s := s.(type) {
	case *ThickArrow:
		return &s.rectangular, true
	case *Box:
		return &s.rectangular, true
	}
	return nil, false
}

func (r *rectangular) saveRect(fw *fieldWriter) {
	fw.int(r.frame.X)
	fw.int(r.frame.Y)
	fw.int(int(r.frame.Angle))
	fw.int(r.frame.Width)
	fw.int(r.frame.Height)
	fw.string(styleName(r.lineStyle, lineStyleName))
	fw.string(styleName(r.fillStyle, fillStyleName))
	fw.string(r.caption)
}

// rectFields holds the base fields of a rectangular shape read from a stream,
// before they are committed.
type rectFields struct {
	frame     Frame
	caption   string
	lineStyle Override[*LineStyle]
	fillStyle Override[*FillStyle]
}

// readRect reads the base fields without touching r. A read error is returned
// when fr fails; kinds read their own parameters afterwards and check fr.err
// once more before committing.
func (r *rectangular) readRect(fr *fieldReader, styles StyleResolver) (rectFields, error) {
	var f rectFields
	f.frame.X = fr.int()
	f.frame.Y = fr.int()
	f.frame.Angle = NormalizeAngle(fr.int())
	f.frame.Width = max(fr.int(), 0)
	f.frame.Height = max(fr.int(), 0)
	lineName := fr.string()
	fillName := fr.string()
	f.caption = fr.string()
	if fr.err != nil {
		return rectFields{}, fr.err
	}
	var err error
	if f.lineStyle, err = loadStyle(r.op("LoadFields"), "line", lineName, lineLookup(styles)); err != nil {
		return rectFields{}, err
	}
	if f.fillStyle, err = loadStyle(r.op("LoadFields"), "fill", fillName, fillLookup(styles)); err != nil {
		return rectFields{}, err
	}
	return f, nil
}

// commitRect assigns the base fields as read, without going through the
// kind's setters. Kinds clamp their own parameters against the new frame
// afterwards.
func (r *rectangular) commitRect(f rectFields) {
	r.frame = f.frame
	r.caption = f.caption
	r.lineStyle = f.lineStyle
	r.fillStyle = f.fillStyle
	r.invalidate()
}

// applyRectProperty is the model property handler shared by rectangular
// kinds.
func (r *rectangular) applyRectProperty(id PropertyID, v MappedValue) error {
	switch id {
	case PropertyX:
		r.SetPosition(v.Integer(), r.frame.Y)
	case PropertyY:
		r.SetPosition(r.frame.X, v.Integer())
	case PropertyAngle:
		r.SetAngle(v.Integer())
	case PropertyWidth:
		r.kind.setWidth(v.Integer())
	case PropertyHeight:
		r.kind.setHeight(v.Integer())
	case PropertyCaption:
		r.caption = v.String()
	default:
		return fault(UnknownProperty, r.op("ApplyModelProperty"), "property %d", id)
	}
	return nil
}
