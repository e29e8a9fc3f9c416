package shapes

import (
	"math"
	"slices"

	"github.com/jinzhu/copier"
)

var PolylineType = &ShapeType{
	Name:          "Polyline",
	Namespace:     "Core",
	Category:      "Lines",
	controlPoints: newControlPointTable(),
	properties: []PropertyDef{
		{PropertyX, "X", "Horizontal position of the bounds' center."},
		{PropertyY, "Y", "Vertical position of the bounds' center."},
		{PropertyWidth, "Width", "Width of the vertex bounds."},
		{PropertyHeight, "Height", "Height of the vertex bounds."},
	},
	newShape: func(t *ShapeType) Shape { return newPolyline(t) },
}

// polylineHitTolerance is added to the stroke half width when hit testing, so
// that hairlines can still be picked.
const polylineHitTolerance = 2

// MaxVertices bounds the vertex count of a polyline, including one read from
// a stream.
const MaxVertices = 1 << 16

// Polyline is an open line through two or more vertices. Its control points
// are its vertices; vertex i has id i+1.
type Polyline struct {
	core
	vertices []Point
	startCap Override[*CapStyle]
	endCap   Override[*CapStyle]

	path  cached[Path]
	tight cached[Rect]
	loose cached[Rect]
}

var _ Shape = (*Polyline)(nil)
var _ Capped = (*Polyline)(nil)

func newPolyline(t *ShapeType) *Polyline {
	p := &Polyline{vertices: []Point{IPt(0, 0), IPt(100, 0)}}
	p.typ = t
	return p
}

// NewPolyline returns a polyline through the given vertices, or nil and an
// error if there are fewer than two.
func NewPolyline(styles *StyleSet, vertices ...Point) (*Polyline, error) {
	if len(vertices) < 2 || len(vertices) > MaxVertices {
		return nil, fault(IndexOutOfRange, "Polyline.New", "%d vertices", len(vertices))
	}
	p := PolylineType.CreateInstance(styles).(*Polyline)
	p.vertices = make([]Point, len(vertices))
	for i, v := range vertices {
		p.vertices[i] = v.Round()
	}
	return p, nil
}

func (p *Polyline) applyDefaults(styles *StyleSet) {
	p.lineStyle = Explicit(styles.DefaultLine)
	p.startCap = Explicit(styles.DefaultCap)
	p.endCap = Explicit(styles.DefaultCap)
	p.invalidate()
}

func (p *Polyline) bindTemplate(tmpl *Template) {
	p.core.bindTemplate(tmpl)
	p.startCap = Inherited[*CapStyle]()
	p.endCap = Inherited[*CapStyle]()
}

func (p *Polyline) StartCapStyle() (*CapStyle, error) {
	return resolve(p.op("StartCapStyle"), "start cap", p.startCap, p.tmpl, startCapOf)
}

func (p *Polyline) SetStartCapStyle(cs *CapStyle) {
	p.startCap = overrideFor(cs, p.tmpl, startCapOf)
	p.invalidate()
}

func (p *Polyline) EndCapStyle() (*CapStyle, error) {
	return resolve(p.op("EndCapStyle"), "end cap", p.endCap, p.tmpl, endCapOf)
}

func (p *Polyline) SetEndCapStyle(cs *CapStyle) {
	p.endCap = overrideFor(cs, p.tmpl, endCapOf)
	p.invalidate()
}

func (p *Polyline) VertexCount() int { return len(p.vertices) }

func (p *Polyline) Vertex(i int) (Point, error) {
	if i < 0 || i >= len(p.vertices) {
		return InvalidPoint, fault(IndexOutOfRange, p.op("Vertex"), "vertex %d", i)
	}
	return p.vertices[i], nil
}

// AddVertex inserts a vertex before index i; i == VertexCount appends.
// Disabled connection points keep following their vertex.
func (p *Polyline) AddVertex(i int, x, y int) error {
	if i < 0 || i > len(p.vertices) || len(p.vertices) >= MaxVertices {
		return fault(IndexOutOfRange, p.op("AddVertex"), "vertex %d", i)
	}
	p.vertices = slices.Insert(p.vertices, i, IPt(x, y))
	p.noConnect = p.noConnect.shift(ControlPointID(i+1), 1)
	p.invalidate()
	return nil
}

// RemoveVertex removes vertex i. A polyline keeps at least two vertices; the
// request is refused with a false result otherwise.
func (p *Polyline) RemoveVertex(i int) (bool, error) {
	if i < 0 || i >= len(p.vertices) {
		return false, fault(IndexOutOfRange, p.op("RemoveVertex"), "vertex %d", i)
	}
	if len(p.vertices) <= 2 {
		return false, nil
	}
	p.vertices = slices.Delete(p.vertices, i, i+1)
	id := ControlPointID(i + 1)
	p.noConnect.set(id, true)
	p.noConnect = p.noConnect.shift(id+1, -1)
	p.invalidate()
	return true, nil
}

func (p *Polyline) vertexIndex(op string, id ControlPointID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(p.vertices) {
		return 0, fault(InvalidIdentifier, p.op(op), "control point %d", id)
	}
	return i, nil
}

func (p *Polyline) ControlPointIDs() []ControlPointID {
	ids := make([]ControlPointID, len(p.vertices))
	for i := range ids {
		ids[i] = ControlPointID(i + 1)
	}
	return ids
}

func (p *Polyline) ControlPointPosition(id ControlPointID) (Point, error) {
	i, err := p.vertexIndex("ControlPointPosition", id)
	if err != nil {
		return InvalidPoint, err
	}
	return p.vertices[i], nil
}

// controlPointCaps returns the capabilities of vertex i: end points glue to
// other shapes, inner vertices accept connections.
func (p *Polyline) controlPointCaps(i int) Capabilities {
	if i == 0 || i == len(p.vertices)-1 {
		return CapResize | CapGlue
	}
	return CapResize | CapConnect
}

func (p *Polyline) HasControlPointCapability(id ControlPointID, caps Capabilities) bool {
	i, err := p.vertexIndex("HasControlPointCapability", id)
	if err != nil {
		return false
	}
	return hasCapability(p.controlPointCaps(i), p.noConnect, id, caps)
}

func (p *Polyline) SetConnectionPointEnabled(id ControlPointID, enabled bool) error {
	if _, err := p.vertexIndex("SetConnectionPointEnabled", id); err != nil {
		return err
	}
	p.noConnect.set(id, enabled)
	return nil
}

// MoveControlPoint moves a single vertex. Modifiers have no effect on
// polylines.
func (p *Polyline) MoveControlPoint(id ControlPointID, dx, dy int, mods ResizeModifiers) (bool, error) {
	i, err := p.vertexIndex("MoveControlPoint", id)
	if err != nil {
		return false, err
	}
	p.vertices[i] = p.vertices[i].Translate(Vec(float64(dx), float64(dy)))
	p.invalidate()
	return true, nil
}

func (p *Polyline) MoveBy(dx, dy int) bool {
	v := Vec(float64(dx), float64(dy))
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Translate(v)
	}
	p.invalidate()
	return true
}

func (p *Polyline) Rotate(delta int, pivotX, pivotY int) bool {
	aff := RotateAbout(NormalizeAngle(delta).Radians(), IPt(pivotX, pivotY))
	for i, v := range p.vertices {
		p.vertices[i] = v.Transform(aff).Round()
	}
	p.invalidate()
	return true
}

// Fit scales the vertices so that their bounds become the given rectangle. A
// dimension in which all vertices coincide cannot be scaled; it is centered
// and the result is false unless the requested extent is zero as well.
func (p *Polyline) Fit(x, y, width, height int) bool {
	b := p.vertexBounds()
	ok := width >= 0 && height >= 0
	width, height = max(width, 0), max(height, 0)
	sx, sy := 0.0, 0.0
	if b.Width() > 0 {
		sx = float64(width) / b.Width()
	} else if width != 0 {
		ok = false
	}
	if b.Height() > 0 {
		sy = float64(height) / b.Height()
	} else if height != 0 {
		ok = false
	}
	for i, v := range p.vertices {
		nx := float64(x) + (v.X-b.X0)*sx
		ny := float64(y) + (v.Y-b.Y0)*sy
		if b.Width() == 0 {
			nx = float64(x) + float64(width)/2
		}
		if b.Height() == 0 {
			ny = float64(y) + float64(height)/2
		}
		p.vertices[i] = Pt(nx, ny).Round()
	}
	p.invalidate()
	return ok
}

func (p *Polyline) vertexBounds() Rect {
	return PolylinePath(p.vertices).BoundingBox()
}

func (p *Polyline) Path() Path {
	path := p.path.get(p.cacheKey(), func() Path { return PolylinePath(p.vertices) })
	return append(Path(nil), path...)
}

// BoundingRectangle returns the vertex bounds grown by the stroke. Loose
// bounds additionally leave room for the end caps.
func (p *Polyline) BoundingRectangle(tight bool) Rect {
	if tight {
		return p.tight.get(p.cacheKey(), func() Rect { return p.calcBounds(0) })
	}
	return p.loose.get(p.cacheKey(), func() Rect {
		start, _ := p.StartCapStyle()
		end, _ := p.EndCapStyle()
		return p.calcBounds(max(start.Inflation(), end.Inflation()))
	})
}

func (p *Polyline) calcBounds(extra int) Rect {
	b := p.vertexBounds()
	if !b.IsValid() {
		return InvalidRect
	}
	infl := float64(p.lineInflation() + extra)
	return b.Snap(snapEpsilon).Inflate(infl, infl).Expand()
}

func (p *Polyline) ContainsPoint(x, y int) bool {
	limit := float64(p.lineInflation() + polylineHitTolerance)
	return DistanceToPolyline(p.vertices, IPt(x, y)) <= limit
}

// ConnectionFoot returns the point of the line closest to (fromX, fromY).
func (p *Polyline) ConnectionFoot(fromX, fromY int) Point {
	return NearestPointOnPolyline(p.vertices, IPt(fromX, fromY))
}

func (p *Polyline) Clone() Shape {
	c := newPolyline(p.typ)
	if err := c.CopyFrom(p); err != nil {
		panic(err)
	}
	return c
}

// CopyFrom copies vertices and styles from another polyline. From other kinds
// only the line style is taken.
func (p *Polyline) CopyFrom(src Shape) error {
	if src == nil {
		return fault(NilArgument, p.op("CopyFrom"), "source shape")
	}
	if o, ok := src.(*Polyline); ok {
		var vertices []Point
		if err := copier.CopyWithOption(&vertices, &o.vertices, copier.Option{DeepCopy: true}); err != nil {
			return err
		}
		p.vertices = vertices
		p.copyCore(&o.core)
		p.startCap = o.startCap
		p.endCap = o.endCap
		return nil
	}
	if c := coreOf(src); c != nil {
		p.copyStyles(c)
	}
	return nil
}

func (p *Polyline) SaveFields(w Writer, version int) error {
	if err := checkVersion(p.op("SaveFields"), version); err != nil {
		return err
	}
	fw := &fieldWriter{w: w, op: p.op("SaveFields")}
	fw.string(styleName(p.lineStyle, lineStyleName))
	fw.string(styleName(p.startCap, capStyleName))
	fw.string(styleName(p.endCap, capStyleName))
	fw.int(len(p.vertices))
	for _, v := range p.vertices {
		x, y := v.Ints()
		fw.int(x)
		fw.int(y)
	}
	return fw.err
}

func (p *Polyline) LoadFields(r Reader, styles StyleResolver, version int) error {
	op := p.op("LoadFields")
	if err := checkVersion(op, version); err != nil {
		return err
	}
	fr := &fieldReader{r: r}
	lineName := fr.string()
	startName := fr.string()
	endName := fr.string()
	n := fr.int()
	if fr.err != nil {
		return fr.err
	}
	if n < 2 || n > MaxVertices {
		return fault(IndexOutOfRange, op, "%d vertices", n)
	}
	vertices := make([]Point, n)
	for i := range vertices {
		x := fr.int()
		y := fr.int()
		vertices[i] = IPt(x, y)
	}
	if fr.err != nil {
		return fr.err
	}
	line, err := loadStyle(op, "line", lineName, lineLookup(styles))
	if err != nil {
		return err
	}
	startCap, err := loadStyle(op, "cap", startName, capLookup(styles))
	if err != nil {
		return err
	}
	endCap, err := loadStyle(op, "cap", endName, capLookup(styles))
	if err != nil {
		return err
	}
	p.lineStyle, p.startCap, p.endCap = line, startCap, endCap
	p.vertices = vertices
	p.noConnect = nil
	p.invalidate()
	return nil
}

func (p *Polyline) ApplyModelProperty(id PropertyID, v MappedValue) error {
	if v == nil {
		return fault(NilArgument, p.op("ApplyModelProperty"), "value")
	}
	b := p.vertexBounds()
	c := b.Center()
	switch id {
	case PropertyX:
		p.MoveBy(v.Integer()-int(math.Round(c.X)), 0)
	case PropertyY:
		p.MoveBy(0, v.Integer()-int(math.Round(c.Y)))
	case PropertyWidth:
		p.Fit(int(b.X0), int(b.Y0), v.Integer(), int(b.Height()))
	case PropertyHeight:
		p.Fit(int(b.X0), int(b.Y0), int(b.Width()), v.Integer())
	default:
		return fault(UnknownProperty, p.op("ApplyModelProperty"), "property %d", id)
	}
	return nil
}
