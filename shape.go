package shapes

// Shape is a diagram shape instance.
//
// Geometry mutations never fail hard: a request that would break a shape
// invariant is clamped to the nearest legal configuration, applied, and
// reported through a false result. Errors are reserved for caller defects
// such as foreign control point ids.
//
// Shapes are not safe for concurrent use.
type Shape interface {
	Type() *ShapeType
	// Template returns the template the shape inherits unset styles from, or
	// nil.
	Template() *Template

	// Clone returns a copy with the same type, template, parameters and style
	// overrides.
	Clone() Shape
	// CopyFrom copies parameters and style overrides from src. Parameters
	// that src's kind does not have are left alone.
	CopyFrom(src Shape) error

	MoveBy(dx, dy int) bool
	// Rotate rotates the shape by delta tenths of a degree about the pivot.
	Rotate(delta int, pivotX, pivotY int) bool
	// Fit places the shape into the given rectangle.
	Fit(x, y, width, height int) bool

	// MoveControlPoint drags a control point by (dx, dy) in diagram space.
	MoveControlPoint(id ControlPointID, dx, dy int, mods ResizeModifiers) (bool, error)
	ControlPointIDs() []ControlPointID
	ControlPointPosition(id ControlPointID) (Point, error)
	// HasControlPointCapability reports whether the control point supports
	// any of caps. Unknown ids have no capabilities.
	HasControlPointCapability(id ControlPointID, caps Capabilities) bool
	SetConnectionPointEnabled(id ControlPointID, enabled bool) error

	ContainsPoint(x, y int) bool
	// BoundingRectangle returns the integer bounds of the shape including
	// its stroke, or InvalidRect if the shape has no extent. Tight bounds
	// follow the outline; loose bounds cover the whole rotated frame.
	BoundingRectangle(tight bool) Rect
	// ConnectionFoot returns the point on the outline where a connection
	// coming from (fromX, fromY) meets the shape.
	ConnectionFoot(fromX, fromY int) Point
	// Path returns the drawable outline in diagram space.
	Path() Path

	LineStyle() (*LineStyle, error)
	SetLineStyle(ls *LineStyle)

	SaveFields(w Writer, version int) error
	LoadFields(r Reader, styles StyleResolver, version int) error

	// ApplyModelProperty sets the property id from a model mapping.
	ApplyModelProperty(id PropertyID, v MappedValue) error

	revision() uint64
	applyDefaults(styles *StyleSet)
	bindTemplate(tmpl *Template)
}

// core holds the state every shape kind has.
type core struct {
	typ       *ShapeType
	tmpl      *Template
	rev       uint64
	lineStyle Override[*LineStyle]
	noConnect connectionMask
}

func (c *core) Type() *ShapeType    { return c.typ }
func (c *core) Template() *Template { return c.tmpl }
func (c *core) revision() uint64    { return c.rev }
func (c *core) invalidate()         { c.rev++ }

func (c *core) op(name string) string { return c.typ.Name + "." + name }

func (c *core) bindTemplate(tmpl *Template) {
	c.tmpl = tmpl
	c.lineStyle = Inherited[*LineStyle]()
	c.invalidate()
}

// cacheKey changes whenever the shape or its template shape changes, which
// covers inherited style changes.
func (c *core) cacheKey() cacheKey {
	k := cacheKey{own: c.rev}
	if c.tmpl != nil && c.tmpl.Shape != nil {
		k.tmpl = c.tmpl.Shape.revision()
		k.tmplShape = c.tmpl.Shape
	}
	return k
}

func (c *core) LineStyle() (*LineStyle, error) {
	return resolve(c.op("LineStyle"), "line style", c.lineStyle, c.tmpl, lineStyleOf)
}

func (c *core) SetLineStyle(ls *LineStyle) {
	c.lineStyle = overrideFor(ls, c.tmpl, lineStyleOf)
	c.invalidate()
}

// lineInflation is the stroke margin of the current line style, or 0 if no
// line style can be resolved.
func (c *core) lineInflation() int {
	ls, err := c.LineStyle()
	if err != nil {
		return 0
	}
	return ls.Inflation()
}

// copyCore copies everything but the type from a shape of the same kind.
func (c *core) copyCore(src *core) {
	c.copyStyles(src)
	c.noConnect = src.noConnect.clone()
}

// copyStyles copies the template reference and the line style override,
// which every kind has.
func (c *core) copyStyles(src *core) {
	c.tmpl = src.tmpl
	c.lineStyle = src.lineStyle
	c.invalidate()
}

func coreOf(s Shape) *core {
	switch s := s.(type) {
	case *ThickArrow:
		return &s.core
	case *Box:
		return &s.core
	case *Polyline:
		return &s.core
	}
	return nil
}

func (c *core) hasCapability(id ControlPointID, caps Capabilities) bool {
	i, err := c.typ.controlPoints.lookup("", id)
	if err != nil {
		return false
	}
	return hasCapability(c.typ.controlPoints.defs[i].Caps, c.noConnect, id, caps)
}

func (c *core) SetConnectionPointEnabled(id ControlPointID, enabled bool) error {
	if _, err := c.typ.controlPoints.lookup(c.op("SetConnectionPointEnabled"), id); err != nil {
		return err
	}
	c.noConnect.set(id, enabled)
	return nil
}

type cacheKey struct {
	own, tmpl uint64
	tmplShape Shape
}

// cached is a lazily computed value tied to a cache key.
type cached[T any] struct {
	key   cacheKey
	valid bool
	v     T
}

func (c *cached[T]) get(key cacheKey, compute func() T) T {
	if !c.valid || c.key != key {
		c.v = compute()
		c.key = key
		c.valid = true
	}
	return c.v
}

func lineLookup(s StyleResolver) func(string) (*LineStyle, bool) {
	if s == nil {
		return nil
	}
	return s.LineStyle
}

func fillLookup(s StyleResolver) func(string) (*FillStyle, bool) {
	if s == nil {
		return nil
	}
	return s.FillStyle
}

func capLookup(s StyleResolver) func(string) (*CapStyle, bool) {
	if s == nil {
		return nil
	}
	return s.CapStyle
}

func lineStyleName(ls *LineStyle) string { return ls.Name }
func fillStyleName(fs *FillStyle) string { return fs.Name }
func capStyleName(cs *CapStyle) string   { return cs.Name }
