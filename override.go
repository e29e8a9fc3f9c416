package shapes

// Override is a style property value that is either set explicitly on a shape
// or inherited from the shape's template.
type Override[T comparable] struct {
	v   T
	set bool
}

// Explicit returns an override holding v.
func Explicit[T comparable](v T) Override[T] {
	return Override[T]{v: v, set: true}
}

// Inherited returns an override that defers to the template.
func Inherited[T comparable]() Override[T] {
	return Override[T]{}
}

// Get returns the explicit value and whether there is one.
func (o Override[T]) Get() (T, bool) {
	return o.v, o.set
}

func (o Override[T]) IsExplicit() bool {
	return o.set
}

// resolve returns the shape's own value if set, the template shape's value if
// the shape has a template, and a PropertyNotSet fault otherwise. Template
// shapes never have templates themselves, so this is at most one level deep.
func resolve[T comparable](op, prop string, own Override[T], tmpl *Template, get func(Shape) (T, error)) (T, error) {
	if v, ok := own.Get(); ok {
		return v, nil
	}
	if tmpl != nil && tmpl.Shape != nil {
		v, err := get(tmpl.Shape)
		if err != nil {
			Logger().Debug("template has no value", "op", op, "property", prop, "template", tmpl.Name)
		}
		return v, err
	}
	var zero T
	return zero, fault(PropertyNotSet, op, "%s is not set and there is no template", prop)
}

// overrideFor returns the override to store for v: Inherited if v is the
// template's current value, so that later template changes keep propagating,
// and Explicit otherwise.
func overrideFor[T comparable](v T, tmpl *Template, get func(Shape) (T, error)) Override[T] {
	if tmpl != nil && tmpl.Shape != nil {
		if tv, err := get(tmpl.Shape); err == nil && tv == v {
			return Inherited[T]()
		}
	}
	return Explicit(v)
}

// Filled is implemented by shapes with a fill style.
type Filled interface {
	FillStyle() (*FillStyle, error)
	SetFillStyle(*FillStyle)
}

// Capped is implemented by linear shapes with start and end caps.
type Capped interface {
	StartCapStyle() (*CapStyle, error)
	SetStartCapStyle(*CapStyle)
	EndCapStyle() (*CapStyle, error)
	SetEndCapStyle(*CapStyle)
}

func lineStyleOf(s Shape) (*LineStyle, error) { return s.LineStyle() }

func fillStyleOf(s Shape) (*FillStyle, error) {
	if f, ok := s.(Filled); ok {
		return f.FillStyle()
	}
	return nil, fault(PropertyNotSet, "FillStyle", "%s has no fill style", s.Type().Name)
}

func startCapOf(s Shape) (*CapStyle, error) {
	if c, ok := s.(Capped); ok {
		return c.StartCapStyle()
	}
	return nil, fault(PropertyNotSet, "StartCapStyle", "%s has no caps", s.Type().Name)
}

func endCapOf(s Shape) (*CapStyle, error) {
	if c, ok := s.(Capped); ok {
		return c.EndCapStyle()
	}
	return nil, fault(PropertyNotSet, "EndCapStyle", "%s has no caps", s.Type().Name)
}
