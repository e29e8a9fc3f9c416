package shapes

import (
	"iter"
	"maps"
	"slices"
)

// ShapeType describes a kind of shape. It is shared by all instances of the
// kind and never changes after creation.
type ShapeType struct {
	Name      string
	Namespace string
	Category  string

	controlPoints controlPointTable
	properties    []PropertyDef
	newShape      func(t *ShapeType) Shape
}

// FullName returns the namespace-qualified name under which the type is
// registered.
func (t *ShapeType) FullName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

func (t *ShapeType) String() string { return t.FullName() }

// ControlPoints returns the kind's control point definitions in index order.
// Kinds with a variable number of control points return nil.
func (t *ShapeType) ControlPoints() []ControlPointDef {
	return slices.Clone(t.controlPoints.defs)
}

// ControlPointIndex maps id to its index in the kind's control point list.
func (t *ShapeType) ControlPointIndex(id ControlPointID) (int, error) {
	return t.controlPoints.lookup(t.Name+".ControlPointIndex", id)
}

// PropertyDefs enumerates the properties that model mappings can drive.
func (t *ShapeType) PropertyDefs() iter.Seq[PropertyDef] {
	return slices.Values(t.properties)
}

// Property looks a property definition up by name.
func (t *ShapeType) Property(name string) (PropertyDef, bool) {
	for _, p := range t.properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyDef{}, false
}

// CreateInstance returns a new shape whose style properties are set explicitly
// to the defaults of styles.
func (t *ShapeType) CreateInstance(styles *StyleSet) Shape {
	s := t.newShape(t)
	if styles == nil {
		styles = NewStyleSet()
	}
	s.applyDefaults(styles)
	return s
}

// CreateFromTemplate returns a new shape with the template shape's geometry,
// all style properties inherited and a reference to tmpl.
func (t *ShapeType) CreateFromTemplate(tmpl *Template) (Shape, error) {
	if tmpl == nil || tmpl.Shape == nil {
		return nil, fault(NilArgument, t.Name+".CreateFromTemplate", "template")
	}
	s := t.newShape(t)
	if err := s.CopyFrom(tmpl.Shape); err != nil {
		return nil, err
	}
	s.bindTemplate(tmpl)
	return s, nil
}

// Library is a registry of shape types keyed by full name.
type Library struct {
	types map[string]*ShapeType
}

// NewLibrary returns a library holding the built-in shape types.
func NewLibrary() *Library {
	l := &Library{types: map[string]*ShapeType{}}
	for _, t := range []*ShapeType{ThickArrowType, BoxType, PolylineType} {
		if err := l.Register(t); err != nil {
			panic(err)
		}
	}
	return l
}

func (l *Library) Register(t *ShapeType) error {
	if t == nil || t.newShape == nil {
		return fault(NilArgument, "Library.Register", "shape type")
	}
	if _, ok := l.types[t.FullName()]; ok {
		return fault(DuplicateType, "Library.Register", "%s", t.FullName())
	}
	l.types[t.FullName()] = t
	return nil
}

func (l *Library) Lookup(fullName string) (*ShapeType, bool) {
	t, ok := l.types[fullName]
	return t, ok
}

// Types yields the registered types ordered by full name.
func (l *Library) Types() iter.Seq[*ShapeType] {
	return func(yield func(*ShapeType) bool) {
		for _, name := range slices.Sorted(maps.Keys(l.types)) {
			if !yield(l.types[name]) {
				return
			}
		}
	}
}
