package shapes

import (
	"iter"
	"maps"
	"slices"
)

// Template is a named prototype shape. Shapes created from a template copy its
// geometry and inherit every style property they do not set themselves.
type Template struct {
	Name        string
	Title       string
	Description string
	// Shape is the prototype. It never has a template of its own.
	Shape    Shape
	Mappings []ModelMapping
}

// NewTemplate returns a template around shape.
func NewTemplate(name string, shape Shape) (*Template, error) {
	if shape == nil {
		return nil, fault(NilArgument, "NewTemplate", "shape")
	}
	if shape.Template() != nil {
		return nil, fault(NestedTemplate, "NewTemplate", "shape already uses template %q", shape.Template().Name)
	}
	return &Template{Name: name, Title: name, Shape: shape}, nil
}

// CreateShape returns a new instance of the template shape's type bound to t.
func (t *Template) CreateShape() (Shape, error) {
	if t.Shape == nil {
		return nil, fault(NilArgument, "Template.CreateShape", "template %q has no shape", t.Name)
	}
	return t.Shape.Type().CreateFromTemplate(t)
}

// Mapping returns the model property mapped onto id, if any.
func (t *Template) Mapping(id PropertyID) (string, bool) {
	for _, m := range t.Mappings {
		if m.Property == id {
			return m.ModelProperty, true
		}
	}
	return "", false
}

// ApplyModel pushes the model values named by the template's mappings into s.
// Mappings whose model property is missing from values are skipped.
func (t *Template) ApplyModel(s Shape, values map[string]MappedValue) error {
	for _, m := range t.Mappings {
		v, ok := values[m.ModelProperty]
		if !ok {
			continue
		}
		if err := s.ApplyModelProperty(m.Property, v); err != nil {
			return err
		}
	}
	return nil
}

// TemplateStore holds templates by name.
type TemplateStore struct {
	templates map[string]*Template
}

func NewTemplateStore() *TemplateStore {
	return &TemplateStore{templates: map[string]*Template{}}
}

// Insert adds t, replacing any template of the same name.
func (ts *TemplateStore) Insert(t *Template) error {
	if t == nil {
		return fault(NilArgument, "TemplateStore.Insert", "template")
	}
	ts.templates[t.Name] = t
	return nil
}

func (ts *TemplateStore) Get(name string) (*Template, bool) {
	t, ok := ts.templates[name]
	return t, ok
}

func (ts *TemplateStore) Remove(name string) bool {
	_, ok := ts.templates[name]
	delete(ts.templates, name)
	return ok
}

func (ts *TemplateStore) Len() int { return len(ts.templates) }

// All yields the templates ordered by name.
func (ts *TemplateStore) All() iter.Seq[*Template] {
	return func(yield func(*Template) bool) {
		for _, name := range slices.Sorted(maps.Keys(ts.templates)) {
			if !yield(ts.templates[name]) {
				return
			}
		}
	}
}
