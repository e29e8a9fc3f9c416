package repository

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/shapes"
)

// Document is the TOML layout of a style and template library:
//
//	[[line]]
//	name = "Thick"
//	width = 3
//	color = "#336699"
//
//	[[template]]
//	name = "Flow"
//	type = "Core.ThickArrow"
//	line = "Thick"
//	[template.properties]
//	Width = 200
//	HeadWidth = 60
//	[[template.mappings]]
//	property = "Caption"
//	model = "label"
type Document struct {
	Lines     []LineDoc     `toml:"line"`
	Fills     []FillDoc     `toml:"fill"`
	Caps      []CapDoc      `toml:"cap"`
	Templates []TemplateDoc `toml:"template"`
}

type LineDoc struct {
	Name  string `toml:"name"`
	Width int    `toml:"width"`
	Color string `toml:"color"`
}

type FillDoc struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

type CapDoc struct {
	Name  string `toml:"name"`
	Shape string `toml:"shape"`
	Size  int    `toml:"size"`
}

type TemplateDoc struct {
	Name        string         `toml:"name"`
	Title       string         `toml:"title"`
	Description string         `toml:"description"`
	Type        string         `toml:"type"`
	Line        string         `toml:"line"`
	Fill        string         `toml:"fill"`
	StartCap    string         `toml:"start_cap"`
	EndCap      string         `toml:"end_cap"`
	Properties  map[string]any `toml:"properties"`
	Mappings    []MappingDoc   `toml:"mappings"`
}

type MappingDoc struct {
	Property string `toml:"property"`
	Model    string `toml:"model"`
}

var capShapes = map[string]shapes.CapShape{
	"none":         shapes.CapNone,
	"arrow-open":   shapes.CapArrowOpen,
	"arrow-closed": shapes.CapArrowClosed,
	"circle":       shapes.CapCircle,
	"square":       shapes.CapSquare,
	"diamond":      shapes.CapDiamond,
}

// Decode reads a library document. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}
	return &doc, nil
}

// LoadStyles adds the styles of the document read from r to set.
func LoadStyles(r io.Reader, set *shapes.StyleSet) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}
	return doc.ApplyStyles(set)
}

// LoadTemplates adds the styles and templates of the document read from r to
// set and store. Template types are looked up in lib.
func LoadTemplates(r io.Reader, lib *shapes.Library, set *shapes.StyleSet, store *shapes.TemplateStore) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}
	if err := doc.ApplyStyles(set); err != nil {
		return err
	}
	return doc.ApplyTemplates(lib, set, store)
}

func (doc *Document) ApplyStyles(set *shapes.StyleSet) error {
	for _, l := range doc.Lines {
		c, err := parseColor(l.Color)
		if err != nil {
			return fmt.Errorf("repository: line style %q: %w", l.Name, err)
		}
		set.AddLineStyle(&shapes.LineStyle{Name: l.Name, Width: l.Width, Color: c})
	}
	for _, f := range doc.Fills {
		c, err := parseColor(f.Color)
		if err != nil {
			return fmt.Errorf("repository: fill style %q: %w", f.Name, err)
		}
		set.AddFillStyle(&shapes.FillStyle{Name: f.Name, Color: c})
	}
	for _, cd := range doc.Caps {
		cs, ok := capShapes[strings.ToLower(cd.Shape)]
		if !ok {
			return fmt.Errorf("repository: cap style %q: unknown shape %q", cd.Name, cd.Shape)
		}
		set.AddCapStyle(&shapes.CapStyle{Name: cd.Name, Shape: cs, Size: cd.Size})
	}
	return nil
}

func (doc *Document) ApplyTemplates(lib *shapes.Library, set *shapes.StyleSet, store *shapes.TemplateStore) error {
	for _, td := range doc.Templates {
		t, err := td.build(lib, set)
		if err != nil {
			return fmt.Errorf("repository: template %q: %w", td.Name, err)
		}
		if err := store.Insert(t); err != nil {
			return err
		}
		shapes.Logger().Debug("template loaded", "name", t.Name, "type", td.Type)
	}
	return nil
}

func (td *TemplateDoc) build(lib *shapes.Library, set *shapes.StyleSet) (*shapes.Template, error) {
	typ, ok := lib.Lookup(td.Type)
	if !ok {
		return nil, fmt.Errorf("unknown shape type %q: %w", td.Type, shapes.ErrInvalidIdentifier)
	}
	s := typ.CreateInstance(set)
	if err := applyStyles(s, td, set); err != nil {
		return nil, err
	}
	for name := range td.Properties {
		if _, ok := typ.Property(name); !ok {
			return nil, fmt.Errorf("property %q: %w", name, shapes.ErrUnknownProperty)
		}
	}
	// Properties are applied in definition order, which puts sizes before
	// the parameters clamped against them.
	for def := range typ.PropertyDefs() {
		raw, ok := td.Properties[def.Name]
		if !ok {
			continue
		}
		v, err := mappedValue(raw)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", def.Name, err)
		}
		if err := s.ApplyModelProperty(def.ID, v); err != nil {
			return nil, err
		}
	}

	t, err := shapes.NewTemplate(td.Name, s)
	if err != nil {
		return nil, err
	}
	if td.Title != "" {
		t.Title = td.Title
	}
	t.Description = td.Description
	for _, md := range td.Mappings {
		def, ok := typ.Property(md.Property)
		if !ok {
			return nil, fmt.Errorf("mapping for %q: %w", md.Property, shapes.ErrUnknownProperty)
		}
		t.Mappings = append(t.Mappings, shapes.ModelMapping{Property: def.ID, ModelProperty: md.Model})
	}
	return t, nil
}

func applyStyles(s shapes.Shape, td *TemplateDoc, set *shapes.StyleSet) error {
	if td.Line != "" {
		ls, ok := set.LineStyle(td.Line)
		if !ok {
			return fmt.Errorf("line style %q: %w", td.Line, shapes.ErrInvalidIdentifier)
		}
		s.SetLineStyle(ls)
	}
	if td.Fill != "" {
		fs, ok := set.FillStyle(td.Fill)
		if !ok {
			return fmt.Errorf("fill style %q: %w", td.Fill, shapes.ErrInvalidIdentifier)
		}
		f, ok := s.(shapes.Filled)
		if !ok {
			return fmt.Errorf("%s has no fill style: %w", s.Type().Name, shapes.ErrUnknownProperty)
		}
		f.SetFillStyle(fs)
	}
	if td.StartCap == "" && td.EndCap == "" {
		return nil
	}
	c, ok := s.(shapes.Capped)
	if !ok {
		return fmt.Errorf("%s has no caps: %w", s.Type().Name, shapes.ErrUnknownProperty)
	}
	for _, end := range []struct {
		name string
		set  func(*shapes.CapStyle)
	}{
		{td.StartCap, c.SetStartCapStyle},
		{td.EndCap, c.SetEndCapStyle},
	} {
		if end.name == "" {
			continue
		}
		cs, ok := set.CapStyle(end.name)
		if !ok {
			return fmt.Errorf("cap style %q: %w", end.name, shapes.ErrInvalidIdentifier)
		}
		end.set(cs)
	}
	return nil
}

// mappedValue converts a decoded TOML value. go-toml decodes integers as
// int64 and floats as float64.
func mappedValue(raw any) (shapes.MappedValue, error) {
	switch v := raw.(type) {
	case int64:
		return shapes.IntValue(v), nil
	case float64:
		return shapes.IntValue(math.Round(v)), nil
	case string:
		return shapes.StringValue(v), nil
	case bool:
		if v {
			return shapes.IntValue(1), nil
		}
		return shapes.IntValue(0), nil
	default:
		return nil, fmt.Errorf("unsupported value %v of type %T", raw, raw)
	}
}

// parseColor parses "#rrggbb" and "#rrggbbaa". The empty string is opaque
// black.
func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{A: 0xff}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
