package repository

import (
	"fmt"
	"io"

	"honnef.co/go/shapes"
)

// SaveShape writes s as its type's full name, the name of its template ("" for
// none), the format version and the shape's fields.
func SaveShape(w io.Writer, s shapes.Shape) error {
	bw := NewBinaryWriter(w)
	if err := bw.WriteString(s.Type().FullName()); err != nil {
		return err
	}
	tmplName := ""
	if t := s.Template(); t != nil {
		tmplName = t.Name
	}
	if err := bw.WriteString(tmplName); err != nil {
		return err
	}
	if err := bw.WriteInt32(shapes.FormatVersion); err != nil {
		return err
	}
	return s.SaveFields(bw, shapes.FormatVersion)
}

// LoadShape reads a shape written by SaveShape. Types are looked up in lib,
// templates in templates and styles in styles. templates may be nil if the
// stream holds no templated shapes.
func LoadShape(r io.Reader, lib *shapes.Library, templates *shapes.TemplateStore, styles *shapes.StyleSet) (shapes.Shape, error) {
	br := NewBinaryReader(r)
	typeName, err := br.ReadString()
	if err != nil {
		return nil, err
	}
	tmplName, err := br.ReadString()
	if err != nil {
		return nil, err
	}
	version, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}

	typ, ok := lib.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("repository: unknown shape type %q: %w", typeName, shapes.ErrInvalidIdentifier)
	}
	var s shapes.Shape
	if tmplName != "" {
		var tmpl *shapes.Template
		if templates != nil {
			tmpl, ok = templates.Get(tmplName)
		}
		if tmpl == nil || !ok {
			return nil, fmt.Errorf("repository: unknown template %q: %w", tmplName, shapes.ErrInvalidIdentifier)
		}
		if s, err = typ.CreateFromTemplate(tmpl); err != nil {
			return nil, err
		}
	} else {
		s = typ.CreateInstance(styles)
	}
	var resolver shapes.StyleResolver
	if styles != nil {
		resolver = styles
	}
	if err := s.LoadFields(br, resolver, int(version)); err != nil {
		return nil, err
	}
	return s, nil
}
