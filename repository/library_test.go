package repository

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/shapes"
)

const libraryDoc = `
[[line]]
name = "Thick"
width = 4
color = "#336699"

[[fill]]
name = "Note"
color = "#ffee0080"

[[cap]]
name = "Dot"
shape = "circle"
size = 8

[[template]]
name = "Flow"
title = "Flow arrow"
type = "Core.ThickArrow"
line = "Thick"
fill = "Note"
[template.properties]
HeadWidth = 90
Width = 200
Height = 60
Caption = "step"
[[template.mappings]]
property = "Caption"
model = "label"

[[template]]
name = "Wire"
type = "Core.Polyline"
end_cap = "Dot"
`

func TestLoadTemplates(t *testing.T) {
	styles := shapes.NewStyleSet()
	store := shapes.NewTemplateStore()
	require.NoError(t, LoadTemplates(strings.NewReader(libraryDoc), shapes.NewLibrary(), styles, store))

	thick, ok := styles.LineStyle("Thick")
	require.True(t, ok)
	assert.Equal(t, 4, thick.Width)
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 0xff}, thick.Color)
	note, ok := styles.FillStyle("Note")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0xff, 0xee, 0x00, 0x80}, note.Color)

	flow, ok := store.Get("Flow")
	require.True(t, ok)
	assert.Equal(t, "Flow arrow", flow.Title)
	arrow := flow.Shape.(*shapes.ThickArrow)
	// Width is applied before HeadWidth regardless of document order.
	assert.Equal(t, 200, arrow.Width())
	assert.Equal(t, 90, arrow.HeadWidth())
	assert.Equal(t, 60, arrow.Height())
	caption, err := arrow.Caption(0)
	require.NoError(t, err)
	assert.Equal(t, "step", caption)
	ls, err := arrow.LineStyle()
	require.NoError(t, err)
	assert.Same(t, thick, ls)
	assert.Equal(t, []shapes.ModelMapping{{Property: shapes.PropertyCaption, ModelProperty: "label"}}, flow.Mappings)

	s, err := flow.CreateShape()
	require.NoError(t, err)
	require.NoError(t, flow.ApplyModel(s, map[string]shapes.MappedValue{"label": shapes.StringValue("build")}))
	caption, err = s.(*shapes.ThickArrow).Caption(0)
	require.NoError(t, err)
	assert.Equal(t, "build", caption)

	wire, ok := store.Get("Wire")
	require.True(t, ok)
	assert.Equal(t, "Wire", wire.Title)
	end, err := wire.Shape.(*shapes.Polyline).EndCapStyle()
	require.NoError(t, err)
	assert.Equal(t, shapes.CapCircle, end.Shape)
}

func TestLoadStyles(t *testing.T) {
	styles := shapes.NewStyleSet()
	require.NoError(t, LoadStyles(strings.NewReader(libraryDoc), styles))
	_, ok := styles.CapStyle("Dot")
	assert.True(t, ok)
}

func TestLoadTemplatesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown type", "[[template]]\nname = \"x\"\ntype = \"Core.Nope\"\n", shapes.ErrInvalidIdentifier},
		{"unknown line", "[[template]]\nname = \"x\"\ntype = \"Core.Box\"\nline = \"Nope\"\n", shapes.ErrInvalidIdentifier},
		{"unknown property", "[[template]]\nname = \"x\"\ntype = \"Core.Box\"\n[template.properties]\nHeadWidth = 3\n", shapes.ErrUnknownProperty},
		{"fill on line", "[[template]]\nname = \"x\"\ntype = \"Core.Polyline\"\nfill = \"Normal\"\n", shapes.ErrUnknownProperty},
		{"caps on box", "[[template]]\nname = \"x\"\ntype = \"Core.Box\"\nstart_cap = \"Arrow\"\n", shapes.ErrUnknownProperty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadTemplates(strings.NewReader(tt.doc), shapes.NewLibrary(), shapes.NewStyleSet(), shapes.NewTemplateStore())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("[[line]]\nname = \"x\"\nbogus = 1\n"))
	assert.Error(t, err)

	err = LoadStyles(strings.NewReader("[[line]]\nname = \"x\"\ncolor = \"red\"\n"), shapes.NewStyleSet())
	assert.Error(t, err)

	err = LoadStyles(strings.NewReader("[[cap]]\nname = \"x\"\nshape = \"star\"\n"), shapes.NewStyleSet())
	assert.Error(t, err)
}
