package shapes

import (
	"image/color"
	"iter"
	"maps"
	"slices"
)

// Styles are immutable once created and shared by pointer between shapes and
// templates. Two style values are the same style only if they are the same
// pointer.

type CapShape int

const (
	CapNone CapShape = iota
	CapArrowOpen
	CapArrowClosed
	CapCircle
	CapSquare
	CapDiamond
)

// CapStyle describes the decoration drawn at the end of a linear shape.
type CapStyle struct {
	Name  string
	Shape CapShape
	Size  int
}

// Inflation is how far the cap may extend past the line's end point.
func (cs *CapStyle) Inflation() int {
	if cs == nil || cs.Shape == CapNone {
		return 0
	}
	return (cs.Size + 1) / 2
}

type LineStyle struct {
	Name  string
	Width int
	Color color.RGBA
}

// Inflation is how far a stroke of this style extends past the geometric
// outline it is drawn along.
func (ls *LineStyle) Inflation() int {
	if ls == nil || ls.Width <= 0 {
		return 0
	}
	return (ls.Width + 1) / 2
}

type FillStyle struct {
	Name  string
	Color color.RGBA
}

// StyleResolver looks styles up by name. It is used when loading shapes,
// which persist their styles by name.
type StyleResolver interface {
	LineStyle(name string) (*LineStyle, bool)
	FillStyle(name string) (*FillStyle, bool)
	CapStyle(name string) (*CapStyle, bool)
}

// StyleSet is a named collection of styles with a default per category.
type StyleSet struct {
	lines map[string]*LineStyle
	fills map[string]*FillStyle
	caps  map[string]*CapStyle

	DefaultLine *LineStyle
	DefaultFill *FillStyle
	DefaultCap  *CapStyle
}

var _ StyleResolver = (*StyleSet)(nil)

// NewStyleSet returns a set holding the "Normal" line and fill styles and the
// "None" and "Arrow" cap styles, with the Normal and None styles as defaults.
func NewStyleSet() *StyleSet {
	s := &StyleSet{
		lines: map[string]*LineStyle{},
		fills: map[string]*FillStyle{},
		caps:  map[string]*CapStyle{},
	}
	s.DefaultLine = s.AddLineStyle(&LineStyle{Name: "Normal", Width: 1, Color: color.RGBA{A: 0xff}})
	s.DefaultFill = s.AddFillStyle(&FillStyle{Name: "Normal", Color: color.RGBA{0xff, 0xff, 0xff, 0xff}})
	s.DefaultCap = s.AddCapStyle(&CapStyle{Name: "None", Shape: CapNone})
	s.AddCapStyle(&CapStyle{Name: "Arrow", Shape: CapArrowClosed, Size: 12})
	return s
}

// AddLineStyle adds ls, replacing any style of the same name, and returns it.
func (s *StyleSet) AddLineStyle(ls *LineStyle) *LineStyle {
	s.lines[ls.Name] = ls
	return ls
}

func (s *StyleSet) AddFillStyle(fs *FillStyle) *FillStyle {
	s.fills[fs.Name] = fs
	return fs
}

func (s *StyleSet) AddCapStyle(cs *CapStyle) *CapStyle {
	s.caps[cs.Name] = cs
	return cs
}

func (s *StyleSet) LineStyle(name string) (*LineStyle, bool) {
	ls, ok := s.lines[name]
	return ls, ok
}

func (s *StyleSet) FillStyle(name string) (*FillStyle, bool) {
	fs, ok := s.fills[name]
	return fs, ok
}

func (s *StyleSet) CapStyle(name string) (*CapStyle, bool) {
	cs, ok := s.caps[name]
	return cs, ok
}

// LineStyleNames returns the names of all line styles in sorted order.
func (s *StyleSet) LineStyleNames() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(s.lines)))
}
