// Package raster turns shape outlines into alpha masks.
package raster

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"honnef.co/go/shapes"
)

var (
	// ErrOpenPath is returned for shapes whose path has an open subpath and
	// thus no interior.
	ErrOpenPath = errors.New("raster: shape path is not closed")
	// ErrEmpty is returned for shapes without extent.
	ErrEmpty = errors.New("raster: shape has no extent")
)

// Mask rasterizes the interior of s. The mask covers the shape's tight bounds;
// the returned point is the diagram position of the mask's origin.
func Mask(s shapes.Shape) (*image.Alpha, image.Point, error) {
	path := s.Path()
	if !path.Closed() {
		return nil, image.Point{}, ErrOpenPath
	}
	b := s.BoundingRectangle(true)
	if !b.IsValid() || b.Width() == 0 || b.Height() == 0 {
		return nil, image.Point{}, ErrEmpty
	}
	origin := image.Pt(int(b.X0), int(b.Y0))
	w, h := int(b.Width()), int(b.Height())

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	for el := range path.Elements() {
		x, y := float32(el.P0.X-b.X0), float32(el.P0.Y-b.Y0)
		switch el.Kind {
		case shapes.MoveToKind:
			r.MoveTo(x, y)
		case shapes.LineToKind:
			r.LineTo(x, y)
		case shapes.ClosePathKind:
			r.ClosePath()
		}
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, origin, nil
}

// Draw fills the interior of s in dst with src, which is aligned with dst.
func Draw(dst draw.Image, s shapes.Shape, src image.Image) error {
	mask, origin, err := Mask(s)
	if err != nil {
		return err
	}
	rect := mask.Bounds().Add(origin)
	draw.DrawMask(dst, rect, src, origin, mask, image.Point{}, draw.Over)
	return nil
}
