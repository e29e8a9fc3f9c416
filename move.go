package shapes

import (
	"math"
	"strings"
)

// ResizeModifiers alter how a control point drag is turned into new shape
// parameters.
type ResizeModifiers uint8

const (
	// MaintainAspect scales the perpendicular side along with the dragged one.
	MaintainAspect ResizeModifiers = 1 << iota
	// MirroredResize applies the change symmetrically about the shape's
	// center, which stays in place.
	MirroredResize
	// KeepAngle restricts an arrow end drag to the current axis.
	KeepAngle
)

func (m ResizeModifiers) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	if m&MaintainAspect != 0 {
		parts = append(parts, "MaintainAspect")
	}
	if m&MirroredResize != 0 {
		parts = append(parts, "MirroredResize")
	}
	if m&KeepAngle != 0 {
		parts = append(parts, "KeepAngle")
	}
	return strings.Join(parts, "|")
}

// ArrowMove is the result of [MoveArrowPoint]. DX and DY are the center
// translation, Width the new shaft length and Angle the new orientation.
type ArrowMove struct {
	DX, DY int
	Width  int
	Angle  Angle
	OK     bool
}

// MoveArrowPoint solves the drag of one end of an arrow-like shape by (dx, dy).
//
// moving is the dragged end and fixed the opposite end, both in diagram
// space. pivotRatio is the relative position of center on the way from fixed
// to moving. The shape rotates by the same amount as the fixed→moving axis.
//
// The result has OK == false if the new length would drop below minLength, if
// a KeepAngle drag would flip the axis, or if the shaft has zero length; the
// returned values are then clamped to the nearest feasible configuration.
func MoveArrowPoint(center, moving, fixed Point, angle Angle, minLength int, pivotRatio float64, dx, dy float64, mods ResizeModifiers) ArrowMove {
	axis := moving.Sub(fixed)
	if axis.Hypot2() == 0 {
		// A zero-length shaft has no direction to rotate from.
		return ArrowMove{Width: max(minLength, 0), Angle: angle, OK: false}
	}
	ok := true
	delta := Vec(dx, dy)
	if mods&KeepAngle != 0 {
		u := axis.Normalize()
		delta = u.Mul(delta.Dot(u))
	}
	newMoving := moving.Translate(delta)

	anchor := fixed
	scale := 1.0
	if mods&MirroredResize != 0 {
		anchor = center
		scale = 2
	}
	newAxis := newMoving.Sub(anchor)
	length := newAxis.Hypot() * scale

	if mods&KeepAngle != 0 && newAxis.Dot(axis) < 0 {
		ok = false
		newAxis = axis
		length = 0
	}
	if length < float64(minLength) {
		ok = false
		length = float64(minLength)
	}

	dir := axis.Normalize()
	if newAxis.Hypot2() > 0 {
		dir = newAxis.Normalize()
	}
	rot := dir.Angle() - axis.Angle()

	newCenter := center
	if mods&MirroredResize == 0 {
		newCenter = fixed.Translate(dir.Mul(length * pivotRatio))
	}
	ddx, ddy := Point(newCenter.Sub(center)).Ints()
	return ArrowMove{
		DX:    ddx,
		DY:    ddy,
		Width: int(math.Round(length)),
		Angle: angle.Add(int(math.Round(rot * 1800 / math.Pi))),
		OK:    ok,
	}
}

// RectMove is the result of a one-sided rectangle resize. DX and DY are the
// center translation in diagram space.
type RectMove struct {
	DX, DY        int
	Width, Height int
	OK            bool
}

// MoveRectangleTop resizes a rotated rectangle by dragging its top edge.
// transformedDeltaX and transformedDeltaY are the drag in the rectangle's
// local coordinates; cosAngle and sinAngle describe its rotation.
func MoveRectangleTop(width, height int, transformedDeltaX, transformedDeltaY, cosAngle, sinAngle float64, mods ResizeModifiers) RectMove {
	return moveRectangleSide(width, height, -transformedDeltaY, false, -1, cosAngle, sinAngle, mods)
}

// MoveRectangleBottom is like [MoveRectangleTop] for the bottom edge.
func MoveRectangleBottom(width, height int, transformedDeltaX, transformedDeltaY, cosAngle, sinAngle float64, mods ResizeModifiers) RectMove {
	return moveRectangleSide(width, height, transformedDeltaY, false, 1, cosAngle, sinAngle, mods)
}

// MoveRectangleLeft is like [MoveRectangleTop] for the left edge.
func MoveRectangleLeft(width, height int, transformedDeltaX, transformedDeltaY, cosAngle, sinAngle float64, mods ResizeModifiers) RectMove {
	return moveRectangleSide(width, height, -transformedDeltaX, true, -1, cosAngle, sinAngle, mods)
}

// MoveRectangleRight is like [MoveRectangleTop] for the right edge.
func MoveRectangleRight(width, height int, transformedDeltaX, transformedDeltaY, cosAngle, sinAngle float64, mods ResizeModifiers) RectMove {
	return moveRectangleSide(width, height, transformedDeltaX, true, 1, cosAngle, sinAngle, mods)
}

// moveRectangleSide grows the dragged side by grow (negative shrinks). sign is
// the direction of that side from the center along the local axis.
func moveRectangleSide(width, height int, grow float64, horizontal bool, sign float64, cos, sin float64, mods ResizeModifiers) RectMove {
	ok := true
	side, other := float64(height), float64(width)
	if horizontal {
		side, other = other, side
	}
	if mods&MirroredResize != 0 {
		grow *= 2
	}
	newSide := side + grow
	if newSide < 0 {
		ok = false
		grow = -side
		newSide = 0
	}
	newOther := other
	if mods&MaintainAspect != 0 {
		if side > 0 {
			newOther = other * newSide / side
		} else {
			ok = false
		}
	}

	shift := 0.0
	if mods&MirroredResize == 0 {
		shift = sign * grow / 2
	}
	local := Vec(0, shift)
	if horizontal {
		local = Vec(shift, 0)
	}
	ddx, ddy := Point(local.Rotate(sin, cos)).Ints()

	res := RectMove{
		DX:     ddx,
		DY:     ddy,
		Width:  int(math.Round(newOther)),
		Height: int(math.Round(newSide)),
		OK:     ok,
	}
	if horizontal {
		res.Width, res.Height = res.Height, res.Width
	}
	return res
}
