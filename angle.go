package shapes

import "math"

// Angle is a shape orientation in tenths of a degree. Normalized angles lie in
// [0, FullCircle).
type Angle int

const FullCircle Angle = 3600

// NormalizeAngle maps any angle in tenths of a degree into [0, FullCircle).
func NormalizeAngle(a int) Angle {
	a %= int(FullCircle)
	if a < 0 {
		a += int(FullCircle)
	}
	return Angle(a)
}

// AngleFromRadians converts th to the nearest normalized Angle.
func AngleFromRadians(th float64) Angle {
	return NormalizeAngle(int(math.Round(th * 1800 / math.Pi)))
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a) * math.Pi / 1800
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) / 10
}

// Add returns the normalized sum of a and d.
func (a Angle) Add(d int) Angle {
	return NormalizeAngle(int(a) + d)
}
