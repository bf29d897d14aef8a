// Package geometry holds the polar-point primitives of the hyperbolic
// plane that the evaluator and the canvas draw in.
package geometry

import (
	"fmt"
	"math"
)

// A Pol is a point in polar coordinates: a radius r >= 0 and an angle
// phi in radians. The angle is kept in [0, 2π) by the operations that
// change it.
type Pol struct {
	R   float64
	Phi float64
}

func (p Pol) String() string {
	return fmt.Sprintf("Pol(%f, %f)", p.R, p.Phi)
}

// RotatedBy rotates the point around the origin.
func (p Pol) RotatedBy(angle float64) Pol {
	phi := math.Mod(p.Phi+angle, 2.0*math.Pi)
	for phi < 0.0 {
		phi += 2.0 * math.Pi
	}
	return Pol{R: p.R, Phi: phi}
}

// TranslatedHorizontallyBy moves the point along the ray at angle 0
// by a hyperbolic distance. A positive distance moves away from the
// origin. Translation is an isometry, which is what makes it usable
// as a frame-change primitive.
func (p Pol) TranslatedHorizontallyBy(distance float64) Pol {
	if distance == 0.0 {
		return p
	}

	if p.Phi == math.Pi || p.Phi == 0.0 {
		// The point lies on the x-axis, so the translation only moves
		// it along the axis, possibly past the origin.
		if p.Phi == 0.0 {
			if p.R+distance < 0.0 {
				return Pol{R: math.Abs(p.R + distance), Phi: math.Pi}
			}
			return Pol{R: math.Abs(p.R + distance), Phi: 0.0}
		}
		if p.R-distance < 0.0 {
			return Pol{R: math.Abs(p.R - distance), Phi: 0.0}
		}
		return Pol{R: math.Abs(p.R - distance), Phi: math.Pi}
	}

	// The reference point is where the translation moves the origin
	// to; the translated radius is the distance to it.
	reference := Pol{R: math.Abs(distance), Phi: 0.0}
	if distance > 0.0 {
		reference.Phi = math.Pi
	}

	// Work above the x-axis and mirror back afterwards.
	mirrored := p.Phi > math.Pi
	working := p
	if mirrored {
		working.Phi = 2.0*math.Pi - working.Phi
	}

	radialCoordinate := working.DistanceTo(reference)

	numerator := math.Cosh(math.Abs(distance))*math.Cosh(radialCoordinate) - math.Cosh(p.R)
	denominator := math.Sinh(math.Abs(distance)) * math.Sinh(radialCoordinate)

	angularCoordinate := 0.0
	if denominator != 0.0 {
		angularCoordinate = math.Acos(clampToUnit(numerator / denominator))
	}
	if distance < 0.0 {
		angularCoordinate = math.Pi - angularCoordinate
	}

	result := Pol{R: radialCoordinate, Phi: angularCoordinate}
	if mirrored {
		result.Phi = 2.0*math.Pi - result.Phi
	}
	return result
}

// DistanceTo is the hyperbolic distance between the two points.
func (p Pol) DistanceTo(other Pol) float64 {
	deltaPhi := math.Pi - math.Abs(math.Pi-math.Abs(p.Phi-other.Phi))

	argument := math.Cosh(p.R)*math.Cosh(other.R) -
		math.Sinh(p.R)*math.Sinh(other.R)*math.Cos(deltaPhi)
	if argument < 1.0 {
		// Only possible through rounding; the points coincide.
		return 0.0
	}
	return math.Acosh(argument)
}

// Theta solves the hyperbolic triangle with side lengths r1, r2 and R
// for the angle between the sides r1 and r2. It returns a negative
// value when the identity cannot be resolved numerically.
func Theta(r1, r2, R float64) float64 {
	ratio := (math.Cosh(r1)*math.Cosh(r2) - math.Cosh(R)) / (math.Sinh(r1) * math.Sinh(r2))
	if math.IsNaN(ratio) || ratio < -1.0 || ratio > 1.0 {
		return -1.0
	}
	return math.Acos(ratio)
}

func clampToUnit(x float64) float64 {
	if x > 1.0 {
		return 1.0
	}
	if x < -1.0 {
		return -1.0
	}
	return x
}
