package geometry

import (
	"fmt"
	"math"
)

// An Euc is the Euclidean projection of a Pol, used when the canvas
// is written out to a drawing file.
type Euc struct {
	X float64
	Y float64
}

func (e Euc) String() string {
	return fmt.Sprintf("Euc(%f, %f)", e.X, e.Y)
}

// ToEuc projects the point, applying the canvas scale.
func (p Pol) ToEuc(scale float64) Euc {
	return Euc{
		X: scale * p.R * math.Cos(p.Phi),
		Y: scale * p.R * math.Sin(p.Phi),
	}
}
