// Package canvas is the drawing surface scripts mutate: a collection
// of paths and marks in the hyperbolic plane, with discretization
// helpers and exporters for the Ipe and SVG formats.
package canvas

import (
	"math"
	"os"
	"strings"

	"github.com/CytherisRose/hydra/geometry"
)

// A Path is an ordered sequence of points, open or closed.
type Path struct {
	Points   []geometry.Pol
	IsClosed bool
}

func (p *Path) PushBack(point geometry.Pol) {
	p.Points = append(p.Points, point)
}

func (p *Path) Size() int {
	return len(p.Points)
}

func (p *Path) Empty() bool {
	return len(p.Points) == 0
}

// A Circle marks a point on the plane; in contrast to a plain
// coordinate it has a radius.
type Circle struct {
	Center   geometry.Pol
	Radius   float64
	IsFilled bool
}

type Canvas struct {
	Paths []Path
	Marks []Circle

	// Impacts the number of points that are used to draw objects. The
	// higher the resolution the more points are used. Must stay
	// positive; set_resolution enforces that.
	Resolution float64

	// A hyperbolic length of 1.0 should not come out as 1 pixel.
	Scale float64
}

func New() *Canvas {
	return &Canvas{Resolution: 100.0, Scale: 15.0}
}

func (c *Canvas) AddPath(path Path) {
	c.Paths = append(c.Paths, path)
}

func (c *Canvas) AddMark(mark Circle) {
	c.Marks = append(c.Marks, mark)
}

// Clear removes all marks and paths from the canvas.
func (c *Canvas) Clear() {
	c.Paths = nil
	c.Marks = nil
}

// SaveToFile writes the canvas to the named file. The extension picks
// the format: .svg gets SVG, everything else the Ipe format.
func (c *Canvas) SaveToFile(fileName string) error {
	var representation string
	if strings.HasSuffix(fileName, ".svg") {
		representation = c.SvgRepresentation()
	} else {
		representation = c.IpeRepresentation()
	}
	return os.WriteFile(fileName, []byte(representation), 0644)
}

// PathForCircle discretizes the circle with the passed center and
// radius. The resolution determines how many points are used.
func PathForCircle(center geometry.Pol, radius, resolution float64) Path {
	path := Path{IsClosed: true}

	// A circle centered at the origin is a Euclidean circle and can
	// be created angle-wise.
	if center.R == 0.0 {
		angleStepSize := (2.0 * math.Pi) / resolution
		for angle := 0.0; angle < 2.0*math.Pi; angle += angleStepSize {
			path.PushBack(geometry.Pol{R: radius, Phi: angle})
		}
		return path
	}

	// Otherwise walk the radii the circle covers, pretending the
	// center had angular coordinate 0, and solve for the angle at
	// each radius.
	rMin := math.Max(radius-center.R, center.R-radius)
	rMax := center.R + radius

	stepSize := (rMax - rMin) / resolution

	// Closer to the origin we need finer steps to keep the circle
	// smooth.
	additionalDetailThreshold := 5.0 * stepSize
	additionalDetailPoints := resolution / 5.0
	additionalStepSize := stepSize / additionalDetailPoints

	angle := 0.0
	r := rMax
	for r >= rMin {
		// If theta cannot be resolved at this radius we reuse the
		// previous angle.
		if newAngle := geometry.Theta(center.R, r, radius); newAngle >= 0.0 {
			angle = newAngle
		}
		path.PushBack(geometry.Pol{R: r, Phi: angle})

		if r-rMin < additionalDetailThreshold {
			for additionalR := r - additionalStepSize; additionalR > r-stepSize; additionalR -= additionalStepSize {
				if newAngle := geometry.Theta(center.R, additionalR, radius); newAngle >= 0.0 {
					angle = newAngle
				}
				if additionalR >= rMin {
					path.PushBack(geometry.Pol{R: additionalR, Phi: angle})
				}
			}
		}

		r -= stepSize
	}

	// The point on the x-axis: inside the circle the origin flips its
	// angle.
	innerPointAngle := math.Pi
	if center.R > radius {
		innerPointAngle = 0.0
	}
	path.PushBack(geometry.Pol{R: rMin, Phi: innerPointAngle})

	// Mirror the points on the x-axis to close the other half,
	// walking backwards to keep the path valid. The first and last
	// points lie on the axis and are excluded.
	for i := path.Size() - 2; i > 0; i-- {
		point := path.Points[i]
		path.PushBack(geometry.Pol{R: point.R, Phi: 2.0*math.Pi - point.Phi})
	}

	// Finally rotate everything to the angular coordinate of the
	// actual center.
	for i, p := range path.Points {
		path.Points[i] = p.RotatedBy(center.Phi)
	}

	return path
}

// PathForLine discretizes the straight segment between the two points
// with uniform steps. The segment is mapped onto the horizontal ray
// at the origin, sampled there, and mapped back.
func PathForLine(from, to geometry.Pol, resolution float64) Path {
	path := Path{IsClosed: false}

	rotationAngle := -from.Phi
	translationDistance := -from.R
	translatedTo := to.RotatedBy(rotationAngle).TranslatedHorizontallyBy(translationDistance)
	secondRotationAngle := -translatedTo.Phi

	length := translatedTo.R
	stepSize := length / resolution
	if !(stepSize > 0) {
		// Degenerate segment; a single point is the best we can do.
		path.PushBack(from)
		return path
	}

	for r := 0.0; r <= length; r += stepSize {
		point := geometry.Pol{R: r, Phi: 0.0}.
			RotatedBy(-secondRotationAngle).
			TranslatedHorizontallyBy(-translationDistance).
			RotatedBy(-rotationAngle)
		path.PushBack(point)
	}

	return path
}
