package canvas

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CytherisRose/hydra/geometry"
)

func TestClear(t *testing.T) {
	c := New()
	c.AddPath(Path{Points: []geometry.Pol{{R: 1.0, Phi: 0.0}}})
	c.AddMark(Circle{Center: geometry.Pol{}, Radius: 0.1})
	c.Resolution = 17.0

	c.Clear()

	if len(c.Paths) != 0 || len(c.Marks) != 0 {
		t.Fatalf("clear left %d paths and %d marks", len(c.Paths), len(c.Marks))
	}
	if c.Resolution != 17.0 {
		t.Fatalf("clear should not touch the resolution")
	}
}

func TestPathForCircleAtOrigin(t *testing.T) {
	path := PathForCircle(geometry.Pol{R: 0.0, Phi: 0.0}, 2.0, 100.0)

	if !path.IsClosed {
		t.Fatalf("a circle path should be closed")
	}
	if path.Size() < 100 {
		t.Fatalf("expected at least 100 points, got %d", path.Size())
	}
	for _, p := range path.Points {
		if p.R != 2.0 {
			t.Fatalf("a circle around the origin has constant radius, got %f", p.R)
		}
	}
}

func TestPathForCircleOffOrigin(t *testing.T) {
	center := geometry.Pol{R: 3.0, Phi: 1.0}
	radius := 1.5
	path := PathForCircle(center, radius, 100.0)

	if !path.IsClosed {
		t.Fatalf("a circle path should be closed")
	}

	// All points lie on the circle, up to discretization of the
	// angle lookup.
	for _, p := range path.Points {
		d := center.DistanceTo(p)
		if math.Abs(d-radius) > 0.1 {
			t.Fatalf("point %v is at distance %f from the center, expected %f", p, d, radius)
		}
	}

	// The radii stay within the band the circle covers.
	rMin := center.R - radius
	rMax := center.R + radius
	for _, p := range path.Points {
		if p.R < rMin-1e-9 || p.R > rMax+1e-9 {
			t.Fatalf("point %v outside the radial band [%f, %f]", p, rMin, rMax)
		}
	}
}

func TestPathForLine(t *testing.T) {
	from := geometry.Pol{R: 1.0, Phi: 0.5}
	to := geometry.Pol{R: 2.0, Phi: 2.5}
	path := PathForLine(from, to, 100.0)

	if path.IsClosed {
		t.Fatalf("a line path should be open")
	}
	if path.Size() < 100 {
		t.Fatalf("expected at least 100 points, got %d", path.Size())
	}

	first := path.Points[0]
	if math.Abs(first.R-from.R) > 1e-6 || math.Abs(first.Phi-from.Phi) > 1e-6 {
		t.Fatalf("line does not start at 'from': %v", first)
	}

	// Walking the samples covers the distance between the endpoints.
	total := 0.0
	for i := 1; i < path.Size(); i++ {
		total += path.Points[i-1].DistanceTo(path.Points[i])
	}
	expected := from.DistanceTo(to)
	if math.Abs(total-expected) > 0.1 {
		t.Fatalf("sampled length %f, expected about %f", total, expected)
	}
}

func TestPathForLineDegenerate(t *testing.T) {
	p := geometry.Pol{R: 1.0, Phi: 1.0}
	path := PathForLine(p, p, 100.0)
	if path.Size() != 1 {
		t.Fatalf("expected a single point, got %d", path.Size())
	}
}

func TestIpeRepresentation(t *testing.T) {
	c := New()
	c.AddMark(Circle{Center: geometry.Pol{R: 1.0, Phi: 0.0}, Radius: 0.5, IsFilled: true})
	c.AddPath(Path{Points: []geometry.Pol{{R: 0.0, Phi: 0.0}, {R: 1.0, Phi: 0.0}}})

	ipe := c.IpeRepresentation()

	if !strings.HasPrefix(ipe, "<?xml") {
		t.Fatalf("missing xml preamble")
	}
	if !strings.Contains(ipe, "<ipe version=") {
		t.Fatalf("missing ipe element")
	}
	if !strings.Contains(ipe, "fill=\"black\"") {
		t.Fatalf("filled mark not rendered as filled")
	}
	if !strings.Contains(ipe, " m\n") || !strings.Contains(ipe, " l\n") {
		t.Fatalf("path drawing operators missing")
	}
	if !strings.HasSuffix(ipe, "</page>\n</ipe>") {
		t.Fatalf("file not closed properly")
	}
}

func TestIpeClosedPath(t *testing.T) {
	c := New()
	c.AddPath(Path{
		Points:   []geometry.Pol{{R: 1.0, Phi: 0.0}, {R: 1.0, Phi: 1.0}, {R: 1.0, Phi: 2.0}},
		IsClosed: true,
	})
	if !strings.Contains(c.IpeRepresentation(), "h\n</path>") {
		t.Fatalf("closed path missing the 'h' operator")
	}
}

func TestSvgRepresentation(t *testing.T) {
	c := New()
	c.AddPath(Path{Points: []geometry.Pol{{R: 0.0, Phi: 0.0}, {R: 1.0, Phi: 0.5 * math.Pi}}})

	svg := c.SvgRepresentation()

	if !strings.Contains(svg, "<svg xmlns=") {
		t.Fatalf("missing svg element")
	}
	// The y-axis is flipped.
	if !strings.Contains(svg, "L 0.000000 -15.000000") {
		t.Fatalf("expected flipped y coordinate, got:\n%s", svg)
	}
}

func TestSaveToFile(t *testing.T) {
	c := New()
	c.AddPath(Path{Points: []geometry.Pol{{R: 0.0, Phi: 0.0}, {R: 1.0, Phi: 0.0}}})

	dir := t.TempDir()

	ipeFile := filepath.Join(dir, "drawing.ipe")
	if err := c.SaveToFile(ipeFile); err != nil {
		t.Fatalf("saving ipe file: %v", err)
	}
	content, err := os.ReadFile(ipeFile)
	if err != nil {
		t.Fatalf("reading file back: %v", err)
	}
	if !strings.Contains(string(content), "<ipe version=") {
		t.Fatalf("ipe file does not contain ipe markup")
	}

	svgFile := filepath.Join(dir, "drawing.svg")
	if err := c.SaveToFile(svgFile); err != nil {
		t.Fatalf("saving svg file: %v", err)
	}
	content, err = os.ReadFile(svgFile)
	if err != nil {
		t.Fatalf("reading file back: %v", err)
	}
	if !strings.Contains(string(content), "<svg") {
		t.Fatalf("svg file does not contain svg markup")
	}

	if err := c.SaveToFile(filepath.Join(dir, "missing", "drawing.ipe")); err == nil {
		t.Fatalf("saving into a missing directory should fail")
	}
}
