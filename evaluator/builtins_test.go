package evaluator

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CytherisRose/hydra/object"
)

func expectPol(t *testing.T, result object.Object, r, phi float64) {
	t.Helper()
	strct, ok := result.(*object.Struct)
	if !ok || strct.Name != "Pol" {
		t.Fatalf("expected a Pol, got %s (%s)", result.Type(), result.Inspect())
	}
	radius := strct.Value["r"].(*object.Number).Value
	angle := strct.Value["phi"].(*object.Number).Value
	if math.Abs(radius-r) > 1e-9 || math.Abs(angle-phi) > 1e-9 {
		t.Fatalf("expected Pol(%f, %f), got Pol(%f, %f)", r, phi, radius, angle)
	}
}

func TestPolInitializer(t *testing.T) {
	_, result := testEval(t, "Pol(r: 2.0, phi: 1.5)")
	expectPol(t, result, 2.0, 1.5)
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		input   string
		errorId string
	}{
		{"Pol(r: 2.0)", "eval/args/missing"},
		{`Pol(r: "two", phi: 0.0)`, "eval/args/number"},
		{"distance(from: 1.0, to: Pol(r: 1.0, phi: 0.0))", "eval/args/pol"},
		{"print(message: 1.0)", "eval/args/string"},
		{"clear(x: 1.0)", "eval/args/extraneous"},
		{"circle(center: Pol(r: nope, phi: 0.0), radius: 1.0)", "eval/ident/undefined"},
	}

	for _, tt := range tests {
		_, result := testEval(t, tt.input)
		expectError(t, result, tt.errorId)
	}
}

func TestDistanceBuiltin(t *testing.T) {
	_, result := testEval(t, "distance(from: Pol(r: 0.0, phi: 0.0), to: Pol(r: 5.0, phi: 1.3))")
	expectNumber(t, result, 5.0)
}

func TestRotateBuiltin(t *testing.T) {
	_, result := testEval(t, "rotate(point: Pol(r: 1.0, phi: 0.0), by: M_PI)")
	expectPol(t, result, 1.0, math.Pi)
}

func TestTranslateBuiltin(t *testing.T) {
	_, result := testEval(t, "translate(point: Pol(r: 2.0, phi: 0.0), by: 1.0)")
	expectPol(t, result, 3.0, 0.0)
}

func TestRandomBuiltin(t *testing.T) {
	// A degenerate interval yields its only member.
	_, result := testEval(t, "random(from: 2.0, to: 2.0)")
	expectNumber(t, result, 2.0)

	_, result = testEval(t, "random(from: 1.0, to: 2.0)")
	number, ok := result.(*object.Number)
	if !ok {
		t.Fatalf("expected a number, got %s", result.Type())
	}
	if number.Value < 1.0 || number.Value > 2.0 {
		t.Fatalf("random value %f outside [1, 2]", number.Value)
	}

	_, result = testEval(t, "random(from: 3.0, to: 1.0)")
	expectError(t, result, "eval/random/bounds")
}

func TestSetResolution(t *testing.T) {
	ev, result := testEval(t, "set_resolution(resolution: 2.0)")
	expectNumber(t, result, 2.0)
	if ev.Canvas.Resolution != 2.0 {
		t.Fatalf("resolution not applied, got %f", ev.Canvas.Resolution)
	}

	// A rejected resolution leaves the previous one in place.
	ev, result = testEval(t, "set_resolution(resolution: 50.0)\nset_resolution(resolution: 0.0)")
	expectError(t, result, "eval/resolution/positive")
	if ev.Canvas.Resolution != 50.0 {
		t.Fatalf("failed call changed the resolution to %f", ev.Canvas.Resolution)
	}

	_, result = testEval(t, "set_resolution(resolution: -1.0)")
	expectError(t, result, "eval/resolution/positive")
}

func TestThetaBuiltin(t *testing.T) {
	_, result := testEval(t, "theta(r1: 3.0, r2: 3.0, R: 5.0)")
	number, ok := result.(*object.Number)
	if !ok {
		t.Fatalf("expected a number, got %s", result.Type())
	}
	if number.Value < 0.0 || number.Value > math.Pi {
		t.Fatalf("theta out of range: %f", number.Value)
	}

	_, result = testEval(t, "theta(r1: 6.0, r2: 1.0, R: 5.0)")
	expectError(t, result, "eval/theta/bounds")

	_, result = testEval(t, "theta(r1: 1.0, r2: 1.0, R: 5.0)")
	expectError(t, result, "eval/theta/feasible")
}

func TestMathBuiltins(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"sqrt(x: 9.0)", 3.0},
		{"sin(x: 0.0)", 0.0},
		{"cos(x: 0.0)", 1.0},
		{"sinh(x: 1.0)", math.Sinh(1.0)},
		{"cosh(x: 1.0)", math.Cosh(1.0)},
		{"exp(x: 1.0)", math.E},
		{"log(x: exp(x: 2.0))", 2.0},
	}

	for _, tt := range tests {
		_, result := testEval(t, tt.input)
		expectNumber(t, result, tt.expected)
	}
}

func TestMathBuiltinsPropagateNaN(t *testing.T) {
	// Outside their domains the math functions hand back what the
	// math library produces rather than failing.
	_, result := testEval(t, "sqrt(x: -1.0)")
	number, ok := result.(*object.Number)
	if !ok {
		t.Fatalf("expected a number, got %s", result.Type())
	}
	if !math.IsNaN(number.Value) {
		t.Fatalf("expected NaN, got %f", number.Value)
	}
}

func TestPrintBuiltin(t *testing.T) {
	ev, result := testEval(t, `var r = 1.5
print(message: "r is \(r)\n")`)
	if result.Type() != object.NONE_OBJ {
		t.Fatalf("print should have no value, got %s", result.Inspect())
	}
	output := ev.Output.(*bytes.Buffer).String()
	if output != "r is 1.500000\n" {
		t.Fatalf("wrong output %q", output)
	}
}

func TestDrawingBuiltins(t *testing.T) {
	ev, result := testEval(t, `circle(center: Pol(r: 1.0, phi: 0.0), radius: 0.5)
mark(center: Pol(r: 0.0, phi: 0.0), radius: 0.05)
line(from: Pol(r: 0.0, phi: 0.0), to: Pol(r: 1.0, phi: 1.0))`)
	if result.Type() == object.ERROR_OBJ {
		t.Fatalf("drawing failed: %s", result.Inspect())
	}

	if len(ev.Canvas.Paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(ev.Canvas.Paths))
	}
	if !ev.Canvas.Paths[0].IsClosed {
		t.Fatalf("the circle path should be closed")
	}
	if len(ev.Canvas.Marks) != 1 || !ev.Canvas.Marks[0].IsFilled {
		t.Fatalf("expected one filled mark")
	}
}

func TestClearBuiltin(t *testing.T) {
	ev, result := testEval(t, `mark(center: Pol(r: 0.0, phi: 0.0), radius: 0.05)
clear()`)
	if result.Type() == object.ERROR_OBJ {
		t.Fatalf("clear failed: %s", result.Inspect())
	}
	if len(ev.Canvas.Paths) != 0 || len(ev.Canvas.Marks) != 0 {
		t.Fatalf("canvas not cleared")
	}
}

func TestSaveBuiltin(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.ipe")
	_, result := testEval(t, `mark(center: Pol(r: 0.0, phi: 0.0), radius: 0.05)
save(file: "`+file+`")`)
	if result.Type() == object.ERROR_OBJ {
		t.Fatalf("save failed: %s", result.Inspect())
	}
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if !strings.Contains(string(content), "<ipe version=") {
		t.Fatalf("file does not contain ipe markup")
	}

	_, result = testEval(t, `save(file: "/no/such/directory/out.ipe")`)
	expectError(t, result, "eval/save/file")
}
