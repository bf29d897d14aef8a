package evaluator

import (
	"math"

	"github.com/CytherisRose/hydra/ast"
	"github.com/CytherisRose/hydra/canvas"
	"github.com/CytherisRose/hydra/geometry"
	"github.com/CytherisRose/hydra/object"
)

// The curve samplers walk along a reference line between two points,
// re-evaluating the remaining argument expression at every sample
// point. The expression sees the current point on the line as the
// hidden variable '_p'.

// sampleRadii produces the radii at which a curve is sampled. The
// coarse step is span/resolution; close to the start of the span,
// where points near the origin of the disk are furthest apart
// visually, each coarse step is refined with resolution/5 sub-steps.
func sampleRadii(from, to, resolution float64, inclusive bool) []float64 {
	step := (to - from) / resolution
	detailThreshold := from + 5.0*step
	detailStep := step / (resolution / 5.0)

	radii := []float64{}
	for radius := from; radius < to || (inclusive && radius <= to); radius += step {
		radii = append(radii, radius)
		if radius < detailThreshold {
			for detail := radius + detailStep; detail < radius+step; detail += detailStep {
				radii = append(radii, detail)
			}
		}
	}
	return radii
}

// curve_angle draws a curve between two points of equal angular
// coordinate. For each sampled radius the 'angle' argument is
// re-evaluated with '_p' bound to the point on the reference line,
// and its result is added to the point's angular coordinate.
func builtinCurveAngle(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings, "from", "to"); err != nil {
		return err
	}
	from, err := polForParameter(call, "from", bindings)
	if err != nil {
		return err
	}
	to, err := polForParameter(call, "to", bindings)
	if err != nil {
		return err
	}

	if from.Phi != to.Phi {
		return newError("eval/curve/angle", call.Token, call.Name, from.Phi, to.Phi)
	}

	// Sampling runs from the smaller radius to the larger one.
	if from.R > to.R {
		from, to = to, from
	}

	if (to.R-from.R)/ev.Canvas.Resolution <= 0 {
		return newError("eval/curve/step", call.Token, call.Name)
	}

	hidden := ev.Env.OpenHiddenScope(polStruct(from))
	defer hidden.Release()

	path := canvas.Path{}
	for _, radius := range sampleRadii(from.R, to.R, ev.Canvas.Resolution, true) {
		onLine := geometry.Pol{R: radius, Phi: from.Phi}
		hidden.Update(polStruct(onLine))

		if err := ev.interpretArguments(call, bindings, "angle"); err != nil {
			return err
		}
		angle, err := numberForParameter(call, "angle", bindings)
		if err != nil {
			return err
		}

		path.PushBack(geometry.Pol{R: radius, Phi: from.Phi + angle})
	}

	if !hidden.Release() {
		return newError("eval/scope/close", call.Token)
	}
	ev.Canvas.AddPath(path)
	return object.NONE
}

// curve_distance draws a curve between two arbitrary points. The
// reference line between them is moved onto the positive x-axis, the
// 'distance' argument gives the perpendicular offset at each sampled
// radius, and the offset point is moved back into the original frame.
func builtinCurveDistance(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings, "from", "to"); err != nil {
		return err
	}
	from, err := polForParameter(call, "from", bindings)
	if err != nil {
		return err
	}
	to, err := polForParameter(call, "to", bindings)
	if err != nil {
		return err
	}

	if from.DistanceTo(to)/ev.Canvas.Resolution <= 0 {
		return newError("eval/curve/step", call.Token, call.Name)
	}

	// Move 'from' to the origin and 'to' onto the positive x-axis:
	// rotate 'from' onto the axis, translate it into the origin, then
	// cancel the angle the translation gave 'to'.
	rotationAngle := -from.Phi
	translationDistance := -from.R
	translatedTo := to.RotatedBy(rotationAngle).TranslatedHorizontallyBy(translationDistance)
	secondRotationAngle := -translatedTo.Phi

	hidden := ev.Env.OpenHiddenScope(polStruct(from))
	defer hidden.Release()

	path := canvas.Path{}
	for _, radius := range sampleRadii(0.0, translatedTo.R, ev.Canvas.Resolution, false) {
		// The transformations are undone in reverse order.
		onLine := geometry.Pol{R: radius, Phi: 0.0}.
			RotatedBy(-secondRotationAngle).
			TranslatedHorizontallyBy(-translationDistance).
			RotatedBy(-rotationAngle)
		hidden.Update(polStruct(onLine))

		if err := ev.interpretArguments(call, bindings, "distance"); err != nil {
			return err
		}
		distance, err := numberForParameter(call, "distance", bindings)
		if err != nil {
			return err
		}

		// The sign of the distance selects the side of the line.
		offsetAngle := 0.5 * math.Pi
		if distance < 0 {
			offsetAngle = 1.5 * math.Pi
		}

		point := geometry.Pol{R: math.Abs(distance), Phi: offsetAngle}.
			TranslatedHorizontallyBy(radius).
			RotatedBy(-secondRotationAngle).
			TranslatedHorizontallyBy(-translationDistance).
			RotatedBy(-rotationAngle)
		path.PushBack(point)
	}

	if !hidden.Release() {
		return newError("eval/scope/close", call.Token)
	}
	ev.Canvas.AddPath(path)
	return object.NONE
}
