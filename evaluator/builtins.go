package evaluator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/CytherisRose/hydra/ast"
	"github.com/CytherisRose/hydra/canvas"
	"github.com/CytherisRose/hydra/geometry"
	"github.com/CytherisRose/hydra/object"
	"github.com/CytherisRose/hydra/signature"
)

type BuiltinFunction func(ev *Evaluator, call *ast.CallExpression) object.Object

type Builtin struct {
	Sig signature.NamedSignature
	Fn  BuiltinFunction
}

// The registry of built-in functions. Adding a function means adding
// an entry here; nothing else in the evaluator knows the names.
// Populated in init to break the initialization cycle through evalCall.
var Builtins map[string]Builtin

func init() {
	Builtins = map[string]Builtin{

		"clear": {
			Sig: signature.NamedSignature{},
			Fn:  builtinClear,
		},

		"circle": {
			Sig: signature.NamedSignature{{"center", "Pol"}, {"radius", "number"}},
			Fn:  builtinCircle,
		},

		"mark": {
			Sig: signature.NamedSignature{{"center", "Pol"}, {"radius", "number"}},
			Fn:  builtinMark,
		},

		"line": {
			Sig: signature.NamedSignature{{"from", "Pol"}, {"to", "Pol"}},
			Fn:  builtinLine,
		},

		"curve_angle": {
			Sig: signature.NamedSignature{{"from", "Pol"}, {"to", "Pol"}, {"angle", "number"}},
			Fn:  builtinCurveAngle,
		},

		"curve_distance": {
			Sig: signature.NamedSignature{{"from", "Pol"}, {"to", "Pol"}, {"distance", "number"}},
			Fn:  builtinCurveDistance,
		},

		"distance": {
			Sig: signature.NamedSignature{{"from", "Pol"}, {"to", "Pol"}},
			Fn:  builtinDistance,
		},

		"rotate": {
			Sig: signature.NamedSignature{{"point", "Pol"}, {"by", "number"}},
			Fn:  builtinRotate,
		},

		"translate": {
			Sig: signature.NamedSignature{{"point", "Pol"}, {"by", "number"}},
			Fn:  builtinTranslate,
		},

		"random": {
			Sig: signature.NamedSignature{{"from", "number"}, {"to", "number"}},
			Fn:  builtinRandom,
		},

		"set_resolution": {
			Sig: signature.NamedSignature{{"resolution", "number"}},
			Fn:  builtinSetResolution,
		},

		"theta": {
			Sig: signature.NamedSignature{{"r1", "number"}, {"r2", "number"}, {"R", "number"}},
			Fn:  builtinTheta,
		},

		"sin":  mathBuiltin(math.Sin),
		"cos":  mathBuiltin(math.Cos),
		"sinh": mathBuiltin(math.Sinh),
		"cosh": mathBuiltin(math.Cosh),
		"exp":  mathBuiltin(math.Exp),
		"log":  mathBuiltin(math.Log),
		"sqrt": mathBuiltin(math.Sqrt),

		"print": {
			Sig: signature.NamedSignature{{"message", "string"}},
			Fn:  builtinPrint,
		},

		"save": {
			Sig: signature.NamedSignature{{"file", "string"}},
			Fn:  builtinSave,
		},

		// The initializer for the Pol struct lives in the same registry,
		// there is nothing special about it.
		"Pol": {
			Sig: signature.NamedSignature{{"r", "number"}, {"phi", "number"}},
			Fn:  builtinPol,
		},
	}
}

func (ev *Evaluator) evalCall(call *ast.CallExpression) object.Object {
	builtin, ok := Builtins[call.Name]
	if !ok {
		return newError("eval/call/unknown", call.Token, call.Name)
	}
	if len(builtin.Sig) == 0 && len(call.Arguments) > 0 {
		return newError("eval/args/extraneous", call.Token, call.Name)
	}
	return builtin.Fn(ev, call)
}

func builtinClear(ev *Evaluator, call *ast.CallExpression) object.Object {
	ev.Canvas.Clear()
	return object.NONE
}

func builtinCircle(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	center, err := polForParameter(call, "center", bindings)
	if err != nil {
		return err
	}
	radius, err := numberForParameter(call, "radius", bindings)
	if err != nil {
		return err
	}
	ev.Canvas.AddPath(canvas.PathForCircle(center, radius, ev.Canvas.Resolution))
	return object.NONE
}

func builtinMark(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	center, err := polForParameter(call, "center", bindings)
	if err != nil {
		return err
	}
	radius, err := numberForParameter(call, "radius", bindings)
	if err != nil {
		return err
	}
	ev.Canvas.AddMark(canvas.Circle{Center: center, Radius: radius, IsFilled: true})
	return object.NONE
}

func builtinLine(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
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
	ev.Canvas.AddPath(canvas.PathForLine(from, to, ev.Canvas.Resolution))
	return object.NONE
}

func builtinDistance(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
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
	return &object.Number{Value: from.DistanceTo(to)}
}

func builtinRotate(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	point, err := polForParameter(call, "point", bindings)
	if err != nil {
		return err
	}
	by, err := numberForParameter(call, "by", bindings)
	if err != nil {
		return err
	}
	return polStruct(point.RotatedBy(by))
}

func builtinTranslate(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	point, err := polForParameter(call, "point", bindings)
	if err != nil {
		return err
	}
	by, err := numberForParameter(call, "by", bindings)
	if err != nil {
		return err
	}
	return polStruct(point.TranslatedHorizontallyBy(by))
}

func builtinRandom(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	from, err := numberForParameter(call, "from", bindings)
	if err != nil {
		return err
	}
	to, err := numberForParameter(call, "to", bindings)
	if err != nil {
		return err
	}
	if to < from {
		return newError("eval/random/bounds", call.Token, call.Name)
	}
	// A degenerate interval is fine and yields its only member.
	return &object.Number{Value: from + ev.randomFloat()*(to-from)}
}

func (ev *Evaluator) randomFloat() float64 {
	if ev.random != nil {
		return ev.random.Float64()
	}
	return rand.Float64()
}

func builtinSetResolution(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	resolution, err := numberForParameter(call, "resolution", bindings)
	if err != nil {
		return err
	}
	if resolution <= 0 {
		return newError("eval/resolution/positive", call.Token, call.Name)
	}
	ev.Canvas.Resolution = resolution
	return &object.Number{Value: resolution}
}

func builtinTheta(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	r1, err := numberForParameter(call, "r1", bindings)
	if err != nil {
		return err
	}
	r2, err := numberForParameter(call, "r2", bindings)
	if err != nil {
		return err
	}
	R, err := numberForParameter(call, "R", bindings)
	if err != nil {
		return err
	}
	if r1 > R || r2 > R {
		return newError("eval/theta/bounds", call.Token, call.Name, r1, r2, R)
	}
	if r1+r2 < R {
		return newError("eval/theta/feasible", call.Token, call.Name)
	}
	theta := geometry.Theta(r1, r2, R)
	if theta < 0 {
		return newError("eval/theta/numeric", call.Token, call.Name)
	}
	return &object.Number{Value: theta}
}

func mathBuiltin(fn func(float64) float64) Builtin {
	return Builtin{
		Sig: signature.NamedSignature{{"x", "number"}},
		Fn: func(ev *Evaluator, call *ast.CallExpression) object.Object {
			bindings := map[string]object.Object{}
			if err := ev.interpretArguments(call, bindings); err != nil {
				return err
			}
			x, err := numberForParameter(call, "x", bindings)
			if err != nil {
				return err
			}
			return &object.Number{Value: fn(x)}
		},
	}
}

func builtinPrint(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	message, err := stringForParameter(call, "message", bindings)
	if err != nil {
		return err
	}
	fmt.Fprint(ev.Output, message)
	return object.NONE
}

func builtinSave(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	file, err := stringForParameter(call, "file", bindings)
	if err != nil {
		return err
	}
	if saveErr := ev.Canvas.SaveToFile(file); saveErr != nil {
		return newError("eval/save/file", call.Token, saveErr.Error(), file)
	}
	return object.NONE
}

func builtinPol(ev *Evaluator, call *ast.CallExpression) object.Object {
	bindings := map[string]object.Object{}
	if err := ev.interpretArguments(call, bindings); err != nil {
		return err
	}
	r, err := numberForParameter(call, "r", bindings)
	if err != nil {
		return err
	}
	phi, err := numberForParameter(call, "phi", bindings)
	if err != nil {
		return err
	}
	return polStruct(geometry.Pol{R: r, Phi: phi})
}
