package evaluator

import (
	"github.com/CytherisRose/hydra/ast"
	"github.com/CytherisRose/hydra/geometry"
	"github.com/CytherisRose/hydra/object"
)

// interpretArguments evaluates the arguments of a call and stores the
// results in bindings, keyed by parameter name. If a subset of
// parameter names is passed, only those arguments are touched; the
// curve samplers use this to bind 'from' and 'to' once and then
// re-evaluate the remaining argument for every sample point.
//
// Bindings are committed one by one, so when an argument fails the
// ones before it stay bound and the failing one stays absent.
func (ev *Evaluator) interpretArguments(call *ast.CallExpression, bindings map[string]object.Object, subset ...string) *object.Error {
	wanted := func(name string) bool {
		if len(subset) == 0 {
			return true
		}
		for _, s := range subset {
			if s == name {
				return true
			}
		}
		return false
	}

	for _, argument := range call.Arguments {
		if !wanted(argument.Name) {
			continue
		}
		value := ev.Eval(argument.Value)
		if err, ok := value.(*object.Error); ok {
			return err
		}
		bindings[argument.Name] = value
	}

	return nil
}

// numberForParameter fetches a bound argument and insists that it is
// a number.
func numberForParameter(call *ast.CallExpression, name string, bindings map[string]object.Object) (float64, *object.Error) {
	value, ok := bindings[name]
	if !ok {
		return 0, object.CreateErr("eval/args/missing", call.Token, call.Name, name)
	}
	number, ok := value.(*object.Number)
	if !ok {
		return 0, object.CreateErr("eval/args/number", call.Token, call.Name, name, object.TrueType(value))
	}
	return number.Value, nil
}

func stringForParameter(call *ast.CallExpression, name string, bindings map[string]object.Object) (string, *object.Error) {
	value, ok := bindings[name]
	if !ok {
		return "", object.CreateErr("eval/args/missing", call.Token, call.Name, name)
	}
	str, ok := value.(*object.String)
	if !ok {
		return "", object.CreateErr("eval/args/string", call.Token, call.Name, name, object.TrueType(value))
	}
	return str.Value, nil
}

// polForParameter fetches a bound argument and unpacks it into a
// point, insisting that it is a Pol struct with numeric properties.
func polForParameter(call *ast.CallExpression, name string, bindings map[string]object.Object) (geometry.Pol, *object.Error) {
	value, ok := bindings[name]
	if !ok {
		return geometry.Pol{}, object.CreateErr("eval/args/missing", call.Token, call.Name, name)
	}
	strct, ok := value.(*object.Struct)
	if !ok || strct.Name != "Pol" {
		return geometry.Pol{}, object.CreateErr("eval/args/pol", call.Token, call.Name, name, object.TrueType(value))
	}
	r, rOk := strct.Value["r"].(*object.Number)
	phi, phiOk := strct.Value["phi"].(*object.Number)
	if !rOk || !phiOk {
		return geometry.Pol{}, object.CreateErr("eval/args/pol", call.Token, call.Name, name, object.TrueType(value))
	}
	return geometry.Pol{R: r.Value, Phi: phi.Value}, nil
}

// polStruct wraps a point back into the value it has inside the
// language.
func polStruct(p geometry.Pol) *object.Struct {
	return &object.Struct{
		Name:   "Pol",
		Labels: []string{"r", "phi"},
		Value: map[string]object.Object{
			"r":   &object.Number{Value: p.R},
			"phi": &object.Number{Value: p.Phi},
		},
	}
}
