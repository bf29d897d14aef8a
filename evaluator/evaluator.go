package evaluator

// This is basically your standard tree-walking evaluator. The one
// peculiarity is the argument binder (arguments.go): built-in
// functions receive their arguments unevaluated and decide when to
// bind them, which is what lets the curve samplers re-evaluate an
// argument expression once per sample point.

import (
	"io"
	"math/rand"
	"os"

	"github.com/CytherisRose/hydra/ast"
	"github.com/CytherisRose/hydra/canvas"
	"github.com/CytherisRose/hydra/object"
	"github.com/CytherisRose/hydra/token"
)

type Evaluator struct {
	Env    *object.Environment
	Canvas *canvas.Canvas

	// Where 'print' writes to.
	Output io.Writer

	random *rand.Rand
}

func New() *Evaluator {
	return &Evaluator{
		Env:    object.NewEnvironment(),
		Canvas: canvas.New(),
		Output: os.Stdout,
	}
}

// EvalProgram evaluates statements one after another and stops at the
// first error. The value of the last statement is returned.
func (ev *Evaluator) EvalProgram(statements []ast.Node) object.Object {
	var result object.Object = object.NONE

	for _, statement := range statements {
		result = ev.Eval(statement)
		if isError(result) {
			return result
		}
	}

	return result
}

func (ev *Evaluator) Eval(node ast.Node) object.Object {

	switch node := node.(type) {

	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}

	case *ast.StringLiteral:
		return ev.evalStringLiteral(node)

	case *ast.Identifier:
		return ev.evalIdentifier(node)

	case *ast.PrefixExpression:
		return ev.evalPrefixExpression(node)

	case *ast.InfixExpression:
		return ev.evalInfixExpression(node)

	case *ast.AssignStatement:
		return ev.evalAssignment(node)

	case *ast.LoopStatement:
		return ev.evalLoop(node)

	case *ast.CallExpression:
		return ev.evalCall(node)
	}

	return newError("parse/malformed", node.GetToken(), "cannot interpret statement")
}

func (ev *Evaluator) evalIdentifier(node *ast.Identifier) object.Object {
	value, ok := ev.Env.Get(node.Value)
	if !ok {
		return newError("eval/ident/undefined", node.Token, node.Value)
	}
	return value
}

func (ev *Evaluator) evalPrefixExpression(node *ast.PrefixExpression) object.Object {
	right := ev.Eval(node.Right)
	if isError(right) {
		return right
	}
	number, ok := right.(*object.Number)
	if !ok {
		return newError("eval/prefix/number", node.Token, node.Operator)
	}
	return &object.Number{Value: -number.Value}
}

// Operators apply to numbers only.
func (ev *Evaluator) evalInfixExpression(node *ast.InfixExpression) object.Object {
	left := ev.Eval(node.Left)
	if isError(left) {
		return left
	}
	leftNumber, ok := left.(*object.Number)
	if !ok {
		return newError("eval/infix/lhs", node.Token, node.Operator)
	}

	right := ev.Eval(node.Right)
	if isError(right) {
		return right
	}
	rightNumber, ok := right.(*object.Number)
	if !ok {
		return newError("eval/infix/rhs", node.Token, node.Operator)
	}

	switch node.Operator {
	case "+":
		return &object.Number{Value: leftNumber.Value + rightNumber.Value}
	case "-":
		return &object.Number{Value: leftNumber.Value - rightNumber.Value}
	case "*":
		return &object.Number{Value: leftNumber.Value * rightNumber.Value}
	default:
		return &object.Number{Value: leftNumber.Value / rightNumber.Value}
	}
}

func (ev *Evaluator) evalAssignment(node *ast.AssignStatement) object.Object {
	if node.IsDeclaration && node.Name[0] == '_' {
		// Underscores are reserved for internal variables.
		return newError("eval/assign/underscore", node.Token)
	}

	value := ev.Eval(node.Value)
	if isError(value) {
		return value
	}
	if value.Type() == object.NONE_OBJ {
		return newError("eval/assign/none", node.Token, node.Name)
	}

	if node.IsDeclaration {
		if ev.Env.Define(node.Name, value) < 0 {
			return newError("eval/assign/exists", node.Token, node.Name)
		}
		return value
	}

	if !ev.Env.Set(node.Name, value) {
		return newError("eval/assign/undefined", node.Token, node.Name)
	}
	return value
}

// The loop variable and everything defined in the body live in a
// scope of their own, which is closed again on every exit path.
func (ev *Evaluator) evalLoop(node *ast.LoopStatement) object.Object {
	lower, err := ev.rangeBound(node.Lower, "lower bound")
	if err != nil {
		return err
	}
	step, err := ev.rangeBound(node.Step, "step size")
	if err != nil {
		return err
	}
	upper, err := ev.rangeBound(node.Upper, "upper bound")
	if err != nil {
		return err
	}

	ev.Env.OpenScope()
	defer ev.Env.CloseScope()

	frame := ev.Env.Define(node.Variable, &object.Number{Value: lower})

	for value := lower; value <= upper; {
		// Each pass through the body gets a frame of its own, so a
		// 'var' in the body does not collide with its previous self.
		ev.Env.OpenScope()
		for _, statement := range node.Body {
			if result := ev.Eval(statement); isError(result) {
				ev.Env.CloseScope()
				return result
			}
		}
		ev.Env.CloseScope()

		// The body may have reassigned the loop variable; the
		// increment applies to its current value.
		current, _ := ev.Env.GetLocal(node.Variable)
		number, ok := current.(*object.Number)
		if !ok {
			return newError("eval/loop/variable", node.Token, node.Variable)
		}
		value = number.Value + step
		ev.Env.SetInFrame(node.Variable, &object.Number{Value: value}, frame)
	}

	return object.NONE
}

func (ev *Evaluator) rangeBound(node ast.Node, which string) (float64, *object.Error) {
	value := ev.Eval(node)
	if err, ok := value.(*object.Error); ok {
		return 0, err
	}
	number, ok := value.(*object.Number)
	if !ok {
		return 0, newError("eval/loop/range", node.GetToken(), which)
	}
	return number.Value, nil
}

func (ev *Evaluator) evalStringLiteral(node *ast.StringLiteral) object.Object {
	if node.Parts == nil {
		return &object.String{Value: node.Value}
	}

	// The parts of an interpolated string are evaluated in order and
	// concatenated.
	result := ""
	for _, part := range node.Parts {
		value := ev.Eval(part)
		if isError(value) {
			return value
		}
		representation, ok := stringRepresentation(value)
		if !ok {
			return newError("eval/string/part", part.GetToken(), part.String())
		}
		result += representation
	}
	return &object.String{Value: result}
}

// stringRepresentation says how values embed into strings; a value
// without one (none) cannot be interpolated or printed.
func stringRepresentation(value object.Object) (string, bool) {
	switch value.Type() {
	case object.NUMBER_OBJ, object.STRING_OBJ, object.STRUCT_OBJ:
		return value.Inspect(), true
	}
	return "", false
}

func newError(ident string, token token.Token, args ...any) *object.Error {
	return object.CreateErr(ident, token, args...)
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}
