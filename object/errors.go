package object

import (
	"fmt"

	"github.com/CytherisRose/hydra/token"
)

// A map from error identifiers to functions that supply the corresponding error messages.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.

type ErrorCreator struct {
	Message func(tok token.Token, args ...any) string
}

var ErrorCreatorMap = map[string]ErrorCreator{

	"eval/args/extraneous": {
		Message: func(tok token.Token, args ...any) string {
			return "extraneous argument in call to function '" + args[0].(string) +
				"': this function does not take any arguments"
		},
	},

	"eval/args/missing": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': no argument supplied for parameter '" +
				args[1].(string) + "'"
		},
	},

	"eval/args/number": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': argument for parameter '" +
				args[1].(string) + "' should be a number, not " + args[2].(string)
		},
	},

	"eval/args/pol": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': argument for parameter '" +
				args[1].(string) + "' should be a Pol, not " + args[2].(string)
		},
	},

	"eval/args/string": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': argument for parameter '" +
				args[1].(string) + "' should be a string, not " + args[2].(string)
		},
	},

	"eval/assign/exists": {
		Message: func(tok token.Token, args ...any) string {
			return "redefinition of '" + args[0].(string) + "'"
		},
	},

	"eval/assign/none": {
		Message: func(tok token.Token, args ...any) string {
			return "could not define '" + args[0].(string) + "': right hand side of assignment did not have a value"
		},
	},

	"eval/assign/undefined": {
		Message: func(tok token.Token, args ...any) string {
			return "trying to assign to undefined variable: define the variable first using 'var " +
				args[0].(string) + " = ...'"
		},
	},

	"eval/assign/underscore": {
		Message: func(tok token.Token, args ...any) string {
			return "variables starting with '_' cannot be assigned to"
		},
	},

	"eval/call/unknown": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': no function definition found"
		},
	},

	"eval/curve/angle": {
		Message: func(tok token.Token, args ...any) string {
			return fmt.Sprintf("could not interpret '%s': the angular coordinates of the two endpoints "+
				"did not match: '%f' vs. '%f'", args[0].(string), args[1].(float64), args[2].(float64))
		},
	},

	"eval/curve/step": {
		Message: func(tok token.Token, args ...any) string {
			return "invalid step size <= 0 in function '" + args[0].(string) +
				"': make sure that 'to' and 'from' are not the same point"
		},
	},

	"eval/ident/undefined": {
		Message: func(tok token.Token, args ...any) string {
			return "use of undeclared variable '" + args[0].(string) + "': declare the variable first using 'var " +
				args[0].(string) + " = ...'"
		},
	},

	"eval/infix/lhs": {
		Message: func(tok token.Token, args ...any) string {
			return "left hand side of operation near '" + args[0].(string) + "' could not be interpreted as a number"
		},
	},

	"eval/infix/rhs": {
		Message: func(tok token.Token, args ...any) string {
			return "right hand side of operation near '" + args[0].(string) + "' could not be interpreted as a number"
		},
	},

	"eval/loop/range": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret the " + args[0].(string) + " of the range"
		},
	},

	"eval/loop/variable": {
		Message: func(tok token.Token, args ...any) string {
			return "loop variable '" + args[0].(string) + "' could not be interpreted as a number"
		},
	},

	"eval/prefix/number": {
		Message: func(tok token.Token, args ...any) string {
			return "operand of '" + args[0].(string) + "' could not be interpreted as a number"
		},
	},

	"eval/random/bounds": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': argument 'from' must not be larger than 'to'"
		},
	},

	"eval/resolution/positive": {
		Message: func(tok token.Token, args ...any) string {
			return "invalid argument in function '" + args[0].(string) + "': cannot set non-positive resolution"
		},
	},

	"eval/save/file": {
		Message: func(tok token.Token, args ...any) string {
			return "os returns '" + args[0].(string) + "' when trying to save file '" + args[1].(string) + "'"
		},
	},

	"eval/scope/close": {
		Message: func(tok token.Token, args ...any) string {
			return "could not close scope as that would mean closing the last scope"
		},
	},

	"eval/string/part": {
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' could not be interpreted as a string"
		},
	},

	"eval/theta/bounds": {
		Message: func(tok token.Token, args ...any) string {
			return fmt.Sprintf("could not interpret '%s': arguments 'r1' and 'r2' must not be larger than 'R' "+
				"(r1 = %f, r2 = %f, R = %f)", args[0].(string), args[1].(float64), args[2].(float64), args[3].(float64))
		},
	},

	"eval/theta/feasible": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': the sum of the arguments 'r1' and 'r2' must be at least 'R'"
		},
	},

	"eval/theta/numeric": {
		Message: func(tok token.Token, args ...any) string {
			return "could not interpret '" + args[0].(string) + "': the value could not be computed due to numerical issues"
		},
	},

	"parse/malformed": {
		Message: func(tok token.Token, args ...any) string {
			return args[0].(string)
		},
	},
}

func CreateErr(ident string, tok token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[ident]
	if !ok {
		return &Error{ErrorId: ident, Message: "oopsie, can't find errorfile entry " + ident, Token: tok}
	}
	return &Error{ErrorId: ident, Message: creator.Message(tok, args...), Token: tok}
}
