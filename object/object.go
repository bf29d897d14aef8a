package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/CytherisRose/hydra/text"
	"github.com/CytherisRose/hydra/token"
)

type ObjectType string

const (
	ERROR_OBJ = "error"

	NONE_OBJ   = "none"
	NUMBER_OBJ = "number"
	STRING_OBJ = "string"
	STRUCT_OBJ = "struct"
)

func TrueType(o Object) string {
	if o.Type() != STRUCT_OBJ {
		return string(o.Type())
	}
	return o.(*Struct).Name
}

func EmphType(o Object) string {
	return "<" + TrueType(o) + ">"
}

type Object interface {
	Type() ObjectType
	Inspect() string
}

// None is the "no value" result of a built-in that only has an
// effect. Assigning it to a variable is an error.
type None struct{}

func (n *None) Type() ObjectType { return NONE_OBJ }
func (n *None) Inspect() string  { return "none" }

type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return fmt.Sprintf("%f", n.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// A Struct is a composite value carrying its own type name. The only
// struct type the language currently defines is Pol, with properties
// r and phi. Labels keep the declaration order so Inspect output is
// deterministic.
type Struct struct {
	Name   string
	Labels []string
	Value  map[string]Object
}

func (st *Struct) Type() ObjectType { return STRUCT_OBJ }
func (st *Struct) Inspect() string {
	var out bytes.Buffer

	elements := []string{}
	for _, label := range st.Labels {
		elements = append(elements, label+": "+st.Value[label].Inspect())
	}
	out.WriteString(st.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString(")")

	return out.String()
}

type Error struct {
	ErrorId string
	Message string
	Trace   []token.Token
	Token   token.Token
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	return text.ERROR + e.Message + text.DescribePos(e.Token) + "."
}

var NONE = &None{}
