package ast

import (
	"bytes"
	"strings"

	"github.com/CytherisRose/hydra/token"
)

// The base Node interface
type Node interface {
	GetToken() token.Token
	TokenLiteral() string
	String() string
}

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) TokenLiteral() string  { return i.Token.Literal }
func (i *Identifier) String() string        { return i.Value }

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) GetToken() token.Token { return nl.Token }
func (nl *NumberLiteral) TokenLiteral() string  { return nl.Token.Literal }
func (nl *NumberLiteral) String() string        { return nl.Token.Literal }

// A StringLiteral with a nil Parts slice is a plain string. If Parts
// is non-nil the string contains '\(...)' interpolations and the
// literal's value is the concatenation of the evaluated parts.
type StringLiteral struct {
	Token token.Token
	Value string
	Parts []Node
}

func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Literal }
func (sl *StringLiteral) String() string        { return "\"" + sl.Value + "\"" }

type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Node
}

func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(pe.Operator)
	out.WriteString(pe.Right.String())
	out.WriteString(")")

	return out.String()
}

type InfixExpression struct {
	Token    token.Token
	Operator string
	Left     Node
	Right    Node
}

func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")

	return out.String()
}

// An Argument is one 'name: expression' pair in a function call. The
// expression is kept unevaluated; the evaluator's argument binder
// decides when to evaluate it.
type Argument struct {
	Name  string
	Value Node
}

// A CallExpression is the call descriptor handed to the evaluator: a
// function name together with its named argument expressions, in
// source order.
type CallExpression struct {
	Token     token.Token
	Name      string
	Arguments []Argument
}

func (ce *CallExpression) GetToken() token.Token { return ce.Token }
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer

	args := []string{}
	for _, a := range ce.Arguments {
		args = append(args, a.Name+": "+a.Value.String())
	}
	out.WriteString(ce.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")

	return out.String()
}

// ArgumentNamed returns the argument expression bound to the given
// parameter name, if the call supplies one.
func (ce *CallExpression) ArgumentNamed(name string) (Node, bool) {
	for _, a := range ce.Arguments {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// 'var a = expr' declares, 'a = expr' reassigns.
type AssignStatement struct {
	Token         token.Token
	Name          string
	IsDeclaration bool
	Value         Node
}

func (as *AssignStatement) GetToken() token.Token { return as.Token }
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Literal }
func (as *AssignStatement) String() string {
	var out bytes.Buffer

	if as.IsDeclaration {
		out.WriteString("var ")
	}
	out.WriteString(as.Name)
	out.WriteString(" = ")
	out.WriteString(as.Value.String())

	return out.String()
}

// 'for v in [lower, step, upper] { ... }'
type LoopStatement struct {
	Token    token.Token
	Variable string
	Lower    Node
	Step     Node
	Upper    Node
	Body     []Node
}

func (ls *LoopStatement) GetToken() token.Token { return ls.Token }
func (ls *LoopStatement) TokenLiteral() string  { return ls.Token.Literal }
func (ls *LoopStatement) String() string {
	var out bytes.Buffer

	out.WriteString("for ")
	out.WriteString(ls.Variable)
	out.WriteString(" in [")
	out.WriteString(ls.Lower.String())
	out.WriteString(", ")
	out.WriteString(ls.Step.String())
	out.WriteString(", ")
	out.WriteString(ls.Upper.String())
	out.WriteString("] { ")
	for _, stmt := range ls.Body {
		out.WriteString(stmt.String())
		out.WriteString("; ")
	}
	out.WriteString("}")

	return out.String()
}
