package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/CytherisRose/hydra/ast"
	"github.com/CytherisRose/hydra/lexer"
	"github.com/CytherisRose/hydra/object"
	"github.com/CytherisRose/hydra/token"
)

const (
	LOWEST  = iota
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -x
)

var precedences = map[token.TokenType]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	Errors []*object.Error
}

func New(source, input string) *Parser {
	p := &Parser{l: lexer.New(source, input)}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram parses a whole script: newline-separated statements.
func (p *Parser) ParseProgram() []ast.Node {
	statements := []ast.Node{}

	for p.curToken.Type != token.EOF {
		if p.curToken.Type == token.NEWLINE {
			p.nextToken()
			continue
		}
		statement := p.parseStatement()
		if statement != nil {
			statements = append(statements, statement)
		}
		p.nextToken()
	}

	return statements
}

func (p *Parser) parseStatement() ast.Node {
	switch p.curToken.Type {
	case token.VAR:
		return p.parseDeclaration()
	case token.FOR:
		return p.parseLoop()
	case token.IDENT:
		if p.peekToken.Type == token.ASSIGN {
			return p.parseReassignment()
		}
	}
	return p.parseExpression(LOWEST)
}

func (p *Parser) parseDeclaration() ast.Node {
	tok := p.curToken

	if !p.expectPeek(token.IDENT, "expected a variable name after 'var'") {
		return nil
	}
	name := p.curToken.Literal

	if !p.expectPeek(token.ASSIGN, "invalid assignment: use 'var a = 5.0' instead") {
		return nil
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &ast.AssignStatement{Token: tok, Name: name, IsDeclaration: true, Value: value}
}

func (p *Parser) parseReassignment() ast.Node {
	tok := p.curToken
	name := p.curToken.Literal

	p.nextToken() // the '='
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &ast.AssignStatement{Token: tok, Name: name, Value: value}
}

// A loop has the form 'for v in [lower, step, upper] { ... }'.
func (p *Parser) parseLoop() ast.Node {
	loop := &ast.LoopStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT, "expected a loop variable after 'for'") {
		return nil
	}
	loop.Variable = p.curToken.Literal

	if !p.expectPeek(token.IN, "expected 'in' after the loop variable") {
		return nil
	}
	if !p.expectPeek(token.LBRACK, "expected a range of the form [lower, step, upper]") {
		return nil
	}
	p.nextToken()

	loop.Lower = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COMMA, "expected ',' after the lower bound of the range") {
		return nil
	}
	p.nextToken()

	loop.Step = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COMMA, "expected ',' after the step size of the range") {
		return nil
	}
	p.nextToken()

	loop.Upper = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACK, "expected ']' closing the range") {
		return nil
	}
	if !p.expectPeek(token.LBRACE, "expected '{' opening the loop body") {
		return nil
	}
	p.nextToken()

	for p.curToken.Type != token.RBRACE {
		if p.curToken.Type == token.EOF {
			p.throw("unexpected end of input in loop body")
			return nil
		}
		if p.curToken.Type == token.NEWLINE {
			p.nextToken()
			continue
		}
		statement := p.parseStatement()
		if statement == nil {
			return nil
		}
		loop.Body = append(loop.Body, statement)
		p.nextToken()
	}

	return loop
}

func (p *Parser) parseExpression(precedence int) ast.Node {
	var left ast.Node

	switch p.curToken.Type {
	case token.NUMBER:
		left = p.parseNumberLiteral()
	case token.STRING:
		left = p.parseStringLiteral()
	case token.MINUS:
		left = p.parsePrefixExpression()
	case token.LPAREN:
		left = p.parseGroupedExpression()
	case token.IDENT:
		if p.peekToken.Type == token.LPAREN {
			left = p.parseCallExpression()
		} else {
			left = p.parseIdentifier()
		}
	default:
		p.throw("unexpected token '" + p.curToken.Literal + "'")
		return nil
	}

	for left != nil && precedence < p.peekPrecedence() {
		p.nextToken()
		left = p.parseInfixExpression(left)
	}

	return left
}

func (p *Parser) parseNumberLiteral() ast.Node {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.throw("invalid number '" + p.curToken.Literal + "'")
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseIdentifier() ast.Node {
	// The one numeric constant the language knows.
	if p.curToken.Literal == "M_PI" {
		return &ast.NumberLiteral{Token: p.curToken, Value: math.Pi}
	}
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Node {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpression{Token: tok, Operator: tok.Literal, Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Node) ast.Node {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Node {
	p.nextToken()
	expression := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN, "expected ')'") {
		return nil
	}
	return expression
}

// parseCallExpression builds the call descriptor: the function name
// and its named argument expressions in source order.
func (p *Parser) parseCallExpression() ast.Node {
	call := &ast.CallExpression{Token: p.curToken, Name: p.curToken.Literal}

	p.nextToken() // the '('
	if p.peekToken.Type == token.RPAREN {
		p.nextToken()
		return call
	}

	for {
		if !p.expectPeek(token.IDENT, "expected a parameter name in call to '"+call.Name+"'") {
			return nil
		}
		name := p.curToken.Literal
		if !p.expectPeek(token.COLON, "expected ':' after parameter '"+name+"' in call to '"+call.Name+"'") {
			return nil
		}
		p.nextToken()

		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		call.Arguments = append(call.Arguments, ast.Argument{Name: name, Value: value})

		if p.peekToken.Type != token.COMMA {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN, "expected ')' closing the call to '"+call.Name+"'") {
		return nil
	}
	return call
}

// parseStringLiteral splits a string on its '\(...)' interpolations.
// Each interpolated expression is parsed with a fresh sub-parser.
func (p *Parser) parseStringLiteral() ast.Node {
	tok := p.curToken
	raw := p.curToken.Literal

	if !strings.Contains(raw, "\\(") {
		return &ast.StringLiteral{Token: tok, Value: raw}
	}

	parts := []ast.Node{}
	for len(raw) > 0 {
		marker := strings.Index(raw, "\\(")
		if marker == -1 {
			parts = append(parts, &ast.StringLiteral{Token: tok, Value: raw})
			break
		}
		if marker > 0 {
			parts = append(parts, &ast.StringLiteral{Token: tok, Value: raw[:marker]})
		}
		raw = raw[marker+1:] // raw now starts at the '('

		end := matchingParenthesis(raw)
		if end == -1 {
			p.throw("unmatched '\\(' in string")
			return nil
		}

		sub := New(tok.Source, raw[1:end])
		expression := sub.parseExpression(LOWEST)
		if len(sub.Errors) > 0 {
			p.Errors = append(p.Errors, sub.Errors...)
			return nil
		}
		if expression == nil {
			p.throw("empty interpolation in string")
			return nil
		}
		parts = append(parts, expression)
		raw = raw[end+1:]
	}

	return &ast.StringLiteral{Token: tok, Value: tok.Literal, Parts: parts}
}

func matchingParenthesis(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (p *Parser) expectPeek(t token.TokenType, message string) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.throw(message)
	return false
}

func (p *Parser) throw(message string) {
	p.Errors = append(p.Errors, object.CreateErr("parse/malformed", p.curToken, message))
}

func (p *Parser) peekPrecedence() int {
	if precedence, ok := precedences[p.peekToken.Type]; ok {
		return precedence
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if precedence, ok := precedences[p.curToken.Type]; ok {
		return precedence
	}
	return LOWEST
}
