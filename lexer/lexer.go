package lexer

import (
	"strings"

	"github.com/CytherisRose/hydra/token"
)

type Lexer struct {
	input  string
	pos    int  // position of ch in input
	ch     byte // current character under examination
	line   int
	source string
}

func New(source, input string) *Lexer {
	l := &Lexer{input: input, pos: -1, line: 1, source: source}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	// Comments run to the end of the line.
	for l.ch == '/' && l.peekChar() == '/' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		l.skipWhitespace()
	}

	var tok token.Token

	switch l.ch {
	case '\n':
		tok = l.newToken(token.NEWLINE, ";")
		l.line++
	case '=':
		tok = l.newToken(token.ASSIGN, "=")
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.ASTERISK, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case ':':
		tok = l.newToken(token.COLON, ":")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case '[':
		tok = l.newToken(token.LBRACK, "[")
	case ']':
		tok = l.newToken(token.RBRACK, "]")
	case '"':
		tok = l.newToken(token.STRING, l.readString())
	case 0:
		tok = l.newToken(token.EOF, "EOF")
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return l.newToken(token.LookupIdent(literal), literal)
		}
		if isDigit(l.ch) {
			return l.newToken(token.NUMBER, l.readNumber())
		}
		tok = l.newToken(token.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: l.line, Source: l.source}
}

func (l *Lexer) readChar() {
	l.pos++
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
}

func (l *Lexer) peekChar() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString reads up to the closing quote. The backslash escapes
// '\"', '\n', '\t' and '\\' are resolved here; the interpolation
// marker '\(' is kept verbatim for the parser, which needs to see the
// parenthesis to split the string into parts.
func (l *Lexer) readString() string {
	var out strings.Builder
	for {
		l.readChar()
		if l.ch == '"' || l.ch == 0 {
			break
		}
		if l.ch == '\\' {
			switch l.peekChar() {
			case 'n':
				out.WriteByte('\n')
				l.readChar()
				continue
			case 't':
				out.WriteByte('\t')
				l.readChar()
				continue
			case '"':
				out.WriteByte('"')
				l.readChar()
				continue
			case '\\':
				out.WriteByte('\\')
				l.readChar()
				continue
			}
		}
		out.WriteByte(l.ch)
	}
	return out.String()
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
