package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // center, from, x, y, ...
	NUMBER = "number" // 1.23, 5, M_PI
	STRING = "string" // "foo"

	// Operators
	ASSIGN = "="

	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"

	COLON = ":"
	COMMA = ","

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
	LBRACK = "["
	RBRACK = "]"

	NEWLINE = "NEWLINE"

	// Keywords
	VAR = "var"
	FOR = "for"
	IN  = "in"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Source  string
}

var keywords = map[string]TokenType{
	"var": VAR,
	"for": FOR,
	"in":  IN,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
