package filterexpr

// TokenType represents the type of a token in the filter language.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenString
	TokenNumber
	TokenBool

	// Comparison operators
	TokenEq // ==
	TokenNe // !=
	TokenLt // <
	TokenGt // >
	TokenLe // <=
	TokenGe // >=

	// Logical operators
	TokenAnd // &&
	TokenOr  // ||
	TokenNot // !

	// Delimiters
	TokenLParen // (
	TokenRParen // )

	// Special tokens
	TokenError // lexer error
)

var tokenNames = map[TokenType]string{
	TokenEOF:    "EOF",
	TokenIdent:  "IDENT",
	TokenString: "STRING",
	TokenNumber: "NUMBER",
	TokenBool:   "BOOL",
	TokenEq:     "==",
	TokenNe:     "!=",
	TokenLt:     "<",
	TokenGt:     ">",
	TokenLe:     "<=",
	TokenGe:     ">=",
	TokenAnd:    "&&",
	TokenOr:     "||",
	TokenNot:    "!",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenError:  "ERROR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token in the filter language.
// Pos is the byte offset of the token start within the input; the EOF token
// carries the final scan position.
type Token struct {
	Type    TokenType
	Literal string
	Value   any
	Pos     int
}
