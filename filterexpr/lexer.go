package filterexpr

import (
	"strconv"
	"strings"
)

// Lexer tokenizes filter expression strings into tokens.
type Lexer struct {
	input string
	pos   int
	ch    byte
}

// NewLexer creates a new lexer for the given input string.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// tokenPos returns the byte offset of the current character, clamped to the
// input length at end of input.
func (l *Lexer) tokenPos() int {
	if l.pos-1 > len(l.input) {
		return len(l.input)
	}
	return l.pos - 1
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readOperatorToken handles operators, matching two-character operators
// before their one-character prefixes.
func (l *Lexer) readOperatorToken() (Token, bool) {
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			return Token{Type: TokenEq, Literal: "=="}, true
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return Token{Type: TokenNe, Literal: "!="}, true
		}
		return Token{Type: TokenNot, Literal: "!"}, true
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			return Token{Type: TokenLe, Literal: "<="}, true
		}
		return Token{Type: TokenLt, Literal: "<"}, true
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			return Token{Type: TokenGe, Literal: ">="}, true
		}
		return Token{Type: TokenGt, Literal: ">"}, true
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			return Token{Type: TokenAnd, Literal: "&&"}, true
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			return Token{Type: TokenOr, Literal: "||"}, true
		}
	}
	return Token{}, false
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.tokenPos()

	if tok, ok := l.readOperatorToken(); ok {
		tok.Pos = pos
		l.readChar()
		return tok
	}

	tok := Token{Pos: pos}

	switch l.ch {
	case 0:
		tok.Type = TokenEOF
	case '(':
		tok.Type, tok.Literal = TokenLParen, "("
	case ')':
		tok.Type, tok.Literal = TokenRParen, ")"
	case '"', '\'':
		lit, val := l.readString(l.ch)
		tok.Literal = lit
		if val == nil {
			tok.Type = TokenError
			tok.Value = "unterminated string literal"
		} else {
			tok.Type = TokenString
			tok.Value = val
		}
	default:
		switch {
		case isLetter(l.ch):
			return l.readIdentifierToken(pos)
		case isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekChar())):
			return l.readNumberToken(pos)
		default:
			tok.Type = TokenError
			tok.Literal = string(l.ch)
			tok.Value = "unexpected character: " + string(l.ch)
		}
	}

	l.readChar()
	return tok
}

// readString scans a string literal delimited by the given quote character.
// A backslash escapes the next character verbatim; there are no other escape
// semantics. A nil value return indicates an unterminated literal.
func (l *Lexer) readString(quote byte) (string, any) {
	l.readChar()
	start := l.pos - 1

	// Fast path: check if string has no escape sequences
	hasEscape := false
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			hasEscape = true
			break
		}
		l.readChar()
	}

	if l.ch == 0 && !hasEscape {
		return l.input[start : l.pos-1], nil // nil value indicates error
	}

	// If no escapes, return substring directly (zero allocation)
	if !hasEscape {
		result := l.input[start : l.pos-1]
		return result, result
	}

	// Slow path: handle escape sequences
	var result strings.Builder
	result.Grow(l.pos - start + 16)

	// Copy what we've already scanned
	result.WriteString(l.input[start : l.pos-1])

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			// take the escaped character as-is
			l.readChar()
			if l.ch == 0 {
				break
			}
		}
		result.WriteByte(l.ch)
		l.readChar()
	}

	if l.ch == 0 {
		return result.String(), nil // nil value indicates error
	}

	str := result.String()
	return str, str
}

func (l *Lexer) readIdentifier() string {
	start := l.pos - 1
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start : l.pos-1]
}

// isLetter checks if the byte is an ASCII letter or underscore.
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// isDigit checks if the byte is an ASCII digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) readIdentifierToken(pos int) Token {
	literal := l.readIdentifier()
	tok := Token{Literal: literal, Pos: pos}

	switch literal {
	case "true":
		tok.Type = TokenBool
		tok.Value = true
	case "false":
		tok.Type = TokenBool
		tok.Value = false
	default:
		tok.Type = TokenIdent
		tok.Value = literal
	}
	return tok
}

func (l *Lexer) readNumberToken(pos int) Token {
	start := l.pos - 1
	if l.ch == '-' {
		l.readChar()
	}

	for isDigit(l.ch) {
		l.readChar()
	}

	// Fractional part: a dot is only part of the number when digits follow.
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	literal := l.input[start : l.pos-1]

	val, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Token{
			Type:    TokenError,
			Literal: literal,
			Value:   "invalid number: " + literal,
			Pos:     pos,
		}
	}
	return Token{
		Type:    TokenNumber,
		Literal: literal,
		Value:   val,
		Pos:     pos,
	}
}
