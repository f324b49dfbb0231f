package filterexpr

import "fmt"

// LexError reports an invalid character sequence in a filter expression.
// Pos is the byte offset of the offending input.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}

// ParseError reports a filter expression that does not match the grammar.
// Pos is the byte offset of the token where parsing failed.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

// TypeError reports a well-formed expression that fails semantic checks
// against a schema: an unknown field, mismatched comparison operand types,
// or an operator unsupported for the operand type.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return e.Msg
}
