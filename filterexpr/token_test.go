package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tokenType TokenType
		expected  string
	}{
		{TokenEOF, "EOF"},
		{TokenIdent, "IDENT"},
		{TokenString, "STRING"},
		{TokenNumber, "NUMBER"},
		{TokenBool, "BOOL"},
		{TokenEq, "=="},
		{TokenNe, "!="},
		{TokenLt, "<"},
		{TokenGt, ">"},
		{TokenLe, "<="},
		{TokenGe, ">="},
		{TokenAnd, "&&"},
		{TokenOr, "||"},
		{TokenNot, "!"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenError, "ERROR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.tokenType.String())
	}

	assert.Equal(t, "UNKNOWN", TokenType(250).String())
}
