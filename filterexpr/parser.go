package filterexpr

import "fmt"

// Parser parses tokens from a lexer into an abstract syntax tree.
//
// Grammar, loosest binding first; both logical operators are
// left-associative and a comparison takes at most one operator:
//
//	orExpr     := andExpr ( "||" andExpr )*
//	andExpr    := unaryExpr ( "&&" unaryExpr )*
//	unaryExpr  := "!" unaryExpr | comparison
//	comparison := primary ( compOp primary )?
//	primary    := IDENT | NUMBER | BOOL | STRING | "(" orExpr ")"
type Parser struct {
	lexer    *Lexer
	curToken Token
	err      error
}

// NewParser creates a new parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	p := &Parser{lexer: lexer}
	p.nextToken() // advance onto the first input token
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.lexer.NextToken()
}

// errorf records the first error encountered; later errors are dropped.
func (p *Parser) errorf(pos int, format string, args ...any) {
	if p.err == nil {
		p.err = &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	}
}

// lexError converts an error token from the lexer into a *LexError.
func (p *Parser) lexError(tok Token) {
	if p.err != nil {
		return
	}
	msg, ok := tok.Value.(string)
	if !ok {
		msg = "invalid input at: " + tok.Literal
	}
	p.err = &LexError{Pos: tok.Pos, Msg: msg}
}

// Parse parses the input and returns an expression tree. It returns a
// *LexError or *ParseError if the input is malformed or if trailing tokens
// remain after a complete expression.
func (p *Parser) Parse() (Expression, error) {
	expr := p.parseOrExpr()

	if p.err == nil {
		switch p.curToken.Type {
		case TokenEOF:
		case TokenError:
			p.lexError(p.curToken)
		default:
			p.errorf(p.curToken.Pos, "unexpected trailing token: %s", p.curToken.Type)
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return expr, nil
}

func (p *Parser) parseOrExpr() Expression {
	left := p.parseAndExpr()
	for p.err == nil && p.curToken.Type == TokenOr {
		p.nextToken()
		right := p.parseAndExpr()
		left = &BinaryExpr{Left: left, Operator: TokenOr, Right: right}
	}
	return left
}

func (p *Parser) parseAndExpr() Expression {
	left := p.parseUnaryExpr()
	for p.err == nil && p.curToken.Type == TokenAnd {
		p.nextToken()
		right := p.parseUnaryExpr()
		left = &BinaryExpr{Left: left, Operator: TokenAnd, Right: right}
	}
	return left
}

func (p *Parser) parseUnaryExpr() Expression {
	if p.curToken.Type == TokenNot {
		p.nextToken()
		operand := p.parseUnaryExpr()
		return &UnaryExpr{Operator: TokenNot, Operand: operand}
	}
	return p.parseComparison()
}

// parseComparison accepts at most one comparison operator between two
// primaries. Chained comparisons (a < b < c) are rejected by Parse as
// trailing input.
func (p *Parser) parseComparison() Expression {
	left := p.parsePrimary()
	if !isComparisonOp(p.curToken.Type) {
		return left
	}

	op := p.curToken.Type
	p.nextToken()
	right := p.parsePrimary()
	return &ComparisonExpr{Left: left, Operator: op, Right: right}
}

func isComparisonOp(t TokenType) bool {
	switch t {
	case TokenEq, TokenNe, TokenLt, TokenGt, TokenLe, TokenGe:
		return true
	}
	return false
}

func (p *Parser) parsePrimary() Expression {
	switch p.curToken.Type {
	case TokenIdent:
		expr := &FieldExpr{Name: p.curToken.Literal}
		p.nextToken()
		return expr
	case TokenNumber:
		expr := &LiteralExpr{Value: NumberValue(p.curToken.Value.(float64))}
		p.nextToken()
		return expr
	case TokenBool:
		expr := &LiteralExpr{Value: BoolValue(p.curToken.Value.(bool))}
		p.nextToken()
		return expr
	case TokenString:
		expr := &LiteralExpr{Value: StringValue(p.curToken.Value.(string))}
		p.nextToken()
		return expr
	case TokenLParen:
		p.nextToken()
		expr := p.parseOrExpr()
		if p.curToken.Type != TokenRParen {
			p.errorf(p.curToken.Pos, "expected ), got %s", p.curToken.Type)
			return nil
		}
		p.nextToken()
		return expr
	case TokenError:
		p.lexError(p.curToken)
		return nil
	default:
		p.errorf(p.curToken.Pos, "unexpected token: %s", p.curToken.Type)
		return nil
	}
}
