package filterexpr

import "strconv"

// Node is the base interface for all AST nodes.
type Node interface {
	node()
}

// Expression represents an expression in the AST. String returns the
// canonical rendering of the expression, with parentheses only where the
// grammar requires them.
type Expression interface {
	Node
	expression()
	String() string
}

// BinaryExpr represents a logical expression (left && right, left || right).
type BinaryExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
}

func (b *BinaryExpr) node()       {}
func (b *BinaryExpr) expression() {}
func (b *BinaryExpr) String() string {
	min := precAnd
	if b.Operator == TokenOr {
		min = precOr
	}
	return renderOperand(b.Left, min) + " " + b.Operator.String() + " " + renderOperand(b.Right, min)
}

// ComparisonExpr represents a comparison between two operands
// (e.g., price < 350000).
type ComparisonExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
}

func (c *ComparisonExpr) node()       {}
func (c *ComparisonExpr) expression() {}
func (c *ComparisonExpr) String() string {
	// Comparison operands are primaries in the grammar, so any nested
	// comparison or negation keeps its parentheses.
	return renderOperand(c.Left, precPrimary) + " " + c.Operator.String() + " " + renderOperand(c.Right, precPrimary)
}

// UnaryExpr represents a negation (!expr).
type UnaryExpr struct {
	Operator TokenType
	Operand  Expression
}

func (u *UnaryExpr) node()       {}
func (u *UnaryExpr) expression() {}
func (u *UnaryExpr) String() string {
	return "!" + renderOperand(u.Operand, precUnary)
}

// FieldExpr represents a field reference (e.g., price).
type FieldExpr struct {
	Name string
}

func (f *FieldExpr) node()          {}
func (f *FieldExpr) expression()    {}
func (f *FieldExpr) String() string { return f.Name }

// LiteralExpr represents a literal value (e.g., "cbd", 350000, true).
type LiteralExpr struct {
	Value Value
}

func (l *LiteralExpr) node()       {}
func (l *LiteralExpr) expression() {}
func (l *LiteralExpr) String() string {
	if s, ok := l.Value.(StringValue); ok {
		return strconv.Quote(string(s))
	}
	return l.Value.String()
}

// Binding precedence, loosest to tightest. Primaries bind tightest.
const (
	precOr = iota + 1
	precAnd
	precComparison
	precUnary
	precPrimary
)

func exprPrecedence(e Expression) int {
	switch e := e.(type) {
	case *BinaryExpr:
		if e.Operator == TokenOr {
			return precOr
		}
		return precAnd
	case *ComparisonExpr:
		return precComparison
	case *UnaryExpr:
		return precUnary
	default:
		return precPrimary
	}
}

// renderOperand renders e, parenthesized when it binds looser than the
// operator it appears under.
func renderOperand(e Expression, min int) string {
	if exprPrecedence(e) < min {
		return "(" + e.String() + ")"
	}
	return e.String()
}
