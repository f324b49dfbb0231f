// Package filterexpr implements a typed boolean filter expression language
// and evaluation engine for records with named fields.
//
// The filter language supports:
//   - Logical operators: &&, ||, !
//   - Comparison operators: ==, !=, <, >, <=, >=
//   - Data types: number, boolean, string
//   - Grouping with parentheses
//
// Example:
//
//	schema := filterexpr.NewSchema().
//	    AddField("price", filterexpr.TypeNumber).
//	    AddField("bedrooms", filterexpr.TypeNumber)
//
//	filter, err := filterexpr.Compile(`price < 350000 && bedrooms >= 2`, schema)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rec := filterexpr.NewRecord().
//	    SetNumber("price", 300000).
//	    SetNumber("bedrooms", 2)
//
//	fmt.Println(filter.Execute(rec)) // true
package filterexpr

// Filter represents a compiled, type-checked filter expression that can be
// executed against records. A Filter is immutable and safe for concurrent
// use; compile a rule once and execute it across any number of records.
type Filter struct {
	expr   Expression
	schema *Schema
}

// Compile parses and type-checks a filter expression string into an
// executable Filter. If a schema is provided, it verifies that every
// referenced field exists and that all comparisons are well typed.
// Returns a *LexError, *ParseError, or *TypeError describing the failure.
func Compile(filterStr string, schema *Schema) (*Filter, error) {
	lexer := NewLexer(filterStr)
	parser := NewParser(lexer)

	expr, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if schema != nil {
		if err := schema.Validate(expr); err != nil {
			return nil, err
		}
	}

	return &Filter{
		expr:   expr,
		schema: schema,
	}, nil
}

// String returns the canonical rendering of the compiled expression.
func (f *Filter) String() string {
	return f.expr.String()
}

// MarshalText implements the encoding.TextMarshaler interface and returns
// the canonical rendering of the compiled expression.
func (f *Filter) MarshalText() ([]byte, error) {
	return []byte(f.expr.String()), nil
}

// Execute evaluates the compiled filter against the provided record.
// Returns true if the filter matches, false otherwise.
//
// Execute never fails: comparisons against absent or unknown values do not
// match, and any internal inconsistency degrades to false rather than
// propagating.
func (f *Filter) Execute(rec *Record) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()

	result := f.evaluate(f.expr, rec)
	if result == nil {
		return false
	}
	return result.IsTruthy()
}

// evaluate reduces an expression to a value. A nil result is the unknown
// sentinel.
func (f *Filter) evaluate(expr Expression, rec *Record) Value {
	switch e := expr.(type) {
	case *BinaryExpr:
		return f.evaluateBinaryExpr(e, rec)
	case *UnaryExpr:
		return f.evaluateUnaryExpr(e, rec)
	case *ComparisonExpr:
		return f.evaluateComparisonExpr(e, rec)
	case *FieldExpr:
		val, ok := rec.GetField(e.Name)
		if !ok {
			return nil
		}
		return val
	case *LiteralExpr:
		return e.Value
	}
	return nil
}

// evaluateBinaryExpr applies && and || with short-circuiting: the right
// side is only evaluated when the left side does not already determine the
// result.
func (f *Filter) evaluateBinaryExpr(expr *BinaryExpr, rec *Record) Value {
	left := f.evaluate(expr.Left, rec)
	leftTruthy := left != nil && left.IsTruthy()

	switch expr.Operator {
	case TokenAnd:
		if !leftTruthy {
			return BoolValue(false)
		}
	case TokenOr:
		if leftTruthy {
			return BoolValue(true)
		}
	default:
		return BoolValue(false)
	}

	right := f.evaluate(expr.Right, rec)
	return BoolValue(right != nil && right.IsTruthy())
}

func (f *Filter) evaluateUnaryExpr(expr *UnaryExpr, rec *Record) Value {
	if expr.Operator != TokenNot {
		return BoolValue(false)
	}

	operand := f.evaluate(expr.Operand, rec)
	if operand == nil {
		return BoolValue(true)
	}
	return BoolValue(!operand.IsTruthy())
}

func (f *Filter) evaluateComparisonExpr(expr *ComparisonExpr, rec *Record) Value {
	left := f.evaluate(expr.Left, rec)
	right := f.evaluate(expr.Right, rec)

	// Unknown values never satisfy a comparison, not even !=.
	if left == nil || right == nil {
		return BoolValue(false)
	}

	switch expr.Operator {
	case TokenEq:
		return BoolValue(left.Equal(right))
	case TokenNe:
		return BoolValue(!left.Equal(right))
	case TokenLt:
		return f.evaluateOrdering(left, right, func(a, b float64) bool { return a < b })
	case TokenGt:
		return f.evaluateOrdering(left, right, func(a, b float64) bool { return a > b })
	case TokenLe:
		return f.evaluateOrdering(left, right, func(a, b float64) bool { return a <= b })
	case TokenGe:
		return f.evaluateOrdering(left, right, func(a, b float64) bool { return a >= b })
	}

	return BoolValue(false)
}

// evaluateOrdering applies <, >, <=, >=. Ordering is numeric-only at
// runtime regardless of what the type checker admitted; anything else does
// not match.
func (f *Filter) evaluateOrdering(left, right Value, cmp func(float64, float64) bool) Value {
	if left.Type() != TypeNumber || right.Type() != TypeNumber {
		return BoolValue(false)
	}
	return BoolValue(cmp(float64(left.(NumberValue)), float64(right.(NumberValue))))
}
