package filterexpr

import "fmt"

// typeCheckExpr computes the static type of an expression against a schema.
// Errors from the left operand win over errors from the right.
func typeCheckExpr(expr Expression, schema *Schema) (Type, error) {
	switch e := expr.(type) {
	case *BinaryExpr:
		// && and || place no constraint on operand types beyond their own
		// validity; non-boolean operands reduce to truthiness at evaluation
		// time.
		if _, err := typeCheckExpr(e.Left, schema); err != nil {
			return TypeBool, err
		}
		if _, err := typeCheckExpr(e.Right, schema); err != nil {
			return TypeBool, err
		}
		return TypeBool, nil

	case *UnaryExpr:
		typ, err := typeCheckExpr(e.Operand, schema)
		if err != nil {
			return typ, err
		}
		if typ != TypeBool {
			return typ, &TypeError{Msg: fmt.Sprintf("operator ! expects a boolean operand, got %s", typ)}
		}
		return TypeBool, nil

	case *ComparisonExpr:
		leftTyp, err := typeCheckExpr(e.Left, schema)
		if err != nil {
			return leftTyp, err
		}
		rightTyp, err := typeCheckExpr(e.Right, schema)
		if err != nil {
			return rightTyp, err
		}
		if leftTyp != rightTyp {
			return TypeBool, &TypeError{Msg: fmt.Sprintf("type mismatch: cannot compare %s with %s", leftTyp, rightTyp)}
		}
		if leftTyp == TypeBool && !isEqualityOp(e.Operator) {
			return TypeBool, &TypeError{Msg: fmt.Sprintf("ordering operator %q not supported for boolean operands", e.Operator)}
		}
		return TypeBool, nil

	case *FieldExpr:
		field, ok := schema.GetField(e.Name)
		if !ok {
			return TypeBool, &TypeError{Msg: fmt.Sprintf("unknown field: %q", e.Name)}
		}
		return field.Type, nil

	case *LiteralExpr:
		return e.Value.Type(), nil
	}

	return TypeBool, &TypeError{Msg: fmt.Sprintf("unrecognized expression %T", expr)}
}

func isEqualityOp(op TokenType) bool {
	return op == TokenEq || op == TokenNe
}
