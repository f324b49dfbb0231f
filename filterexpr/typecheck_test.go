package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingSchema() *Schema {
	return NewSchema().
		AddField("price", TypeNumber).
		AddField("bedrooms", TypeNumber).
		AddField("bathrooms", TypeNumber).
		AddField("bodyCorpFees", TypeNumber).
		AddField("carParkIncluded", TypeBool).
		AddField("petsAllowed", TypeBool).
		AddField("suburb", TypeString)
}

func TestTypeCheckValid(t *testing.T) {
	schema := listingSchema()

	exprs := []string{
		`price < 350000`,
		`suburb == 'cbd'`,
		`suburb != "docklands"`,
		`carParkIncluded == true`,
		`petsAllowed != false`,
		`price < 350000 && bedrooms >= 2`,
		`!(carParkIncluded == true)`,
		`!petsAllowed`,
		`(price < 10) == true`,
		// && and || operands need not be comparisons; bare fields reduce
		// to truthiness at evaluation time.
		`price && bedrooms`,
		`suburb || carParkIncluded`,
		// ordering on strings passes the type check; the evaluator refuses
		// it at runtime.
		`suburb > 'aaa'`,
	}

	for _, input := range exprs {
		t.Run(input, func(t *testing.T) {
			expr := mustParse(t, input)
			assert.NoError(t, schema.Validate(expr))
		})
	}
}

func TestTypeCheckInvalid(t *testing.T) {
	schema := listingSchema()

	tests := []struct {
		input    string
		contains []string
	}{
		{`price == true`, []string{"type mismatch", "number", "boolean"}},
		{`suburb == 3`, []string{"type mismatch", "string", "number"}},
		{`carParkIncluded < true`, []string{"ordering operator", "boolean"}},
		{`petsAllowed >= false`, []string{"ordering operator"}},
		{`wibble == 1`, []string{"unknown field", "wibble"}},
		{`price == wibble`, []string{"unknown field", "wibble"}},
		{`!price`, []string{"boolean operand", "number"}},
		{`!suburb`, []string{"boolean operand", "string"}},
		{`!(price && bedrooms) || !price`, []string{"boolean operand"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := mustParse(t, tt.input)

			err := schema.Validate(expr)
			require.Error(t, err)

			var terr *TypeError
			require.ErrorAs(t, err, &terr)
			for _, substr := range tt.contains {
				assert.Contains(t, err.Error(), substr)
			}
		})
	}
}

func TestTypeCheckReportsLeftErrorFirst(t *testing.T) {
	schema := listingSchema()

	err := schema.Validate(mustParse(t, `wibble == wobble`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wibble")
	assert.NotContains(t, err.Error(), "wobble")
}

func TestTypeCheckExprTypes(t *testing.T) {
	schema := listingSchema()

	tests := []struct {
		input    string
		expected Type
	}{
		{`price`, TypeNumber},
		{`suburb`, TypeString},
		{`carParkIncluded`, TypeBool},
		{`42`, TypeNumber},
		{`'cbd'`, TypeString},
		{`true`, TypeBool},
		{`price < 350000`, TypeBool},
		{`price && bedrooms`, TypeBool},
		{`!(petsAllowed == true)`, TypeBool},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, err := typeCheckExpr(mustParse(t, tt.input), schema)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, typ)
		})
	}
}
