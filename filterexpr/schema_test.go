package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	t.Run("empty schema", func(t *testing.T) {
		schema := NewSchema()

		_, ok := schema.GetField("price")
		assert.False(t, ok)
		assert.Empty(t, schema.Fields())
	})

	t.Run("initialized from field maps", func(t *testing.T) {
		schema := NewSchema(
			map[string]Type{"price": TypeNumber},
			map[string]Type{"suburb": TypeString},
		)

		field, ok := schema.GetField("price")
		require.True(t, ok)
		assert.Equal(t, TypeNumber, field.Type)

		field, ok = schema.GetField("suburb")
		require.True(t, ok)
		assert.Equal(t, TypeString, field.Type)
	})

	t.Run("add field chaining", func(t *testing.T) {
		schema := NewSchema().
			AddField("price", TypeNumber).
			AddField("carParkIncluded", TypeBool)

		field, ok := schema.GetField("carParkIncluded")
		require.True(t, ok)
		assert.Equal(t, "carParkIncluded", field.Name)
		assert.Equal(t, TypeBool, field.Type)
	})

	t.Run("fields are sorted by name", func(t *testing.T) {
		schema := NewSchema().
			AddField("suburb", TypeString).
			AddField("bedrooms", TypeNumber).
			AddField("price", TypeNumber)

		expected := []Field{
			{Name: "bedrooms", Type: TypeNumber},
			{Name: "price", Type: TypeNumber},
			{Name: "suburb", Type: TypeString},
		}
		assert.Equal(t, expected, schema.Fields())
	})

	t.Run("redefining a field keeps the last type", func(t *testing.T) {
		schema := NewSchema().
			AddField("price", TypeString).
			AddField("price", TypeNumber)

		field, ok := schema.GetField("price")
		require.True(t, ok)
		assert.Equal(t, TypeNumber, field.Type)
		assert.Len(t, schema.Fields(), 1)
	})
}
