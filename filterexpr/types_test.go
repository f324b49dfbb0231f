package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "number", TypeNumber.String())
	assert.Equal(t, "boolean", TypeBool.String())
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "UNKNOWN", Type(99).String())
}

func TestValueEqual(t *testing.T) {
	t.Run("same type", func(t *testing.T) {
		assert.True(t, NumberValue(350000).Equal(NumberValue(350000)))
		assert.False(t, NumberValue(350000).Equal(NumberValue(350001)))

		assert.True(t, StringValue("cbd").Equal(StringValue("cbd")))
		assert.False(t, StringValue("cbd").Equal(StringValue("docklands")))

		assert.True(t, BoolValue(true).Equal(BoolValue(true)))
		assert.False(t, BoolValue(true).Equal(BoolValue(false)))
	})

	t.Run("cross type is never equal", func(t *testing.T) {
		assert.False(t, NumberValue(1).Equal(BoolValue(true)))
		assert.False(t, BoolValue(true).Equal(NumberValue(1)))
		assert.False(t, StringValue("1").Equal(NumberValue(1)))
		assert.False(t, StringValue("true").Equal(BoolValue(true)))
	})
}

func TestValueIsTruthy(t *testing.T) {
	assert.True(t, NumberValue(300000).IsTruthy())
	assert.True(t, NumberValue(-1).IsTruthy())
	assert.False(t, NumberValue(0).IsTruthy())

	assert.True(t, StringValue("cbd").IsTruthy())
	assert.False(t, StringValue("").IsTruthy())

	assert.True(t, BoolValue(true).IsTruthy())
	assert.False(t, BoolValue(false).IsTruthy())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "350000", NumberValue(350000).String())
	assert.Equal(t, "3.5", NumberValue(3.5).String())
	assert.Equal(t, "-0.5", NumberValue(-0.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "false", BoolValue(false).String())
	assert.Equal(t, "cbd", StringValue("cbd").String())
}

func TestValueType(t *testing.T) {
	assert.Equal(t, TypeNumber, NumberValue(0).Type())
	assert.Equal(t, TypeBool, BoolValue(false).Type())
	assert.Equal(t, TypeString, StringValue("").Type())
}
