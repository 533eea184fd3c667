package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leslieo2/sbrdgen/internal/value"
)

func TestFormatScript(t *testing.T) {
	ctx := Context{"x": value.Int(7), "name": value.String("ada")}

	t.Run("substitutes a known key", func(t *testing.T) {
		assert.Equal(t, "v=7", FormatScript("v={x}", ctx))
	})

	t.Run("leaves unknown placeholders literal", func(t *testing.T) {
		assert.Equal(t, "v={missing}", FormatScript("v={missing}", ctx))
	})

	t.Run("substitution is not re-scanned", func(t *testing.T) {
		ctx2 := Context{"a": value.String("{b}"), "b": value.Int(1)}
		assert.Equal(t, "{b}", FormatScript("{a}", ctx2))
	})

	t.Run("multiple placeholders left to right", func(t *testing.T) {
		assert.Equal(t, "v=7;w=ada", FormatScript("v={x};w={name}", ctx))
	})
}

func TestEvalInt(t *testing.T) {
	ctx := Context{"a": value.Int(5)}

	t.Run("arithmetic over a substituted value", func(t *testing.T) {
		v, err := EvalInt("{a}*2", ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 10, v)
	})

	t.Run("non-integer result fails", func(t *testing.T) {
		_, err := EvalInt("1/2.0", ctx)
		assert.Error(t, err)
	})

	t.Run("builtin max", func(t *testing.T) {
		v, err := EvalInt("max(1, 2, 3)", ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, v)
	})
}

func TestEvalReal(t *testing.T) {
	v, err := EvalReal("1.5 + 2.5", Context{})
	require.NoError(t, err)
	assert.EqualValues(t, 4.0, v)
}

func TestEvalBool(t *testing.T) {
	ctx := Context{"n": value.Int(-1)}

	t.Run("comparison", func(t *testing.T) {
		v, err := EvalBool("{n}<0", ctx)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("logical operators", func(t *testing.T) {
		v, err := EvalBool("{n}<0 && 1==1", ctx)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("is_empty builtin", func(t *testing.T) {
		v, err := EvalBool(`is_empty("")`, ctx)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("non-boolean result fails", func(t *testing.T) {
		_, err := EvalBool("1+1", ctx)
		assert.Error(t, err)
	})
}

func TestEvalValue(t *testing.T) {
	t.Run("string literal", func(t *testing.T) {
		v, err := EvalValue(`"hello"`, Context{})
		require.NoError(t, err)
		s, ok := v.AsString()
		assert.True(t, ok)
		assert.Equal(t, "hello", s)
	})

	t.Run("integer expression", func(t *testing.T) {
		v, err := EvalValue("1+2", Context{})
		require.NoError(t, err)
		i, ok := v.AsInt()
		assert.True(t, ok)
		assert.EqualValues(t, 3, i)
	})
}

func TestFailEvalErrorEmbedsScriptTexts(t *testing.T) {
	ctx := Context{"a": value.Int(1)}
	_, err := EvalInt("{a} +", ctx)
	require.Error(t, err)
	var fe *FailEvalError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "{a} +", fe.Script)
	assert.Equal(t, "1 +", fe.Substituted)
}
