package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProjections(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		v := Int(7)
		assert.Equal(t, "7", v.ParseString())
		assert.Equal(t, "7", v.FormatString())
		assert.Equal(t, "7", v.PermutationString())
	})

	t.Run("Bool", func(t *testing.T) {
		v := Bool(true)
		assert.Equal(t, "true", v.ParseString())
	})

	t.Run("String is unquoted", func(t *testing.T) {
		v := String("hello")
		assert.Equal(t, "hello", v.FormatString())
		assert.Equal(t, "hello", v.PermutationString())
	})

	t.Run("Null", func(t *testing.T) {
		v := Null()
		assert.Equal(t, "null", v.ParseString())
		assert.Equal(t, "null", v.FormatString())
	})
}

func TestParseValue(t *testing.T) {
	t.Run("int round trips", func(t *testing.T) {
		v, err := ParseValue("7", KindInt)
		require.NoError(t, err)
		i, ok := v.AsInt()
		assert.True(t, ok)
		assert.EqualValues(t, 7, i)
	})

	t.Run("int overflow is an error", func(t *testing.T) {
		_, err := ParseValue("99999999999", KindInt)
		assert.Error(t, err)
	})

	t.Run("real", func(t *testing.T) {
		v, err := ParseValue("1.5", KindReal)
		require.NoError(t, err)
		r, ok := v.AsReal()
		assert.True(t, ok)
		assert.EqualValues(t, 1.5, r)
	})

	t.Run("bool", func(t *testing.T) {
		v, err := ParseValue("true", KindBool)
		require.NoError(t, err)
		b, ok := v.AsBool()
		assert.True(t, ok)
		assert.True(t, b)
	})
}

func TestJSONRoundTrip(t *testing.T) {
	cases := []Value{Int(42), Real(3.5), Bool(false), String("x"), Null()}

	for _, v := range cases {
		v := v
		t.Run(v.Kind().String(), func(t *testing.T) {
			data, err := json.Marshal(v)
			require.NoError(t, err)

			var out Value
			require.NoError(t, json.Unmarshal(data, &out))
			assert.Equal(t, v.Kind(), out.Kind())
			assert.Equal(t, v.ParseString(), out.ParseString())
		})
	}

	t.Run("integral literal too big for int32 fails", func(t *testing.T) {
		var out Value
		err := json.Unmarshal([]byte("99999999999"), &out)
		assert.Error(t, err)
	})

	t.Run("fractional literal becomes Real", func(t *testing.T) {
		var out Value
		require.NoError(t, json.Unmarshal([]byte("1.25"), &out))
		assert.Equal(t, KindReal, out.Kind())
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	var out Value
	require.NoError(t, yaml.Unmarshal([]byte("7"), &out))
	assert.Equal(t, KindInt, out.Kind())

	data, err := yaml.Marshal(String("abc"))
	require.NoError(t, err)

	var reparsed Value
	require.NoError(t, yaml.Unmarshal(data, &reparsed))
	assert.Equal(t, "abc", reparsed.ParseString())
}
