package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

func strPtr(s string) *string { return &s }

func TestEvalIntGenerator(t *testing.T) {
	t.Run("arithmetic over prior fields", func(t *testing.T) {
		spec := Spec{Type: KindEvalInt, Script: strPtr("{a} + {b}")}
		g := mustBuild(t, spec, Deps{})
		ctx := eval.Context{"a": value.Int(2), "b": value.Int(3)}
		v, err := g.Generate(rand.New(rand.NewSource(20)), ctx)
		require.NoError(t, err)
		n, _ := v.AsInt()
		assert.Equal(t, int32(5), n)
	})

	t.Run("missing script fails at build time", func(t *testing.T) {
		_, err := buildEvalInt(Spec{Type: KindEvalInt})
		assert.ErrorIs(t, err, ErrNotExistValueOf)
	})

	t.Run("non-integer result fails at generate time", func(t *testing.T) {
		spec := Spec{Type: KindEvalInt, Script: strPtr("1.5")}
		g := mustBuild(t, spec, Deps{})
		_, err := g.Generate(rand.New(rand.NewSource(21)), nil)
		assert.ErrorIs(t, err, ErrFailGenerate)
	})
}

func TestEvalBoolGenerator(t *testing.T) {
	t.Run("evaluates a boolean expression", func(t *testing.T) {
		spec := Spec{Type: KindEvalBool, Script: strPtr("{n} > 10")}
		g := mustBuild(t, spec, Deps{})
		ctx := eval.Context{"n": value.Int(20)}
		v, err := g.Generate(rand.New(rand.NewSource(22)), ctx)
		require.NoError(t, err)
		b, _ := v.AsBool()
		assert.True(t, b)
	})
}

func TestFormatGenerator(t *testing.T) {
	t.Run("substitutes placeholders without evaluating", func(t *testing.T) {
		spec := Spec{Type: KindFormat, Format: strPtr("{first} {last}")}
		g := mustBuild(t, spec, Deps{})
		ctx := eval.Context{"first": value.String("Ada"), "last": value.String("Lovelace")}
		v, err := g.Generate(rand.New(rand.NewSource(23)), ctx)
		require.NoError(t, err)
		s, _ := v.AsString()
		assert.Equal(t, "Ada Lovelace", s)
	})

	t.Run("missing format fails at build time", func(t *testing.T) {
		_, err := buildFormat(Spec{Type: KindFormat})
		assert.ErrorIs(t, err, ErrNotExistValueOf)
	})
}
