package generator

import (
	"math/rand"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// EvalIntGenerator evaluates script as an arithmetic expression, coercing
// the result to Int. The record's already-generated fields are available
// through {key} substitution before evaluation.
type EvalIntGenerator struct {
	nullable value.Nullable
	script   string
}

func buildEvalInt(spec Spec) (Generator, error) {
	if spec.Type != KindEvalInt {
		return nil, invalidType(spec.Type, KindEvalInt)
	}
	if spec.Script == nil {
		return nil, notExistValueOf("script")
	}
	return &EvalIntGenerator{nullable: nullableOf(spec.Nullable), script: *spec.Script}, nil
}

func (g *EvalIntGenerator) Kind() Kind       { return KindEvalInt }
func (g *EvalIntGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *EvalIntGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		v, err := eval.EvalInt(g.script, ctx)
		if err != nil {
			return value.Value{}, failGenerate(err.Error())
		}
		return value.Int(v), nil
	})
}

// EvalRealGenerator is EvalIntGenerator's float32 counterpart.
type EvalRealGenerator struct {
	nullable value.Nullable
	script   string
}

func buildEvalReal(spec Spec) (Generator, error) {
	if spec.Type != KindEvalReal {
		return nil, invalidType(spec.Type, KindEvalReal)
	}
	if spec.Script == nil {
		return nil, notExistValueOf("script")
	}
	return &EvalRealGenerator{nullable: nullableOf(spec.Nullable), script: *spec.Script}, nil
}

func (g *EvalRealGenerator) Kind() Kind       { return KindEvalReal }
func (g *EvalRealGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *EvalRealGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		v, err := eval.EvalReal(g.script, ctx)
		if err != nil {
			return value.Value{}, failGenerate(err.Error())
		}
		return value.Real(v), nil
	})
}

// EvalBoolGenerator is EvalIntGenerator's bool counterpart.
type EvalBoolGenerator struct {
	nullable value.Nullable
	script   string
}

func buildEvalBool(spec Spec) (Generator, error) {
	if spec.Type != KindEvalBool {
		return nil, invalidType(spec.Type, KindEvalBool)
	}
	if spec.Script == nil {
		return nil, notExistValueOf("script")
	}
	return &EvalBoolGenerator{nullable: nullableOf(spec.Nullable), script: *spec.Script}, nil
}

func (g *EvalBoolGenerator) Kind() Kind       { return KindEvalBool }
func (g *EvalBoolGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *EvalBoolGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		v, err := eval.EvalBool(g.script, ctx)
		if err != nil {
			return value.Value{}, failGenerate(err.Error())
		}
		return value.Bool(v), nil
	})
}

// FormatGenerator performs {key} template substitution only; the
// substituted text is the String result directly, with no arithmetic
// evaluation stage.
type FormatGenerator struct {
	nullable value.Nullable
	format   string
}

func buildFormat(spec Spec) (Generator, error) {
	if spec.Type != KindFormat {
		return nil, invalidType(spec.Type, KindFormat)
	}
	if spec.Format == nil {
		return nil, notExistValueOf("format")
	}
	return &FormatGenerator{nullable: nullableOf(spec.Nullable), format: *spec.Format}, nil
}

func (g *FormatGenerator) Kind() Kind       { return KindFormat }
func (g *FormatGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *FormatGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		return value.String(eval.FormatScript(g.format, ctx)), nil
	})
}
