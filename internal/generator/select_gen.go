package generator

import (
	"math"
	"math/rand"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/listsource"
	"github.com/leslieo2/sbrdgen/internal/value"
)

func selectSourceOf(spec Spec) listsource.Spec {
	return listsource.Spec{Chars: spec.Chars, Values: spec.Values, FilePath: spec.FilePath}
}

// SelectGenerator picks uniformly among a resolved selection set on every
// call; the set itself is resolved once, at build time.
type SelectGenerator struct {
	nullable value.Nullable
	kind     Kind
	values   []value.Value
}

func buildSelect(spec Spec, deps Deps, target value.Kind, kind Kind) (Generator, error) {
	if spec.Type != kind {
		return nil, invalidType(spec.Type, kind)
	}
	values, err := deps.Loader.Resolve(selectSourceOf(spec), target, deps.BaseDir)
	if err != nil {
		return nil, err
	}
	return &SelectGenerator{nullable: nullableOf(spec.Nullable), kind: kind, values: values}, nil
}

func (g *SelectGenerator) Kind() Kind       { return g.kind }
func (g *SelectGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *SelectGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		return g.values[rng.Intn(len(g.values))], nil
	})
}

// GetValueAtGenerator evaluates script to an index into a resolved
// selection set and returns that element, failing at generate time if the
// index falls outside the set.
type GetValueAtGenerator struct {
	nullable value.Nullable
	kind     Kind
	values   []value.Value
	script   string
}

func buildGetValueAt(spec Spec, deps Deps, target value.Kind, kind Kind) (Generator, error) {
	if spec.Type != kind {
		return nil, invalidType(spec.Type, kind)
	}
	if spec.Script == nil {
		return nil, notExistValueOf("script")
	}
	values, err := deps.Loader.Resolve(selectSourceOf(spec), target, deps.BaseDir)
	if err != nil {
		return nil, err
	}
	return &GetValueAtGenerator{nullable: nullableOf(spec.Nullable), kind: kind, values: values, script: *spec.Script}, nil
}

func (g *GetValueAtGenerator) Kind() Kind       { return g.kind }
func (g *GetValueAtGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *GetValueAtGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		idx, err := eval.EvalInt(g.script, ctx)
		if err != nil {
			return value.Value{}, failGenerate(err.Error())
		}
		if idx < 0 || int(idx) >= len(g.values) {
			return value.Value{}, failGenerate(
				"index out of range for selection set")
		}
		return g.values[idx], nil
	})
}

// GetValueIndexGenerator samples a uniform index into a resolved selection
// set, without ever reading the set's actual values.
type GetValueIndexGenerator struct {
	nullable value.Nullable
	count    int32
}

func buildGetValueIndex(spec Spec, deps Deps) (Generator, error) {
	if spec.Type != KindGetValueIndex {
		return nil, invalidType(spec.Type, KindGetValueIndex)
	}
	values, err := deps.Loader.Resolve(selectSourceOf(spec), value.KindString, deps.BaseDir)
	if err != nil {
		return nil, err
	}
	if len(values) > math.MaxInt32 {
		return nil, invalidValue("selection set is larger than a 32-bit index can address")
	}
	return &GetValueIndexGenerator{nullable: nullableOf(spec.Nullable), count: int32(len(values))}, nil
}

func (g *GetValueIndexGenerator) Kind() Kind       { return KindGetValueIndex }
func (g *GetValueIndexGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *GetValueIndexGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		return value.Int(rng.Int31n(g.count)), nil
	})
}
