// Package generator implements the full generator taxonomy: the catalogue
// of variants, their build-time validation from a Spec, and their per-row
// generation semantics, including the shared 10% nullable gate.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/listsource"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// Generator is the contract every built variant satisfies. State machine:
// Unbuilt (a Spec) -> Built (a Generator) -> generating (repeated Generate
// calls). Only IncrementId carries per-call mutable state.
type Generator interface {
	Kind() Kind
	IsNullable() bool
	Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error)
}

// gate wraps fn with the shared 10%-nullable Bernoulli trial, keeping
// generate_without_null implementations total and independently testable.
func gate(nullable value.Nullable, rng *rand.Rand, fn func() (value.Value, error)) (value.Value, error) {
	if nullable.RollNull(rng) {
		return value.Null(), nil
	}
	return fn()
}

// Deps are the build-time collaborators a generator may need beyond its own
// Spec: the list-resource loader (for selection sets) and the schema's base
// directory (for filepath resolution).
type Deps struct {
	Loader  *listsource.Loader
	BaseDir string
}

// Build dispatches on spec.Type, constructing and validating the matching
// variant. The declared type is always checked against the constructed
// variant; a caller passing a mismatched Spec gets ErrInvalidType.
func Build(spec Spec, deps Deps) (Generator, error) {
	switch spec.Type {
	case KindInt:
		return buildInt(spec)
	case KindReal:
		return buildReal(spec)
	case KindBool:
		return buildBool(spec)
	case KindDateTime:
		return buildDateTime(spec)
	case KindDate:
		return buildDate(spec)
	case KindTime:
		return buildTime(spec)
	case KindAlwaysNull:
		return buildAlwaysNull(spec)
	case KindIncrementID:
		return buildIncrementID(spec)
	case KindEvalInt:
		return buildEvalInt(spec)
	case KindEvalReal:
		return buildEvalReal(spec)
	case KindEvalBool:
		return buildEvalBool(spec)
	case KindFormat:
		return buildFormat(spec)
	case KindDuplicatePermutation:
		return buildDuplicatePermutation(spec, deps)
	case KindCaseWhen:
		return buildCaseWhen(spec, deps)
	case KindRandomChild:
		return buildRandomChild(spec, deps)
	case KindSelectInt:
		return buildSelect(spec, deps, value.KindInt, KindSelectInt)
	case KindSelectReal:
		return buildSelect(spec, deps, value.KindReal, KindSelectReal)
	case KindSelectString:
		return buildSelect(spec, deps, value.KindString, KindSelectString)
	case KindGetIntValueAt:
		return buildGetValueAt(spec, deps, value.KindInt, KindGetIntValueAt)
	case KindGetRealValueAt:
		return buildGetValueAt(spec, deps, value.KindReal, KindGetRealValueAt)
	case KindGetStringValueAt:
		return buildGetValueAt(spec, deps, value.KindString, KindGetStringValueAt)
	case KindGetValueIndex:
		return buildGetValueIndex(spec, deps)
	case KindDistNormal:
		return buildDistNormal(spec)
	case KindFake:
		return buildFake(spec)
	case KindRegex:
		return buildRegex(spec)
	default:
		return nil, fmt.Errorf("%w: unknown generator kind %q", ErrInvalidType, spec.Type)
	}
}

// buildChildren builds every ChildSpec's inner generator in order.
func buildChildren(children []ChildSpec, deps Deps) ([]Generator, error) {
	built := make([]Generator, 0, len(children))
	for _, c := range children {
		g, err := Build(c.Inner, deps)
		if err != nil {
			return nil, err
		}
		built = append(built, g)
	}
	return built, nil
}

func weightOf(w *uint8) int {
	if w == nil {
		return 1
	}
	return int(*w)
}
