package generator

import (
	"math/rand"
	"strings"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// weightedPick returns the index of one entry chosen with probability
// proportional to weights[i]/sum(weights). Callers must ensure the total is
// positive.
func weightedPick(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	r := rng.Intn(total)
	acc := 0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

func sumWeights(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	return total
}

func defaultPermutationCountRange() value.Bound[int32] {
	lo, hi := int32(1), int32(15)
	return value.Bound[int32]{Start: &lo, End: &hi, IncludeEnd: true}
}

// DuplicatePermutationGenerator joins exactly n parts with a separator,
// where n is itself sampled from a count range, and each part is either the
// generated value of a weighted child, or a uniformly-picked literal from a
// selection set. Empty parts are always joined, never skipped.
type DuplicatePermutationGenerator struct {
	nullable    value.Nullable
	count       value.Bound[int32]
	separator   string
	children    []Generator
	weights     []int
	selectable  []value.Value
	useChildren bool
}

func buildDuplicatePermutation(spec Spec, deps Deps) (Generator, error) {
	if spec.Type != KindDuplicatePermutation {
		return nil, invalidType(spec.Type, KindDuplicatePermutation)
	}
	if spec.Separator == nil {
		return nil, notExistValueOf("separator")
	}
	count, err := parseRangeSpec(spec.Range, parseInt32Literal)
	if err != nil {
		return nil, err
	}
	count = count.MergeWithDefault(defaultPermutationCountRange())
	if count.Start != nil && *count.Start < 0 {
		return nil, invalidValue("duplicate-permutation count range cannot start below zero")
	}
	if count.IsEmpty() {
		return nil, rangeEmpty(count)
	}

	g := &DuplicatePermutationGenerator{
		nullable:  nullableOf(spec.Nullable),
		count:     count,
		separator: *spec.Separator,
	}

	if len(spec.Children) > 0 {
		built, err := buildChildren(spec.Children, deps)
		if err != nil {
			return nil, err
		}
		weights := make([]int, len(spec.Children))
		for i, c := range spec.Children {
			weights[i] = weightOf(c.Weight)
		}
		if sumWeights(weights) == 0 {
			return nil, ErrAllWeightsZero
		}
		g.children = built
		g.weights = weights
		g.useChildren = true
		return g, nil
	}

	values, err := deps.Loader.Resolve(selectSourceOf(spec), value.KindString, deps.BaseDir)
	if err != nil {
		return nil, err
	}
	g.selectable = values
	return g, nil
}

func (g *DuplicatePermutationGenerator) Kind() Kind       { return KindDuplicatePermutation }
func (g *DuplicatePermutationGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *DuplicatePermutationGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		n, err := value.SampleInt32(rng, g.count)
		if err != nil {
			return value.Value{}, err
		}
		parts := make([]string, 0, n)
		for i := int32(0); i < n; i++ {
			part, err := g.part(rng, ctx)
			if err != nil {
				return value.Value{}, err
			}
			parts = append(parts, part)
		}
		return value.String(strings.Join(parts, g.separator)), nil
	})
}

func (g *DuplicatePermutationGenerator) part(rng *rand.Rand, ctx eval.Context) (string, error) {
	if g.useChildren {
		idx := weightedPick(rng, g.weights)
		v, err := g.children[idx].Generate(rng, ctx)
		if err != nil {
			return "", err
		}
		return v.PermutationString(), nil
	}
	v := g.selectable[rng.Intn(len(g.selectable))]
	return v.PermutationString(), nil
}

// RandomChildGenerator picks one child per call with probability
// proportional to its weight (default 1) and delegates generation to it.
type RandomChildGenerator struct {
	nullable value.Nullable
	children []Generator
	weights  []int
}

func buildRandomChild(spec Spec, deps Deps) (Generator, error) {
	if spec.Type != KindRandomChild {
		return nil, invalidType(spec.Type, KindRandomChild)
	}
	if len(spec.Children) == 0 {
		return nil, ErrEmptyChildren
	}
	built, err := buildChildren(spec.Children, deps)
	if err != nil {
		return nil, err
	}
	weights := make([]int, len(spec.Children))
	for i, c := range spec.Children {
		weights[i] = weightOf(c.Weight)
	}
	if sumWeights(weights) == 0 {
		return nil, ErrAllWeightsZero
	}
	return &RandomChildGenerator{nullable: nullableOf(spec.Nullable), children: built, weights: weights}, nil
}

func (g *RandomChildGenerator) Kind() Kind       { return KindRandomChild }
func (g *RandomChildGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *RandomChildGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		idx := weightedPick(rng, g.weights)
		return g.children[idx].Generate(rng, ctx)
	})
}

// caseWhenChild pairs a built generator with its optional guarding
// expression; a nil case is the default arm.
type caseWhenChild struct {
	condition *string
	generator Generator
}

// CaseWhenGenerator evaluates each conditional child's case in declaration
// order and delegates to the first whose condition is true, falling back to
// the single required default (the one child without a case) otherwise.
type CaseWhenGenerator struct {
	nullable value.Nullable
	cases    []caseWhenChild
	fallback Generator
}

func buildCaseWhen(spec Spec, deps Deps) (Generator, error) {
	if spec.Type != KindCaseWhen {
		return nil, invalidType(spec.Type, KindCaseWhen)
	}
	if len(spec.Children) == 0 {
		return nil, ErrEmptyChildren
	}

	var cases []caseWhenChild
	var fallback Generator
	for _, c := range spec.Children {
		built, err := Build(c.Inner, deps)
		if err != nil {
			return nil, err
		}
		if c.Case == nil {
			if fallback != nil {
				return nil, invalidValue("case-when has more than one default child")
			}
			fallback = built
			continue
		}
		if fallback != nil {
			return nil, invalidValue("case-when default child must be the last child")
		}
		cases = append(cases, caseWhenChild{condition: c.Case, generator: built})
	}
	if fallback == nil {
		return nil, ErrNotExistDefaultCase
	}

	return &CaseWhenGenerator{nullable: nullableOf(spec.Nullable), cases: cases, fallback: fallback}, nil
}

func (g *CaseWhenGenerator) Kind() Kind       { return KindCaseWhen }
func (g *CaseWhenGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *CaseWhenGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		for _, c := range g.cases {
			matched, err := eval.EvalBool(*c.condition, ctx)
			if err != nil {
				return value.Value{}, failGenerate(err.Error())
			}
			if matched {
				return c.generator.Generate(rng, ctx)
			}
		}
		return g.fallback.Generate(rng, ctx)
	})
}
