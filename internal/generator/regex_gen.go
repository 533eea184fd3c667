package generator

import (
	"math/rand"

	"github.com/lucasjones/reggen"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

const defaultRegexMaxLength = 10

// RegexGenerator emits strings matching script, a regular expression.
// maxLength (range end, default 10) caps how many times an unbounded
// quantifier (*, +, {n,}) repeats; it does not cap the total string length,
// and range start is not read. reggen draws from its own time-seeded RNG,
// so output is not reproducible from the schema RNG seed.
type RegexGenerator struct {
	nullable  value.Nullable
	pattern   string
	maxLength int
}

func buildRegex(spec Spec) (Generator, error) {
	if spec.Type != KindRegex {
		return nil, invalidType(spec.Type, KindRegex)
	}
	if spec.Script == nil {
		return nil, notExistValueOf("script")
	}
	maxLength := defaultRegexMaxLength
	if spec.Range != nil && spec.Range.End != nil {
		n, err := parseInt32Literal(*spec.Range.End)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, invalidValue("regex range end must be positive")
		}
		maxLength = int(n)
	}
	if _, err := reggen.Generate(*spec.Script, maxLength); err != nil {
		return nil, invalidValue("invalid regex pattern: " + err.Error())
	}
	return &RegexGenerator{nullable: nullableOf(spec.Nullable), pattern: *spec.Script, maxLength: maxLength}, nil
}

func (g *RegexGenerator) Kind() Kind       { return KindRegex }
func (g *RegexGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *RegexGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		s, err := reggen.Generate(g.pattern, g.maxLength)
		if err != nil {
			return value.Value{}, failGenerate(err.Error())
		}
		return value.String(s), nil
	})
}
