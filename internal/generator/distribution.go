package generator

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// DistNormalGenerator draws from a Gaussian distribution, truncated to the
// nearest representable Real. mean defaults to 0.0, std_dev to 1.0.
type DistNormalGenerator struct {
	nullable value.Nullable
	mean     float64
	stdDev   float64
}

func paramFloat(params map[string]value.Value, key string, fallback float64) (float64, error) {
	v, ok := params[key]
	if !ok {
		return fallback, nil
	}
	r, err := parseFloat32Literal(v)
	if err != nil {
		return 0, err
	}
	return float64(r), nil
}

func buildDistNormal(spec Spec) (Generator, error) {
	if spec.Type != KindDistNormal {
		return nil, invalidType(spec.Type, KindDistNormal)
	}
	mean, err := paramFloat(spec.Parameters, "mean", 0.0)
	if err != nil {
		return nil, err
	}
	stdDev, err := paramFloat(spec.Parameters, "std_dev", 1.0)
	if err != nil {
		return nil, err
	}
	if stdDev < 0 {
		return nil, invalidValue("dist-normal std_dev must be non-negative")
	}
	return &DistNormalGenerator{nullable: nullableOf(spec.Nullable), mean: mean, stdDev: stdDev}, nil
}

func (g *DistNormalGenerator) Kind() Kind       { return KindDistNormal }
func (g *DistNormalGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *DistNormalGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		dist := distuv.Normal{Mu: g.mean, Sigma: g.stdDev, Src: rng}
		if dist.Sigma == 0 {
			return value.Real(float32(g.mean)), nil
		}
		return value.Real(float32(dist.Rand())), nil
	})
}
