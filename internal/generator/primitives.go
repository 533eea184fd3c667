package generator

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// defaultIntRange is [i16::MIN, i16::MAX], inclusive both sides, widened to
// 32-bit, per spec.
func defaultIntRange() value.Bound[int32] {
	return value.ClosedBound[int32](math.MinInt16, math.MaxInt16)
}

func defaultRealRange() value.Bound[float32] {
	return value.ClosedBound[float32](math.MinInt16, math.MaxInt16)
}

func parseRangeSpec[T value.Ordered](r *RangeSpec, parse func(value.Value) (T, error)) (value.Bound[T], error) {
	if r == nil {
		return value.Bound[T]{}, nil
	}
	b := value.Bound[T]{IncludeEnd: r.includeEnd()}
	if r.Start != nil {
		s, err := parse(*r.Start)
		if err != nil {
			return value.Bound[T]{}, err
		}
		b.Start = &s
	}
	if r.End != nil {
		e, err := parse(*r.End)
		if err != nil {
			return value.Bound[T]{}, err
		}
		b.End = &e
	}
	return b, nil
}

func parseInt32Literal(v value.Value) (int32, error) {
	n, err := value.ParseValue(v.ParseString(), value.KindInt)
	if err != nil {
		return 0, failParseValue(v.ParseString(), "Int", err)
	}
	i, _ := n.AsInt()
	return i, nil
}

func parseFloat32Literal(v value.Value) (float32, error) {
	n, err := value.ParseValue(v.ParseString(), value.KindReal)
	if err != nil {
		return 0, failParseValue(v.ParseString(), "Real", err)
	}
	r, _ := n.AsReal()
	return r, nil
}

// IntGenerator is the int kind: uniform sampling in a 32-bit range.
type IntGenerator struct {
	nullable value.Nullable
	rng      value.Bound[int32]
}

func buildInt(spec Spec) (Generator, error) {
	if spec.Type != KindInt {
		return nil, invalidType(spec.Type, KindInt)
	}
	r, err := parseRangeSpec(spec.Range, parseInt32Literal)
	if err != nil {
		return nil, err
	}
	r = r.MergeWithDefault(defaultIntRange())
	if r.IsEmpty() {
		return nil, rangeEmpty(r)
	}
	return &IntGenerator{nullable: nullableOf(spec.Nullable), rng: r}, nil
}

func (g *IntGenerator) Kind() Kind        { return KindInt }
func (g *IntGenerator) IsNullable() bool  { return g.nullable.Bool() }
func (g *IntGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		v, err := value.SampleInt32(rng, g.rng)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(v), nil
	})
}

// RealGenerator is the real kind: uniform sampling in a 32-bit float range.
type RealGenerator struct {
	nullable value.Nullable
	rng      value.Bound[float32]
}

func buildReal(spec Spec) (Generator, error) {
	if spec.Type != KindReal {
		return nil, invalidType(spec.Type, KindReal)
	}
	r, err := parseRangeSpec(spec.Range, parseFloat32Literal)
	if err != nil {
		return nil, err
	}
	r = r.MergeWithDefault(defaultRealRange())
	if r.IsEmpty() {
		return nil, rangeEmpty(r)
	}
	return &RealGenerator{nullable: nullableOf(spec.Nullable), rng: r}, nil
}

func (g *RealGenerator) Kind() Kind       { return KindReal }
func (g *RealGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *RealGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		v, err := value.SampleFloat32(rng, g.rng)
		if err != nil {
			return value.Value{}, err
		}
		return value.Real(v), nil
	})
}

// BoolGenerator is the bool kind: uniform 50/50.
type BoolGenerator struct {
	nullable value.Nullable
}

func buildBool(spec Spec) (Generator, error) {
	if spec.Type != KindBool {
		return nil, invalidType(spec.Type, KindBool)
	}
	return &BoolGenerator{nullable: nullableOf(spec.Nullable)}, nil
}

func (g *BoolGenerator) Kind() Kind       { return KindBool }
func (g *BoolGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *BoolGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		return value.Bool(rng.Float64() < 0.5), nil
	})
}

// AlwaysNullGenerator always emits Null; is_nullable is always true and the
// Bernoulli gate is short-circuited entirely.
type AlwaysNullGenerator struct{}

func buildAlwaysNull(spec Spec) (Generator, error) {
	if spec.Type != KindAlwaysNull {
		return nil, invalidType(spec.Type, KindAlwaysNull)
	}
	return &AlwaysNullGenerator{}, nil
}

func (g *AlwaysNullGenerator) Kind() Kind       { return KindAlwaysNull }
func (g *AlwaysNullGenerator) IsNullable() bool { return true }
func (g *AlwaysNullGenerator) Generate(*rand.Rand, eval.Context) (value.Value, error) {
	return value.Null(), nil
}

// IncrementIDGenerator emits initial, initial+step, initial+2*step, ... in
// strict order, independent of the RNG. The counter is the one piece of
// per-call mutable state any generator carries.
type IncrementIDGenerator struct {
	nullable value.Nullable
	current  int64
	step     int32
}

func buildIncrementID(spec Spec) (Generator, error) {
	if spec.Type != KindIncrementID {
		return nil, invalidType(spec.Type, KindIncrementID)
	}
	initial := int32(1)
	step := int32(1)
	if spec.Increment != nil {
		i, err := parseInt32Literal(spec.Increment.Initial)
		if err != nil {
			return nil, err
		}
		initial = i
		if spec.Increment.Step != nil {
			s, err := parseInt32Literal(*spec.Increment.Step)
			if err != nil {
				return nil, err
			}
			step = s
		}
	}
	return &IncrementIDGenerator{nullable: nullableOf(spec.Nullable), current: int64(initial), step: step}, nil
}

func (g *IncrementIDGenerator) Kind() Kind       { return KindIncrementID }
func (g *IncrementIDGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *IncrementIDGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		next := atomic.AddInt64(&g.current, int64(g.step)) - int64(g.step)
		return value.Int(int32(next)), nil
	})
}
