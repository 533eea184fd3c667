package value

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Ordered is the set of scalar representations ValueBound can range over:
// 32-bit ints (Int), 64-bit ints (the internal epoch/day/seconds-of-day
// representations used by the temporal generators) and 32-bit floats (Real).
type Ordered interface {
	~int32 | ~int64 | ~float32
}

// Bound is ValueBound<T>: an optionally-open range with an explicit
// include-end flag on the upper side. A nil Start or End means "no bound on
// that side" rather than zero.
type Bound[T Ordered] struct {
	Start      *T
	End        *T
	IncludeEnd bool
}

// NewBound builds a Bound from optional pointers.
func NewBound[T Ordered](start, end *T, includeEnd bool) Bound[T] {
	return Bound[T]{Start: start, End: end, IncludeEnd: includeEnd}
}

// ClosedBound builds a Bound with both sides present, inclusive.
func ClosedBound[T Ordered](start, end T) Bound[T] {
	s, e := start, end
	return Bound[T]{Start: &s, End: &e, IncludeEnd: true}
}

// Contains reports whether v lies within the bound's feasible set. If End
// is absent, IncludeEnd is ignored.
func (b Bound[T]) Contains(v T) bool {
	if b.Start != nil && v < *b.Start {
		return false
	}
	if b.End != nil {
		if b.IncludeEnd {
			if v > *b.End {
				return false
			}
		} else if v >= *b.End {
			return false
		}
	}
	return true
}

// IsEmpty reports whether both endpoints are present and the feasible set
// between them is empty.
func (b Bound[T]) IsEmpty() bool {
	if b.Start == nil || b.End == nil {
		return false
	}
	if b.IncludeEnd {
		return *b.Start > *b.End
	}
	return *b.Start >= *b.End
}

// MergeWithDefault fills missing sides from fallback. include_end is taken
// from the fallback only when End itself came from the fallback.
func (b Bound[T]) MergeWithDefault(fallback Bound[T]) Bound[T] {
	merged := b
	if merged.Start == nil {
		merged.Start = fallback.Start
	}
	if merged.End == nil {
		merged.End = fallback.End
		merged.IncludeEnd = fallback.IncludeEnd
	}
	return merged
}

// ConvertBound maps every present endpoint through convert.
func ConvertBound[T, U Ordered](b Bound[T], convert func(T) U) Bound[U] {
	out := Bound[U]{IncludeEnd: b.IncludeEnd}
	if b.Start != nil {
		s := convert(*b.Start)
		out.Start = &s
	}
	if b.End != nil {
		e := convert(*b.End)
		out.End = &e
	}
	return out
}

// TryConvertBound maps every present endpoint through a fallible convert,
// stopping at the first error.
func TryConvertBound[T, U Ordered](b Bound[T], convert func(T) (U, error)) (Bound[U], error) {
	out := Bound[U]{IncludeEnd: b.IncludeEnd}
	if b.Start != nil {
		s, err := convert(*b.Start)
		if err != nil {
			return Bound[U]{}, err
		}
		out.Start = &s
	}
	if b.End != nil {
		e, err := convert(*b.End)
		if err != nil {
			return Bound[U]{}, err
		}
		out.End = &e
	}
	return out, nil
}

// ErrRangeEmpty is returned by the Sample* helpers when asked to sample an
// empty bound; callers MUST check IsEmpty before sampling.
var ErrRangeEmpty = errors.New("value: range is empty")

// SampleInt32 draws uniformly from b. Missing sides are rejection-sampled
// over the full int32 range.
func SampleInt32(rng *rand.Rand, b Bound[int32]) (int32, error) {
	v, err := sampleInt64(rng, ConvertBound(b, func(v int32) int64 { return int64(v) }), math.MinInt32, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// SampleInt64 draws uniformly from b over the full int64 native range when a
// side is missing.
func SampleInt64(rng *rand.Rand, b Bound[int64]) (int64, error) {
	return sampleInt64(rng, b, math.MinInt64, math.MaxInt64)
}

func sampleInt64(rng *rand.Rand, b Bound[int64], nativeMin, nativeMax int64) (int64, error) {
	if b.IsEmpty() {
		return 0, ErrRangeEmpty
	}
	lo := nativeMin
	if b.Start != nil {
		lo = *b.Start
	}
	hi := nativeMax
	if b.End != nil {
		hi = *b.End
		if !b.IncludeEnd {
			hi--
		}
	}
	if hi < lo {
		return 0, ErrRangeEmpty
	}
	span := uint64(hi - lo) // number of values in [lo,hi] minus 1
	if span >= math.MaxInt64 {
		// span+1 would overflow int64; rejection-sample over the full
		// uint64 range instead.
		for {
			v := lo + int64(rng.Uint64())
			if v >= lo && (hi < lo || v <= hi) {
				return v, nil
			}
		}
	}
	return lo + rng.Int63n(int64(span)+1), nil
}

// SampleFloat32 draws uniformly from b. Missing sides are rejection-sampled
// over the full float32 range (finite values only).
func SampleFloat32(rng *rand.Rand, b Bound[float32]) (float32, error) {
	if b.IsEmpty() {
		return 0, ErrRangeEmpty
	}
	lo, hasLo := -math.MaxFloat32, false
	hi, hasHi := math.MaxFloat32, false
	if b.Start != nil {
		lo = float64(*b.Start)
		hasLo = true
	}
	if b.End != nil {
		hi = float64(*b.End)
		hasHi = true
	}
	if hasLo && hasHi && lo > hi {
		return 0, ErrRangeEmpty
	}
	for {
		f := lo + rng.Float64()*(hi-lo)
		if !b.IncludeEnd && hasHi && f >= hi {
			continue
		}
		v := float32(f)
		if b.Contains(v) {
			return v, nil
		}
		if hasLo && hasHi {
			// bound is exact; avoid infinite loop on rounding edge cases
			return v, nil
		}
	}
}

// String renders the bound for diagnostics (e.g. inside RangeEmpty errors).
func (b Bound[T]) String() string {
	open := "("
	closeCh := ")"
	if b.IncludeEnd {
		closeCh = "]"
	}
	start := "-inf"
	if b.Start != nil {
		start = fmt.Sprintf("%v", *b.Start)
	}
	end := "+inf"
	if b.End != nil {
		end = fmt.Sprintf("%v", *b.End)
	}
	return fmt.Sprintf("%s%v, %v%s", open, start, end, closeCh)
}
