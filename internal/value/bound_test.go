package value

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBoundContainsAndEmpty(t *testing.T) {
	t.Run("inclusive end contains boundary", func(t *testing.T) {
		b := ClosedBound[int32](1, 5)
		assert.True(t, b.Contains(1))
		assert.True(t, b.Contains(5))
		assert.False(t, b.Contains(6))
	})

	t.Run("exclusive end excludes boundary", func(t *testing.T) {
		b := Bound[int32]{Start: ptr(int32(1)), End: ptr(int32(5)), IncludeEnd: false}
		assert.True(t, b.Contains(4))
		assert.False(t, b.Contains(5))
	})

	t.Run("missing end ignores include_end", func(t *testing.T) {
		b := Bound[int32]{Start: ptr(int32(1))}
		assert.True(t, b.Contains(1000000))
	})

	t.Run("empty bound", func(t *testing.T) {
		b := Bound[int32]{Start: ptr(int32(5)), End: ptr(int32(3)), IncludeEnd: true}
		assert.True(t, b.IsEmpty())
	})

	t.Run("single point inclusive is not empty", func(t *testing.T) {
		b := ClosedBound[int32](5, 5)
		assert.False(t, b.IsEmpty())
	})

	t.Run("single point exclusive is empty", func(t *testing.T) {
		b := Bound[int32]{Start: ptr(int32(5)), End: ptr(int32(5)), IncludeEnd: false}
		assert.True(t, b.IsEmpty())
	})

	t.Run("one-sided bound is never empty", func(t *testing.T) {
		b := Bound[int32]{Start: ptr(int32(5))}
		assert.False(t, b.IsEmpty())
	})
}

func TestBoundMergeWithDefault(t *testing.T) {
	fallback := Bound[int32]{Start: ptr(int32(-10)), End: ptr(int32(10)), IncludeEnd: true}

	t.Run("both sides missing take the fallback entirely", func(t *testing.T) {
		merged := Bound[int32]{}.MergeWithDefault(fallback)
		require.NotNil(t, merged.Start)
		require.NotNil(t, merged.End)
		assert.EqualValues(t, -10, *merged.Start)
		assert.EqualValues(t, 10, *merged.End)
		assert.True(t, merged.IncludeEnd)
	})

	t.Run("explicit start is kept, end and include_end come from fallback", func(t *testing.T) {
		merged := Bound[int32]{Start: ptr(int32(0))}.MergeWithDefault(fallback)
		assert.EqualValues(t, 0, *merged.Start)
		assert.EqualValues(t, 10, *merged.End)
		assert.True(t, merged.IncludeEnd)
	})

	t.Run("explicit end keeps its own include_end, not the fallback's", func(t *testing.T) {
		merged := Bound[int32]{End: ptr(int32(3)), IncludeEnd: false}.MergeWithDefault(fallback)
		assert.EqualValues(t, -10, *merged.Start)
		assert.EqualValues(t, 3, *merged.End)
		assert.False(t, merged.IncludeEnd)
	})
}

func TestConvertBound(t *testing.T) {
	b := ClosedBound[int32](1, 5)
	converted := ConvertBound(b, func(v int32) int64 { return int64(v) * 2 })
	assert.EqualValues(t, 2, *converted.Start)
	assert.EqualValues(t, 10, *converted.End)
}

func TestTryConvertBound(t *testing.T) {
	t.Run("all conversions succeed", func(t *testing.T) {
		b := Bound[int32]{Start: ptr(int32(1))}
		out, err := TryConvertBound(b, func(v int32) (int64, error) { return int64(v), nil })
		require.NoError(t, err)
		assert.EqualValues(t, 1, *out.Start)
	})
}

func TestSampleInt32(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := ClosedBound[int32](1, 1)

	for i := 0; i < 100; i++ {
		v, err := SampleInt32(rng, b)
		require.NoError(t, err)
		assert.EqualValues(t, 1, v)
	}

	t.Run("rejects empty bound", func(t *testing.T) {
		_, err := SampleInt32(rng, Bound[int32]{Start: ptr(int32(5)), End: ptr(int32(3)), IncludeEnd: true})
		assert.ErrorIs(t, err, ErrRangeEmpty)
	})

	t.Run("stays within range across many draws", func(t *testing.T) {
		wide := ClosedBound[int32](-100, 100)
		for i := 0; i < 1000; i++ {
			v, err := SampleInt32(rng, wide)
			require.NoError(t, err)
			assert.True(t, wide.Contains(v))
		}
	})
}

func TestSampleFloat32(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := Bound[float32]{Start: ptr(float32(-1)), End: ptr(float32(1)), IncludeEnd: true}

	for i := 0; i < 1000; i++ {
		v, err := SampleFloat32(rng, b)
		require.NoError(t, err)
		assert.True(t, b.Contains(v))
	}
}
