package generator

import (
	"math/rand"
	"time"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// minTemporalDate/maxTemporalDate bound the default date/date-time range:
// 1900-01-01 (inclusive) .. 2151-01-01 (exclusive).
var (
	minTemporalDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxTemporalDate = time.Date(2151, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func defaultDateRange() value.Bound[int64] {
	lo := value.DaysFromCE(minTemporalDate)
	hi := value.DaysFromCE(maxTemporalDate)
	return value.Bound[int64]{Start: &lo, End: &hi, IncludeEnd: false}
}

func defaultDateTimeRange() value.Bound[int64] {
	lo := minTemporalDate.Unix()
	hi := maxTemporalDate.Unix()
	return value.Bound[int64]{Start: &lo, End: &hi, IncludeEnd: false}
}

func defaultTimeRange() value.Bound[int64] {
	lo := int64(0)
	hi := int64(23*3600 + 59*60 + 59)
	return value.Bound[int64]{Start: &lo, End: &hi, IncludeEnd: true}
}

func parseTemporalRange(r *RangeSpec, format string, toInternal func(time.Time) int64) (value.Bound[int64], error) {
	return parseRangeSpec(r, func(v value.Value) (int64, error) {
		s, _ := v.AsString()
		t, err := value.ParseDateTime(s, format)
		if err != nil {
			return 0, invalidValue(err.Error())
		}
		return toInternal(t), nil
	})
}

// DateTimeGenerator is the date-time kind.
type DateTimeGenerator struct {
	nullable value.Nullable
	format   string
	rng      value.Bound[int64]
}

func buildDateTime(spec Spec) (Generator, error) {
	if spec.Type != KindDateTime {
		return nil, invalidType(spec.Type, KindDateTime)
	}
	format := value.DateTimeDefaultFormat
	if spec.Format != nil {
		format = *spec.Format
	}
	r, err := parseTemporalRange(spec.Range, value.DateTimeDefaultFormat, func(t time.Time) int64 { return t.Unix() })
	if err != nil {
		return nil, err
	}
	r = r.MergeWithDefault(defaultDateTimeRange())
	if r.IsEmpty() {
		return nil, rangeEmpty(r)
	}
	return &DateTimeGenerator{nullable: nullableOf(spec.Nullable), format: format, rng: r}, nil
}

func (g *DateTimeGenerator) Kind() Kind       { return KindDateTime }
func (g *DateTimeGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *DateTimeGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		ts, err := value.SampleInt64(rng, g.rng)
		if err != nil {
			return value.Value{}, err
		}
		t := time.Unix(ts, 0).UTC()
		format := eval.FormatScript(g.format, ctx)
		return value.String(value.FormatDateTime(t, format)), nil
	})
}

// DateGenerator is the date kind.
type DateGenerator struct {
	nullable value.Nullable
	format   string
	rng      value.Bound[int64]
}

func buildDate(spec Spec) (Generator, error) {
	if spec.Type != KindDate {
		return nil, invalidType(spec.Type, KindDate)
	}
	format := value.DateDefaultFormat
	if spec.Format != nil {
		format = *spec.Format
	}
	r, err := parseTemporalRange(spec.Range, value.DateDefaultFormat, value.DaysFromCE)
	if err != nil {
		return nil, err
	}
	r = r.MergeWithDefault(defaultDateRange())
	if r.IsEmpty() {
		return nil, rangeEmpty(r)
	}
	return &DateGenerator{nullable: nullableOf(spec.Nullable), format: format, rng: r}, nil
}

func (g *DateGenerator) Kind() Kind       { return KindDate }
func (g *DateGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *DateGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		days, err := value.SampleInt64(rng, g.rng)
		if err != nil {
			return value.Value{}, err
		}
		t := value.DateFromDaysCE(days)
		format := eval.FormatScript(g.format, ctx)
		return value.String(value.FormatDateTime(t, format)), nil
	})
}

// TimeGenerator is the time kind.
type TimeGenerator struct {
	nullable value.Nullable
	format   string
	rng      value.Bound[int64]
}

func buildTime(spec Spec) (Generator, error) {
	if spec.Type != KindTime {
		return nil, invalidType(spec.Type, KindTime)
	}
	format := value.TimeDefaultFormat
	if spec.Format != nil {
		format = *spec.Format
	}
	r, err := parseTemporalRange(spec.Range, value.TimeDefaultFormat, value.SecondsSinceMidnight)
	if err != nil {
		return nil, err
	}
	r = r.MergeWithDefault(defaultTimeRange())
	if r.IsEmpty() {
		return nil, rangeEmpty(r)
	}
	return &TimeGenerator{nullable: nullableOf(spec.Nullable), format: format, rng: r}, nil
}

func (g *TimeGenerator) Kind() Kind       { return KindTime }
func (g *TimeGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *TimeGenerator) Generate(rng *rand.Rand, ctx eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		secs, err := value.SampleInt64(rng, g.rng)
		if err != nil {
			return value.Value{}, err
		}
		t := value.TimeFromSecondsSinceMidnight(secs)
		format := eval.FormatScript(g.format, ctx)
		return value.String(value.FormatDateTime(t, format)), nil
	})
}
