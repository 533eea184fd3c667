package generator

import (
	"math/rand"

	"github.com/go-faker/faker/v4"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// fakeCategories maps a format name to a faker call. Each call ignores its
// own internal RNG and is invoked fresh per Generate; faker has no seeded
// per-call API, so determinism under a fixed schema RNG seed is not
// guaranteed for this kind (nor for regex, whose reggen calls are seeded
// the same way), unlike every other generator.
var fakeCategories = map[string]func() string{
	"name":       faker.Name,
	"first-name": faker.FirstName,
	"last-name":  faker.LastName,
	"email":      faker.Email,
	"username":   faker.Username,
	"phone":      faker.Phonenumber,
	"word":       faker.Word,
	"sentence":   faker.Sentence,
	"uuid":       faker.UUIDHyphenated,
	"url":        faker.URL,
	"domain":     faker.DomainName,
	"ipv4":       faker.IPv4,
	"ipv6":       faker.IPv6,
}

// FakeGenerator emits realistic sample data (names, emails, ...) via
// go-faker, selected by the format field.
type FakeGenerator struct {
	nullable value.Nullable
	format   string
	fn       func() string
}

func buildFake(spec Spec) (Generator, error) {
	if spec.Type != KindFake {
		return nil, invalidType(spec.Type, KindFake)
	}
	if spec.Format == nil {
		return nil, notExistValueOf("format")
	}
	fn, ok := fakeCategories[*spec.Format]
	if !ok {
		return nil, invalidValue("unknown fake format " + *spec.Format)
	}
	return &FakeGenerator{nullable: nullableOf(spec.Nullable), format: *spec.Format, fn: fn}, nil
}

func (g *FakeGenerator) Kind() Kind       { return KindFake }
func (g *FakeGenerator) IsNullable() bool { return g.nullable.Bool() }
func (g *FakeGenerator) Generate(rng *rand.Rand, _ eval.Context) (value.Value, error) {
	return gate(g.nullable, rng, func() (value.Value, error) {
		return value.String(g.fn()), nil
	})
}
