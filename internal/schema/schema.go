// Package schema implements the schema engine: compiling a Document into a
// Schema of ordered fields, and driving one-record-at-a-time generation
// with a growing, per-record evaluation context.
package schema

import (
	"math/rand"

	"github.com/leslieo2/sbrdgen/internal/eval"
	"github.com/leslieo2/sbrdgen/internal/generator"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// field is one compiled parent: its name and built generator, in the order
// declared in the document (which may differ from Keys' order).
type field struct {
	name      string
	generator generator.Generator
}

// Schema is a built Document: every parent compiled in declaration order,
// with Keys recording the projection used for record output.
type Schema struct {
	keys   []string
	fields []field
}

// Keys returns the declared output projection, in order.
func (s *Schema) Keys() []string { return append([]string(nil), s.keys...) }

// Build compiles doc into a Schema, in the exact three-step validation
// order the engine contract requires: duplicate keys, then per-parent
// already-compiled checks (building each generator in declared order), then
// every key resolves to a compiled field.
func Build(doc Document, deps generator.Deps) (*Schema, error) {
	if dupes := duplicates(doc.Keys); len(dupes) > 0 {
		return nil, specifiedKeyNotUnique(dupes)
	}

	compiled := make(map[string]bool, len(doc.Generators))
	fields := make([]field, 0, len(doc.Generators))
	for _, p := range doc.Generators {
		if compiled[p.Key] {
			return nil, alreadyExistKey(p.Key)
		}
		g, err := generator.Build(p.Inner, deps)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{name: p.Key, generator: g})
		compiled[p.Key] = true
	}

	for _, k := range doc.Keys {
		if !compiled[k] {
			present := make([]string, 0, len(fields))
			for _, f := range fields {
				present = append(present, f.name)
			}
			return nil, notExistSpecifiedKey(k, present)
		}
	}

	return &Schema{keys: append([]string(nil), doc.Keys...), fields: fields}, nil
}

func duplicates(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	var dupes []string
	for _, k := range keys {
		if seen[k] {
			dupes = append(dupes, k)
			continue
		}
		seen[k] = true
	}
	return dupes
}

// GenerateContext drives every compiled field's generator in declared
// order, feeding each the growing context of already-produced values, and
// returns the full context (including fields not listed in Keys).
func (s *Schema) GenerateContext(rng *rand.Rand) (eval.Context, error) {
	ctx := make(eval.Context, len(s.fields))
	for _, f := range s.fields {
		v, err := f.generator.Generate(rng, ctx)
		if err != nil {
			return nil, err
		}
		ctx[f.name] = v
	}
	return ctx, nil
}

// KeyValue is one (key, value) pair in a record, in declared key order.
type KeyValue struct {
	Key   string
	Value value.Value
}

// IntoValues projects ctx onto Keys, in order, failing contractually (build
// invariants make this unreachable) if a key lacks a produced value.
func (s *Schema) IntoValues(ctx eval.Context) ([]value.Value, error) {
	out := make([]value.Value, 0, len(s.keys))
	for _, k := range s.keys {
		v, ok := ctx[k]
		if !ok {
			return nil, notExistGeneratedKey(k)
		}
		out = append(out, v)
	}
	return out, nil
}

// IntoValuesWithKey is IntoValues, pairing each value with its key.
func (s *Schema) IntoValuesWithKey(ctx eval.Context) ([]KeyValue, error) {
	out := make([]KeyValue, 0, len(s.keys))
	for _, k := range s.keys {
		v, ok := ctx[k]
		if !ok {
			return nil, notExistGeneratedKey(k)
		}
		out = append(out, KeyValue{Key: k, Value: v})
	}
	return out, nil
}

// Generate produces one complete record: drive every field, then project
// onto Keys in declared order.
func (s *Schema) Generate(rng *rand.Rand) ([]KeyValue, error) {
	ctx, err := s.GenerateContext(rng)
	if err != nil {
		return nil, err
	}
	return s.IntoValuesWithKey(ctx)
}
