// Package openapiimport converts an OpenAPI document's component schemas
// into a first-draft schema.Document, reusing the teacher's type/format/
// pattern priority ladder (kin-openapi's Schema.Type.Is / Format / Pattern)
// but emitting GeneratorSpecs instead of raw example values.
package openapiimport

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/leslieo2/sbrdgen/internal/generator"
	"github.com/leslieo2/sbrdgen/internal/schema"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// formatToFakeCategory maps an OpenAPI string format to a fake generator
// category, mirroring the teacher's initFormatHandlers registry.
var formatToFakeCategory = map[string]string{
	"email":    "email",
	"uuid":     "uuid",
	"uri":      "url",
	"url":      "url",
	"hostname": "domain",
	"ipv4":     "ipv4",
	"ipv6":     "ipv6",
}

// Convert walks doc.Components.Schemas, flattening each object schema's
// direct scalar properties into dotted "schema.property" field keys.
// Nested object/array properties have no counterpart in the engine's
// scalar value model and are skipped (this is a first-draft import, not a
// faithful structural mapping).
func Convert(doc *openapi3.T) (*schema.Document, error) {
	if doc == nil || doc.Components == nil {
		return &schema.Document{}, nil
	}

	var parents []schema.ParentSpec
	for schemaName, ref := range doc.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		s := ref.Value
		if s.Type == nil || !s.Type.Is("object") {
			continue
		}
		for propName, propRef := range s.Properties {
			if propRef == nil || propRef.Value == nil {
				continue
			}
			spec, ok := convertProperty(propRef.Value)
			if !ok {
				continue
			}
			key := schemaName + "." + propName
			parents = append(parents, schema.ParentSpec{Key: key, Inner: spec})
		}
	}

	sort.Slice(parents, func(i, j int) bool { return parents[i].Key < parents[j].Key })

	keys := make([]string, 0, len(parents))
	for _, p := range parents {
		keys = append(keys, p.Key)
	}

	return &schema.Document{Keys: keys, Generators: parents}, nil
}

// convertProperty maps one scalar OpenAPI property schema to a GeneratorSpec,
// following the priority ladder: enum, then date/date-time format, then a
// fake-backed format, then pattern, then plain type.
func convertProperty(p *openapi3.Schema) (generator.Spec, bool) {
	if len(p.Enum) > 0 {
		return generator.Spec{Type: generator.KindSelectString, Values: enumValues(p.Enum)}, true
	}

	switch p.Format {
	case "date":
		return generator.Spec{Type: generator.KindDate}, true
	case "date-time":
		return generator.Spec{Type: generator.KindDateTime}, true
	}
	if category, ok := formatToFakeCategory[p.Format]; ok {
		return generator.Spec{Type: generator.KindFake, Format: &category}, true
	}

	if p.Pattern != "" {
		pattern := p.Pattern
		return generator.Spec{Type: generator.KindRegex, Script: &pattern}, true
	}

	if p.Type == nil {
		return generator.Spec{}, false
	}
	switch {
	case p.Type.Is("integer"):
		return generator.Spec{Type: generator.KindInt, Range: numericRange(p, value.KindInt)}, true
	case p.Type.Is("number"):
		return generator.Spec{Type: generator.KindReal, Range: numericRange(p, value.KindReal)}, true
	case p.Type.Is("boolean"):
		return generator.Spec{Type: generator.KindBool}, true
	case p.Type.Is("string"):
		word := "word"
		return generator.Spec{Type: generator.KindFake, Format: &word}, true
	default:
		return generator.Spec{}, false
	}
}

func enumValues(enum []interface{}) []value.Value {
	out := make([]value.Value, 0, len(enum))
	for _, e := range enum {
		out = append(out, value.String(fmt.Sprintf("%v", e)))
	}
	return out
}

// numericRange builds a RangeSpec from OpenAPI min/max constraints, parsed
// as the target scalar kind; a schema with neither bound yields a nil
// RangeSpec, letting the generator fall back to its own default range.
func numericRange(p *openapi3.Schema, target value.Kind) *generator.RangeSpec {
	if p.Min == nil && p.Max == nil {
		return nil
	}
	r := &generator.RangeSpec{}
	if p.Min != nil {
		v := literalOf(*p.Min, target)
		r.Start = &v
	}
	if p.Max != nil {
		v := literalOf(*p.Max, target)
		r.End = &v
	}
	return r
}

func literalOf(f float64, target value.Kind) value.Value {
	if target == value.KindInt {
		return value.Int(int32(f))
	}
	return value.Real(float32(f))
}
