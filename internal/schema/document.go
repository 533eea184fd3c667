package schema

import (
	"encoding/json"

	"github.com/leslieo2/sbrdgen/internal/generator"
)

// Document is the top-level schema document: the exported key order plus
// the sequence of named parent generator specs that define every compiled
// field (not just the exported ones — a field may be produced purely to be
// referenced by a later field's eval script and never appear in keys).
type Document struct {
	Keys       []string     `yaml:"keys" json:"keys"`
	Generators []ParentSpec `yaml:"generators" json:"generators"`
}

// ParentSpec is { key: string, ...GeneratorSpec }.
type ParentSpec struct {
	Key   string         `yaml:"key" json:"key"`
	Inner generator.Spec `yaml:",inline" json:"-"`
}

// UnmarshalJSON decodes key plus the inlined Spec fields (encoding/json has
// no struct-field inlining for non-embedded fields, unlike yaml.v3).
func (p *ParentSpec) UnmarshalJSON(data []byte) error {
	var header struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	var inner generator.Spec
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	p.Key = header.Key
	p.Inner = inner
	return nil
}

// MarshalJSON re-flattens key alongside the inner Spec's fields.
func (p ParentSpec) MarshalJSON() ([]byte, error) {
	innerJSON, err := json.Marshal(p.Inner)
	if err != nil {
		return nil, err
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(innerJSON, &flat); err != nil {
		return nil, err
	}
	keyJSON, err := json.Marshal(p.Key)
	if err != nil {
		return nil, err
	}
	flat["key"] = keyJSON
	return json.Marshal(flat)
}
