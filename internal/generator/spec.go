package generator

import (
	"encoding/json"

	"github.com/leslieo2/sbrdgen/internal/value"
)

// Spec is GeneratorSpec: the sum-typed configuration every generator variant
// is built from. Unknown/unused fields for a given kind are ignored by that
// kind's builder but are preserved verbatim by round-trip decode/encode,
// since Spec carries every field regardless of kind.
type Spec struct {
	Type       Kind                    `yaml:"type" json:"type"`
	Nullable   *bool                   `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Range      *RangeSpec              `yaml:"range,omitempty" json:"range,omitempty"`
	Increment  *IncrementSpec          `yaml:"increment,omitempty" json:"increment,omitempty"`
	Children   []ChildSpec             `yaml:"children,omitempty" json:"children,omitempty"`
	Chars      string                  `yaml:"chars,omitempty" json:"chars,omitempty"`
	Values     []value.Value           `yaml:"values,omitempty" json:"values,omitempty"`
	FilePath   string                  `yaml:"filepath,omitempty" json:"filepath,omitempty"`
	Separator  *string                 `yaml:"separator,omitempty" json:"separator,omitempty"`
	Format     *string                 `yaml:"format,omitempty" json:"format,omitempty"`
	Script     *string                 `yaml:"script,omitempty" json:"script,omitempty"`
	Parameters map[string]value.Value `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// RangeSpec is the wire Bound: { start?, include_end? (default true), end? }.
type RangeSpec struct {
	Start      *value.Value `yaml:"start,omitempty" json:"start,omitempty"`
	End        *value.Value `yaml:"end,omitempty" json:"end,omitempty"`
	IncludeEnd *bool        `yaml:"include_end,omitempty" json:"include_end,omitempty"`
}

func (r *RangeSpec) includeEnd() bool {
	if r == nil || r.IncludeEnd == nil {
		return true
	}
	return *r.IncludeEnd
}

// IncrementSpec is the wire Step: { initial, step? }.
type IncrementSpec struct {
	Initial value.Value  `yaml:"initial" json:"initial"`
	Step    *value.Value `yaml:"step,omitempty" json:"step,omitempty"`
}

// ChildSpec is { case?, weight?, ...Spec }. case is only consulted by
// CaseWhen; weight only by RandomChild/DuplicatePermutation's child arm.
type ChildSpec struct {
	Case   *string `yaml:"case,omitempty" json:"case,omitempty"`
	Weight *uint8  `yaml:"weight,omitempty" json:"weight,omitempty"`
	Inner  Spec    `yaml:",inline" json:"-"`
}

// UnmarshalJSON decodes ChildSpec's case/weight fields plus the inlined
// Spec fields (encoding/json has no struct-field inlining, unlike yaml.v3).
func (c *ChildSpec) UnmarshalJSON(data []byte) error {
	var header struct {
		Case   *string `json:"case,omitempty"`
		Weight *uint8  `json:"weight,omitempty"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	var inner Spec
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	c.Case = header.Case
	c.Weight = header.Weight
	c.Inner = inner
	return nil
}

// MarshalJSON re-flattens case/weight alongside the inner Spec's fields.
func (c ChildSpec) MarshalJSON() ([]byte, error) {
	innerJSON, err := json.Marshal(c.Inner)
	if err != nil {
		return nil, err
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(innerJSON, &flat); err != nil {
		return nil, err
	}
	if c.Case != nil {
		raw, err := json.Marshal(*c.Case)
		if err != nil {
			return nil, err
		}
		flat["case"] = raw
	}
	if c.Weight != nil {
		raw, err := json.Marshal(*c.Weight)
		if err != nil {
			return nil, err
		}
		flat["weight"] = raw
	}
	return json.Marshal(flat)
}

func nullableOf(n *bool) value.Nullable {
	if n == nil {
		return value.Required
	}
	return value.Nullable(*n)
}
