package generator

import (
	"errors"
	"fmt"
)

// Sentinel BuildError kinds. Wrap with fmt.Errorf("...: %w", ...) to attach
// the offending detail; callers match with errors.Is.
var (
	ErrInvalidType           = errors.New("generator: declared type does not match constructed variant")
	ErrInvalidValue          = errors.New("generator: invalid configuration value")
	ErrNotExistValueOf       = errors.New("generator: required field is missing")
	ErrFailParseValue        = errors.New("generator: failed to parse literal into target type")
	ErrRangeEmpty            = errors.New("generator: configured range is empty")
	ErrEmptyChildren         = errors.New("generator: children list is empty")
	ErrEmptySelectValues     = errors.New("generator: combined selection set is empty")
	ErrNotExistDefaultCase   = errors.New("generator: case-when has no default child")
	ErrAllWeightsZero        = errors.New("generator: all child weights sum to zero")
	ErrFailBuildDistribution = errors.New("generator: failed to build distribution")
)

// Sentinel GenerateError kinds.
var (
	ErrFailGenerate = errors.New("generator: failed to generate a value")
)

func invalidType(declared, wanted Kind) error {
	return fmt.Errorf("%w: declared %q, expected %q", ErrInvalidType, declared, wanted)
}

func notExistValueOf(field string) error {
	return fmt.Errorf("%w: %q", ErrNotExistValueOf, field)
}

func failParseValue(literal, target string, cause error) error {
	return fmt.Errorf("%w: %q as %s: %v", ErrFailParseValue, literal, target, cause)
}

func rangeEmpty(bound fmt.Stringer) error {
	return fmt.Errorf("%w: %s", ErrRangeEmpty, bound)
}

func invalidValue(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, detail)
}

func failGenerate(detail string) error {
	return fmt.Errorf("%w: %s", ErrFailGenerate, detail)
}
