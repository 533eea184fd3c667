package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel BuildError kinds specific to schema assembly; generator build
// errors (InvalidType, RangeEmpty, ...) propagate through unchanged from
// internal/generator.
var (
	ErrSpecifiedKeyNotUnique = errors.New("schema: keys list contains a duplicate entry")
	ErrAlreadyExistKey       = errors.New("schema: field name already compiled")
	ErrNotExistSpecifiedKey  = errors.New("schema: keys entry has no matching compiled field")
)

// ErrNotExistGeneratedKey is the GenerateError raised by IntoValues /
// IntoValuesWithKey; build invariants make this unreachable in practice, but
// the check is contractual per spec.
var ErrNotExistGeneratedKey = errors.New("schema: key has no produced value in this record's context")

func specifiedKeyNotUnique(dupes []string) error {
	return fmt.Errorf("%w: %s", ErrSpecifiedKeyNotUnique, strings.Join(dupes, ", "))
}

func alreadyExistKey(key string) error {
	return fmt.Errorf("%w: %q", ErrAlreadyExistKey, key)
}

func notExistSpecifiedKey(key string, present []string) error {
	return fmt.Errorf("%w: %q not among compiled fields [%s]", ErrNotExistSpecifiedKey, key, strings.Join(present, ", "))
}

func notExistGeneratedKey(key string) error {
	return fmt.Errorf("%w: %q", ErrNotExistGeneratedKey, key)
}
