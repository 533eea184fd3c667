// Package listsource resolves a generator's chars/values/filepath
// configuration into a flat list of selectable values of a target scalar
// type, per the build-time "selection set" contract.
package listsource

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/leslieo2/sbrdgen/internal/value"
)

// Spec is the raw, unresolved configuration a generator carries for its
// selection set.
type Spec struct {
	Chars    string
	Values   []value.Value
	FilePath string
}

func (s Spec) empty() bool {
	return s.Chars == "" && len(s.Values) == 0 && s.FilePath == ""
}

// fileLinesTTL bounds how long a resolved file's lines are kept in the
// loader's cache; build-time resolution only ever happens once per process,
// so this mostly matters for long-lived callers (tests, tooling) that build
// many schemas against the same file in one run.
const fileLinesTTL = 10 * time.Minute

// Loader resolves selection sets, caching file reads by absolute path so
// that two generators pointing at the same filepath only read it once.
type Loader struct {
	cache *gocache.Cache
}

// NewLoader builds a Loader with an in-memory TTL cache of file contents.
func NewLoader() *Loader {
	return &Loader{cache: gocache.New(fileLinesTTL, 2*fileLinesTTL)}
}

// Resolve builds the flat selection set for spec, in the fixed order
// chars, then values, then file, parsing values/file lines into target.
// baseDir is the schema file's directory, used to resolve a relative
// filepath; pass "" to resolve relative to the process's working directory.
func (l *Loader) Resolve(spec Spec, target value.Kind, baseDir string) ([]value.Value, error) {
	if spec.empty() {
		return nil, ErrEmptySelectValues
	}

	var out []value.Value

	for _, r := range spec.Chars {
		out = append(out, value.String(string(r)))
	}

	for _, v := range spec.Values {
		parsed, err := value.ParseValue(v.ParseString(), target)
		if err != nil {
			return nil, fmt.Errorf("listsource: parsing literal value: %w", err)
		}
		out = append(out, parsed)
	}

	if spec.FilePath != "" {
		lines, err := l.fileLines(spec.FilePath, baseDir)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			parsed, err := value.ParseValue(line, target)
			if err != nil {
				return nil, fmt.Errorf("listsource: parsing line from %s: %w", spec.FilePath, err)
			}
			out = append(out, parsed)
		}
	}

	if len(out) == 0 {
		return nil, ErrEmptySelectValues
	}
	return out, nil
}

func (l *Loader) fileLines(path, baseDir string) ([]string, error) {
	resolved := path
	if !filepath.IsAbs(resolved) && baseDir != "" {
		resolved = filepath.Join(baseDir, path)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return nil, fmt.Errorf("listsource: resolving path %s: %w", path, err)
	}

	if cached, ok := l.cache.Get(abs); ok {
		return cached.([]string), nil
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("listsource: opening %s: %w", abs, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("listsource: reading %s: %w", abs, err)
	}

	l.cache.Set(abs, lines, gocache.DefaultExpiration)
	return lines, nil
}
