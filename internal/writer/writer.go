// Package writer implements the value-stream contract's external writers:
// JSON, YAML, CSV and TSV, each consuming (keys, stream of records) and
// each required to flush on completion and surface I/O errors.
package writer

import (
	"fmt"
	"io"

	"github.com/leslieo2/sbrdgen/internal/schema"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
)

// Writer accumulates records in generation order and serializes them to an
// underlying io.Writer on Flush. Kept deliberately thin: no retry or
// back-pressure logic, matching the single-threaded, build-once-drive-once
// resource model this engine runs under.
type Writer interface {
	// WriteRecord appends one record, whose (key, value) pairs MUST match
	// Keys in order and set.
	WriteRecord(rec []schema.KeyValue) error
	// Flush serializes every accumulated record and writes it out.
	Flush() error
}

// New constructs a Writer for format, writing keys as the header row/field
// whenever withHeader is true.
func New(format Format, keys []string, withHeader bool, out io.Writer) (Writer, error) {
	switch format {
	case FormatJSON:
		return &jsonWriter{keys: keys, withHeader: withHeader, out: out}, nil
	case FormatYAML:
		return &yamlWriter{keys: keys, withHeader: withHeader, out: out}, nil
	case FormatCSV:
		return newDelimitedWriter(keys, withHeader, out, ',')
	case FormatTSV:
		return newDelimitedWriter(keys, withHeader, out, '\t')
	default:
		return nil, fmt.Errorf("writer: unknown format %q", format)
	}
}
