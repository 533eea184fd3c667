package writer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/leslieo2/sbrdgen/internal/schema"
	"github.com/leslieo2/sbrdgen/internal/value"
)

// delimitedWriter implements the CSV/TSV contract: an optional header row
// of keys, then one row per record, each cell the record's ParseString
// projection (Null renders as an empty cell).
type delimitedWriter struct {
	keys       []string
	withHeader bool
	cw         *csv.Writer
}

func newDelimitedWriter(keys []string, withHeader bool, out io.Writer, comma rune) (Writer, error) {
	cw := csv.NewWriter(out)
	cw.Comma = comma
	if withHeader {
		if err := cw.Write(keys); err != nil {
			return nil, fmt.Errorf("writer: writing delimited header: %w", err)
		}
	}
	return &delimitedWriter{keys: keys, withHeader: withHeader, cw: cw}, nil
}

func cellOf(v value.Value) string {
	if v.IsNull() {
		return ""
	}
	return v.ParseString()
}

func (w *delimitedWriter) WriteRecord(rec []schema.KeyValue) error {
	row := make([]string, 0, len(rec))
	for _, kv := range rec {
		row = append(row, cellOf(kv.Value))
	}
	if err := w.cw.Write(row); err != nil {
		return fmt.Errorf("writer: writing delimited row: %w", err)
	}
	return nil
}

func (w *delimitedWriter) Flush() error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		return fmt.Errorf("writer: flushing delimited output: %w", err)
	}
	return nil
}
