package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/leslieo2/sbrdgen/internal/schema"
)

// orderedRecord marshals a record's (key, value) pairs as a JSON object in
// declared key order; encoding/json would otherwise marshal a Go map with
// its keys sorted, losing the declared order the contract requires.
type orderedRecord []schema.KeyValue

func (r orderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type jsonWriter struct {
	keys       []string
	withHeader bool
	out        io.Writer
	records    []orderedRecord
}

func (w *jsonWriter) WriteRecord(rec []schema.KeyValue) error {
	w.records = append(w.records, orderedRecord(rec))
	return nil
}

func (w *jsonWriter) Flush() error {
	if w.records == nil {
		w.records = []orderedRecord{}
	}
	var payload interface{}
	if w.withHeader {
		payload = struct {
			Keys   []string        `json:"keys"`
			Values []orderedRecord `json:"values"`
		}{Keys: w.keys, Values: w.records}
	} else {
		payload = w.records
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("writer: encoding json output: %w", err)
	}
	if _, err := w.out.Write(encoded); err != nil {
		return fmt.Errorf("writer: writing json output: %w", err)
	}
	return nil
}
