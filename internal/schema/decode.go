package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParserFormat names the schema document's wire encoding.
type ParserFormat string

const (
	ParserYAML ParserFormat = "yaml"
	ParserJSON ParserFormat = "json"
)

// Decode parses data as a Document in the given format.
func Decode(data []byte, format ParserFormat) (Document, error) {
	var doc Document
	switch format {
	case ParserJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("schema: decoding json document: %w", err)
		}
	case ParserYAML, "":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("schema: decoding yaml document: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("schema: unknown parser format %q", format)
	}
	return doc, nil
}
