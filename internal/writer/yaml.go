package writer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/leslieo2/sbrdgen/internal/schema"
)

// recordNode builds a yaml.v3 mapping node with keys in declared record
// order; yaml.v3 (unlike encoding/json on a Go map) already preserves
// struct/MarshalYAML order, but a map[string]value.Value would not, so the
// record is built directly as a MappingNode instead.
func recordNode(rec []schema.KeyValue) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, kv := range rec {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Key}
		var valNode yaml.Node
		if err := valNode.Encode(kv.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, &valNode)
	}
	return node, nil
}

type yamlWriter struct {
	keys       []string
	withHeader bool
	out        io.Writer
	records    []*yaml.Node
}

func (w *yamlWriter) WriteRecord(rec []schema.KeyValue) error {
	node, err := recordNode(rec)
	if err != nil {
		return fmt.Errorf("writer: building yaml record: %w", err)
	}
	w.records = append(w.records, node)
	return nil
}

func (w *yamlWriter) Flush() error {
	valuesNode := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range w.records {
		valuesNode.Content = append(valuesNode.Content, r)
	}

	var root yaml.Node
	if w.withHeader {
		root.Kind = yaml.MappingNode
		root.Tag = "!!map"
		var keysNode yaml.Node
		if err := keysNode.Encode(w.keys); err != nil {
			return fmt.Errorf("writer: encoding yaml keys: %w", err)
		}
		root.Content = []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "keys"}, &keysNode,
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "values"}, valuesNode,
		}
	} else {
		root = *valuesNode
	}

	encoded, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("writer: encoding yaml output: %w", err)
	}
	if _, err := w.out.Write(encoded); err != nil {
		return fmt.Errorf("writer: writing yaml output: %w", err)
	}
	return nil
}
