package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leslieo2/sbrdgen/internal/generator"
)

const yamlDoc = `
keys: [a, b]
generators:
  - key: a
    type: int
    range: {start: 1, end: 1}
  - key: b
    type: eval-int
    script: "{a}*2"
`

func TestDecodeYAML(t *testing.T) {
	t.Run("decodes keys and generators", func(t *testing.T) {
		doc, err := Decode([]byte(yamlDoc), ParserYAML)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, doc.Keys)
		require.Len(t, doc.Generators, 2)
		assert.Equal(t, "a", doc.Generators[0].Key)
		assert.Equal(t, generator.KindInt, doc.Generators[0].Inner.Type)
		assert.Equal(t, "b", doc.Generators[1].Key)
		assert.Equal(t, generator.KindEvalInt, doc.Generators[1].Inner.Type)
		require.NotNil(t, doc.Generators[1].Inner.Script)
		assert.Equal(t, "{a}*2", *doc.Generators[1].Inner.Script)
	})

	t.Run("builds into a working schema", func(t *testing.T) {
		doc, err := Decode([]byte(yamlDoc), ParserYAML)
		require.NoError(t, err)
		_, err = Build(doc, testDeps())
		require.NoError(t, err)
	})
}

func TestDecodeJSONRoundTrip(t *testing.T) {
	t.Run("json decode of a ParentSpec preserves key and inline fields", func(t *testing.T) {
		raw := `{"keys":["a"],"generators":[{"key":"a","type":"int","range":{"start":1,"end":1}}]}`
		doc, err := Decode([]byte(raw), ParserJSON)
		require.NoError(t, err)
		assert.Equal(t, "a", doc.Generators[0].Key)
		assert.Equal(t, generator.KindInt, doc.Generators[0].Inner.Type)
	})

	t.Run("marshal then remarshal is stable", func(t *testing.T) {
		raw := `{"keys":["a"],"generators":[{"key":"a","type":"int","range":{"start":1,"end":1}}]}`
		doc, err := Decode([]byte(raw), ParserJSON)
		require.NoError(t, err)
		encoded, err := json.Marshal(doc)
		require.NoError(t, err)
		reDoc, err := Decode(encoded, ParserJSON)
		require.NoError(t, err)
		assert.Equal(t, doc.Keys, reDoc.Keys)
		assert.Equal(t, doc.Generators[0].Key, reDoc.Generators[0].Key)
		assert.Equal(t, doc.Generators[0].Inner.Type, reDoc.Generators[0].Inner.Type)
	})
}
