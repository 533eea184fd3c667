package openapiimport

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leslieo2/sbrdgen/internal/generator"
	"github.com/leslieo2/sbrdgen/internal/listsource"
	"github.com/leslieo2/sbrdgen/internal/schema"
)

func schemaRef(s *openapi3.Schema) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: s}
}

func TestConvert(t *testing.T) {
	t.Run("maps scalar properties by type, format and pattern", func(t *testing.T) {
		min, max := 18.0, 80.0
		doc := &openapi3.T{
			Components: &openapi3.Components{
				Schemas: openapi3.Schemas{
					"User": schemaRef(&openapi3.Schema{
						Type: &openapi3.Types{"object"},
						Properties: openapi3.Schemas{
							"age":    schemaRef(&openapi3.Schema{Type: &openapi3.Types{"integer"}, Min: &min, Max: &max}),
							"email":  schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "email"}),
							"status": schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, Enum: []interface{}{"active", "inactive"}}),
							"code":   schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, Pattern: `^[A-Z]{3}$`}),
							"active": schemaRef(&openapi3.Schema{Type: &openapi3.Types{"boolean"}}),
						},
					}),
				},
			},
		}

		out, err := Convert(doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"User.active", "User.age", "User.code", "User.email", "User.status"}, out.Keys)

		byKey := map[string]generator.Spec{}
		for _, p := range out.Generators {
			byKey[p.Key] = p.Inner
		}
		assert.Equal(t, generator.KindInt, byKey["User.age"].Type)
		require.NotNil(t, byKey["User.age"].Range)
		assert.Equal(t, generator.KindFake, byKey["User.email"].Type)
		assert.Equal(t, "email", *byKey["User.email"].Format)
		assert.Equal(t, generator.KindSelectString, byKey["User.status"].Type)
		assert.Len(t, byKey["User.status"].Values, 2)
		assert.Equal(t, generator.KindRegex, byKey["User.code"].Type)
		assert.Equal(t, generator.KindBool, byKey["User.active"].Type)
	})

	t.Run("produces a buildable schema document", func(t *testing.T) {
		doc := &openapi3.T{
			Components: &openapi3.Components{
				Schemas: openapi3.Schemas{
					"Item": schemaRef(&openapi3.Schema{
						Type: &openapi3.Types{"object"},
						Properties: openapi3.Schemas{
							"name": schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}}),
						},
					}),
				},
			},
		}
		converted, err := Convert(doc)
		require.NoError(t, err)
		_, err = schema.Build(*converted, generator.Deps{Loader: listsource.NewLoader()})
		require.NoError(t, err)
	})

	t.Run("nil components yields an empty document", func(t *testing.T) {
		out, err := Convert(&openapi3.T{})
		require.NoError(t, err)
		assert.Empty(t, out.Keys)
	})
}
