package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "yaml", cfg.Run.ParserFormat)
	assert.Equal(t, "json", cfg.Run.OutputFormat)
	assert.Equal(t, 1, cfg.Run.Count)
	assert.True(t, cfg.Run.WithHeader)
	assert.False(t, cfg.Run.DryRun)
	assert.True(t, cfg.Observability.Metrics.Enabled)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Run.SchemaFile = "schema.yaml"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing schema file fails", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown parser format fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Run.SchemaFile = "schema.yaml"
		cfg.Run.ParserFormat = "toml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown output format fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Run.SchemaFile = "schema.yaml"
		cfg.Run.OutputFormat = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative count fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Run.SchemaFile = "schema.yaml"
		cfg.Run.Count = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("tracing enabled without service name fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Run.SchemaFile = "schema.yaml"
		cfg.Observability.Tracing.Enabled = true
		cfg.Observability.Tracing.ServiceName = ""
		assert.Error(t, cfg.Validate())
	})
}
