package config

import "fmt"

// Config is the unified configuration structure: the Run section describes
// one batch-generation invocation, Observability the logging/metrics/tracing
// ambient stack. There is no server section — this is a single-shot CLI.
type Config struct {
	Run           RunConfig           `json:"run" yaml:"run"`
	Observability ObservabilityConfig `json:"observability" yaml:"observability"`
}

// RunConfig describes one generation run: which schema to build, how to
// parse it, how many records to produce, and how to write them out.
type RunConfig struct {
	SchemaFile   string `json:"schema_file" yaml:"schema_file"`
	ParserFormat string `json:"parser_format" yaml:"parser_format"`
	OutputFormat string `json:"output_format" yaml:"output_format"`
	Count        int    `json:"count" yaml:"count"`
	WithHeader   bool   `json:"with_header" yaml:"with_header"`
	DryRun       bool   `json:"dry_run" yaml:"dry_run"`
	Seed         int64  `json:"seed" yaml:"seed"`
	SeedSet      bool   `json:"-" yaml:"-"`
}

// Validate validates the entire configuration.
func (c *Config) Validate() error {
	if err := c.Run.Validate(); err != nil {
		return fmt.Errorf("run config validation failed: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("observability config validation failed: %w", err)
	}
	return nil
}
