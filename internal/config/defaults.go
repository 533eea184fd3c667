package config

import "github.com/leslieo2/sbrdgen/internal/constants"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Run:           DefaultRunConfig(),
		Observability: DefaultObservabilityConfig(),
	}
}

// DefaultRunConfig returns the default run configuration.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		ParserFormat: constants.FormatYAML,
		OutputFormat: constants.FormatJSON,
		Count:        1,
		WithHeader:   true,
		DryRun:       false,
	}
}
