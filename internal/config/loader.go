package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/leslieo2/sbrdgen/internal/constants"
)

// LoadConfig loads configuration with precedence:
//  1. Explicit CLI flags (highest priority)
//  2. Environment variables
//  3. Configuration file values
//  4. Default configuration values (lowest priority)
//
// A registered CLI flag that was not changed on the command line is ignored,
// so its default value never overrides the layers below it.
func LoadConfig(configFile string, cliFlags *CLIFlags) (*Config, error) {
	config := DefaultConfig()

	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		mergeConfig(config, fileConfig)
	}

	loadFromEnv(config)

	if cliFlags != nil {
		overrideWithCLI(config, cliFlags)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// CLIFlags carries CLI flag values that can override configuration, so this
// package does not need to depend on the flag package directly.
type CLIFlags struct {
	SchemaFile   *string
	ParserFormat *string
	OutputFormat *string
	Count        *int
	NoHeader     *bool
	DryRun       *bool
	Seed         *int64
}

// loadFromFile loads configuration from a YAML or JSON file.
func loadFromFile(filePath string) (*Config, error) {
	if !filepath.IsAbs(filePath) {
		absPath, err := filepath.Abs(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for %s: %w", filePath, err)
		}
		filePath = absPath
	}

	if err := validateFilePath(filePath); err != nil {
		return nil, fmt.Errorf("invalid config file path %s: %w", filePath, err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 - file path validated by validateFilePath()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	config := &Config{}
	ext := filepath.Ext(filePath)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".json":
		err = json.Unmarshal(data, config)
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	return config, nil
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(config *Config) {
	if val := os.Getenv(constants.EnvSchemaFile); val != "" {
		config.Run.SchemaFile = val
	}
	if val := os.Getenv(constants.EnvParserFormat); val != "" {
		config.Run.ParserFormat = val
	}
	if val := os.Getenv(constants.EnvOutputFormat); val != "" {
		config.Run.OutputFormat = val
	}
	if val := os.Getenv(constants.EnvCount); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Run.Count = n
		}
	}
	if val := os.Getenv(constants.EnvWithHeader); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			config.Run.WithHeader = enabled
		}
	}
	if val := os.Getenv(constants.EnvSeed); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Run.Seed = seed
			config.Run.SeedSet = true
		}
	}
	if val := os.Getenv(constants.EnvLogLevel); val != "" {
		config.Observability.Logging.Level = val
	}
	if val := os.Getenv(constants.EnvLogFormat); val != "" {
		config.Observability.Logging.Format = val
	}
	if val := os.Getenv(constants.EnvTracingExporter); val != "" {
		config.Observability.Tracing.Exporter = val
	}
}

// overrideWithCLI overrides configuration with CLI flag values. Only
// explicitly changed flags override other configuration sources.
func overrideWithCLI(config *Config, flags *CLIFlags) {
	if flags == nil {
		return
	}

	if flags.SchemaFile != nil && isFlagSet("schema") && *flags.SchemaFile != "" {
		config.Run.SchemaFile = *flags.SchemaFile
	}
	if flags.ParserFormat != nil && isFlagSet("parser") && *flags.ParserFormat != "" {
		config.Run.ParserFormat = *flags.ParserFormat
	}
	if flags.OutputFormat != nil && isFlagSet("type") && *flags.OutputFormat != "" {
		config.Run.OutputFormat = *flags.OutputFormat
	}
	if flags.Count != nil && isFlagSet("n") {
		config.Run.Count = *flags.Count
	}
	if flags.NoHeader != nil && isFlagSet("no-header") {
		config.Run.WithHeader = !*flags.NoHeader
	}
	if flags.DryRun != nil && isFlagSet("dry-run") {
		config.Run.DryRun = *flags.DryRun
	}
	if flags.Seed != nil && isFlagSet("seed") {
		config.Run.Seed = *flags.Seed
		config.Run.SeedSet = true
	}
}

// isFlagSet checks whether a flag was changed (set) in pflag's default
// CommandLine, or returns true if pflag is not initialized with that flag —
// this lets the function behave sanely in test environments where no flags
// have been registered.
func isFlagSet(flagName string) bool {
	flag := pflag.Lookup(flagName)
	if flag == nil {
		return true
	}
	return flag.Changed
}

// mergeConfig merges file configuration into the base configuration.
func mergeConfig(base *Config, file *Config) {
	if file == nil {
		return
	}

	if file.Run.SchemaFile != "" {
		base.Run.SchemaFile = file.Run.SchemaFile
	}
	if file.Run.ParserFormat != "" {
		base.Run.ParserFormat = file.Run.ParserFormat
	}
	if file.Run.OutputFormat != "" {
		base.Run.OutputFormat = file.Run.OutputFormat
	}
	if file.Run.Count != 0 {
		base.Run.Count = file.Run.Count
	}
	if file.Run.WithHeader {
		base.Run.WithHeader = file.Run.WithHeader
	}
	if file.Run.DryRun {
		base.Run.DryRun = file.Run.DryRun
	}

	if file.Observability.Logging.Level != "" {
		base.Observability.Logging.Level = file.Observability.Logging.Level
	}
	if file.Observability.Logging.Format != "" {
		base.Observability.Logging.Format = file.Observability.Logging.Format
	}
	if file.Observability.Metrics.Enabled != base.Observability.Metrics.Enabled {
		base.Observability.Metrics = file.Observability.Metrics
	}
	if file.Observability.Tracing.Enabled != base.Observability.Tracing.Enabled {
		base.Observability.Tracing = file.Observability.Tracing
	}
}

// validateFilePath checks that the file path is safe to read, preventing
// directory traversal.
func validateFilePath(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains directory traversal attempts")
	}

	return nil
}
