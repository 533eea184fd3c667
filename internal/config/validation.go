package config

import (
	"errors"
	"fmt"

	"github.com/leslieo2/sbrdgen/internal/constants"
)

// Validate validates the run configuration.
func (r *RunConfig) Validate() error {
	var errs []error

	if r.SchemaFile == "" {
		errs = append(errs, errors.New("run.schema_file cannot be empty"))
	}

	validParsers := map[string]bool{constants.FormatYAML: true, constants.FormatJSON: true}
	if !validParsers[r.ParserFormat] {
		errs = append(errs, fmt.Errorf("run.parser_format must be one of: yaml, json (got %q)", r.ParserFormat))
	}

	validOutputs := map[string]bool{
		constants.FormatJSON: true, constants.FormatYAML: true,
		constants.FormatCSV: true, constants.FormatTSV: true,
	}
	if !validOutputs[r.OutputFormat] {
		errs = append(errs, fmt.Errorf("run.output_format must be one of: json, yaml, csv, tsv (got %q)", r.OutputFormat))
	}

	if r.Count < 0 {
		errs = append(errs, errors.New("run.count must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
