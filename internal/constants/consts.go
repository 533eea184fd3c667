package constants

// Environment variable constants, read by internal/config's env-override
// layer (all except EnvMetricsPath, which nothing reads).
const (
	EnvParserFormat    = "SBRDGEN_PARSER_FORMAT"
	EnvOutputFormat    = "SBRDGEN_OUTPUT_FORMAT"
	EnvSchemaFile      = "SBRDGEN_SCHEMA_FILE"
	EnvCount           = "SBRDGEN_COUNT"
	EnvWithHeader      = "SBRDGEN_WITH_HEADER"
	EnvSeed            = "SBRDGEN_SEED"
	EnvLogLevel        = "SBRDGEN_LOG_LEVEL"
	EnvLogFormat       = "SBRDGEN_LOG_FORMAT"
	EnvMetricsPath     = "SBRDGEN_METRICS_PATH"
	EnvTracingExporter = "SBRDGEN_TRACING_EXPORTER"
)

// Parser/output format constants, matching the --parser/--type CLI flags
// and schema.ParserFormat / writer.Format's string forms.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
)

// Default temporal formats, mirrored from internal/value's DateTime/Date/Time
// default layouts.
const (
	DefaultDateTimeFormat = "2006-01-02 15:04:05"
	DefaultDateFormat     = "2006-01-02"
	DefaultTimeFormat     = "15:04:05"
)
