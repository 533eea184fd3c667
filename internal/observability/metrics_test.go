package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leslieo2/sbrdgen/internal/config"
)

func TestNewMetrics(t *testing.T) {
	metrics := NewMetrics()
	require.NotNil(t, metrics)
	assert.NotNil(t, metrics.RecordsGenerated)
	assert.NotNil(t, metrics.EvalErrors)
	assert.NotNil(t, metrics.BuildDuration)
	assert.NotNil(t, metrics.GenerateDuration)
}

func TestMetrics_Register(t *testing.T) {
	metrics := NewMetrics()
	assert.NoError(t, metrics.Register())
}

func TestMetrics_RecordGenerate(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordGenerate(50*time.Millisecond, 100)
	metrics.RecordGenerate(20*time.Millisecond, 25)

	logger, err := NewLogger(config.DefaultLoggingConfig())
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	// Summary should not panic after several accumulated runs.
	metrics.Summary(logger)
}

func TestMetrics_RecordEvalError(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordEvalError()
	metrics.RecordEvalError()

	logger, err := NewLogger(config.DefaultLoggingConfig())
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	metrics.Summary(logger)
}

func TestMetrics_RecordBuild(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordBuild(10 * time.Millisecond)
}
