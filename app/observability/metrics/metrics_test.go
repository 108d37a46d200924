package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNew(t *testing.T) {
	m, err := New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	assert.NotNil(t, m.BudgetEstimatesTotal)
	assert.NotNil(t, m.ChatDurationSeconds)
}

func TestGet(t *testing.T) {
	InitAppMetrics()
	assert.NotPanics(t, func() { Get() })
	assert.Same(t, Get(), Get())
}
