package metrics

import (
	"errors"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	assert.Equal(t, ResultOK, Result(nil))
	assert.Equal(t, ResultError, Result(errors.New("boom"))) //nolint:err113
}

func value(t *testing.T, kind, result string) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, Submissions.WithLabelValues(kind, result).Write(&m))

	return m.GetCounter().GetValue()
}

func TestSubmissionsCounter(t *testing.T) {
	before := value(t, "contact", ResultOK)
	Submissions.WithLabelValues("contact", ResultOK).Inc()
	assert.InDelta(t, before+1, value(t, "contact", ResultOK), 0.0001)
}
