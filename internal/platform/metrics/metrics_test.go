package metrics_test

import (
	"testing"

	"github.com/phrazzld/curricuforge/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCurriculaTotalCountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(metrics.CurriculaTotal.WithLabelValues(metrics.OutcomeValidationFailed))

	metrics.CurriculaTotal.WithLabelValues(metrics.OutcomeValidationFailed).Inc()

	after := testutil.ToFloat64(metrics.CurriculaTotal.WithLabelValues(metrics.OutcomeValidationFailed))
	assert.InDelta(t, before+1, after, 0.0001)
}

func TestCollectorsAreRegistered(t *testing.T) {
	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/", "200").Inc()
	metrics.GenerationDuration.WithLabelValues(metrics.OutcomeSucceeded).Observe(1.5)

	assert.Positive(t, testutil.CollectAndCount(metrics.HTTPRequestsTotal))
	assert.Positive(t, testutil.CollectAndCount(metrics.GenerationDuration))
}
