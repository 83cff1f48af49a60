package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAnalysis(t *testing.T) {
	before := testutil.ToFloat64(AnalysesTotal.WithLabelValues("12", OutcomeFallback))

	RecordAnalysis("12", OutcomeFallback, 2*time.Second)

	assert.Equal(t, before+1, testutil.ToFloat64(AnalysesTotal.WithLabelValues("12", OutcomeFallback)))
}

func TestRecordLLMCall(t *testing.T) {
	before := testutil.ToFloat64(LLMCallsTotal.WithLabelValues("extract", "429"))

	RecordLLMCall("extract", 429, time.Second)
	RecordLLMRetry("extract")

	assert.Equal(t, before+1, testutil.ToFloat64(LLMCallsTotal.WithLabelValues("extract", "429")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(LLMRetriesTotal.WithLabelValues("extract")), 1.0)
}

func TestSetCatalogSizes(t *testing.T) {
	SetCatalogSizes(40, 17, 1)

	assert.Equal(t, 40.0, testutil.ToFloat64(CatalogPrograms.WithLabelValues("ug")))
	assert.Equal(t, 17.0, testutil.ToFloat64(CatalogPrograms.WithLabelValues("pg")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CatalogPrograms.WithLabelValues("excluded")))
}
