package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordAndExpose(t *testing.T) {
	m := New()

	m.RecordRead("words", ResultOK)
	m.RecordRead("words", ResultOK)
	m.RecordRead("status", ResultError)
	m.RecordWrite(ResultOK)
	m.VocabularyEntries.Set(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreReads.WithLabelValues("words", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreReads.WithLabelValues("status", ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreWrites.WithLabelValues(ResultOK)))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "vocab_cards_store_reads_total")
	assert.Contains(t, string(body), "vocab_cards_vocabulary_entries 3")
}

func TestNew_IndependentRegistries(t *testing.T) {
	// 2回生成しても登録が衝突しない
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
