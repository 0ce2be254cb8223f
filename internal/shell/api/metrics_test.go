package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInstrument_RouteLabelIsPattern(t *testing.T) {
	m := NewMetrics()

	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"wid_1a2b3c", "wid_4d5e6f"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/widgets/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Both requests fold into the one templated label; the raw paths
	// never become label values.
	pattern := m.requestsTotal.WithLabelValues(http.MethodGet, "/widgets/{id}", "200")
	assert.Equal(t, 2.0, testutil.ToFloat64(pattern))

	raw := m.requestsTotal.WithLabelValues(http.MethodGet, "/widgets/wid_1a2b3c", "200")
	assert.Equal(t, 0.0, testutil.ToFloat64(raw))
}

func TestMetricsInstrument_RecordsStatus(t *testing.T) {
	m := NewMetrics()

	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/widgets/wid_gone", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	missing := m.requestsTotal.WithLabelValues(http.MethodGet, "/widgets/{id}", "404")
	assert.Equal(t, 1.0, testutil.ToFloat64(missing))
}
