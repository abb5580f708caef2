package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

func ga4Row(dims []string, metrics []string) map[string]any {
	dv := make([]map[string]string, len(dims))
	for i, d := range dims {
		dv[i] = map[string]string{"value": d}
	}
	mv := make([]map[string]string, len(metrics))
	for i, m := range metrics {
		mv[i] = map[string]string{"value": m}
	}
	return map[string]any{"dimensionValues": dv, "metricValues": mv}
}

func TestAnalyticsTraffic(t *testing.T) {
	t.Parallel()

	var gotBody runReportRequest
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"rows": []map[string]any{
				ga4Row([]string{"20260301"}, []string{"120", "150", "400"}),
				ga4Row([]string{"20260302"}, []string{"98", "110", "310"}),
			},
		})
	}))
	defer srv.Close()

	c := NewAnalyticsClient(srv.URL, srv.Client())
	rows, err := c.Traffic(context.Background(), "at-1", "987654", testRange(t))
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/properties/987654:runReport", gotPath)
	require.Len(t, gotBody.Metrics, 3)
	assert.Equal(t, "activeUsers", gotBody.Metrics[0].Name)

	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-01", rows[0].Date)
	assert.Equal(t, 120, rows[0].ActiveUsers)
	assert.Equal(t, 150, rows[0].Sessions)
	assert.Equal(t, 400, rows[0].PageViews)
}

func TestAnalyticsTopPages(t *testing.T) {
	t.Parallel()

	var gotBody runReportRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"rows": []map[string]any{
				ga4Row([]string{"/pricing"}, []string{"220"}),
				ga4Row([]string{"/blog/seo-basics"}, []string{"180"}),
			},
		})
	}))
	defer srv.Close()

	c := NewAnalyticsClient(srv.URL, srv.Client())
	rows, err := c.TopPages(context.Background(), "at-1", "987654", testRange(t), 5)
	require.NoError(t, err)

	assert.Equal(t, 5, gotBody.Limit)
	require.Len(t, rows, 2)
	assert.Equal(t, "/pricing", rows[0].Page)
	assert.Equal(t, 220, rows[0].ActiveUsers)
}

func TestAnalyticsEmptyReport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// GA4 omits "rows" when the property has no data for the range.
		_, _ = w.Write([]byte(`{"rowCount": 0}`))
	}))
	defer srv.Close()

	c := NewAnalyticsClient(srv.URL, srv.Client())
	rows, err := c.Traffic(context.Background(), "at-1", "987654", testRange(t))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAnalyticsErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"status":"UNAUTHENTICATED"}}`))
	}))
	defer srv.Close()

	c := NewAnalyticsClient(srv.URL, srv.Client())
	_, err := c.TopPages(context.Background(), "stale", "987654", testRange(t), 5)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeExternal, apperrors.GetCode(err))
}

func TestIntFieldFractionalMetric(t *testing.T) {
	t.Parallel()

	m := map[string]any{"users": "12.0", "sessions": "34", "bad": "n/a"}
	assert.Equal(t, 12, intField(m, "users"))
	assert.Equal(t, 34, intField(m, "sessions"))
	assert.Equal(t, 0, intField(m, "bad"))
	assert.Equal(t, 0, intField(m, "missing"))
}
