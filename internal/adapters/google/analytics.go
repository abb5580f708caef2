package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// AnalyticsClient queries the GA4 Data API runReport endpoint. The response
// nests values positionally (dimensionValues/metricValues arrays ordered by
// the request), so rows are flattened with JMESPath expressions instead of a
// deep struct mirror.
type AnalyticsClient struct {
	hc      *http.Client
	baseURL string
}

// NewAnalyticsClient creates a GA4 Data API client against the given base
// URL (the production endpoint, or a local fake in tests).
func NewAnalyticsClient(baseURL string, hc *http.Client) *AnalyticsClient {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &AnalyticsClient{hc: hc, baseURL: baseURL}
}

var _ ports.Analytics = (*AnalyticsClient)(nil)

// Row extraction expressions. Metric indexes follow the request ordering.
const (
	trafficRowsExpr = `rows[].{date: dimensionValues[0].value, users: metricValues[0].value, sessions: metricValues[1].value, views: metricValues[2].value}`
	pageRowsExpr    = `rows[].{page: dimensionValues[0].value, users: metricValues[0].value}`
)

type runReportRequest struct {
	DateRanges []ga4DateRange `json:"dateRanges"`
	Dimensions []ga4Name      `json:"dimensions"`
	Metrics    []ga4Name      `json:"metrics"`
	Limit      int            `json:"limit,omitempty"`
}

type ga4DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type ga4Name struct {
	Name string `json:"name"`
}

// Traffic returns per-date visitor metrics for a property.
func (c *AnalyticsClient) Traffic(ctx context.Context, accessToken, propertyID string, rng model.DateRange) ([]model.TrafficRow, error) {
	raw, err := c.runReport(ctx, accessToken, propertyID, runReportRequest{
		DateRanges: []ga4DateRange{{StartDate: rng.StartString(), EndDate: rng.EndString()}},
		Dimensions: []ga4Name{{Name: "date"}},
		Metrics:    []ga4Name{{Name: "activeUsers"}, {Name: "sessions"}, {Name: "screenPageViews"}},
	})
	if err != nil {
		return nil, err
	}

	flat, err := extractRows(raw, trafficRowsExpr)
	if err != nil {
		return nil, err
	}

	rows := make([]model.TrafficRow, 0, len(flat))
	for _, m := range flat {
		rows = append(rows, model.TrafficRow{
			Date:        formatGADate(stringField(m, "date")),
			ActiveUsers: intField(m, "users"),
			Sessions:    intField(m, "sessions"),
			PageViews:   intField(m, "views"),
		})
	}
	return rows, nil
}

// TopPages returns the most-visited pages for a property.
func (c *AnalyticsClient) TopPages(ctx context.Context, accessToken, propertyID string, rng model.DateRange, limit int) ([]model.AnalyticsPageRow, error) {
	raw, err := c.runReport(ctx, accessToken, propertyID, runReportRequest{
		DateRanges: []ga4DateRange{{StartDate: rng.StartString(), EndDate: rng.EndString()}},
		Dimensions: []ga4Name{{Name: "pagePath"}},
		Metrics:    []ga4Name{{Name: "activeUsers"}},
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	flat, err := extractRows(raw, pageRowsExpr)
	if err != nil {
		return nil, err
	}

	rows := make([]model.AnalyticsPageRow, 0, len(flat))
	for _, m := range flat {
		rows = append(rows, model.AnalyticsPageRow{
			Page:        stringField(m, "page"),
			ActiveUsers: intField(m, "users"),
		})
	}
	return rows, nil
}

func (c *AnalyticsClient) runReport(ctx context.Context, accessToken, propertyID string, q runReportRequest) (any, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode analytics query")
	}

	endpoint := fmt.Sprintf("%s/v1beta/properties/%s:runReport", c.baseURL, propertyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build analytics request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternal, "analytics request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Wrapf(errReadBody(resp.Body), apperrors.ErrCodeExternal,
			"analytics query failed (status %d)", resp.StatusCode)
	}

	var raw any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternal, "decode analytics response")
	}
	return raw, nil
}

// extractRows flattens the positional runReport response with a JMESPath
// expression into a list of field maps. An absent rows key (empty report)
// yields an empty list.
func extractRows(raw any, expr string) ([]map[string]any, error) {
	result, err := jmespath.Search(expr, raw)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternal, "extract analytics rows")
	}
	if result == nil {
		return nil, nil
	}
	items, ok := result.([]any)
	if !ok {
		return nil, apperrors.Internal("unexpected analytics row shape")
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// intField parses a GA4 metric value, which the API returns as a string.
func intField(m map[string]any, key string) int {
	s, ok := m[key].(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Some metrics come back fractional; truncate.
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return n
}

// formatGADate converts GA4's compact date dimension ("20260301") to the
// YYYY-MM-DD form used everywhere else. Unrecognized input passes through.
func formatGADate(s string) string {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return s
	}
	return t.Format(model.DateFormat)
}
