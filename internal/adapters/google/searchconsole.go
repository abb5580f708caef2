package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// SearchConsoleClient queries the Search Console search analytics API.
// One HTTP request per call; no retries, no pagination beyond the API's
// row cap, so a transient failure surfaces immediately.
type SearchConsoleClient struct {
	hc      *http.Client
	baseURL string
}

// NewSearchConsoleClient creates a Search Console client against the given
// base URL (the production endpoint, or a local fake in tests).
func NewSearchConsoleClient(baseURL string, hc *http.Client) *SearchConsoleClient {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &SearchConsoleClient{hc: hc, baseURL: baseURL}
}

var _ ports.SearchConsole = (*SearchConsoleClient)(nil)

// searchQueryRequest is the body of a searchAnalytics/query call.
type searchQueryRequest struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	RowLimit   int      `json:"rowLimit,omitempty"`
}

// searchQueryResponse mirrors the API response shape.
type searchQueryResponse struct {
	Rows []struct {
		Keys        []string `json:"keys"`
		Clicks      float64  `json:"clicks"`
		Impressions float64  `json:"impressions"`
		CTR         float64  `json:"ctr"`
		Position    float64  `json:"position"`
	} `json:"rows"`
}

// Performance returns per-date search metrics for a property.
func (c *SearchConsoleClient) Performance(ctx context.Context, accessToken, site string, rng model.DateRange) ([]model.SearchPerformanceRow, error) {
	resp, err := c.query(ctx, accessToken, site, searchQueryRequest{
		StartDate:  rng.StartString(),
		EndDate:    rng.EndString(),
		Dimensions: []string{"date"},
	})
	if err != nil {
		return nil, err
	}

	rows := make([]model.SearchPerformanceRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		if len(r.Keys) == 0 {
			continue
		}
		rows = append(rows, model.SearchPerformanceRow{
			Date:        r.Keys[0],
			Clicks:      int(r.Clicks),
			Impressions: int(r.Impressions),
			CTR:         r.CTR,
			Position:    r.Position,
		})
	}
	return rows, nil
}

// TopQueries returns the highest-clicked search queries for a property.
func (c *SearchConsoleClient) TopQueries(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchQueryRow, error) {
	resp, err := c.query(ctx, accessToken, site, searchQueryRequest{
		StartDate:  rng.StartString(),
		EndDate:    rng.EndString(),
		Dimensions: []string{"query"},
		RowLimit:   limit,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]model.SearchQueryRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		if len(r.Keys) == 0 {
			continue
		}
		rows = append(rows, model.SearchQueryRow{
			Query:       r.Keys[0],
			Clicks:      int(r.Clicks),
			Impressions: int(r.Impressions),
			Position:    r.Position,
		})
	}
	return rows, nil
}

// TopPages returns the highest-clicked pages for a property.
func (c *SearchConsoleClient) TopPages(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchPageRow, error) {
	resp, err := c.query(ctx, accessToken, site, searchQueryRequest{
		StartDate:  rng.StartString(),
		EndDate:    rng.EndString(),
		Dimensions: []string{"page"},
		RowLimit:   limit,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]model.SearchPageRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		if len(r.Keys) == 0 {
			continue
		}
		rows = append(rows, model.SearchPageRow{
			Page:   r.Keys[0],
			Clicks: int(r.Clicks),
		})
	}
	return rows, nil
}

func (c *SearchConsoleClient) query(ctx context.Context, accessToken, site string, q searchQueryRequest) (*searchQueryResponse, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode search console query")
	}

	endpoint := fmt.Sprintf("%s/webmasters/v3/sites/%s/searchAnalytics/query",
		c.baseURL, url.PathEscape(site))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build search console request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternal, "search console request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Wrapf(errReadBody(resp.Body), apperrors.ErrCodeExternal,
			"search console query failed (status %d)", resp.StatusCode)
	}

	var out searchQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternal, "decode search console response")
	}
	return &out, nil
}

// errReadBody captures a bounded amount of an error response body for context.
func errReadBody(r io.Reader) error {
	const maxBody = 512
	b, err := io.ReadAll(io.LimitReader(r, maxBody))
	if err != nil || len(b) == 0 {
		return fmt.Errorf("no response body")
	}
	return fmt.Errorf("%s", b)
}
