package bootstrap

import (
	"context"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/obs"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// The metrics decorators wrap the Google adapters so every outbound call
// lands in the google_api_calls_total counter. Services stay metrics-free.

type metricsExchanger struct {
	next ports.TokenExchanger
}

func (m metricsExchanger) AuthCodeURL(state string) string {
	return m.next.AuthCodeURL(state)
}

func (m metricsExchanger) Exchange(ctx context.Context, code string) (ports.TokenSet, error) {
	ts, err := m.next.Exchange(ctx, code)
	obs.ObserveGoogleCall("oauth_exchange", err)
	return ts, err
}

func (m metricsExchanger) Refresh(ctx context.Context, refreshToken string) (ports.TokenSet, error) {
	ts, err := m.next.Refresh(ctx, refreshToken)
	obs.ObserveTokenRefresh(err)
	obs.ObserveGoogleCall("oauth_refresh", err)
	return ts, err
}

type metricsSearchConsole struct {
	next ports.SearchConsole
}

func (m metricsSearchConsole) Performance(ctx context.Context, accessToken, site string, rng model.DateRange) ([]model.SearchPerformanceRow, error) {
	rows, err := m.next.Performance(ctx, accessToken, site, rng)
	obs.ObserveGoogleCall("search_console", err)
	return rows, err
}

func (m metricsSearchConsole) TopQueries(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchQueryRow, error) {
	rows, err := m.next.TopQueries(ctx, accessToken, site, rng, limit)
	obs.ObserveGoogleCall("search_console", err)
	return rows, err
}

func (m metricsSearchConsole) TopPages(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchPageRow, error) {
	rows, err := m.next.TopPages(ctx, accessToken, site, rng, limit)
	obs.ObserveGoogleCall("search_console", err)
	return rows, err
}

type metricsAnalytics struct {
	next ports.Analytics
}

func (m metricsAnalytics) Traffic(ctx context.Context, accessToken, propertyID string, rng model.DateRange) ([]model.TrafficRow, error) {
	rows, err := m.next.Traffic(ctx, accessToken, propertyID, rng)
	obs.ObserveGoogleCall("analytics", err)
	return rows, err
}

func (m metricsAnalytics) TopPages(ctx context.Context, accessToken, propertyID string, rng model.DateRange, limit int) ([]model.AnalyticsPageRow, error) {
	rows, err := m.next.TopPages(ctx, accessToken, propertyID, rng, limit)
	obs.ObserveGoogleCall("analytics", err)
	return rows, err
}
