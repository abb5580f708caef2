package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/mocks"
	mockgoogle "github.com/seopulse/seopulse-api/internal/mocks/google"
)

// tokenSourceFunc adapts a function to the AccessTokenSource interface.
type tokenSourceFunc func(ctx context.Context, clientID string) (string, error)

func (f tokenSourceFunc) AccessToken(ctx context.Context, clientID string) (string, error) {
	return f(ctx, clientID)
}

func staticToken(token string) tokenSourceFunc {
	return func(context.Context, string) (string, error) { return token, nil }
}

func reportRange(t *testing.T) model.DateRange {
	t.Helper()
	rng, err := model.ParseDateRange("2026-03-01", "2026-03-31")
	require.NoError(t, err)
	return rng
}

func connectedClient(site, property string) *model.Client {
	c := testClient()
	if site != "" {
		c.SiteURL = &site
	}
	if property != "" {
		c.AnalyticsPropertyID = &property
	}
	return c
}

func TestCalculateGrowth(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 50.0, calculateGrowth(150, 100), 0.001)
	assert.InDelta(t, -50.0, calculateGrowth(50, 100), 0.001)
	// Growth from zero is pinned at +100, and zero to zero is flat.
	assert.InDelta(t, 100.0, calculateGrowth(10, 0), 0.001)
	assert.InDelta(t, 0.0, calculateGrowth(0, 0), 0.001)
}

func TestReportService_Overview_NonOwnerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := NewReportService(ReportServiceOptions{Clients: clients, Tokens: staticToken("at")})
	stranger := &domainauth.Session{UserID: "somebody-else", Role: domainauth.RoleUser}

	_, err := svc.Overview(context.Background(), stranger, testGoogleClientID, reportRange(t))

	assert.True(t, apperrors.IsForbidden(err))
}

func TestReportService_Overview_NoPropertiesConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	tokens := tokenSourceFunc(func(context.Context, string) (string, error) {
		t.Fatal("token must not be requested when no property is configured")
		return "", nil
	})
	svc := NewReportService(ReportServiceOptions{Clients: clients, Tokens: tokens})

	report, err := svc.Overview(context.Background(), ownerSession(), testGoogleClientID, reportRange(t))

	require.NoError(t, err)
	assert.Nil(t, report.Search)
	assert.Nil(t, report.Analytics)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "2026-03-01", report.Start)
	assert.Equal(t, "2026-03-31", report.End)
}

func TestReportService_Overview_NotConnectedYieldsEmptyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).
		Return(connectedClient("https://acme.com/", "987654"), nil)

	tokens := tokenSourceFunc(func(context.Context, string) (string, error) {
		return "", apperrors.NotConnected("google account is not connected")
	})
	svc := NewReportService(ReportServiceOptions{Clients: clients, Tokens: tokens})

	report, err := svc.Overview(context.Background(), ownerSession(), testGoogleClientID, reportRange(t))

	require.NoError(t, err)
	assert.Nil(t, report.Search)
	assert.Nil(t, report.Analytics)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "2026-03-01", report.Start)
	assert.Equal(t, "2026-03-31", report.End)
}

func TestReportService_Overview_RefreshFailureFailsWholeReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).
		Return(connectedClient("https://acme.com/", "987654"), nil)

	tokens := tokenSourceFunc(func(context.Context, string) (string, error) {
		return "", apperrors.TokenRefresh("token refresh failed")
	})
	svc := NewReportService(ReportServiceOptions{Clients: clients, Tokens: tokens})

	_, err := svc.Overview(context.Background(), ownerSession(), testGoogleClientID, reportRange(t))

	assert.True(t, apperrors.IsTokenRefresh(err))
}

func TestReportService_Overview_MergesBothSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).
		Return(connectedClient("https://acme.com/", "987654"), nil)

	rng := reportRange(t)
	sc := &mockgoogle.StubSearchConsole{
		PerformanceFunc: func(_ context.Context, token, site string, r model.DateRange) ([]model.SearchPerformanceRow, error) {
			assert.Equal(t, "at", token)
			assert.Equal(t, "https://acme.com/", site)
			if r.Start.Equal(rng.Start) {
				return []model.SearchPerformanceRow{
					{Date: "2026-03-01", Clicks: 100, Impressions: 1000},
					{Date: "2026-03-02", Clicks: 50, Impressions: 500},
				}, nil
			}
			// Previous window.
			return []model.SearchPerformanceRow{{Date: "2026-02-01", Clicks: 100, Impressions: 3000}}, nil
		},
		TopQueriesFunc: func(_ context.Context, _, _ string, _ model.DateRange, limit int) ([]model.SearchQueryRow, error) {
			assert.Equal(t, 10, limit)
			return []model.SearchQueryRow{{Query: "seo agency", Clicks: 40}}, nil
		},
		TopPagesFunc: func(_ context.Context, _, _ string, _ model.DateRange, limit int) ([]model.SearchPageRow, error) {
			assert.Equal(t, 10, limit)
			return []model.SearchPageRow{{Page: "/pricing", Clicks: 30}}, nil
		},
	}
	an := &mockgoogle.StubAnalytics{
		TrafficFunc: func(_ context.Context, token, property string, r model.DateRange) ([]model.TrafficRow, error) {
			assert.Equal(t, "at", token)
			assert.Equal(t, "987654", property)
			if r.Start.Equal(rng.Start) {
				return []model.TrafficRow{{Date: "2026-03-01", ActiveUsers: 200, Sessions: 300}}, nil
			}
			return []model.TrafficRow{{Date: "2026-02-01", ActiveUsers: 100, Sessions: 300}}, nil
		},
		TopPagesFunc: func(_ context.Context, _, _ string, _ model.DateRange, limit int) ([]model.AnalyticsPageRow, error) {
			return []model.AnalyticsPageRow{{Page: "/blog", ActiveUsers: 80}}, nil
		},
	}
	svc := NewReportService(ReportServiceOptions{
		Clients:       clients,
		Tokens:        staticToken("at"),
		SearchConsole: sc,
		Analytics:     an,
	})

	report, err := svc.Overview(context.Background(), ownerSession(), testGoogleClientID, rng)

	require.NoError(t, err)
	require.NotNil(t, report.Search)
	require.NotNil(t, report.Analytics)
	assert.Empty(t, report.Errors)

	assert.Equal(t, 150, report.Search.TotalClicks)
	assert.Equal(t, 1500, report.Search.TotalImpressions)
	assert.InDelta(t, 50.0, report.Search.ClicksGrowth, 0.001)
	assert.InDelta(t, -50.0, report.Search.ImpressionsGrowth, 0.001)
	require.Len(t, report.Search.TopQueries, 1)
	require.Len(t, report.Search.TopPages, 1)

	assert.Equal(t, 200, report.Analytics.TotalActiveUsers)
	assert.Equal(t, 300, report.Analytics.TotalSessions)
	assert.InDelta(t, 100.0, report.Analytics.UsersGrowth, 0.001)
	assert.InDelta(t, 0.0, report.Analytics.SessionsGrowth, 0.001)
}

func TestReportService_Overview_SearchFailureLeavesAnalyticsIntact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).
		Return(connectedClient("https://acme.com/", "987654"), nil)

	sc := &mockgoogle.StubSearchConsole{
		PerformanceFunc: func(context.Context, string, string, model.DateRange) ([]model.SearchPerformanceRow, error) {
			return nil, apperrors.Wrap(assert.AnError, apperrors.ErrCodeExternal, "search console request failed")
		},
	}
	an := &mockgoogle.StubAnalytics{
		TrafficFunc: func(context.Context, string, string, model.DateRange) ([]model.TrafficRow, error) {
			return []model.TrafficRow{{Date: "2026-03-01", ActiveUsers: 10, Sessions: 12}}, nil
		},
	}
	svc := NewReportService(ReportServiceOptions{
		Clients:       clients,
		Tokens:        staticToken("at"),
		SearchConsole: sc,
		Analytics:     an,
	})

	report, err := svc.Overview(context.Background(), ownerSession(), testGoogleClientID, reportRange(t))

	require.NoError(t, err)
	assert.Nil(t, report.Search)
	require.NotNil(t, report.Analytics)
	assert.Equal(t, 10, report.Analytics.TotalActiveUsers)
	require.Contains(t, report.Errors, "search")
	assert.Contains(t, report.Errors["search"], "search console request failed")
	assert.NotContains(t, report.Errors, "analytics")
}

func TestReportService_Overview_SiteOnlyTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).
		Return(connectedClient("sc-domain:acme.com", ""), nil)

	sc := &mockgoogle.StubSearchConsole{
		PerformanceFunc: func(context.Context, string, string, model.DateRange) ([]model.SearchPerformanceRow, error) {
			return []model.SearchPerformanceRow{{Date: "2026-03-01", Clicks: 5, Impressions: 100}}, nil
		},
	}
	an := &mockgoogle.StubAnalytics{
		TrafficFunc: func(context.Context, string, string, model.DateRange) ([]model.TrafficRow, error) {
			t.Fatal("analytics must not be queried without a configured property")
			return nil, nil
		},
	}
	svc := NewReportService(ReportServiceOptions{
		Clients:       clients,
		Tokens:        staticToken("at"),
		SearchConsole: sc,
		Analytics:     an,
	})

	report, err := svc.Overview(context.Background(), ownerSession(), testGoogleClientID, reportRange(t))

	require.NoError(t, err)
	require.NotNil(t, report.Search)
	assert.Nil(t, report.Analytics)
	assert.Empty(t, report.Errors)
}
