package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// topRowLimit caps the top-queries/top-pages tables in a report.
const topRowLimit = 10

// ReportServiceOptions groups dependencies for ReportService.
type ReportServiceOptions struct {
	Clients       core.ClientRepository
	Tokens        AccessTokenSource
	SearchConsole ports.SearchConsole
	Analytics     ports.Analytics
	Logger        *slog.Logger
}

// AccessTokenSource yields a usable access token for a client. Implemented
// by GoogleService.
type AccessTokenSource interface {
	AccessToken(ctx context.Context, clientID string) (string, error)
}

// ReportService assembles the per-client overview report from the two
// reporting surfaces.
type ReportService struct {
	clients       core.ClientRepository
	tokens        AccessTokenSource
	searchConsole ports.SearchConsole
	analytics     ports.Analytics
	logger        *slog.Logger
}

// NewReportService constructs a new ReportService.
func NewReportService(opts ReportServiceOptions) *ReportService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		clients:       opts.Clients,
		tokens:        opts.Tokens,
		searchConsole: opts.SearchConsole,
		analytics:     opts.Analytics,
		logger:        logger.With("component", "report"),
	}
}

// Overview builds the report for a client over a date range. The search and
// analytics branches run concurrently and fail independently: one branch's
// error lands in Report.Errors and never cancels or empties the other. A
// property the tenant never configured yields a nil section, not an error.
//
// A client without a Google connection gets the report skeleton with both
// sections absent; only a failed token refresh fails the whole report, since
// the connection exists but neither branch could succeed.
func (s *ReportService) Overview(ctx context.Context, sess *domainauth.Session, clientID string, rng model.DateRange) (*model.Report, error) {
	client, err := authorizeClient(ctx, s.clients, sess, clientID)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		ClientID: clientID,
		Start:    rng.StartString(),
		End:      rng.EndString(),
	}
	if !client.HasSearchConsole() && !client.HasAnalytics() {
		return report, nil
	}

	token, err := s.tokens.AccessToken(ctx, clientID)
	if apperrors.IsNotConnected(err) {
		return report, nil
	}
	if err != nil {
		return nil, err
	}

	prev := rng.Previous()

	// Plain errgroup, not WithContext: a failing branch must not cancel the
	// surviving one. Each branch writes only its own variables; results are
	// merged after Wait.
	var (
		g            errgroup.Group
		search       *model.SearchSection
		analytics    *model.AnalyticsSection
		searchErr    error
		analyticsErr error
	)
	if client.HasSearchConsole() {
		site := *client.SiteURL
		g.Go(func() error {
			search, searchErr = s.searchSection(ctx, token, site, rng, prev)
			return nil
		})
	}
	if client.HasAnalytics() {
		property := *client.AnalyticsPropertyID
		g.Go(func() error {
			analytics, analyticsErr = s.analyticsSection(ctx, token, property, rng, prev)
			return nil
		})
	}
	_ = g.Wait()

	report.Search = search
	report.Analytics = analytics
	if searchErr != nil {
		s.logger.Warn("search section failed", "client_id", clientID, "err", searchErr)
		s.recordError(report, "search", searchErr)
	}
	if analyticsErr != nil {
		s.logger.Warn("analytics section failed", "client_id", clientID, "err", analyticsErr)
		s.recordError(report, "analytics", analyticsErr)
	}

	return report, nil
}

func (s *ReportService) recordError(report *model.Report, section string, err error) {
	if report.Errors == nil {
		report.Errors = make(map[string]string)
	}
	report.Errors[section] = err.Error()
}

func (s *ReportService) searchSection(ctx context.Context, token, site string, rng, prev model.DateRange) (*model.SearchSection, error) {
	rows, err := s.searchConsole.Performance(ctx, token, site, rng)
	if err != nil {
		return nil, err
	}
	prevRows, err := s.searchConsole.Performance(ctx, token, site, prev)
	if err != nil {
		return nil, err
	}
	queries, err := s.searchConsole.TopQueries(ctx, token, site, rng, topRowLimit)
	if err != nil {
		return nil, err
	}
	pages, err := s.searchConsole.TopPages(ctx, token, site, rng, topRowLimit)
	if err != nil {
		return nil, err
	}

	section := &model.SearchSection{
		Rows:       rows,
		TopQueries: queries,
		TopPages:   pages,
	}
	var prevClicks, prevImpressions int
	for _, r := range rows {
		section.TotalClicks += r.Clicks
		section.TotalImpressions += r.Impressions
	}
	for _, r := range prevRows {
		prevClicks += r.Clicks
		prevImpressions += r.Impressions
	}
	section.ClicksGrowth = calculateGrowth(section.TotalClicks, prevClicks)
	section.ImpressionsGrowth = calculateGrowth(section.TotalImpressions, prevImpressions)
	return section, nil
}

func (s *ReportService) analyticsSection(ctx context.Context, token, property string, rng, prev model.DateRange) (*model.AnalyticsSection, error) {
	rows, err := s.analytics.Traffic(ctx, token, property, rng)
	if err != nil {
		return nil, err
	}
	prevRows, err := s.analytics.Traffic(ctx, token, property, prev)
	if err != nil {
		return nil, err
	}
	pages, err := s.analytics.TopPages(ctx, token, property, rng, topRowLimit)
	if err != nil {
		return nil, err
	}

	section := &model.AnalyticsSection{
		Rows:     rows,
		TopPages: pages,
	}
	var prevUsers, prevSessions int
	for _, r := range rows {
		section.TotalActiveUsers += r.ActiveUsers
		section.TotalSessions += r.Sessions
	}
	for _, r := range prevRows {
		prevUsers += r.ActiveUsers
		prevSessions += r.Sessions
	}
	section.UsersGrowth = calculateGrowth(section.TotalActiveUsers, prevUsers)
	section.SessionsGrowth = calculateGrowth(section.TotalSessions, prevSessions)
	return section, nil
}

// calculateGrowth returns the percentage change from previous to current.
// Growth from zero is pinned at +100 so a tenant's first active period does
// not divide by zero; zero to zero is flat.
func calculateGrowth(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (float64(current) - float64(previous)) / float64(previous) * 100
}
