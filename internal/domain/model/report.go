package model

import (
	"time"

	"github.com/seopulse/seopulse-api/internal/errors"
)

// DateFormat is the calendar date format used across the reporting APIs.
const DateFormat = "2006-01-02"

// DateRange is an inclusive calendar date window for report queries.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses start/end strings in YYYY-MM-DD form and validates
// their ordering.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateFormat, start)
	if err != nil {
		return DateRange{}, errors.ValidationField("start", "start must be a YYYY-MM-DD date")
	}
	e, err := time.Parse(DateFormat, end)
	if err != nil {
		return DateRange{}, errors.ValidationField("end", "end must be a YYYY-MM-DD date")
	}
	if e.Before(s) {
		return DateRange{}, errors.Validation("end date is before start date")
	}
	return DateRange{Start: s, End: e}, nil
}

// Days returns the inclusive length of the range in days.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Previous returns the window of the same length immediately preceding this
// one. For a 7-day window ending yesterday, that is the 7 days before it,
// not a calendar-aligned "same period last month".
func (r DateRange) Previous() DateRange {
	days := r.Days()
	return DateRange{
		Start: r.Start.AddDate(0, 0, -days),
		End:   r.End.AddDate(0, 0, -days),
	}
}

// StartString returns the range start formatted for the reporting APIs.
func (r DateRange) StartString() string { return r.Start.Format(DateFormat) }

// EndString returns the range end formatted for the reporting APIs.
func (r DateRange) EndString() string { return r.End.Format(DateFormat) }

// SearchPerformanceRow is one dated row of organic search metrics.
type SearchPerformanceRow struct {
	Date        string  `json:"date"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	CTR         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

// SearchQueryRow is one top-query row of organic search metrics.
type SearchQueryRow struct {
	Query       string  `json:"query"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	Position    float64 `json:"position"`
}

// SearchPageRow is one top-page row of organic search metrics.
type SearchPageRow struct {
	Page   string `json:"page"`
	Clicks int    `json:"clicks"`
}

// TrafficRow is one dated row of analytics traffic metrics.
type TrafficRow struct {
	Date        string `json:"date"`
	ActiveUsers int    `json:"active_users"`
	Sessions    int    `json:"sessions"`
	PageViews   int    `json:"page_views"`
}

// AnalyticsPageRow is one top-page row of analytics metrics.
type AnalyticsPageRow struct {
	Page        string `json:"page"`
	ActiveUsers int    `json:"active_users"`
}

// SearchSection is the Search Console part of a report. Nil when the client
// has no Search Console property configured.
type SearchSection struct {
	Rows       []SearchPerformanceRow `json:"rows"`
	TopQueries []SearchQueryRow       `json:"top_queries,omitempty"`
	TopPages   []SearchPageRow        `json:"top_pages,omitempty"`

	TotalClicks       int     `json:"total_clicks"`
	TotalImpressions  int     `json:"total_impressions"`
	ClicksGrowth      float64 `json:"clicks_growth"`
	ImpressionsGrowth float64 `json:"impressions_growth"`
}

// AnalyticsSection is the GA4 part of a report. Nil when the client has no
// analytics property configured.
type AnalyticsSection struct {
	Rows     []TrafficRow       `json:"rows"`
	TopPages []AnalyticsPageRow `json:"top_pages,omitempty"`

	TotalActiveUsers int     `json:"total_active_users"`
	TotalSessions    int     `json:"total_sessions"`
	UsersGrowth      float64 `json:"users_growth"`
	SessionsGrowth   float64 `json:"sessions_growth"`
}

// Report is the merged result of the two independently-failing data sources.
// A nil section with a matching entry in Errors means that source failed;
// a nil section without one means the tenant never configured it.
type Report struct {
	ClientID  string            `json:"client_id"`
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Search    *SearchSection    `json:"search"`
	Analytics *AnalyticsSection `json:"analytics"`
	Errors    map[string]string `json:"errors,omitempty"`
}
