package config

// GoogleConfig contains the OAuth client used to connect tenants to
// Google Search Console and GA4, plus the reporting API endpoints.
//
// Only read-only scopes are ever requested; the application never asks
// for write access to a tenant's Google properties.
type GoogleConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// RedirectURL is the OAuth callback for tenant connections,
	// e.g. "https://app.example.com/google/callback".
	RedirectURL string `env:"REDIRECT_URL" envDefault:"http://localhost:8080/google/callback"`

	// SearchConsoleBaseURL and AnalyticsBaseURL exist so tests can point
	// the reporting gateway at a local fake.
	SearchConsoleBaseURL string `env:"SEARCH_CONSOLE_BASE_URL" envDefault:"https://searchconsole.googleapis.com"`
	AnalyticsBaseURL     string `env:"ANALYTICS_BASE_URL"      envDefault:"https://analyticsdata.googleapis.com"`
}

// Enabled reports whether a Google OAuth client is configured.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}
