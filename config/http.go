package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://app.example.com").
	// Used for generating absolute URLs such as the Google OAuth redirect.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// SettingsRedirectPath is where the browser is sent after a successful
	// Google connection callback. The client id is appended.
	SettingsRedirectPath string `env:"APP_SETTINGS_PATH" envDefault:"/clients"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.SettingsRedirectPath == "" || h.SettingsRedirectPath[0] != '/' {
		h.SettingsRedirectPath = "/clients"
	}
}
