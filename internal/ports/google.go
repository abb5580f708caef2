package ports

import (
	"context"
	"time"

	"github.com/seopulse/seopulse-api/internal/domain/model"
)

// TokenSet is the result of a provider token call (code exchange or refresh).
// RefreshToken is empty when the provider chose not to (re)issue one.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// TokenExchanger performs the OAuth legs against the provider's token
// endpoint. It holds no state beyond the client configuration.
type TokenExchanger interface {
	// AuthCodeURL builds the consent URL, requesting offline access and
	// forcing the consent prompt so a refresh token is issued even on repeat
	// authorizations. The state is carried through the redirect verbatim.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a token set. One network
	// call; fails when the code is invalid, expired, or already used.
	Exchange(ctx context.Context, code string) (TokenSet, error)

	// Refresh obtains a new access token using a refresh token. One network
	// call; no retries.
	Refresh(ctx context.Context, refreshToken string) (TokenSet, error)
}

// SearchConsole queries the search performance reporting surface for one
// tenant property. Every call is a single request-response and may fail
// independently of any other reporting call.
type SearchConsole interface {
	Performance(ctx context.Context, accessToken, site string, rng model.DateRange) ([]model.SearchPerformanceRow, error)
	TopQueries(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchQueryRow, error)
	TopPages(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchPageRow, error)
}

// Analytics queries the GA4 traffic reporting surface for one tenant property.
type Analytics interface {
	Traffic(ctx context.Context, accessToken, propertyID string, rng model.DateRange) ([]model.TrafficRow, error)
	TopPages(ctx context.Context, accessToken, propertyID string, rng model.DateRange, limit int) ([]model.AnalyticsPageRow, error)
}
