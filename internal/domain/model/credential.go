package model

import "time"

// Credential is the per-client Google OAuth grant. RefreshToken is the
// long-lived secret obtained at consent; AccessToken/TokenExpiry are the
// short-lived pair refreshed on demand.
//
// Invariant: AccessToken and TokenExpiry are either both set or both unset.
// RefreshToken may exist while the access token is stale or absent.
type Credential struct {
	ClientID     string     `json:"client_id"    db:"client_id"`
	RefreshToken string     `json:"-"            db:"refresh_token"`
	AccessToken  string     `json:"-"            db:"access_token"`
	TokenExpiry  *time.Time `json:"token_expiry" db:"token_expiry"`
	CreatedAt    time.Time  `json:"created_at"   db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"   db:"updated_at"`
}

// Connected reports whether the tenant has ever completed the consent flow.
func (c *Credential) Connected() bool {
	return c != nil && c.RefreshToken != ""
}

// AccessTokenValid reports whether the stored access token can be used as-is
// at the given instant. A small skew keeps us from handing out a token that
// expires mid-request.
func (c *Credential) AccessTokenValid(now time.Time) bool {
	if c == nil || c.AccessToken == "" || c.TokenExpiry == nil {
		return false
	}
	return c.TokenExpiry.After(now.Add(tokenExpirySkew))
}

const tokenExpirySkew = time.Minute

// TokenUpdate carries a freshly obtained token set to be persisted.
// RefreshToken is empty unless the provider rotated it; an empty value must
// never overwrite a stored refresh token.
type TokenUpdate struct {
	ClientID     string
	AccessToken  string
	TokenExpiry  time.Time
	RefreshToken string
}
