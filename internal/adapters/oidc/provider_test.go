package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Validation(t *testing.T) {
	cases := []struct {
		name string
		cfg  ProviderConfig
		want string
	}{
		{"missing client id", ProviderConfig{}, "client ID is required"},
		{"missing client secret", ProviderConfig{ClientID: "id"}, "client secret is required"},
		{"missing redirect", ProviderConfig{ClientID: "id", ClientSecret: "secret"}, "redirect URL is required"},
		{
			"missing issuer",
			ProviderConfig{ClientID: "id", ClientSecret: "secret", RedirectURL: "https://app.example/auth/callback"},
			"issuer URL is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProvider(tc.cfg)
			require.Error(t, err)
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestGenerateRandomString(t *testing.T) {
	seen := map[string]bool{}
	for range 32 {
		s, err := generateRandomString(32)
		require.NoError(t, err)
		assert.Len(t, s, 32)
		assert.False(t, seen[s], "random strings must not repeat")
		seen[s] = true
	}

	empty, err := generateRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
