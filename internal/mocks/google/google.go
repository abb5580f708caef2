package google

// Package google contains hand-written test doubles for the Google provider
// ports and the credential store. They are safe for concurrent use so tests
// can exercise the refresh singleflight path.

import (
	"context"
	"sync"

	"github.com/seopulse/seopulse-api/internal/core"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenExchanger      = (*StubExchanger)(nil)
	_ ports.SearchConsole       = (*StubSearchConsole)(nil)
	_ ports.Analytics           = (*StubAnalytics)(nil)
	_ core.CredentialRepository = (*MemoryCredentialStore)(nil)
)

// StubExchanger is a scriptable TokenExchanger that counts calls.
type StubExchanger struct {
	mu sync.Mutex

	AuthCodeURLFunc func(state string) string
	ExchangeFunc    func(ctx context.Context, code string) (ports.TokenSet, error)
	RefreshFunc     func(ctx context.Context, refreshToken string) (ports.TokenSet, error)

	exchangeCalls int
	refreshCalls  int
}

func (s *StubExchanger) AuthCodeURL(state string) string {
	if s.AuthCodeURLFunc != nil {
		return s.AuthCodeURLFunc(state)
	}
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (s *StubExchanger) Exchange(ctx context.Context, code string) (ports.TokenSet, error) {
	s.mu.Lock()
	s.exchangeCalls++
	s.mu.Unlock()
	if s.ExchangeFunc != nil {
		return s.ExchangeFunc(ctx, code)
	}
	return ports.TokenSet{}, apperrors.ExternalAuth("no exchange scripted")
}

func (s *StubExchanger) Refresh(ctx context.Context, refreshToken string) (ports.TokenSet, error) {
	s.mu.Lock()
	s.refreshCalls++
	s.mu.Unlock()
	if s.RefreshFunc != nil {
		return s.RefreshFunc(ctx, refreshToken)
	}
	return ports.TokenSet{}, apperrors.TokenRefresh("no refresh scripted")
}

// ExchangeCalls returns how many times Exchange was invoked.
func (s *StubExchanger) ExchangeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exchangeCalls
}

// RefreshCalls returns how many times Refresh was invoked.
func (s *StubExchanger) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

// MemoryCredentialStore is an in-memory credential repository.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	creds map[string]model.Credential

	// GetErr/UpsertErr, when set, are returned by the respective call.
	GetErr    error
	UpsertErr error

	upserts []model.TokenUpdate
}

// NewMemoryCredentialStore creates an empty credential store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{creds: make(map[string]model.Credential)}
}

// Seed stores a credential directly, bypassing upsert semantics.
func (m *MemoryCredentialStore) Seed(cred model.Credential) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds[cred.ClientID] = cred
}

func (m *MemoryCredentialStore) Get(_ context.Context, clientID string) (*model.Credential, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cred, ok := m.creds[clientID]
	if !ok {
		return nil, apperrors.NotFound("credential not found")
	}
	out := cred
	return &out, nil
}

func (m *MemoryCredentialStore) Upsert(_ context.Context, upd model.TokenUpdate) error {
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts = append(m.upserts, upd)

	cred := m.creds[upd.ClientID]
	cred.ClientID = upd.ClientID
	cred.AccessToken = upd.AccessToken
	expiry := upd.TokenExpiry
	cred.TokenExpiry = &expiry
	if upd.RefreshToken != "" {
		cred.RefreshToken = upd.RefreshToken
	}
	m.creds[upd.ClientID] = cred
	return nil
}

// Upserts returns a copy of all recorded token updates, in order.
func (m *MemoryCredentialStore) Upserts() []model.TokenUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.TokenUpdate, len(m.upserts))
	copy(out, m.upserts)
	return out
}

// StubSearchConsole is a scriptable SearchConsole port.
type StubSearchConsole struct {
	PerformanceFunc func(ctx context.Context, accessToken, site string, rng model.DateRange) ([]model.SearchPerformanceRow, error)
	TopQueriesFunc  func(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchQueryRow, error)
	TopPagesFunc    func(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchPageRow, error)
}

func (s *StubSearchConsole) Performance(ctx context.Context, accessToken, site string, rng model.DateRange) ([]model.SearchPerformanceRow, error) {
	if s.PerformanceFunc != nil {
		return s.PerformanceFunc(ctx, accessToken, site, rng)
	}
	return nil, nil
}

func (s *StubSearchConsole) TopQueries(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchQueryRow, error) {
	if s.TopQueriesFunc != nil {
		return s.TopQueriesFunc(ctx, accessToken, site, rng, limit)
	}
	return nil, nil
}

func (s *StubSearchConsole) TopPages(ctx context.Context, accessToken, site string, rng model.DateRange, limit int) ([]model.SearchPageRow, error) {
	if s.TopPagesFunc != nil {
		return s.TopPagesFunc(ctx, accessToken, site, rng, limit)
	}
	return nil, nil
}

// StubAnalytics is a scriptable Analytics port.
type StubAnalytics struct {
	TrafficFunc  func(ctx context.Context, accessToken, propertyID string, rng model.DateRange) ([]model.TrafficRow, error)
	TopPagesFunc func(ctx context.Context, accessToken, propertyID string, rng model.DateRange, limit int) ([]model.AnalyticsPageRow, error)
}

func (s *StubAnalytics) Traffic(ctx context.Context, accessToken, propertyID string, rng model.DateRange) ([]model.TrafficRow, error) {
	if s.TrafficFunc != nil {
		return s.TrafficFunc(ctx, accessToken, propertyID, rng)
	}
	return nil, nil
}

func (s *StubAnalytics) TopPages(ctx context.Context, accessToken, propertyID string, rng model.DateRange, limit int) ([]model.AnalyticsPageRow, error) {
	if s.TopPagesFunc != nil {
		return s.TopPagesFunc(ctx, accessToken, propertyID, rng, limit)
	}
	return nil, nil
}
