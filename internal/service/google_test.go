package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/mocks"
	mockgoogle "github.com/seopulse/seopulse-api/internal/mocks/google"
	"github.com/seopulse/seopulse-api/internal/ports"
)

const testGoogleClientID = "client-1"

var googleTestNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func ownerSession() *domainauth.Session {
	return &domainauth.Session{UserID: "owner-1", Role: domainauth.RoleUser}
}

func testClient() *model.Client {
	return &model.Client{ID: testGoogleClientID, Name: "Acme", Domain: "acme.com", OwnerID: "owner-1"}
}

func newTestGoogleService(clients *mocks.MockClientRepository, creds *mockgoogle.MemoryCredentialStore, ex *mockgoogle.StubExchanger) *GoogleService {
	return NewGoogleService(GoogleServiceOptions{
		Clients:     clients,
		Credentials: creds,
		Exchanger:   ex,
		Now:         func() time.Time { return googleTestNow },
	})
}

func TestGoogleService_AuthorizationURL_ClientIDRidesAsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := newTestGoogleService(clients, mockgoogle.NewMemoryCredentialStore(), &mockgoogle.StubExchanger{})

	url, err := svc.AuthorizationURL(context.Background(), ownerSession(), testGoogleClientID)

	require.NoError(t, err)
	assert.Contains(t, url, "state="+testGoogleClientID)
}

func TestGoogleService_AuthorizationURL_NonOwnerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	svc := newTestGoogleService(clients, mockgoogle.NewMemoryCredentialStore(), &mockgoogle.StubExchanger{})
	stranger := &domainauth.Session{UserID: "somebody-else", Role: domainauth.RoleUser}

	_, err := svc.AuthorizationURL(context.Background(), stranger, testGoogleClientID)

	assert.True(t, apperrors.IsForbidden(err))
}

func TestGoogleService_CompleteConnection_PersistsTokenSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	creds := mockgoogle.NewMemoryCredentialStore()
	expiry := googleTestNow.Add(time.Hour)
	ex := &mockgoogle.StubExchanger{
		ExchangeFunc: func(_ context.Context, code string) (ports.TokenSet, error) {
			assert.Equal(t, "auth-code", code)
			return ports.TokenSet{AccessToken: "at-1", RefreshToken: "rt-1", Expiry: expiry}, nil
		},
	}
	svc := newTestGoogleService(clients, creds, ex)

	err := svc.CompleteConnection(context.Background(), ownerSession(), testGoogleClientID, "auth-code")

	require.NoError(t, err)
	upserts := creds.Upserts()
	require.Len(t, upserts, 1)
	assert.Equal(t, testGoogleClientID, upserts[0].ClientID)
	assert.Equal(t, "at-1", upserts[0].AccessToken)
	assert.Equal(t, "rt-1", upserts[0].RefreshToken)
	assert.Equal(t, expiry, upserts[0].TokenExpiry)
}

func TestGoogleService_CompleteConnection_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil)

	creds := mockgoogle.NewMemoryCredentialStore()
	ex := &mockgoogle.StubExchanger{}
	svc := newTestGoogleService(clients, creds, ex)

	err := svc.CompleteConnection(context.Background(), ownerSession(), testGoogleClientID, "")

	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, ex.ExchangeCalls())
	assert.Empty(t, creds.Upserts())
}

func TestGoogleService_Connected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	clients.EXPECT().GetByID(gomock.Any(), testGoogleClientID).Return(testClient(), nil).Times(2)

	creds := mockgoogle.NewMemoryCredentialStore()
	svc := newTestGoogleService(clients, creds, &mockgoogle.StubExchanger{})
	ctx := context.Background()

	connected, err := svc.Connected(ctx, ownerSession(), testGoogleClientID)
	require.NoError(t, err)
	assert.False(t, connected)

	creds.Seed(model.Credential{ClientID: testGoogleClientID, RefreshToken: "rt-1"})

	connected, err = svc.Connected(ctx, ownerSession(), testGoogleClientID)
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestGoogleService_AccessToken_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	svc := newTestGoogleService(clients, mockgoogle.NewMemoryCredentialStore(), &mockgoogle.StubExchanger{})

	_, err := svc.AccessToken(context.Background(), testGoogleClientID)

	assert.True(t, apperrors.IsNotConnected(err))
}

func TestGoogleService_AccessToken_ValidTokenSkipsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	creds := mockgoogle.NewMemoryCredentialStore()
	expiry := googleTestNow.Add(time.Hour)
	creds.Seed(model.Credential{
		ClientID:     testGoogleClientID,
		RefreshToken: "rt-1",
		AccessToken:  "at-stored",
		TokenExpiry:  &expiry,
	})
	ex := &mockgoogle.StubExchanger{}
	svc := newTestGoogleService(clients, creds, ex)

	token, err := svc.AccessToken(context.Background(), testGoogleClientID)

	require.NoError(t, err)
	assert.Equal(t, "at-stored", token)
	assert.Zero(t, ex.RefreshCalls())
	assert.Empty(t, creds.Upserts())
}

func TestGoogleService_AccessToken_ExpiredTokenRefreshesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	creds := mockgoogle.NewMemoryCredentialStore()
	stale := googleTestNow.Add(-time.Hour)
	creds.Seed(model.Credential{
		ClientID:     testGoogleClientID,
		RefreshToken: "rt-stored",
		AccessToken:  "at-stale",
		TokenExpiry:  &stale,
	})
	ex := &mockgoogle.StubExchanger{
		RefreshFunc: func(_ context.Context, refreshToken string) (ports.TokenSet, error) {
			assert.Equal(t, "rt-stored", refreshToken)
			// Provider did not rotate the refresh token.
			return ports.TokenSet{AccessToken: "at-fresh", Expiry: googleTestNow.Add(time.Hour)}, nil
		},
	}
	svc := newTestGoogleService(clients, creds, ex)

	token, err := svc.AccessToken(context.Background(), testGoogleClientID)

	require.NoError(t, err)
	assert.Equal(t, "at-fresh", token)
	assert.Equal(t, 1, ex.RefreshCalls())

	upserts := creds.Upserts()
	require.Len(t, upserts, 1)
	assert.Equal(t, "at-fresh", upserts[0].AccessToken)

	// An empty refresh token in the update must not clobber the stored one.
	cred, err := creds.Get(context.Background(), testGoogleClientID)
	require.NoError(t, err)
	assert.Equal(t, "rt-stored", cred.RefreshToken)
}

func TestGoogleService_AccessToken_RefreshFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	creds := mockgoogle.NewMemoryCredentialStore()
	creds.Seed(model.Credential{ClientID: testGoogleClientID, RefreshToken: "rt-revoked"})
	ex := &mockgoogle.StubExchanger{
		RefreshFunc: func(_ context.Context, _ string) (ports.TokenSet, error) {
			return ports.TokenSet{}, apperrors.TokenRefresh("refresh token rejected")
		},
	}
	svc := newTestGoogleService(clients, creds, ex)

	_, err := svc.AccessToken(context.Background(), testGoogleClientID)

	assert.True(t, apperrors.IsTokenRefresh(err))
	assert.Empty(t, creds.Upserts())
}

func TestGoogleService_AccessToken_ConcurrentRefreshCollapses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	creds := mockgoogle.NewMemoryCredentialStore()
	creds.Seed(model.Credential{ClientID: testGoogleClientID, RefreshToken: "rt-stored"})
	ex := &mockgoogle.StubExchanger{
		RefreshFunc: func(_ context.Context, _ string) (ports.TokenSet, error) {
			// Hold the flight open long enough for every caller to queue on it.
			time.Sleep(50 * time.Millisecond)
			return ports.TokenSet{AccessToken: "at-fresh", Expiry: googleTestNow.Add(time.Hour)}, nil
		},
	}
	svc := newTestGoogleService(clients, creds, ex)

	const callers = 8
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = svc.AccessToken(context.Background(), testGoogleClientID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "at-fresh", tokens[i])
	}
	assert.Equal(t, 1, ex.RefreshCalls())
	assert.Len(t, creds.Upserts(), 1)
}

func TestGoogleService_AccessToken_RefreshReusesResultCachedMidFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mocks.NewMockClientRepository(ctrl)
	creds := mockgoogle.NewMemoryCredentialStore()
	// A refresh that completed between the staleness check and the flight
	// leaves a valid token behind; the flight must reuse it.
	expiry := googleTestNow.Add(time.Hour)
	creds.Seed(model.Credential{
		ClientID:     testGoogleClientID,
		RefreshToken: "rt-stored",
		AccessToken:  "at-already-fresh",
		TokenExpiry:  &expiry,
	})
	ex := &mockgoogle.StubExchanger{}
	svc := newTestGoogleService(clients, creds, ex)

	token, err := svc.refresh(context.Background(), testGoogleClientID)

	require.NoError(t, err)
	assert.Equal(t, "at-already-fresh", token)
	assert.Zero(t, ex.RefreshCalls())
}
