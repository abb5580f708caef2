package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/seopulse/seopulse-api/internal/adapters/sessiontoken"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/mocks"
	mockauth "github.com/seopulse/seopulse-api/internal/mocks/auth"
	"github.com/seopulse/seopulse-api/internal/ports"
)

const testPassword = "correct horse battery staple"

func testCodec(t *testing.T) ports.SessionCodec {
	t.Helper()
	codec, err := sessiontoken.New([]byte("test-secret-test-secret-test-secret!"), time.Hour)
	require.NoError(t, err)
	return codec
}

func testUser(t *testing.T) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           "user-1",
		Email:        "staff@agency.com",
		Name:         "Agency Staff",
		PasswordHash: string(hash),
		Role:         "user",
	}
}

func TestAuthService_LoginWithCredentials_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), "staff@agency.com").Return(testUser(t), nil)

	svc := NewAuthService(AuthServiceOptions{
		Users:      users,
		Codec:      testCodec(t),
		Revocation: mockauth.NewMemoryRevocationStore(),
	})

	result, err := svc.LoginWithCredentials(context.Background(), "staff@agency.com", testPassword)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "user-1", result.Session.UserID)
	assert.Equal(t, domainauth.RoleUser, result.Session.Role)

	// The issued token must round-trip through GetSession.
	sess := svc.GetSession(context.Background(), result.Token)
	require.NotNil(t, sess)
	assert.Equal(t, "user-1", sess.UserID)
}

func TestAuthService_LoginWithCredentials_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), "staff@agency.com").Return(testUser(t), nil)

	svc := NewAuthService(AuthServiceOptions{Users: users, Codec: testCodec(t)})

	_, err := svc.LoginWithCredentials(context.Background(), "staff@agency.com", "wrong")

	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestAuthService_LoginWithCredentials_UnknownEmailIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), "nobody@agency.com").
		Return(nil, apperrors.NotFound("user not found"))

	svc := NewAuthService(AuthServiceOptions{Users: users, Codec: testCodec(t)})

	_, err := svc.LoginWithCredentials(context.Background(), "nobody@agency.com", testPassword)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	// Same message as the wrong-password case; no account enumeration.
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(testUser(t), nil)

	revocation := mockauth.NewMemoryRevocationStore()
	svc := NewAuthService(AuthServiceOptions{
		Users:      users,
		Codec:      testCodec(t),
		Revocation: revocation,
	})

	result, err := svc.LoginWithCredentials(context.Background(), "staff@agency.com", testPassword)
	require.NoError(t, err)
	require.NotNil(t, svc.GetSession(context.Background(), result.Token))

	require.NoError(t, svc.Logout(context.Background(), &result.Session))

	// The token itself is still valid JWT but the jti is revoked.
	assert.Nil(t, svc.GetSession(context.Background(), result.Token))
}

func TestAuthService_GetSession_FailsClosedOnRevocationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(testUser(t), nil)

	revocation := mockauth.NewMemoryRevocationStore()
	svc := NewAuthService(AuthServiceOptions{
		Users:      users,
		Codec:      testCodec(t),
		Revocation: revocation,
	})

	result, err := svc.LoginWithCredentials(context.Background(), "staff@agency.com", testPassword)
	require.NoError(t, err)

	revocation.Err = assert.AnError

	assert.Nil(t, svc.GetSession(context.Background(), result.Token))
}

func TestAuthService_GetSession_GarbageToken(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{Codec: testCodec(t)})

	assert.Nil(t, svc.GetSession(context.Background(), ""))
	assert.Nil(t, svc.GetSession(context.Background(), "not-a-jwt"))
}

func TestAuthService_CompleteSSOLogin_MapsGroupsToRole(t *testing.T) {
	provider := mockauth.NewMockAuthProvider()
	provider.DefaultIdentity = domainauth.Identity{
		UserID: "sso-user-1",
		Name:   "SSO Admin",
		Email:  "admin@agency.com",
		Groups: []string{"seo-admins"},
	}

	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Roles:    mockauth.StaticRoleMapper{AdminGroup: "seo-admins"},
		Codec:    testCodec(t),
	})

	result, err := svc.CompleteSSOLogin(context.Background(), CompleteSSOLoginInput{
		Code:  "code-1",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
}

func TestAuthService_CompleteSSOLogin_NotConfigured(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{Codec: testCodec(t)})

	_, err := svc.CompleteSSOLogin(context.Background(), CompleteSSOLoginInput{Code: "c", State: "s"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sso login is not configured")
}

func TestAuthService_CompleteSSOLogin_ExchangeRejected(t *testing.T) {
	provider := mockauth.NewMockAuthProvider()
	provider.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, assert.AnError
	}

	svc := NewAuthService(AuthServiceOptions{Provider: provider, Codec: testCodec(t)})

	_, err := svc.CompleteSSOLogin(context.Background(), CompleteSSOLoginInput{Code: "bad", State: "s"})

	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserRequest, hash string) (*model.User, error) {
			assert.NotEqual(t, req.Password, hash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)))
			return &model.User{ID: "user-2", Email: req.Email}, nil
		})

	svc := NewAuthService(AuthServiceOptions{Users: users, Codec: testCodec(t)})

	user, err := svc.RegisterUser(context.Background(), &model.CreateUserRequest{
		Email:    "new@agency.com",
		Name:     "New Staff",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-2", user.ID)
}

func TestAuthService_RegisterUser_RejectsShortPassword(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{Codec: testCodec(t)})

	_, err := svc.RegisterUser(context.Background(), &model.CreateUserRequest{
		Email:    "new@agency.com",
		Name:     "New Staff",
		Password: "short",
	})

	assert.True(t, apperrors.IsValidation(err))
}
