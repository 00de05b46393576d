package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdesk/jobdesk/internal/adapters/authroles"
	domainauth "github.com/jobdesk/jobdesk/internal/domain/auth"
	authmocks "github.com/jobdesk/jobdesk/internal/mocks/auth"
	"github.com/jobdesk/jobdesk/internal/ports"
)

func newAuthService() (*authmocks.MockAuthProvider, *authmocks.MemorySessionStore, *AuthService) {
	provider := authmocks.NewMockAuthProvider()
	sessions := authmocks.NewMemorySessionStore()
	service := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
		Roles:    authroles.StaticRoleMapper{AdminGroup: "admins", UserGroup: "users"},
	})
	return provider, sessions, service
}

func TestAuthService_BeginLogin_Success(t *testing.T) {
	t.Parallel()
	_, _, service := newAuthService()

	result, err := service.BeginLogin(context.Background(), "https://jobdesk.example.com/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.NotEmpty(t, result.State)
	assert.NotEmpty(t, result.Nonce)
}

func TestAuthService_BeginLogin_MissingRedirect(t *testing.T) {
	t.Parallel()
	_, _, service := newAuthService()

	_, err := service.BeginLogin(context.Background(), "")
	require.Error(t, err)
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	t.Parallel()
	_, sessions, service := newAuthService()

	session, err := service.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code-1",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "mock-admin-1", session.UserID)
	assert.Equal(t, domainauth.RoleAdmin, session.Role)

	// The session must be retrievable through the store.
	stored, err := sessions.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, stored.UserID)
}

func TestAuthService_CompleteLogin_MapsNonAdminGroupsToGuest(t *testing.T) {
	t.Parallel()
	provider, _, service := newAuthService()

	provider.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{
			UserID:    "user-2",
			Email:     "user2@example.com",
			Groups:    []string{"contractors"},
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}

	session, err := service.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code-1",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleGuest, session.Role)
	assert.False(t, session.IsAdmin())
}

func TestAuthService_CompleteLogin_MissingParams(t *testing.T) {
	t.Parallel()
	_, _, service := newAuthService()

	_, err := service.CompleteLogin(context.Background(), CompleteLoginInput{State: "s", Nonce: "n"})
	require.Error(t, err)

	_, err = service.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", Nonce: "n"})
	require.Error(t, err)

	_, err = service.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s"})
	require.Error(t, err)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	t.Parallel()
	_, sessions, service := newAuthService()

	expired := domainauth.Session{
		ID:        "expired-session",
		UserID:    "user-1",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, sessions.Save(context.Background(), expired))

	_, err := service.GetSession(context.Background(), "expired-session")
	require.ErrorIs(t, err, ErrSessionExpired)

	// Expired sessions are removed on read.
	_, err = sessions.Get(context.Background(), "expired-session")
	require.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	_, sessions, service := newAuthService()

	sess := domainauth.Session{
		ID:        "live-session",
		UserID:    "user-1",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(context.Background(), sess))

	require.NoError(t, service.Logout(context.Background(), "live-session"))
	_, err := sessions.Get(context.Background(), "live-session")
	require.Error(t, err)

	// Logging out with no session is a no-op.
	require.NoError(t, service.Logout(context.Background(), ""))
}
