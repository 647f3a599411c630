package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyfy/storefront/internal/storage/memstore"
	"github.com/trendyfy/storefront/internal/tokens"
)

func newTestAuthService() *AuthService {
	store := memstore.New()
	return &AuthService{Users: store.Users(), JWTSecret: []byte("test-jwt-secret")}
}

func TestAuthService_Signup_IssuesToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Signup(ctx, "jane@example.com", "hunter22", "Jane")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.Equal(t, "Jane", res.User.Name)
	assert.NotEqual(t, "hunter22", res.User.PasswordHash)

	claims, err := tokens.Parse(res.Token, svc.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		username string
	}{
		{name: "empty email", email: "", password: "hunter22", username: "Jane"},
		{name: "empty password", email: "jane@example.com", password: "", username: "Jane"},
		{name: "empty name", email: "jane@example.com", password: "hunter22", username: ""},
		{name: "short password", email: "jane@example.com", password: "abc", username: "Jane"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Signup(ctx, tt.email, tt.password, tt.username)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@example.com", "hunter22", "Jane")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "jane@example.com", "other-password", "Janet")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@example.com", "hunter22", "Jane")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "jane@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "Jane", res.User.Name)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@example.com", "hunter22", "Jane")
	require.NoError(t, err)

	// unknown email and wrong password must be indistinguishable
	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "jane@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
