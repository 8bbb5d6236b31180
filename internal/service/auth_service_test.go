package service

import (
	"context"
	"testing"

	"technomaster/internal/kv"
	"technomaster/internal/model"
	"technomaster/internal/repository"
	"technomaster/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	store    *kv.MemoryStore
	users    repository.UserRepository
	sessions repository.SessionRepository
	jwtUtil  *utils.JWTUtil
	svc      AuthService
}

func newAuthFixture(t *testing.T, verifier PasswordVerifier) *authFixture {
	t.Helper()
	store := kv.NewMemoryStore()
	f := &authFixture{
		store:    store,
		users:    repository.NewUserRepository(store),
		sessions: repository.NewSessionRepository(store),
		jwtUtil:  utils.NewJWTUtil("secret", 1),
	}
	f.svc = NewAuthService(f.users, f.sessions, verifier, f.jwtUtil,
		AdminCredentials{Username: "admin", Password: "admin123"}, zap.NewNop())
	return f
}

func TestAuthService_RegisterStartsSession(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})

	user, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	current, err := f.svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, *user, *current)

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthService_RegisterDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})

	_, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw")
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, "Other", "+998901112233", "other@example.com", "pw")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	users, _ := f.users.List(ctx)
	assert.Len(t, users, 1, "no record is created on duplicate")
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})

	_, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw")
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, "Other", "+998909999999", "ali@example.com", "pw")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestAuthService_RegisterDistinctUsers(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})

	a, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw")
	require.NoError(t, err)
	b, err := f.svc.Register(ctx, "Vali", "+998904445566", "vali@example.com", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	current, err := f.svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, current.ID)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})
	registered, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx))

	tests := []struct {
		name       string
		identifier string
		password   string
		ok         bool
	}{
		{"phone", "+998901112233", "pw1", true},
		{"email", "ali@example.com", "pw1", true},
		{"wrong password", "ali@example.com", "pw2", false},
		{"unknown identifier", "nobody@example.com", "pw1", false},
		{"password as identifier", "pw1", "pw1", false},
		{"name is not an identifier", "Ali", "pw1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := f.svc.Login(ctx, tt.identifier, tt.password)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, registered.ID, user.ID)
				return
			}
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_LoginFailureKeepsSessionUntouched(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})
	_, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx))

	_, err = f.svc.Login(ctx, "ali@example.com", "bad")
	require.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = f.svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, repository.ErrNoSession)
}

func TestAuthService_LoginFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})
	// Rows written directly can break the uniqueness rule; login takes the first match.
	require.NoError(t, f.users.Create(ctx, &model.User{ID: "first", Phone: "1", Email: "a@x", Password: "pw"}))
	require.NoError(t, f.users.Create(ctx, &model.User{ID: "second", Phone: "2", Email: "1", Password: "pw"}))

	user, err := f.svc.Login(ctx, "1", "pw")
	require.NoError(t, err)
	assert.Equal(t, "first", user.ID)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})
	_, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx))

	_, err = f.svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, repository.ErrNoSession)
}

func TestAuthService_BcryptVerifier(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, BcryptVerifier{})

	user, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", user.Password)

	_, err = f.svc.Login(ctx, "+998901112233", "pw1")
	assert.NoError(t, err)
	_, err = f.svc.Login(ctx, "+998901112233", "pw2")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_AdminLogin(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})

	token, err := f.svc.AdminLogin(ctx, "admin", "admin123")
	require.NoError(t, err)
	claims, err := f.jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Username)

	_, err = f.svc.AdminLogin(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, err = f.svc.AdminLogin(ctx, "root", "admin123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_CustomerToken(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, PlainVerifier{})

	user, err := f.svc.Register(ctx, "Ali", "+998901112233", "ali@example.com", "pw")
	require.NoError(t, err)

	token, err := f.svc.CustomerToken(user)
	require.NoError(t, err)
	claims, err := f.jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, model.RoleCustomer, claims.Role)
}

func TestNewPasswordVerifier(t *testing.T) {
	v, err := NewPasswordVerifier("")
	require.NoError(t, err)
	assert.IsType(t, PlainVerifier{}, v)

	v, err = NewPasswordVerifier("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, BcryptVerifier{}, v)

	_, err = NewPasswordVerifier("md5")
	assert.Error(t, err)
}
