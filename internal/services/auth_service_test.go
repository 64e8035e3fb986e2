package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/pkg/apperrors"
)

func newAuthTestService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, auth.NewTokenManager("test-secret", time.Hour))
}

func TestRegister_AutoApproves(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthTestService(repo)

	resp, err := svc.Register(nil, &dto.RegisterRequest{
		FullName: "Jane Client",
		Email:    "Jane@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "client", resp.User.Role)
	assert.Equal(t, "approved", resp.User.Status)
	require.NotNil(t, resp.User.ApprovedAt)

	// Stored hash never equals the raw password and never leaks.
	stored, err := repo.FindByEmail(nil, "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthTestService(repo)

	req := &dto.RegisterRequest{FullName: "Jane", Email: "jane@example.com", Password: "secret123"}
	_, err := svc.Register(nil, req)
	require.NoError(t, err)

	// Same address in different case still collides.
	req2 := &dto.RegisterRequest{FullName: "Jane Again", Email: "JANE@example.com", Password: "secret123"}
	_, err = svc.Register(nil, req2)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeEmailAlreadyExists, appErrCode(t, err))
}

func TestLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthTestService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{
		FullName: "Jane Client",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(nil, &dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthTestService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{
		FullName: "Jane Client",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error code, so a
	// caller cannot probe which addresses are registered.
	_, err = svc.Login(nil, &dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErrCode(t, err))

	_, err = svc.Login(nil, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErrCode(t, err))
}

func TestLogin_StatusDoesNotGateLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthTestService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{
		FullName: "Jane Client",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Even a rejected account can still sign in; moderation status only
	// affects what admins show, not authentication.
	stored, err := repo.FindByEmail(nil, "jane@example.com")
	require.NoError(t, err)
	repo.users[stored.ID].Status = models.UserStatusRejected

	resp, err := svc.Login(nil, &dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
