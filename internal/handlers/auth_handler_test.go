package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"lciportal_backend/internal/middleware"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/internal/validator"
	"lciportal_backend/pkg/apperrors"
)

type stubAuthService struct {
	registered *dto.RegisterRequest
	loginErr   error
}

func (s *stubAuthService) Register(_ *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	s.registered = req
	return &dto.AuthResponse{
		Message: "Registration successful",
		Token:   "token-123",
		User:    dto.UserResponse{Email: req.Email},
	}, nil
}

func (s *stubAuthService) Login(_ *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   "token-123",
		User:    dto.UserResponse{Email: req.Email},
	}, nil
}

func newAuthTestRouter(t *testing.T, svc *stubAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.DBMiddleware(&gorm.DB{}))

	h := NewAuthHandler(NewBaseHandler(validator.New()), svc)
	h.RegisterRoutes(r.Group(""))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	r := newAuthTestRouter(t, svc)

	w := postJSON(r, "/auth/register",
		`{"fullName":"Jane Doe","email":"jane@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "token-123")
	assert.Equal(t, "jane@example.com", svc.registered.Email)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	t.Parallel()

	r := newAuthTestRouter(t, &stubAuthService{})

	// Password below the minimum length.
	w := postJSON(r, "/auth/register",
		`{"fullName":"Jane Doe","email":"jane@example.com","password":"abc"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{loginErr: apperrors.ErrInvalidCredentials}
	r := newAuthTestRouter(t, svc)

	w := postJSON(r, "/auth/login",
		`{"email":"jane@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	r := newAuthTestRouter(t, &stubAuthService{})

	w := postJSON(r, "/auth/login",
		`{"email":"jane@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful")
}
