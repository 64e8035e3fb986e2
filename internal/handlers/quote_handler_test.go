package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/middleware"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/internal/validator"
	"lciportal_backend/pkg/apperrors"
)

// stubQuoteService records the arguments it was called with and returns
// canned data.
type stubQuoteService struct {
	listByRequesterEmail string
	created              *dto.CreateQuoteRequest
	acceptPrincipal      *auth.Principal
}

func (s *stubQuoteService) Create(_ context.Context, _ *gorm.DB, req *dto.CreateQuoteRequest, _ *multipart.Form) (*models.Quote, error) {
	s.created = req
	return &models.Quote{
		BaseModel: models.BaseModel{ID: "quote-1"},
		Status:    models.QuoteStatusPending,
	}, nil
}

func (s *stubQuoteService) ListAll(_ *gorm.DB) ([]models.Quote, error) {
	return []models.Quote{{BaseModel: models.BaseModel{ID: "quote-1"}}}, nil
}

func (s *stubQuoteService) ListByRequester(_ *gorm.DB, email string) ([]models.Quote, error) {
	s.listByRequesterEmail = email
	return []models.Quote{{BaseModel: models.BaseModel{ID: "quote-1"}, Email: email}}, nil
}

func (s *stubQuoteService) AdminReply(_ context.Context, _ *gorm.DB, id string, _ *dto.UpdateQuoteStatusRequest, _ *multipart.Form) (*models.Quote, error) {
	if id == "missing" {
		return nil, apperrors.ErrQuoteNotFound
	}
	return &models.Quote{BaseModel: models.BaseModel{ID: id}, Status: models.QuoteStatusQuoted}, nil
}

func (s *stubQuoteService) Accept(_ context.Context, _ *gorm.DB, principal *auth.Principal, id string, _ *multipart.Form) (*models.Quote, error) {
	s.acceptPrincipal = principal
	return &models.Quote{BaseModel: models.BaseModel{ID: id}, Status: models.QuoteStatusAccepted}, nil
}

func (s *stubQuoteService) Decline(_ *gorm.DB, _ *auth.Principal, id string) (*models.Quote, error) {
	return &models.Quote{BaseModel: models.BaseModel{ID: id}, Status: models.QuoteStatusDeclined}, nil
}

// injectPrincipal stands in for the auth middleware in handler tests.
func injectPrincipal(p *auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p != nil {
			c.Set(middleware.PrincipalKey, p)
		}
		c.Next()
	}
}

func newQuoteTestRouter(t *testing.T, svc *stubQuoteService, principal *auth.Principal) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.DBMiddleware(&gorm.DB{}))

	base := NewBaseHandler(validator.New())
	h := NewQuoteHandler(base, svc)
	h.RegisterRoutes(r.Group(""), injectPrincipal(principal), middleware.AdminMiddleware())
	return r
}

func TestQuoteHandler_Create(t *testing.T) {
	t.Parallel()

	svc := &stubQuoteService{}
	r := newQuoteTestRouter(t, svc, nil)

	form := "fullName=Jane&email=jane%40example.com&service=translation" +
		"&documentType=contract&sourceLanguage=en&targetLanguage=fr&urgency=standard"
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "quote-1")
	require.NotNil(t, svc.created)
	assert.Equal(t, "translation", svc.created.Service)
}

func TestQuoteHandler_Create_ValidationFailure(t *testing.T) {
	t.Parallel()

	r := newQuoteTestRouter(t, &stubQuoteService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader("fullName=Jane"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestQuoteHandler_ListMine_UsesPrincipalEmail(t *testing.T) {
	t.Parallel()

	svc := &stubQuoteService{}
	principal := &auth.Principal{ID: "user-1", Email: "jane@example.com", Role: models.UserRoleClient}
	r := newQuoteTestRouter(t, svc, principal)

	// A query parameter must never override the principal's identity.
	req := httptest.NewRequest(http.MethodGet, "/quotes/mine?email=other@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane@example.com", svc.listByRequesterEmail)
}

func TestQuoteHandler_ListAll_AdminOnly(t *testing.T) {
	t.Parallel()

	client := &auth.Principal{ID: "user-1", Email: "jane@example.com", Role: models.UserRoleClient}
	r := newQuoteTestRouter(t, &stubQuoteService{}, client)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := &auth.Principal{ID: "admin", Email: "admin@lcirwanda.com", Role: models.UserRoleAdmin}
	r = newQuoteTestRouter(t, &stubQuoteService{}, admin)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQuoteHandler_Reply_NotFound(t *testing.T) {
	t.Parallel()

	admin := &auth.Principal{ID: "admin", Email: "admin@lcirwanda.com", Role: models.UserRoleAdmin}
	r := newQuoteTestRouter(t, &stubQuoteService{}, admin)

	req := httptest.NewRequest(http.MethodPut, "/quotes/missing/status", strings.NewReader("adminReply=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "QUOTE_NOT_FOUND")
}

func TestQuoteHandler_Accept_PassesPrincipal(t *testing.T) {
	t.Parallel()

	svc := &stubQuoteService{}
	principal := &auth.Principal{ID: "user-1", Email: "jane@example.com", Role: models.UserRoleClient}
	r := newQuoteTestRouter(t, svc, principal)

	req := httptest.NewRequest(http.MethodPut, "/quotes/quote-1/accept", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.acceptPrincipal)
	assert.Equal(t, "jane@example.com", svc.acceptPrincipal.Email)
}

func TestQuoteHandler_Accept_Unauthenticated(t *testing.T) {
	t.Parallel()

	r := newQuoteTestRouter(t, &stubQuoteService{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/quotes/quote-1/accept", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
