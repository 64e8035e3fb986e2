package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/email"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/pkg/apperrors"
)

// fakeQuoteRepo is an in-memory stand-in that mirrors the repository's
// merge-update semantics.
type fakeQuoteRepo struct {
	quotes map[string]*models.Quote
	seq    int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*models.Quote)}
}

func (r *fakeQuoteRepo) Create(_ *gorm.DB, quote *models.Quote) error {
	r.seq++
	if quote.ID == "" {
		quote.ID = fmt.Sprintf("quote-%d", r.seq)
	}
	quote.CreatedAt = time.Now()
	copied := *quote
	r.quotes[quote.ID] = &copied
	return nil
}

func (r *fakeQuoteRepo) FindByID(_ *gorm.DB, id string) (*models.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, repositories.ErrQuoteNotFound
	}
	copied := *quote
	return &copied, nil
}

func (r *fakeQuoteRepo) FindAll(_ *gorm.DB) ([]models.Quote, error) {
	out := make([]models.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, *q)
	}
	return out, nil
}

func (r *fakeQuoteRepo) FindByEmail(_ *gorm.DB, email string) ([]models.Quote, error) {
	var out []models.Quote
	for _, q := range r.quotes {
		if q.Email == email {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) UpdateFields(_ *gorm.DB, id string, fields map[string]interface{}) (*models.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, repositories.ErrQuoteNotFound
	}
	for key, val := range fields {
		switch key {
		case "status":
			quote.Status = val.(models.QuoteStatus)
		case "admin_reply":
			quote.AdminReply = val.(string)
		case "price":
			quote.Price = val.(string)
		case "estimated_time":
			quote.EstimatedTime = val.(string)
		case "reply_files":
			quote.ReplyFiles = val.(datatypes.JSONSlice[string])
		case "payment_screenshot":
			quote.PaymentScreenshot = val.(string)
		case "replied_at":
			quote.RepliedAt = val.(*time.Time)
		case "accepted_at":
			quote.AcceptedAt = val.(*time.Time)
		case "declined_at":
			quote.DeclinedAt = val.(*time.Time)
		}
	}
	copied := *quote
	return &copied, nil
}

func newQuoteTestService(t *testing.T, repo *fakeQuoteRepo) QuoteService {
	t.Helper()
	return NewQuoteService(repo, newTestAttachments(t), &email.NoopProvider{})
}

func validQuoteRequest() *dto.CreateQuoteRequest {
	return &dto.CreateQuoteRequest{
		FullName:       "Jane Client",
		Email:          "Jane@Example.com",
		Phone:          "+250788000000",
		Service:        "translation",
		DocumentType:   "contract",
		SourceLanguage: "en",
		TargetLanguage: "fr",
		WordCount:      1200,
		Urgency:        "standard",
	}
}

func clientPrincipal(email string) *auth.Principal {
	return &auth.Principal{
		ID:    "user-1",
		Email: email,
		Role:  models.UserRoleClient,
	}
}

func appErrCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestQuoteCreate(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, models.QuoteStatusPending, quote.Status)
	assert.Equal(t, "jane@example.com", quote.Email)
	assert.Equal(t, models.UrgencyStandard, quote.Urgency)
	assert.Empty(t, quote.Files)
}

func TestQuoteCreate_LegacyUrgency(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	req := validQuoteRequest()
	req.Urgency = "rush"

	quote, err := svc.Create(context.Background(), nil, req, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyVeryUrgent, quote.Urgency)
}

func TestQuoteCreate_InvalidService(t *testing.T) {
	t.Parallel()

	svc := newQuoteTestService(t, newFakeQuoteRepo())

	req := validQuoteRequest()
	req.Service = "plumbing"

	_, err := svc.Create(context.Background(), nil, req, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidService, appErrCode(t, err))
}

func TestQuoteCreate_InvalidUrgency(t *testing.T) {
	t.Parallel()

	svc := newQuoteTestService(t, newFakeQuoteRepo())

	req := validQuoteRequest()
	req.Urgency = "tomorrow"

	_, err := svc.Create(context.Background(), nil, req, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidUrgency, appErrCode(t, err))
}

func TestQuoteAdminReply_PriceAdvancesToQuoted(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)

	updated, err := svc.AdminReply(context.Background(), nil, quote.ID, &dto.UpdateQuoteStatusRequest{
		AdminReply: "Here is your quotation",
		Price:      "25 USD",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.QuoteStatusQuoted, updated.Status)
	assert.Equal(t, "25 USD", updated.Price)
	assert.Equal(t, "Here is your quotation", updated.AdminReply)
	require.NotNil(t, updated.RepliedAt)
}

func TestQuoteAdminReply_ExplicitStatusWins(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)

	updated, err := svc.AdminReply(context.Background(), nil, quote.ID, &dto.UpdateQuoteStatusRequest{
		Status: "inProgress",
		Price:  "40 USD",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusInProgress, updated.Status)
}

func TestQuoteAdminReply_InvalidStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)

	_, err = svc.AdminReply(context.Background(), nil, quote.ID, &dto.UpdateQuoteStatusRequest{
		Status: "paused",
	}, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErrCode(t, err))
}

func TestQuoteAdminReply_NotFound(t *testing.T) {
	t.Parallel()

	svc := newQuoteTestService(t, newFakeQuoteRepo())

	_, err := svc.AdminReply(context.Background(), nil, "missing", &dto.UpdateQuoteStatusRequest{
		AdminReply: "hello",
	}, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeQuoteNotFound, appErrCode(t, err))
}

func TestQuoteAccept_AfterQuotation(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	req := validQuoteRequest()
	quote, err := svc.Create(context.Background(), nil, req, nil)
	require.NoError(t, err)

	// Seed a payment proof as if it was uploaded at submission.
	repo.quotes[quote.ID].PaymentScreenshot = "/uploads/pay.png"

	_, err = svc.AdminReply(context.Background(), nil, quote.ID, &dto.UpdateQuoteStatusRequest{Price: "25 USD"}, nil)
	require.NoError(t, err)

	accepted, err := svc.Accept(context.Background(), nil, clientPrincipal("jane@example.com"), quote.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusAccepted, accepted.Status)
	require.NotNil(t, accepted.AcceptedAt)
}

func TestQuoteAccept_RequiresQuotedState(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)
	repo.quotes[quote.ID].PaymentScreenshot = "/uploads/pay.png"

	// Still pending: no offer on the table yet.
	_, err = svc.Accept(context.Background(), nil, clientPrincipal("jane@example.com"), quote.ID, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeTransitionNotAllowed, appErrCode(t, err))
}

func TestQuoteAccept_RequiresPaymentProof(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)

	_, err = svc.AdminReply(context.Background(), nil, quote.ID, &dto.UpdateQuoteStatusRequest{Price: "25 USD"}, nil)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), nil, clientPrincipal("jane@example.com"), quote.ID, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePaymentProofRequired, appErrCode(t, err))
}

func TestQuoteAccept_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)
	repo.quotes[quote.ID].PaymentScreenshot = "/uploads/pay.png"

	_, err = svc.AdminReply(context.Background(), nil, quote.ID, &dto.UpdateQuoteStatusRequest{Price: "25 USD"}, nil)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), nil, clientPrincipal("other@example.com"), quote.ID, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, appErrCode(t, err))
}

func TestQuoteDecline_AfterQuotation(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	quote, err := svc.Create(context.Background(), nil, validQuoteRequest(), nil)
	require.NoError(t, err)

	_, err = svc.AdminReply(context.Background(), nil, quote.ID, &dto.UpdateQuoteStatusRequest{Price: "25 USD"}, nil)
	require.NoError(t, err)

	declined, err := svc.Decline(nil, clientPrincipal("jane@example.com"), quote.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusDeclined, declined.Status)
	require.NotNil(t, declined.DeclinedAt)

	// A decided quote cannot be accepted afterwards.
	_, err = svc.Accept(context.Background(), nil, clientPrincipal("jane@example.com"), quote.ID, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeTransitionNotAllowed, appErrCode(t, err))
}

func TestQuoteListByRequester_Scoping(t *testing.T) {
	t.Parallel()

	repo := newFakeQuoteRepo()
	svc := newQuoteTestService(t, repo)

	mine := validQuoteRequest()
	_, err := svc.Create(context.Background(), nil, mine, nil)
	require.NoError(t, err)

	other := validQuoteRequest()
	other.Email = "someone-else@example.com"
	_, err = svc.Create(context.Background(), nil, other, nil)
	require.NoError(t, err)

	quotes, err := svc.ListByRequester(nil, "Jane@Example.com")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "jane@example.com", quotes[0].Email)
}
