package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/email"
	"lciportal_backend/internal/logger"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/internal/workflow"
	"lciportal_backend/pkg/apperrors"
)

// Slot bounds for quote uploads.
const (
	maxQuoteFiles      = 10
	maxQuoteReplyFiles = 10
)

type QuoteService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateQuoteRequest, form *multipart.Form) (*models.Quote, error)
	ListAll(db *gorm.DB) ([]models.Quote, error)
	ListByRequester(db *gorm.DB, requesterEmail string) ([]models.Quote, error)
	AdminReply(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateQuoteStatusRequest, form *multipart.Form) (*models.Quote, error)
	Accept(ctx context.Context, db *gorm.DB, principal *auth.Principal, id string, form *multipart.Form) (*models.Quote, error)
	Decline(db *gorm.DB, principal *auth.Principal, id string) (*models.Quote, error)
}

type QuoteServiceImpl struct {
	quoteRepo   repositories.QuoteRepository
	attachments AttachmentService
	mailer      email.Provider
}

func NewQuoteService(quoteRepo repositories.QuoteRepository, attachments AttachmentService, mailer email.Provider) QuoteService {
	return &QuoteServiceImpl{
		quoteRepo:   quoteRepo,
		attachments: attachments,
		mailer:      mailer,
	}
}

// Create validates and persists a new quote request in the pending state.
// All validation happens before any file or document is written.
func (s *QuoteServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateQuoteRequest, form *multipart.Form) (*models.Quote, error) {
	if !models.IsValidService(models.ServiceType(req.Service)) {
		return nil, apperrors.New(apperrors.CodeInvalidService,
			"Invalid service type. Must be one of: "+joinServices(), 400)
	}

	urgency, ok := models.NormalizeUrgency(req.Urgency)
	if !ok {
		return nil, apperrors.New(apperrors.CodeInvalidUrgency,
			"Invalid urgency. Must be one of: standard, urgent, very-urgent", 400)
	}

	files, err := s.attachments.SaveSlot(ctx, form, "files", maxQuoteFiles)
	if err != nil {
		return nil, err
	}

	payment, err := s.attachments.SaveSlot(ctx, form, "paymentScreenshot", 1)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		FullName:        req.FullName,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		Service:         models.ServiceType(req.Service),
		DocumentType:    req.DocumentType,
		SourceLanguage:  req.SourceLanguage,
		TargetLanguage:  req.TargetLanguage,
		WordCount:       req.WordCount,
		Urgency:         urgency,
		AdditionalNotes: req.AdditionalRequirements,
		Status:          models.QuoteStatusPending,
		Files:           metaPaths(files),
	}
	if len(payment) > 0 {
		quote.PaymentScreenshot = payment[0].Path
	}
	if req.UserID != "" {
		quote.UserID = &req.UserID
	}

	if err := s.quoteRepo.Create(db, quote); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return quote, nil
}

func (s *QuoteServiceImpl) ListAll(db *gorm.DB) ([]models.Quote, error) {
	quotes, err := s.quoteRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.project(quotes)
	return quotes, nil
}

// ListByRequester returns the quotes belonging to one requester email.
// The caller derives the email from the principal, never from client
// input.
func (s *QuoteServiceImpl) ListByRequester(db *gorm.DB, requesterEmail string) ([]models.Quote, error) {
	quotes, err := s.quoteRepo.FindByEmail(db, strings.ToLower(requesterEmail))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.project(quotes)
	return quotes, nil
}

// AdminReply records the admin response on a quote. When no explicit
// status is supplied but a price is, the quote auto-advances to "quoted":
// the presence of a price is evidence of a quotation having been made.
func (s *QuoteServiceImpl) AdminReply(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateQuoteStatusRequest, form *multipart.Form) (*models.Quote, error) {
	now := time.Now()
	fields := map[string]interface{}{
		"replied_at": &now,
	}

	switch {
	case req.Status != "":
		status := models.QuoteStatus(req.Status)
		if !models.IsValidQuoteStatus(status) {
			return nil, apperrors.New(apperrors.CodeInvalidStatus, "Invalid quote status", 400)
		}
		fields["status"] = status
	case req.Price != "":
		fields["status"] = models.QuoteStatusQuoted
	}

	if req.AdminReply != "" {
		fields["admin_reply"] = req.AdminReply
	}
	if req.Price != "" {
		fields["price"] = req.Price
	}
	if req.EstimatedTime != "" {
		fields["estimated_time"] = req.EstimatedTime
	}

	replyFiles, err := s.attachments.SaveSlot(ctx, form, "replyFiles", maxQuoteReplyFiles)
	if err != nil {
		return nil, err
	}
	if len(replyFiles) > 0 {
		fields["reply_files"] = metaPaths(replyFiles)
	}

	quote, err := s.quoteRepo.UpdateFields(db, id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrQuoteNotFound) {
			return nil, apperrors.ErrQuoteNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.notify(quote.Email, quote.FullName, "quote request")

	s.attachments.ProjectQuote(quote)
	return quote, nil
}

// Accept is the client-side acceptance of a quotation. Only the owner may
// accept, only from the quoted state, and a payment screenshot must exist:
// either attached at submission or uploaded with this call.
func (s *QuoteServiceImpl) Accept(ctx context.Context, db *gorm.DB, principal *auth.Principal, id string, form *multipart.Form) (*models.Quote, error) {
	quote, err := s.loadOwned(db, principal, id)
	if err != nil {
		return nil, err
	}

	if !workflow.CanTransitionQuote(workflow.ActorClient, quote.Status, models.QuoteStatusAccepted) {
		return nil, apperrors.ErrTransitionNotAllowed.WithDetails(
			"a quote can only be accepted after it has been quoted")
	}

	now := time.Now()
	fields := map[string]interface{}{
		"status":      models.QuoteStatusAccepted,
		"accepted_at": &now,
	}

	payment, err := s.attachments.SaveSlot(ctx, form, "paymentScreenshot", 1)
	if err != nil {
		return nil, err
	}
	if len(payment) > 0 {
		fields["payment_screenshot"] = payment[0].Path
	} else if quote.PaymentScreenshot == "" {
		return nil, apperrors.ErrPaymentProofRequired
	}

	updated, err := s.quoteRepo.UpdateFields(db, id, fields)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.attachments.ProjectQuote(updated)
	return updated, nil
}

// Decline is the client-side rejection of a quotation, permitted from the
// quoted state only.
func (s *QuoteServiceImpl) Decline(db *gorm.DB, principal *auth.Principal, id string) (*models.Quote, error) {
	quote, err := s.loadOwned(db, principal, id)
	if err != nil {
		return nil, err
	}

	if !workflow.CanTransitionQuote(workflow.ActorClient, quote.Status, models.QuoteStatusDeclined) {
		return nil, apperrors.ErrTransitionNotAllowed.WithDetails(
			"a quote can only be declined after it has been quoted")
	}

	now := time.Now()
	updated, err := s.quoteRepo.UpdateFields(db, id, map[string]interface{}{
		"status":      models.QuoteStatusDeclined,
		"declined_at": &now,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.attachments.ProjectQuote(updated)
	return updated, nil
}

func (s *QuoteServiceImpl) loadOwned(db *gorm.DB, principal *auth.Principal, id string) (*models.Quote, error) {
	quote, err := s.quoteRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrQuoteNotFound) {
			return nil, apperrors.ErrQuoteNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !strings.EqualFold(quote.Email, principal.Email) {
		return nil, apperrors.NewForbiddenError("This quote belongs to another client")
	}

	return quote, nil
}

func (s *QuoteServiceImpl) project(quotes []models.Quote) {
	for i := range quotes {
		s.attachments.ProjectQuote(&quotes[i])
	}
}

func (s *QuoteServiceImpl) notify(to, fullName, resource string) {
	if err := s.mailer.Send(email.ReplyNotification(to, fullName, resource)); err != nil {
		logger.Warn("reply notification failed", "to", to, "error", err.Error())
	}
}

func metaPaths(metas []models.FileMeta) datatypes.JSONSlice[string] {
	if len(metas) == 0 {
		return nil
	}
	paths := make(datatypes.JSONSlice[string], len(metas))
	for i, m := range metas {
		paths[i] = m.Path
	}
	return paths
}

func joinServices() string {
	parts := make([]string, len(models.ValidServices))
	for i, s := range models.ValidServices {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
