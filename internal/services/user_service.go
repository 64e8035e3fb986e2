package services

import (
	"strings"

	"gorm.io/gorm"

	"lciportal_backend/internal/models"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/pkg/apperrors"
)

type UserService interface {
	Dashboard(db *gorm.DB, email string) (*dto.DashboardResponse, error)
	ListUsers(db *gorm.DB) ([]dto.UserResponse, error)
	UpdateStatus(db *gorm.DB, id string, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	quoteRepo   repositories.QuoteRepository
	messageRepo repositories.MessageRepository
	attachments AttachmentService
}

func NewUserService(userRepo repositories.UserRepository, quoteRepo repositories.QuoteRepository, messageRepo repositories.MessageRepository, attachments AttachmentService) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		quoteRepo:   quoteRepo,
		messageRepo: messageRepo,
		attachments: attachments,
	}
}

// Dashboard aggregates the client's own profile, quotes and messages in
// one response. It requires a backing user record: an admin principal
// without one gets a not-found rather than an empty page.
func (s *UserServiceImpl) Dashboard(db *gorm.DB, email string) (*dto.DashboardResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	quotes, err := s.quoteRepo.FindByEmail(db, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	messages, err := s.messageRepo.FindByEmail(db, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.DashboardResponse{
		User:     SanitizeUser(user),
		Quotes:   make([]dto.DashboardQuote, 0, len(quotes)),
		Messages: make([]dto.DashboardMessage, 0, len(messages)),
	}

	for i := range quotes {
		q := &quotes[i]
		s.attachments.ProjectQuote(q)
		resp.Quotes = append(resp.Quotes, dto.DashboardQuote{
			ID:              q.ID,
			Service:         q.Service,
			DocumentType:    q.DocumentType,
			SourceLanguage:  q.SourceLanguage,
			TargetLanguage:  q.TargetLanguage,
			WordCount:       q.WordCount,
			Urgency:         q.Urgency,
			AdditionalNotes: q.AdditionalNotes,
			Status:          q.Status,
			AdminReply:      q.AdminReply,
			ReplyFiles:      q.ReplyFiles,
			Price:           q.Price,
			EstimatedTime:   q.EstimatedTime,
			SubmittedAt:     q.CreatedAt,
			UpdatedAt:       q.UpdatedAt,
		})
	}

	for i := range messages {
		m := &messages[i]
		s.attachments.ProjectMessage(m)
		resp.Messages = append(resp.Messages, dto.DashboardMessage{
			ID:          m.ID,
			Subject:     m.Subject,
			Message:     m.Body,
			AdminReply:  m.AdminReply,
			ReplyFiles:  m.ReplyFiles,
			Status:      m.Status,
			SubmittedAt: m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
		})
	}

	return resp, nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = SanitizeUser(&users[i])
	}
	return out, nil
}

// UpdateStatus moves a user through the approval workflow.
func (s *UserServiceImpl) UpdateStatus(db *gorm.DB, id string, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.UpdateStatus(db, id, models.UserStatus(req.Status))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := SanitizeUser(user)
	return &resp, nil
}
