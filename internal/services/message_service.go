package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"gorm.io/gorm"

	"lciportal_backend/internal/email"
	"lciportal_backend/internal/logger"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/pkg/apperrors"
)

const maxMessageReplyFiles = 10

type MessageService interface {
	Create(db *gorm.DB, req *dto.CreateMessageRequest) (*models.Message, error)
	ListAll(db *gorm.DB) ([]models.Message, error)
	ListBySender(db *gorm.DB, senderEmail string) ([]models.Message, error)
	Reply(ctx context.Context, db *gorm.DB, id string, req *dto.ReplyMessageRequest, form *multipart.Form) (*models.Message, error)
	SetStatus(db *gorm.DB, id string, req *dto.SetMessageStatusRequest) (*models.Message, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	attachments AttachmentService
	mailer      email.Provider
}

func NewMessageService(messageRepo repositories.MessageRepository, attachments AttachmentService, mailer email.Provider) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		attachments: attachments,
		mailer:      mailer,
	}
}

func (s *MessageServiceImpl) Create(db *gorm.DB, req *dto.CreateMessageRequest) (*models.Message, error) {
	message := &models.Message{
		FullName: req.FullName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:  req.Subject,
		Body:     req.Message,
		Status:   models.MessageStatusPending,
	}

	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return message, nil
}

func (s *MessageServiceImpl) ListAll(db *gorm.DB) ([]models.Message, error) {
	messages, err := s.messageRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.project(messages)
	return messages, nil
}

// ListBySender returns the messages sent from one email address. The
// caller derives the email from the principal, never from client input.
func (s *MessageServiceImpl) ListBySender(db *gorm.DB, senderEmail string) ([]models.Message, error) {
	messages, err := s.messageRepo.FindByEmail(db, strings.ToLower(senderEmail))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.project(messages)
	return messages, nil
}

// Reply records the admin response and moves the message to replied.
func (s *MessageServiceImpl) Reply(ctx context.Context, db *gorm.DB, id string, req *dto.ReplyMessageRequest, form *multipart.Form) (*models.Message, error) {
	now := time.Now()
	fields := map[string]interface{}{
		"admin_reply": req.AdminReply,
		"status":      models.MessageStatusReplied,
		"replied_at":  &now,
	}

	replyFiles, err := s.attachments.SaveSlot(ctx, form, "replyFiles", maxMessageReplyFiles)
	if err != nil {
		return nil, err
	}
	if len(replyFiles) > 0 {
		fields["reply_files"] = metaPaths(replyFiles)
	}

	message, err := s.messageRepo.UpdateFields(db, id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.mailer.Send(email.ReplyNotification(message.Email, message.FullName, "message")); err != nil {
		logger.Warn("reply notification failed", "to", message.Email, "error", err.Error())
	}

	s.attachments.ProjectMessage(message)
	return message, nil
}

// SetStatus sets the message workflow state directly, e.g. to close a
// thread as resolved without sending another reply.
func (s *MessageServiceImpl) SetStatus(db *gorm.DB, id string, req *dto.SetMessageStatusRequest) (*models.Message, error) {
	status := models.MessageStatus(req.Status)
	if !models.IsValidMessageStatus(status) {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "Invalid message status", 400)
	}

	message, err := s.messageRepo.UpdateFields(db, id, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.attachments.ProjectMessage(message)
	return message, nil
}

func (s *MessageServiceImpl) project(messages []models.Message) {
	for i := range messages {
		s.attachments.ProjectMessage(&messages[i])
	}
}
