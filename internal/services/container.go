package services

import (
	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/email"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/storage"
)

// ServiceContainer wires every service with its repositories and shared
// infrastructure. Handlers receive the container once at startup.
type ServiceContainer struct {
	Auth       AuthService
	Quote      QuoteService
	Message    MessageService
	Mentorship MentorshipService
	User       UserService
	Attachment AttachmentService

	Resolver *auth.PrincipalResolver
}

type ContainerConfig struct {
	Tokens      *auth.TokenManager
	Resolver    *auth.PrincipalResolver
	Storage     storage.Storage
	Attachments AttachmentConfig
	Mailer      email.Provider
}

func NewServiceContainer(cfg ContainerConfig) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	quoteRepo := repositories.NewQuoteRepository()
	messageRepo := repositories.NewMessageRepository()
	mentorshipRepo := repositories.NewMentorshipRepository()

	attachments := NewAttachmentService(cfg.Storage, cfg.Attachments)

	return &ServiceContainer{
		Auth:       NewAuthService(userRepo, cfg.Tokens),
		Quote:      NewQuoteService(quoteRepo, attachments, cfg.Mailer),
		Message:    NewMessageService(messageRepo, attachments, cfg.Mailer),
		Mentorship: NewMentorshipService(mentorshipRepo, attachments, cfg.Mailer),
		User:       NewUserService(userRepo, quoteRepo, messageRepo, attachments),
		Attachment: attachments,
		Resolver:   cfg.Resolver,
	}
}
