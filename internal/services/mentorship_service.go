package services

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lciportal_backend/internal/email"
	"lciportal_backend/internal/logger"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/pkg/apperrors"
)

const maxMentorshipReplyFiles = 10

type MentorshipService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateMentorshipRequest, form *multipart.Form) (*models.MentorshipApplication, error)
	ListAll(db *gorm.DB) ([]models.MentorshipApplication, error)
	ListByApplicant(db *gorm.DB, applicantEmail string) ([]models.MentorshipApplication, error)
	Reply(ctx context.Context, db *gorm.DB, id string, req *dto.ReplyMentorshipRequest, form *multipart.Form) (*models.MentorshipApplication, error)
	SetStatus(db *gorm.DB, id string, req *dto.SetApplicationStatusRequest) (*models.MentorshipApplication, error)
	Stats(db *gorm.DB) (*repositories.ApplicationStats, error)
}

type MentorshipServiceImpl struct {
	mentorshipRepo repositories.MentorshipRepository
	attachments    AttachmentService
	mailer         email.Provider
}

func NewMentorshipService(mentorshipRepo repositories.MentorshipRepository, attachments AttachmentService, mailer email.Provider) MentorshipService {
	return &MentorshipServiceImpl{
		mentorshipRepo: mentorshipRepo,
		attachments:    attachments,
		mailer:         mailer,
	}
}

// Create validates and persists a mentorship application. The applicant
// must consent to data processing and supply both a CV and a cover
// letter.
func (s *MentorshipServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateMentorshipRequest, form *multipart.Form) (*models.MentorshipApplication, error) {
	if !consentGiven(req.Consent) {
		return nil, apperrors.ErrConsentRequired
	}

	languages, err := parseLanguages(req.Languages)
	if err != nil {
		return nil, apperrors.NewBadRequestError("languages must be a valid JSON array")
	}
	tools, err := parseTools(req.Tools)
	if err != nil {
		return nil, apperrors.NewBadRequestError("tools must be a valid JSON array")
	}

	if form == nil || len(form.File["cv"]) == 0 || len(form.File["coverLetter"]) == 0 {
		return nil, apperrors.NewBadRequestError("CV and cover letter are required")
	}

	cv, err := s.attachments.SaveSlot(ctx, form, "cv", 1)
	if err != nil {
		return nil, err
	}
	coverLetter, err := s.attachments.SaveSlot(ctx, form, "coverLetter", 1)
	if err != nil {
		return nil, err
	}

	app := &models.MentorshipApplication{
		FullName:     req.FullName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Location:     req.Location,
		LinkedIn:     req.LinkedIn,
		Portfolio:    req.Portfolio,
		Languages:    languages,
		Tools:        tools,
		Experience:   req.Experience,
		Availability: req.Availability,
		Motivation:   req.Motivation,
		CV:           datatypes.NewJSONType(cv[0]),
		CoverLetter:  datatypes.NewJSONType(coverLetter[0]),
		Status:       models.ApplicationStatusPending,
	}

	if err := s.mentorshipRepo.Create(db, app); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return app, nil
}

func (s *MentorshipServiceImpl) ListAll(db *gorm.DB) ([]models.MentorshipApplication, error) {
	apps, err := s.mentorshipRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.project(apps)
	return apps, nil
}

// ListByApplicant returns the applications submitted from one email
// address. The caller derives the email from the principal, never from
// client input.
func (s *MentorshipServiceImpl) ListByApplicant(db *gorm.DB, applicantEmail string) ([]models.MentorshipApplication, error) {
	apps, err := s.mentorshipRepo.FindByEmail(db, strings.ToLower(applicantEmail))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.project(apps)
	return apps, nil
}

// Reply records the admin response. Without an explicit status the
// application moves to under_review: a reply means someone is looking at
// it.
func (s *MentorshipServiceImpl) Reply(ctx context.Context, db *gorm.DB, id string, req *dto.ReplyMentorshipRequest, form *multipart.Form) (*models.MentorshipApplication, error) {
	now := time.Now()
	fields := map[string]interface{}{
		"admin_reply": req.AdminReply,
		"replied_at":  &now,
	}

	if req.Status != "" {
		status := models.ApplicationStatus(req.Status)
		if !models.IsValidApplicationStatus(status) {
			return nil, apperrors.New(apperrors.CodeInvalidStatus, "Invalid application status", 400)
		}
		fields["status"] = status
	} else {
		fields["status"] = models.ApplicationStatusUnderReview
	}

	if req.EstimatedTime != "" {
		fields["estimated_time"] = req.EstimatedTime
	}
	if req.NextSteps != "" {
		fields["next_steps"] = req.NextSteps
	}

	replyFiles, err := s.attachments.SaveSlot(ctx, form, "replyFiles", maxMentorshipReplyFiles)
	if err != nil {
		return nil, err
	}
	if len(replyFiles) > 0 {
		fields["reply_files"] = datatypes.JSONSlice[models.FileMeta](replyFiles)
	}

	app, err := s.mentorshipRepo.UpdateFields(db, id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.mailer.Send(email.ReplyNotification(app.Email, app.FullName, "mentorship application")); err != nil {
		logger.Warn("reply notification failed", "to", app.Email, "error", err.Error())
	}

	s.attachments.ProjectApplication(app)
	return app, nil
}

// SetStatus sets the application state directly. Setting the current
// state again is a no-op that still returns the application.
func (s *MentorshipServiceImpl) SetStatus(db *gorm.DB, id string, req *dto.SetApplicationStatusRequest) (*models.MentorshipApplication, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.IsValidApplicationStatus(status) {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "Invalid application status", 400)
	}

	app, err := s.mentorshipRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if app.Status != status {
		app, err = s.mentorshipRepo.UpdateFields(db, id, map[string]interface{}{
			"status": status,
		})
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}

	s.attachments.ProjectApplication(app)
	return app, nil
}

func (s *MentorshipServiceImpl) Stats(db *gorm.DB) (*repositories.ApplicationStats, error) {
	stats, err := s.mentorshipRepo.GetStats(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return stats, nil
}

func (s *MentorshipServiceImpl) project(apps []models.MentorshipApplication) {
	for i := range apps {
		s.attachments.ProjectApplication(&apps[i])
	}
}

// consentGiven accepts the truthy spellings web form encoders produce.
func consentGiven(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

func parseLanguages(raw string) (datatypes.JSONSlice[models.LanguageSkill], error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var skills datatypes.JSONSlice[models.LanguageSkill]
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func parseTools(raw string) (datatypes.JSONSlice[string], error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var tools datatypes.JSONSlice[string]
	if err := json.Unmarshal([]byte(raw), &tools); err != nil {
		return nil, err
	}
	return tools, nil
}
