package repositories

import (
	"errors"
	"time"

	"lciportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("mentorship application not found")

// ApplicationStats are the admin dashboard counters.
type ApplicationStats struct {
	Total              int64 `json:"total"`
	Pending            int64 `json:"pending"`
	UnderReview        int64 `json:"underReview"`
	Accepted           int64 `json:"accepted"`
	Rejected           int64 `json:"rejected"`
	InterviewScheduled int64 `json:"interviewScheduled"`
	TodayApplications  int64 `json:"todayApplications"`
}

type MentorshipRepository interface {
	Create(db *gorm.DB, app *models.MentorshipApplication) error
	FindByID(db *gorm.DB, id string) (*models.MentorshipApplication, error)
	FindAll(db *gorm.DB) ([]models.MentorshipApplication, error)
	FindByEmail(db *gorm.DB, email string) ([]models.MentorshipApplication, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.MentorshipApplication, error)
	GetStats(db *gorm.DB) (*ApplicationStats, error)
}

type MentorshipRepositoryImpl struct{}

func NewMentorshipRepository() MentorshipRepository {
	return &MentorshipRepositoryImpl{}
}

func (r *MentorshipRepositoryImpl) Create(db *gorm.DB, app *models.MentorshipApplication) error {
	return db.Create(app).Error
}

func (r *MentorshipRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.MentorshipApplication, error) {
	var app models.MentorshipApplication
	err := db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *MentorshipRepositoryImpl) FindAll(db *gorm.DB) ([]models.MentorshipApplication, error) {
	var apps []models.MentorshipApplication
	err := db.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *MentorshipRepositoryImpl) FindByEmail(db *gorm.DB, email string) ([]models.MentorshipApplication, error) {
	var apps []models.MentorshipApplication
	err := db.Where("email = ?", email).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *MentorshipRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.MentorshipApplication, error) {
	result := db.Model(&models.MentorshipApplication{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}

	return r.FindByID(db, id)
}

func (r *MentorshipRepositoryImpl) GetStats(db *gorm.DB) (*ApplicationStats, error) {
	stats := &ApplicationStats{}
	model := db.Model(&models.MentorshipApplication{})

	counts := []struct {
		status models.ApplicationStatus
		dest   *int64
	}{
		{models.ApplicationStatusPending, &stats.Pending},
		{models.ApplicationStatusUnderReview, &stats.UnderReview},
		{models.ApplicationStatusAccepted, &stats.Accepted},
		{models.ApplicationStatusRejected, &stats.Rejected},
		{models.ApplicationStatusInterviewScheduled, &stats.InterviewScheduled},
	}

	if err := model.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	for _, c := range counts {
		if err := db.Model(&models.MentorshipApplication{}).
			Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	today := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&models.MentorshipApplication{}).
		Where("created_at >= ?", today).Count(&stats.TodayApplications).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
