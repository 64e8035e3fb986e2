package repositories

import (
	"errors"

	"lciportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuoteNotFound = errors.New("quote not found")

type QuoteRepository interface {
	Create(db *gorm.DB, quote *models.Quote) error
	FindByID(db *gorm.DB, id string) (*models.Quote, error)
	FindAll(db *gorm.DB) ([]models.Quote, error)
	FindByEmail(db *gorm.DB, email string) ([]models.Quote, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Quote, error)
}

type QuoteRepositoryImpl struct{}

func NewQuoteRepository() QuoteRepository {
	return &QuoteRepositoryImpl{}
}

func (r *QuoteRepositoryImpl) Create(db *gorm.DB, quote *models.Quote) error {
	return db.Create(quote).Error
}

func (r *QuoteRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Quote, error) {
	var quote models.Quote
	err := db.First(&quote, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepositoryImpl) FindAll(db *gorm.DB) ([]models.Quote, error) {
	var quotes []models.Quote
	err := db.Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *QuoteRepositoryImpl) FindByEmail(db *gorm.DB, email string) ([]models.Quote, error) {
	var quotes []models.Quote
	err := db.Where("email = ?", email).Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

// UpdateFields applies a single atomic merge update and returns the fresh
// document. Concurrent updates to the same quote apply in update order;
// the last writer's fields win.
func (r *QuoteRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Quote, error) {
	result := db.Model(&models.Quote{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrQuoteNotFound
	}

	return r.FindByID(db, id)
}
