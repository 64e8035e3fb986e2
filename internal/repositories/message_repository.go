package repositories

import (
	"errors"

	"lciportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	FindAll(db *gorm.DB) ([]models.Message, error)
	FindByEmail(db *gorm.DB, email string) ([]models.Message, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Message, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	err := db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) FindAll(db *gorm.DB) ([]models.Message, error) {
	var messages []models.Message
	err := db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindByEmail(db *gorm.DB, email string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("email = ?", email).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Message, error) {
	result := db.Model(&models.Message{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrMessageNotFound
	}

	return r.FindByID(db, id)
}
