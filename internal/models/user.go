package models

import "time"

type User struct {
	BaseModel
	FullName     string     `gorm:"not null" json:"fullName"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Phone        string     `json:"phone"`
	Company      string     `json:"company"`
	Role         UserRole   `gorm:"type:varchar(20);default:'client'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'approved'" json:"status"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`
}
