package models

import (
	"time"

	"gorm.io/datatypes"
)

type Quote struct {
	BaseModel
	FullName        string      `gorm:"not null" json:"fullName"`
	Email           string      `gorm:"not null;index:idx_quotes_email_created,priority:1" json:"email"`
	Phone           string      `json:"phone"`
	Service         ServiceType `gorm:"type:varchar(40);not null" json:"service"`
	DocumentType    string      `gorm:"not null" json:"documentType"`
	SourceLanguage  string      `gorm:"not null" json:"sourceLanguage"`
	TargetLanguage  string      `gorm:"not null" json:"targetLanguage"`
	WordCount       int         `gorm:"default:0" json:"wordCount"`
	Urgency         Urgency     `gorm:"type:varchar(20);not null" json:"urgency"`
	AdditionalNotes string      `json:"additionalNotes"`

	Status QuoteStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Client uploads
	Files             datatypes.JSONSlice[string] `json:"files"`
	PaymentScreenshot string                      `json:"paymentScreenshot,omitempty"`

	// Admin reply
	AdminReply    string                      `json:"adminReply,omitempty"`
	ReplyFiles    datatypes.JSONSlice[string] `json:"replyFiles,omitempty"`
	Price         string                      `json:"price,omitempty"` // may carry a currency token, e.g. "25 USD"
	EstimatedTime string                      `json:"estimatedTime,omitempty"`

	RepliedAt  *time.Time `json:"repliedAt,omitempty"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
	DeclinedAt *time.Time `json:"declinedAt,omitempty"`

	// Optional link to a registered user; the quote stays addressable by
	// requester email either way.
	UserID *string `gorm:"type:uuid;index" json:"userId,omitempty"`
}
