package dto

import (
	"time"

	"gorm.io/datatypes"

	"lciportal_backend/internal/models"
)

// DashboardQuote is the summarized quote view shown to the owning client.
type DashboardQuote struct {
	ID              string                      `json:"id"`
	Service         models.ServiceType          `json:"service"`
	DocumentType    string                      `json:"documentType"`
	SourceLanguage  string                      `json:"sourceLanguage"`
	TargetLanguage  string                      `json:"targetLanguage"`
	WordCount       int                         `json:"wordCount"`
	Urgency         models.Urgency              `json:"urgency"`
	AdditionalNotes string                      `json:"additionalNotes"`
	Status          models.QuoteStatus          `json:"status"`
	AdminReply      string                      `json:"adminReply,omitempty"`
	ReplyFiles      datatypes.JSONSlice[string] `json:"replyFiles,omitempty"`
	Price           string                      `json:"price,omitempty"`
	EstimatedTime   string                      `json:"estimatedTime,omitempty"`
	SubmittedAt     time.Time                   `json:"submittedAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

// DashboardMessage is the summarized message view.
type DashboardMessage struct {
	ID          string                      `json:"id"`
	Subject     string                      `json:"subject"`
	Message     string                      `json:"message"`
	AdminReply  string                      `json:"adminReply,omitempty"`
	ReplyFiles  datatypes.JSONSlice[string] `json:"replyFiles,omitempty"`
	Status      models.MessageStatus        `json:"status"`
	SubmittedAt time.Time                   `json:"submittedAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

type DashboardResponse struct {
	User     UserResponse       `json:"user"`
	Quotes   []DashboardQuote   `json:"quotes"`
	Messages []DashboardMessage `json:"messages"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
