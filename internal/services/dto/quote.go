package dto

// CreateQuoteRequest is bound from the multipart form fields of a quote
// submission. The urgency value is accepted raw here; legacy synonyms are
// normalized by the service before the enum check.
type CreateQuoteRequest struct {
	FullName       string `form:"fullName" json:"fullName" validate:"required"`
	Email          string `form:"email" json:"email" validate:"required,email"`
	Phone          string `form:"phone" json:"phone"`
	Service        string `form:"service" json:"service" validate:"required,service_type"`
	DocumentType   string `form:"documentType" json:"documentType" validate:"required"`
	SourceLanguage string `form:"sourceLanguage" json:"sourceLanguage" validate:"required"`
	TargetLanguage string `form:"targetLanguage" json:"targetLanguage" validate:"required"`
	WordCount      int    `form:"wordCount" json:"wordCount"`
	Urgency        string `form:"urgency" json:"urgency" validate:"required,urgency"`

	// The web client historically sends the notes field under this name.
	AdditionalRequirements string `form:"additionalRequirements" json:"additionalRequirements"`

	UserID string `form:"userId" json:"userId"`
}

// UpdateQuoteStatusRequest is the admin reply/status payload.
type UpdateQuoteStatusRequest struct {
	Status        string `form:"status" json:"status"`
	AdminReply    string `form:"adminReply" json:"adminReply"`
	Price         string `form:"price" json:"price"`
	EstimatedTime string `form:"estimatedTime" json:"estimatedTime"`
}

type CreateQuoteResponse struct {
	Message string `json:"message"`
	QuoteID string `json:"quoteId"`
}
