package dto

// CreateMentorshipRequest is bound from the multipart form of an
// application. Languages and tools arrive as JSON-encoded strings from the
// web client and are parsed by the service.
type CreateMentorshipRequest struct {
	FullName  string `form:"fullName" json:"fullName" validate:"required"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Phone     string `form:"phone" json:"phone" validate:"required"`
	Location  string `form:"location" json:"location" validate:"required"`
	LinkedIn  string `form:"linkedin" json:"linkedin"`
	Portfolio string `form:"portfolio" json:"portfolio"`

	Languages string `form:"languages" json:"languages"`
	Tools     string `form:"tools" json:"tools"`

	Experience   string `form:"experience" json:"experience" validate:"required"`
	Availability string `form:"availability" json:"availability" validate:"required"`
	Motivation   string `form:"motivation" json:"motivation" validate:"required"`

	Consent string `form:"consent" json:"consent"`
}

type ReplyMentorshipRequest struct {
	AdminReply    string `form:"adminReply" json:"adminReply" validate:"required"`
	Status        string `form:"status" json:"status"`
	EstimatedTime string `form:"estimatedTime" json:"estimatedTime"`
	NextSteps     string `form:"nextSteps" json:"nextSteps"`
}

type SetApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateMentorshipResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}
