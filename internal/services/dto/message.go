package dto

type CreateMessageRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type ReplyMessageRequest struct {
	AdminReply string `form:"adminReply" json:"adminReply" validate:"required"`
}

type SetMessageStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
