package models

import (
	"time"

	"gorm.io/datatypes"
)

type Message struct {
	BaseModel
	FullName string `gorm:"not null" json:"fullName"`
	Email    string `gorm:"not null;index:idx_messages_email_created,priority:1" json:"email"`
	Subject  string `gorm:"not null" json:"subject"`
	Body     string `gorm:"column:message;not null" json:"message"`

	Status MessageStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	AdminReply string                      `json:"adminReply,omitempty"`
	ReplyFiles datatypes.JSONSlice[string] `json:"replyFiles,omitempty"`
	RepliedAt  *time.Time                  `json:"repliedAt,omitempty"`
}
