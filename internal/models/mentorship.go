package models

import (
	"time"

	"gorm.io/datatypes"
)

// FileMeta is the stored shape of a single uploaded document.
type FileMeta struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	// Populated on read by the attachment URL projection, never stored.
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// LanguageSkill is one (language, level, focus area) tuple of an applicant.
type LanguageSkill struct {
	Language  string `json:"language"`
	Level     string `json:"level"`
	FocusArea string `json:"focusArea,omitempty"`
}

type MentorshipApplication struct {
	BaseModel
	FullName  string `gorm:"not null" json:"fullName"`
	Email     string `gorm:"not null;index:idx_mentorship_email_created,priority:1" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`
	Location  string `gorm:"not null" json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`

	Languages datatypes.JSONSlice[LanguageSkill] `json:"languages"`
	Tools     datatypes.JSONSlice[string]        `json:"tools"`

	Experience   string `gorm:"not null" json:"experience"`
	Availability string `gorm:"not null" json:"availability"`
	Motivation   string `gorm:"not null" json:"motivation"`

	CV          datatypes.JSONType[FileMeta] `json:"cv"`
	CoverLetter datatypes.JSONType[FileMeta] `json:"coverLetter"`

	Status ApplicationStatus `gorm:"type:varchar(30);default:'pending';index" json:"status"`

	AdminReply    string                        `json:"adminReply,omitempty"`
	ReplyFiles    datatypes.JSONSlice[FileMeta] `json:"replyFiles,omitempty"`
	RepliedAt     *time.Time                    `json:"repliedAt,omitempty"`
	EstimatedTime string                        `json:"estimatedTime,omitempty"`
	NextSteps     string                        `json:"nextSteps,omitempty"`
}
