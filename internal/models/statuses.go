package models

type UserRole string
type UserStatus string
type QuoteStatus string
type MessageStatus string
type ApplicationStatus string
type ServiceType string
type Urgency string

const (
	UserRoleClient UserRole = "client"
	UserRoleAdmin  UserRole = "admin"

	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"

	QuoteStatusPending    QuoteStatus = "pending"
	QuoteStatusQuoted     QuoteStatus = "quoted"
	QuoteStatusAccepted   QuoteStatus = "accepted"
	QuoteStatusDeclined   QuoteStatus = "declined"
	QuoteStatusInProgress QuoteStatus = "inProgress"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusCancelled  QuoteStatus = "cancelled"

	MessageStatusPending  MessageStatus = "pending"
	MessageStatusReplied  MessageStatus = "replied"
	MessageStatusResolved MessageStatus = "resolved"

	ApplicationStatusPending            ApplicationStatus = "pending"
	ApplicationStatusUnderReview        ApplicationStatus = "under_review"
	ApplicationStatusAccepted           ApplicationStatus = "accepted"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"

	UrgencyStandard   Urgency = "standard"
	UrgencyUrgent     Urgency = "urgent"
	UrgencyVeryUrgent Urgency = "very-urgent"
)

// ValidServices is the closed enumeration of offered service types.
var ValidServices = []ServiceType{
	"translation", "interpretation", "proofreading", "localization",
	"content-creation", "certified", "transcription", "cv-support",
	"mtpe", "glossaries", "back-translation", "ai-translation",
	"social-media", "any-other-document",
}

// UrgencySynonyms maps legacy inbound urgency values onto the stored enum.
var UrgencySynonyms = map[string]Urgency{
	"rush":     UrgencyVeryUrgent,
	"extended": UrgencyStandard,
}

// ValidQuoteStatuses enumerates every state an admin may set explicitly.
var ValidQuoteStatuses = []QuoteStatus{
	QuoteStatusPending, QuoteStatusQuoted, QuoteStatusAccepted,
	QuoteStatusDeclined, QuoteStatusInProgress, QuoteStatusCompleted,
	QuoteStatusCancelled,
}

var ValidMessageStatuses = []MessageStatus{
	MessageStatusPending, MessageStatusReplied, MessageStatusResolved,
}

var ValidApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending, ApplicationStatusUnderReview,
	ApplicationStatusAccepted, ApplicationStatusRejected,
	ApplicationStatusInterviewScheduled,
}

func IsValidService(s ServiceType) bool {
	for _, v := range ValidServices {
		if v == s {
			return true
		}
	}
	return false
}

// NormalizeUrgency resolves legacy synonyms before enum membership is
// checked. The second return is false for values outside the enum.
func NormalizeUrgency(raw string) (Urgency, bool) {
	if mapped, ok := UrgencySynonyms[raw]; ok {
		return mapped, true
	}
	u := Urgency(raw)
	switch u {
	case UrgencyStandard, UrgencyUrgent, UrgencyVeryUrgent:
		return u, true
	}
	return "", false
}

func IsValidQuoteStatus(s QuoteStatus) bool {
	for _, v := range ValidQuoteStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidMessageStatus(s MessageStatus) bool {
	for _, v := range ValidMessageStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidApplicationStatus(s ApplicationStatus) bool {
	for _, v := range ValidApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}
