package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeTokenMissing ErrorCode = "TOKEN_MISSING"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidService   ErrorCode = "INVALID_SERVICE"
	CodeInvalidUrgency   ErrorCode = "INVALID_URGENCY"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeQuoteNotFound       ErrorCode = "QUOTE_NOT_FOUND"
	CodeMessageNotFound     ErrorCode = "MESSAGE_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeNotFound            ErrorCode = "NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeTransitionNotAllowed  ErrorCode = "TRANSITION_NOT_ALLOWED"
	CodePaymentProofRequired  ErrorCode = "PAYMENT_PROOF_REQUIRED"
	CodeWeakPassword          ErrorCode = "WEAK_PASSWORD"
	CodeUserNotApproved       ErrorCode = "USER_NOT_APPROVED"
	CodeConsentRequired       ErrorCode = "CONSENT_REQUIRED"
	CodeAttachmentRequired    ErrorCode = "ATTACHMENT_REQUIRED"
	CodeTooManyFiles          ErrorCode = "TOO_MANY_FILES"

	// Uploads
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
