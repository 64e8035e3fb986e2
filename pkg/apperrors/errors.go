package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine-readable reason for a failure.
type ErrorCode string

// AppError is the application error structure. Every failure leaving the
// service layer is one of these: a code for machines, a message for humans.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap keeps the original error in the chain.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrTokenMissing       = New(CodeTokenMissing, "No token, authorization denied", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired       = New(CodeTokenExpired, "Token expired", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied. Admin role required.", http.StatusForbidden)
	ErrUserNotApproved    = New(CodeUserNotApproved, "User account is not approved", http.StatusForbidden)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "User already exists with this email", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)

	// Requests
	ErrQuoteNotFound       = New(CodeQuoteNotFound, "Quote not found", http.StatusNotFound)
	ErrMessageNotFound     = New(CodeMessageNotFound, "Message not found", http.StatusNotFound)
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Mentorship application not found", http.StatusNotFound)

	// Lifecycle
	ErrTransitionNotAllowed = New(CodeTransitionNotAllowed, "Status transition not allowed", http.StatusConflict)
	ErrPaymentProofRequired = New(CodePaymentProofRequired, "A payment screenshot is required to accept a quote", http.StatusBadRequest)
	ErrConsentRequired      = New(CodeConsentRequired, "You must consent to the data processing", http.StatusBadRequest)

	// Uploads
	ErrFileTooLarge    = New(CodeFileTooLarge, "File too large", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeInvalidFileType, "Invalid file type. Only documents and images are allowed.", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Helpers for errors carrying details.
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Unexpected persistence failure", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewConflictError(message string) *AppError {
	return New(CodeTransitionNotAllowed, message, http.StatusConflict)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}
