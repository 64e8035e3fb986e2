package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lciportal_backend/internal/services/dto"
)

func TestValidate_RegisterRequest(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.RegisterRequest{
		FullName: "Jane Client",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	err = v.Validate(&dto.RegisterRequest{
		FullName: "Jane Client",
		Email:    "not-an-email",
		Password: "123",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Keys use JSON tag names, not Go field names.
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_QuoteEnumRules(t *testing.T) {
	t.Parallel()

	v := New()

	req := &dto.CreateQuoteRequest{
		FullName:       "Jane Client",
		Email:          "jane@example.com",
		Service:        "translation",
		DocumentType:   "contract",
		SourceLanguage: "en",
		TargetLanguage: "fr",
		Urgency:        "rush", // legacy synonym is accepted
	}
	assert.NoError(t, v.Validate(req))

	req.Service = "plumbing"
	req.Urgency = "whenever"
	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Invalid service type", vErr.Errors["service"])
	assert.Equal(t, "Invalid urgency. Must be one of: standard, urgent, very-urgent", vErr.Errors["urgency"])
}
