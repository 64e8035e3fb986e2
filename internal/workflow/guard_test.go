package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lciportal_backend/internal/models"
)

func TestCanTransitionQuote_Client(t *testing.T) {
	t.Parallel()

	// The only client moves: quoted → accepted, quoted → declined.
	assert.True(t, CanTransitionQuote(ActorClient, models.QuoteStatusQuoted, models.QuoteStatusAccepted))
	assert.True(t, CanTransitionQuote(ActorClient, models.QuoteStatusQuoted, models.QuoteStatusDeclined))

	assert.False(t, CanTransitionQuote(ActorClient, models.QuoteStatusPending, models.QuoteStatusAccepted))
	assert.False(t, CanTransitionQuote(ActorClient, models.QuoteStatusAccepted, models.QuoteStatusDeclined))
	assert.False(t, CanTransitionQuote(ActorClient, models.QuoteStatusDeclined, models.QuoteStatusAccepted))
	assert.False(t, CanTransitionQuote(ActorClient, models.QuoteStatusQuoted, models.QuoteStatusPending))
}

func TestCanTransitionQuote_Admin(t *testing.T) {
	t.Parallel()

	// Admin may set any valid status from any state.
	for _, from := range models.ValidQuoteStatuses {
		for _, to := range models.ValidQuoteStatuses {
			assert.True(t, CanTransitionQuote(ActorAdmin, from, to), "admin %s -> %s", from, to)
		}
	}

	assert.False(t, CanTransitionQuote(ActorAdmin, models.QuoteStatusPending, models.QuoteStatus("bogus")))
}
