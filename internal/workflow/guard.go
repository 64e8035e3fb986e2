package workflow

import "lciportal_backend/internal/models"

// Actor identifies who attempts a lifecycle transition.
type Actor string

const (
	ActorClient Actor = "client"
	ActorAdmin  Actor = "admin"
)

// quoteGuards is the transition table for quotes: current state → states
// the actor may move to. Admins keep unconditional override semantics, so
// only the client side is tabled; a client can act on a quote exclusively
// while an offer is on the table.
var quoteGuards = map[Actor]map[models.QuoteStatus][]models.QuoteStatus{
	ActorClient: {
		models.QuoteStatusQuoted: {
			models.QuoteStatusAccepted,
			models.QuoteStatusDeclined,
		},
	},
}

// CanTransitionQuote reports whether the actor may move a quote from one
// status to another.
func CanTransitionQuote(actor Actor, from, to models.QuoteStatus) bool {
	if actor == ActorAdmin {
		// Admin status sets are unrestricted overwrites over the enum.
		return models.IsValidQuoteStatus(to)
	}

	allowed, ok := quoteGuards[actor][from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
