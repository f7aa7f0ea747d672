package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrOpportunityNotFound = errors.New("opportunity not found")

	// Form state errors
	ErrFormHidden = errors.New("form is not visible")
)

// Context keys for error values
const (
	OpportunityIDKey = "opportunity_id"
	SeedIndexKey     = "seed_index"
	EventKey         = "event"
)
