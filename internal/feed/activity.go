package feed

import "time"

// Category is the closed set of activity categories. A category is fixed
// at normalization time and never re-derived.
type Category string

const (
	CategorySignup     Category = "SIGNUP"
	CategoryListing    Category = "LISTING"
	CategoryPrediction Category = "PREDICTION"
)

// Activity is the normalized projection of a source record for feed
// display. A missing source timestamp resolves to the zero instant so the
// entry sorts last rather than pretending to be recent.
type Activity struct {
	SourceID  string    `json:"source_id"`
	Timestamp time.Time `json:"timestamp"`
	Category  Category  `json:"category"`
	Actor     string    `json:"actor"`
	ActorRole string    `json:"actor_role"`
	Summary   string    `json:"summary"`
	Detail    string    `json:"detail"`
}
