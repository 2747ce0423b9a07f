package feed

import (
	"fmt"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
)

// Fallback strings for fields the source record may lack. The normalizers
// are total functions: any record, however sparse, yields an Activity.
const (
	fallbackActor = "Unknown"
	fallbackRole  = "User"
)

// NormalizeSignup projects a user record into a SIGNUP activity.
func NormalizeSignup(u user.User) Activity {
	actor := u.Email
	if actor == "" {
		actor = fallbackActor
	}
	role := string(u.Role)
	if role == "" {
		role = fallbackRole
	}
	return Activity{
		SourceID:  u.ID,
		Timestamp: u.CreatedAt,
		Category:  CategorySignup,
		Actor:     actor,
		ActorRole: role,
		Summary:   "New User Registration",
		Detail:    fmt.Sprintf("Joined as %s", role),
	}
}

// NormalizeListing projects a listing record into a LISTING activity.
func NormalizeListing(l listing.Listing) Activity {
	actor := l.Email
	if actor == "" {
		actor = fallbackActor
	}
	visibility := l.Visibility
	if visibility == "" {
		visibility = listing.VisibilityPublic
	}
	return Activity{
		SourceID:  l.ID,
		Timestamp: l.CreatedAt,
		Category:  CategoryListing,
		Actor:     actor,
		ActorRole: "Seller/Agent",
		Summary:   fmt.Sprintf("Listed Property (%s)", visibility),
		Detail:    fmt.Sprintf("%s Block %s - %s", l.Sector, l.Block, l.Type),
	}
}

// NormalizePrediction projects a prediction record into a PREDICTION
// activity. Predictions carry no display identity in the feed.
func NormalizePrediction(p prediction.Prediction) Activity {
	return Activity{
		SourceID:  p.ID,
		Timestamp: p.CreatedAt,
		Category:  CategoryPrediction,
		Actor:     "Anonymous/User",
		ActorRole: fallbackRole,
		Summary:   "AI Price Prediction",
		Detail:    fmt.Sprintf("%s (%.2fM PKR)", p.Location, p.PredictedPrice/1_000_000),
	}
}
