package stats

import (
	"strings"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
)

// UserTotals are the role-bucketed user counters for the admin stat tiles.
type UserTotals struct {
	Total   int `json:"total"`
	Buyers  int `json:"buyers"`
	Sellers int `json:"sellers"`
	Agents  int `json:"agents"`
}

// ListingTotals are the visibility counters for the admin stat tiles.
type ListingTotals struct {
	Total   int `json:"total"`
	Public  int `json:"public"`
	Private int `json:"private"`
}

// PredictionTotals summarize model usage across the whole collection.
type PredictionTotals struct {
	Total       int     `json:"total"`
	AvgPrice    float64 `json:"avg_price"`
	TopLocation string  `json:"top_location"`
}

// CountUsers tallies users by role in one pass. "seller" and "both"
// count toward the seller tile.
func CountUsers(users []user.User) UserTotals {
	var t UserTotals
	for _, u := range users {
		t.Total++
		switch user.Role(strings.ToLower(string(u.Role))) {
		case user.RoleBuyer:
			t.Buyers++
		case user.RoleSeller, user.RoleBoth:
			t.Sellers++
		case user.RoleAgent:
			t.Agents++
		}
	}
	return t
}

// CountListings tallies listings by visibility in one pass. A listing
// with no visibility set counts as public.
func CountListings(listings []listing.Listing) ListingTotals {
	var t ListingTotals
	for _, l := range listings {
		t.Total++
		if l.Visibility == listing.VisibilityPrivate {
			t.Private++
		} else {
			t.Public++
		}
	}
	return t
}

// CountPredictions summarizes predictions: count, mean price, and the
// most frequent leading location segment.
func CountPredictions(predictions []prediction.Prediction) PredictionTotals {
	t := PredictionTotals{Total: len(predictions)}
	if t.Total == 0 {
		return t
	}

	var sum float64
	byLocation := make(map[string]int)
	for _, p := range predictions {
		sum += p.PredictedPrice
		loc := "Unknown"
		if p.Location != "" {
			loc = strings.TrimSpace(strings.SplitN(p.Location, ",", 2)[0])
		}
		byLocation[loc]++
	}
	t.AvgPrice = sum / float64(t.Total)

	best := -1
	for loc, n := range byLocation {
		if n > best || (n == best && loc < t.TopLocation) {
			best = n
			t.TopLocation = loc
		}
	}
	return t
}
