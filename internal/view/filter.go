// Package view derives the displayable subset of a merged collection.
// Evaluation is a pure function of (collection, spec): identical inputs
// always produce an identical ordered output, and the input is never
// mutated.
package view

import (
	"sort"

	"github.com/estatoai/estato/internal/domain/listing"
)

// Scope names the view-level predicate applied before field filters.
type Scope string

const (
	// ScopeGlobal shows all public listings plus the viewer's own.
	ScopeGlobal Scope = "Global"
	// ScopePersonal shows only the viewer's listings, public or private.
	ScopePersonal Scope = "Personal"
)

// Wildcard matches any field value.
const Wildcard = "All"

// FilterSpec is a declarative description of an inventory view. Zero or
// "All" predicate values match everything.
type FilterSpec struct {
	Scope       Scope
	ViewerID    string
	Sector      string
	Block       string
	Type        string
	PriceBucket string // "0-10", "10-30", "30-60", "60+" over price/1e6
}

// Apply filters and orders a listing collection according to spec.
// Predicates are combined with logical AND: the scope predicate first,
// then each field predicate. The result is a fresh slice ordered by
// descending creation time with ties broken by ID.
func Apply(listings []listing.Listing, spec FilterSpec) []listing.Listing {
	out := make([]listing.Listing, 0, len(listings))
	for _, l := range listings {
		if !matchesScope(l, spec) {
			continue
		}
		if !matchesField(l.Sector, spec.Sector) {
			continue
		}
		if !matchesField(l.Block, spec.Block) {
			continue
		}
		if !matchesField(string(l.Type), spec.Type) {
			continue
		}
		if !matchesPriceBucket(l.PriceMillions(), spec.PriceBucket) {
			continue
		}
		out = append(out, l)
	}
	SortListings(out)
	return out
}

func matchesScope(l listing.Listing, spec FilterSpec) bool {
	switch spec.Scope {
	case ScopePersonal:
		return l.OwnedBy(spec.ViewerID)
	default:
		// Global: private listings are visible only to their owner.
		if l.Visibility == listing.VisibilityPrivate && !l.OwnedBy(spec.ViewerID) {
			return false
		}
		return true
	}
}

func matchesField(value, want string) bool {
	return want == "" || want == Wildcard || value == want
}

// matchesPriceBucket evaluates the fixed price buckets over the
// million-PKR unit. Buckets are lower-exclusive and upper-inclusive,
// except the lowest bucket which includes zero and the open-ended top
// bucket.
func matchesPriceBucket(priceM float64, bucket string) bool {
	switch bucket {
	case "", Wildcard:
		return true
	case "0-10":
		return priceM >= 0 && priceM <= 10
	case "10-30":
		return priceM > 10 && priceM <= 30
	case "30-60":
		return priceM > 30 && priceM <= 60
	case "60+":
		return priceM > 60
	default:
		// Unknown bucket names match nothing rather than everything.
		return false
	}
}

// SortListings orders listings in place: newest first, ties broken by ID
// so the order is a deterministic total order.
func SortListings(listings []listing.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		ti, tj := listings[i].CreatedAt, listings[j].CreatedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return listings[i].ID < listings[j].ID
	})
}
