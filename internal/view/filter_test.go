package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/view"
)

func priced(id string, priceM float64) listing.Listing {
	return listing.Listing{
		ID:         id,
		Price:      priceM * 1_000_000,
		Visibility: listing.VisibilityPublic,
	}
}

func TestApply_PriceBucketEdges(t *testing.T) {
	listings := []listing.Listing{
		priced("a", 5),
		priced("b", 15),
		priced("c", 30),
		priced("d", 31),
	}

	out := view.Apply(listings, view.FilterSpec{PriceBucket: "10-30"})
	require.Len(t, out, 2)

	ids := []string{out[0].ID, out[1].ID}
	require.ElementsMatch(t, []string{"b", "c"}, ids)
}

func TestApply_PriceBuckets(t *testing.T) {
	tests := []struct {
		bucket string
		priceM float64
		want   bool
	}{
		{"0-10", 0, true},
		{"0-10", 10, true},
		{"0-10", 10.5, false},
		{"10-30", 10, false},
		{"10-30", 30, true},
		{"30-60", 30, false},
		{"30-60", 60, true},
		{"60+", 60, false},
		{"60+", 61, true},
		{"All", 999, true},
		{"", 999, true},
		{"bogus", 5, false},
	}

	for _, tt := range tests {
		out := view.Apply([]listing.Listing{priced("x", tt.priceM)}, view.FilterSpec{PriceBucket: tt.bucket})
		require.Equal(t, tt.want, len(out) == 1, "bucket %q price %vM", tt.bucket, tt.priceM)
	}
}

func TestApply_ScopeGlobal(t *testing.T) {
	listings := []listing.Listing{
		{ID: "pub", OwnerID: "other", Visibility: listing.VisibilityPublic},
		{ID: "priv-other", OwnerID: "other", Visibility: listing.VisibilityPrivate},
		{ID: "priv-mine", OwnerID: "me", Visibility: listing.VisibilityPrivate},
	}

	out := view.Apply(listings, view.FilterSpec{Scope: view.ScopeGlobal, ViewerID: "me"})
	require.Len(t, out, 2)
	for _, l := range out {
		require.NotEqual(t, "priv-other", l.ID)
	}
}

func TestApply_ScopePersonal(t *testing.T) {
	listings := []listing.Listing{
		{ID: "pub", OwnerID: "other", Visibility: listing.VisibilityPublic},
		{ID: "mine-pub", OwnerID: "me", Visibility: listing.VisibilityPublic},
		{ID: "mine-priv", OwnerID: "me", Visibility: listing.VisibilityPrivate},
	}

	out := view.Apply(listings, view.FilterSpec{Scope: view.ScopePersonal, ViewerID: "me"})
	require.Len(t, out, 2)
	for _, l := range out {
		require.Equal(t, "me", l.OwnerID)
	}
}

func TestApply_FieldPredicatesAreANDed(t *testing.T) {
	listings := []listing.Listing{
		{ID: "a", Sector: "F", Block: "2", Type: listing.TypeSale, Visibility: listing.VisibilityPublic},
		{ID: "b", Sector: "F", Block: "3", Type: listing.TypeSale, Visibility: listing.VisibilityPublic},
		{ID: "c", Sector: "A", Block: "2", Type: listing.TypeRent, Visibility: listing.VisibilityPublic},
	}

	out := view.Apply(listings, view.FilterSpec{Sector: "F", Block: "2", Type: "Sale"})
	require.Len(t, out, 1)
	require.Equal(t, "a", out[0].ID)

	out = view.Apply(listings, view.FilterSpec{Sector: view.Wildcard, Block: "2"})
	require.Len(t, out, 2)
}

func TestApply_OrderIsDeterministic(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	listings := []listing.Listing{
		{ID: "old", CreatedAt: base.Add(-time.Hour), Visibility: listing.VisibilityPublic},
		{ID: "tie-b", CreatedAt: base, Visibility: listing.VisibilityPublic},
		{ID: "new", CreatedAt: base.Add(time.Hour), Visibility: listing.VisibilityPublic},
		{ID: "tie-a", CreatedAt: base, Visibility: listing.VisibilityPublic},
		{ID: "no-timestamp", Visibility: listing.VisibilityPublic},
	}

	out := view.Apply(listings, view.FilterSpec{})
	got := make([]string, len(out))
	for i, l := range out {
		got[i] = l.ID
	}
	require.Equal(t, []string{"new", "tie-a", "tie-b", "old", "no-timestamp"}, got)
}

func TestApply_IsIdempotentAndPure(t *testing.T) {
	listings := []listing.Listing{
		priced("b", 15),
		priced("a", 5),
		priced("c", 40),
	}
	spec := view.FilterSpec{PriceBucket: "0-10"}

	first := view.Apply(listings, spec)
	second := view.Apply(listings, spec)
	require.Equal(t, first, second)

	// Input order is untouched.
	require.Equal(t, "b", listings[0].ID)
	require.Equal(t, "a", listings[1].ID)
	require.Equal(t, "c", listings[2].ID)
}
