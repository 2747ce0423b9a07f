package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/estatoai/estato/internal/feed"
	"github.com/estatoai/estato/internal/view"
)

func TestFilterActivities_TabsAndOrder(t *testing.T) {
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	activities := []feed.Activity{
		{SourceID: "l1", Category: feed.CategoryListing, Timestamp: base.Add(3 * time.Minute)},
		{SourceID: "u1", Category: feed.CategorySignup, Timestamp: base.Add(5 * time.Minute)},
		{SourceID: "l2", Category: feed.CategoryListing, Timestamp: base.Add(time.Minute)},
		{SourceID: "p1", Category: feed.CategoryPrediction}, // no timestamp
		{SourceID: "u2", Category: feed.CategorySignup, Timestamp: base.Add(4 * time.Minute)},
		{SourceID: "l3", Category: feed.CategoryListing, Timestamp: base.Add(2 * time.Minute)},
	}

	all := view.FilterActivities(activities, view.TabAll)
	require.Len(t, all, 6)
	got := make([]string, len(all))
	for i, a := range all {
		got[i] = a.SourceID
	}
	// Newest first, the timestamp-less prediction last.
	require.Equal(t, []string{"u1", "u2", "l1", "l3", "l2", "p1"}, got)

	listings := view.FilterActivities(activities, "LISTING")
	require.Len(t, listings, 3)
	for _, a := range listings {
		require.Equal(t, feed.CategoryListing, a.Category)
	}

	require.Len(t, view.FilterActivities(activities, "SIGNUP"), 2)
	require.Len(t, view.FilterActivities(activities, "PREDICTION"), 1)
	require.Len(t, view.FilterActivities(activities, ""), 6)
}

func TestFilterActivities_DoesNotMutateInput(t *testing.T) {
	activities := []feed.Activity{
		{SourceID: "b", Timestamp: time.Unix(1, 0)},
		{SourceID: "a", Timestamp: time.Unix(2, 0)},
	}
	_ = view.FilterActivities(activities, view.TabAll)
	require.Equal(t, "b", activities[0].SourceID)
}
