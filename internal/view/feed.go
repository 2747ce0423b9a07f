package view

import (
	"sort"

	"github.com/estatoai/estato/internal/feed"
)

// TabAll is the wildcard activity tab.
const TabAll = "ALL"

// FilterActivities returns the activities matching the given category tab,
// ordered newest first. The input slice is never mutated; passing TabAll
// (or an empty tab) returns everything.
func FilterActivities(activities []feed.Activity, tab string) []feed.Activity {
	out := make([]feed.Activity, 0, len(activities))
	for _, a := range activities {
		if tab == "" || tab == TabAll || string(a.Category) == tab {
			out = append(out, a)
		}
	}
	SortActivities(out)
	return out
}

// SortActivities orders activities in place by descending timestamp.
// Activities without a resolved timestamp carry the zero instant and so
// sort last; ties are broken by source record ID.
func SortActivities(activities []feed.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		ti, tj := activities[i].Timestamp, activities[j].Timestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return activities[i].SourceID < activities[j].SourceID
	})
}
