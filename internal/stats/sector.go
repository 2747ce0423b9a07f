// Package stats derives scalar and per-group statistics from a collection
// in a single pass. Everything here is recomputed from scratch per call;
// there is no state carried between recomputations.
package stats

import (
	"regexp"
	"strings"

	"github.com/estatoai/estato/internal/domain/prediction"
)

var sectorPattern = regexp.MustCompile(`(?i)Sector\s+([A-Z0-9\-\.]+)`)

// Extreme pairs an observed extreme value with the record that produced
// it, so consumers can show the record behind a chart bar without a
// second lookup.
type Extreme struct {
	Value  float64               `json:"value"`
	Record prediction.Prediction `json:"record"`
}

// GroupAggregate holds running statistics for one sector group. Groups
// with zero observations are absent from the projection output entirely,
// never present with zero-initialized extremes.
type GroupAggregate struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Max   Extreme `json:"max"`
	Min   Extreme `json:"min"`
}

// Average returns the mean value for the group.
func (g GroupAggregate) Average() float64 {
	if g.Count == 0 {
		return 0
	}
	return g.Sum / float64(g.Count)
}

// SectorKey extracts the sector group key from a free-text location.
// The second return is false when the location carries no sector token;
// such records are excluded from grouping, not dumped in a catch-all
// bucket that would corrupt the statistics.
func SectorKey(location string) (string, bool) {
	m := sectorPattern.FindStringSubmatch(location)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

// SectorStats projects predictions into per-sector aggregates in one pass.
func SectorStats(predictions []prediction.Prediction) map[string]GroupAggregate {
	out := make(map[string]GroupAggregate)
	for _, p := range predictions {
		sector, ok := SectorKey(p.Location)
		if !ok {
			continue
		}
		agg, seen := out[sector]
		if !seen {
			agg = GroupAggregate{
				Max: Extreme{Value: p.PredictedPrice, Record: p},
				Min: Extreme{Value: p.PredictedPrice, Record: p},
			}
		}
		agg.Count++
		agg.Sum += p.PredictedPrice
		if p.PredictedPrice > agg.Max.Value {
			agg.Max = Extreme{Value: p.PredictedPrice, Record: p}
		}
		if p.PredictedPrice < agg.Min.Value {
			agg.Min = Extreme{Value: p.PredictedPrice, Record: p}
		}
		out[sector] = agg
	}
	return out
}
