package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
	"github.com/estatoai/estato/internal/stats"
)

func TestCountUsers(t *testing.T) {
	users := []user.User{
		{Role: user.RoleBuyer},
		{Role: user.RoleBuyer},
		{Role: user.RoleSeller},
		{Role: user.RoleBoth}, // counts as seller
		{Role: user.RoleAgent},
		{Role: "Agent"}, // case-insensitive
		{Role: ""},      // counted in total only
	}

	totals := stats.CountUsers(users)
	require.Equal(t, 7, totals.Total)
	require.Equal(t, 2, totals.Buyers)
	require.Equal(t, 2, totals.Sellers)
	require.Equal(t, 2, totals.Agents)
}

func TestCountListings(t *testing.T) {
	listings := []listing.Listing{
		{Visibility: listing.VisibilityPublic},
		{Visibility: listing.VisibilityPrivate},
		{}, // absent visibility counts as public
	}

	totals := stats.CountListings(listings)
	require.Equal(t, 3, totals.Total)
	require.Equal(t, 2, totals.Public)
	require.Equal(t, 1, totals.Private)
}

func TestCountPredictions(t *testing.T) {
	predictions := []prediction.Prediction{
		{Location: "B-17 Sector F, Block 2", PredictedPrice: 10_000_000},
		{Location: "B-17 Sector F, Block 3", PredictedPrice: 20_000_000},
		{Location: "DHA Phase 2, Block 1", PredictedPrice: 30_000_000},
		{Location: "", PredictedPrice: 40_000_000},
	}

	totals := stats.CountPredictions(predictions)
	require.Equal(t, 4, totals.Total)
	require.Equal(t, 25_000_000.0, totals.AvgPrice)
	require.Equal(t, "B-17 Sector F", totals.TopLocation)
}

func TestCountPredictions_Empty(t *testing.T) {
	totals := stats.CountPredictions(nil)
	require.Equal(t, 0, totals.Total)
	require.Zero(t, totals.AvgPrice)
	require.Empty(t, totals.TopLocation)
}
