// Package mcp exposes market analytics and price prediction as MCP tools,
// so LLM clients query the same services the HTTP API serves.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/estatoai/estato/internal/dashboard"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/feed"
	"github.com/estatoai/estato/internal/stats"
)

const serverInstructions = `Estato exposes the B-17 property market: request a price
estimate with predict_price, platform-wide totals and per-sector aggregates with
market_overview, and the normalized activity feed with recent_activity.`

// Services contains the domain services the tools need.
type Services struct {
	Predictions *prediction.Service
	Dashboard   *dashboard.Service
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "estato",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "predict_price",
		Description: "Estimate a property price from its features (23 model inputs)",
	}, predictPriceHandler(cfg.Services.Predictions))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "market_overview",
		Description: "Platform totals and per-sector price aggregates",
	}, marketOverviewHandler(cfg.Services))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_activity",
		Description: "The normalized platform activity feed, newest first, optionally filtered by category tab",
	}, recentActivityHandler(cfg.Services.Dashboard))

	return server
}

// PredictPriceResult is the structured output of predict_price.
type PredictPriceResult struct {
	Location       string  `json:"location"`
	PredictedPrice float64 `json:"predicted_price"`
}

func predictPriceHandler(svc *prediction.Service) sdkmcp.ToolHandlerFor[prediction.FeatureSet, PredictPriceResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, features prediction.FeatureSet) (*sdkmcp.CallToolResult, PredictPriceResult, error) {
		p, err := svc.Predict(ctx, features)
		if err != nil {
			return nil, PredictPriceResult{}, err
		}
		return nil, PredictPriceResult{
			Location:       p.Location,
			PredictedPrice: p.PredictedPrice,
		}, nil
	}
}

// MarketOverviewInput is intentionally empty.
type MarketOverviewInput struct{}

// SectorSummary condenses a GroupAggregate for tool output.
type SectorSummary struct {
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avg_price"`
	MaxPrice float64 `json:"max_price"`
	MinPrice float64 `json:"min_price"`
}

// MarketOverviewResult is the structured output of market_overview.
type MarketOverviewResult struct {
	Users       stats.UserTotals         `json:"users"`
	Listings    stats.ListingTotals      `json:"listings"`
	Predictions stats.PredictionTotals   `json:"predictions"`
	Sectors     map[string]SectorSummary `json:"sectors"`
}

func marketOverviewHandler(services Services) sdkmcp.ToolHandlerFor[MarketOverviewInput, MarketOverviewResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ MarketOverviewInput) (*sdkmcp.CallToolResult, MarketOverviewResult, error) {
		snap := services.Dashboard.Load(ctx)

		predictions, err := services.Predictions.List(ctx)
		if err != nil {
			return nil, MarketOverviewResult{}, err
		}

		sectors := make(map[string]SectorSummary)
		for sector, agg := range stats.SectorStats(predictions) {
			sectors[sector] = SectorSummary{
				Count:    agg.Count,
				AvgPrice: agg.Average(),
				MaxPrice: agg.Max.Value,
				MinPrice: agg.Min.Value,
			}
		}

		return nil, MarketOverviewResult{
			Users:       snap.Users,
			Listings:    snap.Listings,
			Predictions: snap.Predictions,
			Sectors:     sectors,
		}, nil
	}
}

// RecentActivityInput selects a feed tab and page size.
type RecentActivityInput struct {
	Tab   string `json:"tab,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// RecentActivityResult is the structured output of recent_activity.
type RecentActivityResult struct {
	Activities []feed.Activity `json:"activities"`
}

func recentActivityHandler(svc *dashboard.Service) sdkmcp.ToolHandlerFor[RecentActivityInput, RecentActivityResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input RecentActivityInput) (*sdkmcp.CallToolResult, RecentActivityResult, error) {
		snap := svc.Load(ctx)
		activities := snap.Feed(input.Tab)
		if input.Limit > 0 && input.Limit < len(activities) {
			activities = activities[:input.Limit]
		}
		return nil, RecentActivityResult{Activities: activities}, nil
	}
}
