package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/estatoai/estato/internal/config"
	"github.com/estatoai/estato/internal/dashboard"
	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
	"github.com/estatoai/estato/internal/inventory"
	"github.com/estatoai/estato/internal/mcp"
	"github.com/estatoai/estato/internal/ml"
	"github.com/estatoai/estato/internal/sqlite"
	"github.com/estatoai/estato/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := os.Stdout
	if cfg.MCP.Enabled && cfg.MCP.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := sqlite.NewUserRepository(db)
	listingRepo := sqlite.NewListingRepository(db)
	predictionRepo := sqlite.NewPredictionRepository(db)
	watcher := sqlite.NewListingWatcher(db, listingRepo)

	userSvc := user.NewService(userRepo, cfg.Admin.Email, logger)
	listingSvc := listing.NewService(listingRepo, logger)
	predictionSvc := prediction.NewService(predictionRepo, ml.NewClient(cfg.Model.URL), logger)
	dashboardSvc := dashboard.NewService(userRepo, listingRepo, predictionRepo, logger)

	inventoryMgr := inventory.NewManager(subscriberAdapter{watcher}, logger)
	defer inventoryMgr.Close()

	var mcpServer *sdkmcp.Server
	if cfg.MCP.Enabled {
		mcpServer = mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Predictions: predictionSvc,
				Dashboard:   dashboardSvc,
			},
			Logger: logger,
		})
		if cfg.MCP.Mode == "stdio" {
			runStdioMode(logger, mcpServer)
			return
		}
	}

	router := transport.NewRouter(userSvc, listingSvc, predictionSvc, dashboardSvc, inventoryMgr, logger)
	if mcpServer != nil {
		mcpHandler := sdkmcp.NewStreamableHTTPHandler(
			func(r *http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{
				Stateless:      false,
				SessionTimeout: 30 * time.Minute,
			},
		)
		router.Handle("/mcp", mcpHandler)
		router.Handle("/mcp/*", mcpHandler)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

// subscriberAdapter narrows the sqlite watcher to the inventory port.
type subscriberAdapter struct {
	watcher *sqlite.ListingWatcher
}

func (a subscriberAdapter) Subscribe(ctx context.Context, q listing.Query) inventory.Subscription {
	return a.watcher.Subscribe(ctx, q)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
