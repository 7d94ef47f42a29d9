// ForgeFlow orchestrator server — receives board webhooks, manages the
// durable workflow queue, and drives runs through their stages.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/forgeflow/forgeflow/pkg/api"
	"github.com/forgeflow/forgeflow/pkg/board"
	"github.com/forgeflow/forgeflow/pkg/broker"
	"github.com/forgeflow/forgeflow/pkg/cleanup"
	"github.com/forgeflow/forgeflow/pkg/codehost"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/database"
	"github.com/forgeflow/forgeflow/pkg/dispatch"
	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/queue"
	"github.com/forgeflow/forgeflow/pkg/reactivation"
	"github.com/forgeflow/forgeflow/pkg/services"
	"github.com/forgeflow/forgeflow/pkg/validation"
	"github.com/forgeflow/forgeflow/pkg/workflow"
	"github.com/joho/godotenv"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting ForgeFlow",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: runs this pod abandoned in a
	// previous life go back to pending and resume from their snapshots.
	if err := queue.RecoverStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. External collaborators
	boardSvc := board.NewService(cfg.Board)
	if boardSvc == nil {
		slog.Warn("Board integration disabled — validations auto-approve")
	}

	model, err := llm.NewAnthropic(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "model", cfg.LLM.Model)

	host := codehost.NewGitHub(cfg.CodeHost, codehost.Timeouts{
		Clone: cfg.Workflow.CloneTimeout,
		HTTP:  cfg.Workflow.HTTPTimeout,
	})

	publisher, err := broker.NewPublisher(cfg.Broker)
	if err != nil {
		slog.Error("Failed to connect to message broker", "error", err)
		os.Exit(1)
	}
	if publisher != nil {
		defer publisher.Close()
		slog.Info("Message broker connected", "url", cfg.Broker.URL)
	}

	// 5. Validation coordinator, restarted pollers included
	coordinator := validation.NewCoordinator(cfg, dbClient.Client, boardSvc, model, publisher)
	if err := coordinator.RestartPending(ctx); err != nil {
		slog.Error("Failed to restart pending validations", "error", err)
		// Non-fatal — expired requests are swept eventually
	}

	// 6. Workflow executor and worker pool
	stages := workflow.NewStages(host, model, boardSvc, nil, cfg.Workflow)
	executor := workflow.NewExecutor(cfg, dbClient.Client, stages, coordinator, boardSvc)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Ingress: reactivation analyzer + dispatch processor, then replay of
	// events persisted before a crash could route them.
	analyzer := reactivation.NewAnalyzer(cfg, dbClient.Client, model, publisher)
	processor := dispatch.NewProcessor(cfg, dbClient.Client, analyzer, publisher)
	if _, err := processor.Replay(ctx, cfg.Queue.RecoveryWindow, 200); err != nil {
		slog.Error("Failed to replay unprocessed webhook events", "error", err)
		// Non-fatal — the rows stay pending for the next start
	}

	// 8. Retention loop
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.DB(), services.NewQueueService(dbClient.Client))
	cleanupService.Start(ctx)

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, processor, workerPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("ForgeFlow started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer shutdownCancel()

	cleanupService.Stop()

	// Stop validation pollers first: pending requests stay pending and are
	// picked up again by RestartPending on the next start.
	coordinator.Stop()

	// Stop worker pool (wait for active runs to finish or suspend)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
