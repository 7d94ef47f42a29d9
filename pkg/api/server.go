// Package api exposes the HTTP surface: the board webhook ingress and the
// read/cancel endpoints for tasks, runs, and the queue.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/database"
	"github.com/forgeflow/forgeflow/pkg/dispatch"
	"github.com/forgeflow/forgeflow/pkg/queue"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// Server is the HTTP server. All state mutation goes through the dispatch
// processor and the services; handlers never touch Ent builders directly.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	processor *dispatch.Processor

	webhookService    *services.WebhookService
	taskService       *services.TaskService
	runService        *services.RunService
	stageService      *services.StageService
	validationService *services.ValidationService
	queueService      *services.QueueService

	workerPool *queue.WorkerPool

	echo   *echo.Echo
	http   *http.Server
	logger *slog.Logger
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(cfg *config.Config, dbClient *database.Client, processor *dispatch.Processor, workerPool *queue.WorkerPool) *Server {
	s := &Server{
		cfg:               cfg,
		dbClient:          dbClient,
		processor:         processor,
		webhookService:    services.NewWebhookService(dbClient.Client),
		taskService:       services.NewTaskService(dbClient.Client),
		runService:        services.NewRunService(dbClient.Client),
		stageService:      services.NewStageService(dbClient.Client),
		validationService: services.NewValidationService(dbClient.Client),
		queueService:      services.NewQueueService(dbClient.Client),
		workerPool:        workerPool,
		logger:            slog.Default().With("component", "api"),
	}

	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger(s.logger))

	e.GET("/health", s.healthHandler)
	e.GET("/webhook/board", s.boardWebhookVerifyHandler)
	e.POST("/webhook/board", s.boardWebhookHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/tasks", s.listTasksHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.GET("/tasks/:id/runs", s.listTaskRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.GET("/queue", s.queueStatusHandler)
	v1.GET("/queue/entries", s.listQueueEntriesHandler)
	v1.POST("/queue/entries/:id/cancel", s.cancelEntryHandler)

	s.echo = e
	return s
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
