// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/database"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// Service periodically enforces retention policies:
//   - Drops webhook event partitions past the retention window
//   - Deletes terminal queue entries past their retention window
//   - Keeps upcoming event partitions pre-created
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	db           *sql.DB
	queueService *services.QueueService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, db *sql.DB, queueService *services.QueueService) *Service {
	return &Service{
		config:       cfg,
		db:           db,
		queueService: queueService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"webhook_event_retention_days", s.config.WebhookEventRetentionDays,
		"queue_entry_retention_days", s.config.QueueEntryRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.dropOldEventPartitions(ctx)
	s.purgeTerminalEntries(ctx)
	s.ensureUpcomingPartitions(ctx)
}

// dropOldEventPartitions removes whole monthly webhook event partitions whose
// upper bound is older than the retention window. Dropping a partition is a
// metadata operation, far cheaper than row-level deletes on the event log.
func (s *Service) dropOldEventPartitions(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.WebhookEventRetentionDays)
	dropped, err := database.DropEventPartitionsBefore(ctx, s.db, cutoff)
	if err != nil {
		slog.Error("Retention: event partition drop failed", "error", err)
		return
	}
	if len(dropped) > 0 {
		slog.Info("Retention: dropped event partitions", "partitions", dropped)
	}
}

func (s *Service) purgeTerminalEntries(ctx context.Context) {
	retention := time.Duration(s.config.QueueEntryRetentionDays) * 24 * time.Hour
	count, err := s.queueService.PurgeTerminal(ctx, retention)
	if err != nil {
		slog.Error("Retention: queue entry purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged terminal queue entries", "count", count)
	}
}

func (s *Service) ensureUpcomingPartitions(ctx context.Context) {
	if err := database.EnsureEventPartitions(ctx, s.db, time.Now(), 2); err != nil {
		slog.Error("Retention: event partition pre-create failed", "error", err)
	}
}
