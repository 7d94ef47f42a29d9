package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	// Initialize reads the process environment, so pin the variables the
	// loader recognizes to known values for the whole test.
	for _, key := range []string{
		"WORKER_COUNT", "MAX_CONCURRENT_RUNS", "WORKFLOW_TIMEOUT_SECONDS",
		"QUEUE_RECOVERY_WINDOW_HOURS", "VALIDATION_TIMEOUT_SECONDS",
		"VALIDATION_POLL_INTERVAL_SECONDS", "MAX_REJECTIONS",
		"MAX_DEBUG_ATTEMPTS", "WORK_DIR", "REACTIVATION_CONFIDENCE_THRESHOLD",
		"BOARD_API_URL", "BOARD_API_TOKEN", "GITHUB_API_URL", "GITHUB_TOKEN",
		"ANTHROPIC_API_KEY", "LLM_MODEL", "NATS_URL",
	} {
		t.Setenv(key, "")
	}

	t.Run("defaults without a yaml file", func(t *testing.T) {
		cfg, err := Initialize(context.Background(), t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Queue.WorkerCount)
		assert.Equal(t, 5, cfg.Queue.MaxConcurrentRuns)
		assert.Equal(t, 30*time.Minute, cfg.Queue.WorkflowTimeout)
		assert.Equal(t, 24*time.Hour, cfg.Queue.RecoveryWindow)
		assert.NotNil(t, cfg.Validation)
		assert.NotNil(t, cfg.Reactivation)
		assert.NotNil(t, cfg.Retention)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
queue:
  worker_count: 2
  max_concurrent_runs: 3
  poll_interval: 2s
  poll_interval_jitter: 500ms
  workflow_timeout: 45m
  validation_wait: 10m
  validation_wait_max: 30m
  sweep_interval: 1m
  heartbeat_interval: 15s
  orphan_threshold: 2m
  recovery_window: 12h
  graceful_shutdown_timeout: 5m
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "forgeflow.yaml"), []byte(yaml), 0o644))

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Queue.WorkerCount)
		assert.Equal(t, 45*time.Minute, cfg.Queue.WorkflowTimeout)
		assert.Equal(t, 12*time.Hour, cfg.Queue.RecoveryWindow)
	})

	t.Run("environment overrides yaml and defaults", func(t *testing.T) {
		t.Setenv("WORKER_COUNT", "8")
		t.Setenv("REACTIVATION_CONFIDENCE_THRESHOLD", "0.75")
		t.Setenv("BOARD_API_TOKEN", "tok-123")

		cfg, err := Initialize(context.Background(), t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 8, cfg.Queue.WorkerCount)
		assert.InDelta(t, 0.75, cfg.Reactivation.ConfidenceThreshold, 0.001)
		assert.Equal(t, "tok-123", cfg.Board.Token)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		t.Setenv("WORKER_COUNT", "0")
		_, err := Initialize(context.Background(), t.TempDir())
		assert.ErrorContains(t, err, "worker_count")
	})

	t.Run("out of range confidence threshold is rejected", func(t *testing.T) {
		t.Setenv("REACTIVATION_CONFIDENCE_THRESHOLD", "1.5")
		_, err := Initialize(context.Background(), t.TempDir())
		assert.ErrorContains(t, err, "confidence threshold")
	})

	t.Run("malformed yaml fails loudly", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "forgeflow.yaml"), []byte("queue: ["), 0o644))
		_, err := Initialize(context.Background(), dir)
		assert.Error(t, err)
	})
}
