package config

import "time"

// QueueConfig contains queue manager and worker pool configuration.
// These values control how queue entries are admitted, claimed, and swept.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global cap of simultaneously running runs
	// across all replicas. Enforced by a database COUNT(*) check.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending entries.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// WorkflowTimeout is the maximum time an entry may stay in running.
	WorkflowTimeout time.Duration `yaml:"workflow_timeout"`

	// ValidationWait is the maximum time an entry may stay in
	// waiting_validation before the sweeper forces a timeout. The validation
	// coordinator may request a longer window per validation, up to
	// ValidationWaitMax.
	ValidationWait    time.Duration `yaml:"validation_wait"`
	ValidationWaitMax time.Duration `yaml:"validation_wait_max"`

	// SweepInterval is how often the sweeper scans for expired entries.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// HeartbeatInterval is how often a worker refreshes the run heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanThreshold is how long a running run can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// RecoveryWindow bounds how far back the manager reloads non-terminal
	// entries on process start.
	RecoveryWindow time.Duration `yaml:"recovery_window"`

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		WorkflowTimeout:         30 * time.Minute,
		ValidationWait:          15 * time.Minute,
		ValidationWaitMax:       60 * time.Minute,
		SweepInterval:           5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanThreshold:         5 * time.Minute,
		RecoveryWindow:          24 * time.Hour,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
