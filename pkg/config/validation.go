package config

import "time"

// ValidationConfig controls the human-validation coordinator.
type ValidationConfig struct {
	// Timeout is the default window for an authorized reply before the
	// validation expires. Configurable per validation up to the queue's
	// ValidationWaitMax.
	Timeout time.Duration `yaml:"timeout"`

	// PollInterval is the steady polling interval for board replies.
	// Initial fast probes run at 0s, 2s and 5s regardless.
	PollInterval time.Duration `yaml:"poll_interval"`

	// NoActivityExitShort and NoActivityExitLong are the early-exit windows:
	// after this long without any board activity the poller backs off to a
	// final wait. Short applies to timeouts under 10 minutes.
	NoActivityExitShort time.Duration `yaml:"no_activity_exit_short"`
	NoActivityExitLong  time.Duration `yaml:"no_activity_exit_long"`

	// ClockSkewGrace widens the reply-discovery window to tolerate clock
	// skew between the board and this process.
	ClockSkewGrace time.Duration `yaml:"clock_skew_grace"`

	// MaxRejections bounds a validation chain. The rejection that reaches
	// this count is coerced to an abandon verdict.
	MaxRejections int `yaml:"max_rejections"`
}

// DefaultValidationConfig returns the built-in validation defaults.
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		Timeout:             60 * time.Minute,
		PollInterval:        5 * time.Second,
		NoActivityExitShort: 120 * time.Second,
		NoActivityExitLong:  300 * time.Second,
		ClockSkewGrace:      30 * time.Second,
		MaxRejections:       3,
	}
}

// ReactivationConfig controls the reactivation analyzer.
type ReactivationConfig struct {
	// ConfidenceThreshold is the minimum intent-confidence score required
	// to reactivate a finished task from a follow-up comment.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// Cooldown is how long after a reactivation further comments are
	// persisted but not acted on, damping accidental comment storms.
	Cooldown time.Duration `yaml:"cooldown"`
}

// DefaultReactivationConfig returns the built-in reactivation defaults.
func DefaultReactivationConfig() *ReactivationConfig {
	return &ReactivationConfig{
		ConfidenceThreshold: 0.2,
		Cooldown:            10 * time.Minute,
	}
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// WebhookEventRetentionDays is how many days to keep webhook events
	// before deleting them (the event table is partitioned by month).
	WebhookEventRetentionDays int `yaml:"webhook_event_retention_days"`

	// QueueEntryRetentionDays is how many days to keep terminal queue
	// entries.
	QueueEntryRetentionDays int `yaml:"queue_entry_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		WebhookEventRetentionDays: 90,
		QueueEntryRetentionDays:   30,
		CleanupInterval:           12 * time.Hour,
	}
}
