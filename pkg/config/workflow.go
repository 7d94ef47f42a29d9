package config

import "time"

// WorkflowConfig controls the stage scheduler: retry policy, debug loop
// bounds, and per-stage timeouts.
type WorkflowConfig struct {
	// MaxDebugAttempts bounds the debug↻test loop. On exhaustion the run
	// proceeds to qa with a failure marker.
	MaxDebugAttempts int `yaml:"max_debug_attempts"`

	// RetryBackoffBase and RetryBackoffCap shape the exponential backoff
	// between retry attempts of a retryable stage.
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`
	RetryBackoffCap  time.Duration `yaml:"retry_backoff_cap"`

	// StageTimeout wraps a single stage invocation (adapter call + retries).
	StageTimeout time.Duration `yaml:"stage_timeout"`

	// AdapterTimeouts are per-call timeouts by adapter kind.
	CloneTimeout time.Duration `yaml:"clone_timeout"`
	LLMTimeout   time.Duration `yaml:"llm_timeout"`
	TestTimeout  time.Duration `yaml:"test_timeout"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`

	// WorkDir is the root directory for per-run repository checkouts.
	WorkDir string `yaml:"work_dir"`
}

// DefaultWorkflowConfig returns the built-in workflow defaults.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		MaxDebugAttempts: 3,
		RetryBackoffBase: 5 * time.Second,
		RetryBackoffCap:  60 * time.Second,
		StageTimeout:     10 * time.Minute,
		CloneTimeout:     120 * time.Second,
		LLMTimeout:       120 * time.Second,
		TestTimeout:      5 * time.Minute,
		HTTPTimeout:      30 * time.Second,
		WorkDir:          "/tmp/forgeflow",
	}
}
