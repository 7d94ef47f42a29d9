package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlConfig represents the optional forgeflow.yaml file structure.
// Everything in it overrides the built-in defaults; environment variables
// override both.
type yamlConfig struct {
	Queue        *QueueConfig        `yaml:"queue"`
	Workflow     *WorkflowConfig     `yaml:"workflow"`
	Validation   *ValidationConfig   `yaml:"validation"`
	Reactivation *ReactivationConfig `yaml:"reactivation"`
	Retention    *RetentionConfig    `yaml:"retention"`
	Board        *BoardConfig        `yaml:"board"`
	CodeHost     *CodeHostConfig     `yaml:"code_host"`
	LLM          *LLMConfig          `yaml:"llm"`
	Broker       *BrokerConfig       `yaml:"broker"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Precedence, lowest to highest:
//  1. Built-in defaults
//  2. forgeflow.yaml in configDir (if present)
//  3. Environment variables
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := &Config{
		configDir:    configDir,
		Queue:        DefaultQueueConfig(),
		Workflow:     DefaultWorkflowConfig(),
		Validation:   DefaultValidationConfig(),
		Reactivation: DefaultReactivationConfig(),
		Retention:    DefaultRetentionConfig(),
		Board:        DefaultBoardConfig(),
		CodeHost:     DefaultCodeHostConfig(),
		LLM:          DefaultLLMConfig(),
		Broker:       DefaultBrokerConfig(),
	}

	if err := applyYAML(cfg, filepath.Join(configDir, "forgeflow.yaml")); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyYAML merges the optional YAML file into cfg. A missing file is fine.
func applyYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if y.Queue != nil {
		cfg.Queue = y.Queue
	}
	if y.Workflow != nil {
		cfg.Workflow = y.Workflow
	}
	if y.Validation != nil {
		cfg.Validation = y.Validation
	}
	if y.Reactivation != nil {
		cfg.Reactivation = y.Reactivation
	}
	if y.Retention != nil {
		cfg.Retention = y.Retention
	}
	if y.Board != nil {
		cfg.Board = y.Board
	}
	if y.CodeHost != nil {
		cfg.CodeHost = y.CodeHost
	}
	if y.LLM != nil {
		cfg.LLM = y.LLM
	}
	if y.Broker != nil {
		cfg.Broker = y.Broker
	}
	return nil
}

// applyEnv overlays recognized environment variables onto cfg.
func applyEnv(cfg *Config) {
	cfg.Queue.WorkerCount = envInt("WORKER_COUNT", cfg.Queue.WorkerCount)
	cfg.Queue.MaxConcurrentRuns = envInt("MAX_CONCURRENT_RUNS", cfg.Queue.MaxConcurrentRuns)
	cfg.Queue.WorkflowTimeout = envSeconds("WORKFLOW_TIMEOUT_SECONDS", cfg.Queue.WorkflowTimeout)
	cfg.Queue.RecoveryWindow = envHours("QUEUE_RECOVERY_WINDOW_HOURS", cfg.Queue.RecoveryWindow)

	cfg.Validation.Timeout = envSeconds("VALIDATION_TIMEOUT_SECONDS", cfg.Validation.Timeout)
	cfg.Validation.PollInterval = envSeconds("VALIDATION_POLL_INTERVAL_SECONDS", cfg.Validation.PollInterval)
	cfg.Validation.MaxRejections = envInt("MAX_REJECTIONS", cfg.Validation.MaxRejections)

	cfg.Workflow.MaxDebugAttempts = envInt("MAX_DEBUG_ATTEMPTS", cfg.Workflow.MaxDebugAttempts)
	if v := os.Getenv("WORK_DIR"); v != "" {
		cfg.Workflow.WorkDir = v
	}

	cfg.Reactivation.ConfidenceThreshold = envFloat("REACTIVATION_CONFIDENCE_THRESHOLD", cfg.Reactivation.ConfidenceThreshold)

	if v := os.Getenv("BOARD_API_URL"); v != "" {
		cfg.Board.APIURL = v
	}
	cfg.Board.Token = os.Getenv("BOARD_API_TOKEN")

	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.CodeHost.APIURL = v
	}
	cfg.CodeHost.Token = os.Getenv("GITHUB_TOKEN")

	cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}

	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.Broker.URL = v
	}
}

// validate rejects configurations that cannot work.
func (c *Config) validate() error {
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("worker_count must be >= 1, got %d", c.Queue.WorkerCount)
	}
	if c.Queue.MaxConcurrentRuns < 1 {
		return fmt.Errorf("max_concurrent_runs must be >= 1, got %d", c.Queue.MaxConcurrentRuns)
	}
	if c.Queue.ValidationWait > c.Queue.ValidationWaitMax {
		return fmt.Errorf("validation_wait %v exceeds validation_wait_max %v",
			c.Queue.ValidationWait, c.Queue.ValidationWaitMax)
	}
	if c.Validation.MaxRejections < 1 {
		return fmt.Errorf("max_rejections must be >= 1, got %d", c.Validation.MaxRejections)
	}
	if c.Reactivation.ConfidenceThreshold < 0 || c.Reactivation.ConfidenceThreshold > 1 {
		return fmt.Errorf("reactivation confidence threshold must be in [0,1], got %v",
			c.Reactivation.ConfidenceThreshold)
	}
	if c.Workflow.MaxDebugAttempts < 0 {
		return fmt.Errorf("max_debug_attempts must be >= 0, got %d", c.Workflow.MaxDebugAttempts)
	}
	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("Ignoring non-numeric environment value", "key", key, "value", v)
	}
	return fallback
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	if n := envInt(key, -1); n >= 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envHours(key string, fallback time.Duration) time.Duration {
	if n := envInt(key, -1); n >= 0 {
		return time.Duration(n) * time.Hour
	}
	return fallback
}
