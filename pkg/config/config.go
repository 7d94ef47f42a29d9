// Package config provides typed configuration for the ForgeFlow orchestrator,
// loaded from environment variables with optional forgeflow.yaml overrides.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// Queue and worker pool configuration.
	Queue *QueueConfig

	// Workflow stage graph configuration.
	Workflow *WorkflowConfig

	// Human-validation coordinator configuration.
	Validation *ValidationConfig

	// Reactivation analyzer configuration.
	Reactivation *ReactivationConfig

	// Retention and cleanup configuration.
	Retention *RetentionConfig

	// External collaborator credentials and endpoints.
	Board    *BoardConfig
	CodeHost *CodeHostConfig
	LLM      *LLMConfig
	Broker   *BrokerConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
