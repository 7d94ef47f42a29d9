package config

import "time"

// BoardConfig holds credentials and endpoints for the work-tracking board API.
type BoardConfig struct {
	APIURL string `yaml:"api_url"`
	Token  string `yaml:"-"`

	// AgentName is the display name used in the visible comment footer.
	AgentName string `yaml:"agent_name"`

	// StatusColumnID and LinkColumnID identify the board columns the
	// orchestrator updates on completion.
	StatusColumnID string `yaml:"status_column_id"`
	LinkColumnID   string `yaml:"link_column_id"`

	// DoneStatus is the column value written when a run merges.
	DoneStatus string `yaml:"done_status"`

	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultBoardConfig returns the built-in board defaults.
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		APIURL:         "https://api.monday.com/v2",
		AgentName:      "ForgeFlow",
		StatusColumnID: "status",
		LinkColumnID:   "link",
		DoneStatus:     "Done",
		RequestTimeout: 30 * time.Second,
	}
}

// CodeHostConfig holds credentials and endpoints for the code-hosting API.
type CodeHostConfig struct {
	APIURL string `yaml:"api_url"`
	Token  string `yaml:"-"`

	// DefaultBranch is the branch feature branches are created from when
	// the repository default cannot be resolved.
	DefaultBranch string `yaml:"default_branch"`

	// DefaultRepository is the repository worked on when a task description
	// does not name one.
	DefaultRepository string `yaml:"default_repository"`

	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultCodeHostConfig returns the built-in code host defaults.
func DefaultCodeHostConfig() *CodeHostConfig {
	return &CodeHostConfig{
		APIURL:         "https://api.github.com",
		DefaultBranch:  "main",
		RequestTimeout: 30 * time.Second,
	}
}

// LLMConfig holds credentials and model selection for the LLM provider.
type LLMConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"`

	// MaxTokens caps completion length for orchestration calls
	// (interpretation, analysis). Content stages may override per call.
	MaxTokens int `yaml:"max_tokens"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:     "claude-sonnet-4-5",
		MaxTokens: 4096,
	}
}

// BrokerConfig holds the message bus connection settings.
type BrokerConfig struct {
	// URL is the NATS server URL. Empty disables the broker (the DB-backed
	// queue remains the source of truth either way).
	URL string `yaml:"url"`

	// SubjectPrefix namespaces the webhooks/workflows/validations/dead-letter
	// subjects.
	SubjectPrefix string `yaml:"subject_prefix"`
}

// DefaultBrokerConfig returns the built-in broker defaults.
func DefaultBrokerConfig() *BrokerConfig {
	return &BrokerConfig{
		SubjectPrefix: "forgeflow",
	}
}
