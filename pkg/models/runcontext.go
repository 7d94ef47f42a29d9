package models

import (
	"encoding/json"
	"fmt"
)

// Stage names of the run graph, in declared order. The debug↻test loop and
// the validation-rejection edge back to implement are the only cycles, and
// both carry max-iteration guards on the edge.
const (
	StagePrepare         = "prepare"
	StageAnalyze         = "analyze"
	StageImplement       = "implement"
	StageTest            = "test"
	StageDebug           = "debug"
	StageQA              = "qa"
	StageFinalizePR      = "finalize_pr"
	StageHumanValidation = "human_validation"
	StageMerge           = "merge"
)

// RunContext is the full working context of a run: immutable task inputs plus
// accumulated stage outputs. It is serialized into StageExecution.output
// after every stage; recovery loads the latest snapshot and re-enters
// NextStage.
type RunContext struct {
	TaskID         int64  `json:"task_id"`
	RunID          int64  `json:"run_id"`
	ExternalItemID string `json:"external_item_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	RepositoryURL  string `json:"repository_url"`
	UserLanguage   string `json:"user_language"`

	// NextStage is the stage the scheduler enters on resume.
	NextStage string `json:"next_stage"`

	// prepare
	WorkDir       string `json:"work_dir,omitempty"`
	Branch        string `json:"branch,omitempty"`
	BaseBranch    string `json:"base_branch,omitempty"`
	HeadCommitSHA string `json:"head_commit_sha,omitempty"`

	// analyze
	Plan *AnalysisPlan `json:"plan,omitempty"`

	// implement
	ChangedFiles []string `json:"changed_files,omitempty"`
	ImplementLog string   `json:"implement_log,omitempty"`

	// test / debug
	TestsPassed   bool   `json:"tests_passed"`
	TestOutput    string `json:"test_output,omitempty"`
	DebugAttempts int    `json:"debug_attempts"`
	TestsGaveUp   bool   `json:"tests_gave_up,omitempty"`

	// qa
	QAReport string `json:"qa_report,omitempty"`

	// finalize_pr
	PRNumber int    `json:"pr_number,omitempty"`
	PRURL    string `json:"pr_url,omitempty"`

	// human_validation
	ValidationRequestID int64    `json:"validation_request_id,omitempty"`
	RejectionCount      int      `json:"rejection_count"`
	ModInstructions     []string `json:"modification_instructions,omitempty"`
	AutoApproved        bool     `json:"auto_approved,omitempty"`

	// merge
	MergedPRURL string `json:"merged_pr_url,omitempty"`
}

// AnalysisPlan is the structured output of the analyze stage.
type AnalysisPlan struct {
	Summary     string   `json:"summary"`
	FileTouches []string `json:"file_touches,omitempty"`
	Risks       []string `json:"risks,omitempty"`
	Ambiguities []string `json:"ambiguities,omitempty"`
}

// ToMap serializes the context for storage in a JSONB snapshot column.
func (rc *RunContext) ToMap() (map[string]any, error) {
	data, err := json.Marshal(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run context: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to convert run context: %w", err)
	}
	return m, nil
}

// RunContextFromMap deserializes a snapshot column back into a RunContext.
func RunContextFromMap(m map[string]any) (*RunContext, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	var rc RunContext
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run context: %w", err)
	}
	return &rc, nil
}
