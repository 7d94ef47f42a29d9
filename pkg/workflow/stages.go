package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/board"
	"github.com/forgeflow/forgeflow/pkg/codehost"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// Stages holds the shared dependencies of all stage adapters and hands out
// the adapter for each stage name.
type Stages struct {
	host   codehost.Provider
	model  llm.Client
	board  *board.Service
	tests  TestRunner
	cfg    *config.WorkflowConfig
	logger *slog.Logger
}

// NewStages wires the stage adapters. board may be nil (notifications
// disabled); tests may be nil (the default command runner is used).
func NewStages(host codehost.Provider, model llm.Client, boardSvc *board.Service, tests TestRunner, cfg *config.WorkflowConfig) *Stages {
	if tests == nil {
		tests = &commandTestRunner{timeout: cfg.TestTimeout}
	}
	return &Stages{
		host:   host,
		model:  model,
		board:  boardSvc,
		tests:  tests,
		cfg:    cfg,
		logger: slog.Default().With("component", "stages"),
	}
}

// Adapter returns the adapter for the stage name. human_validation has no
// adapter: the executor suspends the run instead.
func (s *Stages) Adapter(name string) (Adapter, bool) {
	switch name {
	case models.StagePrepare:
		return &adapter{name: name, fn: s.prepare}, true
	case models.StageAnalyze:
		return &adapter{name: name, fn: s.analyze}, true
	case models.StageImplement:
		return &adapter{name: name, fn: s.implement}, true
	case models.StageTest:
		return &adapter{name: name, fn: s.test}, true
	case models.StageDebug:
		return &adapter{name: name, fn: s.debug}, true
	case models.StageQA:
		return &adapter{name: name, fn: s.qa}, true
	case models.StageFinalizePR:
		return &adapter{name: name, fn: s.finalizePR}, true
	case models.StageMerge:
		return &adapter{name: name, fn: s.merge}, true
	default:
		return nil, false
	}
}

// prepare checks out the repository and creates the working branch.
// Re-entrant: an existing checkout and branch are reused.
func (s *Stages) prepare(ctx context.Context, rc *models.RunContext) error {
	if rc.RepositoryURL == "" {
		return Permanent(fmt.Errorf("task has no repository URL"))
	}

	rc.WorkDir = filepath.Join(s.cfg.WorkDir, fmt.Sprintf("run-%d", rc.RunID))
	sha, err := s.host.Clone(ctx, rc.RepositoryURL, rc.WorkDir)
	if err != nil {
		return fmt.Errorf("clone: %w", err)
	}
	rc.HeadCommitSHA = sha

	base, err := s.host.DefaultBranch(ctx, rc.RepositoryURL)
	if err != nil {
		s.logger.Warn("Default branch lookup failed, using configured fallback", "error", err)
		base = "main"
	}
	rc.BaseBranch = base

	rc.Branch = fmt.Sprintf("forgeflow/task-%d-run-%d", rc.TaskID, rc.RunID)
	if err := s.host.CreateBranch(ctx, rc.WorkDir, rc.Branch, base); err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	return nil
}

// analyze asks the model for a structured implementation plan.
func (s *Stages) analyze(ctx context.Context, rc *models.RunContext) error {
	prompt := fmt.Sprintf(
		"Task: %s\n\nDescription:\n%s\n", rc.Title, rc.Description)
	if len(rc.ModInstructions) > 0 {
		prompt += "\nPrior review feedback that must be addressed:\n- " +
			strings.Join(rc.ModInstructions, "\n- ") + "\n"
	}
	prompt += `
Respond with a JSON object only:
{"summary": "...", "file_touches": ["path", ...], "risks": ["..."], "ambiguities": ["..."]}`

	resp, err := s.complete(ctx, llm.Request{
		System: "You are a senior engineer planning a code change. Be concrete and brief.",
		Prompt: prompt,
	})
	if err != nil {
		return err
	}

	var plan models.AnalysisPlan
	if err := llm.DecodeJSON(resp.Text, &plan); err != nil {
		// A plain-text plan is still a plan.
		plan = models.AnalysisPlan{Summary: strings.TrimSpace(resp.Text)}
	}
	if plan.Summary == "" {
		return Permanent(fmt.Errorf("analyze produced an empty plan"))
	}
	rc.Plan = &plan
	return nil
}

// implement asks the model for complete file contents and writes them into
// the working tree. Rewriting the same files on retry converges to the same
// tree state.
func (s *Stages) implement(ctx context.Context, rc *models.RunContext) error {
	prompt := fmt.Sprintf("Task: %s\n\nPlan:\n%s\n", rc.Title, rc.Plan.Summary)
	if len(rc.Plan.FileTouches) > 0 {
		prompt += "Files expected to change: " + strings.Join(rc.Plan.FileTouches, ", ") + "\n"
	}
	if len(rc.ModInstructions) > 0 {
		prompt += "\nReview feedback to address:\n- " + strings.Join(rc.ModInstructions, "\n- ") + "\n"
	}
	prompt += `
Respond with a JSON object only:
{"summary": "...", "files": [{"path": "relative/path", "content": "full file content"}]}`

	resp, err := s.complete(ctx, llm.Request{
		System: "You implement code changes. Emit complete file contents, never diffs.",
		Prompt: prompt,
	})
	if err != nil {
		return err
	}

	var out struct {
		Summary string `json:"summary"`
		Files   []struct {
			Path    string `json:"path"`
			Content string `json:"content"`
		} `json:"files"`
	}
	if err := llm.DecodeJSON(resp.Text, &out); err != nil {
		return fmt.Errorf("implement output: %w", err)
	}
	if len(out.Files) == 0 {
		return Permanent(fmt.Errorf("implement produced no files"))
	}

	changed := make([]string, 0, len(out.Files))
	for _, f := range out.Files {
		if err := writeWorkFile(rc.WorkDir, f.Path, f.Content); err != nil {
			return err
		}
		changed = append(changed, f.Path)
	}
	rc.ChangedFiles = changed
	rc.ImplementLog = out.Summary
	return nil
}

// test runs the repository's test suite and records the outcome. A failing
// suite is not a stage error; the graph routes through debug.
func (s *Stages) test(ctx context.Context, rc *models.RunContext) error {
	passed, output, err := s.tests.Run(ctx, rc.WorkDir)
	if err != nil {
		return fmt.Errorf("test runner: %w", err)
	}
	rc.TestsPassed = passed
	rc.TestOutput = truncate(output, 16*1024)
	if !passed && rc.DebugAttempts >= s.cfg.MaxDebugAttempts {
		rc.TestsGaveUp = true
	}
	return nil
}

// debug feeds the failing test output back to the model and applies its
// fixes. Bounded by MaxDebugAttempts on the test→debug edge.
func (s *Stages) debug(ctx context.Context, rc *models.RunContext) error {
	rc.DebugAttempts++

	prompt := fmt.Sprintf(
		"Task: %s\n\nThe test suite failed (attempt %d). Output:\n%s\n\nChanged files so far: %s\n",
		rc.Title, rc.DebugAttempts, rc.TestOutput, strings.Join(rc.ChangedFiles, ", "))
	prompt += `
Fix the failures. Respond with a JSON object only:
{"summary": "...", "files": [{"path": "relative/path", "content": "full file content"}]}`

	resp, err := s.complete(ctx, llm.Request{
		System: "You debug failing tests. Emit complete file contents, never diffs.",
		Prompt: prompt,
	})
	if err != nil {
		return err
	}

	var out struct {
		Summary string `json:"summary"`
		Files   []struct {
			Path    string `json:"path"`
			Content string `json:"content"`
		} `json:"files"`
	}
	if err := llm.DecodeJSON(resp.Text, &out); err != nil {
		return fmt.Errorf("debug output: %w", err)
	}
	for _, f := range out.Files {
		if err := writeWorkFile(rc.WorkDir, f.Path, f.Content); err != nil {
			return err
		}
		if !contains(rc.ChangedFiles, f.Path) {
			rc.ChangedFiles = append(rc.ChangedFiles, f.Path)
		}
	}
	return nil
}

// qa produces a review report over the change, including the failure marker
// when the debug budget was exhausted.
func (s *Stages) qa(ctx context.Context, rc *models.RunContext) error {
	prompt := fmt.Sprintf(
		"Task: %s\n\nPlan:\n%s\n\nChanged files: %s\nTests passed: %t\n",
		rc.Title, rc.Plan.Summary, strings.Join(rc.ChangedFiles, ", "), rc.TestsPassed)
	if rc.TestsGaveUp {
		prompt += fmt.Sprintf("NOTE: tests still failing after %d debug attempts. Last output:\n%s\n",
			rc.DebugAttempts, rc.TestOutput)
	}
	prompt += "\nWrite a short quality review of this change for a human reviewer. Plain text."

	resp, err := s.complete(ctx, llm.Request{
		System: "You are a meticulous code reviewer summarizing a change for sign-off.",
		Prompt: prompt,
	})
	if err != nil {
		return err
	}
	rc.QAReport = strings.TrimSpace(resp.Text)
	return nil
}

// finalizePR commits, pushes, and opens (or reuses) the pull request, then
// announces it on the board item.
func (s *Stages) finalizePR(ctx context.Context, rc *models.RunContext) error {
	message := fmt.Sprintf("%s\n\nAutomated change for board item %s", rc.Title, rc.ExternalItemID)
	sha, err := s.host.CommitAndPush(ctx, rc.WorkDir, rc.Branch, message)
	if err != nil {
		return fmt.Errorf("commit and push: %w", err)
	}
	rc.HeadCommitSHA = sha

	body := rc.QAReport
	if rc.TestsGaveUp {
		body = "⚠️ Tests were still failing when this PR was opened.\n\n" + body
	}
	pr, err := s.host.OpenPR(ctx, rc.RepositoryURL, rc.Branch, rc.BaseBranch, rc.Title, body)
	if err != nil {
		return fmt.Errorf("open pull request: %w", err)
	}
	rc.PRNumber = pr.Number
	rc.PRURL = pr.URL

	s.board.NotifyPRCreated(ctx, rc.ExternalItemID, rc.UserLanguage, pr.URL)
	return nil
}

// merge merges the approved pull request. Already-merged is success.
func (s *Stages) merge(ctx context.Context, rc *models.RunContext) error {
	if rc.PRNumber == 0 {
		return Permanent(fmt.Errorf("no pull request to merge"))
	}
	pr, err := s.host.MergePR(ctx, rc.RepositoryURL, rc.PRNumber)
	if err != nil {
		return fmt.Errorf("merge pull request: %w", err)
	}
	rc.MergedPRURL = pr.URL
	return nil
}

// complete wraps model calls with the per-call timeout.
func (s *Stages) complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if s.model == nil {
		return nil, Permanent(fmt.Errorf("no model client configured"))
	}
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.LLMTimeout)
	defer cancel()
	return s.model.Complete(callCtx, req)
}

// writeWorkFile writes content under workDir, rejecting paths that escape it.
func writeWorkFile(workDir, relPath, content string) error {
	if relPath == "" || filepath.IsAbs(relPath) {
		return Permanent(fmt.Errorf("invalid file path %q", relPath))
	}
	full := filepath.Join(workDir, relPath)
	if rel, err := filepath.Rel(workDir, full); err != nil || strings.HasPrefix(rel, "..") {
		return Permanent(fmt.Errorf("file path %q escapes the working tree", relPath))
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "\n... (truncated)"
}
