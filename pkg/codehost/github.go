package codehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/config"
)

// GitHub implements Provider against the GitHub REST API, with local git
// operations delegated to the git CLI (see git.go).
type GitHub struct {
	httpClient *http.Client
	apiURL     string
	token      string
	git        *gitCLI
	logger     *slog.Logger
}

// NewGitHub creates a GitHub provider.
func NewGitHub(cfg *config.CodeHostConfig, timeouts Timeouts) *GitHub {
	return &GitHub{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		token:      cfg.Token,
		git:        &gitCLI{token: cfg.Token, cloneTimeout: timeouts.Clone},
		logger:     slog.Default().With("component", "codehost-github"),
	}
}

// Clone checks out repoURL into workDir and returns the head commit SHA.
func (g *GitHub) Clone(ctx context.Context, repoURL, workDir string) (string, error) {
	return g.git.clone(ctx, repoURL, workDir)
}

// CreateBranch creates branch from base in workDir, reusing it if present.
func (g *GitHub) CreateBranch(ctx context.Context, workDir, branch, base string) error {
	return g.git.createBranch(ctx, workDir, branch, base)
}

// CommitAndPush stages everything, commits, and pushes the branch.
func (g *GitHub) CommitAndPush(ctx context.Context, workDir, branch, message string) (string, error) {
	return g.git.commitAndPush(ctx, workDir, branch, message)
}

// DefaultBranch resolves the repository default branch via the API.
func (g *GitHub) DefaultBranch(ctx context.Context, repoURL string) (string, error) {
	owner, repo, err := splitRepoURL(repoURL)
	if err != nil {
		return "", err
	}
	var out struct {
		DefaultBranch string `json:"default_branch"`
	}
	if err := g.request(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s", owner, repo), nil, &out); err != nil {
		return "", fmt.Errorf("resolve default branch: %w", err)
	}
	return out.DefaultBranch, nil
}

// OpenPR opens a pull request, or returns the already-open one for branch.
func (g *GitHub) OpenPR(ctx context.Context, repoURL, branch, base, title, body string) (*PullRequest, error) {
	owner, repo, err := splitRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	// Idempotence: an open PR for the same head branch is reused.
	existing, err := g.listPRs(ctx, owner, repo, branch)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		g.logger.Info("Reusing existing pull request",
			"repo", owner+"/"+repo, "branch", branch, "number", existing[0].Number)
		return &existing[0], nil
	}

	payload := map[string]any{
		"title": title,
		"body":  body,
		"head":  branch,
		"base":  base,
	}
	var created ghPR
	if err := g.request(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), payload, &created); err != nil {
		return nil, fmt.Errorf("open pull request: %w", err)
	}
	pr := created.toPullRequest()
	return &pr, nil
}

// MergePR merges the pull request; an already-merged PR is success.
func (g *GitHub) MergePR(ctx context.Context, repoURL string, number int) (*PullRequest, error) {
	owner, repo, err := splitRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	var current ghPR
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number)
	if err := g.request(ctx, http.MethodGet, path, nil, &current); err != nil {
		return nil, fmt.Errorf("fetch pull request %d: %w", number, err)
	}
	if current.Merged {
		pr := current.toPullRequest()
		return &pr, nil
	}

	var out struct {
		Merged bool   `json:"merged"`
		SHA    string `json:"sha"`
	}
	if err := g.request(ctx, http.MethodPut, path+"/merge", map[string]any{}, &out); err != nil {
		return nil, fmt.Errorf("merge pull request %d: %w", number, err)
	}
	pr := current.toPullRequest()
	pr.Merged = out.Merged
	pr.State = "closed"
	pr.CommitSHA = out.SHA
	return &pr, nil
}

// ListOpenPRs lists open pull requests for the repository.
func (g *GitHub) ListOpenPRs(ctx context.Context, repoURL string) ([]PullRequest, error) {
	owner, repo, err := splitRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	return g.listPRs(ctx, owner, repo, "")
}

// LatestCommit returns the head commit SHA of the given branch.
func (g *GitHub) LatestCommit(ctx context.Context, repoURL, branch string) (string, error) {
	owner, repo, err := splitRepoURL(repoURL)
	if err != nil {
		return "", err
	}
	var out struct {
		SHA string `json:"sha"`
	}
	path := fmt.Sprintf("/repos/%s/%s/commits/%s", owner, repo, url.PathEscape(branch))
	if err := g.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", fmt.Errorf("fetch latest commit: %w", err)
	}
	return out.SHA, nil
}

func (g *GitHub) listPRs(ctx context.Context, owner, repo, headBranch string) ([]PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls?state=open", owner, repo)
	if headBranch != "" {
		path += "&head=" + url.QueryEscape(owner+":"+headBranch)
	}
	var raw []ghPR
	if err := g.request(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("list pull requests: %w", err)
	}
	prs := make([]PullRequest, 0, len(raw))
	for _, p := range raw {
		prs = append(prs, p.toPullRequest())
	}
	return prs, nil
}

// ghPR is the subset of the GitHub PR resource the orchestrator reads.
type ghPR struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
	Title   string `json:"title"`
	State   string `json:"state"`
	Merged  bool   `json:"merged"`
	Head    struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	} `json:"head"`
	Base struct {
		Ref string `json:"ref"`
	} `json:"base"`
}

func (p ghPR) toPullRequest() PullRequest {
	return PullRequest{
		Number:    p.Number,
		URL:       p.HTMLURL,
		Title:     p.Title,
		State:     p.State,
		Merged:    p.Merged,
		Head:      p.Head.Ref,
		Base:      p.Base.Ref,
		CommitSHA: p.Head.SHA,
	}
}

func (g *GitHub) request(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.apiURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("github API returned status %d: %s", resp.StatusCode, firstLine(string(data)))
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// splitRepoURL extracts owner and repo from a repository URL like
// https://github.com/owner/repo(.git).
func splitRepoURL(repoURL string) (owner, repo string, err error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository URL %q: %w", repoURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository URL %q has no owner/repo path", repoURL)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 256 {
		s = s[:256]
	}
	return s
}

var _ Provider = (*GitHub)(nil)
