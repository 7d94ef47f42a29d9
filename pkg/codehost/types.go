// Package codehost provides the code-hosting provider contract and its
// GitHub implementation: repository checkout, branching, commits, and the
// pull-request lifecycle.
package codehost

import (
	"context"
	"time"
)

// PullRequest describes a pull request on the code host.
type PullRequest struct {
	Number    int    `json:"number"`
	URL       string `json:"html_url"`
	Title     string `json:"title"`
	State     string `json:"state"`
	Head      string `json:"head_ref"`
	Base      string `json:"base_ref"`
	Merged    bool   `json:"merged"`
	CommitSHA string `json:"commit_sha"`
}

// Provider is the code-hosting contract the stage adapters depend on.
// Implementations must be idempotent on retry with the same input: OpenPR
// returns the existing PR for the branch instead of opening a second, and
// MergePR treats an already-merged PR as success.
type Provider interface {
	// Clone checks out repoURL into workDir and returns the head commit SHA.
	Clone(ctx context.Context, repoURL, workDir string) (string, error)

	// DefaultBranch resolves the repository default branch.
	DefaultBranch(ctx context.Context, repoURL string) (string, error)

	// CreateBranch creates branch from base in workDir. Existing branches
	// are reused.
	CreateBranch(ctx context.Context, workDir, branch, base string) error

	// CommitAndPush stages all changes, commits with message, and pushes
	// the branch. A clean tree is not an error; the current head is kept.
	CommitAndPush(ctx context.Context, workDir, branch, message string) (string, error)

	// OpenPR opens a pull request for branch onto base, or returns the
	// already-open PR for that branch.
	OpenPR(ctx context.Context, repoURL, branch, base, title, body string) (*PullRequest, error)

	// MergePR merges the pull request and returns its final state.
	MergePR(ctx context.Context, repoURL string, number int) (*PullRequest, error)

	// ListOpenPRs lists open pull requests for the repository.
	ListOpenPRs(ctx context.Context, repoURL string) ([]PullRequest, error)

	// LatestCommit returns the head commit SHA of the given branch.
	LatestCommit(ctx context.Context, repoURL, branch string) (string, error)
}

// Timeouts bundles the per-call wall-time limits the scheduler enforces.
type Timeouts struct {
	Clone time.Duration
	HTTP  time.Duration
}
