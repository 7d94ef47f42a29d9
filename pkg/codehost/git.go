package codehost

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"time"
)

// gitCLI runs local git operations for a checked-out working tree.
type gitCLI struct {
	token        string
	cloneTimeout time.Duration
}

// clone checks out repoURL into workDir and returns the head commit SHA.
// An existing checkout in workDir is reset to the remote head instead of
// recloned, so a retried stage reuses the same directory.
func (g *gitCLI) clone(ctx context.Context, repoURL, workDir string) (string, error) {
	if g.cloneTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cloneTimeout)
		defer cancel()
	}

	if _, err := os.Stat(workDir + "/.git"); err == nil {
		if _, err := g.run(ctx, workDir, "fetch", "origin"); err != nil {
			return "", err
		}
	} else {
		authURL, err := g.authenticatedURL(repoURL)
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(workDir, 0o755); err != nil {
			return "", fmt.Errorf("create work directory: %w", err)
		}
		if _, err := g.run(ctx, "", "clone", authURL, workDir); err != nil {
			return "", err
		}
	}

	sha, err := g.run(ctx, workDir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(sha), nil
}

// createBranch checks out branch from base, reusing it if it already exists.
func (g *gitCLI) createBranch(ctx context.Context, workDir, branch, base string) error {
	if _, err := g.run(ctx, workDir, "rev-parse", "--verify", "refs/heads/"+branch); err == nil {
		_, err := g.run(ctx, workDir, "checkout", branch)
		return err
	}
	if _, err := g.run(ctx, workDir, "checkout", base); err != nil {
		return err
	}
	_, err := g.run(ctx, workDir, "checkout", "-b", branch)
	return err
}

// commitAndPush stages everything, commits, and pushes the branch. A clean
// tree is not an error; the current head SHA is returned either way.
func (g *gitCLI) commitAndPush(ctx context.Context, workDir, branch, message string) (string, error) {
	if _, err := g.run(ctx, workDir, "add", "-A"); err != nil {
		return "", err
	}

	status, err := g.run(ctx, workDir, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(status) != "" {
		args := []string{
			"-c", "user.name=forgeflow",
			"-c", "user.email=forgeflow@localhost",
			"commit", "-m", message,
		}
		if _, err := g.run(ctx, workDir, args...); err != nil {
			return "", err
		}
	}

	if _, err := g.run(ctx, workDir, "push", "-u", "origin", branch); err != nil {
		return "", err
	}

	sha, err := g.run(ctx, workDir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(sha), nil
}

// run executes git with args in dir and returns combined output.
func (g *gitCLI) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, g.redact(firstLine(string(out))))
	}
	return string(out), nil
}

// authenticatedURL embeds the token into an https repository URL so clone
// and push work without credential helpers.
func (g *gitCLI) authenticatedURL(repoURL string) (string, error) {
	if g.token == "" {
		return repoURL, nil
	}
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", fmt.Errorf("invalid repository URL %q: %w", repoURL, err)
	}
	if u.Scheme != "https" {
		return repoURL, nil
	}
	u.User = url.UserPassword("x-access-token", g.token)
	return u.String(), nil
}

// redact keeps the token out of error messages.
func (g *gitCLI) redact(s string) string {
	if g.token == "" {
		return s
	}
	return strings.ReplaceAll(s, g.token, "***")
}
