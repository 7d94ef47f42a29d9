package workflow

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// TestRunner executes a working tree's test suite.
type TestRunner interface {
	// Run executes the suite. passed reports the suite result; err is only
	// returned for infrastructure failures (no runner, cannot exec).
	Run(ctx context.Context, workDir string) (passed bool, output string, err error)
}

// commandTestRunner picks a test command from the repository's build files
// and runs it. Repositories with no recognizable suite pass vacuously.
type commandTestRunner struct {
	timeout time.Duration
}

func (r *commandTestRunner) Run(ctx context.Context, workDir string) (bool, string, error) {
	name, args := detectTestCommand(workDir)
	if name == "" {
		return true, "no test suite detected", nil
	}

	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) || errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			// Suite ran and failed (or timed out): a result, not an error.
			return false, string(out), nil
		}
		return false, string(out), err
	}
	return true, string(out), nil
}

// detectTestCommand maps the repository's build files to a test command.
func detectTestCommand(workDir string) (string, []string) {
	exists := func(name string) bool {
		_, err := os.Stat(filepath.Join(workDir, name))
		return err == nil
	}
	switch {
	case exists("go.mod"):
		return "go", []string{"test", "./..."}
	case exists("package.json"):
		return "npm", []string{"test", "--silent"}
	case exists("Cargo.toml"):
		return "cargo", []string{"test"}
	case exists("pyproject.toml"), exists("setup.py"):
		return "python", []string{"-m", "pytest", "-q"}
	case exists("Makefile"):
		return "make", []string{"test"}
	default:
		return "", nil
	}
}
