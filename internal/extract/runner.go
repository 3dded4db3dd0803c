package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultToolTimeout bounds a single external tool invocation.
const DefaultToolTimeout = 5 * time.Minute

// RunResult captures one finished tool invocation. A non-zero exit status
// is reported through ExitCode, not as an error; errors are reserved for
// failures to run the tool at all (missing binary, cancelled context).
type RunResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner abstracts external process execution so orchestration can be
// tested without the gettext tools installed.
type Runner interface {
	// Run executes name with args, with dir as working directory (empty
	// means inherit), and waits for completion.
	Run(ctx context.Context, dir string, name string, args ...string) (RunResult, error)
}

// ExecRunner runs commands with os/exec, capturing stdout and stderr.
type ExecRunner struct {
	// Timeout bounds each invocation; zero means DefaultToolTimeout.
	Timeout time.Duration
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (RunResult, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultToolTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if runCtx.Err() == context.DeadlineExceeded {
			return result, fmt.Errorf("%s timed out after %s", name, timeout)
		}
		return result, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return result, nil
}
