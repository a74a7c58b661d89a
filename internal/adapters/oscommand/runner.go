// Package oscommand implements the Runner port using os/exec.
package oscommand

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/hcastellon/shdw/internal/core/domain/shadow"
	"github.com/hcastellon/shdw/internal/core/ports"
)

// OSRunner implements the Runner interface by spawning the resolved
// command with the caller's standard streams and environment. The shim
// waits for the child and propagates its exit status, which is the
// portable equivalent of a process replacement.
type OSRunner struct{}

// NewRunner creates a new OSRunner.
func NewRunner() ports.Runner {
	return &OSRunner{}
}

// Run executes path with args. A non-zero child status is returned as
// the status with a nil error; err is set only when spawning failed.
func (r *OSRunner) Run(path string, args []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return int(shadow.ExitSuccess), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return int(shadow.ExitCommandFailed), fmt.Errorf("failed to execute %s: %w: %v", path, shadow.ErrCommandFailed, err)
}
