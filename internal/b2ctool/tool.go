// SPDX-License-Identifier: MPL-2.0

// Package b2ctool is the boundary to the external commerce job tool. It
// locates the binary, runs it with compiled argument lists, and turns
// its structured output into results the CLI layer can report.
// Everything that talks to the instance lives behind this package.
package b2ctool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"
)

// ErrToolUnavailable is the sentinel error wrapped by ToolUnavailableError.
var ErrToolUnavailable = errors.New("job tool unavailable")

// ToolUnavailableError is returned by Locate when the external binary
// cannot be found on the PATH.
type ToolUnavailableError struct {
	Binary string
}

func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("job tool %q not found on PATH", e.Binary)
}

func (e *ToolUnavailableError) Unwrap() error { return ErrToolUnavailable }

// Tool is a located external job tool.
type Tool struct {
	// Path is the resolved binary path.
	Path string
	// Debug forwards trace logging to the tool and logs each invocation.
	Debug bool

	logger *log.Logger
}

// Locate resolves the external binary on the PATH.
func Locate(binary string, debug bool) (*Tool, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, &ToolUnavailableError{Binary: binary}
	}
	logger := log.Default().With("tool", binary)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return &Tool{Path: path, Debug: debug, logger: logger}, nil
}

// RunResult captures one finished invocation of the tool.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Combined returns stdout and stderr joined in capture order, for the
// failure-scan policy of ParseFailure.
func (r *RunResult) Combined() string {
	if r.Stdout == "" {
		return r.Stderr
	}
	if r.Stderr == "" {
		return r.Stdout
	}
	return r.Stdout + "\n" + r.Stderr
}

// Run invokes the tool with the given arguments, appending the universal
// --json flag and, in debug mode, --log-level trace. Output is captured;
// a non-zero exit is reported through RunResult.ExitCode, not as an
// error. The returned error covers spawn failures only.
func (t *Tool) Run(ctx context.Context, args ...string) (*RunResult, error) {
	full := append(append([]string{}, args...), "--json")
	if t.Debug {
		full = append(full, "--log-level", "trace")
	}
	t.logger.Debug("invoking job tool", "args", full)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.Path, full...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", t.Path, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	t.logger.Debug("job tool finished", "exit", result.ExitCode)
	return result, nil
}
