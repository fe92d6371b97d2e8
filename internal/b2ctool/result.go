// SPDX-License-Identifier: MPL-2.0

package b2ctool

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JobAlreadyRunningMarker is the literal substring that identifies the
// distinguished one-job-at-a-time failure anywhere in the tool's output.
const JobAlreadyRunningMarker = "JobAlreadyRunningException"

// genericFailureMessage is the last-resort message when the tool
// produced no diagnostic output at all.
const genericFailureMessage = "the job tool reported a failure without diagnostic output"

// JobResult is the tool's success response for a job run.
type JobResult struct {
	// Success mirrors the tool's success indicator.
	Success bool `json:"success"`
	// Archive is the archive file name, when reported.
	Archive string `json:"archive,omitempty"`
	// Path is the local path the archive was downloaded to, when reported.
	Path string `json:"path,omitempty"`
	// Message is an optional human-readable summary.
	Message string `json:"message,omitempty"`
}

// JobError classifies a failed invocation.
type JobError struct {
	// Message is the resolved user-facing error text.
	Message string
	// AlreadyRunning marks the distinguished one-job-at-a-time case.
	AlreadyRunning bool
}

func (e *JobError) Error() string { return e.Message }

// logRecord is the shape of one newline-delimited JSON log line from the
// tool. Fields outside the scan policy are ignored.
type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ParseSuccess decodes the single JSON object the tool prints on
// success. The caller checks the exit code first; this only runs on
// exit 0.
func ParseSuccess(stdout string) (*JobResult, error) {
	var result JobResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &result); err != nil {
		return nil, fmt.Errorf("decode job tool response: %w", err)
	}
	return &result, nil
}

// ParseFailure resolves the user-facing error for a failed invocation
// from the tool's combined output. The JobAlreadyRunningException
// substring takes precedence over everything else; after that, the
// first log record in output order carrying level "error" with a msg,
// or an error.message field, wins. With no such record the raw output
// is used, and with no output at all a fixed generic message.
func ParseFailure(combined string) *JobError {
	if strings.Contains(combined, JobAlreadyRunningMarker) {
		return &JobError{
			Message:        "an export or import job is already running on the instance; wait for it to finish and retry",
			AlreadyRunning: true,
		}
	}

	for _, line := range strings.Split(combined, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}
		var record logRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			continue
		}
		if record.Level == "error" && record.Msg != "" {
			return &JobError{Message: record.Msg}
		}
		if record.Error.Message != "" {
			return &JobError{Message: record.Error.Message}
		}
	}

	if trimmed := strings.TrimSpace(combined); trimmed != "" {
		return &JobError{Message: trimmed}
	}
	return &JobError{Message: genericFailureMessage}
}
