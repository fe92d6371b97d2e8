// SPDX-License-Identifier: MPL-2.0

package b2ctool

import (
	"context"
	"errors"
	"fmt"

	"ccexport-cli/internal/config"
)

// Sentinel errors for the pre-flight failure categories.
var (
	ErrInstanceUnconfigured = errors.New("no instance credentials configured")
	ErrConnectivity         = errors.New("instance not reachable")
)

// InstanceUnconfiguredError is returned when neither a credentials file
// nor the environment fallback was found.
type InstanceUnconfiguredError struct{}

func (e *InstanceUnconfiguredError) Error() string {
	return "no credentials file and no SFCC_* environment fallback found"
}

func (e *InstanceUnconfiguredError) Unwrap() error { return ErrInstanceUnconfigured }

// ConnectivityError is returned when the probe against the instance
// failed; it carries whatever diagnostic text the probe produced.
type ConnectivityError struct {
	Diagnostic string
}

func (e *ConnectivityError) Error() string {
	if e.Diagnostic == "" {
		return "connectivity probe failed"
	}
	return fmt.Sprintf("connectivity probe failed: %s", e.Diagnostic)
}

func (e *ConnectivityError) Unwrap() error { return ErrConnectivity }

// Preflight runs the pre-flight sequence for remote work: binary lookup
// has already happened (the receiver exists), so it checks credential
// discovery and then probes connectivity with `setup config`. The first
// failing step aborts the sequence.
func (t *Tool) Preflight(ctx context.Context, instance string) (config.InstanceSource, error) {
	source := config.DiscoverInstance(instance)
	if !source.Available {
		return source, &InstanceUnconfiguredError{}
	}
	t.logger.Debug("instance credentials found", "source", source.Description)

	result, err := t.Run(ctx, "setup", "config")
	if err != nil {
		return source, &ConnectivityError{Diagnostic: err.Error()}
	}
	if result.ExitCode != 0 {
		return source, &ConnectivityError{Diagnostic: ParseFailure(result.Combined()).Message}
	}
	return source, nil
}
