// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "run export job"},
			want: "failed to run export job",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load export configuration", Resource: "./export-config.json"},
			want: "failed to load export configuration: ./export-config.json",
		},
		{
			name: "full context",
			err:  &ActionableError{Operation: "write archive", Resource: "/exports", Cause: cause},
			want: "failed to write archive: /exports: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := WrapWithContext(cause, "probe instance", "sandbox.example.net")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapWithContext_NilPassthrough(t *testing.T) {
	t.Parallel()

	if err := WrapWithContext(nil, "anything", ""); err != nil {
		t.Errorf("WrapWithContext(nil, ...) = %v, want nil", err)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewErrorContext().
		WithOperation("probe instance").
		WithResource("sandbox.example.net").
		WithSuggestion("Check VPN connectivity").
		WithSuggestion("Verify the hostname").
		Wrap(cause).
		Build()

	formatted := err.Format()
	for _, want := range []string{
		"failed to probe instance: sandbox.example.net: connection refused",
		"• Check VPN connectivity",
		"• Verify the hostname",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q in:\n%s", want, formatted)
		}
	}
}
