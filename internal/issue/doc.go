// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines error types that carry remediation steps, plus a catalog of
// Markdown-formatted guidance for the fatal pre-flight and job failures
// the exporter can run into (missing job tool, unconfigured instance,
// a job already running on the instance).
package issue
