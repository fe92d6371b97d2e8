// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ccexport.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ccexport-cli/internal/config"
	"ccexport-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// debug enables trace output here and in the external job tool.
	debug bool

	// settings holds the loaded tool settings; defaults apply when no
	// settings file or environment overrides exist.
	settings = &config.Settings{
		BinaryName: config.DefaultBinaryName,
		Timeout:    config.DefaultTimeout,
		OutputDir:  config.DefaultOutputDir,
		ConfigFile: config.DefaultConfigFile,
	}

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "ccexport",
		Short: "Declarative site and instance exports for B2C Commerce",
		Long: TitleStyle.Render("ccexport") + SubtitleStyle.Render(" - declarative exports for B2C Commerce instances") + `

ccexport turns a declarative JSON configuration into export jobs on a
remote instance. The heavy lifting (authentication, job execution,
archive download) is done by the external job tool; ccexport validates
the configuration, compiles it into a job invocation, and reports the
outcome.

` + SubtitleStyle.Render("Quick start:") + `
  1. ccexport init                   Create a starter export-config.json
  2. Edit it and enable data units
  3. ccexport validate               Check the configuration
  4. ccexport export                 Run the export

` + SubtitleStyle.Render("Examples:") + `
  ccexport export --interactive      Build the selection in a wizard
  ccexport export --config my.json --output ./archives
  ccexport import ./archives/site-export.zip
  ccexport init --full               Template with every data unit listed`,
	}
)

// ExitError carries a process exit code through the cobra/fang stack.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output and tool trace logging")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads tool settings and applies the debug level.
func initRootConfig() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	} else {
		settings = loaded
	}

	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// fail prints a styled error and returns the non-zero ExitError,
// silencing cobra's own reporting on the way out.
func fail(cmd *cobra.Command, format string, args ...any) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ErrorStyle.Render("✗"), fmt.Sprintf(format, args...))
	return &ExitError{Code: 1}
}

// failActionable prints an actionable error together with its
// remediation suggestions, then returns the non-zero ExitError.
func failActionable(cmd *cobra.Command, err *issue.ActionableError) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ErrorStyle.Render("✗"), err.Format())
	return &ExitError{Code: 1}
}
