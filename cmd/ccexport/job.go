// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"ccexport-cli/internal/b2ctool"
	"ccexport-cli/internal/issue"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

// locateTool resolves the external job tool, rendering install guidance
// when it is missing. This is the first pre-flight step and runs before
// any other work.
func locateTool(cmd *cobra.Command) (*b2ctool.Tool, error) {
	tool, err := b2ctool.Locate(settings.BinaryName, debug)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		renderServiceError(cmd.ErrOrStderr(), newServiceError(err, issue.ToolUnavailableId,
			ErrorStyle.Render("✗")+" "+err.Error()))
		return nil, &ExitError{Code: 1}
	}
	return tool, nil
}

// preflight runs credential discovery and the connectivity probe,
// rendering issue guidance on failure.
func preflight(cmd *cobra.Command, tool *b2ctool.Tool, instance string) error {
	source, err := tool.Preflight(cmd.Context(), instance)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		id := issue.InstanceUnconfiguredId
		if errors.Is(err, b2ctool.ErrConnectivity) {
			id = issue.ConnectivityFailedId
		}
		renderServiceError(cmd.ErrOrStderr(), newServiceError(err, id,
			ErrorStyle.Render("✗")+" "+err.Error()))
		return &ExitError{Code: 1}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Instance configured via %s\n",
		SuccessStyle.Render("✓"), ValueStyle.Render(source.Description))
	return nil
}

// runJob invokes the tool behind a spinner and resolves the outcome.
// A nil JobError return means the job succeeded.
func runJob(cmd *cobra.Command, tool *b2ctool.Tool, title string, args []string) (*b2ctool.JobResult, *b2ctool.JobError, error) {
	var (
		runResult *b2ctool.RunResult
		runErr    error
	)
	spinErr := spinner.New().
		Title(title).
		Context(cmd.Context()).
		Action(func() {
			runResult, runErr = tool.Run(cmd.Context(), args...)
		}).
		Run()
	if spinErr != nil {
		return nil, nil, spinErr
	}
	if runErr != nil {
		return nil, nil, runErr
	}

	if runResult.ExitCode != 0 {
		return nil, b2ctool.ParseFailure(runResult.Combined()), nil
	}

	result, err := b2ctool.ParseSuccess(runResult.Stdout)
	if err != nil {
		// Exit 0 with unparseable output: fall back to the scan policy.
		return nil, b2ctool.ParseFailure(runResult.Combined()), nil
	}
	if !result.Success {
		return nil, b2ctool.ParseFailure(runResult.Combined()), nil
	}
	return result, nil, nil
}

// reportJobError prints a failed job, with the distinguished
// already-running case getting its catalog guidance.
func reportJobError(cmd *cobra.Command, jobErr *b2ctool.JobError) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if jobErr.AlreadyRunning {
		renderServiceError(cmd.ErrOrStderr(), newServiceError(jobErr, issue.JobAlreadyRunningId,
			ErrorStyle.Render("✗")+" "+jobErr.Message))
		return &ExitError{Code: 1}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ErrorStyle.Render("✗"), jobErr.Message)
	return &ExitError{Code: 1}
}
