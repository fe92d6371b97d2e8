// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"ccexport-cli/internal/issue"
	"ccexport-cli/pkg/exportcfg"

	"github.com/spf13/cobra"
)

var (
	importInstance    string
	importKeepArchive bool
	importTimeout     int

	// importCmd uploads and runs a previously exported archive.
	importCmd = &cobra.Command{
		Use:   "import <archive>",
		Short: "Import an export archive into the instance",
		Long: `Import a previously exported archive into the configured instance.

The archive must exist locally; it is uploaded and executed as an import
job by the external tool.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
)

func init() {
	importCmd.Flags().StringVar(&importInstance, "instance", "", "named credential profile to use")
	importCmd.Flags().BoolVar(&importKeepArchive, "keep-archive", false, "keep the archive on the instance after the job")
	importCmd.Flags().IntVar(&importTimeout, "timeout", 0, "job timeout in seconds (default 600)")
}

func runImport(cmd *cobra.Command, args []string) error {
	archivePath := args[0]

	opts := exportcfg.Options{
		KeepArchive: importKeepArchive,
		Timeout:     importTimeout,
		Instance:    importInstance,
		Debug:       debug,
	}
	if opts.Timeout < 1 {
		opts.Timeout = settings.Timeout
	}

	// The archive check precedes any remote work.
	jobArgs, err := exportcfg.CompileImportArgs(archivePath, opts)
	if err != nil {
		if errors.Is(err, exportcfg.ErrArchiveNotFound) {
			return fail(cmd, "archive %s does not exist", archivePath)
		}
		return fail(cmd, "%v", err)
	}

	tool, err := locateTool(cmd)
	if err != nil {
		return err
	}
	if err := preflight(cmd, tool, opts.Instance); err != nil {
		return err
	}

	result, jobErr, err := runJob(cmd, tool, "Running import job", jobArgs)
	if err != nil {
		return failActionable(cmd, issue.NewErrorContext().
			WithOperation("start import job").
			WithSuggestion("Re-run with --debug to see the full tool invocation").
			Wrap(err).
			Build())
	}
	if jobErr != nil {
		return reportJobError(cmd, jobErr)
	}

	message := result.Message
	if message == "" {
		message = archivePath
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Import complete: %s\n",
		SuccessStyle.Render("✓"), ValueStyle.Render(message))
	return nil
}
