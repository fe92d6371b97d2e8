// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"ccexport-cli/internal/b2ctool"
	"ccexport-cli/internal/issue"
	"ccexport-cli/internal/wizard"
	"ccexport-cli/pkg/exportcfg"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	exportConfigPath  string
	exportOutput      string
	exportInteractive bool
	exportInstance    string
	exportKeepArchive bool
	exportZipOnly     bool
	exportTimeout     int
	exportNoDownload  bool

	// exportCmd runs an export job from a configuration file or the wizard.
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Run an export job against the instance",
		Long: `Run an export job against the configured instance.

The data units to export come from a configuration file (see 'ccexport
init') or from the interactive wizard (--interactive). After validation
and filtering, the selection is compiled into a job invocation for the
external tool, which executes it and downloads the archive.`,
		RunE: runExport,
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportConfigPath, "config", "c", "", "export configuration file (default ./export-config.json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "archive output directory (default ./exports)")
	exportCmd.Flags().BoolVarP(&exportInteractive, "interactive", "i", false, "build the configuration interactively")
	exportCmd.Flags().StringVar(&exportInstance, "instance", "", "named credential profile to use")
	exportCmd.Flags().BoolVar(&exportKeepArchive, "keep-archive", false, "keep the archive on the instance after download")
	exportCmd.Flags().BoolVar(&exportZipOnly, "zip-only", false, "skip extraction of the downloaded archive")
	exportCmd.Flags().IntVar(&exportTimeout, "timeout", 0, "job timeout in seconds (default 600)")
	exportCmd.Flags().BoolVar(&exportNoDownload, "no-download", false, "print the compiled invocation without running it")
}

func runExport(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	opts := exportOptions()

	// Pre-flight: tool, credentials, connectivity. Skipped for the
	// dry-run, which never touches the instance.
	var tool *b2ctool.Tool
	if !exportNoDownload {
		var err error
		if tool, err = locateTool(cmd); err != nil {
			return err
		}
		if err := preflight(cmd, tool, opts.Instance); err != nil {
			return err
		}
	}

	cfg, err := obtainConfiguration(cmd, tool, &opts)
	if err != nil {
		return err
	}

	filtered := exportcfg.FilterEnabled(cfg.DataUnits)
	if len(filtered) == 0 {
		return fail(cmd, "the configuration enables no data units; nothing to export")
	}

	archiveName := exportcfg.RenderArchiveName(archiveTemplate(cfg), singleSite(filtered))
	jobArgs := exportcfg.CompileExportArgs(filtered, opts)

	if exportNoDownload {
		fmt.Fprintf(stdout, "%s %s %s\n", SubtitleStyle.Render("would run:"),
			ValueStyle.Render(settings.BinaryName), strings.Join(jobArgs, " "))
		return nil
	}

	if err := os.MkdirAll(opts.OutputPath, 0o755); err != nil {
		return fail(cmd, "cannot create output directory %s: %v", opts.OutputPath, err)
	}

	result, jobErr, err := runJob(cmd, tool, "Running export job", jobArgs)
	if err != nil {
		return failActionable(cmd, issue.NewErrorContext().
			WithOperation("start export job").
			WithSuggestion("Re-run with --debug to see the full tool invocation").
			Wrap(err).
			Build())
	}
	if jobErr != nil {
		return reportJobError(cmd, jobErr)
	}

	location := result.Path
	if location == "" {
		location = result.Archive
	}
	if location == "" {
		location = archiveName
	}
	fmt.Fprintf(stdout, "%s Export complete: %s\n", SuccessStyle.Render("✓"), ValueStyle.Render(location))
	return nil
}

// exportOptions resolves the invocation options, falling back to the
// tool settings for flags the operator did not set.
func exportOptions() exportcfg.Options {
	opts := exportcfg.Options{
		OutputPath:  exportOutput,
		KeepArchive: exportKeepArchive,
		Timeout:     exportTimeout,
		ZipOnly:     exportZipOnly,
		NoDownload:  exportNoDownload,
		Instance:    exportInstance,
		Debug:       debug,
	}
	if opts.OutputPath == "" {
		opts.OutputPath = settings.OutputDir
	}
	if opts.Timeout < 1 {
		opts.Timeout = settings.Timeout
	}
	return opts
}

// obtainConfiguration produces the validated configuration from either
// the wizard or a configuration file. Requiring one of --config or
// --interactive is enforced here: with neither given and no default
// file present, that is a usage error. On the interactive path the
// wizard's output answers fold back into opts so compilation reflects
// what the operator answered, not the flag defaults.
func obtainConfiguration(cmd *cobra.Command, tool *b2ctool.Tool, opts *exportcfg.Options) (*exportcfg.Configuration, error) {
	if exportInteractive {
		deps := wizard.Deps{
			DefaultOutputDir:  opts.OutputPath,
			DefaultConfigPath: settings.ConfigFile,
		}
		if tool != nil {
			deps.Lister = tool
		}
		cfg, answers, err := wizard.Run(cmd.Context(), deps)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, fail(cmd, "export cancelled")
			}
			return nil, fail(cmd, "wizard failed: %v", err)
		}
		applyWizardAnswers(opts, answers)
		if answers.SavePath != "" {
			if err := exportcfg.Save(answers.SavePath, cfg); err != nil {
				return nil, failActionable(cmd, issue.NewErrorContext().
					WithOperation("save export configuration").
					WithResource(answers.SavePath).
					WithSuggestion("Check that the directory exists and is writable").
					Wrap(err).
					Build())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved configuration to %s\n",
				SuccessStyle.Render("✓"), ValueStyle.Render(answers.SavePath))
		}
		return cfg, nil
	}

	path := exportConfigPath
	if path == "" {
		path = settings.ConfigFile
	}
	cfg, err := exportcfg.Load(path)
	if err != nil {
		var notFound *exportcfg.NotFoundError
		if errors.As(err, &notFound) && !cmd.Flags().Changed("config") {
			return nil, fail(cmd, "no configuration found at %s; pass --config or use --interactive", path)
		}
		return nil, failActionable(cmd, issue.NewErrorContext().
			WithOperation("load export configuration").
			WithResource(path).
			WithSuggestion("Run 'ccexport validate' to see what is wrong with the file").
			WithSuggestion("Run 'ccexport init' to create a fresh template").
			Wrap(err).
			Build())
	}
	if err := exportcfg.Validate(cfg); err != nil {
		return nil, failValidation(cmd, path, err)
	}
	return cfg, nil
}

// applyWizardAnswers folds the wizard's output answers into the
// invocation options. The wizard prompts are pre-filled with the
// resolved defaults, so whatever the operator confirmed or edited wins
// over the flag-derived values.
func applyWizardAnswers(opts *exportcfg.Options, answers *wizard.Answers) {
	if answers.OutputDir != "" {
		opts.OutputPath = answers.OutputDir
	}
	opts.KeepArchive = answers.KeepArchive
}

// archiveTemplate picks the configured archive name template, falling
// back to the package default.
func archiveTemplate(cfg *exportcfg.Configuration) string {
	if cfg.Archive.Name != "" {
		return cfg.Archive.Name
	}
	return exportcfg.DefaultArchiveName
}

// singleSite returns the lone selected site identifier for the {site}
// placeholder, or "" when zero or several sites are selected.
func singleSite(filtered exportcfg.UnitTree) string {
	sites, ok := filtered[exportcfg.GroupSites].(map[string]any)
	if !ok || len(sites) != 1 {
		return ""
	}
	for id := range sites {
		return id
	}
	return ""
}

// failValidation prints every accumulated validation problem.
func failValidation(cmd *cobra.Command, path string, err error) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "%s %s is not a valid export configuration:\n",
		ErrorStyle.Render("✗"), ValueStyle.Render(path))
	var verr *exportcfg.ValidationError
	if errors.As(err, &verr) {
		for _, problem := range verr.Problems {
			fmt.Fprintf(stderr, "  %s %s\n", ErrorStyle.Render("•"), problem)
		}
	} else {
		fmt.Fprintf(stderr, "  %s %v\n", ErrorStyle.Render("•"), err)
	}
	return &ExitError{Code: 1}
}
