// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"ccexport-cli/pkg/exportcfg"

	"github.com/spf13/cobra"
)

var (
	initOutput string
	initFull   bool

	// initCmd creates a starter export configuration file.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a starter export configuration",
		Long: `Create a starter export configuration file.

The default template shows a small example selection; --full enumerates
every data unit in the catalog set to false, ready to be switched on.`,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "where to write the configuration (default ./export-config.json)")
	initCmd.Flags().BoolVar(&initFull, "full", false, "enumerate every catalog data unit")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := initOutput
	if path == "" {
		path = settings.ConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		return fail(cmd, "%s already exists; refusing to overwrite it", path)
	}

	if err := exportcfg.Save(path, exportcfg.Template(initFull)); err != nil {
		return fail(cmd, "%v", err)
	}

	absPath, _ := filepath.Abs(path)
	stdout := cmd.OutOrStdout()
	fmt.Fprintf(stdout, "%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(stdout, "  1. Edit the file and set the data units you need to true")
	fmt.Fprintln(stdout, "  2. Run 'ccexport validate' to check it")
	fmt.Fprintln(stdout, "  3. Run 'ccexport export' to start the export")
	return nil
}
