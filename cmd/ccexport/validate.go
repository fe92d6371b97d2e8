// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"ccexport-cli/pkg/exportcfg"

	"github.com/spf13/cobra"
)

var (
	validateConfigPath string

	// validateCmd checks an export configuration without touching the instance.
	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate an export configuration",
		Long: `Validate an export configuration file.

Structural problems (unknown data unit groups, unknown data units,
malformed site entries) are all reported at once. A valid configuration
that enables nothing is flagged as a warning but still passes.`,
		RunE: runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "export configuration file (default ./export-config.json)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := validateConfigPath
	if path == "" {
		path = settings.ConfigFile
	}

	cfg, err := exportcfg.Load(path)
	if err != nil {
		return fail(cmd, "%v", err)
	}
	if err := exportcfg.Validate(cfg); err != nil {
		return failValidation(cmd, path, err)
	}

	stdout := cmd.OutOrStdout()
	filtered := exportcfg.FilterEnabled(cfg.DataUnits)
	if len(filtered) == 0 {
		fmt.Fprintf(stdout, "%s %s is valid but enables no data units\n",
			WarningStyle.Render("⚠"), ValueStyle.Render(path))
		return nil
	}

	fmt.Fprintf(stdout, "%s %s is valid (%d data unit group(s) enabled)\n",
		SuccessStyle.Render("✓"), ValueStyle.Render(path), len(filtered))
	return nil
}
