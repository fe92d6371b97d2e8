// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"ccexport-cli/pkg/exportcfg"
)

// resetInitFlags restores the init command's package-level flag state.
func resetInitFlags(t *testing.T) {
	t.Helper()
	origOutput, origFull := initOutput, initFull
	t.Cleanup(func() { initOutput, initFull = origOutput, origFull })
	initOutput, initFull = "", false
}

func runInitCommand(t *testing.T) (string, error) {
	t.Helper()
	var out bytes.Buffer
	initCmd.SetOut(&out)
	initCmd.SetErr(&out)
	t.Cleanup(func() {
		initCmd.SetOut(nil)
		initCmd.SetErr(nil)
	})
	err := runInit(initCmd, nil)
	return out.String(), err
}

func TestRunInit_CreatesValidTemplate(t *testing.T) {
	t.Chdir(t.TempDir())
	resetInitFlags(t)

	out, err := runInitCommand(t)
	if err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(out, "Created") {
		t.Errorf("output %q should confirm creation", out)
	}

	cfg, err := exportcfg.Load("export-config.json")
	if err != nil {
		t.Fatalf("template did not load back: %v", err)
	}
	if err := exportcfg.Validate(cfg); err != nil {
		t.Errorf("template must validate, got %v", err)
	}
	if exportcfg.HasEnabledUnits(cfg.DataUnits) {
		t.Error("template must not pre-enable data units")
	}
}

func TestRunInit_FullVariant(t *testing.T) {
	t.Chdir(t.TempDir())
	resetInitFlags(t)
	initFull = true

	if _, err := runInitCommand(t); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	cfg, err := exportcfg.Load("export-config.json")
	if err != nil {
		t.Fatal(err)
	}
	global := cfg.DataUnits[exportcfg.GroupGlobalData].(map[string]any)
	if len(global) != len(exportcfg.GlobalDataKeys()) {
		t.Errorf("full template lists %d global units, want %d", len(global), len(exportcfg.GlobalDataKeys()))
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())
	resetInitFlags(t)

	if err := os.WriteFile("export-config.json", []byte(`{"dataUnits":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runInitCommand(t)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("runInit() = %v, want ExitError{1}", err)
	}

	// The existing file must be untouched.
	data, err := os.ReadFile("export-config.json")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"dataUnits":{}}` {
		t.Error("existing configuration was modified")
	}
}

func TestRunInit_CustomOutputPath(t *testing.T) {
	t.Chdir(t.TempDir())
	resetInitFlags(t)
	initOutput = "custom.json"

	if _, err := runInitCommand(t); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if _, err := os.Stat("custom.json"); err != nil {
		t.Errorf("custom output path not written: %v", err)
	}
}
