// SPDX-License-Identifier: MPL-2.0

package exportcfg

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export-config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("Load() error = %T, want *NotFoundError", err)
	}
	if !strings.Contains(nfe.Error(), "absent.json") {
		t.Errorf("error %q should name the path", nfe)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"dataUnits": {`)
	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Load() error = %v, want ErrParse", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %T, want *ParseError", err)
	}
	if perr.Err == nil {
		t.Error("ParseError must carry the underlying syntax error")
	}
}

func TestLoad_ValidDocument(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{
		"archive": {"name": "{site}-{date}"},
		"dataUnits": {
			"global_data": {"meta_data": true},
			"sites": {"RefArch": {"content": true}, "SiteGen": true}
		}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Archive.Name != "{site}-{date}" {
		t.Errorf("Archive.Name = %q", cfg.Archive.Name)
	}
	global, ok := cfg.DataUnits[GroupGlobalData].(map[string]any)
	if !ok || global["meta_data"] != true {
		t.Errorf("global_data not decoded: %v", cfg.DataUnits[GroupGlobalData])
	}
	sites := cfg.DataUnits[GroupSites].(map[string]any)
	if sites["SiteGen"] != true {
		t.Errorf("boolean site shorthand lost: %v", sites["SiteGen"])
	}
}

// A document without a dataUnits section decodes to a nil tree, which
// the validator reports; a document with an empty section decodes to an
// empty, non-nil tree, which is valid.
func TestLoad_DataUnitsAbsenceVsEmpty(t *testing.T) {
	t.Parallel()

	absent, err := Load(writeConfig(t, `{"archive": {"name": "x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if absent.DataUnits != nil {
		t.Errorf("absent dataUnits should decode to nil, got %v", absent.DataUnits)
	}
	if err := Validate(absent); err == nil {
		t.Error("absent dataUnits must fail validation")
	}

	empty, err := Load(writeConfig(t, `{"dataUnits": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	if empty.DataUnits == nil {
		t.Fatal("empty dataUnits should decode to an empty tree, not nil")
	}
	if err := Validate(empty); err != nil {
		t.Errorf("empty dataUnits is structurally valid, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{
		Archive: ArchiveSettings{Name: DefaultArchiveName},
		DataUnits: UnitTree{
			GroupGlobalData: map[string]any{"meta_data": true},
			GroupSites:      map[string]any{"RefArch": map[string]any{"content": true}},
		},
	}
	path := filepath.Join(t.TempDir(), "saved.json")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip changed the document:\nsaved  %v\nloaded %v", cfg, loaded)
	}
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal", func(t *testing.T) {
		t.Parallel()
		cfg := Template(false)
		if cfg.Archive.Name == "" {
			t.Error("minimal template must set an archive name")
		}
		if err := Validate(cfg); err != nil {
			t.Errorf("minimal template must validate, got %v", err)
		}
		if HasEnabledUnits(cfg.DataUnits) {
			t.Error("template must not pre-enable any data unit")
		}
	})

	t.Run("full enumerates whole catalog", func(t *testing.T) {
		t.Parallel()
		cfg := Template(true)
		if err := Validate(cfg); err != nil {
			t.Errorf("full template must validate, got %v", err)
		}
		global := cfg.DataUnits[GroupGlobalData].(map[string]any)
		if len(global) != len(GlobalDataKeys()) {
			t.Errorf("full template has %d global keys, want %d", len(global), len(GlobalDataKeys()))
		}
		site := cfg.DataUnits[GroupSites].(map[string]any)["RefArch"].(map[string]any)
		if len(site) != len(SiteDataKeys()) {
			t.Errorf("full template has %d site keys, want %d", len(site), len(SiteDataKeys()))
		}
		if HasEnabledUnits(cfg.DataUnits) {
			t.Error("template must not pre-enable any data unit")
		}
	})
}
