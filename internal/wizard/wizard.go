// SPDX-License-Identifier: MPL-2.0

// Package wizard is the interactive configuration builder: a linear
// sequence of prompts that assembles the same configuration shape the
// validator and filter consume, with every selected key set to true and
// unselected keys simply absent.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"ccexport-cli/pkg/exportcfg"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
)

// SiteLister fetches the instance's site identifiers. The wizard treats
// it as best effort and degrades to manual entry on any failure.
type SiteLister interface {
	ListSites(ctx context.Context) ([]string, error)
}

// Deps carries the wizard's collaborators and prompt defaults.
type Deps struct {
	// Lister fetches sites from the instance; nil disables the fetch
	// option entirely.
	Lister SiteLister
	// DefaultOutputDir pre-fills the output directory prompt.
	DefaultOutputDir string
	// DefaultConfigPath pre-fills the save-to path prompt.
	DefaultConfigPath string
	// Logger records best-effort failures at debug level.
	Logger *log.Logger
}

// Answers accumulates the operator's selections. It exists only for the
// duration of one wizard run.
type Answers struct {
	GlobalData          []string
	Sites               []string
	SameDataForAllSites bool
	SharedSiteData      []string
	SiteData            map[string][]string
	OutputDir           string
	ArchiveName         string
	KeepArchive         bool
	SavePath            string
}

// Run walks the operator through the whole flow. Aborting any prompt
// aborts the wizard; no partial configuration is returned
// (huh.ErrUserAborted propagates to the caller).
func Run(ctx context.Context, deps Deps) (*exportcfg.Configuration, *Answers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	answers := &Answers{SiteData: map[string][]string{}}

	if err := selectGlobalData(answers); err != nil {
		return nil, nil, err
	}
	if err := selectSites(ctx, deps, logger, answers); err != nil {
		return nil, nil, err
	}
	if len(answers.Sites) > 0 {
		if err := selectSiteData(answers); err != nil {
			return nil, nil, err
		}
	}
	if err := outputOptions(deps, answers); err != nil {
		return nil, nil, err
	}
	if err := optionalSave(deps, answers); err != nil {
		return nil, nil, err
	}

	return Assemble(*answers), answers, nil
}

func selectGlobalData(answers *Answers) error {
	return huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Global data units").
			Description("Instance-wide data to include in the export").
			Options(huh.NewOptions(exportcfg.GlobalDataKeys()...)...).
			Value(&answers.GlobalData),
	)).Run()
}

func selectSites(ctx context.Context, deps Deps, logger *log.Logger, answers *Answers) error {
	fetched := []string(nil)

	if deps.Lister != nil {
		fetch := true
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Fetch the site list from the instance?").
				Value(&fetch),
		)).Run(); err != nil {
			return err
		}
		if fetch {
			spinErr := spinner.New().
				Title("Fetching sites from the instance").
				Action(func() {
					sites, err := deps.Lister.ListSites(ctx)
					if err != nil {
						logger.Debug("site list fetch failed, falling back to manual entry", "error", err)
						return
					}
					fetched = sites
				}).
				Run()
			if spinErr != nil {
				return spinErr
			}
		}
	}

	if len(fetched) > 0 {
		return huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Sites").
				Description("Sites to include in the export").
				Options(huh.NewOptions(fetched...)...).
				Value(&answers.Sites),
		)).Run()
	}

	var manual string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Sites").
			Description("Comma-separated site IDs, empty for none").
			Placeholder("RefArch,SiteGenesis").
			Value(&manual),
	)).Run(); err != nil {
		return err
	}
	answers.Sites = splitIdentifiers(manual)
	return nil
}

func selectSiteData(answers *Answers) error {
	answers.SameDataForAllSites = true
	if len(answers.Sites) > 1 {
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Use the same data selection for every site?").
				Value(&answers.SameDataForAllSites),
		)).Run(); err != nil {
			return err
		}
	}

	if answers.SameDataForAllSites {
		return huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Site data units").
				Description("Applied to every selected site").
				Options(huh.NewOptions(exportcfg.SiteDataKeys()...)...).
				Value(&answers.SharedSiteData),
		)).Run()
	}

	for _, site := range answers.Sites {
		var selected []string
		if err := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("Data units for %s", site)).
				Options(huh.NewOptions(exportcfg.SiteDataKeys()...)...).
				Value(&selected),
		)).Run(); err != nil {
			return err
		}
		answers.SiteData[site] = selected
	}
	return nil
}

func outputOptions(deps Deps, answers *Answers) error {
	answers.OutputDir = deps.DefaultOutputDir
	answers.ArchiveName = exportcfg.DefaultArchiveName
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Output directory").
			Value(&answers.OutputDir),
		huh.NewInput().
			Title("Archive name template").
			Description("Placeholders: {date} {time} {timestamp} {site}").
			Value(&answers.ArchiveName),
		huh.NewConfirm().
			Title("Keep the archive on the instance after download?").
			Value(&answers.KeepArchive),
	)).Run()
}

func optionalSave(deps Deps, answers *Answers) error {
	save := false
	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Save this configuration to a file?").
			Value(&save),
	)).Run(); err != nil {
		return err
	}
	if !save {
		answers.SavePath = ""
		return nil
	}

	answers.SavePath = deps.DefaultConfigPath
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Configuration path").
			Value(&answers.SavePath),
	)).Run()
}

func splitIdentifiers(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
