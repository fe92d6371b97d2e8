// SPDX-License-Identifier: MPL-2.0

package wizard

import "ccexport-cli/pkg/exportcfg"

// Assemble turns the accumulated answers into a configuration. Selected
// keys become true entries; unselected keys are absent rather than
// false, so a saved configuration round-trips through the validator and
// filter exactly as the wizard produced it.
func Assemble(answers Answers) *exportcfg.Configuration {
	units := exportcfg.UnitTree{}

	if len(answers.GlobalData) > 0 {
		global := map[string]any{}
		for _, key := range answers.GlobalData {
			global[key] = true
		}
		units[exportcfg.GroupGlobalData] = global
	}

	if len(answers.Sites) > 0 {
		sites := map[string]any{}
		for _, site := range answers.Sites {
			selected := answers.SharedSiteData
			if !answers.SameDataForAllSites {
				selected = answers.SiteData[site]
			}
			data := map[string]any{}
			for _, key := range selected {
				data[key] = true
			}
			sites[site] = data
		}
		units[exportcfg.GroupSites] = sites
	}

	name := answers.ArchiveName
	if name == "" {
		name = exportcfg.DefaultArchiveName
	}

	return &exportcfg.Configuration{
		Archive:   exportcfg.ArchiveSettings{Name: name},
		DataUnits: units,
	}
}
