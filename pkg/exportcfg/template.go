// SPDX-License-Identifier: MPL-2.0

package exportcfg

import (
	"strconv"
	"strings"
	"time"
)

// RenderArchiveName renders an archive name template. Recognized
// placeholders, each replaced at its first occurrence only:
//
//	{date}      calendar date, YYYY-MM-DD
//	{time}      local 24-hour clock, HH-MM-SS
//	{timestamp} milliseconds since the Unix epoch
//	{site}      the site argument, or "all" when empty
//
// Unrecognized placeholders are left verbatim. The current time is
// sampled once per call.
func RenderArchiveName(template, site string) string {
	return renderArchiveNameAt(template, site, time.Now())
}

func renderArchiveNameAt(template, site string, now time.Time) string {
	if site == "" {
		site = AllUnits
	}
	name := strings.Replace(template, "{date}", now.Format("2006-01-02"), 1)
	name = strings.Replace(name, "{time}", now.Format("15-04-05"), 1)
	name = strings.Replace(name, "{timestamp}", strconv.FormatInt(now.UnixMilli(), 10), 1)
	name = strings.Replace(name, "{site}", site, 1)
	return name
}
