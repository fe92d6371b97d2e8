// SPDX-License-Identifier: MPL-2.0

// Package exportcfg defines the export configuration model: the data-unit
// catalog, configuration loading and validation, enabled-unit filtering,
// archive name templating, and compilation of a configuration into the
// argument list for the external job tool.
package exportcfg

import "slices"

// AllUnits is the sentinel data-unit key meaning "every unit in the category".
const AllUnits = "all"

// globalDataKeys is the fixed, ordered set of instance-wide data units.
// Order is significant: it drives wizard display and argument ordering.
var globalDataKeys = []string{
	"access_roles",
	"catalogs",
	"custom_preference_groups",
	"custom_types",
	"global_custom_objects",
	"job_schedules",
	"locales",
	"meta_data",
	"oauth_providers",
	"ocapi_settings",
	"preferences",
	"price_adjustment_limits",
	"services",
	"sorting_rules",
	"static_resources",
	"system_type_definitions",
	"users",
	"webdav_client_permissions",
	AllUnits,
}

// siteDataKeys is the fixed, ordered set of per-site data units.
var siteDataKeys = []string{
	"ab_tests",
	"active_data_feeds",
	"cache_settings",
	"campaigns_and_promotions",
	"content",
	"coupons",
	"custom_objects",
	"customer_groups",
	"distributed_commerce_extensions",
	"dynamic_file_resources",
	"gift_certificates",
	"ocapi_settings",
	"payment_methods",
	"payment_processors",
	"redirect_urls",
	"search_settings",
	"shipping",
	"site_descriptor",
	"site_preferences",
	"sitemap_settings",
	"slots",
	"sorting_rules",
	"source_codes",
	"static_dynamic_alias_mappings",
	"stores",
	"tax",
	"url_rules",
	AllUnits,
}

// GlobalDataKeys returns the ordered set of valid instance-wide data-unit keys.
func GlobalDataKeys() []string {
	return slices.Clone(globalDataKeys)
}

// SiteDataKeys returns the ordered set of valid per-site data-unit keys.
func SiteDataKeys() []string {
	return slices.Clone(siteDataKeys)
}

// IsGlobalDataKey reports whether key is a member of the global data-unit set.
func IsGlobalDataKey(key string) bool {
	return slices.Contains(globalDataKeys, key)
}

// IsSiteDataKey reports whether key is a member of the per-site data-unit set.
func IsSiteDataKey(key string) bool {
	return slices.Contains(siteDataKeys, key)
}
