// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables forming the credentials fallback. Only their
// presence matters here; the external job tool reads the values.
const (
	EnvServer       = "SFCC_SERVER"
	EnvClientID     = "SFCC_CLIENT_ID"
	EnvClientSecret = "SFCC_CLIENT_SECRET"
)

// CredentialsFileName is the conventional credentials file probed in the
// working directory.
const CredentialsFileName = "dw.json"

// InstanceSource describes where instance credentials were found. The
// credentials themselves stay opaque to ccexport.
type InstanceSource struct {
	// Available reports whether any credential source was found.
	Available bool
	// Description names the source for operator-facing output, e.g.
	// "credentials file ./dw.json".
	Description string
}

// DiscoverInstance probes for instance credentials, in order: a named
// profile under the config directory (when instance is set), dw.json in
// the working directory, then the SFCC_* environment fallback (all three
// variables must be present).
func DiscoverInstance(instance string) InstanceSource {
	if instance != "" {
		if dir, err := ConfigDir(); err == nil {
			profile := filepath.Join(dir, "instances", instance+".json")
			if fileExists(profile) {
				return InstanceSource{
					Available:   true,
					Description: fmt.Sprintf("credential profile %q (%s)", instance, profile),
				}
			}
		}
	}

	if fileExists(CredentialsFileName) {
		return InstanceSource{
			Available:   true,
			Description: "credentials file ./" + CredentialsFileName,
		}
	}

	if os.Getenv(EnvServer) != "" && os.Getenv(EnvClientID) != "" && os.Getenv(EnvClientSecret) != "" {
		return InstanceSource{
			Available:   true,
			Description: "SFCC_* environment variables",
		}
	}

	return InstanceSource{}
}
