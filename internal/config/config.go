// SPDX-License-Identifier: MPL-2.0

// Package config loads ccexport's own tool settings (not the export
// configuration, which lives in pkg/exportcfg). Settings come from an
// optional YAML file in the config directory, overridable through
// CCEXPORT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "ccexport"
	// ConfigFileName is the name of the settings file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the settings file extension.
	ConfigFileExt = "yaml"

	// DefaultBinaryName is the external job tool invoked for all remote work.
	DefaultBinaryName = "b2c-cli"
	// DefaultTimeout is the job timeout in seconds.
	DefaultTimeout = 600
	// DefaultOutputDir is where downloaded archives land.
	DefaultOutputDir = "./exports"
	// DefaultConfigFile is the export configuration read when --config is
	// not given.
	DefaultConfigFile = "./export-config.json"
)

// Settings holds tool-level settings with their resolved defaults.
type Settings struct {
	// BinaryName is the name or path of the external job tool.
	BinaryName string `mapstructure:"binary_name"`
	// Timeout is the default job timeout in seconds.
	Timeout int `mapstructure:"timeout"`
	// OutputDir is the default archive output directory.
	OutputDir string `mapstructure:"output_dir"`
	// ConfigFile is the default export configuration path.
	ConfigFile string `mapstructure:"config_file"`
}

// configDirOverride lets tests point the loader at a temp directory.
var configDirOverride = ""

// ConfigDir returns the ccexport configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the tool settings. A missing settings file is not an error;
// defaults and environment overrides still apply.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("binary_name", DefaultBinaryName)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("config_file", DefaultConfigFile)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings %q: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if settings.Timeout < 1 {
		return nil, fmt.Errorf("settings: timeout must be >= 1 second, got %d", settings.Timeout)
	}
	return &settings, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
