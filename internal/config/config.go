// Package config loads pushcli configuration from the global config
// file, an optional local file, and environment variables. Config
// values serve as defaults for the matching flags; flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the persistent settings for pushcli. UserKey and
// APIToken let frequent senders omit --user and --token; the required
// checks still run after merging, so an empty config simply means the
// flags are mandatory.
type Configuration struct {
	UserKey  string `koanf:"user_key"`
	APIToken string `koanf:"api_token"`
	Sound    string `koanf:"sound"`
	Device   string `koanf:"device"`
	Timeout  int    `koanf:"timeout" validate:"omitempty,min=1,max=3600"` // seconds; 0 = transport default
	Quiet    bool   `koanf:"quiet"`
}

// GlobalPath returns the path of the global config file,
// ~/.pushcli/config.json. The empty string is returned when the home
// directory cannot be determined.
func GlobalPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".pushcli", "config.json")
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath := GlobalPath(); globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", localConfigPath, err)
			}
		}
	}

	// Environment variables win over both files.
	k.Load(env.Provider("PUSHCLI_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: PUSHCLI_API_TOKEN -> api_token
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PUSHCLI_"))
}
