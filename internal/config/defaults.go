package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"user_key":  "",
		"api_token": "",
		"sound":     "",
		"device":    "",
		"timeout":   0,
		"quiet":     false,
	}
}

// template is the annotated config file written by `pushcli config init`.
const template = `{
  "user_key": "",
  "api_token": "",
  "sound": "",
  "device": "",
  "timeout": 0,
  "quiet": false
}
`

// WriteTemplate writes a starter config file to path, creating the
// parent directory if needed. The file is created with mode 0600 since
// it will usually hold the API token. Refuses to overwrite an existing
// file unless force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(template), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
