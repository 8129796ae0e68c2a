// ABOUTME: Standard filesystem paths for brailleview configuration
// ABOUTME: Uses $XDG_CONFIG_HOME/brailleview when set, ~/.config/brailleview otherwise

package config

import (
	"os"
	"path/filepath"
)

const appDirName = "brailleview"

// configNames lists the global config file names in lookup order.
var configNames = []string{"config.yaml", "config.yml", "config.toml"}

// GlobalDir returns the user-global config directory.
func GlobalDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// FindGlobalConfigFile returns the first config file present in GlobalDir,
// or "" when there is none.
func FindGlobalConfigFile() string {
	dir := GlobalDir()
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}
