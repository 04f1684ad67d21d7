// Package cli implements the botwatch commands.
package cli

import (
	"github.com/botwatch-dev/botwatch/internal/config"
)

// configDir is the --config-dir override shared by all commands.
var configDir string

// SetConfigDir sets the configuration directory override.
func SetConfigDir(dir string) {
	configDir = dir
}

func resolveBaseDir() string {
	if configDir != "" {
		return configDir
	}
	return config.DefaultBaseDir()
}
