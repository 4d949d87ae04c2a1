// Package config loads the system-wide goodgame configuration: the shell
// hooks are run with and the run/cloud command templates.
package config

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
)

// Path is the fixed location of the configuration file. A variable so tests
// can point it at a fixture.
var Path = "/etc/goodgame/config.json"

// Config is read once per invocation and treated as read-only afterwards.
// The zero value means "no hooks configured" and is perfectly usable.
type Config struct {
	Shell  string `json:"shell"`
	Run    Run    `json:"run"`
	Backup Backup `json:"backup"`
}

// Run carries the global run command template.
type Run struct {
	Commands []string `json:"commands"`
}

// Backup carries the cloud hook templates invoked around backup and restore.
type Backup struct {
	CloudInitCommands   []string `json:"cloudInitCommands"`
	CloudCommitCommands []string `json:"cloudCommitCommands"`
	CloudPushCommands   []string `json:"cloudPushCommands"`
}

// Load reads the configuration file. A missing or malformed file degrades
// to the zero configuration: hooks are optional by construction, so their
// absence is never an error.
func Load() Config {
	cfg, err := loadFrom(Path)
	if err != nil {
		log.Debug().Str("path", Path).Err(err).Msg("using default configuration")
		return Config{}
	}
	return cfg
}

func loadFrom(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
