/*
Package config manages TOML config for the crossdex tools.
*/
package config

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/crossdex/xword-lib/internal/utils"
	"github.com/crossdex/xword-lib/pkg/dictionary"
)

// DefaultConfigFile is looked up relative to the working directory, next to
// the database/ folder the dictionary path points into.
const DefaultConfigFile = "crossdex.toml"

// Config holds the entire config structure
type Config struct {
	Dict DictConfig `toml:"dict"`
	CLI  CliConfig  `toml:"cli"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path     string `toml:"path"`
	Snapshot string `toml:"snapshot"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int `toml:"default_limit"`
	DefaultMinScore int `toml:"default_min_score"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:     dictionary.DefaultPath,
			Snapshot: "",
		},
		CLI: CliConfig{
			DefaultLimit:    24,
			DefaultMinScore: 1,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ./crossdex.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	if !utils.FileExists(DefaultConfigFile) {
		return DefaultConfig(), "", nil
	}
	config, err := LoadConfig(DefaultConfigFile)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using builtin defaults...", DefaultConfigFile, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", DefaultConfigFile)
	return config, DefaultConfigFile, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// SaveConfig writes the config back as TOML.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// tryPartialParse attempts to salvage what it can from a broken TOML file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		if val, ok := utils.ExtractString(dictSection, "path"); ok {
			config.Dict.Path = val
		}
		if val, ok := utils.ExtractString(dictSection, "snapshot"); ok {
			config.Dict.Snapshot = val
		}
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		if val, ok := utils.ExtractInt64(cliSection, "default_limit"); ok {
			config.CLI.DefaultLimit = val
		}
		if val, ok := utils.ExtractInt64(cliSection, "default_min_score"); ok {
			config.CLI.DefaultMinScore = val
		}
	}
	return config, nil
}
