package config

import (
	"os"

	"github.com/spf13/viper"
)

// Global holds the global configuration state for git-resolve-conflict
var Global struct {
	Plain bool // Disable colors and symbols
	Debug bool // Enable debug logging
}

// IsPlain returns true if plain output mode is enabled
func IsPlain() bool {
	return Global.Plain
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return Global.Debug
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() {
	plain := os.Getenv("GRC_PLAIN")
	if plain == "1" || plain == "true" {
		Global.Plain = true
	}
	debug := os.Getenv("GRC_DEBUG")
	if debug == "1" || debug == "true" {
		Global.Debug = true
	}
}

// Initialize sets up viper defaults and loads the optional config file.
// Precedence: flags (bound by the caller) > environment > config file > defaults.
func Initialize() error {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("resolve.default_strategy", "")

	viper.SetEnvPrefix("GRC")
	viper.AutomaticEnv()

	cwd, err := os.Getwd()
	if err != nil {
		return nil // no working directory, run on defaults
	}

	cfg, err := LoadFromFile(cwd)
	if err != nil {
		return err
	}
	applyFileConfig(cfg)

	LoadFromEnv()
	return nil
}

// applyFileConfig copies file-level settings into viper and the global state.
func applyFileConfig(cfg FileConfig) {
	if cfg.Logging.Level != "" {
		viper.SetDefault("logging.level", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "" {
		viper.SetDefault("logging.format", cfg.Logging.Format)
	}
	if cfg.DefaultStrategy != "" {
		viper.SetDefault("resolve.default_strategy", cfg.DefaultStrategy)
	}
	if cfg.Plain {
		Global.Plain = true
	}
	if cfg.Debug {
		Global.Debug = true
	}
}

// GetString returns a configuration value by key.
func GetString(key string) string {
	return viper.GetString(key)
}
