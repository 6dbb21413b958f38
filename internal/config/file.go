package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const FileName = ".git-resolve-conflict.toml"

// FileConfig is the on-disk TOML configuration.
type FileConfig struct {
	DefaultStrategy string `toml:"default_strategy"`
	Plain           bool   `toml:"plain"`
	Debug           bool   `toml:"debug"`
	Logging         struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"logging"`
}

// LoadFromFile returns empty config if file missing, error if file invalid.
func LoadFromFile(dir string) (FileConfig, error) {
	var cfg FileConfig
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// FileConfigExists reports whether dir carries a config file.
func FileConfigExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}
