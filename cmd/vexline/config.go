package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config is vexline's on-disk settings, the same small-TOML-file-in-home
// shape sidedotdev-sidekick uses for its own config.
type config struct {
	MappingPath string `toml:"mapping_path"`
	SeedFile    string `toml:"seed_file"`
}

func defaultConfig() config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return config{
		MappingPath: filepath.Join(home, ".vexline-mappings.toml"),
	}
}

// loadConfig reads ~/.vexline.toml if present, falling back to defaults
// for anything it doesn't set. A missing file is not an error.
func loadConfig() (config, error) {
	cfg := defaultConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(home, ".vexline.toml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
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
