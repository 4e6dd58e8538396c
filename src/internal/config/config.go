// Package config loads the tool's TOML configuration and environment
// overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"moviedb/src/internal/store"
)

//go:embed sample_config.toml
var sampleConfig string

// Catalog contains storage configuration.
type Catalog struct {
	Path string `toml:"path"`
}

// Website contains static site output configuration.
type Website struct {
	OutputDir string `toml:"output_dir"`
}

// OMDB contains configuration for the OMDb metadata API.
type OMDB struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Countries contains configuration for the Rest Countries API.
type Countries struct {
	BaseURL string `toml:"base_url"`
}

// Config is the root configuration.
type Config struct {
	Catalog   Catalog   `toml:"catalog"`
	Website   Website   `toml:"website"`
	OMDB      OMDB      `toml:"omdb"`
	Countries Countries `toml:"countries"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog: Catalog{Path: store.DefaultPath},
		Website: Website{OutputDir: "_static"},
		OMDB:    OMDB{BaseURL: "https://www.omdbapi.com/"},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// fine when the path is the default location; an explicitly named file
// must exist. OMDB_API_KEY in the environment overrides the file value.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if explicit {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	case err != nil:
		return cfg, fmt.Errorf("config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if key := strings.TrimSpace(os.Getenv("OMDB_API_KEY")); key != "" {
		cfg.OMDB.APIKey = key
	}
	return cfg, nil
}

// Sample returns the annotated sample configuration.
func Sample() string { return sampleConfig }
