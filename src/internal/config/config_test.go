package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Catalog.Path != "data/movies.json" {
		t.Fatalf("default catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.OMDB.BaseURL == "" || cfg.Website.OutputDir == "" {
		t.Fatalf("incomplete defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.toml"), false); err != nil {
		t.Fatalf("missing default-location config errored: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "none.toml"), true); err == nil {
		t.Fatalf("missing explicit config accepted")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[catalog]\npath = \"films.csv\"\n\n[omdb]\napi_key = \"filekey\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != "films.csv" {
		t.Fatalf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.OMDB.APIKey != "filekey" {
		t.Fatalf("api key = %q", cfg.OMDB.APIKey)
	}
	// untouched sections keep their defaults
	if cfg.Website.OutputDir != "_static" {
		t.Fatalf("website dir = %q", cfg.Website.OutputDir)
	}
}

func TestEnvOverridesFileKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[omdb]\napi_key = \"filekey\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OMDB_API_KEY", "envkey")
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OMDB.APIKey != "envkey" {
		t.Fatalf("env did not win: %q", cfg.OMDB.APIKey)
	}
}

func TestSampleParsesToDefaults(t *testing.T) {
	var cfg Config
	if err := toml.Unmarshal([]byte(Sample()), &cfg); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
	if cfg.Catalog.Path != Default().Catalog.Path {
		t.Fatalf("sample disagrees with defaults: %q", cfg.Catalog.Path)
	}
	if !strings.Contains(Sample(), "OMDB_API_KEY") {
		t.Fatalf("sample does not document the env override")
	}
}
