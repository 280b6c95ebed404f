// Package config handles user configuration for pid2bib.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "pid2bib"
	configFileName = "config.yml"
)

// Config holds user configuration read from
// ~/.config/pid2bib/config.yml. Every field is optional; the zero
// Config is fully usable.
type Config struct {
	// OutputDir is where .bib files are written. Empty means the
	// current directory.
	OutputDir string `yaml:"output_dir"`

	// NCBIAPIKey raises the E-utilities rate limit from 3 to 10
	// requests per second. The NCBI_API_KEY environment variable takes
	// precedence.
	NCBIAPIKey string `yaml:"ncbi_api_key"`

	// EutilsBaseURL overrides the E-utilities endpoint.
	EutilsBaseURL string `yaml:"eutils_base_url"`

	// Cache toggles the local payload cache. Defaults to on.
	Cache *bool `yaml:"cache"`
}

// DefaultPath returns the configuration file path under the user
// config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Load reads the configuration file at path and merges the
// environment. A missing file is not an error. A .env file in the
// working directory is loaded first so NCBI_API_KEY can live there.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if key := os.Getenv("NCBI_API_KEY"); key != "" {
		cfg.NCBIAPIKey = key
	}

	if cfg.OutputDir != "" {
		info, err := os.Stat(cfg.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("output_dir does not exist: %s", cfg.OutputDir)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("output_dir is not a directory: %s", cfg.OutputDir)
		}
	}

	return &cfg, nil
}

// CacheEnabled reports whether the payload cache should be used.
func (c *Config) CacheEnabled() bool {
	return c.Cache == nil || *c.Cache
}
