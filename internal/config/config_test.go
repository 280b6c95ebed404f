package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OutputDir != "" || cfg.EutilsBaseURL != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
	if !cfg.CacheEnabled() {
		t.Error("cache should default to enabled")
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "output_dir: "+dir+"\nncbi_api_key: abc123\ncache: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OutputDir != dir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, dir)
	}
	if cfg.NCBIAPIKey != "abc123" {
		t.Errorf("NCBIAPIKey = %q", cfg.NCBIAPIKey)
	}
	if cfg.CacheEnabled() {
		t.Error("cache: false should disable the cache")
	}
}

func TestLoad_EnvKeyWins(t *testing.T) {
	path := writeConfig(t, "ncbi_api_key: from-file\n")
	t.Setenv("NCBI_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.NCBIAPIKey != "from-env" {
		t.Errorf("NCBIAPIKey = %q, want env value", cfg.NCBIAPIKey)
	}
}

func TestLoad_RejectsMissingOutputDir(t *testing.T) {
	path := writeConfig(t, "output_dir: /nonexistent/pid2bib-test\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a nonexistent output_dir")
	}
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "output_dir: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject malformed YAML")
	}
}
