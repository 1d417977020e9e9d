package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.ReportExtension != ".proof" {
		t.Errorf("ReportExtension = %q, want .proof", cfg.ReportExtension)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.ReportDir = "proofs"
	cfg.Analysis.ExcludeProvers = []string{"altergo"}
	cfg.Analysis.MaxFiles = 7
	cfg.Logging.Level = "debug"

	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.ReportDir != "proofs" {
		t.Errorf("ReportDir = %q, want proofs", loaded.ReportDir)
	}
	if len(loaded.Analysis.ExcludeProvers) != 1 || loaded.Analysis.ExcludeProvers[0] != "altergo" {
		t.Errorf("ExcludeProvers = %v", loaded.Analysis.ExcludeProvers)
	}
	if loaded.Analysis.MaxFiles != 7 {
		t.Errorf("MaxFiles = %d, want 7", loaded.Analysis.MaxFiles)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", loaded.Logging.Level)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(root); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unsupported version",
			mutate:  func(c *Config) { c.Version = 2 },
			wantErr: true,
		},
		{
			name:    "empty extension",
			mutate:  func(c *Config) { c.ReportExtension = "" },
			wantErr: true,
		},
		{
			name:    "negative max files",
			mutate:  func(c *Config) { c.Analysis.MaxFiles = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
