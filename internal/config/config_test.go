package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Flow != "spiral" {
		t.Errorf("expected flow spiral, got %s", cfg.Flow)
	}
	if cfg.Norm != DefaultNorm {
		t.Errorf("expected norm %s, got %s", DefaultNorm, cfg.Norm)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "potflow.yaml")

	cfg := DefaultConfig()
	cfg.Flow = "rotation"
	cfg.Params = map[string]float64{"omega": 2.5}
	cfg.X0 = []float64{1, 0}
	cfg.X = []float64{1.1, 0.05}
	cfg.Norm = "spectral"
	cfg.Workers = 4

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Flow != "rotation" {
		t.Errorf("expected flow rotation, got %s", loaded.Flow)
	}
	if loaded.Params["omega"] != 2.5 {
		t.Errorf("expected omega 2.5, got %f", loaded.Params["omega"])
	}
	if len(loaded.X0) != 2 || loaded.X0[0] != 1 {
		t.Errorf("unexpected x0: %v", loaded.X0)
	}
	if loaded.Norm != "spectral" {
		t.Errorf("expected norm spectral, got %s", loaded.Norm)
	}
	if loaded.Workers != 4 {
		t.Errorf("expected workers 4, got %d", loaded.Workers)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("flow: doublewell\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Flow != "doublewell" {
		t.Errorf("expected flow doublewell, got %s", cfg.Flow)
	}
	if cfg.Scheme != DefaultScheme {
		t.Errorf("expected default scheme, got %s", cfg.Scheme)
	}
	if cfg.Scan.Resolution != DefaultResolution {
		t.Errorf("expected default resolution, got %d", cfg.Scan.Resolution)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty flow", func(c *Config) { c.Flow = "" }},
		{"bad scheme", func(c *Config) { c.Scheme = "stochastic" }},
		{"negative step", func(c *Config) { c.Step = -1e-6 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"mismatched points", func(c *Config) { c.X = []float64{1}; c.X0 = []float64{1, 2} }},
		{"tiny resolution", func(c *Config) { c.Scan.Resolution = 1 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
