package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNorm       = "frobenius"
	DefaultScheme     = "central"
	DefaultResolution = 40
	DefaultSpan       = 2.0
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the file-backed configuration for the CLI.
type Config struct {
	Flow   string             `yaml:"flow"`
	Params map[string]float64 `yaml:"params"`

	// X0 is the reference point; X the evaluation point. Empty slices
	// fall back to the flow's default point.
	X0 []float64 `yaml:"x0"`
	X  []float64 `yaml:"x"`

	Norm    string  `yaml:"norm"`
	Scheme  string  `yaml:"scheme"`
	Step    float64 `yaml:"step"`
	Workers int     `yaml:"workers"`

	Scan ScanConfig `yaml:"scan"`
}

// ScanConfig describes the sweep region for the scan command.
type ScanConfig struct {
	AxisX      int     `yaml:"axis_x"`
	AxisY      int     `yaml:"axis_y"`
	MinX       float64 `yaml:"min_x"`
	MaxX       float64 `yaml:"max_x"`
	MinY       float64 `yaml:"min_y"`
	MaxY       float64 `yaml:"max_y"`
	Resolution int     `yaml:"resolution"`
}

func DefaultConfig() *Config {
	return &Config{
		Flow:   "spiral",
		Norm:   DefaultNorm,
		Scheme: DefaultScheme,
		Scan: ScanConfig{
			AxisX:      0,
			AxisY:      1,
			MinX:       -DefaultSpan,
			MaxX:       DefaultSpan,
			MinY:       -DefaultSpan,
			MaxY:       DefaultSpan,
			Resolution: DefaultResolution,
		},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Flow == "" {
		return fmt.Errorf("%w: flow name is empty", ErrInvalidConfig)
	}
	switch c.Scheme {
	case "central", "forward", "richardson":
	default:
		return fmt.Errorf("%w: unknown scheme %q", ErrInvalidConfig, c.Scheme)
	}
	if c.Step < 0 {
		return fmt.Errorf("%w: negative step %g", ErrInvalidConfig, c.Step)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative workers %d", ErrInvalidConfig, c.Workers)
	}
	if len(c.X) > 0 && len(c.X0) > 0 && len(c.X) != len(c.X0) {
		return fmt.Errorf("%w: x has %d components, x0 has %d", ErrInvalidConfig, len(c.X), len(c.X0))
	}
	if c.Scan.Resolution < 2 {
		return fmt.Errorf("%w: scan resolution %d, need at least 2", ErrInvalidConfig, c.Scan.Resolution)
	}
	return nil
}
