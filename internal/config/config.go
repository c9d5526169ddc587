package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/algo"
)

const (
	DefaultSpeed        = 5
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = "json"
)

var DefaultInput = []int{64, 34, 25, 12, 22, 11, 90, 45}

type Config struct {
	Algorithm    string `yaml:"algorithm"`
	Input        []int  `yaml:"input"`
	Speed        int    `yaml:"speed"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	OutputFormat string `yaml:"output_format"`
}

func DefaultConfig() *Config {
	input := make([]int, len(DefaultInput))
	copy(input, DefaultInput)
	return &Config{
		Algorithm:    algo.DefaultID,
		Input:        input,
		Speed:        DefaultSpeed,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		OutputFormat: DefaultOutputFormat,
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var (
	logLevels     = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true, "disabled": true}
	logFormats    = map[string]bool{"console": true, "json": true}
	outputFormats = map[string]bool{"json": true, "yaml": true}
)

func (c *Config) Validate() error {
	switch {
	case c.Algorithm == "":
		return fmt.Errorf("%w: algorithm is empty", ErrInvalidConfig)
	case c.Speed < MinSpeed || c.Speed > MaxSpeed:
		return fmt.Errorf("%w: speed %d outside [%d, %d]", ErrInvalidConfig, c.Speed, MinSpeed, MaxSpeed)
	case !logLevels[c.LogLevel]:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	case !logFormats[c.LogFormat]:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	case !outputFormats[c.OutputFormat]:
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.OutputFormat)
	}
	return nil
}

// ApplyPreset replaces the input with the preset's and switches algorithm
// when the preset names one.
func (c *Config) ApplyPreset(p Preset) {
	c.Input = make([]int, len(p.Input))
	copy(c.Input, p.Input)
	if p.Algorithm != "" {
		c.Algorithm = p.Algorithm
	}
}
