package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.01
	DefaultTStop     = 10.0
	DefaultTolerance = 1e-6
)

type Config struct {
	System    string    `yaml:"system"`
	Solver    string    `yaml:"solver"`
	Dt        float64   `yaml:"dt"`
	TStop     float64   `yaml:"t_stop"`
	Tolerance float64   `yaml:"tolerance"`
	InitState []float64 `yaml:"init_state"`
}

func DefaultConfig() *Config {
	return &Config{
		System:    "cosine",
		Solver:    "euler",
		Dt:        DefaultDt,
		TStop:     DefaultTStop,
		Tolerance: DefaultTolerance,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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
