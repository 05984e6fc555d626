package config

import (
	"fmt"
	"os"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.Simulation != nil {
		if cfg.Simulation.Workers < 0 {
			return fmt.Errorf("simulation workers cannot be negative, got %d", cfg.Simulation.Workers)
		}
		if cfg.Simulation.MaxSteps < 0 {
			return fmt.Errorf("simulation max_steps cannot be negative, got %d", cfg.Simulation.MaxSteps)
		}
	}

	return nil
}
