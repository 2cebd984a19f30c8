// Package config holds codesieve configuration: the model endpoint, sampling
// settings, and output behavior. Config is read from a YAML file with
// environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all codesieve configuration.
type Config struct {
	Name string `yaml:"name"`

	// API endpoint settings
	API APIConfig `yaml:"api"`

	// Output behavior defaults
	Output OutputConfig `yaml:"output"`
}

// APIConfig configures the LM Studio endpoint.
type APIConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	Timeout     string  `yaml:"timeout"`
}

// OutputConfig configures default output handling.
type OutputConfig struct {
	CopyToClipboard bool   `yaml:"copy_to_clipboard"`
	PromptFile      string `yaml:"prompt_file"`
}

// DefaultConfig returns the built-in defaults for a local LM Studio setup.
func DefaultConfig() *Config {
	return &Config{
		Name: "codesieve",
		API: APIConfig{
			BaseURL:     "http://localhost:1234/v1",
			Temperature: 0.7,
			MaxTokens:   2000,
			Timeout:     "120s",
		},
		Output: OutputConfig{
			CopyToClipboard: true,
			PromptFile:      "prompt.txt",
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("CODESIEVE_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if model := os.Getenv("CODESIEVE_MODEL"); model != "" {
		c.API.Model = model
	}
	if temp := os.Getenv("CODESIEVE_TEMPERATURE"); temp != "" {
		if parsed, err := strconv.ParseFloat(temp, 64); err == nil {
			c.API.Temperature = parsed
		}
	}
	if tokens := os.Getenv("CODESIEVE_MAX_TOKENS"); tokens != "" {
		if parsed, err := strconv.Atoi(tokens); err == nil && parsed > 0 {
			c.API.MaxTokens = parsed
		}
	}
}

// APITimeout parses the configured timeout, defaulting to two minutes.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 120 * time.Second
	}
	return d
}
