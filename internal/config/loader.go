package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thruflo/guess/internal/loop"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultTarget     = 30
	DefaultComparison = loop.ComparisonLoose
)

// DefaultMessages returns the messages used when none are configured.
func DefaultMessages() Messages {
	m := loop.DefaultMessages()
	return Messages{
		First:   m.First,
		Retry:   m.Retry,
		Success: m.Success,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Target:     DefaultTarget,
		Comparison: DefaultComparison,
		Messages:   DefaultMessages(),
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the location of the config file under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, ".guess", "config.yaml")
}

// LoadConfig reads and parses .guess/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
func LoadConfig(basePath string) (*Config, error) {
	cfg, err := LoadConfigFile(Path(basePath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			def := DefaultConfig()
			return &def, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a config file at an explicit path.
// Missing fields keep their defaults. A missing file is an error
// wrapping os.ErrNotExist.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if _, err := loop.ParseMatcher(cfg.Comparison); err != nil {
		return ValidationError{Field: "comparison", Message: fmt.Sprintf("must be %q or %q", loop.ComparisonLoose, loop.ComparisonStrict)}
	}
	if cfg.Messages.First == "" {
		return ValidationError{Field: "messages.first", Message: "required field is empty"}
	}
	if cfg.Messages.Retry == "" {
		return ValidationError{Field: "messages.retry", Message: "required field is empty"}
	}
	if cfg.Messages.Success == "" {
		return ValidationError{Field: "messages.success", Message: "required field is empty"}
	}
	return nil
}

// WriteConfig writes cfg as YAML to .guess/config.yaml under basePath,
// creating the directory if needed.
func WriteConfig(basePath string, cfg *Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	path := Path(basePath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Matcher returns the loop matcher for the configured comparison rule.
func (c *Config) Matcher() (loop.Matcher, error) {
	return loop.ParseMatcher(c.Comparison)
}

// LoopMessages converts the configured messages for use by a loop.
func (c *Config) LoopMessages() loop.Messages {
	return loop.Messages{
		First:   c.Messages.First,
		Retry:   c.Messages.Retry,
		Success: c.Messages.Success,
	}
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
