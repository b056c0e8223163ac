// Package config provides configuration loading and validation for the CLI
// and the Voyager client.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults used when neither config file nor environment provides a value.
const (
	DefaultBaseURL        = "https://www.linkedin.com/voyager/api"
	DefaultUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultTimeoutSeconds = 30
)

// Config is the CLI and client configuration, loadable from a JSON file and
// overridable from the environment. All fields are optional.
type Config struct {
	// Client
	BaseURL        string `json:"base_url,omitempty" validate:"omitempty,url"`
	UserAgent      string `json:"user_agent,omitempty"`
	CSRFToken      string `json:"csrf_token,omitempty"`     // JSESSIONID value, sent as csrf-token header
	SessionCookie  string `json:"session_cookie,omitempty"` // li_at session cookie value
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0,lte=600"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from LI_* environment variables.
func (c *Config) FromEnv() {
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv("LI_BASE_URL")
	}
	if c.CSRFToken == "" {
		c.CSRFToken = os.Getenv("LI_CSRF_TOKEN")
	}
	if c.SessionCookie == "" {
		c.SessionCookie = os.Getenv("LI_SESSION_COOKIE")
	}
	if c.UserAgent == "" {
		c.UserAgent = os.Getenv("LI_USER_AGENT")
	}
	if c.TimeoutSeconds == 0 {
		if v, err := strconv.Atoi(os.Getenv("LI_TIMEOUT_SECONDS")); err == nil {
			c.TimeoutSeconds = v
		}
	}
}

// ApplyDefaults fills any still-unset field with its default.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// Validate checks the configuration values against their constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
