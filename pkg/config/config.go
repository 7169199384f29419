// Package config provides configuration loading for the MCP server.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// Config is the main configuration structure.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	BookStack     bookstack.Config    `yaml:"bookstack"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	BaseURL   string `yaml:"base_url"`
	Transport string `yaml:"transport"`
}

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	MetricsEnabled bool `yaml:"metrics_enabled"`
	MetricsPort    int  `yaml:"metrics_port"`
}

// envVarPattern matches ${VAR_NAME} patterns for environment variable substitution.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load loads configuration from a YAML file with environment variable substitution.
// When path is empty the CONFIG_PATH environment variable is consulted, then
// config.yaml. A missing default config file is not an error: BookStack
// credentials can also arrive via environment variables, or per-request headers
// in HTTP mode.
func Load(path string) (*Config, error) {
	explicit := path != ""

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "config.yaml"
		} else {
			explicit = true
		}
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		substituted, serr := substituteEnvVars(string(data))
		if serr != nil {
			return nil, fmt.Errorf("substituting env vars: %w", serr)
		}

		if uerr := yaml.Unmarshal([]byte(substituted), &cfg); uerr != nil {
			return nil, fmt.Errorf("parsing config: %w", uerr)
		}
	case os.IsNotExist(err) && !explicit:
		// Fall through to environment variables and defaults.
	default:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
// Lines that are comments (starting with #) are skipped to allow commented optional
// sections in config files without requiring their environment variables to be set.
func substituteEnvVars(content string) (string, error) {
	var missingVars []string
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			varName := envVarPattern.FindStringSubmatch(match)[1]
			value := os.Getenv(varName)
			if value == "" {
				missingVars = append(missingVars, varName)
				return match
			}

			return value
		})
	}

	if len(missingVars) > 0 {
		return "", fmt.Errorf("missing environment variables: %v", missingVars)
	}

	return strings.Join(lines, "\n"), nil
}

// applyEnvOverrides fills BookStack connection settings from the environment
// when the config file left them empty.
func applyEnvOverrides(cfg *Config) {
	if cfg.BookStack.URL == "" {
		cfg.BookStack.URL = os.Getenv("BOOKSTACK_URL")
	}

	if cfg.BookStack.TokenID == "" {
		cfg.BookStack.TokenID = os.Getenv("BOOKSTACK_TOKEN_ID")
	}

	if cfg.BookStack.TokenSecret == "" {
		cfg.BookStack.TokenSecret = os.Getenv("BOOKSTACK_TOKEN_SECRET")
	}
}

// applyDefaults sets default values for configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}

	if cfg.Server.Transport == "" {
		cfg.Server.Transport = "stdio"
	}

	if cfg.BookStack.Timeout == 0 {
		cfg.BookStack.Timeout = 30 * time.Second
	}

	if cfg.Observability.MetricsPort == 0 {
		cfg.Observability.MetricsPort = 9090
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case "stdio":
		// Stdio serves a single upstream for the process lifetime, so the
		// connection settings must be complete up front.
		if c.BookStack.URL == "" {
			return errors.New("bookstack.url is required (or set BOOKSTACK_URL)")
		}

		if c.BookStack.TokenID == "" || c.BookStack.TokenSecret == "" {
			return errors.New("bookstack.token_id and bookstack.token_secret are required")
		}
	case "http":
		// HTTP mode may receive connection settings per request via headers.
	default:
		return fmt.Errorf("unknown transport: %s", c.Server.Transport)
	}

	return nil
}
