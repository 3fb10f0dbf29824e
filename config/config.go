package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the client
type Config struct {
	// Remote API configuration
	APIBaseURL string

	// Local state configuration
	StateDir string

	// Transport configuration
	HTTPTimeout time.Duration
}

// fileConfig is the yaml shape of config.yaml; durations are strings
// ("30s", "2m") parsed with time.ParseDuration
type fileConfig struct {
	APIBaseURL  string `yaml:"api_base_url"`
	StateDir    string `yaml:"state_dir"`
	HTTPTimeout string `yaml:"http_timeout"`
}

const (
	defaultAPIBaseURL  = "http://localhost:8000"
	defaultHTTPTimeout = 30 * time.Second
)

// LoadConfig creates a Config from, in increasing precedence: built-in defaults,
// the config file under the state directory, a .env file, and environment variables
func LoadConfig() (*Config, error) {
	// .env is a development convenience; production deployments configure
	// through real environment variables or the config file
	if !IsProduction() {
		_ = godotenv.Load()
	}

	cfg := &Config{
		APIBaseURL:  defaultAPIBaseURL,
		HTTPTimeout: defaultHTTPTimeout,
	}

	stateDir, err := resolveStateDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state directory: %w", err)
	}
	cfg.StateDir = stateDir

	if err := loadConfigFile(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	loadEnvConfig(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// resolveStateDir returns the client state directory, honoring NUTRIPLAN_STATE_DIR
func resolveStateDir() (string, error) {
	if dir := os.Getenv("NUTRIPLAN_STATE_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".nutriplan"), nil
}

// loadConfigFile merges config.yaml from the state directory, if present
func loadConfigFile(cfg *Config) error {
	path := filepath.Join(cfg.StateDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("invalid yaml in %s: %w", path, err)
	}

	if fileCfg.APIBaseURL != "" {
		cfg.APIBaseURL = fileCfg.APIBaseURL
	}
	if fileCfg.StateDir != "" {
		cfg.StateDir = fileCfg.StateDir
	}
	if fileCfg.HTTPTimeout != "" {
		d, err := time.ParseDuration(fileCfg.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid http_timeout in %s: %w", path, err)
		}
		cfg.HTTPTimeout = d
	}

	return nil
}

// loadEnvConfig applies environment variable overrides
func loadEnvConfig(cfg *Config) {
	if url := os.Getenv("NUTRIPLAN_API_URL"); url != "" {
		cfg.APIBaseURL = url
	}
	if timeout := os.Getenv("NUTRIPLAN_HTTP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}
}

// StatePath returns a path inside the state directory
func (c *Config) StatePath(name string) string {
	return filepath.Join(c.StateDir, name)
}

// EnsureStateDir creates the state directory if it does not exist
func (c *Config) EnsureStateDir() error {
	return os.MkdirAll(c.StateDir, 0700)
}

// ValidateConfig checks that the configuration is usable
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.APIBaseURL == "" {
		errors = append(errors, "api base URL is required")
	} else if !strings.HasPrefix(cfg.APIBaseURL, "http://") && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		errors = append(errors, fmt.Sprintf("api base URL %q must start with http:// or https://", cfg.APIBaseURL))
	}
	if cfg.StateDir == "" {
		errors = append(errors, "state directory is required")
	}
	if cfg.HTTPTimeout <= 0 {
		errors = append(errors, "http timeout must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
