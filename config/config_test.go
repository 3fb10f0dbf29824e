package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("NUTRIPLAN_STATE_DIR", stateDir)
	t.Setenv("NUTRIPLAN_API_URL", "")
	t.Setenv("NUTRIPLAN_HTTP_TIMEOUT", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, stateDir, cfg.StateDir)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("NUTRIPLAN_STATE_DIR", t.TempDir())
	t.Setenv("NUTRIPLAN_API_URL", "https://api.nutriplan.example")
	t.Setenv("NUTRIPLAN_HTTP_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "https://api.nutriplan.example", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigFile(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("NUTRIPLAN_STATE_DIR", stateDir)
	t.Setenv("NUTRIPLAN_API_URL", "")
	t.Setenv("NUTRIPLAN_HTTP_TIMEOUT", "")

	yaml := "api_base_url: https://file.nutriplan.example\nhttp_timeout: 10s\n"
	if err := os.WriteFile(filepath.Join(stateDir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "https://file.nutriplan.example", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigEnvWinsOverFile(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("NUTRIPLAN_STATE_DIR", stateDir)
	t.Setenv("NUTRIPLAN_API_URL", "https://env.nutriplan.example")

	yaml := "api_base_url: https://file.nutriplan.example\n"
	if err := os.WriteFile(filepath.Join(stateDir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "https://env.nutriplan.example", cfg.APIBaseURL)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("NUTRIPLAN_STATE_DIR", stateDir)

	if err := os.WriteFile(filepath.Join(stateDir, "config.yaml"), []byte("api_base_url: [broken"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{
		APIBaseURL:  "ftp://wrong.example",
		StateDir:    "/tmp/state",
		HTTPTimeout: 30 * time.Second,
	}
	err := ValidateConfig(cfg)
	if err == nil {
		t.Errorf("expected validation error for non-http base URL")
	}

	cfg.APIBaseURL = "https://api.nutriplan.example"
	assert.NoError(t, ValidateConfig(cfg))

	cfg.HTTPTimeout = 0
	assert.Error(t, ValidateConfig(cfg))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("NUTRIPLAN_ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("NUTRIPLAN_ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("NUTRIPLAN_ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
