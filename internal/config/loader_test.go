package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/errors"
	"github.com/olusolaa/teardown-verifier/internal/log"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), NewViper())

	require.NoError(t, err)
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Settings, cfg.Settings)
	assert.Equal(t, defaults.Capture, cfg.Capture)
	assert.Equal(t, defaults.Compare, cfg.Compare)
	assert.Equal(t, defaults.Platform.AWS.MaxAttempts, cfg.Platform.AWS.MaxAttempts)
	assert.Empty(t, cfg.Platform.AWS.TagFilters)
	assert.Equal(t, domain.FailFast, cfg.Capture.FailurePolicy)
	assert.Equal(t, domain.DiffModeFull, cfg.Compare.Mode)
	assert.NotContains(t, cfg.Capture.Categories, domain.CategoryIAMRole.Key)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
settings:
  log_level: DEBUG
  reporter: json
capture:
  categories: [vpc, iam_role]
  failure_policy: best-effort
  concurrency: 1
  provider_timeout: 90s
compare:
  mode: identity
platform:
  aws:
    region: eu-central-1
    tag_filters:
      env: test
`)
	v := NewViper()
	require.NoError(t, ReadConfigFile(v, path, ""))

	cfg, err := Load(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, cfg.Settings.LogLevel)
	assert.Equal(t, "json", cfg.Settings.ReporterType)
	assert.Equal(t, []string{"vpc", "iam_role"}, cfg.Capture.Categories)
	assert.Equal(t, domain.BestEffort, cfg.Capture.FailurePolicy)
	assert.Equal(t, 1, cfg.Capture.Concurrency)
	assert.Equal(t, 90*time.Second, cfg.Capture.ProviderTimeout)
	assert.Equal(t, domain.DiffModeIdentity, cfg.Compare.Mode)
	assert.Equal(t, "eu-central-1", cfg.Platform.AWS.Region)
	assert.Equal(t, map[string]string{"env": "test"}, cfg.Platform.AWS.TagFilters)
	assert.Equal(t, 5, cfg.Platform.AWS.MaxAttempts)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TEARDOWN_CAPTURE_CATEGORIES", "vpc, subnet")
	t.Setenv("TEARDOWN_CAPTURE_FAILURE_POLICY", "best-effort")
	t.Setenv("TEARDOWN_PLATFORM_AWS_TAG_FILTERS", "env=ci,team=platform")
	t.Setenv("TEARDOWN_CAPTURE_PROVIDER_TIMEOUT", "2m")

	cfg, err := Load(context.Background(), NewViper())

	require.NoError(t, err)
	assert.Equal(t, []string{"vpc", "subnet"}, cfg.Capture.Categories)
	assert.Equal(t, domain.BestEffort, cfg.Capture.FailurePolicy)
	assert.Equal(t, map[string]string{"env": "ci", "team": "platform"}, cfg.Platform.AWS.TagFilters)
	assert.Equal(t, 2*time.Minute, cfg.Capture.ProviderTimeout)
}

func TestLoad_ExplicitSetWins(t *testing.T) {
	t.Setenv("TEARDOWN_COMPARE_MODE", "full")
	v := NewViper()
	v.Set(KeyCompareMode, "identity")

	cfg, err := Load(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, domain.DiffModeIdentity, cfg.Compare.Mode)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"unknown policy", KeyFailurePolicy, "sometimes"},
		{"zero concurrency", KeyConcurrency, 0},
		{"no categories", KeyCategories, []string{}},
		{"bad mode", KeyCompareMode, "fuzzy"},
		{"bad reporter", KeyReporter, "xml"},
		{"bad log level", KeyLogLevel, "verbose"},
		{"negative timeout", KeyProviderTimeout, "-1s"},
		{"too many attempts", KeyMaxAttempts, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViper()
			v.Set(tt.key, tt.value)

			_, err := Load(context.Background(), v)

			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
			_, suggestion, userFacing := errors.GetUserFacingMessage(err)
			assert.True(t, userFacing)
			assert.NotEmpty(t, suggestion)
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	v := NewViper()
	v.Set(KeyConcurrency, "lots")

	_, err := Load(context.Background(), v)

	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigParseError, errors.GetCode(err))
}

func TestReadConfigFile(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		err := ReadConfigFile(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"), "")
		assert.Equal(t, errors.CodeConfigReadError, errors.GetCode(err))
	})

	t.Run("no file on search path", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		assert.NoError(t, ReadConfigFile(NewViper(), "", dir))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "capture: [unterminated\n")
		err := ReadConfigFile(NewViper(), path, "")
		assert.Equal(t, errors.CodeConfigReadError, errors.GetCode(err))
	})
}
