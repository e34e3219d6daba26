package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/olusolaa/teardown-verifier/internal/errors"
	"github.com/olusolaa/teardown-verifier/internal/log"
)

func TestNewLogger_JSONCarriesErrorCode(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewLogger(log.Config{Level: log.LevelDebug, Format: log.FormatJSON}, &buf)
	require.NoError(t, err)

	appErr := apperrors.New(apperrors.CodeSnapshotCorrupt, "bad snapshot")
	logger.WithFields(map[string]any{"location": "before.json"}).Errorf(context.Background(), appErr, "load failed: %s", "before.json")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "load failed: before.json", entry["msg"])
	assert.Equal(t, "SNAPSHOT_CORRUPT", entry["error_code"])
	assert.Equal(t, "before.json", entry["location"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewLogger(log.Config{Level: log.LevelWarn, Format: log.FormatText}, &buf)
	require.NoError(t, err)

	logger.Infof(context.Background(), "hidden")
	logger.Warnf(context.Background(), "shown %d", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 1")
}

func TestNewLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewLogger(log.DefaultConfig(), &buf)
	require.NoError(t, err)

	//nolint:staticcheck // nil context is tolerated for early bootstrap logging
	logger.Infof(nil, "bootstrapping")
	assert.Contains(t, buf.String(), "bootstrapping")
}

func TestNewLogger_InvalidConfig(t *testing.T) {
	_, err := log.NewLogger(log.Config{Level: "loud"}, &bytes.Buffer{})
	assert.Equal(t, apperrors.CodeConfigValidation, apperrors.GetCode(err))

	_, err = log.NewLogger(log.Config{Format: "xml"}, &bytes.Buffer{})
	assert.Equal(t, apperrors.CodeConfigValidation, apperrors.GetCode(err))

	_, err = log.NewLogger(log.DefaultConfig(), nil)
	assert.Error(t, err)
}
