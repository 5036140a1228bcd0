package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovplanner/ovplanner/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ovplanner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	appConfig, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), appConfig)
	assert.Equal(t, 80, appConfig.Matcher.Threshold)
	assert.Equal(t, 2, appConfig.Planner.MaxTransfers)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
matcher:
  threshold: 70
planner:
  maxTransfers: 3
`)

	appConfig, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 70, appConfig.Matcher.Threshold)
	assert.Equal(t, 3, appConfig.Planner.MaxTransfers)
	// Untouched sections keep their defaults
	assert.Equal(t, config.Defaults().Dataset, appConfig.Dataset)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
matcher:
  threshold: 150
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := writeConfig(t, "matcher: [not a mapping")

	_, err := config.Load(path)
	assert.Error(t, err)
}
