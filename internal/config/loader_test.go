package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FitoDomik/pdf-to-docx/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan2docx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWithFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := writeConfigFile(t, `
log_level: debug
engine:
  name: tesseract
  languages: [rus, eng]
server:
  port: 9090
`)

	cfg, err := NewLoader().LoadWithFile(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "tesseract", cfg.Engine.Name)
	assert.Equal(t, []string{"rus", "eng"}, cfg.Engine.Languages)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Unset fields fall back to defaults
	assert.Equal(t, 50, cfg.Server.MaxUploadMB)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadWithFile_MissingFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := NewLoader().LoadWithFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadWithFile_InvalidValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := writeConfigFile(t, "log_level: shouting\n")

	_, err := NewLoader().LoadWithFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SCAN2DOCX_LOG_LEVEL", "warn")
	t.Setenv("SCAN2DOCX_SERVER_PORT", "7070")

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadWithFile_TestdataFixture(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(testutil.GetTestDataDir(t), "config", "scan2docx.yaml")
	require.True(t, testutil.FileExists(path))

	cfg, err := NewLoader().LoadWithFile(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"eng", "rus"}, cfg.Engine.Languages)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "2-4", cfg.Output.PageRange)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Server.MaxUploadMB)
	assert.Equal(t, 60, cfg.Server.TimeoutSec)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Run from an empty directory so no stray config file is picked up
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Engine.Name, cfg.Engine.Name)
	assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
}
