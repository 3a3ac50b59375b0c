package config_test

import (
	"testing"

	"confdiff/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "cfg", cfg.Tree.Extension)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TREE_EXTENSION", "ini")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "ini", cfg.Tree.Extension)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}
