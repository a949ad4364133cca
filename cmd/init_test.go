package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// runInitIn executes `unosolo init` with dir as the working directory.
func runInitIn(t *testing.T, dir string) error {
	t.Helper()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	return cmd.Execute()
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInitIn(t, dir))

	contents, err := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)

	var cfg struct {
		Version    int      `yaml:"version"`
		Paths      []string `yaml:"paths"`
		TopInclude *string  `yaml:"topinclude"`
		Extensions []string `yaml:"extensions"`
		Catalog    struct {
			Parallel int `yaml:"parallel"`
		} `yaml:"catalog"`
		Log struct {
			Filename   string `yaml:"filename"`
			Level      int    `yaml:"level"`
			Verbose    bool   `yaml:"verbose"`
			MaxSize    int    `yaml:"max_size"`
			MaxBackups int    `yaml:"max_backups"`
			MaxAge     int    `yaml:"max_age"`
			Compress   bool   `yaml:"compress"`
		} `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &cfg))

	assert.Equal(t, currentConfigVersion, cfg.Version)
	assert.Equal(t, []string{"."}, cfg.Paths)
	require.NotNil(t, cfg.TopInclude, "topinclude key is written so it can be filled in")
	assert.Empty(t, *cfg.TopInclude)
	assert.Equal(t, defaultExtensions, cfg.Extensions)
	assert.Equal(t, defaultParallel, cfg.Catalog.Parallel)

	assert.Equal(t, defaultLogFilename, cfg.Log.Filename)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, defaultLogVerbose, cfg.Log.Verbose)
	assert.Equal(t, defaultLogMaxSize, cfg.Log.MaxSize)
	assert.Equal(t, defaultLogMaxBackups, cfg.Log.MaxBackups)
	assert.Equal(t, defaultLogMaxAge, cfg.Log.MaxAge)
	assert.Equal(t, defaultLogCompress, cfg.Log.Compress)
}

func TestInitCmd_KeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(target, []byte("topinclude: lib/top.hpp\n"), 0o644))

	err := runInitIn(t, dir)
	require.Error(t, err)

	contents, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "topinclude: lib/top.hpp\n", string(contents))
}
