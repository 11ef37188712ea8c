package config

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"CARDCHECK_PORT", "CARDCHECK_MODE", "CARDCHECK_DATA_DIR", "CARDCHECK_RUN", "CARDCHECK_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{Port: 8080, Mode: "dev", Run: "serve", LogLevel: "info"}, cfg)
	assert.Equal(t, logger.InfoLevel, cfg.Level())
}

func TestParseEnvAndFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARDCHECK_PORT", "9090")
	t.Setenv("CARDCHECK_MODE", "release")
	t.Setenv("CARDCHECK_LOG_LEVEL", "debug")

	cfg, err := Parse([]string{"-r", "selftest", "-d", "/tmp/brands"})
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, "selftest", cfg.Run)
	assert.Equal(t, "/tmp/brands", cfg.DataDir)
	assert.Equal(t, logger.DebugLevel, cfg.Level())

	cfg, err = Parse([]string{"-p", "7070"})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestParseInvalid(t *testing.T) {
	clearEnv(t)
	for _, args := range [][]string{
		{"-p", "0"},
		{"-p", "70000"},
		{"-m", "staging"},
		{"-r", "menu"},
		{"-l", "loud"},
	} {
		_, err := Parse(args)
		assert.Error(t, err, args)
	}

	t.Setenv("CARDCHECK_PORT", "eighty")
	_, err := Parse(nil)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("CARDCHECK_RUN")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CARDCHECK_RUN=prompt\nCARDCHECK_MODE=test\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("CARDCHECK_RUN") })

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "prompt", cfg.Run)
	// CARDCHECK_MODE is already set (empty) in the environment and wins
	assert.Equal(t, "dev", cfg.Mode)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "serve", cfg.Run)
}

func TestLoadDotEnvMalformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CARDCHECK-RUN=prompt\n"), 0644))

	_, err := Load(nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
