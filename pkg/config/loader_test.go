package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trvalidator/pkg/config"
)

type testConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Strict bool   `env:"STRICT" envDefault:"false"`
	Limit  int    `env:"LIMIT" envDefault:"10"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, testConfig{Level: "info", Strict: false, Limit: 10}, cfg)
	})

	t.Run("prefixed process environment", func(t *testing.T) {
		t.Setenv("TRTEST_LEVEL", "debug")
		t.Setenv("TRTEST_STRICT", "true")

		var cfg testConfig
		err := config.Load(&cfg, config.WithPrefix("TRTEST_"))
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Level)
		assert.True(t, cfg.Strict)
		assert.Equal(t, 10, cfg.Limit)
	})

	t.Run("parse error", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"LIMIT": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads named file without overriding existing vars", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TRENV_FROM_FILE=file\nTRENV_EXISTING=file\n"), 0o600))

		t.Setenv("TRENV_EXISTING", "process")
		t.Setenv("TRENV_FROM_FILE", "")
		require.NoError(t, os.Unsetenv("TRENV_FROM_FILE"))

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "file", os.Getenv("TRENV_FROM_FILE"))
		assert.Equal(t, "process", os.Getenv("TRENV_EXISTING"))
	})

	t.Run("missing named file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnv)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		assert.NoError(t, config.LoadEnv())
	})
}
