package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzhacks/portal/pkg/config"
)

type serverConfig struct {
	Addr  string `env:"PORTAL_TEST_ADDR" envDefault:":8080"`
	Debug bool   `env:"PORTAL_TEST_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"PORTAL_TEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and overrides", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("PORTAL_TEST_DEBUG", "true")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.True(t, cfg.Debug)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("PORTAL_TEST_ADDR", ":9000")

		var first serverConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("PORTAL_TEST_ADDR", ":9001")
		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, ":9000", second.Addr)

		var reloaded serverConfig
		require.NoError(t, config.ForceReload(&reloaded))
		assert.Equal(t, ":9001", reloaded.Addr)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("PORTAL_TEST_SECRET", "s3cret")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "s3cret", cfg.Secret)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *serverConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("PORTAL_TEST_SECRET")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORTAL_TEST_ADDR=:7000\n"), 0o600))
	t.Setenv("PORTAL_TEST_ADDR", ":1")

	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, ":7000", os.Getenv("PORTAL_TEST_ADDR"))

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.NoError(t, config.LoadEnv())
}

type limitsDoc struct {
	Max    int      `yaml:"max"`
	Min    int      `yaml:"min"`
	Values []string `yaml:"values"`
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("overlays defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max: 10\n"), 0o600))

		doc := limitsDoc{Max: 1, Min: 2, Values: []string{"a"}}
		require.NoError(t, config.LoadYAML(path, &doc))
		assert.Equal(t, 10, doc.Max)
		assert.Equal(t, 2, doc.Min)
		assert.Equal(t, []string{"a"}, doc.Values)
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maximum: 10\n"), 0o600))

		var doc limitsDoc
		assert.ErrorIs(t, config.LoadYAML(path, &doc), config.ErrReadingFile)
	})

	t.Run("missing file", func(t *testing.T) {
		var doc limitsDoc
		assert.ErrorIs(t, config.LoadYAML(filepath.Join(dir, "nope.yaml"), &doc), config.ErrReadingFile)
	})
}
