package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "CATALOG_URL", "STOREFRONT_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8082", cfg.Server.Addr)
	assert.Equal(t, SourceFile, cfg.Catalog.Source)
	assert.Equal(t, 3*time.Second, cfg.GetAutoplayInterval())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	body := `
catalog:
  source: postgres
shop:
  autoplay_interval: 500ms
  hero_images: [hero-1.jpg, hero-2.jpg]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, 500*time.Millisecond, cfg.GetAutoplayInterval())
	assert.Equal(t, []string{"hero-1.jpg", "hero-2.jpg"}, cfg.Shop.HeroImages)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched sections keep their defaults
	assert.Equal(t, "vi", cfg.Shop.Locale)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shop: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("PORT and DATABASE_URL", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9000")
		t.Setenv("DATABASE_URL", "postgres://x")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.Equal(t, "postgres://x", cfg.Database.DSN)
	})

	t.Run("CATALOG_URL switches source to http", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CATALOG_URL", "http://catalog:8082")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, SourceHTTP, cfg.Catalog.Source)
		assert.Equal(t, "http://catalog:8082", cfg.Catalog.URL)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.Source = "ftp"
	assert.Error(t, cfg.Validate())

	cfg.Catalog.Source = SourceHTTP
	cfg.Catalog.URL = ""
	assert.Error(t, cfg.Validate())
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shop.AutoplayInterval = "soon"
	cfg.Catalog.Timeout = "-1s"
	assert.Equal(t, 3*time.Second, cfg.GetAutoplayInterval())
	assert.Equal(t, 5*time.Second, cfg.GetCatalogTimeout())
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "storefront.yaml")
	cfg := DefaultConfig()
	cfg.Shop.Title = "Deramirum"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Deramirum", loaded.Shop.Title)
}
