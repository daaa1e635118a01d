package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, CatalogMemory, cfg.Catalog.Source)
	assert.Empty(t, cfg.Database.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", CatalogPostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shipcalc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, CatalogPostgres, cfg.Catalog.Source)
	assert.Equal(t, "postgres://localhost:5432/shipcalc", cfg.Database.URL)
}

func TestLoad_PostgresSourceRequiresURL(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", CatalogPostgres)

	_, err := Load()
	require.Error(t, err)
}
