package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("STORAGE_DRIVER", StorageMemory)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}

func TestLoad_EnterosMalformadosCaenAlDefault(t *testing.T) {
	// un valor no numérico jamás debe convertirse en puerto 0 ni en
	// expiración 0: se conserva el valor por defecto
	t.Setenv("HTTP_PORT", "ochenta")
	t.Setenv("JWT_EXPIRATION_MINUTES", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestLoad_DriverDesconocidoFalla(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)
}
