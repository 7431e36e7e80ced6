package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 500*time.Millisecond, cfg.SAP.CreateDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SAP.GetDelay)
	assert.Equal(t, "BRL", cfg.Order.DefaultCurrency)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("STORAGE_DRIVER", "mysql")
	t.Setenv("ORDER_DEFAULT_CURRENCY", "EUR")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, StorageDriverMySQL, cfg.Storage.Driver)
	assert.Equal(t, "EUR", cfg.Order.DefaultCurrency)
}
