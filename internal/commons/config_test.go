package commons

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sapbridge/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
storage:
  driver: mysql
database:
  host: db.internal
  port: 3306
  user: sapbridge
  password: secret
  name: sapbridge
  maxopenconns: 10
  maxidleconns: 2
  connmaxlifetime: 5m
jwt:
  secret: s3cret
  issuer: sapbridge
  audience: sapbridge-api
sap:
  createdelay: 500ms
  getdelay: 300ms
order:
  defaultcurrency: USD
log:
  level: debug
`)

	cfg, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.StorageDriverMySQL, cfg.Storage.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 500*time.Millisecond, cfg.SAP.CreateDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SAP.GetDelay)
	assert.Equal(t, "USD", cfg.Order.DefaultCurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	path := writeConfigFile(t, `
database:
  connmaxlifetime: soon
sap:
  createdelay: 500ms
  getdelay: 300ms
`)

	_, err := LoadConfig(path)

	assert.Error(t, err)
}
