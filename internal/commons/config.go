package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"sapbridge/internal/config"
)

// fileConfig mirrors config.Config with durations as strings, which is how
// they are written in the yaml file ("5m", "500ms").
type fileConfig struct {
	Server  config.ServerConfig
	Storage config.StorageConfig

	Database struct {
		Host            string
		Port            int
		User            string
		Password        string
		Name            string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime string
	}

	JWT config.JWTConfig

	SAP struct {
		CreateDelay string
		GetDelay    string
	}

	Order config.OrderConfig
	Log   config.LogConfig
}

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(fc.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("parsing database.connmaxlifetime: %w", err)
	}

	sapCreateDelay, err := time.ParseDuration(fc.SAP.CreateDelay)
	if err != nil {
		return nil, fmt.Errorf("parsing sap.createdelay: %w", err)
	}

	sapGetDelay, err := time.ParseDuration(fc.SAP.GetDelay)
	if err != nil {
		return nil, fmt.Errorf("parsing sap.getdelay: %w", err)
	}

	cfg := &config.Config{
		Server:  fc.Server,
		Storage: fc.Storage,
		Database: config.DatabaseConfig{
			Host:            fc.Database.Host,
			Port:            fc.Database.Port,
			User:            fc.Database.User,
			Password:        fc.Database.Password,
			Name:            fc.Database.Name,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		JWT: fc.JWT,
		SAP: config.SAPConfig{
			CreateDelay: sapCreateDelay,
			GetDelay:    sapGetDelay,
		},
		Order: fc.Order,
		Log:   fc.Log,
	}

	return cfg, nil
}
