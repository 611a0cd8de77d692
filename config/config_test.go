package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "retail_metrics", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "retail-metrics-engine", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.InDelta(t, 0.30, cfg.Engine.ProfitMargin, 1e-9)
	assert.Equal(t, "data", cfg.Dataset.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "retail_metrics_test")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENGINE_PROFIT_MARGIN", "0.45")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "retail_metrics_test", cfg.Database.DBName)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.InDelta(t, 0.45, cfg.Engine.ProfitMargin, 1e-9)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadIgnoresUnparsableFloat(t *testing.T) {
	t.Setenv("ENGINE_PROFIT_MARGIN", "a third")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.30, cfg.Engine.ProfitMargin, 1e-9)
}

func TestGetDSN(t *testing.T) {
	c := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "metrics",
		Password: "secret",
		DBName:   "retail_metrics",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=metrics password=secret dbname=retail_metrics sslmode=require",
		c.GetDSN(),
	)
}
