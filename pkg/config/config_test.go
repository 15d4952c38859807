package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.Costing.LowStockThreshold.Equal(decimal.NewFromInt(10)))
	assert.True(t, cfg.License.Required)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.AI.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HPP_DEFAULT_PORSI_BULANAN", "1500")
	t.Setenv("LICENSE_REQUIRED", "false")
	t.Setenv("SUGGEST_CACHE_TTL_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.Costing.DefaultPorsiBulanan.Equal(decimal.NewFromInt(1500)))
	assert.False(t, cfg.License.Required)
	assert.Equal(t, 30*time.Second, cfg.Redis.SuggestTTL)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadDecimal(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("TARGET_DAILY_PROFIT", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestDSN_EscapesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "fortis", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/fortis?sslmode=require", c.DSN())
}
