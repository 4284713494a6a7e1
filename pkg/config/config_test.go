package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 20, cfg.Alerts.DefaultThreshold)
	assert.Equal(t, 12, cfg.Alerts.StockoutDays)
	assert.Equal(t, config.SupplierPolicyFirst, cfg.Alerts.SupplierPolicy)
	assert.Equal(t, config.DeletePolicyRestrict, cfg.Catalog.DeletePolicy)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "*", cfg.HTTP.CORSOrigins)
}

func TestFromViper_SobrescribeDesdeClaves(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "MEMORY")
	v.Set("ALERTS_DEFAULT_THRESHOLD", "5")
	v.Set("ALERTS_SUPPLIER_POLICY", "none")
	v.Set("CATALOG_DELETE_POLICY", "cascade")
	v.Set("HTTP_PORT", 9090)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 5, cfg.Alerts.DefaultThreshold)
	assert.Equal(t, config.SupplierPolicyNone, cfg.Alerts.SupplierPolicy)
	assert.Equal(t, config.DeletePolicyCascade, cfg.Catalog.DeletePolicy)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestFromViper_RechazaPoliticasDesconocidas(t *testing.T) {
	cases := map[string]string{
		"STORE_DRIVER":           "mysql",
		"ALERTS_SUPPLIER_POLICY": "cheapest",
		"CATALOG_DELETE_POLICY":  "orphan",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			v.Set(key, val)
			_, err := config.FromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/stock?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
