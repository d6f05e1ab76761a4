package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(500), cfg.Shop.DeliveryFee)
	assert.Equal(t, "db", cfg.Shop.CartBackend)
	assert.True(t, cfg.Shop.StrictStatusFlow)
	assert.Equal(t, "8080", cfg.App.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DELIVERY_FEE", "750")
	t.Setenv("CART_BACKEND", "memory")
	t.Setenv("ORDER_STRICT_STATUS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(750), cfg.Shop.DeliveryFee)
	assert.Equal(t, "memory", cfg.Shop.CartBackend)
	assert.False(t, cfg.Shop.StrictStatusFlow)
}

func TestLoadRejectsUnknownCartBackend(t *testing.T) {
	t.Setenv("CART_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "secret", DBName: "dentalshop", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=dentalshop sslmode=disable",
		db.GetDSN())
}
