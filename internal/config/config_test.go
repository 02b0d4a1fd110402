// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 5*time.Second, cfg.Delivery.AdvanceInterval)
	assert.Equal(t, 12, cfg.Delivery.InitialETA)
	assert.Equal(t, "917348050803", cfg.Messaging.WhatsAppNumber)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ORDER_ADVANCE_INTERVAL", "250ms")
	t.Setenv("ORDER_INITIAL_ETA_MINUTES", "20")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Delivery.AdvanceInterval)
	assert.Equal(t, 20, cfg.Delivery.InitialETA)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "APP_PORT"},
		{name: "missing redis host", mutate: func(c *Config) { c.Redis.Host = "" }, wantErr: "REDIS_HOST"},
		{name: "non-positive advance interval", mutate: func(c *Config) { c.Delivery.AdvanceInterval = 0 }, wantErr: "ORDER_ADVANCE_INTERVAL"},
		{name: "missing whatsapp number", mutate: func(c *Config) { c.Messaging.WhatsAppNumber = "" }, wantErr: "WHATSAPP_NUMBER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
