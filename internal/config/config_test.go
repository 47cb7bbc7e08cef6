package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Workers)
	assert.Equal(t, 2*time.Second, cfg.DefaultTimeout)
	assert.Equal(t, 65536, cfg.MaxHosts)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero workers":     func(c *Config) { c.Workers = 0 },
		"negative timeout": func(c *Config) { c.DefaultTimeout = -time.Second },
		"zero max hosts":   func(c *Config) { c.MaxHosts = 0 },
		"bad log format":   func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
