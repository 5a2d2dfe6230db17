package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ORGFLOW_MODE", "production")
	t.Setenv("ORGFLOW_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/orgflow")
	t.Setenv("ORGFLOW_JWT_SECRET", "s3cret")
	t.Setenv("ORGFLOW_TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://localhost/orgflow", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}
