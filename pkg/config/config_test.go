package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES", "LOG_LEVEL", "MIGRATE_ON_START"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "dev-secret-change", cfg.JWTSecret)
	assert.Equal(t, "users-service", cfg.JWTIssuer)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.MigrateOnStart)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/users?sslmode=disable")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ISSUER", "acme")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MIGRATE_ON_START", "false")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/users?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "acme", cfg.JWTIssuer)
	assert.Equal(t, 15, cfg.JWTTTLMinutes)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.MigrateOnStart)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "soon")
	t.Setenv("MIGRATE_ON_START", "maybe")

	cfg := Load()

	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.True(t, cfg.MigrateOnStart)
}
