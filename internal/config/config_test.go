package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseConfig() Config {
	return Config{
		JWTSecret:            "a-test-secret-that-is-long-enough-123",
		Port:                 "8470",
		DBHost:               "localhost",
		DBPort:               "5432",
		DBUser:               "user",
		DBPassword:           "s3cure-db-password",
		DBName:               "ideaboard",
		DBSSLMode:            "require",
		RedisURL:             "localhost:6379",
		Env:                  "development",
		ResetTokenTTLSeconds: 1800,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid development", func(c *Config) {}, false},
		{"valid production", func(c *Config) { c.Env = "production" }, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"non-positive reset ttl", func(c *Config) { c.ResetTokenTTLSeconds = 0 }, true},
		{"default secret in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"short secret in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"weak db password in production", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"ssl disabled in production", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "disable"
		}, true},
		{"short secret tolerated in development", func(c *Config) { c.JWTSecret = "short" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	cfg := baseConfig()
	assert.False(t, cfg.IsProduction())

	cfg.Env = "production"
	assert.True(t, cfg.IsProduction())

	cfg.Env = "prod"
	assert.True(t, cfg.IsProduction())

	cfg.Env = "test"
	assert.False(t, cfg.IsProduction())
}
