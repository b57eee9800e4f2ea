// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_VERSION":        "1.2.3",
		"APP_LOG_LEVEL":      "info",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"STORAGE_DB_DRIVER":         "sqlite",
		"STORAGE_DB_DATABASE_URI":   "file:labels.db",
		"STORAGE_DB_MAX_OPEN_CONNS": "7",
		"STORAGE_DB_MAX_IDLE_CONNS": "2",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:labels.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 7, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 2, cfg.Storage.DB.MaxIdleConns)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "only-key",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only-key", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.TokenDuration)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_DURATION": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_MAX_OPEN_CONNS": "many",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

// setEnvVars clears every known variable and then sets vars for the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_TOKEN_DURATION",
		"APP_VERSION",
		"APP_LOG_LEVEL",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",
		"STORAGE_DB_MAX_OPEN_CONNS",
		"STORAGE_DB_MAX_IDLE_CONNS",

		"CLIENT_SERVER_URL",
		"CLIENT_TOKEN",
		"CLIENT_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		// t.Setenv restores the original value on cleanup; an empty value
		// is treated as unset by the parser.
		t.Setenv(k, "")
	}
}
