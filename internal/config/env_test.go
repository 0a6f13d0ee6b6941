// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DEBUG":           "true",
		"APP_REQUEST_TIMEOUT": "30s",

		"ENDPOINTS_LOGIN":             "http://localhost:5255/login",
		"ENDPOINTS_CATEGORIES_ALL":    "http://localhost:5255/categories/all",
		"ENDPOINTS_CATEGORIES_CREATE": "http://localhost:5255/categories/create",
		"ENDPOINTS_CATEGORIES_DELETE": "http://localhost:5255/categories/delete",
		"ENDPOINTS_IMAGES_ALL":        "http://localhost:5255/images/all",
		"ENDPOINTS_IMAGES_ADD_LINK":   "http://localhost:5255/images/addlink",
		"ENDPOINTS_IMAGES_ADD_BLOB":   "http://localhost:5255/images/addblob",
		"ENDPOINTS_IMAGES_DELETE":     "http://localhost:5255/images/delete",
		"ENDPOINTS_TAGS_ALL":          "http://localhost:5255/tags/all",
		"ENDPOINTS_TAGS_CREATE":       "http://localhost:5255/tags/create",
		"ENDPOINTS_TAGS_DELETE":       "http://localhost:5255/tags/delete",

		"OAUTH_GOOGLE_CLIENT_ID":     "client-id",
		"OAUTH_GOOGLE_CLIENT_SECRET": "client-secret",
		"OAUTH_REDIRECT_URL":         "http://localhost:8910/oauth/callback",

		"STORAGE_DB_DSN": "/tmp/gifcamp.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, "http://localhost:5255/login", cfg.Endpoints.RecordLogin)
	assert.Equal(t, "http://localhost:5255/categories/all", cfg.Endpoints.CategoriesAll)
	assert.Equal(t, "http://localhost:5255/images/addblob", cfg.Endpoints.ImagesAddBlob)
	assert.Equal(t, "http://localhost:5255/tags/delete", cfg.Endpoints.TagsDelete)
	assert.Equal(t, "client-id", cfg.OAuth.GoogleClientID)
	assert.Equal(t, "client-secret", cfg.OAuth.GoogleClientSecret)
	assert.Equal(t, "http://localhost:8910/oauth/callback", cfg.OAuth.RedirectURL)
	assert.Equal(t, "/tmp/gifcamp.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnvironmentIsZeroConfig(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.False(t, cfg.App.Debug)
	assert.Empty(t, cfg.Endpoints.RecordLogin)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
