package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"debug":           true,
			"request_timeout": "45s",
		},
		"endpoints": map[string]any{
			"login":      "http://localhost:5255/login",
			"images_all": "http://localhost:5255/images/all",
		},
		"oauth": map[string]any{
			"google_client_id": "json-client-id",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "/data/gifcamp.db"},
		},
	})

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 45*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, "http://localhost:5255/login", cfg.Endpoints.RecordLogin)
	assert.Equal(t, "http://localhost:5255/images/all", cfg.Endpoints.ImagesAll)
	assert.Equal(t, "json-client-id", cfg.OAuth.GoogleClientID)
	assert.Equal(t, "/data/gifcamp.db", cfg.Storage.DB.DSN)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	require.Error(t, err)
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte("1000000000"), &d))
	assert.Equal(t, Duration(time.Second), d)
}
