package config

import (
	"fmt"
	"time"
)

// Default values applied when neither env, flags, nor JSON provide one.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "gifcamp.db"
	DefaultRedirectURL    = "http://localhost:8910/oauth/callback"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Debug enables diagnostic logging.
	Debug bool
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds the local session database settings.
	DB DB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Endpoints contains the backend endpoint URLs.
	Endpoints Endpoints
	// OAuth contains the Google OAuth collaborator settings.
	OAuth OAuth
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetStructuredConfig builds the merged configuration from environment
// variables, command-line flags, and the optional JSON file, in that
// order of precedence (earlier sources win on conflict).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. Missing endpoint URLs and OAuth
// credentials are not errors here; the corresponding features degrade
// with a warning at the call site instead.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Debug:          cfg.App.Debug,
			RequestTimeout: cfg.App.RequestTimeout,
		},
		Endpoints: cfg.Endpoints,
		OAuth:     cfg.OAuth,
		Storage: ClientStorage{
			DB: cfg.Storage.DB,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.RequestTimeout <= 0 {
		cfg.App.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.OAuth.RedirectURL == "" {
		cfg.OAuth.RedirectURL = DefaultRedirectURL
	}
}
