package config

import (
	"flag"
	"time"
)

// ParseFlags parses the command-line configuration flags. Backend endpoint
// URLs are environment/JSON-only; flags cover the knobs a developer
// changes between runs.
//
// Flags:
//
//	-d database DSN (SQLite file path for the session store)
//	-c/-config json file path with configs
//	-debug enable diagnostic logging
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-google-client-id Google OAuth client id
//	-google-client-secret Google OAuth client secret
//	-redirect-url OAuth callback URL
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var debug bool
	var requestTimeout time.Duration
	var googleClientID string
	var googleClientSecret string
	var redirectURL string

	flag.StringVar(&databaseDSN, "d", "", "Session database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&debug, "debug", false, "Enable diagnostic logging")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&googleClientID, "google-client-id", "", "Google OAuth client id")
	flag.StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret")
	flag.StringVar(&redirectURL, "redirect-url", "", "OAuth callback URL")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Debug:          debug,
			RequestTimeout: requestTimeout,
		},
		OAuth: OAuth{
			GoogleClientID:     googleClientID,
			GoogleClientSecret: googleClientSecret,
			RedirectURL:        redirectURL,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}
