// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// GifCamp client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the diagnostic
	// logging toggle and the outbound request timeout.
	App App `envPrefix:"APP_"`

	// Endpoints holds one URL per backend feature. An empty URL disables
	// the corresponding feature with a logged warning.
	Endpoints Endpoints `envPrefix:"ENDPOINTS_"`

	// OAuth holds the Google OAuth collaborator settings. An empty
	// client id disables login.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Debug enables diagnostic logging. When false only warnings and
	// errors are emitted.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// RequestTimeout is the default timeout for outbound backend
	// requests (e.g. "15s", "1m").
	// Env: APP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Endpoints names every backend endpoint the client consumes. Each one is
// independently configurable; a missing value disables that feature
// rather than failing startup.
type Endpoints struct {
	// RecordLogin receives the fire-and-forget login notification.
	// Env: ENDPOINTS_LOGIN
	RecordLogin string `env:"LOGIN"`

	// CategoriesAll lists the user's categories.
	// Env: ENDPOINTS_CATEGORIES_ALL
	CategoriesAll string `env:"CATEGORIES_ALL"`

	// CategoriesCreate creates a category.
	// Env: ENDPOINTS_CATEGORIES_CREATE
	CategoriesCreate string `env:"CATEGORIES_CREATE"`

	// CategoriesDelete deletes a category.
	// Env: ENDPOINTS_CATEGORIES_DELETE
	CategoriesDelete string `env:"CATEGORIES_DELETE"`

	// ImagesAll lists images filtered by category.
	// Env: ENDPOINTS_IMAGES_ALL
	ImagesAll string `env:"IMAGES_ALL"`

	// ImagesAddLink bookmarks an image by URL.
	// Env: ENDPOINTS_IMAGES_ADD_LINK
	ImagesAddLink string `env:"IMAGES_ADD_LINK"`

	// ImagesAddBlob uploads an image file (multipart).
	// Env: ENDPOINTS_IMAGES_ADD_BLOB
	ImagesAddBlob string `env:"IMAGES_ADD_BLOB"`

	// ImagesDelete deletes a bookmarked image.
	// Env: ENDPOINTS_IMAGES_DELETE
	ImagesDelete string `env:"IMAGES_DELETE"`

	// TagsAll lists the tags of an image.
	// Env: ENDPOINTS_TAGS_ALL
	TagsAll string `env:"TAGS_ALL"`

	// TagsCreate attaches a tag to an image.
	// Env: ENDPOINTS_TAGS_CREATE
	TagsCreate string `env:"TAGS_CREATE"`

	// TagsDelete detaches a tag.
	// Env: ENDPOINTS_TAGS_DELETE
	TagsDelete string `env:"TAGS_DELETE"`
}

// OAuth holds the settings for the Google OAuth collaborator.
type OAuth struct {
	// GoogleClientID identifies the OAuth client. Login is disabled when
	// empty.
	// Env: OAUTH_GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// GoogleClientSecret is the OAuth client secret.
	// Env: OAUTH_GOOGLE_CLIENT_SECRET
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	// RedirectURL is the local callback address the browser is sent back
	// to after consent (e.g. "http://localhost:8910/oauth/callback").
	// Env: OAUTH_REDIRECT_URL
	RedirectURL string `env:"REDIRECT_URL"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the session database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session store.
type DB struct {
	// DSN is the SQLite file path holding the persisted session.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}
