// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package config

import "strings"

// validate checks that the final merged [ClientConfig] satisfies the
// startup invariants. Feature availability (endpoints, OAuth client id)
// is deliberately not validated: a missing endpoint disables its feature
// at runtime instead of failing startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.RequestTimeout <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
