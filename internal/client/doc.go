// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, and the local session store
// into a single process lifecycle: restore the stored session, run the
// UI, and start over from the welcome screen after a logout.
package client
