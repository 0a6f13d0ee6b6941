// Package config provides configuration loading, merging, and validation
// facilities for the GifCamp client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win on conflicting fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig].
package config
