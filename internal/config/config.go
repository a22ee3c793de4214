// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// device-notes service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the key used to verify the
	// platform context token and the permission-enforcement toggle.
	App App `envPrefix:"APP_"`

	// Storage holds the document store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable
	// or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to verify the signed actor-context
	// token issued by the host platform. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// EnforcePermissions controls whether the permission evaluator gates
	// note mutation. nil means "not configured" and resolves to true;
	// disabling enforcement is a deliberate, logged configuration act.
	// Env: APP_ENFORCE_PERMISSIONS
	EnforcePermissions *bool `env:"ENFORCE_PERMISSIONS"`
}

// PermissionsEnforced resolves the EnforcePermissions toggle,
// defaulting to true when the value was never configured.
func (a App) PermissionsEnforced() bool {
	return a.EnforcePermissions == nil || *a.EnforcePermissions
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// Documents holds the document store settings.
	Documents Documents `envPrefix:"DOCUMENTS_"`
}

// Documents holds the connection settings of the notes document store.
type Documents struct {
	// URI is the MongoDB connection string (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_DOCUMENTS_URI
	URI string `env:"URI"`

	// Database is the database holding the notes collection.
	// Env: STORAGE_DOCUMENTS_DATABASE
	Database string `env:"DATABASE"`

	// Collection is the collection holding one container document per
	// identity key.
	// Env: STORAGE_DOCUMENTS_COLLECTION
	Collection string `env:"COLLECTION"`

	// InMemory selects the in-process document store instead of MongoDB.
	// Intended for local runs and tests; data does not survive a restart.
	// Env: STORAGE_DOCUMENTS_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`
}

// Server holds network settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
