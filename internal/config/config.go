// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// fit-journal API. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json/yaml: keys used when the config is read from a file.
type StructuredConfig struct {
	// App holds application-level settings: environment mode and token
	// parameters.
	App App `envPrefix:"APP_" json:"app" yaml:"app"`

	// Server holds the listen address, timeouts and static asset settings.
	Server Server `envPrefix:"SERVER_" json:"server" yaml:"server"`

	// CORS is the single cross-origin policy applied to every response.
	CORS CORS `envPrefix:"CORS_" json:"cors" yaml:"cors"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" yaml:"storage"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Env selects development, test or production behaviour for logging
	// and error rendering.
	// Env: APP_ENV
	Env Mode `env:"ENV" json:"env" yaml:"env"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key" yaml:"token_sign_key"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer" yaml:"token_issuer"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" json:"token_duration" yaml:"token_duration"`

	// PasswordHashCost is the bcrypt cost used when hashing passwords.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST" json:"password_hash_cost" yaml:"password_hash_cost"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address" yaml:"http_address"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout" yaml:"request_timeout"`

	// ReadHeaderTimeout bounds reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" json:"read_header_timeout" yaml:"read_header_timeout"`

	// StaticDir is the directory served as public assets.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR" json:"static_dir" yaml:"static_dir"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT" json:"rate_limit" yaml:"rate_limit"`

	// RateBurst is the token bucket size used together with RateLimit.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST" json:"rate_burst" yaml:"rate_burst"`

	// TrustProxy takes the client address from X-Real-IP, X-Forwarded-For
	// or True-Client-IP. Enable only behind a proxy that sets them.
	// Env: SERVER_TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY" json:"trust_proxy" yaml:"trust_proxy"`
}

// CORS is the cross-origin policy of the API.
type CORS struct {
	// AllowedOrigin is the only web origin allowed to read responses.
	// Env: CORS_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN" json:"allowed_origin" yaml:"allowed_origin"`

	// AllowedMethods are announced in Access-Control-Allow-Methods.
	// Env: CORS_ALLOWED_METHODS (comma separated)
	AllowedMethods []string `env:"ALLOWED_METHODS" json:"allowed_methods" yaml:"allowed_methods"`

	// AllowedHeaders are announced in Access-Control-Allow-Headers.
	// Env: CORS_ALLOWED_HEADERS (comma separated)
	AllowedHeaders []string `env:"ALLOWED_HEADERS" json:"allowed_headers" yaml:"allowed_headers"`

	// AllowCredentials controls Access-Control-Allow-Credentials.
	// A pointer so that an explicit false survives merging.
	// Env: CORS_ALLOW_CREDENTIALS
	AllowCredentials *bool `env:"ALLOW_CREDENTIALS" json:"allow_credentials" yaml:"allow_credentials"`
}

// CredentialsAllowed reports whether credentials are allowed, treating an
// unset value as false.
func (c CORS) CredentialsAllowed() bool {
	return c.AllowCredentials != nil && *c.AllowCredentials
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db" yaml:"db"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: postgres:// or postgresql:// use
	// pgx, sqlite:// or file: use sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn" yaml:"dsn"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Later sources override earlier ones:
//  1. Environment variables
//  2. Command-line flags (args)
//  3. Config file (path resolved from sources 1 and 2)
//
// Fields left empty by every source are filled from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
