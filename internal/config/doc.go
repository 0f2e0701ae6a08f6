// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env files, config files). It
// provides type-safe access to the settings needed by the HTTP server and the
// generation backends while keeping configuration details separate from the
// curriculum pipeline.
package config
