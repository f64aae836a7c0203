// Package config loads application configuration from YAML files and
// environment variables.
//
// Precedence, lowest to highest: config.yml, process environment, .env file.
// Environment variables bind to nested keys by underscore splitting, so
// AUTH_PRIVATE_KEY_BASE64 populates auth.private_key_base64. The loader
// accepts a FileSystem implementation so tests can run without touching
// the real filesystem.
//
// Load returns the fully defaulted and validated Config; key material that
// fails to parse is reported as an error the caller must treat as fatal.
package config
