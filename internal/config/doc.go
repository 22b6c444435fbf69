// Package config loads calsum.yaml project configuration and applies
// CALSUM_* environment overrides, optionally read from a .env file.
package config
