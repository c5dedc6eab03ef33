// Package config handles configuration management for sharelink.
// It layers embedded TOML defaults, the user and project configuration
// files, SHARELINK_* environment variables and explicitly set command-line
// flags with koanf, then decodes the result into a Config.
package config
