// Package config loads, normalizes, and validates strguard configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the STRGUARD_LOG_LEVEL environment fallback. The
// Config type carries the output, length, and logging knobs the CLI needs so
// commands never parse settings themselves.
package config
