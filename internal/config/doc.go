// Package config loads, normalizes, and validates questlog configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// QUESTLOG_API_TOKEN. The Config type centralizes every knob the CLI and
// the reconciliation engine need: backend location and credential, endpoint
// templates, identifier-cache placement, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical endpoint templates, and clear validation
// errors.
package config
