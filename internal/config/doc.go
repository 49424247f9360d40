// Package config loads, normalizes, and validates disclot configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks. The Config
// type centralizes every knob the CLI needs: data/export/log directories,
// the per-listing default values merged into every record, pricing policy,
// and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
