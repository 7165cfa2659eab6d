// Package config loads, normalizes, and validates studentcard configuration.
//
// It supplies defaults, reads TOML files from the usual locations, and honours
// the STUDENTCARD_LOG_LEVEL environment override. Obtain settings through this
// package so the CLI and logger see canonical, validated values.
package config
