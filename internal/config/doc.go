// Package config loads and validates the reclaim configuration file.
//
// Configuration is TOML, resolved from an explicit --config flag, then
// ~/.config/reclaim/config.toml, then ./reclaim.toml. Missing files are not
// an error; defaults apply. All path fields are expanded (~) and normalized
// to absolute paths before validation.
package config
