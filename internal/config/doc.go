// Package config loads, normalizes, and validates unilogctl configuration.
//
// Files are TOML or YAML, chosen by extension. Missing keys take the
// defaults from Default; per-label sections override the global minimum
// level and bind metadata to that label's adapter.
package config
