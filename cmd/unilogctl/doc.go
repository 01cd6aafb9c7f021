// Command unilogctl drives the unified logging adapter from the shell.
//
// It loads an optional TOML or YAML configuration (--config), binds each
// label to the configured facility (journal, zap, zerolog, slog, or the
// plain fallback), and offers three subcommands:
//
//	unilogctl emit --label DISK --level warning --meta volume=sda1 disk almost full
//	unilogctl levels
//	unilogctl check --label DISK
//
// Setting the environment variable named after a label to anything other
// than "true" mutes that label.
package main
