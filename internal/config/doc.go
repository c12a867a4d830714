// Package config loads parsebuf settings.
//
// Settings come from three layers, lowest precedence first:
//
//  1. Built-in defaults (Default)
//  2. A TOML file (Load, LoadFile)
//  3. PARSEBUF_* environment variables (ApplyEnv)
//
// Command-line flags are applied by the CLI on top of these.
//
// Example file:
//
//	[input]
//	encoding = "utf-16le"
//	chunk_size = 4096
//
//	[driver]
//	max_snapshots = 32
//	verify = true
//
//	[logging]
//	level = "debug"
package config
