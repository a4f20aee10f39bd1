// Package cli defines the Cobra command tree for the gwflow CLI. Each file
// in this package registers one top-level command (load, info, config,
// version) with the root command. Command implementations delegate to
// internal packages for the actual loading and only handle flag parsing,
// I/O formatting, and user interaction.
package cli
