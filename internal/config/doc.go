// Package config loads phosphor's display settings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/phosphor/config.toml
//  3. If the config file doesn't exist, use Default()
//  4. Keys missing from the file keep their default value
//
// # TOML Format
//
//	fps = 60
//	seed = 0               # 0 draws a fresh seed every run
//	theme = "Amber"        # Phosphor, Amber or Ice
//	line_height = 18
//	min_buffer = 120       # lines kept at least; smaller values use 120
//	jitter = true
//	border = true
//	banner_file = "~/.config/phosphor/banner.txt"
//	log_file = "~/.local/state/phosphor/phosphor.log"
//
// Tilde expansion is performed for banner_file and log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and
// TOML parse errors. Out-of-range values are not errors; Normalize replaces
// them.
package config
