// Package config loads, normalizes, and validates panelbox configuration.
//
// It supplies repository defaults, reads TOML files, and honours
// environment fallbacks such as PANELBOX_TAGGER. The Config type
// centralizes every knob the CLI and pipeline need: which formats to read,
// which to write, stamping behavior, delete keys, and logging. Pipeline
// code receives the value explicitly; nothing reads ambient global state.
package config
