// Package logging constructs the slog loggers used across panelbox.
//
// It supports a human-oriented console format and machine-oriented JSON,
// selected by configuration. Components receive a *slog.Logger and attach
// a "component" attribute; nothing logs through a package-level default.
package logging
