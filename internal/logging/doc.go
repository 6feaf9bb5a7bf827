// Package logging provides structured logging for the airstatus CLI.
//
// Logging is silent by default so that the live dashboard owns stdout.
// Set AIRSTATUS_LOG_LEVEL to "debug", "info", "warn", or "error" to
// enable zap console output on stderr.
package logging
