// Package logging sets up the zap logger.
//
// Logs go to a file under <home>/logs; stdout is reserved for demonstration
// traces. Debug mode raises the level and mirrors log lines to stderr.
package logging
