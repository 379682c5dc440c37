// Package runner executes catalog entries: resolve the pattern, run it,
// log the outcome, and record it in history.
package runner
