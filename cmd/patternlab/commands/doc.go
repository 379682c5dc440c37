// Package commands defines the patternlab CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - run       Run a pattern demonstration and print its trace
//   - list      List the catalog, grouped by category
//   - describe  Show one entry's summary, input shape and default trace
//   - history   Show recent recorded runs
//
// # Implementation
//
// The root command loads configuration and builds a dependency graph
// (catalog, history store, runner, logger) before any subcommand runs, so
// handlers share one app context. Demonstration traces go to stdout
// unstyled; everything decorative goes through lipgloss.
package commands
