// Package app wires application dependencies for the CLI.
//
// It loads configuration, sets up logging, and builds the catalog, history
// store and runner from Config, exposing them via the App struct for
// commands to use.
package app
