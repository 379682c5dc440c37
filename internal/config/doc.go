// Package config provides configuration loading for patternlab.
//
// Precedence (highest to lowest): PATTERNLAB_* environment variables, the
// YAML config file, hardcoded defaults.
package config
