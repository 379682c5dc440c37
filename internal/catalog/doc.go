// Package catalog assembles the closed set of pattern demonstrations into a
// registry. Lookup by identifier is the only way in; an identifier outside
// the set fails with domain.UnknownPatternError.
package catalog
