package domain

import (
	"errors"
	"fmt"
)

// UnknownPatternError reports a pattern identifier outside the catalog.
// It is the only failure mode a demonstration run has.
type UnknownPatternError struct {
	ID ID
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown pattern %q", string(e.ID))
}

// IsUnknownPattern reports whether err is (or wraps) an UnknownPatternError.
func IsUnknownPattern(err error) bool {
	var upe *UnknownPatternError
	return errors.As(err, &upe)
}
