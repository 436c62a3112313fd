package retention

import (
	"errors"
	"fmt"
)

// InvalidContextError reports a structurally malformed ComputeContext, such
// as duplicate member IDs or a subscription referencing a missing plan. The
// engine never guesses at missing references.
type InvalidContextError struct {
	Reason string
}

func (e *InvalidContextError) Error() string {
	return fmt.Sprintf("invalid compute context: %s", e.Reason)
}

func newInvalidContext(format string, args ...any) *InvalidContextError {
	return &InvalidContextError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidContext reports whether err is an InvalidContextError.
func IsInvalidContext(err error) bool {
	var ice *InvalidContextError
	return errors.As(err, &ice)
}
