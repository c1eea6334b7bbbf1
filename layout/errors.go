package layout

import (
	"errors"
	"fmt"
)

// Three error kinds: programmer errors caught at the boundary, unsupported
// option strings, and coordinates that overflow the representable range.
// Layout returns these rather than panicking, since it is a library entry
// point; internal stage helpers still panic on violated invariants, and
// Layout recovers those into ErrInvariantViolation at the boundary.
var (
	ErrInvariantViolation = errors.New("graphlayout: invariant violation")
	ErrUnsupported        = errors.New("graphlayout: unsupported option")
	ErrGraphTooLarge      = errors.New("graphlayout: graph too large")
)

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
