package textenc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSyntax is the single error kind reported by all decode and
	// format operations. The wrapped message names the violated invariant
	// (bad character, misaligned length, bad padding, invalid UTF-8).
	// Match it with errors.Is.
	ErrInvalidSyntax = errors.New("textenc: invalid syntax")

	// ErrUnknownScheme indicates that Lookup was called with a name no
	// codec has been registered under.
	ErrUnknownScheme = errors.New("textenc: unknown scheme")
)

// InvalidSyntax builds an ErrInvalidSyntax carrying a human-readable cause.
func InvalidSyntax(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSyntax, fmt.Sprintf(format, args...))
}
