package pool

import (
	"errors"
	"fmt"
)

// Accounting mistakes in the pool sit underneath physical conservation
// laws, so every violation is treated as a programming error: InitVar and
// Recount report theirs as returned errors, while the per-particle
// mutators panic with one of these sentinels wrapped inside.
var (
	ErrInvalidState      = errors.New("particle pool: invalid state")
	ErrUnsupportedScheme = errors.New("particle pool: unsupported interpolation scheme")
	ErrOutOfRange        = errors.New("particle pool: out of range")
	ErrUnsupportedMarker = errors.New("particle pool: unsupported removal marker")
	ErrAlreadyInactive   = errors.New("particle pool: slot already inactive")
	ErrPostcondition     = errors.New("particle pool: active + inactive != total")
)

func errf(base error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{base}, args...)...)
}
