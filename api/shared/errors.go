/* errors.go
 * Error kinds shared by every layer. Lookup and malformed pick errors are fatal for the year being computed,
 * ErrPlayoffsNotStarted is the one expected condition and callers should present it as "not started yet"
 * Authors: Zachary Bower
 */

package shared

import (
	"errors"
	"fmt"
)

var (
	ErrLookup             = errors.New("lookup failed")
	ErrMalformedPick      = errors.New("malformed pick")
	ErrPlayoffsNotStarted = errors.New("playoffs not started")
)

// PickInputError describes a single bad pick row so it can be located in the source file
type PickInputError struct {
	Person string
	Series string
	Value  string
	Reason string
}

func (e *PickInputError) Error() string {
	return fmt.Sprintf("invalid pick for %s in series %s (%q): %s", e.Person, e.Series, e.Value, e.Reason)
}

func (e *PickInputError) Unwrap() error { return ErrMalformedPick }

// LookupError returns an error wrapping ErrLookup for the given kind of thing (series, team, ...) and key
func LookupError(kind string, key string) error {
	return fmt.Errorf("%s %q: %w", kind, key, ErrLookup)
}
