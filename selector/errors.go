package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePart is returned when element, id or pseudo-element is
	// written a second time.
	ErrDuplicatePart = errors.New("selector part already set")
	// ErrOrder is returned when a part is written after a part which must
	// follow it in a selector.
	ErrOrder = errors.New("selector part out of order")
	// ErrEmptyPart is returned when a part value is empty.
	ErrEmptyPart = errors.New("empty selector part")
	// ErrInvalidCombinator is returned by strict combination and combinator
	// parsing for tokens outside of " ", ">", "+" and "~".
	ErrInvalidCombinator = errors.New("invalid combinator")
)

// PartError describes rejected write. Err is always one of ErrDuplicatePart,
// ErrOrder or ErrEmptyPart, use errors.Is to branch on it.
type PartError struct {
	Part     Kind  // category being written
	Conflict Kind  // category already present which caused rejection
	Err      error // reason
}

func (e *PartError) Error() string {
	switch {
	case errors.Is(e.Err, ErrOrder):
		return fmt.Sprintf("%s after %s: %v", e.Part, e.Conflict, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Part, e.Err)
	}
}

func (e *PartError) Unwrap() error {
	return e.Err
}
