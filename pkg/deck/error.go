package deck

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrMalformedHand is the error matched by every MalformedHandError
var ErrMalformedHand = errors.New("malformed hand")

// MalformedHandError is returned when a hand string cannot be parsed
type MalformedHandError struct {
	Input string
	// Token is the zero-based index of the offending token, or -1 if the hand as a whole is bad
	Token  int
	Reason string
}

func (m *MalformedHandError) Error() string {
	if m.Token < 0 {
		return fmt.Sprintf("malformed hand %q: %s", m.Input, m.Reason)
	}

	return fmt.Sprintf("malformed hand %q: card %d: %s", m.Input, m.Token+1, m.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedHand)
func (m *MalformedHandError) Unwrap() error {
	return ErrMalformedHand
}
