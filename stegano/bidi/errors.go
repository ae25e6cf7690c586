package bidi
import (
	"fmt"
)

/*
 * every failure is a typed value, so callers can tell them apart with
 * errors.As. none of them is retryable: each one means the supplied
 * input itself is wrong.
 */

// the hidden message does not fit into the carrier's gaps.
type CapacityError struct {
	Required	int	// gaps the hidden message needs
	Available	int	// gaps the carrier has
}

func(e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: need %d gaps, carrier has %d", e.Required, e.Available)
}

// a value outside the valid unicode scalar range, or a surrogate.
type CodepointError struct {
	Value	int64
}

func(e *CodepointError) Error() string {
	return fmt.Sprintf("invalid codepoint %#x", e.Value)
}

// an empty or malformed ternary digit string.
type DigitSequenceError struct {
	Digits	string
}

func(e *DigitSequenceError) Error() string {
	if e.Digits == "" {
		return "invalid digit sequence: empty"
	}
	return fmt.Sprintf("invalid digit sequence %q", e.Digits)
}

// an invisible formatting character which is not an alphabet member.
type CharacterError struct {
	Rune	rune
	Pos	int	// rune index in the scanned text
}

func(e *CharacterError) Error() string {
	return fmt.Sprintf("invalid character %U at rune position %d", e.Rune, e.Pos)
}
