package bidi
import (
	"fmt"
	"subrosa/stegano/util"
)

/*
 * the alphabet is a fixed bijection between three invisible formatting
 * characters and the ternary digits 0, 1, 2. the default set uses the
 * bidirectional marks: they render as nothing, survive copy-paste, and
 * never occur in a normal carrier text.
 */
const (
	LeftToRightMark = '\u200e'	// digit 0
	RightToLeftMark = '\u200f'	// digit 1
	ArabicLetterMark = '\u061c'	// digit 2

	Radix = 3
)

type Alphabet [Radix]rune

var DefaultAlphabet = Alphabet{ LeftToRightMark, RightToLeftMark, ArabicLetterMark }

// the formatting character standing for digit. total for digit in 0..2.
func(a Alphabet) DigitRune( digit int ) rune {
	return a[ digit ]
}

// reverse lookup; the bool is false for runes outside the alphabet.
func(a Alphabet) RuneDigit( r rune ) (int, bool) {
	for d, member := range a {
		if member == r {
			return d, true
		}
	}
	return 0, false
}

func(a Alphabet) Contains( r rune ) bool {
	_, ok := a.RuneDigit( r )
	return ok
}

// every member must be a distinct invisible formatting character,
// otherwise encoded slots either show up on screen or collide with
// the carrier.
func(a Alphabet) Validate() error {
	for i, r := range a {
		if util.IsInvisible( r ) == false {
			return fmt.Errorf("alphabet member %U is not an invisible formatting character", r)
		}
		for j := 0; j < i; j++ {
			if a[j] == r {
				return fmt.Errorf("alphabet members must be distinct, %U repeats", r)
			}
		}
	}
	return nil
}
