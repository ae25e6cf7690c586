package bidi
import (
	"subrosa/stegano/util"
)

/*
 * the extractor. a single left-to-right scan over runes, with two states:
 * reading visible carrier text, or accumulating the invisible run of the
 * current gap. a non-empty run decodes to exactly one hidden rune; an
 * empty gap contributes nothing, which is how a hidden NUL (the one-digit
 * run "0") stays distinguishable from "no hidden rune here".
 */

func Decode( text string ) (string, string, error) {
	return DecodeWithAlphabet( DefaultAlphabet, text )
}

// returns the recovered carrier and the hidden message, in gap order.
// either both are complete or an error is returned, never partial output.
func DecodeWithAlphabet( a Alphabet, text string ) (string, string, error) {
	if err := a.Validate(); err != nil {
		return "", "", err
	}

	carrier := []rune{}
	hidden := []rune{}
	run := []byte{}		// ternary digits accumulated in the current gap
	pos := 0

	flush := func() error {
		if len( run ) == 0 {
			return nil
		}
		r, err := FromTernary( string( run ) )
		if err != nil {
			return err
		}
		hidden = append( hidden, r )
		run = run[:0]
		return nil
	}

	for _, r := range text {
		if digit, ok := a.RuneDigit( r ); ok {
			// gap state: one alphabet rune per ternary digit.
			run = append( run, byte( '0' + digit ) )
		} else if util.IsInvisible( r ) {
			// an invisible formatting character outside the alphabet.
			// neither carrier nor message may silently absorb it.
			return "", "", &CharacterError{ r, pos }
		} else {
			// visible state: the rune closes any pending run.
			if err := flush(); err != nil {
				return "", "", err
			}
			carrier = append( carrier, r )
		}
		pos++
	}
	// end of input closes the last run as well.
	if err := flush(); err != nil {
		return "", "", err
	}
	return string( carrier ), string( hidden ), nil
}
