package bidi
import (
	"unicode/utf8"
	"subrosa/stegano/util"
)

/*
 * contract checks shared by the encoder and the decoder.
 * classification only, nothing here transforms data.
 */

// the number of gaps between adjacent runes of the carrier.
func GapCount( carrier string ) int {
	n := utf8.RuneCountInString( carrier )
	if n == 0 {
		return 0
	}
	return n - 1
}

func checkCapacity( carrier, hidden string ) error {
	need := utf8.RuneCountInString( hidden )
	have := GapCount( carrier )
	if need > have {
		return &CapacityError{ need, have }
	}
	return nil
}

// a valid carrier contains no alphabet members and no other invisible
// formatting characters: those would collide with encoded slots on decode.
func checkCarrier( a Alphabet, carrier string ) error {
	pos := 0
	for _, r := range carrier {
		if a.Contains( r ) || util.IsInvisible( r ) {
			return &CharacterError{ r, pos }
		}
		pos++
	}
	return nil
}
