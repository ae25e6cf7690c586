package bidi

/*
 * the interleaver. each hidden rune occupies exactly one gap between two
 * adjacent carrier runes, as a run of alphabet characters spelling out the
 * rune's ternary representation. gap i holds hidden rune i, gaps past the
 * end of the hidden message stay empty. visible runes delimit the runs,
 * so no separator or length field is needed.
 *
 * pure and deterministic: identical inputs give byte-identical output,
 * concurrent calls need no coordination.
 */

func Encode( carrier, hidden string ) (string, error) {
	return EncodeWithAlphabet( DefaultAlphabet, carrier, hidden )
}

func EncodeWithAlphabet( a Alphabet, carrier, hidden string ) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if err := checkCarrier( a, carrier ); err != nil {
		return "", err
	}
	if err := checkCapacity( carrier, hidden ); err != nil {
		return "", err
	}

	// build every encoded slot before emitting anything: the call
	// either returns the complete text or nothing at all.
	slots := [][]rune{}
	for _, r := range hidden {
		digits, err := ToTernary( r )
		if err != nil {
			return "", err
		}
		slot := make( []rune, len(digits) )
		for i := 0; i < len(digits); i++ {
			slot[i] = a.DigitRune( int( digits[i] - '0' ) )
		}
		slots = append( slots, slot )
	}

	out := []rune{}
	idx := 0
	for _, r := range carrier {
		if idx > 0 && idx - 1 < len(slots) {
			out = append( out, slots[ idx - 1 ]... )
		}
		out = append( out, r )
		idx++
	}
	return string( out ), nil
}
