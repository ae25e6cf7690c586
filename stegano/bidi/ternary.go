package bidi

/*
 * explicit radix-3 conversion of a single unicode scalar value.
 * done by hand instead of strconv so the edge cases (zero, the maximum
 * scalar value, surrogates) stay visible and testable.
 */
const (
	MaxScalar = 0x10ffff

	surrogateMin = 0xd800
	surrogateMax = 0xdfff
)

func validScalar( v int64 ) bool {
	if v < 0 || v > MaxScalar {
		return false
	}
	if v >= surrogateMin && v <= surrogateMax {
		return false
	}
	return true
}

// base-3 representation of a scalar value, most significant digit first.
// zero encodes as the single digit "0", no other value has leading zeros.
func ToTernary( r rune ) (string, error) {
	v := int64( r )
	if validScalar( v ) == false {
		return "", &CodepointError{ v }
	}
	if v == 0 {
		return "0", nil
	}

	digits := []byte{}
	for v > 0 {
		digits = append( digits, byte( '0' + v % 3 ) )
		v /= 3
	}
	// division collects the lowest digit first, so reverse.
	for i, j := 0, len(digits) - 1; i < j; i, j = i + 1, j - 1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string( digits ), nil
}

// inverse of ToTernary.
func FromTernary( digits string ) (rune, error) {
	if len( digits ) == 0 {
		return 0, &DigitSequenceError{ digits }
	}

	v := int64( 0 )
	for i := 0; i < len(digits); i++ {
		d := digits[i]
		if d < '0' || d > '2' {
			return 0, &DigitSequenceError{ digits }
		}
		v = v * 3 + int64( d - '0' )
		// bail out early so a long digit string cannot overflow int64.
		if v > MaxScalar {
			return 0, &CodepointError{ v }
		}
	}

	if validScalar( v ) == false {
		return 0, &CodepointError{ v }
	}
	return rune( v ), nil
}
