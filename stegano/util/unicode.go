package util
import (
	"unicode"
	"golang.org/x/text/unicode/norm"
)

// reports whether r is an invisible formatting character (category Cf).
func IsInvisible( r rune ) bool {
	return unicode.Is( unicode.Cf, r )
}

// position (in runes) of the first invisible formatting character in s.
func FirstInvisible( s string ) (int, rune, bool) {
	pos := 0
	for _, r := range s {
		if IsInvisible( r ) {
			return pos, r, true
		}
		pos++
	}
	return 0, 0, false
}

/*
 * hidden data only survives while the text is passed through verbatim.
 * a carrier that is not NFC-normalized may be rewritten in transit, and
 * renormalization does not keep inserted formatting characters in place,
 * so tooling should warn about such carriers before encoding.
 */
func NormalizationStable( s string ) bool {
	return norm.NFC.IsNormalString( s )
}
