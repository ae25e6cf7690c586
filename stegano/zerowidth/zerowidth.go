package zerowidth
import (
	"fmt"
	"unicode/utf8"
	"subrosa/stegano/util"
)

/*
 * binary channel built on a pair of zero-width characters: every bit of
 * the framed payload becomes one marker rune. in embed mode the markers
 * are spread through the gaps of the carrier text, with any overflow
 * appended after the last rune, so the carrier length never limits the
 * payload. the decoder collects markers wherever they appear and ignores
 * everything else.
 */
const (
	PrefixMode = uint8(0)
	SuffixMode = uint8(1)
	EmbedMode = uint8(2)

	ZeroWidthNonJoiner = '\u200c'	// bit 0
	ZeroWidthJoiner = '\u200d'	// bit 1
)

func EncodeWithInvisible( zero, one rune, mode uint8, payload []byte, carrier string ) (string, error) {
	if zero == one {
		return "", fmt.Errorf("marker runes must be distinct")
	}
	if util.IsInvisible( zero ) == false || util.IsInvisible( one ) == false {
		return "", fmt.Errorf("marker runes must be invisible formatting characters")
	}

	bits := util.PackBits( payload )
	markers := make( []rune, len(bits) )
	for i, bit := range bits {
		if bit == 0 {
			markers[i] = zero
		} else {
			markers[i] = one
		}
	}

	switch mode {
	case PrefixMode:
		return string( markers ) + carrier, nil
	case SuffixMode:
		return carrier + string( markers ), nil
	case EmbedMode:
		out := []rune{}
		idx := 0
		for _, r := range carrier {
			out = append( out, r )
			if idx < len(markers) {
				out = append( out, markers[idx] )
				idx++
			}
		}
		if idx < len(markers) {
			util.DebugPrintf( "zerowidth: %d marker runes overflow the carrier\n", len(markers) - idx )
			out = append( out, markers[idx:]... )
		}
		return string( out ), nil
	default:
		return "", fmt.Errorf("Invalid encoding mode %d", mode)
	}
}

func DecodeFromInvisible( zero, one rune, text string ) ([]byte, error) {
	bits := []uint8{}
	for _, r := range text {
		if r == zero {
			bits = append( bits, 0 )
		} else if r == one {
			bits = append( bits, 1 )
		}
	}
	return util.UnpackBits( bits )
}

// default-marker wrappers, enough for most callers.
func Hide( carrier string, payload []byte ) (string, error) {
	return EncodeWithInvisible( ZeroWidthNonJoiner, ZeroWidthJoiner, EmbedMode, payload, carrier )
}

func Reveal( text string ) ([]byte, error) {
	return DecodeFromInvisible( ZeroWidthNonJoiner, ZeroWidthJoiner, text )
}

// payload bytes whose bits fit into the carrier without trailing overflow.
// Hide accepts more, but the overflow piles up visibly at the very end of
// the text, which makes the embedding easier to spot.
func Capacity( carrier string ) int {
	room := utf8.RuneCountInString( carrier ) - util.HeaderBits
	if room < 0 {
		return 0
	}
	return room / 8
}
