package stegano
import (
	"fmt"
	"unicode/utf8"

	"subrosa/stegano/bidi"
	"subrosa/stegano/zerowidth"
)

/*
 * the built-in channels. "bidi" carries hidden text in the gaps between
 * carrier runes, one rune per gap; "zerowidth" carries raw bytes as a
 * stream of zero-width marker characters.
 */

type bidiChannel struct {
	alphabet	bidi.Alphabet
}

// a channel over the gap codec with a custom alphabet.
func BidiChannel( a bidi.Alphabet ) Channel {
	return bidiChannel{ a }
}

func(c bidiChannel) Hide( carrier string, payload []byte ) (string, error) {
	// the gap codec transports unicode scalar values, so the payload
	// has to be text.
	if utf8.Valid( payload ) == false {
		return "", fmt.Errorf("bidi channel carries text, payload is not valid utf-8")
	}
	return bidi.EncodeWithAlphabet( c.alphabet, carrier, string( payload ) )
}

func(c bidiChannel) Reveal( text string ) ([]byte, error) {
	_, hidden, err := bidi.DecodeWithAlphabet( c.alphabet, text )
	if err != nil {
		return nil, err
	}
	return []byte( hidden ), nil
}

// a payload of N bytes is at most N runes, and every gap holds one rune.
func(c bidiChannel) Capacity( carrier string ) int {
	return bidi.GapCount( carrier )
}

type zerowidthChannel struct {
	zero	rune
	one	rune
}

// a channel over the zero-width codec with custom marker runes.
func ZeroWidthChannel( zero, one rune ) Channel {
	return zerowidthChannel{ zero, one }
}

func(c zerowidthChannel) Hide( carrier string, payload []byte ) (string, error) {
	return zerowidth.EncodeWithInvisible( c.zero, c.one, zerowidth.EmbedMode, payload, carrier )
}

func(c zerowidthChannel) Reveal( text string ) ([]byte, error) {
	return zerowidth.DecodeFromInvisible( c.zero, c.one, text )
}

func(c zerowidthChannel) Capacity( carrier string ) int {
	return zerowidth.Capacity( carrier )
}

func init() {
	Register( "bidi", BidiChannel( bidi.DefaultAlphabet ) )
	Register( "zerowidth", ZeroWidthChannel( zerowidth.ZeroWidthNonJoiner, zerowidth.ZeroWidthJoiner ) )
}
