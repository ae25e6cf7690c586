package config
import (
	"os"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"subrosa/stegano"
	"subrosa/stegano/bidi"
	"subrosa/stegano/zerowidth"
)

/*
 * configuration of the steganography layer. everything is optional:
 * empty fields fall back to the package defaults, so an empty file is
 * a valid configuration.
 */
type SteganoConfig struct {
	// name of the channel to use for hiding data.
	Channel		string		`yaml:"channel"`

	// the three invisible characters of the gap codec, digit order.
	BidiAlphabet	[]string	`yaml:"bidi_alphabet"`

	// marker characters of the zero-width channel.
	ZeroRune	string		`yaml:"zero_rune"`
	OneRune		string		`yaml:"one_rune"`
}

func LoadConfig( filename string ) (*SteganoConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	var conf SteganoConfig
	if err := yaml.Unmarshal( data, &conf ); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig( filename string, c *SteganoConfig ) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}

// the alphabet for the gap codec, validated.
func(c *SteganoConfig) Alphabet() (bidi.Alphabet, error) {
	if len( c.BidiAlphabet ) == 0 {
		return bidi.DefaultAlphabet, nil
	}
	if len( c.BidiAlphabet ) != bidi.Radix {
		return bidi.Alphabet{}, fmt.Errorf("bidi_alphabet needs exactly %d members, got %d",
			bidi.Radix, len( c.BidiAlphabet ))
	}

	var a bidi.Alphabet
	for i, s := range c.BidiAlphabet {
		r, err := singleRune( s )
		if err != nil {
			return bidi.Alphabet{}, err
		}
		a[i] = r
	}
	if err := a.Validate(); err != nil {
		return bidi.Alphabet{}, err
	}
	return a, nil
}

// marker runes for the zero-width channel, validated.
func(c *SteganoConfig) Markers() (rune, rune, error) {
	zero := rune( zerowidth.ZeroWidthNonJoiner )
	one := rune( zerowidth.ZeroWidthJoiner )

	var err error
	if c.ZeroRune != "" {
		if zero, err = singleRune( c.ZeroRune ); err != nil {
			return 0, 0, err
		}
	}
	if c.OneRune != "" {
		if one, err = singleRune( c.OneRune ); err != nil {
			return 0, 0, err
		}
	}
	if zero == one {
		return 0, 0, fmt.Errorf("zero_rune and one_rune must differ")
	}
	return zero, one, nil
}

// a ready-to-use channel built from the configuration. names outside the
// built-in set are resolved through the registry, so channels registered
// by the application keep working.
func(c *SteganoConfig) BuildChannel() (stegano.Channel, error) {
	name := c.Channel
	if name == "" {
		name = "bidi"
	}

	switch name {
	case "bidi":
		a, err := c.Alphabet()
		if err != nil {
			return nil, err
		}
		return stegano.BidiChannel( a ), nil
	case "zerowidth":
		zero, one, err := c.Markers()
		if err != nil {
			return nil, err
		}
		return stegano.ZeroWidthChannel( zero, one ), nil
	default:
		return stegano.Lookup( name )
	}
}

func singleRune( s string ) (rune, error) {
	r, size := utf8.DecodeRuneInString( s )
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	return r, nil
}
