package stegano
import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinChannels( t *testing.T ) {
	names := Channels()
	assert.Contains( t, names, "bidi" )
	assert.Contains( t, names, "zerowidth" )

	for _, name := range []string{ "bidi", "zerowidth" } {
		payload := []byte("a small secret")
		carrier := "an entirely ordinary sentence used as a decoy here"

		enc, err := Hide( name, carrier, payload )
		if err != nil {
			t.Errorf("Hide over %q failed: %v", name, err)
			continue
		}
		dec, err := Reveal( name, enc )
		if err != nil {
			t.Errorf("Reveal over %q failed: %v", name, err)
		} else if bytes.Equal( payload, dec ) == false {
			t.Errorf("channel %q spoiled the data. %q != %q", name, payload, dec)
		}
	}
}

func TestUnknownChannel( t *testing.T ) {
	if _, err := Hide( "pigeon", "carrier", []byte("x") ); err == nil {
		t.Errorf("Hide accepted an unregistered channel")
	}
	if _, err := Reveal( "pigeon", "text" ); err == nil {
		t.Errorf("Reveal accepted an unregistered channel")
	}
}

type nullChannel struct{}

func(nullChannel) Hide( carrier string, payload []byte ) (string, error)	{ return carrier, nil }
func(nullChannel) Reveal( text string ) ([]byte, error)			{ return nil, nil }
func(nullChannel) Capacity( carrier string ) int				{ return 0 }

func TestRegister( t *testing.T ) {
	if err := Register( "null-test", nullChannel{} ); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := Register( "null-test", nullChannel{} ); err == nil {
		t.Errorf("Register accepted a duplicate name")
	}
	c, err := Lookup( "null-test" )
	assert.NoError( t, err )
	assert.NotNil( t, c )
}

func TestBidiChannelPayloadMustBeText( t *testing.T ) {
	_, err := Hide( "bidi", "some carrier text", []byte{ 0xff, 0xfe } )
	if err == nil {
		t.Errorf("the bidi channel accepted a payload that is not utf-8")
	}
}

func TestCapacity( t *testing.T ) {
	c, err := Lookup( "bidi" )
	assert.NoError( t, err )
	// seven runes leave six gaps, one hidden rune each.
	assert.Equal( t, 6, c.Capacity( "VISIBLE" ) )

	// a capacity-sized ascii payload must fit exactly.
	payload := bytes.Repeat( []byte("x"), c.Capacity( "VISIBLE" ) )
	_, err = c.Hide( "VISIBLE", payload )
	assert.NoError( t, err )
	_, err = c.Hide( "VISIBLE", append( payload, 'x' ) )
	assert.Error( t, err )
}
