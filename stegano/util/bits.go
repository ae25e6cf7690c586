package util
import (
	"fmt"
	"encoding/binary"
)

/*
 * bit-level framing for the binary channels. the payload is prefixed with
 * a 32-bit little-endian length, so a decoder reading a stream of marker
 * characters knows where the data ends.
 */
const (
	lengthBytes = 4

	// frame overhead in bits, useful for capacity estimations.
	HeaderBits = lengthBytes * 8
)

// one element per bit, lowest bit of every byte first.
func PackBits( payload []byte ) []uint8 {
	framed := make( []byte, lengthBytes, lengthBytes + len(payload) )
	binary.LittleEndian.PutUint32( framed, uint32( len(payload) ) )
	framed = append( framed, payload... )

	bits := make( []uint8, 0, len(framed) * 8 )
	for _, b := range framed {
		for i := 0; i < 8; i++ {
			bits = append( bits, (b >> i) & 1 )
		}
	}
	return bits
}

// inverse of PackBits. trailing bits that do not form a whole byte are
// ignored, anything shorter than the header is an error.
func UnpackBits( bits []uint8 ) ([]byte, error) {
	framed := []byte{}
	for i := 0; i + 8 <= len(bits); i += 8 {
		b := byte(0)
		for j := 7; j >= 0; j-- {
			b = b << 1 | bits[ i + j ]
		}
		framed = append( framed, b )
	}

	if len( framed ) < lengthBytes {
		return nil, fmt.Errorf("There is no encoded data")
	}
	length := binary.LittleEndian.Uint32( framed )
	if uint32( len(framed) - lengthBytes ) < length {
		return nil, fmt.Errorf("Invalid data length: header says %d, stream has %d bytes",
			length, len(framed) - lengthBytes)
	}
	return framed[ lengthBytes : lengthBytes + int(length) ], nil
}
