package ecc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yyyoichi/stegano/internal/bitconv"
)

func TestEncodeDecode(t *testing.T) {
	test := []struct {
		name string
		text string
	}{
		{"empty payload", ""},
		{"short", "hi"},
		{"sentence", "the quick brown fox"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			bits := bitconv.Encode(tt.text)
			encoded := Encode(bits)
			assert.Len(t, encoded, EncodedLen(len(bits)))
			assert.Zero(t, len(encoded)%codeBits)

			decoded := Decode(encoded)
			assert.GreaterOrEqual(t, len(decoded), len(bits))
			assert.Equal(t, bits, decoded[:len(bits)])

			payload, ok := bitconv.Terminated(decoded)
			assert.True(t, ok)
			assert.Equal(t, tt.text, bitconv.Decode(payload))
		})
	}
}

func TestCorrection(t *testing.T) {
	bits := bitconv.Encode("golay")
	encoded := Encode(bits)
	// flip up to 3 bits in every codeword
	for start := 0; start+codeBits <= len(encoded); start += codeBits {
		for _, k := range []int{1, 9, 20} {
			encoded[start+k] ^= 1
		}
	}
	decoded := Decode(encoded)
	assert.Equal(t, bits, decoded[:len(bits)])
}

func TestCodewordSize(t *testing.T) {
	// "abc" plus the end marker is 32 bits, three codewords
	bits := bitconv.Encode("abc")
	assert.Equal(t, 3*codeBits, EncodedLen(len(bits)))
	encoded := Encode(bits)
	assert.Len(t, encoded, 69)
	assert.Len(t, Decode(encoded), 3*dataBits)
	assert.Len(t, Decode(encoded[:68]), 2*dataBits)
}

func TestDecodeTrailingBits(t *testing.T) {
	encoded := Encode(bitconv.Encode("a"))
	withTail := append(encoded, 1, 0, 1)
	assert.Equal(t, Decode(encoded), Decode(withTail))
	assert.Nil(t, Decode([]byte{1, 0, 1}))
	assert.Nil(t, Encode(nil))
}
