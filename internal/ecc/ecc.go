// Package ecc protects a bit sequence with the binary Golay code.
// Every 12 data bits become a 23-bit codeword that survives up to 3 flipped
// bits.
package ecc

import (
	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

const (
	dataBits = 12
	codeBits = 23
)

// EncodedLen returns the number of bits Encode produces for size input bits.
func EncodedLen(size int) int {
	return golay.EncodedBits(size)
}

// Encode returns the Golay encoding of bits. Input and output hold one bit
// (0 or 1) per element.
func Encode(bits []byte) []byte {
	if len(bits) == 0 {
		return nil
	}
	data, size := pack(bits)
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(data, size)
	return unpack(encoded, enc.Bits())
}

// Decode corrects and strips the parity of a Golay encoded sequence. A
// trailing incomplete codeword is ignored, so the result always holds a
// multiple of 12 bits.
func Decode(bits []byte) []byte {
	n := len(bits) - len(bits)%codeBits
	if n == 0 {
		return nil
	}
	data, size := pack(bits[:n])
	var decoded []uint64
	dec := golay.NewDecoder(data, size)
	_ = dec.Decode(&decoded)
	return unpack(decoded, n/codeBits*dataBits)
}

func pack(bits []byte) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range bits {
		w.WriteBool(b != 0)
	}
	return w.Data(), w.Bits()
}

func unpack(data []uint64, size int) []byte {
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(size)
	out := make([]byte, size)
	for i := range out {
		if bit, _ := r.ReadBitAt(i); bit {
			out[i] = 1
		}
	}
	return out
}
