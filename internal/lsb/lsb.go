package lsb

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	ErrCapacity     = errors.New("bit sequence exceeds carrier channels")
	ErrInvalidColor = errors.New("invalid 8-bit color value")
	ErrInvalidBit   = errors.New("bit must be 0 or 1")
)

// ModifyColor replaces the least-significant bit of color with bit.
func ModifyColor(color, bit int) (uint8, error) {
	if color < 0 || color > 255 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColor, color)
	}
	if bit != 0 && bit != 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBit, bit)
	}
	return uint8((color &^ 1) | bit), nil
}

// Embed writes bits into a copy of buf at the positions yielded by indices,
// one bit per position, until either runs out. buf itself is left untouched.
func Embed(buf []uint8, bits []byte, indices iter.Seq[int]) ([]uint8, error) {
	if len(bits) > len(buf) {
		return nil, fmt.Errorf("%w: %d bits > %d channels", ErrCapacity, len(bits), len(buf))
	}
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("%w: %d at %d", ErrInvalidBit, b, i)
		}
	}
	out := slices.Clone(buf)
	if len(bits) == 0 {
		return out, nil
	}
	n := 0
	for index := range indices {
		v, err := ModifyColor(int(out[index]), int(bits[n]))
		if err != nil {
			return nil, err
		}
		out[index] = v
		n++
		if n == len(bits) {
			break
		}
	}
	return out, nil
}

// Extract reads the least-significant bit at each position yielded by
// indices. After every complete byte, stop is consulted with the bits read
// so far and reading ends as soon as it returns true. A nil stop reads every
// position.
func Extract(buf []uint8, indices iter.Seq[int], stop func(bits []byte) bool) []byte {
	var bits []byte
	for index := range indices {
		bits = append(bits, buf[index]%2)
		if stop != nil && len(bits)%8 == 0 && stop(bits) {
			break
		}
	}
	return bits
}
