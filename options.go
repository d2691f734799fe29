package stegano

import (
	"fmt"

	"github.com/yyyoichi/stegano/cyclecipher"
)

type Option func(*Stegano) error

// WithInterval sets the stride between carrier channels used by Encode.
// Zero spreads the payload evenly over the whole carrier. An interval that
// shares a factor with the carrier length is raised to the next coprime.
func WithInterval(interval int) Option {
	return func(s *Stegano) error {
		if interval < 0 {
			return fmt.Errorf("%w: interval %d", ErrInvalidKey, interval)
		}
		s.interval = interval
		return nil
	}
}

// WithOffset sets the first carrier channel used by Encode. It is reduced
// modulo the interval.
func WithOffset(offset int) Option {
	return func(s *Stegano) error {
		s.offset = offset
		return nil
	}
}

// WithCipher scrambles the text with the cycle cipher before embedding and
// restores it after extraction. code is either groups of three digits
// (interval, offset, shift) such as "314202", or a word such as "apple".
func WithCipher(code string) Option {
	return func(s *Stegano) error {
		c, err := cyclecipher.New(code)
		if err != nil {
			return fmt.Errorf("cipher code: %w", err)
		}
		s.cipher = c
		return nil
	}
}

// WithTextCipher uses a custom TextCipher in place of the cycle cipher.
func WithTextCipher(c TextCipher) Option {
	return func(s *Stegano) error {
		s.cipher = c
		return nil
	}
}

// WithECC protects the payload with the Golay(23,12) code. This roughly
// doubles the embedded size and lets extraction correct up to 3 flipped bits
// per 23-bit codeword.
// Payloads written with ECC can only be read back with ECC enabled, and
// Decode then reads every carrier channel instead of stopping at the end
// marker.
func WithECC() Option {
	return func(s *Stegano) error {
		s.ecc = true
		return nil
	}
}
