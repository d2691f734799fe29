// Package stegano hides text in the least-significant bits of RGB channel
// values.
//
// The text, optionally scrambled by a TextCipher, is converted to 8 bits per
// character followed by an end-of-text marker (0b00000011). The bits are
// written at evenly strided carrier positions; the stride is kept coprime with
// the carrier length so positions never repeat when the stride wraps around.
// The stride and starting offset form the Key that Decode needs.
package stegano

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/yyyoichi/stegano/internal/bitconv"
	"github.com/yyyoichi/stegano/internal/distribute"
	"github.com/yyyoichi/stegano/internal/ecc"
	"github.com/yyyoichi/stegano/internal/lsb"
	"github.com/yyyoichi/stegano/internal/pixels"
)

var (
	ErrTooSmallCarrier = errors.New("carrier is too small for the text")
	ErrInvalidKey      = errors.New("invalid distribution key")
	ErrInvalidBuffer   = errors.New("buffer is not 3 channels per pixel")
)

// Encode embeds text into buf with the specified options.
// This is a convenience function that creates a Stegano instance and calls its Encode method.
func Encode(ctx context.Context, buf []uint8, text string, opts ...Option) (*Encoded, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Encode(ctx, buf, text)
}

// Decode extracts text from buf with the specified options.
// This is a convenience function that creates a Stegano instance and calls its Decode method.
func Decode(ctx context.Context, buf []uint8, key Key, opts ...Option) (string, error) {
	s, err := New(opts...)
	if err != nil {
		return "", err
	}
	return s.Decode(ctx, buf, key)
}

// Capacity returns the number of characters that fit into a carrier of the
// given number of channels, leaving room for the end-of-text marker.
func Capacity(channels int) int {
	if n := channels/8 - 1; n > 0 {
		return n
	}
	return 0
}

type Stegano struct {
	interval, offset int
	cipher           TextCipher
	ecc              bool
}

// New initializes a steganography codec.
// Without options the payload is spread evenly from offset 0, unciphered and
// without error correction.
func New(opts ...Option) (*Stegano, error) {
	s := new(Stegano)
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Encode embeds text into a copy of buf.
//
// Process:
//  1. Enciphers the text if a cipher is configured.
//  2. Converts it to bits and appends the end-of-text marker.
//  3. Golay-encodes the bits if ECC is enabled.
//  4. Distributes the bits over the channels with the configured interval and offset.
//  5. Replaces the least-significant bit of each selected channel.
//
// The returned Key holds the interval before coprime correction and the
// offset as configured; Decode applies the same correction.
// Returns an error wrapping ErrTooSmallCarrier if the text does not fit.
func (s *Stegano) Encode(ctx context.Context, buf []uint8, text string) (*Encoded, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(buf)%3 != 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBuffer, len(buf))
	}
	if s.cipher != nil {
		var err error
		if text, err = s.cipher.Encode(text); err != nil {
			return nil, fmt.Errorf("encipher: %w", err)
		}
	}
	bits := bitconv.Encode(text)
	if s.ecc {
		bits = ecc.Encode(bits)
	}
	if len(bits) > len(buf) {
		return nil, fmt.Errorf("%w:%w", ErrTooSmallCarrier, lsb.ErrCapacity)
	}
	key := Key{Interval: s.interval, Offset: s.offset}
	if key.Interval == 0 {
		key.Interval = len(buf) / len(bits)
	}
	d, err := distribution(len(bits), len(buf), key)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := lsb.Embed(buf, bits, d.All())
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrTooSmallCarrier, err)
	}
	return &Encoded{Buffer: out, Key: key}, nil
}

// Decode extracts the text embedded in buf at the positions described by key.
//
// Reading stops at the first end-of-text marker. If no marker is found the
// result is an empty string and no error: a carrier without a payload and a
// wrong key look the same.
func (s *Stegano) Decode(ctx context.Context, buf []uint8, key Key) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(buf)%3 != 0 {
		return "", fmt.Errorf("%w: %d channels", ErrInvalidBuffer, len(buf))
	}
	if len(buf) == 0 {
		return "", nil
	}
	d, err := distribution(len(buf), len(buf), key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var payload []byte
	var ok bool
	if s.ecc {
		bits := lsb.Extract(buf, d.All(), nil)
		payload, ok = bitconv.Terminated(ecc.Decode(bits))
	} else {
		bits := lsb.Extract(buf, d.All(), bitconv.IsSentinel)
		payload, ok = bitconv.Terminated(bits)
	}
	if !ok {
		return "", nil
	}
	text := bitconv.Decode(payload)
	if s.cipher != nil {
		if text, err = s.cipher.Decode(text); err != nil {
			return "", fmt.Errorf("decipher: %w", err)
		}
	}
	return text, nil
}

// EncodeImage embeds text into the RGB channels of src. Alpha is dropped and
// the returned image is opaque.
func (s *Stegano) EncodeImage(ctx context.Context, src image.Image, text string) (image.Image, Key, error) {
	p := pixels.New(src)
	enc, err := s.Encode(ctx, p.Channels(), text)
	if err != nil {
		return nil, Key{}, err
	}
	return p.Build(enc.Buffer), enc.Key, nil
}

// DecodeImage extracts text from the RGB channels of src.
func (s *Stegano) DecodeImage(ctx context.Context, src image.Image, key Key) (string, error) {
	return s.Decode(ctx, pixels.New(src).Channels(), key)
}

func distribution(dataLen, carrierLen int, key Key) (*distribute.Distribution, error) {
	d, err := distribute.New(dataLen, carrierLen, key.Interval, key.Offset)
	switch {
	case errors.Is(err, distribute.ErrCapacity):
		return nil, fmt.Errorf("%w:%w", ErrTooSmallCarrier, err)
	case err != nil:
		return nil, fmt.Errorf("%w:%w", ErrInvalidKey, err)
	}
	return d, nil
}
