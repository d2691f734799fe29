package bench_test

import (
	"strings"
	"testing"

	"github.com/yyyoichi/stegano"
)

// BenchmarkEncode_FHD runs a table-driven set of encode benchmarks for FHD carriers
func BenchmarkEncode_FHD(b *testing.B) {
	test := []struct {
		name string
		opts []stegano.Option
	}{
		{name: "default"},
		{name: "interval", opts: []stegano.Option{
			stegano.WithInterval(7),
			stegano.WithOffset(3),
		}},
		{name: "cipher", opts: []stegano.Option{
			stegano.WithCipher("steganography"),
		}},
		{name: "ecc", opts: []stegano.Option{
			stegano.WithECC(),
		}},
	}

	buf := createBuffer(1920, 1080)
	text := createText(4096)
	ctx := b.Context()

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			s, err := stegano.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Stegano instance (%s): %v", tt.name, err)
			}
			for b.Loop() {
				enc, err := s.Encode(ctx, buf, text)
				if err != nil {
					b.Fatalf("Failed to encode (%s): %v", tt.name, err)
				}
				_ = enc
			}
		})
	}
}

// BenchmarkDecode_FHD measures extraction, which stops at the end-of-text
// marker unless ECC is enabled.
func BenchmarkDecode_FHD(b *testing.B) {
	test := []struct {
		name string
		opts []stegano.Option
	}{
		{name: "default"},
		{name: "ecc", opts: []stegano.Option{stegano.WithECC()}},
	}

	buf := createBuffer(1920, 1080)
	text := createText(4096)
	ctx := b.Context()

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			s, err := stegano.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Stegano instance (%s): %v", tt.name, err)
			}
			enc, err := s.Encode(ctx, buf, text)
			if err != nil {
				b.Fatalf("Failed to encode (%s): %v", tt.name, err)
			}
			for b.Loop() {
				got, err := s.Decode(ctx, enc.Buffer, enc.Key)
				if err != nil {
					b.Fatalf("Failed to decode (%s): %v", tt.name, err)
				}
				if got != text {
					b.Fatalf("Decoded text mismatch (%s)", tt.name)
				}
			}
		})
	}
}

// createBuffer creates a widthxheight RGB channel buffer with a gradient pattern
func createBuffer(width, height int) []uint8 {
	buf := make([]uint8, 0, width*height*3)
	for y := range height {
		for x := range width {
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			bl := uint8(((x + y) * 255) / (width + height))
			buf = append(buf, r, g, bl)
		}
	}
	return buf
}

func createText(n int) string {
	return strings.Repeat("lorem ipsum ", n/12+1)[:n]
}
