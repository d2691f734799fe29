package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// saveImage writes img in the lossless format implied by the extension of
// path. JPEG is refused since compression destroys the low bits.
func saveImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	var encode func(f *os.File) error
	switch ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	case ".tif", ".tiff":
		encode = func(f *os.File) error {
			return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("unsupported output format %q (use .png, .bmp or .tiff)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return f.Close()
}
