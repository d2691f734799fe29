// Package pixels adapts images to the flat RGB channel buffer the codec works
// on and back.
package pixels

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Source holds an image flattened into R, G, B channel values in row-major
// order. Alpha is discarded.
type Source struct {
	bounds        image.Rectangle
	width, height int
	area          int

	// R, G, B, R, G, B, ...
	channels []uint8
}

func New(src image.Image) Source {
	var s Source
	s.bounds = src.Bounds()
	s.width, s.height = s.bounds.Dx(), s.bounds.Dy()
	s.area = s.width * s.height
	s.channels = make([]uint8, 0, s.area*3)

	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(s.bounds)
		draw.Draw(nrgba, s.bounds, src, s.bounds.Min, draw.Src)
	}
	for y := s.bounds.Min.Y; y < s.bounds.Max.Y; y++ {
		for x := s.bounds.Min.X; x < s.bounds.Max.X; x++ {
			c := nrgba.NRGBAAt(x, y)
			s.channels = append(s.channels, c.R, c.G, c.B)
		}
	}
	return s
}

// Channels returns the flat channel buffer. len(Channels()) is always a
// multiple of 3.
func (s Source) Channels() []uint8 { return s.channels }

func (s Source) Bounds() image.Rectangle { return s.bounds }

// Build returns an opaque image of the same bounds from channels, which must
// hold 3 values per pixel.
func (s Source) Build(channels []uint8) image.Image {
	dist := image.NewNRGBA(s.bounds)
	idx := 0
	for y := s.bounds.Min.Y; y < s.bounds.Max.Y; y++ {
		for x := s.bounds.Min.X; x < s.bounds.Max.X; x++ {
			dist.SetNRGBA(x, y, color.NRGBA{
				R: channels[idx],
				G: channels[idx+1],
				B: channels[idx+2],
				A: 0xff,
			})
			idx += 3
		}
	}
	return dist
}
