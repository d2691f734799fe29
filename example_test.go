package stegano_test

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/yyyoichi/stegano"
)

func Example_stegano() {
	// Create a simple gradient image (40x40 pixels)
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			r := uint8(x * 255 / 40)
			g := uint8(y * 255 / 40)
			b := uint8((x + y) * 255 / 80)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}

	s, err := stegano.New(
		stegano.WithCipher("apple"),
		stegano.WithOffset(5),
	)
	if err != nil {
		fmt.Printf("Error creating codec: %v\n", err)
		return
	}

	ctx := context.Background()
	encoded, key, err := s.EncodeImage(ctx, img, "Meet at noon")
	if err != nil {
		fmt.Printf("Error encoding: %v\n", err)
		return
	}
	fmt.Printf("Key: interval=%d offset=%d\n", key.Interval, key.Offset)

	text, err := s.DecodeImage(ctx, encoded, key)
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}
	fmt.Println(text)

	// Output:
	// Key: interval=46 offset=5
	// Meet at noon
}

func ExampleEncode() {
	buf := make([]uint8, 30)
	enc, err := stegano.Encode(context.Background(), buf, "hi")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(enc.Key.Interval, enc.Key.Offset)

	text, _ := stegano.Decode(context.Background(), enc.Buffer, enc.Key)
	fmt.Println(text)
	// Output:
	// 1 0
	// hi
}

func ExampleCapacity() {
	// a 640x480 RGB image
	fmt.Println(stegano.Capacity(640 * 480 * 3))
	// Output:
	// 115199
}
