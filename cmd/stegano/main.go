package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/yyyoichi/stegano"
	"github.com/yyyoichi/stegano/internal/pixels"
	"github.com/yyyoichi/stegano/internal/quality"
)

const usage = `usage: stegano <command> [flags]

commands:
  encode    hide text in an image
  decode    recover text from an image
  capacity  print how much text an image can hold`

func main() {
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "encode":
		return encode(ctx, args[1:], out)
	case "decode":
		return decode(ctx, args[1:], out)
	case "capacity":
		return capacity(args[1:], out)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func encode(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	in := fs.String("in", "", "carrier image (png, bmp, tiff)")
	dst := fs.String("out", "", "output image (.png, .bmp, .tiff)")
	text := fs.String("text", "", "text to hide")
	textFile := fs.String("text-file", "", "read the text from a file; non-printable characters are dropped")
	code := fs.String("cipher", "", "cycle cipher code, a word or groups of 3 digits (e.g. apple, 314202)")
	interval := fs.Int("interval", 0, "distribution interval (0 spreads evenly)")
	offset := fs.Int("offset", 0, "distribution offset")
	ecc := fs.Bool("ecc", false, "protect the text with Golay error correction")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *dst == "" {
		return errors.New("encode: -in and -out are required")
	}
	if *textFile != "" {
		b, err := os.ReadFile(*textFile)
		if err != nil {
			return err
		}
		*text = printable(string(b))
		log.Println("Loaded text", *textFile)
	}

	img, format, err := loadImage(*in)
	if err != nil {
		return err
	}
	log.Printf("Loaded %s image %s %dx%d\n", format, *in, img.Bounds().Dx(), img.Bounds().Dy())

	opts := []stegano.Option{stegano.WithInterval(*interval), stegano.WithOffset(*offset)}
	if *code != "" {
		opts = append(opts, stegano.WithCipher(*code))
	}
	if *ecc {
		opts = append(opts, stegano.WithECC())
	}
	s, err := stegano.New(opts...)
	if err != nil {
		return err
	}

	src := pixels.New(img)
	log.Printf("Text length: %d characters, capacity: %d characters\n",
		len([]rune(*text)), stegano.Capacity(len(src.Channels())))
	enc, err := s.Encode(ctx, src.Channels(), *text)
	if err != nil {
		return err
	}
	if err := saveImage(*dst, src.Build(enc.Buffer)); err != nil {
		return err
	}
	if r, err := quality.Compare(src.Channels(), enc.Buffer); err == nil {
		log.Printf("Changed channels: %d, PSNR: %.2f dB\n", r.Changed, r.PSNR)
	}

	fmt.Fprintf(out, "interval: %d\noffset: %d\n", enc.Key.Interval, enc.Key.Offset)
	log.Println("Remember these values; the text cannot be decoded without them.")
	return nil
}

func decode(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	in := fs.String("in", "", "encoded image")
	dst := fs.String("out", "", "write the text to a file instead of stdout")
	code := fs.String("cipher", "", "cycle cipher code used when encoding")
	interval := fs.Int("interval", 0, "distribution interval printed by encode")
	offset := fs.Int("offset", 0, "distribution offset printed by encode")
	ecc := fs.Bool("ecc", false, "the text was encoded with -ecc")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("decode: -in is required")
	}
	img, _, err := loadImage(*in)
	if err != nil {
		return err
	}

	var opts []stegano.Option
	if *code != "" {
		opts = append(opts, stegano.WithCipher(*code))
	}
	if *ecc {
		opts = append(opts, stegano.WithECC())
	}
	s, err := stegano.New(opts...)
	if err != nil {
		return err
	}
	text, err := s.DecodeImage(ctx, img, stegano.Key{Interval: *interval, Offset: *offset})
	if err != nil {
		return err
	}
	if text == "" {
		log.Println("No text found; check the interval and offset.")
	}
	log.Printf("Text length: %d characters\n", len([]rune(text)))

	if *dst != "" {
		if err := os.WriteFile(*dst, []byte(text), 0o644); err != nil {
			return err
		}
		log.Println("Text saved to", *dst)
		return nil
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func capacity(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("capacity", flag.ContinueOnError)
	in := fs.String("in", "", "carrier image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("capacity: -in is required")
	}
	img, _, err := loadImage(*in)
	if err != nil {
		return err
	}
	channels := img.Bounds().Dx() * img.Bounds().Dy() * 3
	_, err = fmt.Fprintf(out, "bits: %d\ncharacters: %d\n", channels, stegano.Capacity(channels))
	return err
}

// printable keeps printable ASCII and whitespace.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= ' ' && r <= '~') || strings.ContainsRune("\t\n\r\v\f", r) {
			return r
		}
		return -1
	}, s)
}
