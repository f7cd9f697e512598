// Command rgbconv converts a standard image file into the headerless raw
// RGB format the texquad image loader consumes: width*height*3 bytes of
// interleaved 8-bit R, G, B, row-major from the top row.
//
// Usage:
//
//	go run ./cmd/rgbconv -in picture.png -out example/texture.rgb
//
// The image is scaled to the target dimensions, so any source size works.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/go-theft-auto/texquad"
)

func main() {
	in := flag.String("in", "", "input image (PNG or JPEG)")
	out := flag.String("out", "texture.rgb", "output raw RGB file")
	width := flag.Int("width", 512, "output width in pixels")
	height := flag.Int("height", 512, "output height in pixels")
	flag.Parse()

	if err := run(*in, *out, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in, out string, width, height int) error {
	if in == "" {
		return fmt.Errorf("missing -in flag")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %q: %w", in, err)
	}

	// Scale to the target size into an RGBA canvas, then strip the alpha
	// channel to produce the interleaved RGB blob.
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	raw := stripAlpha(scaled)
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("wrote %s (%dx%d, %d bytes)\n", out, width, height, len(raw))
	return nil
}

// stripAlpha converts an RGBA image into interleaved raw RGB bytes.
func stripAlpha(img *image.RGBA) []byte {
	b := img.Bounds()
	raw := make([]byte, 0, b.Dx()*b.Dy()*texquad.BytesPerPixel)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			raw = append(raw, row[i], row[i+1], row[i+2])
		}
	}
	return raw
}
