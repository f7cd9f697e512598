package texquad

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// BytesPerPixel is the channel count of the raw image format: interleaved
// 8-bit R, G, B with no header and no padding, row-major from the top row.
const BytesPerPixel = 3

// ReadRawRGB reads a headerless raw RGB image of the given dimensions.
//
// The destination buffer is allocated at exactly width*height*BytesPerPixel
// bytes and the read never overruns it. A file shorter than the expected
// size is not an error: the returned byte count tells how much was actually
// read and the remainder of the buffer stays zero, so a truncated file
// yields a partially black texture rather than a crash. Only failing to
// open or read the file at all is reported as an error.
func ReadRawRGB(path string, width, height int) ([]byte, int, error) {
	if width <= 0 || height <= 0 {
		return nil, 0, fmt.Errorf("raw image %q: invalid dimensions %dx%d", path, width, height)
	}

	buf := make([]byte, width*height*BytesPerPixel)

	f, err := os.Open(path)
	if err != nil {
		return buf, 0, fmt.Errorf("open raw image %q: %w", path, err)
	}
	defer f.Close()

	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return buf, n, fmt.Errorf("read raw image %q: %w", path, err)
	}
	return buf, n, nil
}
