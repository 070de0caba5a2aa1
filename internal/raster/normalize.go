package raster

import "math"

// MidGray is emitted for every pixel when all samples are equal.
const MidGray = 128

// PixelBuffer is an 8-bit grayscale image, row-major, top row first.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// At returns the intensity of pixel (x, y).
func (p *PixelBuffer) At(x, y int) byte {
	return p.Pix[y*p.Width+x]
}

// Normalize maps [Min, Max] of b linearly onto [0, 255], rounding to the
// nearest integer.
func Normalize(b *SampleBuffer) *PixelBuffer {
	out := &PixelBuffer{
		Width:  b.Size,
		Height: b.Size,
		Pix:    make([]byte, len(b.Data)),
	}

	span := float64(b.Max) - float64(b.Min)
	if !(span > 0) {
		for i := range out.Pix {
			out.Pix[i] = MidGray
		}
		return out
	}

	lo := float64(b.Min)
	for i, v := range b.Data {
		out.Pix[i] = toByte(math.Round((float64(v) - lo) / span * 255))
	}
	return out
}

func toByte(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return byte(v)
	}
}
