package raster

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"pnoise/internal/noise"
)

// Grid maps pixel indices to field coordinates.
type Grid struct {
	Size int // output is Size x Size pixels

	// Step is the field distance between adjacent pixels. Ignored when
	// Resolution is set.
	Step float32
	// Resolution, when positive, samples pixel p at p / Resolution.
	Resolution float32
}

// Coord returns the field coordinate of pixel index p.
func (g Grid) Coord(p int) float32 {
	if g.Resolution > 0 {
		return float32(p) / g.Resolution
	}
	return float32(p) * g.Step
}

// SampleBuffer holds raw samples in row-major order, top row first, along
// with the smallest and largest value observed.
type SampleBuffer struct {
	Size int
	Data []float32
	Min  float32
	Max  float32
}

// At returns the sample for pixel (x, y).
func (b *SampleBuffer) At(x, y int) float32 {
	return b.Data[y*b.Size+x]
}

// Rasterize samples s at every pixel of g. Rows are filled concurrently;
// each row keeps its own extremes, merged once all rows are done.
func Rasterize(s noise.Sampler, g Grid) *SampleBuffer {
	if g.Size <= 0 {
		panic(fmt.Sprintf("raster: invalid grid size %d", g.Size))
	}

	n := g.Size
	buf := &SampleBuffer{
		Size: n,
		Data: make([]float32, n*n),
	}
	rowMin := make([]float32, n)
	rowMax := make([]float32, n)

	parallel.For(n, func(py, _ int) {
		fy := g.Coord(py)
		row := buf.Data[py*n : (py+1)*n]
		lo := float32(math.MaxFloat32)
		hi := float32(-math.MaxFloat32)
		for px := range row {
			v := s.Sample(g.Coord(px), fy)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			row[px] = v
		}
		rowMin[py] = lo
		rowMax[py] = hi
	})

	buf.Min, buf.Max = rowMin[0], rowMax[0]
	for i := 1; i < n; i++ {
		if rowMin[i] < buf.Min {
			buf.Min = rowMin[i]
		}
		if rowMax[i] > buf.Max {
			buf.Max = rowMax[i]
		}
	}
	return buf
}

// Render rasterizes s over g and normalizes the result.
func Render(s noise.Sampler, g Grid) *PixelBuffer {
	return Normalize(Rasterize(s, g))
}
