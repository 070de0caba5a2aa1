package config

import (
	"pnoise/internal/noise"
	"pnoise/internal/raster"
)

// Variant describes one rendered image: lattice, sampling grid and
// optional octave sum.
type Variant struct {
	Name        string
	LatticeSize int
	Options     noise.Options
	Grid        raster.Grid
	Octaves     *noise.Octaves // nil renders the plain field
}

// Sampler builds the sampler for this variant on top of f.
func (v Variant) Sampler(f *noise.Field) noise.Sampler {
	if v.Octaves == nil {
		return f
	}
	return noise.NewFractal(f, *v.Octaves)
}

func (v Variant) clone() Variant {
	if v.Octaves != nil {
		o := *v.Octaves
		v.Octaves = &o
	}
	return v
}

// presets in render order; the two octave variants differ only in their
// (Count, Frequency, Amplitude) triple.
var presets = []Variant{
	{
		Name:        "basic",
		LatticeSize: 256,
		Options:     noise.Options{Index: noise.IndexBitmask, Ease: noise.EaseCubic},
		Grid:        raster.Grid{Size: 256, Step: 0.1},
	},
	{
		Name:        "smooth",
		LatticeSize: 2048,
		Options:     noise.Options{Index: noise.IndexModulo, Ease: noise.EaseQuintic},
		Grid:        raster.Grid{Size: 2048, Resolution: 64},
	},
	{
		Name:        "fractal",
		LatticeSize: 2048,
		Options:     noise.Options{Index: noise.IndexModulo, Ease: noise.EaseQuintic},
		Grid:        raster.Grid{Size: 2048, Resolution: 256},
		Octaves:     &noise.Octaves{Count: 5, Frequency: 2, Amplitude: 1},
	},
	{
		Name:        "turbulence",
		LatticeSize: 2048,
		Options:     noise.Options{Index: noise.IndexModulo, Ease: noise.EaseQuintic},
		Grid:        raster.Grid{Size: 2048, Resolution: 256},
		Octaves:     &noise.Octaves{Count: 7, Frequency: 4, Amplitude: 1.5},
	},
}

// Variants returns a copy of every preset in render order.
func Variants() []Variant {
	out := make([]Variant, len(presets))
	for i, v := range presets {
		out[i] = v.clone()
	}
	return out
}
