package noise

import "math"

// Octaves describes a fractal sum over a Field. Terms run for t = 1..Count-1:
//
//	term(x·Frequency·Step(t), y·Frequency·Step(t)) · Amplitude·Decay(t)
//
// term is Evaluate, or |Evaluate| when Turbulence is set.
type Octaves struct {
	Count      int
	Frequency  float32
	Amplitude  float32
	Turbulence bool

	// Step scales the frequency of octave t. Nil means t.
	Step func(t int) float32
	// Decay scales the amplitude of octave t. Nil means 1/t².
	Decay func(t int) float32
}

// LinearStep is the default frequency step: octave t samples at t times the base frequency.
func LinearStep(t int) float32 {
	return float32(t)
}

// InverseSquareDecay is the default amplitude law, 1/t².
func InverseSquareDecay(t int) float32 {
	return 1 / float32(t*t)
}

// Fractal sums several octaves of a Field.
type Fractal struct {
	Field   *Field
	Octaves Octaves
}

// NewFractal pairs a field with an octave description.
func NewFractal(f *Field, o Octaves) *Fractal {
	return &Fractal{Field: f, Octaves: o}
}

// Sum evaluates the fractal sum at (x, y). Count below 2 yields 0.
func (fr *Fractal) Sum(x, y float32) float32 {
	o := fr.Octaves
	step := o.Step
	if step == nil {
		step = LinearStep
	}
	decay := o.Decay
	if decay == nil {
		decay = InverseSquareDecay
	}

	var sum float32
	for t := 1; t < o.Count; t++ {
		freq := o.Frequency * step(t)
		v := fr.Field.Evaluate(x*freq, y*freq)
		if o.Turbulence {
			v = float32(math.Abs(float64(v)))
		}
		sum += v * (o.Amplitude * decay(t))
	}
	return sum
}

// Sample implements Sampler.
func (fr *Fractal) Sample(x, y float32) float32 {
	return fr.Sum(x, y)
}
