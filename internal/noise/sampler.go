package noise

// Sampler produces a scalar for a continuous 2D coordinate.
type Sampler interface {
	Sample(x, y float32) float32
}

// Constant is a Sampler that ignores its input.
type Constant float32

// Sample implements Sampler.
func (c Constant) Sample(x, y float32) float32 {
	return float32(c)
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func(x, y float32) float32

// Sample implements Sampler.
func (fn SamplerFunc) Sample(x, y float32) float32 {
	return fn(x, y)
}
