package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Gradient noise over a fixed lattice of random unit vectors. Integer lattice
// points are hashed to a gradient through a single shuffled permutation table
// (perm[x] + perm[y]), so no 2D gradient grid is stored.

// GradientVector is a unit 2D vector (cos θ, sin θ).
type GradientVector = mgl32.Vec2

// IndexMode selects how integer lattice coordinates wrap into the table.
type IndexMode int

const (
	// IndexBitmask wraps with i & (N-1).
	IndexBitmask IndexMode = iota
	// IndexModulo wraps with the Euclidean remainder of i / N.
	IndexModulo
)

func (m IndexMode) String() string {
	switch m {
	case IndexBitmask:
		return "bitmask"
	case IndexModulo:
		return "modulo"
	default:
		return "unknown"
	}
}

// Options configures a Field. Zero value is bitmask indexing with cubic easing.
type Options struct {
	Index IndexMode
	Ease  EaseMode
}

// ErrInvalidLattice is returned when gradient and permutation tables do not
// describe a valid lattice.
var ErrInvalidLattice = errors.New("invalid lattice")

// Field is an immutable gradient lattice. It is safe for concurrent use.
type Field struct {
	gradients   []GradientVector
	permutation []int32
	mask        int32
	opts        Options
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// New draws n random gradients and a random permutation of 0..n-1 from rng.
// n must be a power of two no smaller than 2.
func New(n int, rng *rand.Rand, opts Options) *Field {
	if n < 2 || !IsPowerOfTwo(n) || n > math.MaxInt32 {
		panic(fmt.Sprintf("noise: lattice size %d is not a power of two >= 2", n))
	}
	if rng == nil {
		panic("noise: nil random source")
	}

	f := &Field{
		gradients:   make([]GradientVector, n),
		permutation: make([]int32, n),
		mask:        int32(n - 1),
		opts:        opts,
	}
	for i := range f.gradients {
		f.gradients[i] = randomGradient(rng)
	}
	for i := range f.permutation {
		f.permutation[i] = int32(i)
	}
	rng.Shuffle(n, func(i, j int) {
		f.permutation[i], f.permutation[j] = f.permutation[j], f.permutation[i]
	})
	return f
}

// FromTables builds a Field from explicit tables. Both slices are copied.
func FromTables(gradients []GradientVector, permutation []int, opts Options) (*Field, error) {
	n := len(gradients)
	if n != len(permutation) {
		return nil, fmt.Errorf("%w: %d gradients, %d permutation entries", ErrInvalidLattice, n, len(permutation))
	}
	if n < 2 || !IsPowerOfTwo(n) || n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: size %d is not a power of two >= 2", ErrInvalidLattice, n)
	}

	seen := make([]bool, n)
	perm := make([]int32, n)
	for i, p := range permutation {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: permutation[%d] = %d out of range", ErrInvalidLattice, i, p)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: permutation repeats %d", ErrInvalidLattice, p)
		}
		seen[p] = true
		perm[i] = int32(p)
	}

	return &Field{
		gradients:   append([]GradientVector(nil), gradients...),
		permutation: perm,
		mask:        int32(n - 1),
		opts:        opts,
	}, nil
}

func randomGradient(rng *rand.Rand) GradientVector {
	theta := 2 * math.Pi * rng.Float64()
	return GradientVector{float32(math.Cos(theta)), float32(math.Sin(theta))}
}

// Size returns the lattice size N.
func (f *Field) Size() int { return len(f.gradients) }

// Options returns the configuration the field was built with.
func (f *Field) Options() Options { return f.opts }

// Permutation returns a copy of the permutation table.
func (f *Field) Permutation() []int {
	out := make([]int, len(f.permutation))
	for i, p := range f.permutation {
		out[i] = int(p)
	}
	return out
}

func (f *Field) wrap(i int32) int32 {
	if f.opts.Index == IndexModulo {
		n := f.mask + 1
		r := i % n
		if r < 0 {
			r += n
		}
		return r
	}
	return i & f.mask
}

// Gradient returns the gradient hashed to integer lattice point (ix, iy).
func (f *Field) Gradient(ix, iy int32) GradientVector {
	h := f.permutation[f.wrap(ix)] + f.permutation[f.wrap(iy)]
	return f.gradients[f.wrap(h)]
}

// Evaluate returns the noise value at (x, y). The result lies roughly in
// [-1, 1] and is not clamped.
func (f *Field) Evaluate(x, y float32) float32 {
	x0f := float32(math.Floor(float64(x)))
	y0f := float32(math.Floor(float64(y)))
	x0, y0 := int32(x0f), int32(y0f)
	x1, y1 := x0+1, y0+1

	p := mgl32.Vec2{x, y}
	w00 := f.Gradient(x0, y0).Dot(p.Sub(mgl32.Vec2{x0f, y0f}))
	w10 := f.Gradient(x1, y0).Dot(p.Sub(mgl32.Vec2{x0f + 1, y0f}))
	w01 := f.Gradient(x0, y1).Dot(p.Sub(mgl32.Vec2{x0f, y0f + 1}))
	w11 := f.Gradient(x1, y1).Dot(p.Sub(mgl32.Vec2{x0f + 1, y0f + 1}))

	sx := Ease(f.opts.Ease, x-x0f)
	sy := Ease(f.opts.Ease, y-y0f)
	return Lerp(Lerp(w00, w10, sx), Lerp(w01, w11, sx), sy)
}

// Sample implements Sampler.
func (f *Field) Sample(x, y float32) float32 {
	return f.Evaluate(x, y)
}
