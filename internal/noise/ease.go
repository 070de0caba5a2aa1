package noise

// EaseMode selects the smoothing curve applied to the fractional cell
// position before interpolation.
type EaseMode int

const (
	// EaseCubic is the classic smoothstep 3t^2 - 2t^3.
	EaseCubic EaseMode = iota
	// EaseQuintic is 6t^5 - 15t^4 + 10t^3, flat in first and second derivative at 0 and 1.
	EaseQuintic
)

func (m EaseMode) String() string {
	switch m {
	case EaseCubic:
		return "cubic"
	case EaseQuintic:
		return "quintic"
	default:
		return "unknown"
	}
}

// Cubic returns t^2 (3 - 2t).
func Cubic(t float32) float32 {
	return t * t * (3 - 2*t)
}

// Quintic returns t^3 (t (6t - 15) + 10).
func Quintic(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Ease applies the curve selected by mode.
func Ease(mode EaseMode, t float32) float32 {
	if mode == EaseQuintic {
		return Quintic(t)
	}
	return Cubic(t)
}

// Lerp performs linear interpolation
func Lerp(a, b, w float32) float32 {
	return a + w*(b-a)
}
