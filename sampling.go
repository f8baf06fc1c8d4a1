package wardrobe

import (
	"math"
	"math/rand/v2"
)

// Sampling intervals tuned for edit reliability. Values below the lower
// bounds produce near-identical variations; values above the upper bounds
// drift away from the reference imagery.
const (
	TemperatureMin = 0.20
	TemperatureMax = 0.35
	TopPMin        = 0.70
	TopPMax        = 0.85
)

// Rand is the source of uniform draws used when sampling values are left
// unset. It exists so tests can substitute a deterministic source.
type Rand interface {
	Float64() float64
}

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }

// SystemRand returns a Rand backed by the process-global entropy source.
func SystemRand() Rand { return systemRand{} }

// ClampedRandom draws a uniform value from the closed interval [min, max],
// rounded to 4 decimal places.
func ClampedRandom(r Rand, min, max float64) float64 {
	return round4(min + r.Float64()*(max-min))
}

// Schedule returns count temperature values spread around base. The spread
// window [base-spread, base+spread] is intersected with [min, max]; when the
// window collapses, count copies of its lower edge are returned, otherwise
// the values interpolate linearly across it, endpoints included.
//
// All returned values lie in [min, max] and are non-decreasing, rounded to
// 4 decimal places. For count <= 1 the result is base clamped into [min, max].
func Schedule(base float64, count int, min, max, spread float64) []float64 {
	if count <= 1 {
		return []float64{round4(clamp(base, min, max))}
	}

	lower := math.Max(min, base-spread)
	upper := math.Min(max, base+spread)
	if upper <= lower {
		values := make([]float64, count)
		for i := range values {
			values[i] = round4(lower)
		}
		return values
	}

	step := (upper - lower) / float64(count-1)
	values := make([]float64, count)
	for i := range values {
		values[i] = round4(lower + step*float64(i))
	}
	return values
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(v, max))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
