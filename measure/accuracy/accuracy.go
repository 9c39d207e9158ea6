package accuracy

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixed/fixed"
)

const (
	defaultRadius    = 1000
	defaultSteps     = 4096
	defaultHarmonics = 16

	// maxSafeComponent bounds the HypotError grid to inputs whose squared
	// sum stays inside 16 bits (a² + b² < 2²⁴).
	maxSafeComponent = 2800
)

// Config holds measurement parameters. Zero values select defaults.
type Config struct {
	// Radius is the sweep radius for Atan2Error, in Q8.8 units.
	Radius int
	// Steps is the number of sweep directions for Atan2Error.
	Steps int
	// Harmonics is the highest harmonic SinePurity accumulates into THD.
	Harmonics int
}

func normalizeConfig(cfg Config) Config {
	if cfg.Radius <= 0 {
		cfg.Radius = defaultRadius
	}
	if cfg.Radius > math.MaxInt16 {
		cfg.Radius = math.MaxInt16
	}
	if cfg.Steps <= 0 {
		cfg.Steps = defaultSteps
	}
	if cfg.Harmonics <= 0 {
		cfg.Harmonics = defaultHarmonics
	}
	return cfg
}

// ErrorStats summarizes the deviation of a fixed-point routine from its
// float64 reference. Units are the routine's own output units.
type ErrorStats struct {
	Max     float64
	RMS     float64
	Samples int
}

func statsFrom(errs []float64) ErrorStats {
	if len(errs) == 0 {
		return ErrorStats{}
	}
	return ErrorStats{
		Max:     vecmath.MaxAbs(errs),
		RMS:     math.Sqrt(vecmath.DotProduct(errs, errs) / float64(len(errs))),
		Samples: len(errs),
	}
}

// SineError measures fixed.Sin against math.Sin over all 256 angles.
func SineError() ErrorStats {
	errs := make([]float64, 256)
	for a := range 256 {
		got := float64(fixed.Sin(fixed.Angle(a)))
		want := 256 * math.Sin(float64(a)*(2*math.Pi/256))
		errs[a] = got - want
	}
	return statsFrom(errs)
}

// CosineError measures fixed.Cos against math.Cos over all 256 angles.
func CosineError() ErrorStats {
	errs := make([]float64, 256)
	for a := range 256 {
		got := float64(fixed.Cos(fixed.Angle(a)))
		want := 256 * math.Cos(float64(a)*(2*math.Pi/256))
		errs[a] = got - want
	}
	return statsFrom(errs)
}

// Atan2Error measures fixed.Atan2 against math.Atan2 over Config.Steps
// directions at Config.Radius, reporting wrapped angular error in binary
// angle units.
func Atan2Error(cfg Config) ErrorStats {
	cfg = normalizeConfig(cfg)

	errs := make([]float64, 0, cfg.Steps)
	r := float64(cfg.Radius)
	for k := range cfg.Steps {
		theta := float64(k) * (2 * math.Pi / float64(cfg.Steps))
		x := int(math.Round(r * math.Cos(theta)))
		y := int(math.Round(r * math.Sin(theta)))
		if x == 0 && y == 0 {
			continue
		}

		got := float64(fixed.Atan2(fixed.Q8(y), fixed.Q8(x)))
		want := math.Atan2(float64(y), float64(x))
		if want < 0 {
			want += 2 * math.Pi
		}
		want *= 256 / (2 * math.Pi)

		errs = append(errs, wrapAngleDiff(got, want))
	}
	return statsFrom(errs)
}

// wrapAngleDiff returns the shortest signed distance from want to got on
// the wrapping 256-unit circle, in [-128, 128). math.Mod keeps the sign of
// the dividend, so the remainder is lifted into [0, 256) before recentering.
func wrapAngleDiff(got, want float64) float64 {
	diff := math.Mod(got-want+128, 256)
	if diff < 0 {
		diff += 256
	}
	return diff - 128
}

// HypotError measures fixed.Hypot against math.Hypot over a coprime-stride
// grid of the overflow-safe first quadrant.
func HypotError() ErrorStats {
	var errs []float64
	for a := 0; a < maxSafeComponent; a += 37 {
		for b := 0; b < maxSafeComponent; b += 41 {
			if a*a+b*b >= 1<<24 {
				continue
			}
			got := float64(fixed.Hypot(fixed.Q8(a), fixed.Q8(b)))
			errs = append(errs, got-math.Hypot(float64(a), float64(b)))
		}
	}
	return statsFrom(errs)
}
