package accuracy

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixed/fixed"
)

// sineCycle is one full turn of the binary angle, which is also the exact
// period of fixed.Sin. A whole number of periods means no window is needed.
const sineCycle = 256

// PurityResult holds the spectral view of the quantized sine.
type PurityResult struct {
	// FundamentalBin is the FFT bin carrying the most energy. For a
	// correct table this is bin 1 (one cycle per 256 samples).
	FundamentalBin int
	// Fundamental is the magnitude of the fundamental bin.
	Fundamental float64
	// Harmonics holds the magnitudes of harmonics 2..Config.Harmonics.
	Harmonics []float64
	// THD is the ratio of the harmonic RSS to the fundamental.
	THD float64
	// THDdB is THD in dB (20·log10).
	THDdB float64
	// SINADdB is the fundamental over everything else (harmonics and
	// quantization noise), in dB.
	SINADdB float64
}

// SinePurity runs an FFT over one full cycle of fixed.Sin and reports
// fundamental level, harmonic levels, THD and SINAD.
//
// The zero result is returned if the FFT backend fails; with the fixed
// power-of-two size that does not happen in practice.
func SinePurity(cfg Config) PurityResult {
	cfg = normalizeConfig(cfg)

	in := make([]complex128, sineCycle)
	for a := range sineCycle {
		in[a] = complex(fixed.Sin(fixed.Angle(a)).Float(), 0)
	}

	plan, err := algofft.NewPlan64(sineCycle)
	if err != nil {
		return PurityResult{}
	}

	out := make([]complex128, sineCycle)
	if err := plan.Forward(out, in); err != nil {
		return PurityResult{}
	}

	bins := sineCycle/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	fundBin := 1
	for k := 2; k < bins; k++ {
		if mags[k] > mags[fundBin] {
			fundBin = k
		}
	}
	fund := mags[fundBin]
	if fund == 0 {
		return PurityResult{FundamentalBin: fundBin}
	}

	var harmonics []float64
	harmonicSq := 0.0
	for h := 2; h <= cfg.Harmonics; h++ {
		bin := fundBin * h
		if bin >= bins {
			break
		}
		m := mags[bin]
		harmonics = append(harmonics, m)
		harmonicSq += m * m
	}

	restSq := 0.0
	for k := 1; k < bins; k++ {
		if k != fundBin {
			restSq += mags[k] * mags[k]
		}
	}

	thd := math.Sqrt(harmonicSq) / fund

	return PurityResult{
		FundamentalBin: fundBin,
		Fundamental:    fund,
		Harmonics:      harmonics,
		THD:            thd,
		THDdB:          db(thd),
		SINADdB:        db(fund / math.Sqrt(restSq)),
	}
}

// db converts a linear amplitude ratio to dB, mapping zero to -Inf.
func db(ratio float64) float64 {
	if ratio <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(ratio)
}
