package accuracy

import (
	"math"
	"testing"
)

func TestSineError(t *testing.T) {
	stats := SineError()

	if stats.Samples != 256 {
		t.Fatalf("Samples = %d, want 256", stats.Samples)
	}
	// One table step is 1.40625 degrees, bounding the worst deviation to
	// just under 7 Q8.8 units; measured 6.57.
	if stats.Max >= 7 {
		t.Fatalf("Max = %v, want < 7", stats.Max)
	}
	if stats.Max < 4 {
		t.Fatalf("Max = %v, implausibly small for a 64-entry table", stats.Max)
	}
	if stats.RMS >= 4 {
		t.Fatalf("RMS = %v, want < 4", stats.RMS)
	}
}

func TestCosineError(t *testing.T) {
	stats := CosineError()

	// Cosine is the same table through a phase shift; same bound.
	if stats.Max >= 7 {
		t.Fatalf("Max = %v, want < 7", stats.Max)
	}
}

func TestAtan2Error(t *testing.T) {
	stats := Atan2Error(Config{})

	if stats.Samples == 0 {
		t.Fatal("no samples")
	}
	// The linear octant approximation is worst near ratio 0.5; measured
	// max 3.89 binary angle units (about 5.5 degrees).
	if stats.Max >= 4.5 {
		t.Fatalf("Max = %v, want < 4.5", stats.Max)
	}
	if stats.RMS >= 3 {
		t.Fatalf("RMS = %v, want < 3", stats.RMS)
	}
}

func TestWrapAngleDiff(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
		expected  float64
	}{
		{name: "equal", got: 42, want: 42, expected: 0},
		{name: "small forward", got: 14, want: 10, expected: 4},
		{name: "small backward", got: 10, want: 14, expected: -4},
		{name: "across wrap forward", got: 0.1, want: 255.9, expected: 0.2},
		{name: "across wrap backward", got: 255.9, want: 0.1, expected: -0.2},
		{name: "opposite", got: 0, want: 128, expected: -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapAngleDiff(tt.got, tt.want)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Fatalf("wrapAngleDiff(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.expected)
			}
			if got < -128 || got >= 128 {
				t.Fatalf("wrapAngleDiff(%v, %v) = %v, outside [-128, 128)", tt.got, tt.want, got)
			}
		})
	}
}

func TestAtan2ErrorSmallRadius(t *testing.T) {
	stats := Atan2Error(Config{Radius: 10, Steps: 256})

	// Coarse inputs quantize the direction itself; allow an extra unit.
	if stats.Max >= 6 {
		t.Fatalf("Max = %v, want < 6", stats.Max)
	}
}

func TestHypotError(t *testing.T) {
	stats := HypotError()

	if stats.Samples < 5000 {
		t.Fatalf("Samples = %d, want a full grid", stats.Samples)
	}
	// The <<4 upscale quantizes outputs to 16-unit steps.
	if stats.Max >= 17.5 {
		t.Fatalf("Max = %v, want < 17.5", stats.Max)
	}
	if stats.RMS >= 12 {
		t.Fatalf("RMS = %v, want < 12", stats.RMS)
	}
}

func TestSinePurity(t *testing.T) {
	res := SinePurity(Config{})

	if res.FundamentalBin != 1 {
		t.Fatalf("FundamentalBin = %d, want 1", res.FundamentalBin)
	}
	// Half the cycle length times the amplitude: 128 * ~0.992.
	if res.Fundamental < 120 || res.Fundamental > 132 {
		t.Fatalf("Fundamental = %v, want ~127", res.Fundamental)
	}
	if len(res.Harmonics) != 15 {
		t.Fatalf("len(Harmonics) = %d, want 15", len(res.Harmonics))
	}
	// Measured THD of the quantized table is about -40.6 dB.
	if res.THDdB >= -35 || res.THDdB <= -50 {
		t.Fatalf("THDdB = %v, want in (-50, -35)", res.THDdB)
	}
	if res.SINADdB <= 35 {
		t.Fatalf("SINADdB = %v, want > 35", res.SINADdB)
	}
}

func TestSinePurityHarmonicCap(t *testing.T) {
	res := SinePurity(Config{Harmonics: 4})

	if len(res.Harmonics) != 3 {
		t.Fatalf("len(Harmonics) = %d, want 3", len(res.Harmonics))
	}
	if math.IsNaN(res.THD) {
		t.Fatal("THD is NaN")
	}
}

func TestNormalizeConfigDefaults(t *testing.T) {
	cfg := normalizeConfig(Config{})

	if cfg.Radius != defaultRadius || cfg.Steps != defaultSteps || cfg.Harmonics != defaultHarmonics {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	capped := normalizeConfig(Config{Radius: 1 << 20})
	if capped.Radius != math.MaxInt16 {
		t.Fatalf("Radius = %d, want capped to %d", capped.Radius, math.MaxInt16)
	}
}
