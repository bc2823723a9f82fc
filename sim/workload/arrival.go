package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// ArrivalSpec selects how generated jobs are spread over the timeline.
type ArrivalSpec struct {
	Process string   `yaml:"process"`      // uniform (default), poisson, gamma, constant
	MeanGap float64  `yaml:"mean_gap"`     // mean ticks between consecutive arrivals; unused by uniform
	CV      *float64 `yaml:"cv,omitempty"` // gamma only: coefficient of variation of the gap (default 1)
}

var validArrivalProcesses = map[string]bool{"": true, "uniform": true, "poisson": true, "gamma": true, "constant": true}

// Validate checks the process name and its parameters.
func (s ArrivalSpec) Validate() error {
	if !validArrivalProcesses[s.Process] {
		return fmt.Errorf("unknown arrival process %q; valid: uniform, poisson, gamma, constant", s.Process)
	}
	switch s.Process {
	case "poisson", "gamma":
		if s.MeanGap <= 0 || math.IsNaN(s.MeanGap) || math.IsInf(s.MeanGap, 0) {
			return fmt.Errorf("%s arrivals need a finite positive mean_gap, got %v", s.Process, s.MeanGap)
		}
	case "constant":
		if s.MeanGap < 0 || math.IsNaN(s.MeanGap) || math.IsInf(s.MeanGap, 0) {
			return fmt.Errorf("constant arrivals need a finite non-negative mean_gap, got %v", s.MeanGap)
		}
	}
	if s.CV != nil && *s.CV <= 0 {
		return fmt.Errorf("arrival cv must be positive, got %v", *s.CV)
	}
	return nil
}

// ArrivalSampler produces the arrival times of a generated job list.
type ArrivalSampler interface {
	// SampleArrivals returns n non-decreasing, non-negative arrival ticks.
	SampleArrivals(rng *rand.Rand, n int) []int64
}

// UniformArrivals draws every arrival independently from [0, MaxArrival].
type UniformArrivals struct {
	MaxArrival int64
}

func (s *UniformArrivals) SampleArrivals(rng *rand.Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(s.MaxArrival + 1)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PoissonArrivals spaces arrivals by exponentially distributed gaps (CV=1).
// The first job arrives at tick 0.
type PoissonArrivals struct {
	meanGap float64
}

func (s *PoissonArrivals) SampleArrivals(rng *rand.Rand, n int) []int64 {
	return accumulate(n, func() float64 { return rng.ExpFloat64() * s.meanGap })
}

// GammaArrivals spaces arrivals by Gamma-distributed gaps. CV > 1 produces
// bursts of simultaneous arrivals separated by long quiet stretches.
type GammaArrivals struct {
	shape float64 // 1/CV²
	scale float64 // meanGap * CV²
}

func (s *GammaArrivals) SampleArrivals(rng *rand.Rand, n int) []int64 {
	return accumulate(n, func() float64 { return gammaRand(rng, s.shape, s.scale) })
}

// ConstantArrivals spaces arrivals by a fixed gap.
type ConstantArrivals struct {
	gap float64
}

func (s *ConstantArrivals) SampleArrivals(_ *rand.Rand, n int) []int64 {
	return accumulate(n, func() float64 { return s.gap })
}

// accumulate turns gaps into arrival ticks. Fractional ticks carry over so
// a mean gap below one still yields the requested average rate.
func accumulate(n int, gap func() float64) []int64 {
	out := make([]int64, n)
	var t float64
	for i := range out {
		if i > 0 {
			t += gap()
		}
		out[i] = int64(t)
	}
	return out
}

// gammaRand samples from Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// NewArrivalSampler creates an ArrivalSampler from a validated spec.
// maxArrival bounds the uniform process only.
func NewArrivalSampler(spec ArrivalSpec, maxArrival int64) ArrivalSampler {
	switch spec.Process {
	case "poisson":
		return &PoissonArrivals{meanGap: spec.MeanGap}

	case "gamma":
		cv := 1.0
		if spec.CV != nil {
			cv = *spec.CV
		}
		shape := 1.0 / (cv * cv)
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to Poisson", shape, cv)
			return &PoissonArrivals{meanGap: spec.MeanGap}
		}
		return &GammaArrivals{shape: shape, scale: spec.MeanGap * cv * cv}

	case "constant":
		return &ConstantArrivals{gap: spec.MeanGap}

	default:
		return &UniformArrivals{MaxArrival: maxArrival}
	}
}
