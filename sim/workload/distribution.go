package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// DistSpec selects the distribution of generated burst times.
type DistSpec struct {
	Type   string             `yaml:"type"` // uniform (default), gaussian, exponential, constant
	Params map[string]float64 `yaml:"params,omitempty"`
}

// BurstSampler draws burst times.
type BurstSampler interface {
	// Sample returns a burst time within the sampler's [min, max] bounds.
	Sample(rng *rand.Rand) int64
}

// UniformBursts draws uniformly from [min, max].
type UniformBursts struct {
	min, max int64
}

func (s *UniformBursts) Sample(rng *rand.Rand) int64 {
	return s.min + rng.Int63n(s.max-s.min+1)
}

// GaussianBursts produces clamped Gaussian burst times.
type GaussianBursts struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianBursts) Sample(rng *rand.Rand) int64 {
	return clamp(rng.NormFloat64()*s.stdDev+s.mean, s.min, s.max)
}

// ExponentialBursts produces exponentially distributed burst times: many
// short jobs and a few long ones.
type ExponentialBursts struct {
	mean     float64
	min, max int64
}

func (s *ExponentialBursts) Sample(rng *rand.Rand) int64 {
	return clamp(rng.ExpFloat64()*s.mean, s.min, s.max)
}

// ConstantBursts always returns the same burst time.
type ConstantBursts struct {
	value int64
}

func (s *ConstantBursts) Sample(_ *rand.Rand) int64 {
	return s.value
}

func clamp(v float64, lo, hi int64) int64 {
	r := int64(math.Round(math.Min(float64(hi), math.Max(float64(lo), v))))
	if r < lo {
		return lo
	}
	return r
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewBurstSampler creates a BurstSampler from a DistSpec. Every sample is
// clamped to [minBurst, maxBurst].
func NewBurstSampler(spec DistSpec, minBurst, maxBurst int64) (BurstSampler, error) {
	switch spec.Type {
	case "", "uniform":
		return &UniformBursts{min: minBurst, max: maxBurst}, nil

	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev"); err != nil {
			return nil, err
		}
		if spec.Params["std_dev"] < 0 {
			return nil, fmt.Errorf("gaussian std_dev must be non-negative, got %v", spec.Params["std_dev"])
		}
		return &GaussianBursts{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    minBurst,
			max:    maxBurst,
		}, nil

	case "exponential":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		if spec.Params["mean"] <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %v", spec.Params["mean"])
		}
		return &ExponentialBursts{mean: spec.Params["mean"], min: minBurst, max: maxBurst}, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		return &ConstantBursts{value: clamp(spec.Params["value"], minBurst, maxBurst)}, nil

	default:
		return nil, fmt.Errorf("unknown burst distribution %q; valid: uniform, gaussian, exponential, constant", spec.Type)
	}
}
