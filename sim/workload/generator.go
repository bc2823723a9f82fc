package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/cpusim/cpusim/sim"
)

// GenerateConfig parameterizes a synthetic job list.
type GenerateConfig struct {
	Seed        int64       `yaml:"seed"`
	Count       int         `yaml:"count"`
	MaxArrival  int64       `yaml:"max_arrival"` // uniform arrivals are drawn from [0, MaxArrival]
	Arrival     ArrivalSpec `yaml:"arrival"`
	MinBurst    int64       `yaml:"min_burst"` // >= 1
	MaxBurst    int64       `yaml:"max_burst"` // >= MinBurst
	Burst       DistSpec    `yaml:"burst"`
	MinPriority int         `yaml:"min_priority"`
	MaxPriority int         `yaml:"max_priority"` // >= MinPriority
}

// DefaultGenerateConfig mirrors a small classroom workload: twenty jobs.
var DefaultGenerateConfig = GenerateConfig{
	Seed:        42,
	Count:       20,
	MaxArrival:  30,
	MinBurst:    1,
	MaxBurst:    10,
	MinPriority: 1,
	MaxPriority: 5,
}

// Validate checks parameter ranges.
func (c GenerateConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	if c.MaxArrival < 0 {
		return fmt.Errorf("max_arrival must be non-negative, got %d", c.MaxArrival)
	}
	if c.MinBurst < 1 || c.MaxBurst < c.MinBurst {
		return fmt.Errorf("burst range [%d, %d] invalid; need 1 <= min_burst <= max_burst", c.MinBurst, c.MaxBurst)
	}
	if c.MaxPriority < c.MinPriority {
		return fmt.Errorf("priority range [%d, %d] invalid", c.MinPriority, c.MaxPriority)
	}
	if err := c.Arrival.Validate(); err != nil {
		return err
	}
	if _, err := NewBurstSampler(c.Burst, c.MinBurst, c.MaxBurst); err != nil {
		return err
	}
	return nil
}

// Generate creates a job list. Deterministic given the same config.
// Returns jobs sorted by arrival time with process numbers 1..Count in that order.
func Generate(cfg GenerateConfig) ([]sim.JobSpec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate config: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	arrivals := NewArrivalSampler(cfg.Arrival, cfg.MaxArrival).SampleArrivals(rng, cfg.Count)
	bursts, _ := NewBurstSampler(cfg.Burst, cfg.MinBurst, cfg.MaxBurst)

	specs := make([]sim.JobSpec, cfg.Count)
	for i := range specs {
		specs[i] = sim.JobSpec{
			ProcessNumber: i + 1,
			ArrivalTime:   arrivals[i],
			BurstTime:     bursts.Sample(rng),
			Priority:      cfg.MinPriority + rng.Intn(cfg.MaxPriority-cfg.MinPriority+1),
		}
	}
	if cfg.Count > 0 {
		logrus.Debugf("generated %d jobs (seed %d), arrivals %d..%d", cfg.Count, cfg.Seed, arrivals[0], arrivals[cfg.Count-1])
	}
	return specs, nil
}
