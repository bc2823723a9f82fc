package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(DefaultGenerateConfig)
	require.NoError(t, err)
	b, err := Generate(DefaultGenerateConfig)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	cfg := DefaultGenerateConfig
	a, err := Generate(cfg)
	require.NoError(t, err)
	cfg.Seed = 7
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_RespectsRangesAndOrdering(t *testing.T) {
	cfg := GenerateConfig{Seed: 3, Count: 200, MaxArrival: 10, MinBurst: 2, MaxBurst: 4, MinPriority: 0, MaxPriority: 2}
	specs, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, specs, 200)

	for i, s := range specs {
		assert.Equal(t, i+1, s.ProcessNumber)
		assert.GreaterOrEqual(t, s.ArrivalTime, int64(0))
		assert.LessOrEqual(t, s.ArrivalTime, cfg.MaxArrival)
		assert.GreaterOrEqual(t, s.BurstTime, cfg.MinBurst)
		assert.LessOrEqual(t, s.BurstTime, cfg.MaxBurst)
		assert.GreaterOrEqual(t, s.Priority, cfg.MinPriority)
		assert.LessOrEqual(t, s.Priority, cfg.MaxPriority)
		if i > 0 {
			assert.LessOrEqual(t, specs[i-1].ArrivalTime, s.ArrivalTime)
		}
	}
	assert.NoError(t, Validate(specs))
}

func TestGenerate_ZeroCount_ReturnsEmpty(t *testing.T) {
	cfg := DefaultGenerateConfig
	cfg.Count = 0
	specs, err := Generate(cfg)
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestGenerateConfig_Validate_Rejects(t *testing.T) {
	base := DefaultGenerateConfig
	tests := map[string]func(c *GenerateConfig){
		"negative count":    func(c *GenerateConfig) { c.Count = -1 },
		"negative arrival":  func(c *GenerateConfig) { c.MaxArrival = -1 },
		"zero min burst":    func(c *GenerateConfig) { c.MinBurst = 0 },
		"inverted burst":    func(c *GenerateConfig) { c.MinBurst, c.MaxBurst = 5, 4 },
		"inverted priority": func(c *GenerateConfig) { c.MinPriority, c.MaxPriority = 3, 1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			_, err := Generate(cfg)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_PoissonArrivalsAndGaussianBursts(t *testing.T) {
	cfg := DefaultGenerateConfig
	cfg.Count = 50
	cfg.Arrival = ArrivalSpec{Process: "poisson", MeanGap: 2}
	cfg.Burst = DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 4, "std_dev": 1}}

	specs, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, specs, 50)
	assert.Equal(t, int64(0), specs[0].ArrivalTime)
	assert.NoError(t, Validate(specs))
}

func TestGenerate_InvalidArrivalOrBurst_ReturnsError(t *testing.T) {
	cfg := DefaultGenerateConfig
	cfg.Arrival = ArrivalSpec{Process: "poisson"}
	_, err := Generate(cfg)
	assert.Error(t, err)

	cfg = DefaultGenerateConfig
	cfg.Burst = DistSpec{Type: "bimodal"}
	_, err = Generate(cfg)
	assert.Error(t, err)
}
