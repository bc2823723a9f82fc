package workload

import (
	"fmt"
	"sort"
)

// Built-in scenario presets for common scheduling workloads.
// Each returns a valid GenerateConfig ready for use with Generate.

// ScenarioBursty creates Gamma-distributed bursty arrivals: clumps of
// simultaneous jobs separated by idle stretches.
func ScenarioBursty(seed int64) GenerateConfig {
	cv := 3.5
	return GenerateConfig{
		Seed: seed, Count: 30,
		Arrival:  ArrivalSpec{Process: "gamma", MeanGap: 2, CV: &cv},
		MinBurst: 1, MaxBurst: 12,
		Burst:       DistSpec{Type: "exponential", Params: map[string]float64{"mean": 4}},
		MinPriority: 1, MaxPriority: 5,
	}
}

// ScenarioInteractive creates a steady Poisson stream of short jobs.
func ScenarioInteractive(seed int64) GenerateConfig {
	return GenerateConfig{
		Seed: seed, Count: 40,
		Arrival:  ArrivalSpec{Process: "poisson", MeanGap: 3},
		MinBurst: 1, MaxBurst: 6,
		Burst:       DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 2, "std_dev": 1}},
		MinPriority: 1, MaxPriority: 3,
	}
}

// ScenarioConvoy creates a heavy-tailed mix arriving together, where a few
// long jobs stall many short ones under FCFS.
func ScenarioConvoy(seed int64) GenerateConfig {
	return GenerateConfig{
		Seed: seed, Count: 15,
		MaxArrival: 3,
		MinBurst:   1, MaxBurst: 40,
		Burst:       DistSpec{Type: "exponential", Params: map[string]float64{"mean": 6}},
		MinPriority: 1, MaxPriority: 5,
	}
}

// ScenarioClassroom is DefaultGenerateConfig under the given seed.
func ScenarioClassroom(seed int64) GenerateConfig {
	cfg := DefaultGenerateConfig
	cfg.Seed = seed
	return cfg
}

var scenarios = map[string]func(int64) GenerateConfig{
	"bursty":      ScenarioBursty,
	"classroom":   ScenarioClassroom,
	"convoy":      ScenarioConvoy,
	"interactive": ScenarioInteractive,
}

// ScenarioNames lists the built-in scenario names, sorted.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scenario returns the named preset.
func Scenario(name string, seed int64) (GenerateConfig, error) {
	fn, ok := scenarios[name]
	if !ok {
		return GenerateConfig{}, fmt.Errorf("unknown scenario %q; valid: %v", name, ScenarioNames())
	}
	return fn(seed), nil
}
