package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cpusim/cpusim/sim"
	"github.com/cpusim/cpusim/sim/workload"
)

var (
	genScenario    string
	genSeed        int64
	genCount       int
	genMaxArrival  int64
	genMinBurst    int64
	genMaxBurst    int64
	genMinPriority int
	genMaxPriority int
	genArrival     string
	genMeanGap     float64
	genArrivalCV   float64
	genBurstDist   string
	genBurstMean   float64
	genBurstStdDev float64
	genOutPath     string
	genFormat      string
)

// --- cpusim generate ---

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic job file",
	Long:  "Generate a synthetic job list from a built-in scenario or explicit parameters. Output goes to --out, or to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := generateJobs(cmd); err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
	},
}

// resolveGenerateConfig starts from the scenario (or the defaults) and
// applies explicitly set flags on top.
func resolveGenerateConfig(cmd *cobra.Command) (workload.GenerateConfig, error) {
	cfg := workload.DefaultGenerateConfig
	if genScenario != "" {
		var err error
		if cfg, err = workload.Scenario(genScenario, genSeed); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = genSeed
	}
	if flags.Changed("count") {
		cfg.Count = genCount
	}
	if flags.Changed("max-arrival") {
		cfg.MaxArrival = genMaxArrival
	}
	if flags.Changed("min-burst") {
		cfg.MinBurst = genMinBurst
	}
	if flags.Changed("max-burst") {
		cfg.MaxBurst = genMaxBurst
	}
	if flags.Changed("min-priority") {
		cfg.MinPriority = genMinPriority
	}
	if flags.Changed("max-priority") {
		cfg.MaxPriority = genMaxPriority
	}
	if flags.Changed("arrival") {
		cfg.Arrival.Process = genArrival
	}
	if flags.Changed("mean-gap") {
		cfg.Arrival.MeanGap = genMeanGap
	}
	if flags.Changed("arrival-cv") {
		cv := genArrivalCV
		cfg.Arrival.CV = &cv
	}
	if flags.Changed("burst-dist") {
		cfg.Burst = workload.DistSpec{Type: genBurstDist, Params: map[string]float64{}}
	}
	if flags.Changed("burst-mean") || flags.Changed("burst-stddev") {
		params := make(map[string]float64, len(cfg.Burst.Params)+2)
		for k, v := range cfg.Burst.Params {
			params[k] = v
		}
		if flags.Changed("burst-mean") {
			params["mean"] = genBurstMean
			params["value"] = genBurstMean
		}
		if flags.Changed("burst-stddev") {
			params["std_dev"] = genBurstStdDev
		}
		cfg.Burst.Params = params
	}
	return cfg, cfg.Validate()
}

func generateJobs(cmd *cobra.Command) error {
	cfg, err := resolveGenerateConfig(cmd)
	if err != nil {
		return err
	}
	specs, err := workload.Generate(cfg)
	if err != nil {
		return err
	}
	if genOutPath != "" {
		if err := workload.SaveJobs(specs, genOutPath); err != nil {
			return err
		}
		logrus.Infof("Wrote %d jobs to %s", len(specs), genOutPath)
		return nil
	}
	return writeJobs(cmd.OutOrStdout(), specs, genFormat)
}

func writeJobs(w io.Writer, specs []sim.JobSpec, format string) error {
	switch workload.Format(format) {
	case workload.FormatCSV:
		return workload.WriteCSV(w, specs)
	case workload.FormatYAML:
		return workload.WriteYAML(w, specs)
	default:
		return fmt.Errorf("unknown format %q; valid: csv, yaml", format)
	}
}

func init() {
	generateCmd.Flags().StringVar(&genScenario, "scenario", "", fmt.Sprintf("Built-in scenario %v", workload.ScenarioNames()))
	generateCmd.Flags().Int64Var(&genSeed, "seed", workload.DefaultGenerateConfig.Seed, "Seed for random job generation")
	generateCmd.Flags().IntVar(&genCount, "count", workload.DefaultGenerateConfig.Count, "Number of jobs")
	generateCmd.Flags().Int64Var(&genMaxArrival, "max-arrival", workload.DefaultGenerateConfig.MaxArrival, "Latest arrival tick (uniform arrivals)")
	generateCmd.Flags().Int64Var(&genMinBurst, "min-burst", workload.DefaultGenerateConfig.MinBurst, "Shortest burst (in ticks)")
	generateCmd.Flags().Int64Var(&genMaxBurst, "max-burst", workload.DefaultGenerateConfig.MaxBurst, "Longest burst (in ticks)")
	generateCmd.Flags().IntVar(&genMinPriority, "min-priority", workload.DefaultGenerateConfig.MinPriority, "Most urgent priority value")
	generateCmd.Flags().IntVar(&genMaxPriority, "max-priority", workload.DefaultGenerateConfig.MaxPriority, "Least urgent priority value")
	generateCmd.Flags().StringVar(&genArrival, "arrival", "uniform", "Arrival process (uniform, poisson, gamma, constant)")
	generateCmd.Flags().Float64Var(&genMeanGap, "mean-gap", 0, "Mean ticks between arrivals (poisson, gamma, constant)")
	generateCmd.Flags().Float64Var(&genArrivalCV, "arrival-cv", 1, "Coefficient of variation of gamma arrival gaps")
	generateCmd.Flags().StringVar(&genBurstDist, "burst-dist", "uniform", "Burst distribution (uniform, gaussian, exponential, constant)")
	generateCmd.Flags().Float64Var(&genBurstMean, "burst-mean", 0, "Mean burst for gaussian/exponential; the value for constant")
	generateCmd.Flags().Float64Var(&genBurstStdDev, "burst-stddev", 0, "Stddev of gaussian bursts")
	generateCmd.Flags().StringVar(&genOutPath, "out", "", "Output job file (.csv, .yaml); empty writes to stdout")
	generateCmd.Flags().StringVar(&genFormat, "format", "yaml", "Stdout format when --out is empty (csv, yaml)")
}
