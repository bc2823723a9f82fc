package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cpusim/cpusim/sim"
	"github.com/cpusim/cpusim/sim/trace"
	"github.com/cpusim/cpusim/sim/workload"
)

var (
	// CLI flags for a simulation run
	configPath   string // YAML run file; flags override its values
	algorithm    string // Ordinal 1-4 or name; empty shows the interactive menu
	quantum      int64  // Round-robin time slice (in ticks)
	jobsPath     string // CSV or YAML job file
	logLevel     string // Log verbosity level
	traceLevel   string // Console trace detail: none, switches, ticks
	outputFormat string // Summary format: text or json
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpusim",
	Short: "Tick-by-tick CPU scheduling simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scheduling simulation over a job file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulation(cmd); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// resolveRunConfig merges the optional run file with flags. A flag wins
// only when it was set explicitly on the command line.
func resolveRunConfig(cmd *cobra.Command) (*sim.RunConfig, error) {
	cfg := &sim.RunConfig{}
	if configPath != "" {
		loaded, err := sim.LoadRunConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("quantum") || cfg.Quantum == nil {
		q := quantum
		cfg.Quantum = &q
	}
	if flags.Changed("jobs") {
		cfg.JobsFile = jobsPath
		cfg.Jobs = nil
	} else if cfg.JobsFile == "" && len(cfg.Jobs) == 0 {
		cfg.JobsFile = jobsPath
	}
	if flags.Changed("log") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("trace") {
		cfg.Trace = traceLevel
	}
	if flags.Changed("output") || cfg.Output == "" {
		cfg.Output = outputFormat
	}
	return cfg, cfg.Validate()
}

// runSimulation resolves configuration, selects the algorithm, loads the
// jobs and runs the engine, writing the trace and summary to cmd's output.
// The algorithm is resolved before any job file is read.
func runSimulation(cmd *cobra.Command) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	out := cmd.OutOrStdout()
	var algo sim.Algorithm
	if cfg.Algorithm == "" {
		algo, err = promptAlgorithm(cmd.InOrStdin(), out)
	} else {
		algo, err = sim.ParseAlgorithm(cfg.Algorithm)
	}
	if err != nil {
		return err
	}
	if algo != sim.AlgorithmRoundRobin && cfg.Quantum != nil && *cfg.Quantum != sim.DefaultQuantum {
		logrus.Warnf("quantum %d only applies to round-robin; ignored for %s", *cfg.Quantum, algo)
	}

	specs, err := loadRunJobs(cfg)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %d jobs; running %s", len(specs), algo.Title())

	sink := NewConsoleSink(out, trace.ParseLevel(cfg.Trace))
	if cfg.Output == "json" {
		// Keep stdout parseable
		sink = NewConsoleSink(out, trace.LevelNone)
	}
	s := sim.NewSimulator(specs, sim.NewScheduler(algo, cfg.QuantumOrDefault()), sink)
	s.Run()

	if cfg.Output == "json" {
		return s.Metrics.WriteJSON(out)
	}
	fmt.Fprintln(out)
	s.Metrics.Print(out)
	return nil
}

func loadRunJobs(cfg *sim.RunConfig) ([]sim.JobSpec, error) {
	if len(cfg.Jobs) > 0 {
		if err := workload.Validate(cfg.Jobs); err != nil {
			return nil, fmt.Errorf("inline jobs: %w", err)
		}
		return cfg.Jobs, nil
	}
	if cfg.JobsFile == "" {
		return nil, errors.New("no jobs: pass --jobs or set jobs_file in --config")
	}
	return workload.LoadJobs(cfg.JobsFile)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run file (algorithm, quantum, jobs_file or jobs, trace, output)")
	runCmd.Flags().StringVar(&algorithm, "algorithm", "", "Scheduling algorithm: 1-4, fcfs, sjf, priority, round-robin (empty prompts)")
	runCmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round-robin time slice (in ticks)")
	runCmd.Flags().StringVar(&jobsPath, "jobs", "jobs.csv", "Job file (.csv, .yaml, .yml)")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "ticks", "Console trace detail (none, switches, ticks)")
	runCmd.Flags().StringVar(&outputFormat, "output", "text", "Summary format (text, json)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(generateCmd)
}
