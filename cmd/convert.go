package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusim/cpusim/sim/workload"
)

// --- cpusim convert <in> <out> ---

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a job file between CSV and YAML",
	Long:  "Convert a job file between CSV and YAML. Formats are chosen by extension (.csv, .yaml, .yml); the input is validated before writing.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := convertJobs(args[0], args[1])
		if err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
		logrus.Infof("Wrote %d jobs to %s", n, args[1])
	},
}

// convertJobs loads and validates in, then writes it to out. Returns the job count.
func convertJobs(in, out string) (int, error) {
	specs, err := workload.LoadJobs(in)
	if err != nil {
		return 0, err
	}
	if err := workload.SaveJobs(specs, out); err != nil {
		return 0, err
	}
	return len(specs), nil
}
