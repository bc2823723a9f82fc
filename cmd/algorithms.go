package cmd

import (
	"github.com/spf13/cobra"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available scheduling algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		printAlgorithms(cmd.OutOrStdout(), true)
	},
}
