package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envschema/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every variable is present and valid",
	Long:  `Resolves the whole schema, prints one line per variable and exits with status 1 if any is missing or invalid.`,
	Run: func(cmd *cobra.Command, args []string) {
		metricsFile, _ := cmd.Flags().GetString("metrics-file")

		err := cli.Check(cli.CheckOptions{Options: options(cmd), MetricsFile: metricsFile}, os.Stdout)
		if err != nil {
			cmd.PrintErrln("Error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this textfile")
}
