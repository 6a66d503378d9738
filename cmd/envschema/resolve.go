package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envschema/internal/cli"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved configuration",
	Long: `Resolves the schema, stopping at the first missing or invalid variable, and prints the typed result.
Values of keys that look like secrets are masked unless --reveal is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		reveal, _ := cmd.Flags().GetBool("reveal")
		return cli.Resolve(cli.ResolveOptions{Options: options(cmd), Format: format, Reveal: reveal}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("format", "f", cli.FormatJSON, "Output format: json, yaml or dump")
	resolveCmd.Flags().Bool("reveal", false, "Print secret values instead of masking them")
}
