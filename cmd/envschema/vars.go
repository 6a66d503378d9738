package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envschema/internal/cli"
)

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List the variables the schema reads",
	RunE: func(cmd *cobra.Command, args []string) error {
		dotenv, _ := cmd.Flags().GetBool("dotenv")
		return cli.Vars(options(cmd), dotenv, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)

	varsCmd.Flags().Bool("dotenv", false, "Print a .env template")
}
