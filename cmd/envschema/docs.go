package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envschema/internal/cli"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Document the schema's variables as markdown",
	Long:  `Prints a markdown table of variables. On a terminal the markdown is rendered; use --raw to disable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		raw, _ := cmd.Flags().GetBool("raw")
		return cli.Docs(options(cmd), title, !raw && cli.RenderDocs(os.Stdout), os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().String("title", "Environment Variables", "Document title")
	docsCmd.Flags().Bool("raw", false, "Print markdown without rendering")
}
