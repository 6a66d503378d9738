package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envschema/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the schema as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph LR) of the schema tree and the variable each key reads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, _ := cmd.Flags().GetBool("overlay")
		return cli.Graph(options(cmd), overlay, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("overlay", false, "Highlight variables that are currently missing or invalid")
}
