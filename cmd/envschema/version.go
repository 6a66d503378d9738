package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/envschema"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of envschema",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("envschema version %s\n", strings.TrimSpace(envschema.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
