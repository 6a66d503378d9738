package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envschema/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "envschema",
	Short: "envschema validates environment variables against a schema",
	Long: `envschema reads a schema definition (YAML or JSON), derives the environment
variable each key reads, and checks, resolves or documents them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) cli.Options {
	schemaPath, _ := cmd.Flags().GetString("schema")
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	noProcessEnv, _ := cmd.Flags().GetBool("no-process-env")
	prefix, _ := cmd.Flags().GetString("prefix")
	debug, _ := cmd.Flags().GetBool("debug")

	return cli.Options{
		SchemaPath:   schemaPath,
		EnvFiles:     envFiles,
		NoProcessEnv: noProcessEnv,
		Prefix:       prefix,
		Debug:        debug,
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schema", "s", cli.DefaultSchemaPath, "Schema definition file (YAML or JSON)")
	rootCmd.PersistentFlags().StringSliceP("env-file", "e", nil, "Dotenv, YAML or JSON file to read variables from (repeatable)")
	rootCmd.PersistentFlags().Bool("no-process-env", false, "Ignore the process environment")
	rootCmd.PersistentFlags().String("prefix", "", "Prefix for derived variable names (e.g. MYAPP_)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
