package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/envschema/internal/cli"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"check", "resolve", "vars", "docs", "graph", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestOptions_FromFlags(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"check"})
	require.NoError(t, err)

	require.NoError(t, cmd.ParseFlags([]string{
		"-s", "app.yaml",
		"-e", "a.env", "--env-file", "b.yaml",
		"--no-process-env",
		"--prefix", "APP_",
		"--metrics-file", "out.prom",
	}))

	assert.Equal(t, cli.Options{
		SchemaPath:   "app.yaml",
		EnvFiles:     []string{"a.env", "b.yaml"},
		NoProcessEnv: true,
		Prefix:       "APP_",
	}, options(cmd))
}
