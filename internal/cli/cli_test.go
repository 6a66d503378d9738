package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/envschema"
	"github.com/aretw0/envschema/pkg/schema"
)

const testSchema = `
Port: number
IsLocal: bool
Timeout: duration
S3BucketName: [S3_BUCKET_NAME, string]
Aws:
  Region: string
`

// setupProject writes a schema and a .env file into a temp dir.
func setupProject(t *testing.T, dotenv string) Options {
	t.Helper()
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "envschema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(dotenv), 0644))

	return Options{
		SchemaPath:   schemaPath,
		EnvFiles:     []string{envPath},
		NoProcessEnv: true,
	}
}

const completeEnv = "PORT=8080\nIS_LOCAL=yes\nTIMEOUT=5s\nS3_BUCKET_NAME=assets\nAWS_REGION=eu-west-1\n"

func TestLoadSchema(t *testing.T) {
	opts := setupProject(t, "")
	s, err := LoadSchema(opts.SchemaPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aws", "IsLocal", "Port", "S3BucketName", "Timeout"}, s.Keys())

	_, err = LoadSchema(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("Port: float64"), 0644))
	_, err = LoadSchema(bad)
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)
}

func TestBuildSource_ProcessEnvWins(t *testing.T) {
	opts := setupProject(t, "ENVSCHEMA_CLI_TEST=file\n")
	t.Setenv("ENVSCHEMA_CLI_TEST", "process")

	opts.NoProcessEnv = false
	src, err := BuildSource(opts)
	require.NoError(t, err)
	v, _ := src.Lookup("ENVSCHEMA_CLI_TEST", "")
	assert.Equal(t, "process", v)

	opts.NoProcessEnv = true
	src, err = BuildSource(opts)
	require.NoError(t, err)
	v, _ = src.Lookup("ENVSCHEMA_CLI_TEST", "")
	assert.Equal(t, "file", v)
}

func TestCheck_AllValid(t *testing.T) {
	opts := setupProject(t, completeEnv)
	metricsFile := filepath.Join(t.TempDir(), "envschema.prom")

	var buf bytes.Buffer
	err := Check(CheckOptions{Options: opts, MetricsFile: metricsFile}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "5 variables, 0 missing or invalid")

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `envschema_variables_total{status="resolved"} 5`)
	assert.Contains(t, string(metrics), "envschema_variables_failed 0")
}

func TestCheck_ReportsEveryFailure(t *testing.T) {
	opts := setupProject(t, "PORT=eighty\nIS_LOCAL=maybe\nTIMEOUT=5s\n")

	var buf bytes.Buffer
	err := Check(CheckOptions{Options: opts}, &buf)
	require.Error(t, err)
	assert.Len(t, schema.Errors(err), 4)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "✘ PORT")
	assert.Contains(t, out, "✔ TIMEOUT")
	assert.Contains(t, out, "S3BucketName (override)")
	assert.Contains(t, out, "5 variables, 4 missing or invalid")
}

func TestResolve_Formats(t *testing.T) {
	opts := ResolveOptions{Options: setupProject(t, completeEnv), Format: FormatJSON}

	var buf bytes.Buffer
	require.NoError(t, Resolve(opts, &buf))
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 8080.0, got["Port"])
	assert.Equal(t, true, got["IsLocal"])
	assert.Equal(t, "5s", got["Timeout"])
	assert.Equal(t, map[string]any{"Region": "eu-west-1"}, got["Aws"])

	buf.Reset()
	opts.Format = FormatYAML
	require.NoError(t, Resolve(opts, &buf))
	assert.Contains(t, buf.String(), "S3BucketName: assets")
	assert.Contains(t, buf.String(), "Region: eu-west-1")

	buf.Reset()
	opts.Format = FormatDump
	require.NoError(t, Resolve(opts, &buf))
	assert.Contains(t, buf.String(), `"assets"`)

	opts.Format = "toml"
	assert.Error(t, Resolve(opts, &buf))
}

func TestResolve_FailsFast(t *testing.T) {
	opts := setupProject(t, "PORT=8080\n")
	err := Resolve(ResolveOptions{Options: opts}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidValue)
	assert.Contains(t, err.Error(), "AWS_REGION")
}

func TestResolve_Prefix(t *testing.T) {
	opts := setupProject(t, strings.ReplaceAll(completeEnv, "\nAWS_REGION", "\nAPP_AWS_REGION"))
	opts.Prefix = "APP_"

	err := Resolve(ResolveOptions{Options: opts}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_IS_LOCAL")
}

func TestVars(t *testing.T) {
	opts := setupProject(t, "")

	var buf bytes.Buffer
	require.NoError(t, Vars(opts, false, &buf))
	assert.Equal(t, "AWS_REGION\tAws.Region\nIS_LOCAL\tIsLocal\nPORT\tPort\nS3_BUCKET_NAME\tS3BucketName\nTIMEOUT\tTimeout\n", buf.String())

	buf.Reset()
	require.NoError(t, Vars(opts, true, &buf))
	assert.Contains(t, buf.String(), "# Aws.Region\nAWS_REGION=\n")
}

func TestDocs(t *testing.T) {
	opts := setupProject(t, "")

	var buf bytes.Buffer
	require.NoError(t, Docs(opts, "Configuration", false, &buf))
	assert.Contains(t, buf.String(), "# Configuration")
	assert.Contains(t, buf.String(), "| `S3_BUCKET_NAME` | S3BucketName | override |")
	assert.False(t, RenderDocs(&buf))
}

func TestGraph(t *testing.T) {
	opts := setupProject(t, "PORT=8080\n")

	var buf bytes.Buffer
	require.NoError(t, Graph(opts, false, &buf))
	assert.Contains(t, buf.String(), "graph LR")
	assert.NotContains(t, buf.String(), "classDef")

	buf.Reset()
	require.NoError(t, Graph(opts, true, &buf))
	assert.Contains(t, buf.String(), "class v_Aws_Region failed;")
	assert.NotContains(t, buf.String(), "class v_Port failed;")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestResolve_MasksSecrets(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "envschema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte("Aws:\n  SecretAccessKey: string\n  Region: string\nDbPassword: string\n"), 0644))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("AWS_SECRET_ACCESS_KEY=s3cr3t\nAWS_REGION=eu\nDB_PASSWORD=hunter2\n"), 0644))

	opts := ResolveOptions{
		Options: Options{SchemaPath: schemaPath, EnvFiles: []string{envPath}, NoProcessEnv: true},
		Format:  FormatJSON,
	}

	var buf bytes.Buffer
	require.NoError(t, Resolve(opts, &buf))
	assert.NotContains(t, buf.String(), "s3cr3t")
	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), `"Region": "eu"`)
	assert.Contains(t, buf.String(), `"DbPassword": "***"`)

	buf.Reset()
	opts.Reveal = true
	require.NoError(t, Resolve(opts, &buf))
	assert.Contains(t, buf.String(), "s3cr3t")
}

func TestMasker(t *testing.T) {
	in := map[string]any{
		"Token":       "abc",
		"Credentials": map[string]any{"Id": "x"},
		"Db":          map[string]any{"Password": "p", "Host": "h"},
	}
	out := newMasker(DefaultSecretPatterns).mask(in)

	assert.Equal(t, map[string]any{
		"Token":       Mask,
		"Credentials": Mask,
		"Db":          map[string]any{"Password": Mask, "Host": "h"},
	}, out)
	assert.Equal(t, "p", in["Db"].(map[string]any)["Password"], "input must not be modified")
}

func TestMasker_OverrideVariable(t *testing.T) {
	in := map[string]any{
		"Db":   map[string]any{"Auth": "p", "Host": "h"},
		"Key":  "k",
		"Port": 80,
	}
	bindings := []envschema.Binding{
		{Path: "Db.Auth", Key: "Auth", Variable: "DATABASE_PASSWORD", Override: true},
		{Path: "Db.Host", Key: "Host", Variable: "DB_HOST"},
		{Path: "Key", Key: "Key", Variable: "API_TOKEN", Override: true},
		{Path: "Port", Key: "Port", Variable: "PORT"},
	}
	out := newMasker(DefaultSecretPatterns, bindings...).mask(in)

	assert.Equal(t, map[string]any{
		"Db":   map[string]any{"Auth": Mask, "Host": "h"},
		"Key":  Mask,
		"Port": 80,
	}, out)
}

func TestResolve_MasksOverrideSecrets(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "envschema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte("Db: [DATABASE_PASSWORD, string]\n"), 0644))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DATABASE_PASSWORD=hunter2\n"), 0644))

	opts := ResolveOptions{
		Options: Options{SchemaPath: schemaPath, EnvFiles: []string{envPath}, NoProcessEnv: true},
		Format:  FormatJSON,
	}

	var buf bytes.Buffer
	require.NoError(t, Resolve(opts, &buf))
	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), `"Db": "***"`)
}
