package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/envschema/pkg/schema"
)

const definition = `
NodeEnv: string
Port: number
IsLocal: bool
Tags: "[string]"
S3BucketName: [S3_BUCKET_NAME, string]
Aws:
  S3Credentials:
    AccessKeyId: string
    SecretAccessKey: string
`

func TestParse_YAML(t *testing.T) {
	s, err := schema.Parse([]byte(definition), nil)
	require.NoError(t, err)
	require.NoError(t, schema.Check(s))

	assert.Equal(t, []string{"Aws", "IsLocal", "NodeEnv", "Port", "S3BucketName", "Tags"}, s.Keys())

	port, ok := s["Port"].(schema.Validator)
	require.True(t, ok)
	assert.Equal(t, 8080.0, port("8080").Value)

	override, ok := s["S3BucketName"].(schema.Override)
	require.True(t, ok)
	assert.Equal(t, "S3_BUCKET_NAME", override.Name)

	aws, ok := s["Aws"].(schema.Schema)
	require.True(t, ok)
	creds, ok := aws["S3Credentials"].(schema.Schema)
	require.True(t, ok)
	assert.Len(t, creds, 2)

	tags := s["Tags"].(schema.Validator)
	assert.Equal(t, []any{"a", "b"}, tags("a,b").Value)
}

func TestParse_JSON(t *testing.T) {
	var s schema.Schema
	err := json.Unmarshal([]byte(`{"Port":"int","Custom":["MY_VAR","bool"],"Db":{"Url":"url"}}`), &s)
	require.NoError(t, err)

	assert.IsType(t, schema.Validator(nil), s["Port"])
	assert.Equal(t, "MY_VAR", s["Custom"].(schema.Override).Name)
	assert.IsType(t, schema.Schema{}, s["Db"])
}

func TestUnmarshalYAML_Embedded(t *testing.T) {
	var doc struct {
		Schema schema.Schema `yaml:"schema"`
	}
	err := yaml.Unmarshal([]byte("schema:\n  Port: number\n"), &doc)
	require.NoError(t, err)
	assert.Contains(t, doc.Schema, "Port")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{"unknown type", "Port: float64", "Port"},
		{"empty type", "Port:", "Port"},
		{"bad override arity", "Custom: [ONLY_NAME]", "Custom"},
		{"override with nested mapping", "Custom: [NAME, {a: b}]", "Custom"},
		{"nested unknown type", "Aws:\n  Region: nope", "Aws.Region"},
		{"top level list", "- a\n- b", ""},
		{"top level scalar", "just-a-string", ""},
		{"empty document", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Parse([]byte(tt.input), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrInvalidSchema)

			var schemaErr *schema.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantPath, schemaErr.Path)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := schema.Parse([]byte("a: [unclosed"), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, schema.ErrInvalidSchema)
}

type fixedTypes map[string]schema.Validator

func (f fixedTypes) Lookup(name string) (schema.Validator, bool) {
	v, ok := f[name]
	return v, ok
}

func TestParse_CustomTypes(t *testing.T) {
	types := fixedTypes{"port": schema.Int()}

	s, err := schema.Parse([]byte("Port: port"), types)
	require.NoError(t, err)
	assert.Equal(t, 80, s["Port"].(schema.Validator)("80").Value)

	_, err = schema.Parse([]byte("Port: number"), types)
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)
}
