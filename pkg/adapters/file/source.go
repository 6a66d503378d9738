// Package file reads variables from dotenv, YAML and JSON files.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/envschema/pkg/adapters/memory"
)

// Open reads the variables held in the file at path.
// The format is picked by extension: .yaml, .yml and .json are parsed as
// YAML documents whose nested keys are flattened into UPPER_SNAKE names;
// anything else is parsed as a dotenv file.
func Open(path string) (*memory.Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		values, err := ParseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return memory.New(values), nil
	default:
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return memory.FromStrings(values), nil
	}
}

// ParseDocument decodes a YAML or JSON mapping into flat variables.
// {"db": {"url": "x"}} yields DB_URL=x. Sequences are kept as []any.
func ParseDocument(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	values := make(map[string]any)
	flatten("", doc, values)
	return values, nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		name := strings.ToUpper(k)
		if prefix != "" {
			name = prefix + "_" + name
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(name, nested, out)
			continue
		}
		out[name] = v
	}
}

// LoadEnv loads dotenv files into the process environment.
// Variables already set are kept unless override is true.
// With no paths, ".env" in the working directory is used.
func LoadEnv(override bool, paths ...string) error {
	if override {
		return godotenv.Overload(paths...)
	}
	return godotenv.Load(paths...)
}
