/*
Package envschema loads and validates configuration from environment variables
against a declarative schema.

A schema maps configuration keys to validators. Each key is turned into a
variable name (AccessKeyId becomes ACCESS_KEY_ID), read from a value source,
coerced to its target type and checked. Nested schemas namespace their
variables with the parent key; overrides name their variable explicitly.

# Key Features

  - Typed coercion: strings, booleans, numbers, dates, durations, URLs, JSON and lists.
  - Fail fast by default: the first missing or invalid variable aborts resolution.
  - Pluggable policy: value source, name formatter and error handler are options.
  - Shape checking: a malformed schema is reported before any variable is read.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/envschema"
		"github.com/aretw0/envschema/pkg/schema"
	)

	var configSchema = schema.Schema{
		"NodeEnv":      schema.OneOf("development", "production"),
		"Port":         schema.Number(),
		"IsLocal":      schema.Bool(),
		"S3BucketName": schema.As("S3_BUCKET_NAME", schema.String()),
		"Aws": schema.Schema{
			"AccessKeyId":     schema.String(),
			"SecretAccessKey": schema.String(),
		},
	}

	func main() {
		cfg, err := envschema.Resolve(configSchema)
		if err != nil {
			log.Fatal(err)
		}
		port, _ := cfg.Lookup("Port")
		log.Printf("listening on %v", port)
	}

Results can be decoded into structs with Decode or Load.

To report every problem at once instead of stopping at the first, pass an
ErrorCollector:

	c := envschema.NewErrorCollector()
	cfg, _ := envschema.Resolve(configSchema, envschema.WithErrorHandler(c.Handle))
	if err := c.Err(); err != nil {
		log.Fatal(err)
	}

# Value Sources

The process environment is read by default. Values can instead come from
pkg/adapters/memory, dotenv or YAML files via pkg/adapters/file, or several
sources layered with pkg/adapters/chain.
*/
package envschema
