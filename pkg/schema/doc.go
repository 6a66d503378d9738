// Package schema defines the building blocks of an environment schema.
//
// A Schema maps configuration keys to leaves. A leaf is exactly one of:
//
//   - a Validator, resolved from a variable name derived from its key
//   - an Override, resolved from an explicit, absolute variable name
//   - a nested Schema, whose variables share the parent key as a prefix
//
// Basic usage:
//
//	s := schema.Schema{
//	    "Port":         schema.Number(),
//	    "IsLocal":      schema.Bool(),
//	    "S3BucketName": schema.As("S3_BUCKET_NAME", schema.String()),
//	    "Aws": schema.Schema{
//	        "AccessKeyId": schema.String(),
//	    },
//	}
//
// Validators combine a transform (raw value to target type) with a
// predicate (is the transformed value acceptable?). Transform builds one from
// the two parts, which is also how custom validators are written:
//
//	type Feature struct{ Enabled bool }
//
//	feature := schema.Transform(parseFeature, schema.Is[Feature]())
//
// Schemas can also be read from YAML or JSON definition files, where a
// string names a type, a two element list is an override and a mapping is a
// nested schema:
//
//	Port: number
//	S3BucketName: [S3_BUCKET_NAME, string]
//	Aws:
//	  AccessKeyId: string
package schema
