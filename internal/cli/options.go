package cli

// Options holds the flags shared by every command.
type Options struct {
	SchemaPath   string
	EnvFiles     []string
	NoProcessEnv bool
	Prefix       string
	Debug        bool
}

// DefaultSchemaPath is read when --schema is not given.
const DefaultSchemaPath = "envschema.yaml"
