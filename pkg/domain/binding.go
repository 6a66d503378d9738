package domain

// Binding ties a schema leaf to the variable it reads.
type Binding struct {
	// Path is the dotted key path from the schema root, e.g. "Aws.S3Credentials.AccessKeyId".
	Path string `json:"path"`
	// Key is the leaf's own key.
	Key string `json:"key"`
	// Variable is the name queried from the value source.
	Variable string `json:"variable"`
	// Override reports whether Variable came from an explicit override.
	Override bool `json:"override,omitempty"`
}
