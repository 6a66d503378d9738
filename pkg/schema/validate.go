package schema

import "sort"

// Leaf is a single schema entry: a Validator, an Override or a nested Schema.
type Leaf interface {
	isLeaf()
}

// Override reads its value from an explicit variable name.
// The name is absolute: neither prefixes nor name formatting apply to it.
type Override struct {
	Name      string
	Validator Validator
}

func (Override) isLeaf() {}

// As returns an Override reading variable name with v.
func As(name string, v Validator) Override {
	return Override{Name: name, Validator: v}
}

// Schema maps configuration keys to leaves.
type Schema map[string]Leaf

func (Schema) isLeaf() {}

// Keys returns the schema keys in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Check verifies the shape of s and every nested schema.
// It returns a *SchemaError for the first malformed entry, in key order.
func Check(s Schema) error {
	if s == nil {
		return &SchemaError{Reason: "schema must be a non-nil mapping"}
	}
	return check(s, "")
}

func check(s Schema, path string) error {
	for _, key := range s.Keys() {
		at := JoinPath(path, key)
		if key == "" {
			return &SchemaError{Path: at, Reason: "each schema key must be a non-empty string"}
		}

		switch leaf := s[key].(type) {
		case Validator:
			if leaf == nil {
				return &SchemaError{Path: at, Reason: "validator is nil"}
			}
		case Override:
			if leaf.Name == "" || leaf.Validator == nil {
				return &SchemaError{Path: at, Reason: "override must pair a non-empty variable name with a validator"}
			}
		case Schema:
			if leaf == nil {
				return &SchemaError{Path: at, Reason: "nested schema is nil"}
			}
			if err := check(leaf, at); err != nil {
				return err
			}
		default:
			return &SchemaError{Path: at, Reason: "each property must be a validator, an override, or a nested schema"}
		}
	}
	return nil
}

// JoinPath appends key to a dotted path.
func JoinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
