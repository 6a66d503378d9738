package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse reads a schema definition written in YAML or JSON.
// Type names are resolved with types; nil means BuiltinTypes.
func Parse(data []byte, types TypeResolver) (Schema, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse schema definition: %w", err)
	}
	return Decode(&node, types)
}

// Decode builds a Schema from a YAML node.
func Decode(node *yaml.Node, types TypeResolver) (Schema, error) {
	if types == nil {
		types = BuiltinTypes()
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, &SchemaError{Reason: "definition is empty"}
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return nil, &SchemaError{Reason: "definition is empty"}
	}
	return decodeMapping(node, "", types)
}

// UnmarshalYAML decodes a definition using the built-in type names.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := Decode(value, nil)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// UnmarshalJSON decodes a definition using the built-in type names.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}
	decoded, err := Parse(data, nil)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

func decodeMapping(node *yaml.Node, path string, types TypeResolver) (Schema, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, &SchemaError{Path: path, Reason: "expected a mapping of keys to types"}
	}

	s := make(Schema, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		at := JoinPath(path, key)

		if keyNode.Kind != yaml.ScalarNode || key == "" {
			return nil, &SchemaError{Path: at, Reason: "each schema key must be a non-empty string"}
		}
		if _, dup := s[key]; dup {
			return nil, &SchemaError{Path: at, Reason: "duplicate key"}
		}

		leaf, err := decodeLeaf(valNode, at, types)
		if err != nil {
			return nil, err
		}
		s[key] = leaf
	}
	return s, nil
}

func decodeLeaf(node *yaml.Node, at string, types TypeResolver) (Leaf, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return lookupType(node.Value, at, types)
	case yaml.SequenceNode:
		if len(node.Content) != 2 ||
			node.Content[0].Kind != yaml.ScalarNode || node.Content[0].Value == "" ||
			node.Content[1].Kind != yaml.ScalarNode {
			return nil, &SchemaError{Path: at, Reason: `override must be a [VARIABLE_NAME, type] pair (quote list types such as "[int]")`}
		}
		v, err := lookupType(node.Content[1].Value, at, types)
		if err != nil {
			return nil, err
		}
		return As(node.Content[0].Value, v), nil
	case yaml.MappingNode:
		return decodeMapping(node, at, types)
	case yaml.AliasNode:
		if node.Alias != nil {
			return decodeLeaf(node.Alias, at, types)
		}
	}
	return nil, &SchemaError{Path: at, Reason: "each property must be a type name, an override pair, or a nested mapping"}
}

func lookupType(name, at string, types TypeResolver) (Validator, error) {
	v, ok := types.Lookup(name)
	if !ok {
		return nil, &SchemaError{Path: at, Reason: fmt.Sprintf("unsupported type: %q", name)}
	}
	return v, nil
}
