package enumdecl

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/glyphkit/enumset"
)

// Parse reads a single enum declaration from YAML. A sequence of strings
// becomes a self-valued definition; a mapping of names to scalars becomes an
// explicit definition with document order preserved. Anything else fails
// with an invalid-argument error.
func Parse(data []byte) (enumset.Definition, error) {
	const op = "enumdecl.Parse"

	root, err := parseRoot(op, data)
	if err != nil {
		return nil, err
	}
	return definitionFromNode(op, root)
}

// Load reads a single enum declaration from r. See Parse.
func Load(r io.Reader) (enumset.Definition, error) {
	const op = "enumdecl.Load"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, enumset.NewInvalidArgumentError(op, fmt.Errorf("reading declaration: %w", err))
	}
	return Parse(data)
}

// ParseAll reads a document declaring several named enums: a top-level
// mapping whose keys are enum names and whose values are declarations in
// either mode. Returns one Definition per enum name.
func ParseAll(data []byte) (map[string]enumset.Definition, error) {
	const op = "enumdecl.ParseAll"

	root, err := parseRoot(op, data)
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.MappingNode {
		return nil, enumset.NewInvalidArgumentError(op, errors.New("document must be a mapping of enum names to declarations"))
	}

	defs := make(map[string]enumset.Definition, len(root.Content)/2)
	for i := 0; i < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		name, err := stringKey(op, keyNode)
		if err != nil {
			return nil, err
		}
		if _, exists := defs[name]; exists {
			return nil, enumset.NewInvalidArgumentError(op, fmt.Errorf("enum name %q is declared twice", name))
		}

		def, err := definitionFromNode(op, valNode)
		if err != nil {
			return nil, err
		}
		defs[name] = def
	}
	return defs, nil
}

// parseRoot unmarshals data and returns the document's root node.
func parseRoot(op string, data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, enumset.NewInvalidArgumentError(op, fmt.Errorf("invalid YAML: %w", err))
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, enumset.NewInvalidArgumentError(op, errors.New("document must declare at least one symbol"))
	}
	return doc.Content[0], nil
}

// definitionFromNode converts a sequence or mapping node into a Definition.
func definitionFromNode(op string, node *yaml.Node) (enumset.Definition, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		names := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return nil, enumset.NewInvalidArgumentError(op,
					fmt.Errorf("line %d: sequence entries must be strings", item.Line))
			}
			names = append(names, item.Value)
		}
		return enumset.Names(names...), nil

	case yaml.MappingNode:
		seen := make(map[string]bool, len(node.Content)/2)
		pairs := make([]enumset.Pair, 0, len(node.Content)/2)
		for i := 0; i < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			name, err := stringKey(op, keyNode)
			if err != nil {
				return nil, err
			}
			if seen[name] {
				return nil, enumset.NewInvalidArgumentError(op, fmt.Errorf("name %q is not unique", name))
			}
			seen[name] = true

			value, err := scalarValue(op, name, valNode)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, enumset.Pair{Name: name, Value: value})
		}
		return enumset.Pairs(pairs...), nil
	}

	return nil, enumset.NewInvalidArgumentError(op,
		fmt.Errorf("line %d: declaration must be a sequence of names or a mapping of names to values", node.Line))
}

// stringKey validates that a mapping key is a non-empty string.
func stringKey(op string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" || node.Value == "" {
		return "", enumset.NewInvalidArgumentError(op,
			fmt.Errorf("line %d: keys must be non-empty strings", node.Line))
	}
	return node.Value, nil
}

// scalarValue decodes a mapping value into a bool, string, int64, or
// float64. enumset.New normalizes the numeric types on construction.
func scalarValue(op, name string, node *yaml.Node) (any, error) {
	if node.Kind == yaml.ScalarNode {
		switch node.Tag {
		case "!!str":
			return node.Value, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err == nil {
				return b, nil
			}
		case "!!int":
			var i int64
			if err := node.Decode(&i); err == nil {
				return i, nil
			}
		case "!!float":
			var f float64
			if err := node.Decode(&f); err == nil {
				return f, nil
			}
		}
	}
	return nil, enumset.NewInvalidArgumentError(op,
		fmt.Errorf("line %d: value for %q must be a boolean, string, or number", node.Line, name)).
		WithContext(map[string]any{"name": name})
}
