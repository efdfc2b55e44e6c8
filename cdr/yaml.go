package cdr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders a CDR value tree to YAML, using the same
// ordered-table-plus-"__key_order" convention as MarshalJSON. This is
// an alternate human-readable projection of exactly the same tree;
// tooling that prefers YAML diffs over JSON diffs for save-file
// analysis can use this instead.
func MarshalYAML(v Value) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toYAMLNode(v Value) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool, int64, int, float64, string:
		var n yaml.Node
		if err := n.Encode(val); err != nil {
			return nil, err
		}
		return &n, nil
	case List:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range val {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *Table:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range val.Keys {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			valNode, err := toYAMLNode(val.Values[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		orderNode, err := toYAMLNode(stringsToList(val.Keys))
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyOrderKey}, orderNode)
		return node, nil
	default:
		return nil, fmt.Errorf("cdr: cannot marshal value of type %T to yaml", v)
	}
}

func stringsToList(ss []string) List {
	l := make(List, len(ss))
	for i, s := range ss {
		l[i] = s
	}
	return l
}

// UnmarshalYAML parses data into a CDR value tree, mirroring
// UnmarshalJSON's type mapping (mappings become *Table preserving key
// order, sequences become List).
func UnmarshalYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if node.Kind == 0 {
		return nil, nil
	}
	// A document node wraps the real root in Content[0].
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(node.Content[0])
	}
	return fromYAMLNode(&node)
}

func fromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		case "!!int":
			var i int64
			if err := node.Decode(&i); err != nil {
				return nil, err
			}
			return i, nil
		case "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return nil, err
			}
			return f, nil
		default:
			return node.Value, nil
		}
	case yaml.SequenceNode:
		var list List
		for _, child := range node.Content {
			v, err := fromYAMLNode(child)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		table := NewTable()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			v, err := fromYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			table.Set(key, v)
		}
		return table, nil
	default:
		return nil, fmt.Errorf("cdr: unsupported yaml node kind %v", node.Kind)
	}
}
