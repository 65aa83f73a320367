package kenv

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML file and flattens its nested mappings into dotted
// keys, so that
//
//	ibft:
//	  nic_addr: 10.0.0.5
//	  target_port: 3260
//
// yields ibft.nic_addr=10.0.0.5 and ibft.target_port=3260. Scalars are kept
// in their textual form; a null value sets the key with an empty value.
func LoadYAML(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ParseYAML is like LoadYAML, but operates on an in-memory document.
func ParseYAML(data []byte) (Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	m := make(Map)
	if len(doc.Content) == 0 {
		// empty document
		return m, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top-level value must be a mapping", root.Line)
	}
	if err := flatten(m, "", root); err != nil {
		return nil, err
	}
	return m, nil
}

func flatten(m Map, prefix string, n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		key := k.Value
		if prefix != "" {
			key = prefix + "." + key
		}
		for v.Kind == yaml.AliasNode {
			v = v.Alias
		}
		switch v.Kind {
		case yaml.MappingNode:
			if err := flatten(m, key, v); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if v.ShortTag() == "!!null" {
				m[key] = ""
				continue
			}
			m[key] = v.Value
		default:
			return fmt.Errorf("line %d: %s: only scalars and mappings are supported", v.Line, key)
		}
	}
	return nil
}
