// Copyright 2024 The go-chainspec Authors
// This file is part of the go-chainspec library.
//
// The go-chainspec library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainspec library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainspec library. If not, see <http://www.gnu.org/licenses/>.

package spec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLToJSON converts a YAML document into the equivalent JSON document, so
// that YAML chain specifications are decoded by the same strict JSON rules.
// Mapping keys are kept as their literal text, which preserves hex heights.
func YAMLToJSON(input []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return []byte("null"), nil
	}
	v, err := yamlValue(&doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func yamlValue(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		obj := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			if _, dup := obj[key.Value]; dup {
				return nil, fmt.Errorf("line %d: %w `%s`", key.Line, ErrDuplicateField, key.Value)
			}
			val, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj[key.Value] = val
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!str":
			return n.Value, nil
		case "!!int":
			var u uint64
			if err := n.Decode(&u); err == nil {
				return u, nil
			}
			var i int64
			if err := n.Decode(&i); err != nil {
				return nil, err
			}
			return i, nil
		case "!!float":
			// The literal is kept: 3000.0 must not satisfy an integer field.
			return json.Number(n.Value), nil
		default:
			var v interface{}
			if err := n.Decode(&v); err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

// JSONToYAML converts a JSON document into YAML in block style.
func JSONToYAML(input []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return nil, err
	}
	clearStyle(&doc)
	return yaml.Marshal(&doc)
}

// clearStyle resets flow and quoting styles so the output uses plain block
// YAML. Strings that would read back as another type stay quoted.
func clearStyle(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str" {
		n.Style = yaml.DoubleQuotedStyle
		var reparsed yaml.Node
		if err := yaml.Unmarshal([]byte(n.Value), &reparsed); err == nil && len(reparsed.Content) == 1 && reparsed.Content[0].ShortTag() == "!!str" && reparsed.Content[0].Value == n.Value {
			n.Style = 0
		}
	} else {
		n.Style = 0
	}
	for _, c := range n.Content {
		clearStyle(c)
	}
}
