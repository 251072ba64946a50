package cassette

import (
	"gopkg.in/yaml.v3"
)

// Body decoding discriminates the wire shape by node kind and then by the
// first mapping key, in document order. There is no fallback: a map whose
// key set is not {string, encoding}, {matches} or {json} fails.

// UnmarshalYAML decodes a body from a document node.
func (b *Body) UnmarshalYAML(value *yaml.Node) error {
	node := deref(value)
	switch node.Kind {
	case yaml.ScalarNode:
		if !isStringScalar(node) {
			return &ShapeError{Got: nodeKindName(node), Want: "string or map"}
		}
		*b = StringBody(node.Value)
		return nil
	case yaml.MappingNode:
		return b.unmarshalMapping(node)
	default:
		return &ShapeError{Got: nodeKindName(node), Want: "string or map"}
	}
}

func (b *Body) unmarshalMapping(node *yaml.Node) error {
	if len(node.Content) == 0 {
		return &MissingFieldError{Accepted: missingFieldSet()}
	}
	key, val := node.Content[0], deref(node.Content[1])

	switch key.Value {
	case "encoding":
		encoding, err := decodeOptString(val)
		if err != nil {
			return err
		}
		s, err := secondField(node, "string")
		if err != nil {
			return err
		}
		*b = EncodedStringBody(encoding, s)
		return nil

	case "string":
		s, err := decodeString(val)
		if err != nil {
			return err
		}
		encoding, err := secondFieldOpt(node, "encoding")
		if err != nil {
			return err
		}
		*b = EncodedStringBody(encoding, s)
		return nil

	case "matches":
		if !capMatching {
			return &UnrecognizedFieldError{Field: key.Value, Accepted: unknownFieldSet()}
		}
		if err := noTrailing(node, 2); err != nil {
			return err
		}
		if val.Kind != yaml.SequenceNode {
			return &ShapeError{Got: nodeKindName(val), Want: "sequence of matchers"}
		}
		matchers := make([]BodyMatcher, len(val.Content))
		for i, elem := range val.Content {
			if err := matchers[i].UnmarshalYAML(elem); err != nil {
				return err
			}
		}
		*b = MatchersBody(matchers...)
		return nil

	case "json":
		if !capJSON {
			return &UnrecognizedFieldError{Field: key.Value, Accepted: unknownFieldSet()}
		}
		if err := noTrailing(node, 2); err != nil {
			return err
		}
		*b = JSONBody(val)
		return nil

	default:
		return &UnrecognizedFieldError{Field: key.Value, Accepted: unknownFieldSet()}
	}
}

// secondField requires the mapping's second key to be want, with a string
// value, and nothing after it.
func secondField(node *yaml.Node, want string) (string, error) {
	if len(node.Content) < 4 {
		return "", &MissingFieldError{Accepted: []string{want}}
	}
	if key := node.Content[2]; key.Value != want {
		return "", &UnrecognizedFieldError{Field: key.Value, Accepted: []string{want}}
	}
	s, err := decodeString(deref(node.Content[3]))
	if err != nil {
		return "", err
	}
	return s, noTrailing(node, 4)
}

// secondFieldOpt is secondField for the optional-string "encoding" slot.
func secondFieldOpt(node *yaml.Node, want string) (*string, error) {
	if len(node.Content) < 4 {
		return nil, &MissingFieldError{Accepted: []string{want}}
	}
	if key := node.Content[2]; key.Value != want {
		return nil, &UnrecognizedFieldError{Field: key.Value, Accepted: []string{want}}
	}
	s, err := decodeOptString(deref(node.Content[3]))
	if err != nil {
		return nil, err
	}
	return s, noTrailing(node, 4)
}

// noTrailing fails if the mapping has entries beyond the first n
// content nodes (two per entry).
func noTrailing(node *yaml.Node, n int) error {
	if len(node.Content) > n {
		return &UnrecognizedFieldError{Field: node.Content[n].Value}
	}
	return nil
}

func decodeString(n *yaml.Node) (string, error) {
	if !isStringScalar(n) {
		return "", &ShapeError{Got: nodeKindName(n), Want: "string"}
	}
	return n.Value, nil
}

func decodeOptString(n *yaml.Node) (*string, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	s, err := decodeString(n)
	if err != nil {
		return nil, &ShapeError{Got: nodeKindName(n), Want: "string or null"}
	}
	return &s, nil
}
