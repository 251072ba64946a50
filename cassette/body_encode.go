package cassette

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Body encoding is shape-dependent. The entry order of the encoded-string
// map, "string" then "encoding", is a stable contract; matcher-list and
// json bodies emit single-entry maps.

// MarshalYAML encodes the body to its wire form.
func (b Body) MarshalYAML() (interface{}, error) {
	return b.wireNode()
}

func (b Body) wireNode() (*yaml.Node, error) {
	switch b.kind {
	case BodyString:
		return strNode(b.str), nil

	case BodyEncodedString:
		enc := nullNode()
		if b.encoding != nil {
			enc = strNode(*b.encoding)
		}
		return mappingNode(
			strNode("string"), strNode(b.str),
			strNode("encoding"), enc,
		), nil

	case BodyMatchers:
		if !capMatching {
			return nil, fmt.Errorf("cassette: matcher bodies are not compiled into this build")
		}
		items := make([]*yaml.Node, len(b.matchers))
		for i, m := range b.matchers {
			node, err := m.wireNode()
			if err != nil {
				return nil, err
			}
			items[i] = node
		}
		return mappingNode(strNode("matches"), sequenceNode(items...)), nil

	case BodyJSON:
		if !capJSON {
			return nil, fmt.Errorf("cassette: json bodies are not compiled into this build")
		}
		return mappingNode(strNode("json"), b.json), nil

	default:
		return nil, fmt.Errorf("cassette: unknown body kind %d", b.kind)
	}
}
