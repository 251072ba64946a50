package cassette

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"gopkg.in/yaml.v3"
)

// ============================================================
// Document / JSON bridge
// ============================================================
//
// Decode accepts JSON cassettes already (JSON is a YAML subset and
// yaml.v3 keeps mapping key order). The other direction is here: walking
// a node tree and emitting compact JSON in document order, plus the
// RFC 8785 canonical form used to render json bodies as text.

// EncodeJSON encodes a cassette as compact JSON with stable field order.
func EncodeJSON(c *Cassette) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(c); err != nil {
		return nil, fmt.Errorf("cassette: encode failed: %w", err)
	}
	var buf bytes.Buffer
	if err := jsonFromNode(&buf, &node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// canonicalJSON renders a node subtree as RFC 8785 canonical JSON:
// compact, sorted keys, canonical number form.
func canonicalJSON(node *yaml.Node) (string, error) {
	if node == nil {
		return "", fmt.Errorf("cassette: nil json body")
	}
	var buf bytes.Buffer
	if err := jsonFromNode(&buf, node); err != nil {
		return "", err
	}
	out, err := jcs.Transform(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("cassette: canonicalize failed: %w", err)
	}
	return string(out), nil
}

// jsonFromNode writes the JSON rendering of a node subtree, preserving
// mapping key order.
func jsonFromNode(buf *bytes.Buffer, n *yaml.Node) error {
	n = deref(n)
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return jsonScalar(buf, n)
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, elem := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := jsonFromNode(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := jsonString(buf, n.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := jsonFromNode(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("cassette: cannot render %s node as JSON", nodeKindName(n))
	}
}

func jsonScalar(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Tag {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool", "!!int":
		buf.WriteString(n.Value)
		return nil
	case "!!float":
		// Reject YAML-only float forms (.inf, .nan) rather than emit
		// invalid JSON.
		var f float64
		if err := n.Decode(&f); err != nil {
			return fmt.Errorf("cassette: float %q is not representable in JSON", n.Value)
		}
		raw, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("cassette: float %q is not representable in JSON", n.Value)
		}
		buf.Write(raw)
		return nil
	default:
		return jsonString(buf, n.Value)
	}
}

func jsonString(buf *bytes.Buffer, s string) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(raw)
	return nil
}
