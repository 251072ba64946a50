package cassette

import (
	"gopkg.in/yaml.v3"
)

// Envelope decoding works against nodes directly. Routing every field's
// value node through its own decoder keeps decode all-or-nothing: a null
// node fails the field's shape check instead of silently leaving the zero
// value behind. Unknown envelope keys are ignored; body maps stay strict.

type recordField struct {
	name     string
	optional bool
	decode   func(*yaml.Node) error
}

// decodeRecord decodes a mapping against a field table. Required fields
// that never appear fail with a MissingFieldError naming the field.
func decodeRecord(value *yaml.Node, fields []recordField) error {
	node := deref(value)
	if node.Kind != yaml.MappingNode {
		return &ShapeError{Got: nodeKindName(node), Want: "map"}
	}
	seen := make([]bool, len(fields))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		for j := range fields {
			if fields[j].name == key {
				if err := fields[j].decode(deref(node.Content[i+1])); err != nil {
					return err
				}
				seen[j] = true
				break
			}
		}
	}
	for j := range fields {
		if !fields[j].optional && !seen[j] {
			return &MissingFieldError{Accepted: []string{fields[j].name}}
		}
	}
	return nil
}

// UnmarshalYAML decodes the cassette envelope.
func (c *Cassette) UnmarshalYAML(value *yaml.Node) error {
	return decodeRecord(value, []recordField{
		{name: "http_interactions", decode: func(n *yaml.Node) error {
			if n.Kind != yaml.SequenceNode {
				return &ShapeError{Got: nodeKindName(n), Want: "sequence"}
			}
			c.HTTPInteractions = make([]Interaction, len(n.Content))
			for i, elem := range n.Content {
				if err := c.HTTPInteractions[i].UnmarshalYAML(elem); err != nil {
					return err
				}
			}
			return nil
		}},
		{name: "recorded_with", decode: func(n *yaml.Node) error {
			s, err := decodeString(n)
			if err != nil {
				return err
			}
			c.RecordedWith = s
			return nil
		}},
	})
}

// UnmarshalYAML decodes a recorded interaction.
func (in *Interaction) UnmarshalYAML(value *yaml.Node) error {
	return decodeRecord(value, []recordField{
		{name: "request", decode: in.Request.UnmarshalYAML},
		{name: "response", decode: in.Response.UnmarshalYAML},
		{name: "recorded_at", decode: in.RecordedAt.UnmarshalYAML},
	})
}

// UnmarshalYAML decodes a recorded request.
func (r *Request) UnmarshalYAML(value *yaml.Node) error {
	return decodeRecord(value, []recordField{
		{name: "uri", decode: r.URI.UnmarshalYAML},
		{name: "body", decode: r.Body.UnmarshalYAML},
		{name: "method", decode: r.Method.UnmarshalYAML},
		{name: "headers", decode: decodeHeaders(&r.Headers)},
	})
}

// UnmarshalYAML decodes a recorded response. http_version is the one
// optional field: absent and null both decode to nil.
func (r *Response) UnmarshalYAML(value *yaml.Node) error {
	return decodeRecord(value, []recordField{
		{name: "body", decode: r.Body.UnmarshalYAML},
		{name: "http_version", optional: true, decode: func(n *yaml.Node) error {
			if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
				r.HTTPVersion = nil
				return nil
			}
			var v Version
			if err := v.UnmarshalYAML(n); err != nil {
				return err
			}
			r.HTTPVersion = &v
			return nil
		}},
		{name: "status", decode: r.Status.UnmarshalYAML},
		{name: "headers", decode: decodeHeaders(&r.Headers)},
	})
}

// UnmarshalYAML decodes a status line.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	return decodeRecord(value, []recordField{
		{name: "code", decode: func(n *yaml.Node) error {
			if n.Kind != yaml.ScalarNode || n.Tag != "!!int" {
				return &ShapeError{Got: nodeKindName(n), Want: "integer"}
			}
			return n.Decode(&s.Code)
		}},
		{name: "message", decode: func(n *yaml.Node) error {
			m, err := decodeString(n)
			if err != nil {
				return err
			}
			s.Message = m
			return nil
		}},
	})
}

func decodeHeaders(h *Headers) func(*yaml.Node) error {
	return func(n *yaml.Node) error {
		if n.Kind != yaml.MappingNode {
			return &ShapeError{Got: nodeKindName(n), Want: "map"}
		}
		return n.Decode(h)
	}
}
