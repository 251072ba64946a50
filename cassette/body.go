package cassette

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BodyKind identifies the wire shape of a recorded HTTP body.
type BodyKind uint8

const (
	// BodyString is a bare string body. Matches only if the observed body
	// equals the string exactly.
	BodyString BodyKind = iota
	// BodyEncodedString is a string tagged with the encoding it was
	// recorded in (such as base64). Both string and encoding must match.
	BodyEncodedString
	// BodyMatchers is a list of matcher rules. All of them must pass for
	// an observed body to match. Requires the matching capability.
	BodyMatchers
	// BodyJSON is a structured JSON body, kept as a document subtree.
	// Mostly useful to define a JSON response without escaping a thousand
	// quotes. Requires the json capability.
	BodyJSON
)

// String returns the kind name.
func (k BodyKind) String() string {
	switch k {
	case BodyString:
		return "string"
	case BodyEncodedString:
		return "encoded-string"
	case BodyMatchers:
		return "matchers"
	case BodyJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Body is a recorded HTTP body: a discriminated union over the four wire
// shapes. The zero value is the empty bare-string body. A Body is immutable
// once constructed and safe for concurrent reads.
type Body struct {
	kind     BodyKind
	str      string
	encoding *string
	matchers []BodyMatcher
	json     *yaml.Node
}

// StringBody returns a bare string body.
func StringBody(s string) Body {
	return Body{kind: BodyString, str: s}
}

// EncodedStringBody returns a string body tagged with an encoding.
// A nil encoding records a body whose encoding was not known.
func EncodedStringBody(encoding *string, s string) Body {
	return Body{kind: BodyEncodedString, encoding: encoding, str: s}
}

// MatchersBody returns a matcher-list body. All matchers must pass for an
// observed body to satisfy it.
func MatchersBody(matchers ...BodyMatcher) Body {
	return Body{kind: BodyMatchers, matchers: matchers}
}

// JSONBody returns a structured JSON body holding the given document node.
func JSONBody(node *yaml.Node) Body {
	return Body{kind: BodyJSON, json: node}
}

// JSONBodyOf builds a structured JSON body from an arbitrary Go value.
func JSONBodyOf(v interface{}) (Body, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return Body{}, fmt.Errorf("cassette: cannot build json body: %w", err)
	}
	return JSONBody(&node), nil
}

// Kind returns the body's wire shape.
func (b Body) Kind() BodyKind {
	return b.kind
}

// AsString returns the bare string value.
func (b Body) AsString() (string, error) {
	if b.kind != BodyString {
		return "", fmt.Errorf("cassette: expected string body, got %s", b.kind)
	}
	return b.str, nil
}

// AsEncodedString returns the encoding and string of an encoded-string body.
func (b Body) AsEncodedString() (encoding *string, s string, err error) {
	if b.kind != BodyEncodedString {
		return nil, "", fmt.Errorf("cassette: expected encoded-string body, got %s", b.kind)
	}
	return b.encoding, b.str, nil
}

// AsMatchers returns the matcher rules of a matcher-list body.
func (b Body) AsMatchers() ([]BodyMatcher, error) {
	if b.kind != BodyMatchers {
		return nil, fmt.Errorf("cassette: expected matchers body, got %s", b.kind)
	}
	return b.matchers, nil
}

// AsJSON returns the document subtree of a structured JSON body.
func (b Body) AsJSON() (*yaml.Node, error) {
	if b.kind != BodyJSON {
		return nil, fmt.Errorf("cassette: expected json body, got %s", b.kind)
	}
	return b.json, nil
}

// String renders the body for diagnostics. This is not the wire encoding:
// encoded strings render as (encoding)string, matcher lists as their rule
// list, and json bodies as canonical compact JSON.
func (b Body) String() string {
	switch b.kind {
	case BodyString:
		return b.str
	case BodyEncodedString:
		if b.encoding != nil {
			return "(" + *b.encoding + ")" + b.str
		}
		return b.str
	case BodyMatchers:
		parts := make([]string, len(b.matchers))
		for i, m := range b.matchers {
			parts[i] = m.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case BodyJSON:
		s, err := canonicalJSON(b.json)
		if err != nil {
			return fmt.Sprintf("<invalid json body: %v>", err)
		}
		return s
	default:
		return fmt.Sprintf("<unknown body kind %d>", b.kind)
	}
}
