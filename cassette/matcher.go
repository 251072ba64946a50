package cassette

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// MatcherKind identifies a body matcher rule variant.
type MatcherKind uint8

const (
	// MatcherSubstring passes when the body contains the string.
	MatcherSubstring MatcherKind = iota
	// MatcherRegex passes when the regular expression finds a match
	// anywhere in the body (it is not anchored).
	MatcherRegex
)

// BodyMatcher is one rule for deciding whether an observed body satisfies a
// recorded expectation: a literal substring or a regular expression.
// Immutable once constructed.
type BodyMatcher struct {
	kind   MatcherKind
	substr string
	re     *regexp.Regexp
}

// SubstringMatcher returns a matcher that passes when the body contains s.
// Construction never fails.
func SubstringMatcher(s string) BodyMatcher {
	return BodyMatcher{kind: MatcherSubstring, substr: s}
}

// RegexMatcher compiles src and returns a matcher that passes when the
// expression matches anywhere in the body. Returns a *PatternSyntaxError if
// src is not a valid expression.
func RegexMatcher(src string) (BodyMatcher, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return BodyMatcher{}, &PatternSyntaxError{Pattern: src, Err: err}
	}
	return BodyMatcher{kind: MatcherRegex, re: re}, nil
}

// Kind returns the matcher variant.
func (m BodyMatcher) Kind() MatcherKind {
	return m.kind
}

// Matches reports whether s satisfies the rule.
func (m BodyMatcher) Matches(s string) bool {
	switch m.kind {
	case MatcherSubstring:
		return strings.Contains(s, m.substr)
	case MatcherRegex:
		return m.re.MatchString(s)
	default:
		return false
	}
}

// Source returns the substring or regular expression source text.
func (m BodyMatcher) Source() string {
	if m.kind == MatcherRegex {
		return m.re.String()
	}
	return m.substr
}

// String renders the matcher for diagnostics.
func (m BodyMatcher) String() string {
	if m.kind == MatcherRegex {
		return fmt.Sprintf("Regex(%s)", m.re.String())
	}
	return fmt.Sprintf("Substring(%q)", m.substr)
}

// matcherFields is the accepted rule key set, for decode errors.
var matcherFields = []string{"substring", "regex"}

// UnmarshalYAML decodes a matcher from its wire form, a single-entry map:
// {substring: text} or {regex: source}.
func (m *BodyMatcher) UnmarshalYAML(value *yaml.Node) error {
	node := deref(value)
	if node.Kind != yaml.MappingNode {
		return &ShapeError{Got: nodeKindName(node), Want: "map"}
	}
	if len(node.Content) == 0 {
		return &MissingFieldError{Accepted: matcherFields}
	}
	key, val := node.Content[0], deref(node.Content[1])
	switch key.Value {
	case "substring":
		var s string
		if err := val.Decode(&s); err != nil {
			return &ShapeError{Got: nodeKindName(val), Want: "string"}
		}
		*m = SubstringMatcher(s)
	case "regex":
		var src string
		if err := val.Decode(&src); err != nil {
			return &ShapeError{Got: nodeKindName(val), Want: "string"}
		}
		matcher, err := RegexMatcher(src)
		if err != nil {
			return err
		}
		*m = matcher
	default:
		return &UnrecognizedFieldError{Field: key.Value, Accepted: matcherFields}
	}
	if len(node.Content) > 2 {
		return &UnrecognizedFieldError{Field: node.Content[2].Value}
	}
	return nil
}

// MarshalYAML encodes the matcher to its wire form.
func (m BodyMatcher) MarshalYAML() (interface{}, error) {
	return m.wireNode()
}

func (m BodyMatcher) wireNode() (*yaml.Node, error) {
	switch m.kind {
	case MatcherSubstring:
		return mappingNode(strNode("substring"), strNode(m.substr)), nil
	case MatcherRegex:
		return mappingNode(strNode("regex"), strNode(m.re.String())), nil
	default:
		return nil, fmt.Errorf("cassette: unknown matcher kind %d", m.kind)
	}
}
