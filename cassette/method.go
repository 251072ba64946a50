package cassette

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Method is an HTTP method. The standard verbs are canonicalized to the
// constants below; anything else round-trips as arbitrary text, which is
// how WebDAV and custom verbs are recorded.
type Method string

const (
	MethodConnect Method = "CONNECT"
	MethodDelete  Method = "DELETE"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodPatch   Method = "PATCH"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodTrace   Method = "TRACE"
)

var standardMethods = []Method{
	MethodConnect, MethodDelete, MethodGet, MethodHead, MethodOptions,
	MethodPatch, MethodPost, MethodPut, MethodTrace,
}

// MethodFromString matches s case-insensitively against the standard verb
// set and falls back to the text itself for custom methods.
func MethodFromString(s string) Method {
	upper := Method(strings.ToUpper(s))
	for _, m := range standardMethods {
		if m == upper {
			return m
		}
	}
	return Method(s)
}

// IsStandard reports whether m is one of the closed verb set.
func (m Method) IsStandard() bool {
	for _, std := range standardMethods {
		if m == std {
			return true
		}
	}
	return false
}

// String returns the verb text, uppercase for standard verbs.
func (m Method) String() string {
	return string(m)
}

// UnmarshalYAML decodes a method from its wire text.
func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	node := deref(value)
	s, err := decodeString(node)
	if err != nil {
		return err
	}
	*m = MethodFromString(s)
	return nil
}

// MarshalYAML encodes standard verbs lowercase, as the cassette format
// records them, and custom verbs verbatim.
func (m Method) MarshalYAML() (interface{}, error) {
	if m.IsStandard() {
		return strings.ToLower(string(m)), nil
	}
	return string(m), nil
}
