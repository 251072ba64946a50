package cassette

import (
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"
)

// URI is a recorded request URI. Decoding fails unless the text parses as
// an absolute URL.
type URI struct {
	*url.URL
}

// ParseURI parses an absolute URI.
func ParseURI(s string) (URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, fmt.Errorf("cassette: invalid uri %q: %w", s, err)
	}
	if !u.IsAbs() {
		return URI{}, fmt.Errorf("cassette: uri %q is not absolute", s)
	}
	return URI{URL: u}, nil
}

// MustParseURI is ParseURI for fixtures and tests; it panics on error.
func MustParseURI(s string) URI {
	u, err := ParseURI(s)
	if err != nil {
		panic(err)
	}
	return u
}

// UnmarshalYAML decodes the URI from its wire text.
func (u *URI) UnmarshalYAML(value *yaml.Node) error {
	node := deref(value)
	s, err := decodeString(node)
	if err != nil {
		return err
	}
	parsed, err := ParseURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalYAML encodes the URI as text.
func (u URI) MarshalYAML() (interface{}, error) {
	if u.URL == nil {
		return nil, fmt.Errorf("cassette: empty uri")
	}
	return u.URL.String(), nil
}
