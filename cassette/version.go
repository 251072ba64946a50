package cassette

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Version is the HTTP protocol version of a recorded response. The set is
// closed and ordered, so versions compare with < and >.
type Version uint8

const (
	VersionHTTP09 Version = iota + 1
	VersionHTTP10
	VersionHTTP11
	VersionHTTP2
	VersionHTTP3
)

var versionText = map[Version]string{
	VersionHTTP09: "0.9",
	VersionHTTP10: "1.0",
	VersionHTTP11: "1.1",
	VersionHTTP2:  "2",
	VersionHTTP3:  "3",
}

// ParseVersion parses the wire text of a version.
func ParseVersion(s string) (Version, error) {
	for v, text := range versionText {
		if text == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("cassette: unknown http_version %q", s)
}

// String returns the wire text, e.g. "1.1".
func (v Version) String() string {
	if text, ok := versionText[v]; ok {
		return text
	}
	return fmt.Sprintf("unknown(%d)", uint8(v))
}

// UnmarshalYAML decodes a version from its wire text. The scalar's literal
// text is matched, so an unquoted YAML 1.1 works the same as "1.1".
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	node := deref(value)
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return &ShapeError{Got: nodeKindName(node), Want: "version string"}
	}
	parsed, err := ParseVersion(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the version as its wire text.
func (v Version) MarshalYAML() (interface{}, error) {
	text, ok := versionText[v]
	if !ok {
		return nil, fmt.Errorf("cassette: unknown version %d", uint8(v))
	}
	return text, nil
}
