package cassette

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Cassettes timestamp interactions in RFC 2822 form, the convention used
// by mail dates: "Tue, 01 Nov 2011 04:58:44 GMT".

// timestampLayouts are the accepted RFC 2822 shapes: named or numeric
// zone, two-digit or bare day, with or without the weekday.
var timestampLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
}

// Timestamp is the instant at which an interaction was recorded.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses an RFC 2822 timestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("cassette: invalid recorded_at %q: not an RFC 2822 timestamp", s)
}

// Format renders the timestamp back to RFC 2822 text.
func (t Timestamp) Format() string {
	return t.Time.Format(time.RFC1123)
}

// Equal reports whether two timestamps denote the same instant.
func (t Timestamp) Equal(o Timestamp) bool {
	return t.Time.Equal(o.Time)
}

// UnmarshalYAML decodes the timestamp from its wire text.
func (t *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	node := deref(value)
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return &ShapeError{Got: nodeKindName(node), Want: "timestamp string"}
	}
	parsed, err := ParseTimestamp(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the timestamp as RFC 2822 text.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.Format(), nil
}
