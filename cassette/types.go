package cassette

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RecorderID identifies the library which created a recording,
// e.g. "VCR 2.0.0".
type RecorderID = string

// Headers maps a header name to its recorded values. The order of the
// values for one name is significant and preserved; the order of the
// names is not.
type Headers map[string][]string

// Cassette is an ordered collection of recorded HTTP interactions plus
// metadata about the recording.
type Cassette struct {
	// HTTPInteractions is the sequence of recorded request/response pairs.
	HTTPInteractions []Interaction `yaml:"http_interactions" json:"http_interactions"`
	// RecordedWith identifies the recording library.
	RecordedWith RecorderID `yaml:"recorded_with" json:"recorded_with"`
}

// Interaction is a single recorded request/response pair.
type Interaction struct {
	Request  Request  `yaml:"request" json:"request"`
	Response Response `yaml:"response" json:"response"`
	// RecordedAt is the RFC 2822 instant the interaction was captured.
	RecordedAt Timestamp `yaml:"recorded_at" json:"recorded_at"`
}

// Request is a recorded HTTP request.
type Request struct {
	URI     URI     `yaml:"uri" json:"uri"`
	Body    Body    `yaml:"body" json:"body"`
	Method  Method  `yaml:"method" json:"method"`
	Headers Headers `yaml:"headers" json:"headers"`
}

// Response is a recorded HTTP response.
type Response struct {
	Body        Body     `yaml:"body" json:"body"`
	HTTPVersion *Version `yaml:"http_version" json:"http_version"`
	Status      Status   `yaml:"status" json:"status"`
	Headers     Headers  `yaml:"headers" json:"headers"`
}

// Status is a recorded HTTP status line.
type Status struct {
	Code    uint16 `yaml:"code" json:"code"`
	Message string `yaml:"message" json:"message"`
}

// Decode parses a cassette document. YAML and JSON text are both
// accepted; mapping key order in the input is honored where the format
// makes it significant (the body shapes).
func Decode(data []byte) (*Cassette, error) {
	var c Cassette
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Encode renders the cassette as a YAML document.
func Encode(c *Cassette) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("cassette: encode failed: %w", err)
	}
	return out, nil
}
