package cassette

import (
	"fmt"
	"strings"
)

// Decode failures are typed so callers can tell shape mismatches apart
// from field-set mismatches. Decode is all-or-nothing: no error here ever
// leaves a partially constructed value behind.

// ShapeError reports a document node whose shape is incompatible with what
// was being decoded (for example a sequence where a body string or map was
// expected).
type ShapeError struct {
	Got  string
	Want string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cassette: invalid node: got %s, want %s", e.Got, e.Want)
}

// UnrecognizedFieldError reports a mapping key that is not part of the
// accepted field set. Accepted reflects the capabilities the package was
// built with; it may be empty for trailing keys where nothing more was
// accepted at all.
type UnrecognizedFieldError struct {
	Field    string
	Accepted []string
}

func (e *UnrecognizedFieldError) Error() string {
	if len(e.Accepted) == 0 {
		return fmt.Sprintf("cassette: unknown field %q", e.Field)
	}
	return fmt.Sprintf("cassette: unknown field %q, expected %s", e.Field, fieldList(e.Accepted))
}

// MissingFieldError reports that a required field was absent. Accepted
// names the field set that would have been accepted.
type MissingFieldError struct {
	Accepted []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("cassette: missing field %s", fieldList(e.Accepted))
}

// PatternSyntaxError reports a matcher expression that failed to compile.
type PatternSyntaxError struct {
	Pattern string
	Err     error
}

func (e *PatternSyntaxError) Error() string {
	return fmt.Sprintf("cassette: invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *PatternSyntaxError) Unwrap() error {
	return e.Err
}

// fieldList renders an accepted field set as `"a", "b" or "c"`.
func fieldList(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
