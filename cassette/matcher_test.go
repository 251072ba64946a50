package cassette

import (
	"errors"
	"testing"
)

func TestSubstringMatcher(t *testing.T) {
	cases := []struct {
		needle, body string
		want         bool
	}{
		{"ell", "hello", true},
		{"hello", "hello", true},
		{"", "anything", true},
		{"bye", "hello", false},
		{"Hello", "hello", false}, // case sensitive
	}
	for _, tc := range cases {
		if got := SubstringMatcher(tc.needle).Matches(tc.body); got != tc.want {
			t.Errorf("Substring(%q).Matches(%q) = %v, want %v", tc.needle, tc.body, got, tc.want)
		}
	}
}

func TestRegexMatcher(t *testing.T) {
	cases := []struct {
		expr, body string
		want       bool
	}{
		{"^h.*o$", "hello", true},
		{"^h.*o$", "goodbye", false},
		{"l+", "hello", true}, // unanchored: any match within the body
		{"^$", "", true},
		{"\\d{3}", "code 404 here", true},
	}
	for _, tc := range cases {
		m := mustRegexMatcher(t, tc.expr)
		if got := m.Matches(tc.body); got != tc.want {
			t.Errorf("Regex(%q).Matches(%q) = %v, want %v", tc.expr, tc.body, got, tc.want)
		}
	}
}

func TestRegexMatcherCompileFailure(t *testing.T) {
	_, err := RegexMatcher("[unclosed")
	var syntax *PatternSyntaxError
	if !errors.As(err, &syntax) {
		t.Fatalf("err = %v, want PatternSyntaxError", err)
	}
	if syntax.Pattern != "[unclosed" {
		t.Errorf("pattern = %q, want [unclosed", syntax.Pattern)
	}
	if syntax.Unwrap() == nil {
		t.Error("PatternSyntaxError should wrap the compile error")
	}
}
