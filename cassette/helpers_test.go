package cassette

import "testing"

// bodiesEqual is the structural equality used by round-trip tests. It is
// deliberately distinct from Equivalent: same kind, same fields, matcher
// lists compared by variant and source, json bodies by canonical form.
func bodiesEqual(a, b Body) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case BodyString:
		return a.str == b.str
	case BodyEncodedString:
		return a.str == b.str && strPtrEqual(a.encoding, b.encoding)
	case BodyMatchers:
		if len(a.matchers) != len(b.matchers) {
			return false
		}
		for i := range a.matchers {
			if a.matchers[i].kind != b.matchers[i].kind ||
				a.matchers[i].Source() != b.matchers[i].Source() {
				return false
			}
		}
		return true
	case BodyJSON:
		as, aok := renderJSON(a)
		bs, bok := renderJSON(b)
		return aok && bok && as == bs
	default:
		return false
	}
}

func strPtr(s string) *string {
	return &s
}

func mustRegexMatcher(t *testing.T, src string) BodyMatcher {
	t.Helper()
	m, err := RegexMatcher(src)
	if err != nil {
		t.Fatalf("RegexMatcher(%q): %v", src, err)
	}
	return m
}

func mustJSONBody(t *testing.T, v interface{}) Body {
	t.Helper()
	b, err := JSONBodyOf(v)
	if err != nil {
		t.Fatalf("JSONBodyOf: %v", err)
	}
	return b
}
