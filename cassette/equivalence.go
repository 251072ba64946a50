package cassette

// Equivalent reports whether the observed body satisfies the recorded one.
// Playback consumers use it to pick an interaction for an incoming request;
// the operand order is fixed, recorded first, because the relation is not
// symmetric.
//
// The exhaustive rule table, by (recorded, observed) kind:
//
//	string s     / string o          s == o
//	string s     / encoded(enc,str)  enc absent and s == str
//	string s     / matchers m        every matcher in m matches s
//	string s     / json j            render(j) == s
//	encoded(e,s) / string o          e absent and s == o
//	encoded(e,s) / encoded(e2,s2)    e == e2 and s == s2
//	encoded      / matchers or json  false
//	matchers m   / string s          every matcher in m matches s
//	matchers m   / json j            every matcher in m matches render(j)
//	matchers     / encoded, matchers false
//	json         / anything          the mirrored rule with operands swapped
//
// Two matcher-list bodies never satisfy each other, regardless of content.
// render(j) is the canonical compact JSON rendering, as produced by
// Body.String for a json body. Equivalent never fails; a json body that
// cannot be rendered simply matches nothing.
func Equivalent(recorded, observed Body) bool {
	switch recorded.kind {
	case BodyString:
		switch observed.kind {
		case BodyString:
			return recorded.str == observed.str
		case BodyEncodedString:
			return observed.encoding == nil && recorded.str == observed.str
		case BodyMatchers:
			return allMatch(observed.matchers, recorded.str)
		case BodyJSON:
			s, ok := renderJSON(observed)
			return ok && s == recorded.str
		}

	case BodyEncodedString:
		switch observed.kind {
		case BodyString:
			return recorded.encoding == nil && recorded.str == observed.str
		case BodyEncodedString:
			return strPtrEqual(recorded.encoding, observed.encoding) &&
				recorded.str == observed.str
		case BodyMatchers, BodyJSON:
			return false
		}

	case BodyMatchers:
		switch observed.kind {
		case BodyString:
			return allMatch(recorded.matchers, observed.str)
		case BodyEncodedString, BodyMatchers:
			return false
		case BodyJSON:
			s, ok := renderJSON(observed)
			return ok && allMatch(recorded.matchers, s)
		}

	case BodyJSON:
		// Mirror rule. Two json bodies compare by canonical rendering,
		// the fixed point of swapping operands.
		if observed.kind == BodyJSON {
			rs, rok := renderJSON(recorded)
			os, ook := renderJSON(observed)
			return rok && ook && rs == os
		}
		return Equivalent(observed, recorded)
	}
	return false
}

func allMatch(matchers []BodyMatcher, s string) bool {
	for _, m := range matchers {
		if !m.Matches(s) {
			return false
		}
	}
	return true
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// renderJSON renders a json body to its canonical textual form.
func renderJSON(b Body) (string, bool) {
	s, err := canonicalJSON(b.json)
	if err != nil {
		return "", false
	}
	return s, true
}
