package cassette

// Optional body shapes are build-time capabilities, not runtime flags.
// The flags live in the capability_*.go file pairs so a build either
// compiles a shape in or leaves it out entirely. Error messages derive
// their accepted field sets from the active flags, never from a
// hard-coded list.

// unknownFieldSet is the accepted discriminator set reported when the
// first body key is not recognized.
func unknownFieldSet() []string {
	fields := []string{"encoding", "string"}
	if capMatching {
		fields = append(fields, "matches")
	}
	if capJSON {
		fields = append(fields, "json")
	}
	return fields
}

// missingFieldSet is the accepted discriminator set reported when a body
// map has no keys at all.
func missingFieldSet() []string {
	var fields []string
	if capMatching {
		fields = append(fields, "matches")
	}
	if capJSON {
		fields = append(fields, "json")
	}
	return append(fields, "encoding", "string")
}
