//go:build cassette_nomatching

package cassette

// Built without the matching capability: a "matches" body key is an
// unrecognized field and matcher-list bodies cannot be encoded.
const capMatching = false
