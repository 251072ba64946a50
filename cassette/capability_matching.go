//go:build !cassette_nomatching

package cassette

// The matching capability: matcher-list bodies and the matcher
// sub-language are compiled in.
const capMatching = true
