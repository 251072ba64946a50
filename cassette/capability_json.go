//go:build !cassette_nojson

package cassette

// The json capability: structured JSON bodies are compiled in.
const capJSON = true
