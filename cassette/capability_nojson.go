//go:build cassette_nojson

package cassette

// Built without the json capability: a "json" body key is an
// unrecognized field and structured bodies cannot be encoded.
const capJSON = false
