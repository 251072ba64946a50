// Package cassette implements the VCR cassette format: an ordered
// collection of recorded HTTP request/response pairs plus metadata,
// used to replay network traffic in tests.
//
// A cassette document looks like:
//
//	http_interactions:
//	  - request:
//	      uri: http://localhost:7777/foo
//	      body: ""
//	      method: get
//	      headers:
//	        Accept-Encoding: ["identity"]
//	    response:
//	      body: "Hello foo"
//	      http_version: "1.1"
//	      status: { code: 200, message: OK }
//	      headers:
//	        Content-Type: ["text/html;charset=utf-8"]
//	    recorded_at: "Tue, 01 Nov 2011 04:58:44 GMT"
//	recorded_with: "VCR 2.0.0"
//
// JSON cassettes are accepted by Decode as well (JSON is a YAML subset)
// and produced by EncodeJSON.
//
// # Bodies
//
// An HTTP body appears in one of four wire shapes, discriminated by the
// first mapping key:
//
//	body: "ohai!"                          # bare string
//	body: { string: aGk=, encoding: base64 }
//	body: { matches: [ {substring: foo}, {regex: "^h.*o$"} ] }
//	body: { json: { any: [structure] } }
//
// The matches and json shapes are build-time capabilities; compiling with
// the cassette_nomatching or cassette_nojson build tags removes them, and
// the field sets reported in decode errors shrink accordingly.
//
// # Matching
//
// Equivalent reports whether a body observed during playback satisfies a
// recorded one. The relation is not structural equality and not symmetric;
// see Equivalent for the full rule table.
package cassette
