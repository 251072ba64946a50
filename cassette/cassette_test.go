package cassette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestDecodeExampleFixtures(t *testing.T) {
	// The YAML and JSON renditions of the same recording decode to the
	// same cassette.
	for _, name := range []string{"example.yaml", "example.json"} {
		t.Run(name, func(t *testing.T) {
			c, err := Decode(readFixture(t, name))
			require.NoError(t, err)

			require.Len(t, c.HTTPInteractions, 1)
			assert.Equal(t, "VCR 2.0.0", c.RecordedWith)

			req := c.HTTPInteractions[0].Request
			assert.Equal(t, "http://localhost:7777/foo", req.URI.String())
			assert.Equal(t, MethodGet, req.Method)
			assert.True(t, bodiesEqual(req.Body, StringBody("")))
			assert.Equal(t, []string{"identity"}, req.Headers["Accept-Encoding"])

			resp := c.HTTPInteractions[0].Response
			assert.True(t, bodiesEqual(resp.Body, StringBody("Hello foo")))
			require.NotNil(t, resp.HTTPVersion)
			assert.Equal(t, VersionHTTP11, *resp.HTTPVersion)
			assert.Equal(t, uint16(200), resp.Status.Code)
			assert.Equal(t, "OK", resp.Status.Message)
			assert.Equal(t, []string{"9"}, resp.Headers["Content-Length"])

			recorded, err := ParseTimestamp("Tue, 01 Nov 2011 04:58:44 GMT")
			require.NoError(t, err)
			assert.True(t, c.HTTPInteractions[0].RecordedAt.Equal(recorded))
		})
	}
}

func TestCassetteRoundTrip(t *testing.T) {
	for _, name := range []string{"example.yaml", "example.json", "shapes.yaml"} {
		t.Run(name, func(t *testing.T) {
			c, err := Decode(readFixture(t, name))
			require.NoError(t, err)

			out, err := Encode(c)
			require.NoError(t, err)

			back, err := Decode(out)
			require.NoError(t, err)
			assertCassettesEqual(t, c, back)
		})
	}
}

func TestCassetteJSONRoundTrip(t *testing.T) {
	c, err := Decode(readFixture(t, "example.yaml"))
	require.NoError(t, err)

	out, err := EncodeJSON(c)
	require.NoError(t, err)

	back, err := Decode(out)
	require.NoError(t, err)
	assertCassettesEqual(t, c, back)
}

func TestDecodeShapesFixture(t *testing.T) {
	c, err := Decode(readFixture(t, "shapes.yaml"))
	require.NoError(t, err)
	require.Len(t, c.HTTPInteractions, 2)

	matchers, err := c.HTTPInteractions[0].Request.Body.AsMatchers()
	require.NoError(t, err)
	require.Len(t, matchers, 2)
	assert.Equal(t, MatcherSubstring, matchers[0].Kind())
	assert.Equal(t, MatcherRegex, matchers[1].Kind())

	jsonBody := c.HTTPInteractions[0].Response.Body
	require.Equal(t, BodyJSON, jsonBody.Kind())
	assert.Equal(t, `{"count":2,"greeting":"Hello foo"}`, jsonBody.String())

	enc, s, err := c.HTTPInteractions[1].Request.Body.AsEncodedString()
	require.NoError(t, err)
	require.NotNil(t, enc)
	assert.Equal(t, "base64", *enc)
	assert.Equal(t, "aGk=", s)

	enc, s, err = c.HTTPInteractions[1].Response.Body.AsEncodedString()
	require.NoError(t, err)
	assert.Nil(t, enc)
	assert.Equal(t, "done", s)
	assert.Nil(t, c.HTTPInteractions[1].Response.HTTPVersion)
}

func TestHeaderValueOrderPreserved(t *testing.T) {
	doc := []byte(`
http_interactions:
  - request:
      uri: http://example.com/
      body: ""
      method: get
      headers:
        Accept: ["text/html", "application/json", "*/*"]
    response:
      body: ""
      status: { code: 204, message: No Content }
      headers: {}
    recorded_at: "Tue, 01 Nov 2011 04:58:44 GMT"
recorded_with: test
`)
	c, err := Decode(doc)
	require.NoError(t, err)

	want := []string{"text/html", "application/json", "*/*"}
	assert.Equal(t, want, c.HTTPInteractions[0].Request.Headers["Accept"])

	out, err := Encode(c)
	require.NoError(t, err)
	back, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, want, back.HTTPInteractions[0].Request.Headers["Accept"])
}

func TestDecodeRejectsBadURI(t *testing.T) {
	doc := []byte(`
http_interactions:
  - request:
      uri: "not a uri"
      body: ""
      method: get
      headers: {}
    response:
      body: ""
      status: { code: 200, message: OK }
      headers: {}
    recorded_at: "Tue, 01 Nov 2011 04:58:44 GMT"
recorded_with: test
`)
	_, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not absolute")
}

func TestDecodeRejectsBadTimestamp(t *testing.T) {
	doc := []byte(`
http_interactions:
  - request:
      uri: http://example.com/
      body: ""
      method: get
      headers: {}
    response:
      body: ""
      status: { code: 200, message: OK }
      headers: {}
    recorded_at: "2011-11-01T04:58:44Z"
recorded_with: test
`)
	_, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC 2822")
}

// assertCassettesEqual compares two cassettes structurally, including the
// body shapes that plain equality cannot compare.
func assertCassettesEqual(t *testing.T, a, b *Cassette) {
	t.Helper()
	require.Equal(t, a.RecordedWith, b.RecordedWith)
	require.Len(t, b.HTTPInteractions, len(a.HTTPInteractions))
	for i := range a.HTTPInteractions {
		ia, ib := a.HTTPInteractions[i], b.HTTPInteractions[i]
		assert.True(t, ia.RecordedAt.Equal(ib.RecordedAt), "interaction %d: recorded_at", i)
		assert.Equal(t, ia.Request.URI.String(), ib.Request.URI.String(), "interaction %d: uri", i)
		assert.Equal(t, ia.Request.Method, ib.Request.Method, "interaction %d: method", i)
		assert.Equal(t, ia.Request.Headers, ib.Request.Headers, "interaction %d: request headers", i)
		assert.True(t, bodiesEqual(ia.Request.Body, ib.Request.Body), "interaction %d: request body", i)
		assert.Equal(t, ia.Response.Status, ib.Response.Status, "interaction %d: status", i)
		assert.Equal(t, ia.Response.Headers, ib.Response.Headers, "interaction %d: response headers", i)
		assert.True(t, bodiesEqual(ia.Response.Body, ib.Response.Body), "interaction %d: response body", i)
		if ia.Response.HTTPVersion == nil {
			assert.Nil(t, ib.Response.HTTPVersion, "interaction %d: http_version", i)
		} else {
			require.NotNil(t, ib.Response.HTTPVersion, "interaction %d: http_version", i)
			assert.Equal(t, *ia.Response.HTTPVersion, *ib.Response.HTTPVersion, "interaction %d: http_version", i)
		}
	}
}
