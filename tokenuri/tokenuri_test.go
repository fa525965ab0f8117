package tokenuri

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akcpetia/NFT-collection-project/curve"
)

var palette = curve.Palette{"#fff", "#000", "#abc", "#123", "#456"}

func description(t *testing.T, seedLow byte) curve.Description {
	t.Helper()
	var seed [32]byte
	seed[31] = seedLow
	d, err := curve.Generate(seed, palette, curve.DefaultParams())
	require.NoError(t, err)
	return d
}

func TestEncodeDeterministic(t *testing.T) {
	d := description(t, 42)

	a := Encode(d, "Rose #7", "A verifiably random rose curve.", 7)
	b := Encode(d, "Rose #7", "A verifiably random rose curve.", 7)
	assert.Equal(t, a, b, "identical inputs must yield byte-identical URIs")

	c := Encode(description(t, 43), "Rose #7", "A verifiably random rose curve.", 7)
	assert.NotEqual(t, a, c)
}

func TestEncodeStructure(t *testing.T) {
	d := description(t, 1)
	uri := Encode(d, "Rose #3", "A verifiably random rose curve.", 3)

	require.True(t, strings.HasPrefix(uri, "data:application/json;base64,"))
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:application/json;base64,"))
	require.NoError(t, err)

	doc := string(payload)
	assert.True(t, strings.HasPrefix(doc, `{"name":"Rose #3","description":`))
	assert.Contains(t, doc, `"tokenId":3`)
	assert.Contains(t, doc, `"image":"data:image/svg+xml;base64,`)

	// The embedded image must itself decode to SVG markup.
	start := strings.Index(doc, "data:image/svg+xml;base64,")
	require.GreaterOrEqual(t, start, 0)
	rest := doc[start+len("data:image/svg+xml;base64,"):]
	end := strings.IndexByte(rest, '"')
	require.Greater(t, end, 0)
	svg, err := base64.StdEncoding.DecodeString(rest[:end])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<svg "))
	assert.True(t, strings.HasSuffix(string(svg), "</svg>"))
}

func TestSVGMarkup(t *testing.T) {
	d := description(t, 9)
	svg := string(SVG(d))

	assert.Contains(t, svg, `<rect width="1000" height="1000" fill="`+d.Background+`"/>`)
	for _, c := range palette {
		assert.Contains(t, svg, `stroke="`+c+`"`, "every palette color must be stroked")
	}
	points := svg[strings.Index(svg, `points="`)+len(`points="`):]
	points = points[:strings.IndexByte(points, '"')]
	assert.NotContains(t, points, ".", "coordinates must be plain integers")
	assert.NotContains(t, points, "e", "coordinates must be plain integers")
}

func TestMetadataJSONEscaping(t *testing.T) {
	b := MetadataJSON(Metadata{
		Name:        `quote " and backslash \`,
		Description: "line\nbreak",
		TokenID:     0,
		Image:       "data:image/svg+xml;base64,AA==",
	})
	s := string(b)
	assert.Contains(t, s, `\"`)
	assert.Contains(t, s, `\\`)
	assert.Contains(t, s, `\n`)
	assert.True(t, strings.HasSuffix(s, "}"))
}

func TestDocumentCID(t *testing.T) {
	d := description(t, 5)
	uri := Encode(d, "Rose #5", "A verifiably random rose curve.", 5)

	id := DocumentCID(uri)
	require.NotEmpty(t, id)
	assert.Equal(t, id, DocumentCID(uri), "CID must be stable")
	assert.NotEqual(t, id, DocumentCID(uri+" "))
}
