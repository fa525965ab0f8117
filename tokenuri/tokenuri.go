// Package tokenuri encodes generated artwork into a self-contained data URI.
//
// The encoding is two deterministic stages: the artwork is rendered as an SVG
// document and wrapped as a base64 image data URI, then a metadata document
// embedding that image is rendered as canonical JSON and wrapped as a base64
// JSON data URI. Both stages are byte-exact: field order, attribute order and
// number formatting are fixed, never left to map iteration or float printing.
package tokenuri

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/akcpetia/NFT-collection-project/curve"
	"github.com/akcpetia/NFT-collection-project/storage"
)

const (
	imagePrefix    = "data:image/svg+xml;base64,"
	metadataPrefix = "data:application/json;base64,"

	// canvas is the rendered SVG coordinate space; artwork coordinates are
	// projected from [-Extent, Extent] into it by integer division.
	canvas = 1000
	radius = 470
)

// Metadata is the descriptive payload attached to a finalized record.
type Metadata struct {
	Name        string
	Description string
	TokenID     uint64
	Image       string // image data URI
}

// SVG renders a Description as vector markup.
func SVG(d curve.Description) []byte {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1000 1000">`)
	sb.WriteString(`<rect width="1000" height="1000" fill="`)
	sb.WriteString(d.Background)
	sb.WriteString(`"/>`)

	// One polyline per contiguous color run, in segment order.
	for i := 0; i < len(d.Segments); {
		color := d.Segments[i].Color
		sb.WriteString(`<polyline fill="none" stroke="`)
		sb.WriteString(color)
		sb.WriteString(`" stroke-width="4" points="`)
		writePoint(&sb, d.Segments[i].From, d.Extent)
		for ; i < len(d.Segments) && d.Segments[i].Color == color; i++ {
			sb.WriteByte(' ')
			writePoint(&sb, d.Segments[i].To, d.Extent)
		}
		sb.WriteString(`"/>`)
	}

	sb.WriteString(`</svg>`)
	return []byte(sb.String())
}

func writePoint(sb *strings.Builder, p curve.Point, extent int64) {
	// SVG y grows downward; artwork y grows upward.
	sb.WriteString(strconv.FormatInt(project(p.X, extent), 10))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatInt(project(-p.Y, extent), 10))
}

func project(v, extent int64) int64 {
	if extent <= 0 {
		return canvas / 2
	}
	return canvas/2 + v*radius/extent
}

// MetadataJSON renders canonical metadata bytes with fixed field order.
// encoding/json is avoided deliberately: its HTML escaping and map ordering
// rules are not part of any stability contract we want to depend on.
func MetadataJSON(m Metadata) []byte {
	var sb strings.Builder
	sb.WriteString(`{"name":`)
	sb.WriteString(strconv.Quote(m.Name))
	sb.WriteString(`,"description":`)
	sb.WriteString(strconv.Quote(m.Description))
	sb.WriteString(`,"tokenId":`)
	sb.WriteString(strconv.FormatUint(m.TokenID, 10))
	sb.WriteString(`,"image":`)
	sb.WriteString(strconv.Quote(m.Image))
	sb.WriteString(`}`)
	return []byte(sb.String())
}

// ImageDataURI wraps SVG bytes as an embeddable image reference.
func ImageDataURI(svg []byte) string {
	return imagePrefix + base64.StdEncoding.EncodeToString(svg)
}

// DataURI wraps metadata as a single self-contained resource URI.
func DataURI(m Metadata) string {
	return metadataPrefix + base64.StdEncoding.EncodeToString(MetadataJSON(m))
}

// Encode runs the full pipeline: artwork -> SVG -> image URI -> metadata URI.
func Encode(d curve.Description, name, description string, tokenID uint64) string {
	return DataURI(Metadata{
		Name:        name,
		Description: description,
		TokenID:     tokenID,
		Image:       ImageDataURI(SVG(d)),
	})
}

// DocumentCID returns the CIDv1 (raw, sha2-256) of a resource URI, so
// finalized documents are content-addressed for archival.
func DocumentCID(uri string) string {
	return storage.CIDString([]byte(uri))
}
