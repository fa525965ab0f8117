package storage

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// SumCID returns the CIDv1 (raw multicodec, sha2-256 multihash) for data.
func SumCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// CIDString is SumCID rendered as a string; "" on error.
// multihash.Sum cannot fail for sha2-256 with default length.
func CIDString(data []byte) string {
	id, err := SumCID(data)
	if err != nil {
		return ""
	}
	return id.String()
}
