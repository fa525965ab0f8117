// Package storage archives finalized token documents by content ID.
package storage

import "github.com/ipfs/go-cid"

// CAS is a minimal content-addressable archive.
//
// Contract:
// - Put MUST be idempotent.
// - Stored documents MUST be immutable.
// - CIDs MUST be derived from the bytes written.
// - Get MUST return ErrNotFound when the CID is absent.
type CAS interface {
	Put(bytes []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
