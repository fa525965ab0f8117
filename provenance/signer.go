package provenance

import (
	"crypto/ed25519"
	"fmt"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

// Signer holds the operator's derived receipt keys and countersigns
// finalized records as they are created.
type Signer struct {
	ed ed25519.PrivateKey
	pq *mode3.PrivateKey // nil unless post-quantum receipts are enabled
}

// NewSigner derives the receipt keys from the operator root seed. With
// postQuantum set, a Dilithium3 key is derived alongside the Ed25519 key and
// every countersignature is issued under both.
func NewSigner(rootSeed []byte, postQuantum bool) (*Signer, error) {
	seed, err := DeriveSigningSeed(rootSeed, "receipts")
	if err != nil {
		return nil, err
	}
	s := &Signer{ed: ed25519.NewKeyFromSeed(seed)}
	if postQuantum {
		pqSeed, err := DeriveSigningSeed(rootSeed, "receipts-pq")
		if err != nil {
			return nil, err
		}
		if len(pqSeed) != mode3.SeedSize {
			return nil, fmt.Errorf("provenance: derived seed is %d bytes, dilithium3 needs %d", len(pqSeed), mode3.SeedSize)
		}
		var arr [mode3.SeedSize]byte
		copy(arr[:], pqSeed)
		_, priv := mode3.NewKeyFromSeed(&arr)
		s.pq = priv
	}
	return s, nil
}

// Keys returns the signer-key strings receipts from this signer carry.
func (s *Signer) Keys() ([]string, error) {
	edKey, err := SignerKey(s.ed.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	keys := []string{edKey}
	if s.pq != nil {
		pqKey, err := SignerKeyDilithium3(s.pq.Public().(*mode3.PublicKey))
		if err != nil {
			return nil, err
		}
		keys = append(keys, pqKey)
	}
	return keys, nil
}

// Countersign issues the receipts binding recordID to the content ID of its
// finalized document: one Ed25519 receipt, plus a Dilithium3 receipt over
// sha3-256 when post-quantum receipts are enabled.
func (s *Signer) Countersign(recordID uint64, cid string) ([]Receipt, error) {
	r, err := SignEd25519(recordID, cid, s.ed)
	if err != nil {
		return nil, err
	}
	out := []Receipt{r}
	if s.pq != nil {
		pr, err := SignDilithium3(recordID, cid, "sha3-256", s.pq)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, nil
}
