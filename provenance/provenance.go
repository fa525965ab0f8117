// Package provenance countersigns finalized records.
//
// A receipt binds a record identifier to the content ID of its finalized
// document and carries a signature from the operator's derived signing key.
// Receipts let an off-chain observer verify that a document archived under a
// CID is the one the operator finalized, without trusting the archive.
package provenance

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"golang.org/x/crypto/sha3"
)

const derivationContext = "nft-collection-receipts-v1"

// DeriveSigningSeed deterministically derives a purpose-specific Ed25519
// seed from a root seed, so one operator secret serves every role.
func DeriveSigningSeed(rootSeed []byte, purpose string) ([]byte, error) {
	if len(rootSeed) != ed25519.SeedSize {
		return nil, fmt.Errorf("provenance: root seed must be %d bytes", ed25519.SeedSize)
	}
	if purpose == "" {
		return nil, errors.New("provenance: purpose is required")
	}

	h := sha256.New()
	_, _ = h.Write(rootSeed)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(derivationContext))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte("purpose:"))
	_, _ = h.Write([]byte(purpose))
	sum := h.Sum(nil)

	out := make([]byte, ed25519.SeedSize)
	copy(out, sum[:ed25519.SeedSize])
	return out, nil
}

// SignerKey encodes an Ed25519 public key as "ed25519:" + base64.
func SignerKey(pub ed25519.PublicKey) (string, error) {
	if l := len(pub); l != ed25519.PublicKeySize {
		return "", fmt.Errorf("provenance: ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, l)
	}
	return "ed25519:" + base64.StdEncoding.EncodeToString(pub), nil
}

// SignerKeyDilithium3 encodes a Dilithium3 public key as "dilithium3:" + base64.
func SignerKeyDilithium3(pub *mode3.PublicKey) (string, error) {
	if pub == nil {
		return "", errors.New("provenance: missing public key")
	}
	b, err := pub.MarshalBinary()
	if err != nil {
		return "", err
	}
	return "dilithium3:" + base64.StdEncoding.EncodeToString(b), nil
}

// Receipt is the signed statement for one finalized record.
type Receipt struct {
	RecordID  uint64
	CID       string // content ID of the finalized document bytes
	SignerKey string
	Alg       string // "ed25519" or "dilithium3"
	HashAlg   string // digest over the message; see digestFor
	Signature string // base64
}

// message is the canonical signed payload. Line-based and versioned so the
// format can evolve without ambiguity.
func message(recordID uint64, cid string) []byte {
	var sb strings.Builder
	sb.WriteString(derivationContext)
	sb.WriteString("\nrecord: ")
	sb.WriteString(strconv.FormatUint(recordID, 10))
	sb.WriteString("\ncid: ")
	sb.WriteString(cid)
	sb.WriteString("\n")
	return []byte(sb.String())
}

func digestFor(hashAlg string, msg []byte) ([]byte, error) {
	switch hashAlg {
	case "sha256":
		s := sha256.Sum256(msg)
		return s[:], nil
	case "sha512":
		s := sha512.Sum512(msg)
		return s[:], nil
	case "sha3-256":
		s := sha3.Sum256(msg)
		return s[:], nil
	default:
		return nil, fmt.Errorf("provenance: unsupported hash algorithm: %q", hashAlg)
	}
}

// SignEd25519 issues a receipt signed over sha256 of the canonical message.
func SignEd25519(recordID uint64, cid string, priv ed25519.PrivateKey) (Receipt, error) {
	key, err := SignerKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return Receipt{}, err
	}
	digest := sha256.Sum256(message(recordID, cid))
	sig := ed25519.Sign(priv, digest[:])
	return Receipt{
		RecordID:  recordID,
		CID:       cid,
		SignerKey: key,
		Alg:       "ed25519",
		HashAlg:   "sha256",
		Signature: base64.StdEncoding.EncodeToString(sig),
	}, nil
}

// SignDilithium3 issues a receipt with a post-quantum signature.
// hashAlg must be one of: sha256, sha512, sha3-256.
func SignDilithium3(recordID uint64, cid string, hashAlg string, priv *mode3.PrivateKey) (Receipt, error) {
	if priv == nil {
		return Receipt{}, errors.New("provenance: missing private key")
	}
	pub := priv.Public().(*mode3.PublicKey)
	key, err := SignerKeyDilithium3(pub)
	if err != nil {
		return Receipt{}, err
	}
	digest, err := digestFor(hashAlg, message(recordID, cid))
	if err != nil {
		return Receipt{}, err
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(priv, digest, sig)
	return Receipt{
		RecordID:  recordID,
		CID:       cid,
		SignerKey: key,
		Alg:       "dilithium3",
		HashAlg:   hashAlg,
		Signature: base64.StdEncoding.EncodeToString(sig),
	}, nil
}

// Verify checks a receipt's signature against its embedded signer key.
func Verify(r Receipt) error {
	prefix, b64, ok := strings.Cut(r.SignerKey, ":")
	if !ok || prefix != r.Alg {
		return fmt.Errorf("provenance: signer key does not match algorithm %q", r.Alg)
	}
	keyBytes, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("provenance: bad signer key encoding: %w", err)
	}
	sig, err := base64.StdEncoding.DecodeString(r.Signature)
	if err != nil {
		return fmt.Errorf("provenance: bad signature encoding: %w", err)
	}
	digest, err := digestFor(r.HashAlg, message(r.RecordID, r.CID))
	if err != nil {
		return err
	}

	switch r.Alg {
	case "ed25519":
		if len(keyBytes) != ed25519.PublicKeySize {
			return errors.New("provenance: bad ed25519 key length")
		}
		if !ed25519.Verify(ed25519.PublicKey(keyBytes), digest, sig) {
			return errors.New("provenance: signature verification failed")
		}
		return nil
	case "dilithium3":
		var pub mode3.PublicKey
		if err := pub.UnmarshalBinary(keyBytes); err != nil {
			return fmt.Errorf("provenance: invalid dilithium3 public key: %w", err)
		}
		if !mode3.Verify(&pub, digest, sig) {
			return errors.New("provenance: signature verification failed")
		}
		return nil
	default:
		return fmt.Errorf("provenance: unsupported algorithm: %q", r.Alg)
	}
}
