package provenance

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

func rootSeed(b byte) []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	return seed
}

func TestDeriveSigningSeed(t *testing.T) {
	a, err := DeriveSigningSeed(rootSeed(1), "receipts")
	if err != nil {
		t.Fatalf("DeriveSigningSeed failed: %v", err)
	}
	b, err := DeriveSigningSeed(rootSeed(1), "receipts")
	if err != nil {
		t.Fatalf("DeriveSigningSeed failed: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("derivation not deterministic")
	}

	other, err := DeriveSigningSeed(rootSeed(1), "backup")
	if err != nil {
		t.Fatalf("DeriveSigningSeed failed: %v", err)
	}
	if string(a) == string(other) {
		t.Fatalf("purposes must derive distinct seeds")
	}

	if _, err := DeriveSigningSeed([]byte("short"), "receipts"); err == nil {
		t.Fatalf("short root seed must be rejected")
	}
	if _, err := DeriveSigningSeed(rootSeed(1), ""); err == nil {
		t.Fatalf("empty purpose must be rejected")
	}
}

func TestEd25519ReceiptRoundTrip(t *testing.T) {
	seed, err := DeriveSigningSeed(rootSeed(2), "receipts")
	if err != nil {
		t.Fatalf("DeriveSigningSeed failed: %v", err)
	}
	priv := ed25519.NewKeyFromSeed(seed)

	r, err := SignEd25519(7, "bafytest", priv)
	if err != nil {
		t.Fatalf("SignEd25519 failed: %v", err)
	}
	if !strings.HasPrefix(r.SignerKey, "ed25519:") {
		t.Fatalf("unexpected signer key: %q", r.SignerKey)
	}
	if err := Verify(r); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	tampered := r
	tampered.CID = "bafyother"
	if err := Verify(tampered); err == nil {
		t.Fatalf("Verify must fail for a tampered CID")
	}
	tampered = r
	tampered.RecordID = 8
	if err := Verify(tampered); err == nil {
		t.Fatalf("Verify must fail for a tampered record id")
	}
}

func TestDilithium3ReceiptRoundTrip(t *testing.T) {
	_, priv, err := mode3.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	for _, hashAlg := range []string{"sha256", "sha512", "sha3-256"} {
		r, err := SignDilithium3(3, "bafytest", hashAlg, priv)
		if err != nil {
			t.Fatalf("SignDilithium3(%s) failed: %v", hashAlg, err)
		}
		if err := Verify(r); err != nil {
			t.Fatalf("Verify(%s) failed: %v", hashAlg, err)
		}
	}

	if _, err := SignDilithium3(3, "bafytest", "md5", priv); err == nil {
		t.Fatalf("unsupported hash must be rejected")
	}
}

func TestVerifyRejectsAlgMismatch(t *testing.T) {
	priv := ed25519.NewKeyFromSeed(rootSeed(3))
	r, err := SignEd25519(1, "bafytest", priv)
	if err != nil {
		t.Fatalf("SignEd25519 failed: %v", err)
	}
	r.Alg = "dilithium3"
	if err := Verify(r); err == nil {
		t.Fatalf("Verify must reject a signer key / algorithm mismatch")
	}
}
