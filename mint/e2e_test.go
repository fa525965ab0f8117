package mint_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/akcpetia/NFT-collection-project/coordinator"
	"github.com/akcpetia/NFT-collection-project/curve"
	"github.com/akcpetia/NFT-collection-project/mint"
	"github.com/akcpetia/NFT-collection-project/storage"
)

// fullMint runs request -> fulfill(12345) -> finish on a fresh stack and
// returns the finalized record.
func fullMint(t *testing.T) (mint.Record, *mint.Ledger, *storage.Memory) {
	t.Helper()

	ledger := mint.NewLedger()
	archive := storage.NewMemory()
	coord := coordinator.New()
	m, err := mint.New(mint.Config{
		Registry:   ledger,
		Fees:       mint.FixedFeeSource(1000),
		Randomness: coord,
		Archive:    archive,
		RequestFee: 100,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	coord.Bind(m.Fulfill)

	token, err := m.Request("alice")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if _, err := coord.Deliver(token, mint.SeedFromUint64(12345)); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	pal := curve.Palette{"#fff", "#000", "#abc", "#123", "#456"}
	if _, err := m.Finish(0, pal); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	rec, ok := m.Record(0)
	if !ok {
		t.Fatalf("Record(0) missing")
	}
	return rec, ledger, archive
}

func TestEndToEnd(t *testing.T) {
	rec, ledger, archive := fullMint(t)

	if rec.State != mint.Finalized {
		t.Fatalf("record state %v, want Finalized", rec.State)
	}
	if !strings.HasPrefix(rec.URI, "data:application/json;base64,") {
		t.Fatalf("unexpected URI shape: %.60q", rec.URI)
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(rec.URI, "data:application/json;base64,"))
	if err != nil {
		t.Fatalf("URI payload not base64: %v", err)
	}
	doc := string(payload)
	if !strings.Contains(doc, `"name":"Rose #0"`) {
		t.Fatalf("metadata misses the record name: %s", doc)
	}
	if !strings.Contains(doc, `"tokenId":0`) {
		t.Fatalf("metadata misses the identifier: %s", doc)
	}
	if !strings.Contains(doc, `"image":"data:image/svg+xml;base64,`) {
		t.Fatalf("metadata misses the embedded image: %.200s", doc)
	}

	// Registry and archive both observed the finalized document.
	if uri, ok := ledger.TokenURI(0); !ok || uri != rec.URI {
		t.Fatalf("registry URI mismatch")
	}
	if owner, _ := ledger.OwnerOf(0); owner != "alice" {
		t.Fatalf("registry owner %q, want alice", owner)
	}
	id, err := storage.SumCID([]byte(rec.URI))
	if err != nil {
		t.Fatalf("SumCID failed: %v", err)
	}
	if id.String() != rec.CID {
		t.Fatalf("record CID %q does not match document bytes", rec.CID)
	}
	if !archive.Has(id) {
		t.Fatalf("archive misses the finalized document")
	}
}

func TestEndToEndReproducible(t *testing.T) {
	a, _, _ := fullMint(t)
	b, _, _ := fullMint(t)

	if a.URI != b.URI {
		t.Fatalf("same seed and palette produced different URIs on fresh instances")
	}
	if a.CID != b.CID {
		t.Fatalf("same document produced different CIDs")
	}
}
