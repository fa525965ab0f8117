package storage

import (
	"bytes"
	"testing"

	"github.com/ipfs/go-cid"
)

// newCAS constructs a fresh, empty CAS isolated from other tests.
type newCAS func(t *testing.T) CAS

func runCASConformance(t *testing.T, newCAS newCAS) {
	t.Helper()

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		cas := newCAS(t)
		want := []byte(`{"name":"Rose #0"}`)

		id, err := cas.Put(want)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		wantID, err := SumCID(want)
		if err != nil {
			t.Fatalf("SumCID failed: %v", err)
		}
		if id != wantID {
			t.Fatalf("Put CID mismatch: got %s want %s", id, wantID)
		}

		got, err := cas.Get(id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Get bytes mismatch")
		}
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		cas := newCAS(t)
		b := []byte("same bytes")

		id1, err := cas.Put(b)
		if err != nil {
			t.Fatalf("Put(1) failed: %v", err)
		}
		id2, err := cas.Put(b)
		if err != nil {
			t.Fatalf("Put(2) failed: %v", err)
		}
		if id1 != id2 {
			t.Fatalf("Put not idempotent: %s vs %s", id1, id2)
		}
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		cas := newCAS(t)
		b := []byte("missing")
		id, err := SumCID(b)
		if err != nil {
			t.Fatalf("SumCID failed: %v", err)
		}

		if cas.Has(id) {
			t.Fatalf("Has returned true for missing CID")
		}
		if _, err := cas.Get(id); !IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}

		if _, err := cas.Put(b); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if !cas.Has(id) {
			t.Fatalf("Has returned false after Put")
		}
	})

	t.Run("RejectUndefCID", func(t *testing.T) {
		cas := newCAS(t)
		var undef cid.Cid
		if cas.Has(undef) {
			t.Fatalf("Has should be false for undefined CID")
		}
		if _, err := cas.Get(undef); err == nil {
			t.Fatalf("Get should fail for undefined CID")
		}
	})
}

func TestMemoryCAS(t *testing.T) {
	runCASConformance(t, func(t *testing.T) CAS { return NewMemory() })
}

func TestDirCAS(t *testing.T) {
	runCASConformance(t, func(t *testing.T) CAS {
		d, err := NewDir(t.TempDir())
		if err != nil {
			t.Fatalf("NewDir failed: %v", err)
		}
		return d
	})
}

func TestCIDStringStable(t *testing.T) {
	b := []byte("stable bytes")
	a, bb := CIDString(b), CIDString(b)
	if a == "" || a != bb {
		t.Fatalf("CIDString not stable: %q vs %q", a, bb)
	}
}
