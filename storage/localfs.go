package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/ipfs/go-cid"
)

// Dir is a local filesystem-backed CAS.
//
// Documents are stored write-once, keyed strictly by CID, sharded by the
// trailing characters of the CID string to keep directories small. Offline
// and deterministic: no network, no clocks.
type Dir struct {
	root string
}

// NewDir constructs a filesystem CAS rooted at root, creating it if needed.
func NewDir(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("storage: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Dir{root: root}, nil
}

func (d *Dir) Put(b []byte) (cid.Cid, error) {
	id, err := SumCID(b)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, ErrInvalidCID
	}

	path := d.pathFor(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cid.Undef, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o444)
	if err != nil {
		if os.IsExist(err) {
			existing, rerr := os.ReadFile(path)
			if rerr != nil || !bytes.Equal(existing, b) {
				return cid.Undef, ErrImmutable
			}
			return id, nil
		}
		return cid.Undef, err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return cid.Undef, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return cid.Undef, err
	}
	return id, nil
}

func (d *Dir) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, ErrInvalidCID
	}
	b, err := os.ReadFile(d.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Integrity check: the archive contract is bytes-match-CID.
	got, err := SumCID(b)
	if err != nil {
		return nil, err
	}
	if got.String() != id.String() {
		return nil, ErrImmutable
	}
	return b, nil
}

func (d *Dir) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	_, err := os.Stat(d.pathFor(id))
	return err == nil
}

func (d *Dir) pathFor(id cid.Cid) string {
	s := id.String()
	shard := s[len(s)-3:]
	return filepath.Join(d.root, shard, s)
}
