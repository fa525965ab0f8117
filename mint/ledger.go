package mint

import "sync"

// Ledger is an in-process Registry. It enforces the registry contract that
// identifiers are never issued twice, and exposes the ownership and
// resource queries external observers use.
type Ledger struct {
	mu     sync.RWMutex
	owners map[uint64]string
	uris   map[uint64]string
}

func NewLedger() *Ledger {
	return &Ledger{
		owners: make(map[uint64]string),
		uris:   make(map[uint64]string),
	}
}

func (l *Ledger) Issue(owner string, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.owners[id]; ok {
		return ErrAlreadyIssued
	}
	l.owners[id] = owner
	return nil
}

func (l *Ledger) SetTokenURI(id uint64, uri string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.owners[id]; !ok {
		return ErrUnknownRecord
	}
	l.uris[id] = uri
	return nil
}

// OwnerOf reports the issued owner of id.
func (l *Ledger) OwnerOf(id uint64) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	o, ok := l.owners[id]
	return o, ok
}

// TokenURI reports the resource reference attached to id.
func (l *Ledger) TokenURI(id uint64) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	u, ok := l.uris[id]
	return u, ok
}
