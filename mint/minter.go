package mint

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/akcpetia/NFT-collection-project/curve"
	"github.com/akcpetia/NFT-collection-project/storage"
	"github.com/akcpetia/NFT-collection-project/tokenuri"
)

// Registry is the external ownership ledger. It must never issue the same
// identifier twice; ownership is assigned at seed fulfillment, not at
// request time.
type Registry interface {
	Issue(owner string, id uint64) error
	SetTokenURI(id uint64, uri string) error
}

// FeeSource reports the contract-held balance of the fee resource consumed
// by randomness requests.
type FeeSource interface {
	Balance() uint64
}

// RandomnessSource accepts a randomness request and returns its token. The
// resolved value arrives later through Minter.Fulfill, invoked by the
// source's runtime exactly once per accepted request.
type RandomnessSource interface {
	Request(keyHash [32]byte, fee uint64) (Token, error)
}

// Config wires a Minter to its collaborators.
type Config struct {
	Registry   Registry
	Fees       FeeSource
	Randomness RandomnessSource
	Archive    storage.CAS // optional: finalized documents stored by CID

	KeyHash    [32]byte // randomness key material
	RequestFee uint64   // fee forwarded per randomness request

	Collection  string       // record name prefix; default "Rose"
	Description string       // metadata description; default below
	Params      curve.Params // zero value means curve.DefaultParams()

	Logger *zerolog.Logger // nil discards
}

const defaultDescription = "A rose curve grown from a verifiably random seed."

// Minter owns the pending-request table, the record table and the identifier
// counter. All mutation happens under one lock, so every operation is atomic
// with respect to every other.
type Minter struct {
	mu      sync.Mutex
	cfg     Config
	log     zerolog.Logger
	next    uint64
	pending map[Token]pendingRequest
	records map[uint64]*Record
	events  []Event
}

// pendingRequest binds a request token to its requester and reserved
// identifier, set exactly once.
type pendingRequest struct {
	requester string
	id        uint64
}

func New(cfg Config) (*Minter, error) {
	if cfg.Registry == nil || cfg.Fees == nil || cfg.Randomness == nil {
		return nil, errors.New("mint: registry, fee source and randomness source are required")
	}
	if cfg.Params == (curve.Params{}) {
		cfg.Params = curve.DefaultParams()
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	if cfg.Collection == "" {
		cfg.Collection = "Rose"
	}
	if cfg.Description == "" {
		cfg.Description = defaultDescription
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Minter{
		cfg:     cfg,
		log:     log,
		pending: make(map[Token]pendingRequest),
		records: make(map[uint64]*Record),
	}, nil
}

// Request reserves the next identifier for caller and forwards a randomness
// request. It fails with ErrInsufficientFee, leaving the counter untouched,
// when the held balance cannot cover the request fee.
func (m *Minter) Request(caller string) (Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.Fees.Balance() < m.cfg.RequestFee {
		return "", ErrInsufficientFee
	}
	token, err := m.cfg.Randomness.Request(m.cfg.KeyHash, m.cfg.RequestFee)
	if err != nil {
		return "", fmt.Errorf("mint: randomness request: %w", err)
	}
	if _, dup := m.pending[token]; dup {
		// The source contract forbids token reuse; refuse rather than
		// overwrite the earlier reservation.
		return "", fmt.Errorf("mint: randomness source replayed token %q", token)
	}

	id := m.next
	m.next++
	m.records[id] = &Record{ID: id, State: Reserved}
	m.pending[token] = pendingRequest{requester: caller, id: id}
	m.emit(Event{Kind: EventMintRequested, Token: token, ID: id})
	return token, nil
}

// Fulfill is the randomness callback. It consumes the pending entry for
// token, assigns ownership through the registry and stores the seed,
// transitioning the record from Reserved to Seeded. A token that matches no
// pending request, including a duplicate delivery, fails with
// ErrUnknownRequest and mutates nothing.
func (m *Minter) Fulfill(token Token, value Seed) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pending[token]
	if !ok {
		return 0, ErrUnknownRequest
	}
	rec := m.records[p.id]
	if rec.State != Reserved {
		return 0, ErrUnknownRequest
	}
	if err := m.cfg.Registry.Issue(p.requester, p.id); err != nil {
		return 0, fmt.Errorf("mint: registry issue: %w", err)
	}

	delete(m.pending, token)
	rec.State = Seeded
	rec.Owner = p.requester
	rec.Seed = value
	m.emit(Event{Kind: EventRandomReceived, Token: token, ID: p.id, Value: value})
	return p.id, nil
}

// Finish generates the artwork for a seeded record from its stored seed and
// the supplied palette, attaches the encoded resource URI and archives the
// document. Finalization is open to any caller: the palette only picks
// colors, everything else is fixed by the seed.
func (m *Minter) Finish(id uint64, pal curve.Palette) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id >= m.next {
		return "", ErrUnknownRecord
	}
	rec := m.records[id]
	if rec.URI != "" {
		return "", ErrAlreadyFinalized
	}
	if rec.State != Seeded || rec.Seed.IsZero() {
		return "", ErrSeedNotReady
	}

	desc, err := curve.Generate([32]byte(rec.Seed), pal, m.cfg.Params)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s #%d", m.cfg.Collection, id)
	uri := tokenuri.Encode(desc, name, m.cfg.Description, id)

	if m.cfg.Archive != nil {
		if _, err := m.cfg.Archive.Put([]byte(uri)); err != nil {
			return "", fmt.Errorf("mint: archive: %w", err)
		}
	}
	if err := m.cfg.Registry.SetTokenURI(id, uri); err != nil {
		return "", fmt.Errorf("mint: registry uri: %w", err)
	}

	rec.State = Finalized
	rec.URI = uri
	rec.CID = tokenuri.DocumentCID(uri)
	m.emit(Event{Kind: EventRecordCreated, ID: id, URI: uri})
	return uri, nil
}

// Record returns a snapshot of one record.
func (m *Minter) Record(id uint64) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// NextID returns the next unassigned identifier.
func (m *Minter) NextID() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next
}
