// Package coordinator is an in-process randomness source.
//
// It stands in for the external oracle channel during tests and in the
// daemon: requests receive an opaque token immediately, and values are
// delivered later, either explicitly via Deliver or derived
// deterministically from the request via DeliverPending. Each accepted
// request is fulfilled at most once.
package coordinator

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/akcpetia/NFT-collection-project/mint"
)

// FulfillFunc receives a resolved value for a request token. Wire it to
// (*mint.Minter).Fulfill.
type FulfillFunc func(token mint.Token, value mint.Seed) (uint64, error)

var (
	ErrUnbound      = errors.New("coordinator: no fulfillment callback bound")
	ErrUnknownToken = errors.New("coordinator: unknown or already delivered token")
)

type request struct {
	token   mint.Token
	keyHash [32]byte
}

// Coordinator issues request tokens and delivers values to the bound
// callback. Delivery happens outside the coordinator lock so callbacks may
// re-enter the minter freely.
type Coordinator struct {
	mu      sync.Mutex
	fulfill FulfillFunc
	queue   []request
	byToken map[mint.Token]int // index into queue; -1 when delivered
}

func New() *Coordinator {
	return &Coordinator{byToken: make(map[mint.Token]int)}
}

// Bind sets the fulfillment callback. Must be called before any delivery.
func (c *Coordinator) Bind(f FulfillFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fulfill = f
}

// Request accepts a randomness request and returns a fresh opaque token.
// The fee is acknowledged but not modeled.
func (c *Coordinator) Request(keyHash [32]byte, fee uint64) (mint.Token, error) {
	_ = fee
	token := mint.Token(uuid.NewString())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byToken[token] = len(c.queue)
	c.queue = append(c.queue, request{token: token, keyHash: keyHash})
	return token, nil
}

// Pending reports how many accepted requests await delivery.
func (c *Coordinator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, i := range c.byToken {
		if i >= 0 {
			n++
		}
	}
	return n
}

// Deliver fulfills one request with an explicit value.
func (c *Coordinator) Deliver(token mint.Token, value mint.Seed) (uint64, error) {
	c.mu.Lock()
	f := c.fulfill
	if f == nil {
		c.mu.Unlock()
		return 0, ErrUnbound
	}
	i, ok := c.byToken[token]
	if ok && i >= 0 {
		c.byToken[token] = -1
	}
	c.mu.Unlock()

	if !ok || i < 0 {
		return 0, ErrUnknownToken
	}
	return f(token, value)
}

// DeliverPending fulfills every waiting request in arrival order, deriving
// each value as keccak-256(keyHash || token). Returns the number delivered;
// stops at the first callback error.
func (c *Coordinator) DeliverPending() (int, error) {
	c.mu.Lock()
	f := c.fulfill
	if f == nil {
		c.mu.Unlock()
		return 0, ErrUnbound
	}
	var due []request
	for _, r := range c.queue {
		if i, ok := c.byToken[r.token]; ok && i >= 0 {
			due = append(due, r)
			c.byToken[r.token] = -1
		}
	}
	c.mu.Unlock()
	for n, r := range due {
		if _, err := f(r.token, DeriveValue(r.keyHash, r.token)); err != nil {
			return n, err
		}
	}
	return len(due), nil
}

// DeriveValue is the deterministic value for a (keyHash, token) pair.
func DeriveValue(keyHash [32]byte, token mint.Token) mint.Seed {
	d := sha3.NewLegacyKeccak256()
	_, _ = d.Write(keyHash[:])
	_, _ = d.Write([]byte(token))
	var s mint.Seed
	copy(s[:], d.Sum(nil))
	return s
}
