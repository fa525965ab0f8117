package coordinator

import (
	"errors"
	"testing"

	"github.com/akcpetia/NFT-collection-project/mint"
)

type delivery struct {
	token mint.Token
	value mint.Seed
}

func collector(got *[]delivery) FulfillFunc {
	return func(token mint.Token, value mint.Seed) (uint64, error) {
		*got = append(*got, delivery{token, value})
		return uint64(len(*got) - 1), nil
	}
}

func TestDeliverPendingInOrder(t *testing.T) {
	c := New()
	var got []delivery
	c.Bind(collector(&got))

	var key [32]byte
	key[0] = 0xaa
	t1, err := c.Request(key, 100)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	t2, err := c.Request(key, 100)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("tokens must be unique")
	}
	if c.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", c.Pending())
	}

	n, err := c.DeliverPending()
	if err != nil || n != 2 {
		t.Fatalf("DeliverPending = (%d, %v), want (2, nil)", n, err)
	}
	if got[0].token != t1 || got[1].token != t2 {
		t.Fatalf("deliveries out of arrival order")
	}
	for _, d := range got {
		if d.value != DeriveValue(key, d.token) {
			t.Fatalf("derived value mismatch for %s", d.token)
		}
		if d.value.IsZero() {
			t.Fatalf("derived value must be non-zero")
		}
	}

	// Everything delivered; a second sweep is a no-op.
	n, err = c.DeliverPending()
	if err != nil || n != 0 {
		t.Fatalf("second DeliverPending = (%d, %v), want (0, nil)", n, err)
	}
	if c.Pending() != 0 {
		t.Fatalf("Pending = %d after delivery", c.Pending())
	}
}

func TestDeliverExplicitOnce(t *testing.T) {
	c := New()
	var got []delivery
	c.Bind(collector(&got))

	var key [32]byte
	token, _ := c.Request(key, 1)
	want := mint.SeedFromUint64(12345)

	if _, err := c.Deliver(token, want); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	if len(got) != 1 || got[0].value != want {
		t.Fatalf("delivery mismatch: %+v", got)
	}

	if _, err := c.Deliver(token, want); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("redelivery: got err=%v want ErrUnknownToken", err)
	}
	if _, err := c.Deliver("bogus", want); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("bogus token: got err=%v want ErrUnknownToken", err)
	}
}

func TestDeliverUnbound(t *testing.T) {
	c := New()
	var key [32]byte
	token, _ := c.Request(key, 1)
	if _, err := c.Deliver(token, mint.SeedFromUint64(1)); !errors.Is(err, ErrUnbound) {
		t.Fatalf("got err=%v want ErrUnbound", err)
	}
}

func TestDeriveValueStable(t *testing.T) {
	var key [32]byte
	key[5] = 7
	a := DeriveValue(key, "token-a")
	if a != DeriveValue(key, "token-a") {
		t.Fatalf("DeriveValue not stable")
	}
	if a == DeriveValue(key, "token-b") {
		t.Fatalf("DeriveValue ignores the token")
	}
}
