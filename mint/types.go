package mint

import "encoding/hex"

// Token is the opaque handle for a pending randomness request, produced by
// the randomness source.
type Token string

// Seed is a 256-bit verifiably random value bound to exactly one record.
type Seed [32]byte

func (s Seed) IsZero() bool {
	for _, b := range s {
		if b != 0 {
			return false
		}
	}
	return true
}

func (s Seed) Hex() string {
	return hex.EncodeToString(s[:])
}

// SeedFromHex parses a 64-character hex string into a Seed.
func SeedFromHex(h string) (Seed, error) {
	var s Seed
	b, err := hex.DecodeString(h)
	if err != nil {
		return Seed{}, err
	}
	if len(b) != len(s) {
		return Seed{}, errSeedLength
	}
	copy(s[:], b)
	return s, nil
}

// SeedFromUint64 places v in the low-order bytes of a Seed, big endian.
func SeedFromUint64(v uint64) Seed {
	var s Seed
	for i := 0; i < 8; i++ {
		s[31-i] = byte(v >> (8 * i))
	}
	return s
}

// State is the lifecycle phase of a record. Transitions only move forward.
type State uint8

const (
	Reserved State = iota // identifier allocated, no owner or seed
	Seeded                // owner assigned, seed stored
	Finalized             // resource URI attached, terminal
)

func (s State) String() string {
	switch s {
	case Reserved:
		return "reserved"
	case Seeded:
		return "seeded"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Record is one issued (or in-flight) collectible.
type Record struct {
	ID    uint64
	State State
	Owner string // empty until Seeded
	Seed  Seed   // zero until Seeded
	URI   string // empty until Finalized
	CID   string // content ID of URI bytes, set with URI
}
