package mint

import "errors"

// Callers should branch on these sentinels with errors.Is rather than
// matching message strings.
var (
	// ErrInsufficientFee rejects a mint request when the held fee balance
	// cannot cover the randomness request fee. The identifier counter is
	// untouched.
	ErrInsufficientFee = errors.New("mint: insufficient fee balance")

	// ErrUnknownRecord rejects finalization of an identifier that was never
	// allocated.
	ErrUnknownRecord = errors.New("mint: unknown record")

	// ErrAlreadyFinalized rejects finalization of a record whose resource
	// URI is already set. The stored URI is unchanged.
	ErrAlreadyFinalized = errors.New("mint: already finalized")

	// ErrSeedNotReady rejects finalization before the randomness callback
	// has delivered a non-zero seed.
	ErrSeedNotReady = errors.New("mint: seed not ready")

	// ErrUnknownRequest rejects a fulfillment callback whose token matches
	// no pending request. Duplicate callbacks land here, since fulfillment
	// consumes the pending entry; nothing is mutated.
	ErrUnknownRequest = errors.New("mint: unknown request token")

	// ErrAlreadyIssued is returned by Ledger when an identifier would be
	// issued twice. The minter's counter makes this unreachable in normal
	// operation.
	ErrAlreadyIssued = errors.New("mint: identifier already issued")
)

var errSeedLength = errors.New("mint: seed must be 32 bytes")

