// Package mint owns the three-phase issuance lifecycle for collectible
// records: Reserved -> Seeded -> Finalized.
//
// A caller requests a mint, which reserves the next identifier and forwards a
// randomness request to an external source. The source later delivers a
// 256-bit value through Fulfill, which assigns the owner and stores the seed.
// Any caller may then finalize a seeded record by supplying a palette; the
// stored seed drives the curve generator and the resource encoder, and the
// resulting data URI is attached permanently.
//
// All state lives in one arena behind one mutex: every operation either
// completes atomically or fails with no observable mutation. Failures map to
// exactly the sentinel errors in errors.go; there is no retry logic here.
// Callers re-invoke after transient failures (only ErrSeedNotReady resolves
// on its own, once the randomness callback lands).
package mint
