package mint

// FixedFeeSource reports a constant held balance. Suitable for the daemon
// and tests; a production deployment queries the actual fee-token contract.
type FixedFeeSource uint64

func (f FixedFeeSource) Balance() uint64 { return uint64(f) }
