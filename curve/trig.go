package curve

// Angle units: 1/65536ths of a full turn. Trig values are scaled by TrigScale.
//
// Sine uses Bhaskara I's rational approximation over the half turn. It is
// integer-only, so results are identical on every platform; the ~0.2% error
// is irrelevant for artwork.
const (
	turn = 1 << 16
	half = turn / 2

	// TrigScale is the fixed-point scale of sinTurn/cosTurn results.
	TrigScale = 1_000_000
)

// sinTurn returns sin(a)·TrigScale for an angle a in 1/65536ths of a turn.
func sinTurn(a int64) int64 {
	a = ((a % turn) + turn) % turn
	neg := a >= half
	if neg {
		a -= half
	}
	p := a * (half - a)
	v := 16 * p * TrigScale / (5*half*half - 4*p)
	if neg {
		return -v
	}
	return v
}

// cosTurn returns cos(a)·TrigScale for an angle a in 1/65536ths of a turn.
func cosTurn(a int64) int64 {
	return sinTurn(a + turn/4)
}
