package curve

import (
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/sha3"
)

// Palette is the ordered set of stroke colors supplied at finalize time.
type Palette [5]string

// Params fixes the shape of the generated rose curve.
//
// The curve is r(θ) = Scale·cos(k·θ) with k = petals/Ratio, sampled at
// Samples points over Ratio full turns so the path closes. Angular is the
// frequency of the seed-driven radius wobble.
type Params struct {
	Samples int   // sampled points along the curve
	Scale   int64 // radius in output units; must be >= TrigScale
	Petals  int64 // base petal parameter
	Ratio   int64 // petal denominator and number of full turns swept
	Angular int64 // wobble cycles per turn

	Background string // canvas color behind the curve
}

// DefaultParams are the shape constants used for minted artwork.
func DefaultParams() Params {
	return Params{
		Samples:    1000,
		Scale:      1e16,
		Petals:     20,
		Ratio:      2,
		Angular:    60,
		Background: "#0b0b12",
	}
}

// Point is a fixed-point coordinate pair in the range [-Extent, Extent].
type Point struct {
	X, Y int64
}

// Segment is one colored stroke between consecutive sample points.
type Segment struct {
	From, To Point
	Color    string
}

// Description is the generated artwork: an ordered sequence of colored
// segments on a square canvas of half-width Extent, over Background.
type Description struct {
	Background string
	Extent     int64
	Segments   []Segment
}

var (
	errSamples = errors.New("curve: need at least 2 samples")
	errScale   = errors.New("curve: scale below trig resolution")
	errRatio   = errors.New("curve: ratio must be positive")
)

// Validate reports whether the params can drive the generator.
func (p Params) Validate() error {
	if p.Samples < 2 {
		return errSamples
	}
	if p.Scale < TrigScale {
		return errScale
	}
	if p.Ratio < 1 {
		return errRatio
	}
	return nil
}

// Generate maps a 256-bit seed, a palette and shape params to a Description.
//
// The seed is expanded once with keccak-256; the digest selects the rotation
// offset, a bounded petal-count delta, the palette rotation and the wobble
// amplitude. Nothing else feeds the output.
func Generate(seed [32]byte, pal Palette, p Params) (Description, error) {
	if err := p.Validate(); err != nil {
		return Description{}, err
	}

	sum := keccak256(seed[:])
	rot := int64(binary.BigEndian.Uint64(sum[0:8]) % turn)
	petals := p.Petals + int64(sum[8]%5)
	palShift := int(sum[9]) % len(pal)
	wobblePct := int64(sum[10]%16) + 4 // 4..19 percent of the base radius

	sweep := p.Ratio * turn
	n := int64(p.Samples)

	pts := make([]Point, p.Samples+1)
	for i := int64(0); i <= n; i++ {
		a := rot + i*sweep/n
		base := (p.Scale / TrigScale) * cosTurn(a*petals/p.Ratio)
		wob := (base / TrigScale) * sinTurn(a*p.Angular) / 100 * wobblePct
		r := base + wob
		pts[i] = Point{
			X: (r / TrigScale) * cosTurn(a),
			Y: (r / TrigScale) * sinTurn(a),
		}
	}

	segs := make([]Segment, p.Samples)
	for i := range segs {
		ci := (palShift + i*len(pal)/p.Samples) % len(pal)
		segs[i] = Segment{From: pts[i], To: pts[i+1], Color: pal[ci]}
	}

	return Description{
		Background: p.Background,
		Extent:     p.Scale + p.Scale/4, // wobble headroom
		Segments:   segs,
	}, nil
}

func keccak256(b []byte) [32]byte {
	var out [32]byte
	d := sha3.NewLegacyKeccak256()
	_, _ = d.Write(b)
	copy(out[:], d.Sum(nil))
	return out
}
