// Package curve generates rose-curve artwork from a random seed.
//
// The generator is a pure function: the same (seed, palette, params) tuple
// always yields the same Description, byte for byte. All arithmetic is
// integer fixed point (no floats, no math package) because the output is
// permanently bound to a token identifier and must reproduce identically on
// every platform.
package curve
